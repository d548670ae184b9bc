package models

import (
	"time"

	"github.com/google/uuid"
)

type Customer struct {
	ID        uuid.UUID `db:"id"           json:"id"`
	Key       string    `db:"customer_key" json:"key"`
	Name      string    `db:"name"         json:"name"`
	Note      string    `db:"note"         json:"note"`
	CreatedAt time.Time `db:"created_at"   json:"createdAt"`
}

type Device struct {
	ID        uuid.UUID `db:"id"          json:"id"`
	Code      string    `db:"device_code" json:"code"`
	Model     string    `db:"model"       json:"model"`
	CreatedAt time.Time `db:"created_at"  json:"createdAt"`
}

// CustomerDevice is the customer-device association row. Pure bookkeeping,
// no temporal semantics live here.
type CustomerDevice struct {
	CustomerID uuid.UUID `db:"customer_id" json:"customerId"`
	DeviceID   uuid.UUID `db:"device_id"   json:"deviceId"`
	CreatedAt  time.Time `db:"created_at"  json:"createdAt"`
}

// Token grants access on behalf of the customer identified by CustomerKey.
// Tokens reference their owner by the customer's natural key, not the
// surrogate id, mirroring the persisted foreign key.
type Token struct {
	ID          uuid.UUID  `db:"id"              json:"id"`
	Value       string     `db:"token_value"     json:"value"`
	CustomerKey string     `db:"customer_key"    json:"customerKey"`
	InitDate    time.Time  `db:"token_init_date" json:"initDate"`
	Expiry      *time.Time `db:"token_expiry"    json:"expiry,omitempty"`
}

// IsValid reports whether the token is usable at the given instant.
// Expiry is derived, never stored as a flag: a token with no expiry
// never expires.
func (t *Token) IsValid(now time.Time) bool {
	if t.Expiry == nil {
		return true
	}
	return !now.After(*t.Expiry)
}

// APKInfo is a materialized entitlement: proof that a device, using a
// token, resolved a package version. Rows are only ever removed as a
// cascade of their device or token going away.
type APKInfo struct {
	ID         uuid.UUID `db:"id"             json:"id"`
	Name       string    `db:"apk_name"       json:"apkName"`
	Path       string    `db:"apk_path"       json:"apkPath"`
	VerNumber  string    `db:"apk_ver_number" json:"apkVersion"`
	DeviceCode string    `db:"device_code"    json:"deviceCode"`
	TokenValue string    `db:"token_value"    json:"tokenValue"`
	CreatedAt  time.Time `db:"created_at"     json:"createdAt"`
}
