package dto

import "time"

type IssueTokenRequest struct {
	CustomerKey string `json:"customerKey" validate:"required"`
	TTLSeconds  int64  `json:"ttlSeconds"  validate:"omitempty,gt=0"`
}

type IssueTokenResponse struct {
	TokenValue string     `json:"tokenValue"`
	Expiry     *time.Time `json:"expiry,omitempty"`
}
