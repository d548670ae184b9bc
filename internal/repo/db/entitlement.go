package db

import (
	"context"

	md "github.com/JMURv/apk-gate/internal/models"
	"github.com/JMURv/apk-gate/internal/repo"
	"github.com/opentracing/opentracing-go"
)

// UpsertEntitlement returns the apk_infos row for the given quadruple,
// creating it if absent. Repeated calls return the same row.
func (r *Repository) UpsertEntitlement(ctx context.Context, e *md.APKInfo) (*md.APKInfo, error) {
	const op = "entitlements.UpsertEntitlement.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := &md.APKInfo{}
	err := r.conn.QueryRowxContext(
		ctx, entitlementUpsertQ,
		e.Name, e.Path, e.VerNumber, e.DeviceCode, e.TokenValue,
	).StructScan(res)
	if err != nil {
		if isForeignKeyViolation(err) {
			// The device or token vanished between the resolver's checks
			// and the insert.
			return nil, repo.ErrNotFound
		}
		return nil, err
	}

	return res, nil
}

func (r *Repository) ListDeviceEntitlements(
	ctx context.Context,
	deviceCode string,
) ([]md.APKInfo, error) {
	const op = "entitlements.ListDeviceEntitlements.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := make([]md.APKInfo, 0)
	if err := r.conn.SelectContext(ctx, &res, entitlementListByDeviceQ, deviceCode); err != nil {
		return nil, err
	}

	return res, nil
}
