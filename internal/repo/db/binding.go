package db

import (
	"context"

	md "github.com/JMURv/apk-gate/internal/models"
	"github.com/JMURv/apk-gate/internal/repo"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
)

// BindDevice associates a device with a customer. Binding an already
// bound pair is an error, not a no-op, so callers learn about stale
// admin state instead of silently proceeding.
func (r *Repository) BindDevice(ctx context.Context, customerID, deviceID uuid.UUID) error {
	const op = "bindings.BindDevice.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	_, err := r.conn.ExecContext(ctx, bindingCreateQ, customerID, deviceID)
	if err != nil {
		if isUniqueViolation(err) {
			return repo.ErrAlreadyExists
		}
		if isForeignKeyViolation(err) {
			return repo.ErrNotFound
		}
		return err
	}

	return nil
}

func (r *Repository) UnbindDevice(ctx context.Context, customerID, deviceID uuid.UUID) error {
	const op = "bindings.UnbindDevice.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res, err := r.conn.ExecContext(ctx, bindingDeleteQ, customerID, deviceID)
	if err != nil {
		return err
	}

	if affected, err := res.RowsAffected(); err != nil {
		return err
	} else if affected == 0 {
		return repo.ErrNotFound
	}

	return nil
}

func (r *Repository) IsDeviceBound(
	ctx context.Context,
	customerID, deviceID uuid.UUID,
) (bool, error) {
	const op = "bindings.IsDeviceBound.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	var bound bool
	if err := r.conn.QueryRowContext(ctx, bindingExistsQ, customerID, deviceID).Scan(&bound); err != nil {
		return false, err
	}

	return bound, nil
}

func (r *Repository) ListCustomerDevices(
	ctx context.Context,
	customerID uuid.UUID,
) ([]md.Device, error) {
	const op = "bindings.ListCustomerDevices.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := make([]md.Device, 0)
	if err := r.conn.SelectContext(ctx, &res, bindingDevicesOfCustomerQ, customerID); err != nil {
		return nil, err
	}

	return res, nil
}

func (r *Repository) ListDeviceCustomers(
	ctx context.Context,
	deviceID uuid.UUID,
) ([]md.Customer, error) {
	const op = "bindings.ListDeviceCustomers.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := make([]md.Customer, 0)
	if err := r.conn.SelectContext(ctx, &res, bindingCustomersOfDeviceQ, deviceID); err != nil {
		return nil, err
	}

	return res, nil
}
