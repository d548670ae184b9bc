package db

import (
	"context"
	"database/sql"
	"errors"

	"github.com/JMURv/apk-gate/internal/dto"
	md "github.com/JMURv/apk-gate/internal/models"
	"github.com/JMURv/apk-gate/internal/repo"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

func (r *Repository) RegisterDevice(
	ctx context.Context,
	req *dto.RegisterDeviceRequest,
) (uuid.UUID, error) {
	const op = "devices.RegisterDevice.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	var id uuid.UUID
	err := r.conn.QueryRowContext(ctx, deviceCreateQ, req.Code, req.Model).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return uuid.Nil, repo.ErrAlreadyExists
		}
		return uuid.Nil, err
	}

	return id, nil
}

func (r *Repository) GetDeviceByCode(ctx context.Context, code string) (*md.Device, error) {
	const op = "devices.GetDeviceByCode.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := &md.Device{}
	err := r.conn.GetContext(ctx, res, deviceGetByCodeQ, code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo.ErrNotFound
		}
		return nil, err
	}

	return res, nil
}

func (r *Repository) GetDeviceByID(ctx context.Context, id uuid.UUID) (*md.Device, error) {
	const op = "devices.GetDeviceByID.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := &md.Device{}
	err := r.conn.GetContext(ctx, res, deviceGetByIDQ, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo.ErrNotFound
		}
		return nil, err
	}

	return res, nil
}

func (r *Repository) ListDevices(
	ctx context.Context,
	page, size int,
	filters map[string]any,
) (*dto.PaginatedDeviceResponse, error) {
	const op = "devices.ListDevices.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	q, err := buildDeviceListQuery(ctx, page, size, filters)
	if err != nil {
		return nil, err
	}

	var count int64
	if err = r.conn.QueryRowContext(ctx, q.countQ, q.countArgs...).Scan(&count); err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryxContext(ctx, q.dataQ, q.dataArgs...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err = rows.Close(); err != nil {
			zap.L().Debug("failed to close rows", zap.String("op", op), zap.Error(err))
		}
	}()

	res := make([]*md.Device, 0, size)
	for rows.Next() {
		device := &md.Device{}
		if err = rows.StructScan(device); err != nil {
			return nil, err
		}
		res = append(res, device)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	totalPages := int((count + int64(size) - 1) / int64(size))
	return &dto.PaginatedDeviceResponse{
		Data:        res,
		Count:       count,
		TotalPages:  totalPages,
		CurrentPage: page,
		HasNextPage: page < totalPages,
	}, nil
}

// DeleteDevice removes the device together with its bindings and
// entitlement rows in one transaction.
func (r *Repository) DeleteDevice(ctx context.Context, id uuid.UUID) error {
	const op = "devices.DeleteDevice.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	tx, err := r.conn.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			zap.L().Error("failed to rollback tx", zap.String("op", op), zap.Error(err))
		}
	}()

	var code string
	if err = tx.QueryRowContext(ctx, deviceCodeByIDQ, id).Scan(&code); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return repo.ErrNotFound
		}
		return err
	}

	if _, err = tx.ExecContext(ctx, deviceCascadeBindingsQ, id); err != nil {
		return err
	}

	if _, err = tx.ExecContext(ctx, deviceCascadeEntitlementsQ, code); err != nil {
		return err
	}

	if _, err = tx.ExecContext(ctx, deviceDeleteQ, id); err != nil {
		return err
	}

	return tx.Commit()
}
