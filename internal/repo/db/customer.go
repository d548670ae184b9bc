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

func (r *Repository) CreateCustomer(
	ctx context.Context,
	req *dto.CreateCustomerRequest,
) (uuid.UUID, error) {
	const op = "customers.CreateCustomer.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	var id uuid.UUID
	err := r.conn.QueryRowContext(ctx, customerCreateQ, req.Key, req.Name, req.Note).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return uuid.Nil, repo.ErrAlreadyExists
		}
		return uuid.Nil, err
	}

	return id, nil
}

func (r *Repository) GetCustomerByKey(ctx context.Context, key string) (*md.Customer, error) {
	const op = "customers.GetCustomerByKey.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := &md.Customer{}
	err := r.conn.GetContext(ctx, res, customerGetByKeyQ, key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo.ErrNotFound
		}
		return nil, err
	}

	return res, nil
}

func (r *Repository) GetCustomerByID(ctx context.Context, id uuid.UUID) (*md.Customer, error) {
	const op = "customers.GetCustomerByID.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := &md.Customer{}
	err := r.conn.GetContext(ctx, res, customerGetByIDQ, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo.ErrNotFound
		}
		return nil, err
	}

	return res, nil
}

func (r *Repository) ListCustomers(
	ctx context.Context,
	page, size int,
	filters map[string]any,
) (*dto.PaginatedCustomerResponse, error) {
	const op = "customers.ListCustomers.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	q, err := buildCustomerListQuery(ctx, page, size, filters)
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

	res := make([]*md.Customer, 0, size)
	for rows.Next() {
		customer := &md.Customer{}
		if err = rows.StructScan(customer); err != nil {
			return nil, err
		}
		res = append(res, customer)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	totalPages := int((count + int64(size) - 1) / int64(size))
	return &dto.PaginatedCustomerResponse{
		Data:        res,
		Count:       count,
		TotalPages:  totalPages,
		CurrentPage: page,
		HasNextPage: page < totalPages,
	}, nil
}

// DeleteCustomer removes the customer and everything it exclusively owns.
// Either the root row and all dependents vanish together, or none do.
func (r *Repository) DeleteCustomer(ctx context.Context, id uuid.UUID) error {
	const op = "customers.DeleteCustomer.repo"

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

	var key string
	if err = tx.QueryRowContext(ctx, customerKeyByIDQ, id).Scan(&key); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return repo.ErrNotFound
		}
		return err
	}

	if _, err = tx.ExecContext(ctx, customerCascadeEntitlementsQ, key); err != nil {
		return err
	}

	if _, err = tx.ExecContext(ctx, customerCascadeTokensQ, key); err != nil {
		return err
	}

	if _, err = tx.ExecContext(ctx, customerCascadeBindingsQ, id); err != nil {
		return err
	}

	if _, err = tx.ExecContext(ctx, customerDeleteQ, id); err != nil {
		return err
	}

	return tx.Commit()
}
