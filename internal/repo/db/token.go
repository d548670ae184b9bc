package db

import (
	"context"
	"database/sql"
	"errors"

	md "github.com/JMURv/apk-gate/internal/models"
	"github.com/JMURv/apk-gate/internal/repo"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

// CreateToken inserts a freshly generated token. A unique violation on
// token_value surfaces as repo.ErrAlreadyExists so the issuer can retry
// with a new value; the check-and-insert is a single atomic statement.
func (r *Repository) CreateToken(ctx context.Context, t *md.Token) (uuid.UUID, error) {
	const op = "tokens.CreateToken.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	var id uuid.UUID
	err := r.conn.QueryRowContext(
		ctx, tokenCreateQ,
		t.Value, t.CustomerKey, t.InitDate, t.Expiry,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return uuid.Nil, repo.ErrAlreadyExists
		}
		if isForeignKeyViolation(err) {
			return uuid.Nil, repo.ErrNotFound
		}
		return uuid.Nil, err
	}

	return id, nil
}

func (r *Repository) GetTokenByValue(ctx context.Context, value string) (*md.Token, error) {
	const op = "tokens.GetTokenByValue.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := &md.Token{}
	err := r.conn.GetContext(ctx, res, tokenGetByValueQ, value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo.ErrNotFound
		}
		return nil, err
	}

	return res, nil
}

func (r *Repository) ListCustomerTokens(
	ctx context.Context,
	customerKey string,
) ([]md.Token, error) {
	const op = "tokens.ListCustomerTokens.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := make([]md.Token, 0)
	if err := r.conn.SelectContext(ctx, &res, tokenListByCustomerQ, customerKey); err != nil {
		return nil, err
	}

	return res, nil
}

// DeleteToken revokes a token: its entitlement rows and the token row
// vanish in one transaction.
func (r *Repository) DeleteToken(ctx context.Context, value string) error {
	const op = "tokens.DeleteToken.repo"

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

	if _, err = tx.ExecContext(ctx, tokenCascadeEntitlementsQ, value); err != nil {
		return err
	}

	res, err := tx.ExecContext(ctx, tokenDeleteQ, value)
	if err != nil {
		return err
	}

	if affected, err := res.RowsAffected(); err != nil {
		return err
	} else if affected == 0 {
		return repo.ErrNotFound
	}

	return tx.Commit()
}
