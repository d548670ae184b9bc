package db

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	md "github.com/JMURv/apk-gate/internal/models"
	"github.com/JMURv/apk-gate/internal/repo"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestRepository_CreateToken(t *testing.T) {
	r, mock := newTestRepo(t)

	testID := uuid.New()
	now := time.Now().UTC()
	token := &md.Token{
		Value:       "tok-xyz",
		CustomerKey: "ck-1",
		InitDate:    now,
	}

	tests := []struct {
		name        string
		mock        func()
		expectedErr error
	}{
		{
			name: "Success",
			mock: func() {
				mock.ExpectQuery(regexp.QuoteMeta(tokenCreateQ)).
					WithArgs(token.Value, token.CustomerKey, token.InitDate, token.Expiry).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(testID))
			},
			expectedErr: nil,
		},
		{
			name: "ValueCollision",
			mock: func() {
				mock.ExpectQuery(regexp.QuoteMeta(tokenCreateQ)).
					WithArgs(token.Value, token.CustomerKey, token.InitDate, token.Expiry).
					WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})
			},
			expectedErr: repo.ErrAlreadyExists,
		},
		{
			name: "OwnerGone",
			mock: func() {
				mock.ExpectQuery(regexp.QuoteMeta(tokenCreateQ)).
					WithArgs(token.Value, token.CustomerKey, token.InitDate, token.Expiry).
					WillReturnError(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation})
			},
			expectedErr: repo.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mock()

			id, err := r.CreateToken(context.Background(), token)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Equal(t, uuid.Nil, id)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, testID, id)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_GetTokenByValue(t *testing.T) {
	r, mock := newTestRepo(t)

	testID := uuid.New()
	now := time.Now().UTC()

	tests := []struct {
		name        string
		mock        func()
		expectedErr error
	}{
		{
			name: "Success",
			mock: func() {
				rows := sqlmock.NewRows(
					[]string{"id", "token_value", "customer_key", "token_init_date", "token_expiry"},
				).AddRow(testID, "tok-xyz", "ck-1", now, nil)
				mock.ExpectQuery(regexp.QuoteMeta(tokenGetByValueQ)).
					WithArgs("tok-xyz").
					WillReturnRows(rows)
			},
			expectedErr: nil,
		},
		{
			name: "NotFound",
			mock: func() {
				mock.ExpectQuery(regexp.QuoteMeta(tokenGetByValueQ)).
					WithArgs("tok-xyz").
					WillReturnRows(sqlmock.NewRows(
						[]string{"id", "token_value", "customer_key", "token_init_date", "token_expiry"},
					))
			},
			expectedErr: repo.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mock()

			res, err := r.GetTokenByValue(context.Background(), "tok-xyz")

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, res)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "tok-xyz", res.Value)
				assert.Equal(t, "ck-1", res.CustomerKey)
				assert.Nil(t, res.Expiry)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_DeleteToken(t *testing.T) {
	r, mock := newTestRepo(t)

	tests := []struct {
		name        string
		mock        func()
		expectedErr error
	}{
		{
			name: "SuccessCascade",
			mock: func() {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta(tokenCascadeEntitlementsQ)).
					WithArgs("tok-xyz").
					WillReturnResult(sqlmock.NewResult(0, 3))
				mock.ExpectExec(regexp.QuoteMeta(tokenDeleteQ)).
					WithArgs("tok-xyz").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
			expectedErr: nil,
		},
		{
			name: "NotFound",
			mock: func() {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta(tokenCascadeEntitlementsQ)).
					WithArgs("tok-xyz").
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectExec(regexp.QuoteMeta(tokenDeleteQ)).
					WithArgs("tok-xyz").
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectRollback()
			},
			expectedErr: repo.ErrNotFound,
		},
		{
			name: "CascadeStepFailsRollsBack",
			mock: func() {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta(tokenCascadeEntitlementsQ)).
					WithArgs("tok-xyz").
					WillReturnError(errors.New("database error"))
				mock.ExpectRollback()
			},
			expectedErr: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mock()

			err := r.DeleteToken(context.Background(), "tok-xyz")

			if tt.expectedErr != nil {
				assert.Error(t, err)
				assert.EqualError(t, err, tt.expectedErr.Error())
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
