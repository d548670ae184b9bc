package db

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/JMURv/apk-gate/internal/dto"
	"github.com/JMURv/apk-gate/internal/repo"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestRepository_RegisterDevice(t *testing.T) {
	r, mock := newTestRepo(t)

	testID := uuid.New()
	req := &dto.RegisterDeviceRequest{Code: "dev-42", Model: "Pixel 8"}

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(deviceCreateQ)).
			WithArgs(req.Code, req.Model).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(testID))

		id, err := r.RegisterDevice(context.Background(), req)
		assert.NoError(t, err)
		assert.Equal(t, testID, id)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("DuplicateCode", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(deviceCreateQ)).
			WithArgs(req.Code, req.Model).
			WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

		id, err := r.RegisterDevice(context.Background(), req)
		assert.ErrorIs(t, err, repo.ErrAlreadyExists)
		assert.Equal(t, uuid.Nil, id)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_GetDeviceByCode(t *testing.T) {
	r, mock := newTestRepo(t)

	testID := uuid.New()
	createdAt := time.Now()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "device_code", "model", "created_at"}).
			AddRow(testID, "dev-42", "Pixel 8", createdAt)
		mock.ExpectQuery(regexp.QuoteMeta(deviceGetByCodeQ)).
			WithArgs("dev-42").
			WillReturnRows(rows)

		res, err := r.GetDeviceByCode(context.Background(), "dev-42")
		assert.NoError(t, err)
		assert.Equal(t, testID, res.ID)
		assert.Equal(t, "dev-42", res.Code)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(deviceGetByCodeQ)).
			WithArgs("dev-42").
			WillReturnRows(sqlmock.NewRows([]string{"id", "device_code", "model", "created_at"}))

		res, err := r.GetDeviceByCode(context.Background(), "dev-42")
		assert.ErrorIs(t, err, repo.ErrNotFound)
		assert.Nil(t, res)
	})
}

func TestRepository_DeleteDevice(t *testing.T) {
	r, mock := newTestRepo(t)

	testID := uuid.New()
	testCode := "dev-42"

	tests := []struct {
		name        string
		mock        func()
		expectedErr error
	}{
		{
			name: "SuccessCascade",
			mock: func() {
				mock.ExpectBegin()
				mock.ExpectQuery(regexp.QuoteMeta(deviceCodeByIDQ)).
					WithArgs(testID).
					WillReturnRows(sqlmock.NewRows([]string{"device_code"}).AddRow(testCode))
				mock.ExpectExec(regexp.QuoteMeta(deviceCascadeBindingsQ)).
					WithArgs(testID).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec(regexp.QuoteMeta(deviceCascadeEntitlementsQ)).
					WithArgs(testCode).
					WillReturnResult(sqlmock.NewResult(0, 2))
				mock.ExpectExec(regexp.QuoteMeta(deviceDeleteQ)).
					WithArgs(testID).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
			expectedErr: nil,
		},
		{
			name: "NotFound",
			mock: func() {
				mock.ExpectBegin()
				mock.ExpectQuery(regexp.QuoteMeta(deviceCodeByIDQ)).
					WithArgs(testID).
					WillReturnRows(sqlmock.NewRows([]string{"device_code"}))
				mock.ExpectRollback()
			},
			expectedErr: repo.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mock()

			err := r.DeleteDevice(context.Background(), testID)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
