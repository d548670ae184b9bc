package ctrl

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/JMURv/apk-gate/internal/config"
	"github.com/JMURv/apk-gate/internal/dto"
	md "github.com/JMURv/apk-gate/internal/models"
	"github.com/JMURv/apk-gate/internal/repo"
	"github.com/JMURv/apk-gate/tests/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestController_IssueToken(t *testing.T) {
	ctrlMock := gomock.NewController(t)
	defer ctrlMock.Finish()

	mockRepo := mocks.NewMockAppRepo(ctrlMock)
	mockCache := mocks.NewMockCacheService(ctrlMock)
	mockEmail := mocks.NewMockEmailService(ctrlMock)

	ctx := context.Background()
	ctrl := New(mockRepo, mockCache, mockEmail, config.APKConfig{ArtifactRoot: "/apks"})

	testCustomer := &md.Customer{ID: uuid.New(), Key: "ck-1", Name: "Acme"}

	// Goroutine side effects may or may not land before the test exits.
	mockEmail.EXPECT().TokenIssued(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	tests := []struct {
		name      string
		req       *dto.IssueTokenRequest
		setup     func()
		wantErr   error
		hasExpiry bool
	}{
		{
			name: "Success",
			req:  &dto.IssueTokenRequest{CustomerKey: "ck-1"},
			setup: func() {
				mockRepo.EXPECT().
					GetCustomerByKey(gomock.Any(), "ck-1").
					Return(testCustomer, nil)
				mockRepo.EXPECT().
					CreateToken(gomock.Any(), gomock.Any()).
					Return(uuid.New(), nil)
			},
		},
		{
			name: "SuccessWithTTL",
			req:  &dto.IssueTokenRequest{CustomerKey: "ck-1", TTLSeconds: 600},
			setup: func() {
				mockRepo.EXPECT().
					GetCustomerByKey(gomock.Any(), "ck-1").
					Return(testCustomer, nil)
				mockRepo.EXPECT().
					CreateToken(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, tok *md.Token) (uuid.UUID, error) {
						assert.NotNil(t, tok.Expiry)
						assert.WithinDuration(t, tok.InitDate.Add(10*time.Minute), *tok.Expiry, time.Second)
						return uuid.New(), nil
					})
			},
			hasExpiry: true,
		},
		{
			name: "CollisionThenSuccess",
			req:  &dto.IssueTokenRequest{CustomerKey: "ck-1"},
			setup: func() {
				mockRepo.EXPECT().
					GetCustomerByKey(gomock.Any(), "ck-1").
					Return(testCustomer, nil)
				gomock.InOrder(
					mockRepo.EXPECT().
						CreateToken(gomock.Any(), gomock.Any()).
						Return(uuid.Nil, repo.ErrAlreadyExists),
					mockRepo.EXPECT().
						CreateToken(gomock.Any(), gomock.Any()).
						Return(uuid.New(), nil),
				)
			},
		},
		{
			name: "CollisionExhaustion",
			req:  &dto.IssueTokenRequest{CustomerKey: "ck-1"},
			setup: func() {
				mockRepo.EXPECT().
					GetCustomerByKey(gomock.Any(), "ck-1").
					Return(testCustomer, nil)
				mockRepo.EXPECT().
					CreateToken(gomock.Any(), gomock.Any()).
					Return(uuid.Nil, repo.ErrAlreadyExists).
					Times(config.TokenGenAttempts)
			},
			wantErr: ErrTokenGenerationExhausted,
		},
		{
			name: "CustomerNotFound",
			req:  &dto.IssueTokenRequest{CustomerKey: "nope"},
			setup: func() {
				mockRepo.EXPECT().
					GetCustomerByKey(gomock.Any(), "nope").
					Return(nil, repo.ErrNotFound)
			},
			wantErr: ErrNotFound,
		},
		{
			name: "CustomerDeletedMidFlight",
			req:  &dto.IssueTokenRequest{CustomerKey: "ck-1"},
			setup: func() {
				mockRepo.EXPECT().
					GetCustomerByKey(gomock.Any(), "ck-1").
					Return(testCustomer, nil)
				mockRepo.EXPECT().
					CreateToken(gomock.Any(), gomock.Any()).
					Return(uuid.Nil, repo.ErrNotFound)
			},
			wantErr: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			res, err := ctrl.IssueToken(ctx, tt.req)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, res)
				return
			}

			assert.NoError(t, err)
			assert.NotEmpty(t, res.TokenValue)
			assert.Len(t, res.TokenValue, config.TokenBytes*2)
			if tt.hasExpiry {
				assert.NotNil(t, res.Expiry)
			} else {
				assert.Nil(t, res.Expiry)
			}
		})
	}
}

func TestController_RevokeToken(t *testing.T) {
	ctrlMock := gomock.NewController(t)
	defer ctrlMock.Finish()

	mockRepo := mocks.NewMockAppRepo(ctrlMock)
	mockCache := mocks.NewMockCacheService(ctrlMock)
	mockEmail := mocks.NewMockEmailService(ctrlMock)

	ctx := context.Background()
	ctrl := New(mockRepo, mockCache, mockEmail, config.APKConfig{})

	mockEmail.EXPECT().TokenRevoked(gomock.Any(), gomock.Any()).AnyTimes()

	t.Run("Success", func(t *testing.T) {
		mockRepo.EXPECT().DeleteToken(gomock.Any(), "tok-xyz").Return(nil)
		assert.NoError(t, ctrl.RevokeToken(ctx, "tok-xyz"))
	})

	t.Run("NotFound", func(t *testing.T) {
		mockRepo.EXPECT().DeleteToken(gomock.Any(), "tok-xyz").Return(repo.ErrNotFound)
		assert.ErrorIs(t, ctrl.RevokeToken(ctx, "tok-xyz"), ErrNotFound)
	})

	t.Run("RepositoryError", func(t *testing.T) {
		mockRepo.EXPECT().DeleteToken(gomock.Any(), "tok-xyz").Return(errors.New("database error"))
		assert.Error(t, ctrl.RevokeToken(ctx, "tok-xyz"))
	})
}

func TestController_ListCustomerTokens(t *testing.T) {
	ctrlMock := gomock.NewController(t)
	defer ctrlMock.Finish()

	mockRepo := mocks.NewMockAppRepo(ctrlMock)
	mockCache := mocks.NewMockCacheService(ctrlMock)
	mockEmail := mocks.NewMockEmailService(ctrlMock)

	ctx := context.Background()
	ctrl := New(mockRepo, mockCache, mockEmail, config.APKConfig{})

	testCustomer := &md.Customer{ID: uuid.New(), Key: "ck-1"}
	testTokens := []md.Token{
		{ID: uuid.New(), Value: "tok-a", CustomerKey: "ck-1"},
		{ID: uuid.New(), Value: "tok-b", CustomerKey: "ck-1"},
	}

	t.Run("Success", func(t *testing.T) {
		mockRepo.EXPECT().GetCustomerByKey(gomock.Any(), "ck-1").Return(testCustomer, nil)
		mockRepo.EXPECT().ListCustomerTokens(gomock.Any(), "ck-1").Return(testTokens, nil)

		res, err := ctrl.ListCustomerTokens(ctx, "ck-1")
		assert.NoError(t, err)
		assert.Equal(t, testTokens, res)
	})

	t.Run("CustomerNotFound", func(t *testing.T) {
		mockRepo.EXPECT().GetCustomerByKey(gomock.Any(), "nope").Return(nil, repo.ErrNotFound)

		res, err := ctrl.ListCustomerTokens(ctx, "nope")
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Nil(t, res)
	})
}
