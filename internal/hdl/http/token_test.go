package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JMURv/apk-gate/internal/ctrl"
	"github.com/JMURv/apk-gate/internal/dto"
	"github.com/JMURv/apk-gate/tests/mocks"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestHandler_IssueToken(t *testing.T) {
	mock := gomock.NewController(t)
	defer mock.Finish()

	mctrl := mocks.NewMockAppCtrl(mock)
	mauth := mocks.NewMockCore(mock)

	h := New(mauth, mctrl)

	mauth.EXPECT().VerifyAdmin(gomock.Any(), "admin-token").Return(nil).AnyTimes()

	tests := []struct {
		name       string
		payload    map[string]any
		setup      func()
		wantStatus int
	}{
		{
			name:    "Success",
			payload: map[string]any{"customerKey": "ck-1"},
			setup: func() {
				mctrl.EXPECT().
					IssueToken(gomock.Any(), &dto.IssueTokenRequest{CustomerKey: "ck-1"}).
					Return(&dto.IssueTokenResponse{TokenValue: "tok-xyz"}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:    "SuccessWithTTL",
			payload: map[string]any{"customerKey": "ck-1", "ttlSeconds": 600},
			setup: func() {
				mctrl.EXPECT().
					IssueToken(gomock.Any(), &dto.IssueTokenRequest{CustomerKey: "ck-1", TTLSeconds: 600}).
					Return(&dto.IssueTokenResponse{TokenValue: "tok-xyz"}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "MissingCustomerKey",
			payload:    map[string]any{},
			setup:      func() {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "NegativeTTL",
			payload:    map[string]any{"customerKey": "ck-1", "ttlSeconds": -5},
			setup:      func() {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:    "CustomerNotFound",
			payload: map[string]any{"customerKey": "nope"},
			setup: func() {
				mctrl.EXPECT().
					IssueToken(gomock.Any(), gomock.Any()).
					Return(nil, ctrl.ErrNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:    "GenerationExhausted",
			payload: map[string]any{"customerKey": "ck-1"},
			setup: func() {
				mctrl.EXPECT().
					IssueToken(gomock.Any(), gomock.Any()).
					Return(nil, ctrl.ErrTokenGenerationExhausted)
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			body, _ := json.Marshal(tt.payload)
			req := httptest.NewRequest(http.MethodPost, "/tokens", bytes.NewReader(body))
			req.Header.Set("Authorization", "Bearer admin-token")
			w := httptest.NewRecorder()

			h.router.ServeHTTP(w, req)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestHandler_RevokeToken(t *testing.T) {
	mock := gomock.NewController(t)
	defer mock.Finish()

	mctrl := mocks.NewMockAppCtrl(mock)
	mauth := mocks.NewMockCore(mock)

	h := New(mauth, mctrl)

	mauth.EXPECT().VerifyAdmin(gomock.Any(), "admin-token").Return(nil).AnyTimes()

	t.Run("Success", func(t *testing.T) {
		mctrl.EXPECT().RevokeToken(gomock.Any(), "tok-xyz").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/tokens/tok-xyz", nil)
		req.Header.Set("Authorization", "Bearer admin-token")
		w := httptest.NewRecorder()

		h.router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("NotFound", func(t *testing.T) {
		mctrl.EXPECT().RevokeToken(gomock.Any(), "tok-gone").Return(ctrl.ErrNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/tokens/tok-gone", nil)
		req.Header.Set("Authorization", "Bearer admin-token")
		w := httptest.NewRecorder()

		h.router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
