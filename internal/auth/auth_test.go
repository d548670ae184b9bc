package auth

import (
	"context"
	"testing"
	"time"

	"github.com/JMURv/apk-gate/internal/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, admin bool) string {
	t.Helper()

	token := jwt.NewWithClaims(
		jwt.SigningMethodHS256, Claims{
			Admin: admin,
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		},
	)

	signed, err := token.SignedString([]byte(secret))
	assert.NoError(t, err)
	return signed
}

func TestAuth_VerifyAdmin(t *testing.T) {
	opsKey := "super-secret-ops-key"
	opsHash, err := bcrypt.GenerateFromPassword([]byte(opsKey), bcrypt.MinCost)
	assert.NoError(t, err)

	au := New(
		config.AuthConfig{
			JWT:    config.JWTConfig{Secret: testSecret},
			OpsKey: string(opsHash),
		},
	)

	ctx := context.Background()

	tests := []struct {
		name       string
		credential string
		wantErr    error
	}{
		{
			name:       "AdminJWT",
			credential: signToken(t, testSecret, true),
		},
		{
			name:       "NonAdminJWT",
			credential: signToken(t, testSecret, false),
			wantErr:    ErrNotAdmin,
		},
		{
			name:       "WrongSecretJWT",
			credential: signToken(t, "other-secret", true),
			wantErr:    ErrNotAdmin,
		},
		{
			name:       "OpsKey",
			credential: opsKey,
		},
		{
			name:       "WrongOpsKey",
			credential: "guess",
			wantErr:    ErrNotAdmin,
		},
		{
			name:       "Empty",
			credential: "",
			wantErr:    ErrNotAdmin,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := au.VerifyAdmin(ctx, tt.credential)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAuth_VerifyAdmin_Disabled(t *testing.T) {
	au := New(config.AuthConfig{Disabled: true})

	assert.NoError(t, au.VerifyAdmin(context.Background(), "anything"))
	assert.NoError(t, au.VerifyAdmin(context.Background(), ""))
}

func TestAuth_VerifyAdmin_NoOpsKeyConfigured(t *testing.T) {
	au := New(config.AuthConfig{JWT: config.JWTConfig{Secret: testSecret}})

	assert.ErrorIs(t, au.VerifyAdmin(context.Background(), "some-key"), ErrNotAdmin)
}
