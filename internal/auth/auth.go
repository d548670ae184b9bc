package auth

import (
	"context"

	"github.com/JMURv/apk-gate/internal/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/opentracing/opentracing-go"
	"golang.org/x/crypto/bcrypt"
)

// Core answers the one question the entitlement service needs from the
// staff identity world: may this caller administer entitlements. Staff
// identity itself (accounts, roles, MFA) lives elsewhere.
type Core interface {
	VerifyAdmin(ctx context.Context, credential string) error
}

type Claims struct {
	Admin bool `json:"admin"`
	jwt.RegisteredClaims
}

type Auth struct {
	secret     []byte
	opsKeyHash []byte
	disabled   bool
}

func New(conf config.AuthConfig) *Auth {
	return &Auth{
		secret:     []byte(conf.JWT.Secret),
		opsKeyHash: []byte(conf.OpsKey),
		disabled:   conf.Disabled,
	}
}

// VerifyAdmin accepts either a staff JWT carrying the admin claim or the
// static operations key checked against its bcrypt hash from config.
func (a *Auth) VerifyAdmin(ctx context.Context, credential string) error {
	const op = "auth.VerifyAdmin"

	span, _ := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if a.disabled {
		return nil
	}

	if claims, err := a.parseClaims(credential); err == nil {
		if claims.Admin {
			return nil
		}
		return ErrNotAdmin
	}

	if len(a.opsKeyHash) > 0 {
		if err := bcrypt.CompareHashAndPassword(a.opsKeyHash, []byte(credential)); err == nil {
			return nil
		}
	}

	return ErrNotAdmin
}

func (a *Auth) parseClaims(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(
		tokenStr, claims, func(token *jwt.Token) (any, error) {
			if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
				return nil, ErrUnexpectedSignMethod
			}

			return a.secret, nil
		},
	)
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
