package ctrl

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/JMURv/apk-gate/internal/config"
	"github.com/JMURv/apk-gate/internal/dto"
	md "github.com/JMURv/apk-gate/internal/models"
	"github.com/JMURv/apk-gate/internal/repo"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

type tokenCtrl interface {
	IssueToken(ctx context.Context, req *dto.IssueTokenRequest) (*dto.IssueTokenResponse, error)
	ListCustomerTokens(ctx context.Context, customerKey string) ([]md.Token, error)
	RevokeToken(ctx context.Context, value string) error
}

type tokenRepo interface {
	CreateToken(ctx context.Context, t *md.Token) (uuid.UUID, error)
	GetTokenByValue(ctx context.Context, value string) (*md.Token, error)
	ListCustomerTokens(ctx context.Context, customerKey string) ([]md.Token, error)
	DeleteToken(ctx context.Context, value string) error
}

func generateTokenValue() (string, error) {
	buf := make([]byte, config.TokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// IssueToken mints a token for the customer identified by its key.
// Collisions on the generated value are retried internally; the caller
// only ever sees a fresh token or ErrTokenGenerationExhausted.
func (c *Controller) IssueToken(
	ctx context.Context,
	req *dto.IssueTokenRequest,
) (*dto.IssueTokenResponse, error) {
	const op = "tokens.IssueToken.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if _, err := c.repo.GetCustomerByKey(ctx, req.CustomerKey); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	now := time.Now().UTC()
	token := &md.Token{
		CustomerKey: req.CustomerKey,
		InitDate:    now,
	}
	if req.TTLSeconds > 0 {
		expiry := now.Add(time.Duration(req.TTLSeconds) * time.Second)
		token.Expiry = &expiry
	}

	for attempt := 0; attempt < config.TokenGenAttempts; attempt++ {
		value, err := generateTokenValue()
		if err != nil {
			return nil, err
		}

		token.Value = value
		_, err = c.repo.CreateToken(ctx, token)
		if err == nil {
			go c.email.TokenIssued(ctx, req.CustomerKey, token.Value)

			return &dto.IssueTokenResponse{
				TokenValue: token.Value,
				Expiry:     token.Expiry,
			}, nil
		}

		if errors.Is(err, repo.ErrAlreadyExists) {
			zap.L().Warn(
				"token value collision, regenerating",
				zap.String("op", op),
				zap.Int("attempt", attempt+1),
			)
			continue
		}

		if errors.Is(err, repo.ErrNotFound) {
			// Customer was deleted between the existence check and the insert.
			return nil, ErrNotFound
		}

		return nil, err
	}

	return nil, ErrTokenGenerationExhausted
}

func (c *Controller) ListCustomerTokens(
	ctx context.Context,
	customerKey string,
) ([]md.Token, error) {
	const op = "tokens.ListCustomerTokens.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if _, err := c.repo.GetCustomerByKey(ctx, customerKey); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return c.repo.ListCustomerTokens(ctx, customerKey)
}

func (c *Controller) RevokeToken(ctx context.Context, value string) error {
	const op = "tokens.RevokeToken.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if err := c.repo.DeleteToken(ctx, value); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	go c.email.TokenRevoked(ctx, value)

	return nil
}
