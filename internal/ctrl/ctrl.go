package ctrl

import (
	"context"
	"io"
	"time"

	"github.com/JMURv/apk-gate/internal/config"
)

type AppRepo interface {
	customerRepo
	deviceRepo
	bindingRepo
	tokenRepo
	entitlementRepo
}

type AppCtrl interface {
	customerCtrl
	deviceCtrl
	bindingCtrl
	tokenCtrl
	entitlementCtrl
}

type CacheService interface {
	io.Closer
	GetToStruct(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, t time.Duration, key string, val any)
	Delete(ctx context.Context, key string)
	InvalidateKeysByPattern(ctx context.Context, pattern string)
}

type EmailService interface {
	TokenIssued(ctx context.Context, customerKey, tokenValue string)
	TokenRevoked(ctx context.Context, tokenValue string)
}

type Controller struct {
	repo  AppRepo
	cache CacheService
	email EmailService
	apk   config.APKConfig
}

func New(repo AppRepo, cache CacheService, email EmailService, apk config.APKConfig) *Controller {
	return &Controller{
		repo:  repo,
		cache: cache,
		email: email,
		apk:   apk,
	}
}
