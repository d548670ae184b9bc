package ctrl

import (
	"context"
	"errors"
	"fmt"
	"path"
	"time"

	"github.com/JMURv/apk-gate/internal/dto"
	md "github.com/JMURv/apk-gate/internal/models"
	"github.com/JMURv/apk-gate/internal/repo"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

type entitlementCtrl interface {
	ResolveEntitlement(ctx context.Context, req *dto.EntitlementRequest) (*dto.EntitlementResponse, error)
	ListDeviceEntitlements(ctx context.Context, deviceCode string) ([]md.APKInfo, error)
}

type entitlementRepo interface {
	UpsertEntitlement(ctx context.Context, e *md.APKInfo) (*md.APKInfo, error)
	ListDeviceEntitlements(ctx context.Context, deviceCode string) ([]md.APKInfo, error)
}

func (c *Controller) apkPath(name, version string) string {
	return path.Join(c.apk.ArtifactRoot, name, version, fmt.Sprintf("%s-%s.apk", name, version))
}

// ResolveEntitlement is the access decision. Each step short-circuits with
// its own reason; every read goes to the store so nothing stale leaks in.
// Token validity is recomputed per call, a token expiring mid-session is
// rejected on the next check.
func (c *Controller) ResolveEntitlement(
	ctx context.Context,
	req *dto.EntitlementRequest,
) (*dto.EntitlementResponse, error) {
	const op = "entitlements.ResolveEntitlement.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	device, err := c.repo.GetDeviceByCode(ctx, req.DeviceCode)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUnknownDevice
		}
		return nil, err
	}

	token, err := c.repo.GetTokenByValue(ctx, req.TokenValue)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUnknownToken
		}
		return nil, err
	}

	if !token.IsValid(time.Now().UTC()) {
		return nil, ErrTokenExpired
	}

	customer, err := c.repo.GetCustomerByKey(ctx, token.CustomerKey)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			// Cascades are supposed to make this impossible. Surface it,
			// never repair it.
			zap.L().Error(
				"consistency violation: token references a missing customer",
				zap.String("op", op),
				zap.String("customerKey", token.CustomerKey),
			)
			span.SetTag("error", true)
			return nil, ErrOrphanToken
		}
		return nil, err
	}

	bound, err := c.repo.IsDeviceBound(ctx, customer.ID, device.ID)
	if err != nil {
		return nil, err
	}
	if !bound {
		return nil, ErrDeviceNotEntitled
	}

	res, err := c.repo.UpsertEntitlement(ctx, &md.APKInfo{
		Name:       req.PackageName,
		Path:       c.apkPath(req.PackageName, req.Version),
		VerNumber:  req.Version,
		DeviceCode: device.Code,
		TokenValue: token.Value,
	})
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			// Device or token was revoked under us; report the token as
			// gone so the client re-acquires.
			return nil, ErrUnknownToken
		}
		return nil, err
	}

	return &dto.EntitlementResponse{
		APKName:    res.Name,
		APKPath:    res.Path,
		APKVersion: res.VerNumber,
	}, nil
}

func (c *Controller) ListDeviceEntitlements(
	ctx context.Context,
	deviceCode string,
) ([]md.APKInfo, error) {
	const op = "entitlements.ListDeviceEntitlements.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if _, err := c.repo.GetDeviceByCode(ctx, deviceCode); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return c.repo.ListDeviceEntitlements(ctx, deviceCode)
}
