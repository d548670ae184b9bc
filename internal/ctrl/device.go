package ctrl

import (
	"context"
	"errors"
	"fmt"

	"github.com/JMURv/apk-gate/internal/config"
	"github.com/JMURv/apk-gate/internal/dto"
	md "github.com/JMURv/apk-gate/internal/models"
	"github.com/JMURv/apk-gate/internal/repo"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
)

type deviceCtrl interface {
	RegisterDevice(ctx context.Context, req *dto.RegisterDeviceRequest) (*dto.RegisterDeviceResponse, error)
	GetDeviceByCode(ctx context.Context, code string) (*md.Device, error)
	ListDevices(
		ctx context.Context,
		page, size int,
		filters map[string]any,
	) (*dto.PaginatedDeviceResponse, error)
	DeleteDevice(ctx context.Context, id uuid.UUID) error
}

type deviceRepo interface {
	RegisterDevice(ctx context.Context, req *dto.RegisterDeviceRequest) (uuid.UUID, error)
	GetDeviceByCode(ctx context.Context, code string) (*md.Device, error)
	GetDeviceByID(ctx context.Context, id uuid.UUID) (*md.Device, error)
	ListDevices(
		ctx context.Context,
		page, size int,
		filters map[string]any,
	) (*dto.PaginatedDeviceResponse, error)
	DeleteDevice(ctx context.Context, id uuid.UUID) error
}

const (
	deviceCacheKey = "device:%v"
	devicesListKey = "devices-list:%v:%v:%v"
	devicesPattern = "devices-*"
)

func (c *Controller) RegisterDevice(
	ctx context.Context,
	req *dto.RegisterDeviceRequest,
) (*dto.RegisterDeviceResponse, error) {
	const op = "devices.RegisterDevice.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	id, err := c.repo.RegisterDevice(ctx, req)
	if err != nil {
		if errors.Is(err, repo.ErrAlreadyExists) {
			return nil, ErrAlreadyExists
		}
		return nil, err
	}

	go c.cache.InvalidateKeysByPattern(ctx, devicesPattern)

	return &dto.RegisterDeviceResponse{ID: id}, nil
}

func (c *Controller) GetDeviceByCode(ctx context.Context, code string) (*md.Device, error) {
	const op = "devices.GetDeviceByCode.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	cached := &md.Device{}
	cacheKey := fmt.Sprintf(deviceCacheKey, code)
	if err := c.cache.GetToStruct(ctx, cacheKey, cached); err == nil {
		return cached, nil
	}

	res, err := c.repo.GetDeviceByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	bytes, err := json.Marshal(res)
	if err == nil {
		c.cache.Set(ctx, config.DefaultCacheTime, cacheKey, bytes)
	}

	return res, nil
}

func (c *Controller) ListDevices(
	ctx context.Context,
	page, size int,
	filters map[string]any,
) (*dto.PaginatedDeviceResponse, error) {
	const op = "devices.ListDevices.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	cached := &dto.PaginatedDeviceResponse{}
	cacheKey := fmt.Sprintf(devicesListKey, page, size, filters)
	if err := c.cache.GetToStruct(ctx, cacheKey, cached); err == nil {
		return cached, nil
	}

	res, err := c.repo.ListDevices(ctx, page, size, filters)
	if err != nil {
		return nil, err
	}

	bytes, err := json.Marshal(res)
	if err == nil {
		c.cache.Set(ctx, config.DefaultCacheTime, cacheKey, bytes)
	}

	return res, nil
}

func (c *Controller) DeleteDevice(ctx context.Context, id uuid.UUID) error {
	const op = "devices.DeleteDevice.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	device, err := c.repo.GetDeviceByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	if err = c.repo.DeleteDevice(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	c.cache.Delete(ctx, fmt.Sprintf(deviceCacheKey, device.Code))

	go c.cache.InvalidateKeysByPattern(ctx, devicesPattern)

	return nil
}
