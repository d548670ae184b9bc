package ctrl

import (
	"context"
	"errors"

	"github.com/JMURv/apk-gate/internal/dto"
	md "github.com/JMURv/apk-gate/internal/models"
	"github.com/JMURv/apk-gate/internal/repo"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
)

type bindingCtrl interface {
	BindDevice(ctx context.Context, req *dto.BindingRequest) error
	UnbindDevice(ctx context.Context, req *dto.BindingRequest) error
	ListCustomerDevices(ctx context.Context, customerKey string) ([]md.Device, error)
	ListDeviceCustomers(ctx context.Context, deviceCode string) ([]md.Customer, error)
}

type bindingRepo interface {
	BindDevice(ctx context.Context, customerID, deviceID uuid.UUID) error
	UnbindDevice(ctx context.Context, customerID, deviceID uuid.UUID) error
	IsDeviceBound(ctx context.Context, customerID, deviceID uuid.UUID) (bool, error)
	ListCustomerDevices(ctx context.Context, customerID uuid.UUID) ([]md.Device, error)
	ListDeviceCustomers(ctx context.Context, deviceID uuid.UUID) ([]md.Customer, error)
}

// resolveBindingPair turns the externally presented natural keys into the
// surrogate ids the association table is keyed by.
func (c *Controller) resolveBindingPair(
	ctx context.Context,
	req *dto.BindingRequest,
) (customerID, deviceID uuid.UUID, err error) {
	customer, err := c.repo.GetCustomerByKey(ctx, req.CustomerKey)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return uuid.Nil, uuid.Nil, ErrNotFound
		}
		return uuid.Nil, uuid.Nil, err
	}

	device, err := c.repo.GetDeviceByCode(ctx, req.DeviceCode)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return uuid.Nil, uuid.Nil, ErrNotFound
		}
		return uuid.Nil, uuid.Nil, err
	}

	return customer.ID, device.ID, nil
}

func (c *Controller) BindDevice(ctx context.Context, req *dto.BindingRequest) error {
	const op = "bindings.BindDevice.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	customerID, deviceID, err := c.resolveBindingPair(ctx, req)
	if err != nil {
		return err
	}

	if err = c.repo.BindDevice(ctx, customerID, deviceID); err != nil {
		if errors.Is(err, repo.ErrAlreadyExists) {
			return ErrAlreadyExists
		}
		if errors.Is(err, repo.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	return nil
}

func (c *Controller) UnbindDevice(ctx context.Context, req *dto.BindingRequest) error {
	const op = "bindings.UnbindDevice.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	customerID, deviceID, err := c.resolveBindingPair(ctx, req)
	if err != nil {
		return err
	}

	if err = c.repo.UnbindDevice(ctx, customerID, deviceID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	return nil
}

func (c *Controller) ListCustomerDevices(
	ctx context.Context,
	customerKey string,
) ([]md.Device, error) {
	const op = "bindings.ListCustomerDevices.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	customer, err := c.repo.GetCustomerByKey(ctx, customerKey)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return c.repo.ListCustomerDevices(ctx, customer.ID)
}

func (c *Controller) ListDeviceCustomers(
	ctx context.Context,
	deviceCode string,
) ([]md.Customer, error) {
	const op = "bindings.ListDeviceCustomers.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	device, err := c.repo.GetDeviceByCode(ctx, deviceCode)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return c.repo.ListDeviceCustomers(ctx, device.ID)
}
