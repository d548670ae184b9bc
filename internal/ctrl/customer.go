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

type customerCtrl interface {
	CreateCustomer(ctx context.Context, req *dto.CreateCustomerRequest) (*dto.CreateCustomerResponse, error)
	GetCustomerByKey(ctx context.Context, key string) (*md.Customer, error)
	ListCustomers(
		ctx context.Context,
		page, size int,
		filters map[string]any,
	) (*dto.PaginatedCustomerResponse, error)
	DeleteCustomer(ctx context.Context, id uuid.UUID) error
}

type customerRepo interface {
	CreateCustomer(ctx context.Context, req *dto.CreateCustomerRequest) (uuid.UUID, error)
	GetCustomerByKey(ctx context.Context, key string) (*md.Customer, error)
	GetCustomerByID(ctx context.Context, id uuid.UUID) (*md.Customer, error)
	ListCustomers(
		ctx context.Context,
		page, size int,
		filters map[string]any,
	) (*dto.PaginatedCustomerResponse, error)
	DeleteCustomer(ctx context.Context, id uuid.UUID) error
}

const (
	customerCacheKey = "customer:%v"
	customersListKey = "customers-list:%v:%v:%v"
	customersPattern = "customers-*"
)

func (c *Controller) CreateCustomer(
	ctx context.Context,
	req *dto.CreateCustomerRequest,
) (*dto.CreateCustomerResponse, error) {
	const op = "customers.CreateCustomer.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	id, err := c.repo.CreateCustomer(ctx, req)
	if err != nil {
		if errors.Is(err, repo.ErrAlreadyExists) {
			return nil, ErrAlreadyExists
		}
		return nil, err
	}

	go c.cache.InvalidateKeysByPattern(ctx, customersPattern)

	return &dto.CreateCustomerResponse{ID: id}, nil
}

func (c *Controller) GetCustomerByKey(ctx context.Context, key string) (*md.Customer, error) {
	const op = "customers.GetCustomerByKey.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	cached := &md.Customer{}
	cacheKey := fmt.Sprintf(customerCacheKey, key)
	if err := c.cache.GetToStruct(ctx, cacheKey, cached); err == nil {
		return cached, nil
	}

	res, err := c.repo.GetCustomerByKey(ctx, key)
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

func (c *Controller) ListCustomers(
	ctx context.Context,
	page, size int,
	filters map[string]any,
) (*dto.PaginatedCustomerResponse, error) {
	const op = "customers.ListCustomers.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	cached := &dto.PaginatedCustomerResponse{}
	cacheKey := fmt.Sprintf(customersListKey, page, size, filters)
	if err := c.cache.GetToStruct(ctx, cacheKey, cached); err == nil {
		return cached, nil
	}

	res, err := c.repo.ListCustomers(ctx, page, size, filters)
	if err != nil {
		return nil, err
	}

	bytes, err := json.Marshal(res)
	if err == nil {
		c.cache.Set(ctx, config.DefaultCacheTime, cacheKey, bytes)
	}

	return res, nil
}

func (c *Controller) DeleteCustomer(ctx context.Context, id uuid.UUID) error {
	const op = "customers.DeleteCustomer.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	customer, err := c.repo.GetCustomerByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	if err = c.repo.DeleteCustomer(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	c.cache.Delete(ctx, fmt.Sprintf(customerCacheKey, customer.Key))

	go c.cache.InvalidateKeysByPattern(ctx, customersPattern)

	return nil
}
