package dto

import (
	md "github.com/JMURv/apk-gate/internal/models"
	"github.com/google/uuid"
)

type PaginatedCustomerResponse struct {
	Data        []*md.Customer `json:"data"`
	Count       int64          `json:"count"`
	TotalPages  int            `json:"totalPages"`
	CurrentPage int            `json:"currentPage"`
	HasNextPage bool           `json:"hasNextPage"`
}

type CreateCustomerRequest struct {
	Key  string `json:"key"  validate:"required"`
	Name string `json:"name" validate:"required"`
	Note string `json:"note"`
}

type CreateCustomerResponse struct {
	ID uuid.UUID `json:"id"`
}
