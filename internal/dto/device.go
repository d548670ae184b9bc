package dto

import (
	md "github.com/JMURv/apk-gate/internal/models"
	"github.com/google/uuid"
)

type PaginatedDeviceResponse struct {
	Data        []*md.Device `json:"data"`
	Count       int64        `json:"count"`
	TotalPages  int          `json:"totalPages"`
	CurrentPage int          `json:"currentPage"`
	HasNextPage bool         `json:"hasNextPage"`
}

type RegisterDeviceRequest struct {
	Code  string `json:"code"  validate:"required"`
	Model string `json:"model"`
}

type RegisterDeviceResponse struct {
	ID uuid.UUID `json:"id"`
}
