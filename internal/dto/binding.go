package dto

type BindingRequest struct {
	CustomerKey string `json:"customerKey" validate:"required"`
	DeviceCode  string `json:"deviceCode"  validate:"required"`
}
