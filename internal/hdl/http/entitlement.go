package http

import (
	"errors"
	"net/http"

	"github.com/JMURv/apk-gate/internal/ctrl"
	"github.com/JMURv/apk-gate/internal/dto"
	"github.com/JMURv/apk-gate/internal/hdl"
	"github.com/JMURv/apk-gate/internal/hdl/http/utils"
)

func (h *Handler) RegisterEntitlementRoutes() {
	h.router.Get("/entitlement", h.resolveEntitlement)
}

// resolveEntitlement godoc
//
//	@Summary		Resolve a device's entitlement to a package
//	@Description	Checks the device, token and binding, then records and returns the entitlement
//	@Tags			Entitlement
//	@Produce		json
//	@Param			device	query		string	true	"Device code"
//	@Param			token	query		string	true	"Token value"
//	@Param			package	query		string	true	"Package name"
//	@Param			version	query		string	true	"Package version"
//	@Success		200		{object}	dto.EntitlementResponse
//	@Failure		400		{object}	utils.ErrorResponse	"missing query parameter"
//	@Failure		401		{object}	utils.ErrorResponse	"token expired"
//	@Failure		403		{object}	utils.ErrorResponse	"device not entitled"
//	@Failure		404		{object}	utils.ErrorResponse	"unknown device or token"
//	@Failure		500		{object}	utils.ErrorResponse	"internal error"
//	@Router			/entitlement [get]
func (h *Handler) resolveEntitlement(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := &dto.EntitlementRequest{
		DeviceCode:  q.Get("device"),
		TokenValue:  q.Get("token"),
		PackageName: q.Get("package"),
		Version:     q.Get("version"),
	}
	if req.DeviceCode == "" || req.TokenValue == "" || req.PackageName == "" || req.Version == "" {
		utils.ErrResponse(w, http.StatusBadRequest, hdl.ErrDecodeRequest)
		return
	}

	res, err := h.ctrl.ResolveEntitlement(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ctrl.ErrUnknownDevice), errors.Is(err, ctrl.ErrUnknownToken):
			utils.ErrResponse(w, http.StatusNotFound, err)
		case errors.Is(err, ctrl.ErrTokenExpired):
			utils.ErrResponse(w, http.StatusUnauthorized, err)
		case errors.Is(err, ctrl.ErrDeviceNotEntitled):
			utils.ErrResponse(w, http.StatusForbidden, err)
		case errors.Is(err, ctrl.ErrOrphanToken):
			utils.ErrResponse(w, http.StatusInternalServerError, err)
		default:
			utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		}
		return
	}

	utils.SuccessResponse(w, http.StatusOK, res)
}
