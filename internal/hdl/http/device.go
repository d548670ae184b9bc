package http

import (
	"errors"
	"net/http"

	"github.com/JMURv/apk-gate/internal/ctrl"
	"github.com/JMURv/apk-gate/internal/dto"
	"github.com/JMURv/apk-gate/internal/hdl"
	mid "github.com/JMURv/apk-gate/internal/hdl/http/middleware"
	"github.com/JMURv/apk-gate/internal/hdl/http/utils"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (h *Handler) RegisterDeviceRoutes() {
	h.router.With(mid.Admin(h.au)).Post("/devices", h.registerDevice)
	h.router.With(mid.Admin(h.au)).Get("/devices", h.listDevices)
	h.router.With(mid.Admin(h.au)).Get("/devices/{code}", h.getDevice)
	h.router.With(mid.Admin(h.au)).Get("/devices/{code}/customers", h.listDeviceCustomers)
	h.router.With(mid.Admin(h.au)).Get("/devices/{code}/entitlements", h.listDeviceEntitlements)
	h.router.With(mid.Admin(h.au)).Delete("/devices/{id}", h.deleteDevice)
}

// registerDevice godoc
//
//	@Summary		Register a new device
//	@Description	Registers a device under a unique, immutable code
//	@Tags			Device
//	@Accept			json
//	@Produce		json
//	@Param			body	body		dto.RegisterDeviceRequest	true	"Device payload"
//	@Success		201		{object}	dto.RegisterDeviceResponse
//	@Failure		400		{object}	utils.ErrorResponse	"bad request"
//	@Failure		409		{object}	utils.ErrorResponse	"device code already exists"
//	@Failure		500		{object}	utils.ErrorResponse	"internal error"
//	@Router			/devices [post]
func (h *Handler) registerDevice(w http.ResponseWriter, r *http.Request) {
	req := &dto.RegisterDeviceRequest{}
	if ok := utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	res, err := h.ctrl.RegisterDevice(r.Context(), req)
	if err != nil {
		if errors.Is(err, ctrl.ErrAlreadyExists) {
			utils.ErrResponse(w, http.StatusConflict, err)
			return
		}
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.SuccessResponse(w, http.StatusCreated, res)
}

// listDevices godoc
//
//	@Summary		List devices
//	@Description	Retrieve a paginated list of devices with optional filters
//	@Tags			Device
//	@Produce		json
//	@Param			page	query		int	false	"Page number"	default(1)
//	@Param			size	query		int	false	"Page size"		default(40)
//	@Success		200		{object}	dto.PaginatedDeviceResponse
//	@Failure		500		{object}	utils.ErrorResponse	"internal error"
//	@Router			/devices [get]
func (h *Handler) listDevices(w http.ResponseWriter, r *http.Request) {
	page, size := utils.ParsePaginationValues(r)
	filters := utils.ParseFiltersByURL(r)

	res, err := h.ctrl.ListDevices(r.Context(), page, size, filters)
	if err != nil {
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.SuccessResponse(w, http.StatusOK, res)
}

// getDevice godoc
//
//	@Summary		Get device by code
//	@Tags			Device
//	@Produce		json
//	@Param			code	path		string	true	"Device code"
//	@Success		200		{object}	models.Device
//	@Failure		404		{object}	utils.ErrorResponse	"device not found"
//	@Failure		500		{object}	utils.ErrorResponse	"internal error"
//	@Router			/devices/{code} [get]
func (h *Handler) getDevice(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if code == "" {
		utils.ErrResponse(w, http.StatusBadRequest, hdl.ErrToRetrievePathArg)
		return
	}

	res, err := h.ctrl.GetDeviceByCode(r.Context(), code)
	if err != nil {
		if errors.Is(err, ctrl.ErrNotFound) {
			utils.ErrResponse(w, http.StatusNotFound, err)
			return
		}
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.SuccessResponse(w, http.StatusOK, res)
}

// listDeviceCustomers godoc
//
//	@Summary		List customers a device is bound to
//	@Tags			Binding
//	@Produce		json
//	@Param			code	path		string	true	"Device code"
//	@Success		200		{array}		models.Customer
//	@Failure		404		{object}	utils.ErrorResponse	"device not found"
//	@Failure		500		{object}	utils.ErrorResponse	"internal error"
//	@Router			/devices/{code}/customers [get]
func (h *Handler) listDeviceCustomers(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if code == "" {
		utils.ErrResponse(w, http.StatusBadRequest, hdl.ErrToRetrievePathArg)
		return
	}

	res, err := h.ctrl.ListDeviceCustomers(r.Context(), code)
	if err != nil {
		if errors.Is(err, ctrl.ErrNotFound) {
			utils.ErrResponse(w, http.StatusNotFound, err)
			return
		}
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.SuccessResponse(w, http.StatusOK, res)
}

// listDeviceEntitlements godoc
//
//	@Summary		List entitlement records for a device
//	@Tags			Entitlement
//	@Produce		json
//	@Param			code	path		string	true	"Device code"
//	@Success		200		{array}		models.APKInfo
//	@Failure		404		{object}	utils.ErrorResponse	"device not found"
//	@Failure		500		{object}	utils.ErrorResponse	"internal error"
//	@Router			/devices/{code}/entitlements [get]
func (h *Handler) listDeviceEntitlements(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if code == "" {
		utils.ErrResponse(w, http.StatusBadRequest, hdl.ErrToRetrievePathArg)
		return
	}

	res, err := h.ctrl.ListDeviceEntitlements(r.Context(), code)
	if err != nil {
		if errors.Is(err, ctrl.ErrNotFound) {
			utils.ErrResponse(w, http.StatusNotFound, err)
			return
		}
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.SuccessResponse(w, http.StatusOK, res)
}

// deleteDevice godoc
//
//	@Summary		Delete a device
//	@Description	Removes the device, its bindings and dependent entitlements
//	@Tags			Device
//	@Param			id	path	string	true	"Device UUID"
//	@Success		204	{object}	nil					"No Content"
//	@Failure		404	{object}	utils.ErrorResponse	"device not found"
//	@Failure		500	{object}	utils.ErrorResponse	"internal error"
//	@Router			/devices/{id} [delete]
func (h *Handler) deleteDevice(w http.ResponseWriter, r *http.Request) {
	uid, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil || uid == uuid.Nil {
		zap.L().Error(
			hdl.ErrFailedToParseUUID.Error(),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		utils.ErrResponse(w, http.StatusBadRequest, hdl.ErrFailedToParseUUID)
		return
	}

	err = h.ctrl.DeleteDevice(r.Context(), uid)
	if err != nil {
		if errors.Is(err, ctrl.ErrNotFound) {
			utils.ErrResponse(w, http.StatusNotFound, err)
			return
		}
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.StatusResponse(w, http.StatusNoContent)
}
