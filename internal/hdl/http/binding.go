package http

import (
	"errors"
	"net/http"

	"github.com/JMURv/apk-gate/internal/ctrl"
	"github.com/JMURv/apk-gate/internal/dto"
	"github.com/JMURv/apk-gate/internal/hdl"
	mid "github.com/JMURv/apk-gate/internal/hdl/http/middleware"
	"github.com/JMURv/apk-gate/internal/hdl/http/utils"
)

func (h *Handler) RegisterBindingRoutes() {
	h.router.With(mid.Admin(h.au)).Post("/bindings", h.bindDevice)
	h.router.With(mid.Admin(h.au)).Delete("/bindings", h.unbindDevice)
}

// bindDevice godoc
//
//	@Summary		Bind a device to a customer
//	@Description	Creates a customer-device association; both sides must already exist
//	@Tags			Binding
//	@Accept			json
//	@Produce		json
//	@Param			body	body		dto.BindingRequest	true	"Binding payload"
//	@Success		201		{object}	nil					"Created"
//	@Failure		400		{object}	utils.ErrorResponse	"bad request"
//	@Failure		404		{object}	utils.ErrorResponse	"customer or device not found"
//	@Failure		409		{object}	utils.ErrorResponse	"binding already exists"
//	@Failure		500		{object}	utils.ErrorResponse	"internal error"
//	@Router			/bindings [post]
func (h *Handler) bindDevice(w http.ResponseWriter, r *http.Request) {
	req := &dto.BindingRequest{}
	if ok := utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	err := h.ctrl.BindDevice(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ctrl.ErrNotFound):
			utils.ErrResponse(w, http.StatusNotFound, err)
		case errors.Is(err, ctrl.ErrAlreadyExists):
			utils.ErrResponse(w, http.StatusConflict, err)
		default:
			utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		}
		return
	}

	utils.StatusResponse(w, http.StatusCreated)
}

// unbindDevice godoc
//
//	@Summary		Unbind a device from a customer
//	@Tags			Binding
//	@Accept			json
//	@Produce		json
//	@Param			body	body		dto.BindingRequest	true	"Binding payload"
//	@Success		204		{object}	nil					"No Content"
//	@Failure		400		{object}	utils.ErrorResponse	"bad request"
//	@Failure		404		{object}	utils.ErrorResponse	"binding not found"
//	@Failure		500		{object}	utils.ErrorResponse	"internal error"
//	@Router			/bindings [delete]
func (h *Handler) unbindDevice(w http.ResponseWriter, r *http.Request) {
	req := &dto.BindingRequest{}
	if ok := utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	err := h.ctrl.UnbindDevice(r.Context(), req)
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
