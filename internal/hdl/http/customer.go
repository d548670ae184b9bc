package http

import (
	"errors"
	"net/http"

	"github.com/JMURv/apk-gate/internal/ctrl"
	"github.com/JMURv/apk-gate/internal/dto"
	"github.com/JMURv/apk-gate/internal/hdl"
	mid "github.com/JMURv/apk-gate/internal/hdl/http/middleware"
	"github.com/JMURv/apk-gate/internal/hdl/http/utils"
	_ "github.com/JMURv/apk-gate/internal/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (h *Handler) RegisterCustomerRoutes() {
	h.router.With(mid.Admin(h.au)).Post("/customers", h.createCustomer)
	h.router.With(mid.Admin(h.au)).Get("/customers", h.listCustomers)
	h.router.With(mid.Admin(h.au)).Get("/customers/{key}", h.getCustomer)
	h.router.With(mid.Admin(h.au)).Get("/customers/{key}/devices", h.listCustomerDevices)
	h.router.With(mid.Admin(h.au)).Get("/customers/{key}/tokens", h.listCustomerTokens)
	h.router.With(mid.Admin(h.au)).Delete("/customers/{id}", h.deleteCustomer)
}

// createCustomer godoc
//
//	@Summary		Create a new customer
//	@Description	Registers a customer under a unique, immutable key
//	@Tags			Customer
//	@Accept			json
//	@Produce		json
//	@Param			body	body		dto.CreateCustomerRequest	true	"Customer payload"
//	@Success		201		{object}	dto.CreateCustomerResponse
//	@Failure		400		{object}	utils.ErrorResponse	"bad request"
//	@Failure		409		{object}	utils.ErrorResponse	"customer key already exists"
//	@Failure		500		{object}	utils.ErrorResponse	"internal error"
//	@Router			/customers [post]
func (h *Handler) createCustomer(w http.ResponseWriter, r *http.Request) {
	req := &dto.CreateCustomerRequest{}
	if ok := utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	res, err := h.ctrl.CreateCustomer(r.Context(), req)
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

// listCustomers godoc
//
//	@Summary		List customers
//	@Description	Retrieve a paginated list of customers with optional filters
//	@Tags			Customer
//	@Produce		json
//	@Param			page	query		int	false	"Page number"	default(1)
//	@Param			size	query		int	false	"Page size"		default(40)
//	@Success		200		{object}	dto.PaginatedCustomerResponse
//	@Failure		500		{object}	utils.ErrorResponse	"internal error"
//	@Router			/customers [get]
func (h *Handler) listCustomers(w http.ResponseWriter, r *http.Request) {
	page, size := utils.ParsePaginationValues(r)
	filters := utils.ParseFiltersByURL(r)

	res, err := h.ctrl.ListCustomers(r.Context(), page, size, filters)
	if err != nil {
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.SuccessResponse(w, http.StatusOK, res)
}

// getCustomer godoc
//
//	@Summary		Get customer by key
//	@Tags			Customer
//	@Produce		json
//	@Param			key	path		string	true	"Customer key"
//	@Success		200	{object}	models.Customer
//	@Failure		404	{object}	utils.ErrorResponse	"customer not found"
//	@Failure		500	{object}	utils.ErrorResponse	"internal error"
//	@Router			/customers/{key} [get]
func (h *Handler) getCustomer(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	if key == "" {
		utils.ErrResponse(w, http.StatusBadRequest, hdl.ErrToRetrievePathArg)
		return
	}

	res, err := h.ctrl.GetCustomerByKey(r.Context(), key)
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

// listCustomerDevices godoc
//
//	@Summary		List devices bound to a customer
//	@Tags			Binding
//	@Produce		json
//	@Param			key	path		string	true	"Customer key"
//	@Success		200	{array}		models.Device
//	@Failure		404	{object}	utils.ErrorResponse	"customer not found"
//	@Failure		500	{object}	utils.ErrorResponse	"internal error"
//	@Router			/customers/{key}/devices [get]
func (h *Handler) listCustomerDevices(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	if key == "" {
		utils.ErrResponse(w, http.StatusBadRequest, hdl.ErrToRetrievePathArg)
		return
	}

	res, err := h.ctrl.ListCustomerDevices(r.Context(), key)
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

// listCustomerTokens godoc
//
//	@Summary		List tokens issued for a customer
//	@Tags			Token
//	@Produce		json
//	@Param			key	path		string	true	"Customer key"
//	@Success		200	{array}		models.Token
//	@Failure		404	{object}	utils.ErrorResponse	"customer not found"
//	@Failure		500	{object}	utils.ErrorResponse	"internal error"
//	@Router			/customers/{key}/tokens [get]
func (h *Handler) listCustomerTokens(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	if key == "" {
		utils.ErrResponse(w, http.StatusBadRequest, hdl.ErrToRetrievePathArg)
		return
	}

	res, err := h.ctrl.ListCustomerTokens(r.Context(), key)
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

// deleteCustomer godoc
//
//	@Summary		Delete a customer
//	@Description	Removes the customer, its tokens, bindings and dependent entitlements
//	@Tags			Customer
//	@Param			id	path	string	true	"Customer UUID"
//	@Success		204	{object}	nil					"No Content"
//	@Failure		404	{object}	utils.ErrorResponse	"customer not found"
//	@Failure		500	{object}	utils.ErrorResponse	"internal error"
//	@Router			/customers/{id} [delete]
func (h *Handler) deleteCustomer(w http.ResponseWriter, r *http.Request) {
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

	err = h.ctrl.DeleteCustomer(r.Context(), uid)
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
