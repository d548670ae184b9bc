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
)

func (h *Handler) RegisterTokenRoutes() {
	h.router.With(mid.Admin(h.au)).Post("/tokens", h.issueToken)
	h.router.With(mid.Admin(h.au)).Delete("/tokens/{value}", h.revokeToken)
}

// issueToken godoc
//
//	@Summary		Issue an access token for a customer
//	@Description	Generates a unique token value; an optional TTL sets its expiry
//	@Tags			Token
//	@Accept			json
//	@Produce		json
//	@Param			body	body		dto.IssueTokenRequest	true	"Token payload"
//	@Success		201		{object}	dto.IssueTokenResponse
//	@Failure		400		{object}	utils.ErrorResponse	"bad request"
//	@Failure		404		{object}	utils.ErrorResponse	"customer not found"
//	@Failure		500		{object}	utils.ErrorResponse	"internal error"
//	@Router			/tokens [post]
func (h *Handler) issueToken(w http.ResponseWriter, r *http.Request) {
	req := &dto.IssueTokenRequest{}
	if ok := utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	res, err := h.ctrl.IssueToken(r.Context(), req)
	if err != nil {
		if errors.Is(err, ctrl.ErrNotFound) {
			utils.ErrResponse(w, http.StatusNotFound, err)
			return
		}
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.SuccessResponse(w, http.StatusCreated, res)
}

// revokeToken godoc
//
//	@Summary		Revoke a token
//	@Description	Removes the token and the entitlement records resolved through it
//	@Tags			Token
//	@Param			value	path	string	true	"Token value"
//	@Success		204		{object}	nil					"No Content"
//	@Failure		404		{object}	utils.ErrorResponse	"token not found"
//	@Failure		500		{object}	utils.ErrorResponse	"internal error"
//	@Router			/tokens/{value} [delete]
func (h *Handler) revokeToken(w http.ResponseWriter, r *http.Request) {
	value := chi.URLParam(r, "value")
	if value == "" {
		utils.ErrResponse(w, http.StatusBadRequest, hdl.ErrToRetrievePathArg)
		return
	}

	err := h.ctrl.RevokeToken(r.Context(), value)
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
