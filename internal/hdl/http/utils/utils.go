package utils

import (
	"net/http"
	"strconv"

	"github.com/JMURv/apk-gate/internal/config"
	"github.com/JMURv/apk-gate/internal/hdl"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

type Response struct {
	Data any `json:"data"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func SuccessResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(
		&Response{
			Data: data,
		},
	)
}

func StatusResponse(w http.ResponseWriter, statusCode int) {
	w.WriteHeader(statusCode)
}

func ErrResponse(w http.ResponseWriter, statusCode int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(
		&ErrorResponse{
			Error: err.Error(),
		},
	)
}

// ParseAndValidate decodes the request body into dest and runs struct
// validation, writing the error response itself on failure.
func ParseAndValidate(w http.ResponseWriter, r *http.Request, dest any) bool {
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		ErrResponse(w, http.StatusBadRequest, hdl.ErrDecodeRequest)
		return false
	}

	if err := validator.New().Struct(dest); err != nil {
		ErrResponse(w, http.StatusBadRequest, err)
		return false
	}

	return true
}

func ParsePaginationValues(r *http.Request) (int, int) {
	page, size := config.DefaultPage, config.DefaultSize

	if v, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && v > 0 {
		page = v
	}

	if v, err := strconv.Atoi(r.URL.Query().Get("size")); err == nil && v > 0 {
		size = v
	}

	return page, size
}

func ParseFiltersByURL(r *http.Request) map[string]any {
	filters := make(map[string]any)
	for k, v := range r.URL.Query() {
		if k == "page" || k == "size" || len(v) == 0 {
			continue
		}
		filters[k] = v[0]
	}
	return filters
}
