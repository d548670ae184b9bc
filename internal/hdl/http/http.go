package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	_ "github.com/JMURv/apk-gate/api/rest/v1"
	"github.com/JMURv/apk-gate/internal/auth"
	"github.com/JMURv/apk-gate/internal/ctrl"
	mid "github.com/JMURv/apk-gate/internal/hdl/http/middleware"
	"github.com/JMURv/apk-gate/internal/hdl/http/utils"
	chi "github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

type Handler struct {
	router *chi.Mux
	au     auth.Core
	srv    *http.Server
	ctrl   ctrl.AppCtrl
}

func New(au auth.Core, ctrl ctrl.AppCtrl) *Handler {
	h := &Handler{
		router: chi.NewRouter(),
		au:     au,
		ctrl:   ctrl,
	}

	h.router.Use(
		mid.Logger(zap.L()),
		middleware.StripSlashes,
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		mid.Prometheus,
		mid.OT,
	)

	h.RegisterCustomerRoutes()
	h.RegisterDeviceRoutes()
	h.RegisterBindingRoutes()
	h.RegisterTokenRoutes()
	h.RegisterEntitlementRoutes()

	h.router.Get("/swagger/*", httpSwagger.WrapHandler)
	h.router.Get(
		"/health", func(w http.ResponseWriter, r *http.Request) {
			utils.SuccessResponse(w, http.StatusOK, "OK")
		},
	)

	return h
}

// Router exposes the mux so tests can mount the handler in-process.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) Start(port int) {
	h.srv = &http.Server{
		Handler:      h.router,
		Addr:         fmt.Sprintf(":%v", port),
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	zap.L().Info(
		"Starting HTTP server",
		zap.String("addr", h.srv.Addr),
	)

	err := h.srv.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		zap.L().Error("Server error", zap.Error(err))
	}
}

func (h *Handler) Close(ctx context.Context) error {
	return h.srv.Shutdown(ctx)
}
