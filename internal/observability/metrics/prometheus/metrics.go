package prometheus

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

var reqDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "apk_gate_request_duration_seconds",
		Help:    "Request duration by operation and status code.",
		Buckets: prometheus.DefBuckets,
	},
	[]string{"status", "op"},
)

func ObserveRequest(d time.Duration, status int, op string) {
	reqDuration.With(
		prometheus.Labels{
			"status": strconv.Itoa(status),
			"op":     op,
		},
	).Observe(d.Seconds())
}

type Srv struct {
	srv *http.Server
}

func New(port int) *Srv {
	prometheus.MustRegister(reqDuration)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	return &Srv{
		srv: &http.Server{
			Addr:    fmt.Sprintf(":%v", port),
			Handler: mux,
		},
	}
}

func (s *Srv) Start(ctx context.Context) {
	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := s.srv.Shutdown(shutdownCtx); err != nil {
			zap.L().Debug("Error shutting down metrics server", zap.Error(err))
		}
	}()

	zap.L().Info("Starting metrics server", zap.String("addr", s.srv.Addr))
	if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		zap.L().Error("Metrics server error", zap.Error(err))
	}
}
