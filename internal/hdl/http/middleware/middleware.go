package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/JMURv/apk-gate/internal/auth"
	"github.com/JMURv/apk-gate/internal/hdl/http/utils"
	metrics "github.com/JMURv/apk-gate/internal/observability/metrics/prometheus"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

// Admin guards the administrative surface: the request must carry a
// credential that the access-control collaborator accepts.
func Admin(au auth.Core) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				credential := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
				if credential == "" {
					utils.ErrResponse(w, http.StatusUnauthorized, auth.ErrNotAdmin)
					return
				}

				if err := au.VerifyAdmin(r.Context(), credential); err != nil {
					utils.ErrResponse(w, http.StatusForbidden, err)
					return
				}

				next.ServeHTTP(w, r)
			},
		)
	}
}

type LoggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func NewLoggingResponseWriter(w http.ResponseWriter) *LoggingResponseWriter {
	return &LoggingResponseWriter{w, http.StatusOK}
}

func (lrw *LoggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

func Prometheus(next http.Handler) http.Handler {
	return http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			s := time.Now()
			op := fmt.Sprintf("%s %s", r.Method, r.URL.Path)

			lrw := NewLoggingResponseWriter(w)
			next.ServeHTTP(lrw, r)
			metrics.ObserveRequest(time.Since(s), lrw.statusCode, op)
		},
	)
}

func Logger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				start := time.Now()
				lrw := NewLoggingResponseWriter(w)
				logger.Debug(
					"-->",
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.String("remote", r.RemoteAddr),
				)

				next.ServeHTTP(lrw, r)

				logger.Info(
					"<--",
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.Int("status", lrw.statusCode),
					zap.Duration("duration", time.Since(start)),
					zap.String("remote", r.RemoteAddr),
				)
			},
		)
	}
}

func OT(next http.Handler) http.Handler {
	return http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			span, ctx := opentracing.StartSpanFromContext(
				r.Context(), fmt.Sprintf("%s %s", r.Method, r.URL.Path),
			)
			defer span.Finish()

			next.ServeHTTP(w, r.WithContext(ctx))
		},
	)
}
