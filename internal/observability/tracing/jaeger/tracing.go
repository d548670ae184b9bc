package jaeger

import (
	"context"

	cfg "github.com/JMURv/apk-gate/internal/config"
	"github.com/opentracing/opentracing-go"
	jaegercfg "github.com/uber/jaeger-client-go/config"
	"go.uber.org/zap"
)

// Start installs the jaeger tracer as the opentracing global and blocks
// until ctx is done. With no jaeger section in the config the process
// keeps the default noop tracer, spans still propagate, nothing reports.
func Start(ctx context.Context, serviceName string, conf *cfg.JaegerConfig) {
	if conf == nil {
		zap.L().Info("Jaeger is not configured, tracing is a noop")
		return
	}

	tracer, closer, err := jaegercfg.Configuration{
		ServiceName: serviceName,
		Sampler: &jaegercfg.SamplerConfig{
			Type:  conf.Sampler.Type,
			Param: float64(conf.Sampler.Param),
		},
		Reporter: &jaegercfg.ReporterConfig{
			LogSpans:           conf.Reporter.LogSpans,
			LocalAgentHostPort: conf.Reporter.LocalAgentHostPort,
		},
	}.NewTracer()
	if err != nil {
		zap.L().Fatal("Error initializing Jaeger tracer", zap.Error(err))
	}

	opentracing.SetGlobalTracer(tracer)
	zap.L().Info("Jaeger has been started")

	<-ctx.Done()

	if err = closer.Close(); err != nil {
		zap.L().Debug("Error shutting down Jaeger", zap.Error(err))
	}
	zap.L().Info("Jaeger has been stopped")
}
