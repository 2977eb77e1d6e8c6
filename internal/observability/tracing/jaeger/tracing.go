package jaeger

import (
	"context"

	cfg "github.com/JMURv/gate-access/internal/config"
	"github.com/opentracing/opentracing-go"
	"github.com/uber/jaeger-client-go"
	jaegercfg "github.com/uber/jaeger-client-go/config"
	"go.uber.org/zap"
)

// zapLogger routes the tracer's internal logging through the global logger.
type zapLogger struct{}

func (zapLogger) Error(msg string) {
	zap.L().Error(msg)
}

func (zapLogger) Infof(msg string, args ...interface{}) {
	zap.L().Sugar().Debugf(msg, args...)
}

// Start installs the global tracer and blocks until ctx is cancelled.
// An empty sampler type falls back to sampling every span, which suits a
// gate service whose traffic peaks only while doors are open.
func Start(ctx context.Context, serviceName string, conf *cfg.JaegerConfig) {
	samplerType := conf.Sampler.Type
	samplerParam := float64(conf.Sampler.Param)
	if samplerType == "" {
		samplerType = jaeger.SamplerTypeConst
		samplerParam = 1
	}

	tracerCfg := jaegercfg.Configuration{
		ServiceName: serviceName,
		Sampler: &jaegercfg.SamplerConfig{
			Type:  samplerType,
			Param: samplerParam,
		},
		Reporter: &jaegercfg.ReporterConfig{
			LogSpans:           conf.Reporter.LogSpans,
			LocalAgentHostPort: conf.Reporter.LocalAgentHostPort,
		},
	}

	tracer, closer, err := tracerCfg.NewTracer(jaegercfg.Logger(zapLogger{}))
	if err != nil {
		zap.L().Fatal("Failed to build tracer", zap.Error(err))
	}

	opentracing.SetGlobalTracer(tracer)
	zap.L().Info(
		"Tracing has been started",
		zap.String("agent", conf.Reporter.LocalAgentHostPort),
		zap.String("sampler", samplerType),
	)

	<-ctx.Done()

	if err = closer.Close(); err != nil {
		zap.L().Debug("Failed to flush tracer", zap.Error(err))
	}
	zap.L().Info("Tracing has been stopped")
}
