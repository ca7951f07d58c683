package cmd

import (
	"context"
	"os"

	commonhttp "github.com/taldoflemis/brain.test-gateway/internal/pkg/http"
	"github.com/taldoflemis/brain.test-gateway/pkg/cmd"
	"github.com/taldoflemis/brain.test-gateway/pkg/env"
	"github.com/taldoflemis/brain.test-gateway/pkg/http"
	"github.com/taldoflemis/brain.test-gateway/pkg/lazy"
	"github.com/taldoflemis/brain.test-gateway/pkg/log"
	"github.com/taldoflemis/brain.test-gateway/pkg/metric"
	pkgmetricstub "github.com/taldoflemis/brain.test-gateway/pkg/metric/stub"
	"github.com/taldoflemis/brain.test-gateway/pkg/observability"
)

var logLevelMap = map[string]log.Level{
	"disabled": log.LevelDisabled,
	"debug":    log.LevelDebug,
	"info":     log.LevelInfo,
	"warn":     log.LevelWarn,
	"error":    log.LevelError,
}

type InfrastructureContainer struct {
	HTTPServer        lazy.Loader[http.Server]
	HTTPClientFactory lazy.Loader[*commonhttp.ClientFactory]
	Metrics           lazy.Loader[metric.Metrics]
	Logger            lazy.Loader[log.Logger]
}

func NewInfrastructureContainer(_ context.Context) *InfrastructureContainer {
	metrics := metricsProvider()
	logger := loggerProvider()
	observer := observerProvider(logger)

	return &InfrastructureContainer{
		HTTPServer:        httpServerProvider(observer, metrics, logger),
		HTTPClientFactory: httpClientFactoryProvider(observer, metrics, logger),
		Metrics:           metrics,
		Logger:            logger,
	}
}

func (i *InfrastructureContainer) Close(ctx context.Context) {
	if cmd.HandleAppPanic(ctx, i.Logger.MustLoad()) {
		defer os.Exit(1)
	}
}

func metricsProvider() lazy.Loader[metric.Metrics] {
	return lazy.New(func() (metric.Metrics, error) {
		return pkgmetricstub.NewMetrics(), nil
	})
}

func loggerProvider() lazy.Loader[log.Logger] {
	return lazy.New(func() (log.Logger, error) {
		logLevelStr, err := env.Parse[string]("LOG_LEVEL")
		if err != nil {
			return log.New(log.LevelInfo), nil
		}

		logLevel, ok := logLevelMap[logLevelStr]
		if !ok {
			logLevel = log.LevelInfo
		}

		return log.New(logLevel), nil
	})
}

func observerProvider(
	logger lazy.Loader[log.Logger],
) lazy.Loader[observability.Observer] {
	return lazy.New(func() (observability.Observer, error) {
		return observability.New(
			observability.WithFieldsLogging(logger.MustLoad(), observability.FieldRequestID),
		), nil
	})
}

func httpServerProvider(
	observer lazy.Loader[observability.Observer],
	metrics lazy.Loader[metric.Metrics],
	logger lazy.Loader[log.Logger],
) lazy.Loader[http.Server] {
	return lazy.New(func() (http.Server, error) {
		address := http.DefaultServerAddress
		if custom := env.Must(env.ParseOptional[*string]("SERVICE_ADDRESS")); custom != nil {
			address = *custom
		}

		return http.NewServer(
			address,
			http.WithHealthCheck(nil),
			http.WithCORSHandler(),
			http.WithObservability(observer.MustLoad(), http.ObservabilityFieldExtractors{
				observability.FieldRequestID: {
					http.ObservabilityFieldHeaderExtractor(http.DefaultRequestIDHeader),
					http.ObservabilityFieldRandomUUIDExtractor(),
				},
			}),
			http.WithMetrics(metrics.MustLoad()),
			http.WithLogging(logger.MustLoad(), log.LevelInfo, log.LevelError),
		), nil
	})
}

func httpClientFactoryProvider(
	observer lazy.Loader[observability.Observer],
	metrics lazy.Loader[metric.Metrics],
	logger lazy.Loader[log.Logger],
) lazy.Loader[*commonhttp.ClientFactory] {
	return lazy.New(func() (*commonhttp.ClientFactory, error) {
		return commonhttp.NewClientFactory(
			observer.MustLoad(),
			metrics.MustLoad(),
			logger.MustLoad(),
		), nil
	})
}
