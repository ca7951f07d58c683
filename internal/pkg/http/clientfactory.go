package http

import (
	"fmt"
	"time"

	pkgenv "github.com/taldoflemis/brain.test-gateway/pkg/env"
	pkghttp "github.com/taldoflemis/brain.test-gateway/pkg/http"
	pkglog "github.com/taldoflemis/brain.test-gateway/pkg/log"
	pkgmetric "github.com/taldoflemis/brain.test-gateway/pkg/metric"
	pkgobservability "github.com/taldoflemis/brain.test-gateway/pkg/observability"
	pkgstrings "github.com/taldoflemis/brain.test-gateway/pkg/strings"
)

type Destination string

const (
	DestinationAuthService Destination = "auth"
	DestinationGameService Destination = "game"
)

const defaultRequestTimeout = 15 * time.Second

type ClientFactory struct {
	observer pkgobservability.Observer
	metrics  pkgmetric.Metrics
	logger   pkglog.Logger
}

func NewClientFactory(
	observer pkgobservability.Observer,
	metrics pkgmetric.Metrics,
	logger pkglog.Logger,
) *ClientFactory {
	return &ClientFactory{
		observer: observer,
		metrics:  metrics,
		logger:   logger,
	}
}

func (f *ClientFactory) MustInitClient(dest Destination, extraOpts ...pkghttp.ClientOption) pkghttp.Client {
	hostEnv := fmt.Sprintf("%s_SERVICE_URL", pkgstrings.ToScreamingSnakeCase(string(dest)))
	host := pkgenv.Must(pkgenv.Parse[string](hostEnv))
	return f.httpClient(host, string(dest), extraOpts...)
}

func (f *ClientFactory) httpClient(
	baseURL string,
	destinationName string,
	extraOpts ...pkghttp.ClientOption,
) pkghttp.Client {
	timeout := defaultRequestTimeout
	if custom := pkgenv.Must(pkgenv.ParseOptional[*time.Duration]("HTTP_CLIENT_TIMEOUT")); custom != nil {
		timeout = *custom
	}

	opts := append([]pkghttp.ClientOption{
		pkghttp.WithClientBaseURL(baseURL),
		pkghttp.WithRequestTimeout(timeout),
		pkghttp.WithRequestObservability(f.observer, pkghttp.DefaultRequestIDHeader),
		pkghttp.WithRequestLogging(destinationName, f.logger, pkglog.LevelInfo, pkglog.LevelWarn),
		pkghttp.WithRequestMetrics(destinationName, f.metrics),
	}, extraOpts...)

	return pkghttp.NewClient(opts...)
}
