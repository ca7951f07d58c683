package http

import (
	nethttp "net/http"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/taldoflemis/brain.test-gateway/pkg/observability"
)

const DefaultRequestIDHeader = "X-Request-ID"

type (
	ObservabilityFieldExtractor  func(*nethttp.Request) string
	ObservabilityFieldExtractors map[observability.Field][]ObservabilityFieldExtractor
)

func WithRequestObservability(observer observability.Observer, requestIDHeaderName string) ClientOption {
	return func(c *clientImpl) {
		c.restClient.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			id := observer.Field(req.Context(), observability.FieldRequestID)
			if id == "" {
				return nil
			}

			req.SetHeader(requestIDHeaderName, id)
			return nil
		})
	}
}

func WithObservability(
	observer observability.Observer,
	fields ObservabilityFieldExtractors,
) ServerOption {
	return WithMW(func(handler nethttp.Handler) nethttp.Handler {
		return nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			for field, extractors := range fields {
				for _, extractor := range extractors {
					if value := extractor(r); value != "" {
						ctx := observer.WithField(r.Context(), field, value)
						r = r.WithContext(ctx)
						break
					}
				}
			}

			handler.ServeHTTP(w, r)
		})
	})
}

func ObservabilityFieldHeaderExtractor(header string) ObservabilityFieldExtractor {
	return func(r *nethttp.Request) string {
		return r.Header.Get(header)
	}
}

func ObservabilityFieldRandomUUIDExtractor() ObservabilityFieldExtractor {
	return func(_ *nethttp.Request) string {
		return uuid.New().String()
	}
}
