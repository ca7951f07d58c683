package http

import (
	nethttp "net/http"

	"github.com/go-resty/resty/v2"

	"github.com/taldoflemis/brain.test-gateway/pkg/log"
)

const destinationNameLogField = "destinationName"

func WithRequestLogging(destinationName string, logger log.Logger, infoLevel, errorLevel log.Level) ClientOption {
	return func(c *clientImpl) {
		c.restClient.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
			requestLogger := logger.With(log.Fields{
				destinationNameLogField: destinationNameForLogging(destinationName),
				"method":                resp.Request.Method,
				"url":                   resp.Request.URL,
				"code":                  resp.StatusCode(),
			})

			if resp.StatusCode() >= nethttp.StatusInternalServerError {
				requestLogger.Log(resp.Request.Context(), errorLevel, "http call completed with internal error")
			} else {
				requestLogger.Log(resp.Request.Context(), infoLevel, "http call completed")
			}

			return nil
		})

		c.restClient.OnError(func(req *resty.Request, err error) {
			logger.
				With(log.Fields{
					destinationNameLogField: destinationNameForLogging(destinationName),
					"method":                req.Method,
					"url":                   req.URL,
				}).
				WithError(err).
				Log(req.Context(), errorLevel, "http call completed with error")
		})
	}
}

func WithLogging(logger log.Logger, infoLevel, errorLevel log.Level, excludedPaths ...string) ServerOption {
	excludedPaths = append(excludedPaths, healthPath)

	isExcluded := func(path string) bool {
		for _, excludedPath := range excludedPaths {
			if excludedPath == path {
				return true
			}
		}
		return false
	}

	return WithMW(func(handler nethttp.Handler) nethttp.Handler {
		return nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			if isExcluded(r.URL.Path) {
				handler.ServeHTTP(w, r)
				return
			}

			handler.ServeHTTP(w, r)

			meta := getHandlerMetadata(r.Context())
			requestLogger := logger.With(log.Fields{
				"method": r.Method,
				"path":   r.URL.Path,
				"code":   meta.Code,
			})

			if meta.Panic != nil {
				requestLogger.
					WithField("panic", log.Fields{
						"message": meta.Panic.Message,
						"stack":   string(meta.Panic.Stacktrace),
					}).
					Error(r.Context(), "request handled with panic")
				return
			}

			requestLogger = requestLogger.WithError(meta.Error)
			if meta.Code >= nethttp.StatusInternalServerError {
				requestLogger.Log(r.Context(), errorLevel, "request handled with internal error")
			} else {
				requestLogger.Log(r.Context(), infoLevel, "request handled")
			}
		})
	})
}

func destinationNameForLogging(destinationName string) string {
	if destinationName != "" {
		return destinationName
	}
	return "-"
}
