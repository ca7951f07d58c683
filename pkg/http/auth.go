package http

import (
	"context"
	nethttp "net/http"

	"github.com/taldoflemis/brain.test-gateway/pkg/auth"
)

func WithAuthenticationRequirement() ServerOption {
	return WithMW(func(handler nethttp.Handler) nethttp.Handler {
		return nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			isAuthenticated, err := auth.IsAuthenticated(r.Context())
			if err != nil {
				writeHandlerResult(r.Context(), w, nethttp.StatusInternalServerError, err)
				return
			}

			if !isAuthenticated {
				writeHandlerResult(r.Context(), w, nethttp.StatusUnauthorized, auth.ErrUnauthenticated)
				return
			}

			handler.ServeHTTP(w, r)
		})
	})
}

func writeHandlerResult(ctx context.Context, w nethttp.ResponseWriter, code int, err error) {
	meta := getHandlerMetadata(ctx)
	meta.Code = code
	meta.Error = err

	w.WriteHeader(code)
}
