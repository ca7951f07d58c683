package http

import (
	"encoding/json"
	nethttp "net/http"

	"github.com/gorilla/mux"
)

const healthPath = "/healthz"

func WithHealthCheck(customHandlerFunc nethttp.HandlerFunc) ServerOption {
	defaultHandler := func(w nethttp.ResponseWriter, _ *nethttp.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(nethttp.StatusOK)
		_ = json.NewEncoder(w).Encode(struct {
			Status string `json:"status"`
		}{
			Status: "OK",
		})
	}

	return func(router *mux.Router) {
		handler := defaultHandler
		if customHandlerFunc != nil {
			handler = customHandlerFunc
		}

		router.
			Name(getRouteName(nethttp.MethodGet, healthPath)).
			Methods(nethttp.MethodGet).
			Path(healthPath).
			HandlerFunc(handler)
	}
}
