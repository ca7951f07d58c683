package http

import (
	"context"
	nethttp "net/http"
)

type contextKey int

const handlerMetadataContextKey contextKey = iota

type Panic struct {
	Message    string
	Stacktrace []byte
}

type handlerMetadata struct {
	Code  int
	Error error
	Panic *Panic
}

func withHandlerMetadata(handler nethttp.Handler) nethttp.Handler {
	return nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		ctx := context.WithValue(r.Context(), handlerMetadataContextKey, &handlerMetadata{
			Code:  nethttp.StatusOK,
			Error: nil,
			Panic: nil,
		})

		handler.ServeHTTP(w, r.WithContext(ctx))
	})
}

func getHandlerMetadata(ctx context.Context) *handlerMetadata {
	meta, ok := ctx.Value(handlerMetadataContextKey).(*handlerMetadata)
	if ok {
		return meta
	}

	return &handlerMetadata{
		Code:  nethttp.StatusOK,
		Error: nil,
		Panic: nil,
	}
}
