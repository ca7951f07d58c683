package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	nethttp "net/http"
	"runtime/debug"

	"github.com/taldoflemis/brain.test-gateway/pkg/auth"
)

type Handler interface {
	Method() string
	Path() string
	Handle(w ResponseWriter, r *nethttp.Request) error
}

type ResponseWriter interface {
	SetHeader(key, value string) ResponseWriter
	SetStatusCode(httpCode int) ResponseWriter
	SetCookie(cookie *nethttp.Cookie) ResponseWriter
	SetJSONBody(data any) ResponseWriter
}

type responseWriter struct {
	impl nethttp.ResponseWriter

	writeBodyFunc func() error
	httpCode      int
}

func (w *responseWriter) SetHeader(key, value string) ResponseWriter {
	w.impl.Header().Set(key, value)
	return w
}

func (w *responseWriter) SetStatusCode(httpCode int) ResponseWriter {
	w.httpCode = httpCode
	return w
}

func (w *responseWriter) SetCookie(cookie *nethttp.Cookie) ResponseWriter {
	nethttp.SetCookie(w.impl, cookie)
	return w
}

func (w *responseWriter) SetJSONBody(data any) ResponseWriter {
	w.impl.Header().Set("Content-Type", "application/json")
	w.writeBodyFunc = func() error {
		bodyEncoded, err := json.Marshal(data)
		if err != nil {
			return fmt.Errorf("encode body: %w", err)
		}

		if _, err = w.impl.Write(bodyEncoded); err != nil {
			return fmt.Errorf("write body: %w", err)
		}

		return nil
	}
	return w
}

func (w *responseWriter) Write(ctx context.Context, err error) {
	var httpCode int
	switch {
	case errors.Is(err, ErrParsingError):
		httpCode = nethttp.StatusBadRequest
	case errors.Is(err, auth.ErrUnauthenticated):
		httpCode = nethttp.StatusUnauthorized
	case err != nil && w.httpCode != nethttp.StatusOK:
		// the handler mapped the error to a status code itself
		httpCode = w.httpCode
	case err != nil:
		httpCode = nethttp.StatusInternalServerError
	default:
		httpCode = w.httpCode
	}

	meta := getHandlerMetadata(ctx)
	meta.Code = httpCode
	meta.Error = err

	w.impl.WriteHeader(httpCode)

	if w.writeBodyFunc != nil {
		if writeErr := w.writeBodyFunc(); writeErr != nil && meta.Error == nil {
			meta.Error = writeErr
		}
	}
}

func (w *responseWriter) WritePanic(ctx context.Context, panicData Panic) {
	meta := getHandlerMetadata(ctx)
	meta.Code = nethttp.StatusInternalServerError
	meta.Panic = &panicData

	w.impl.WriteHeader(nethttp.StatusInternalServerError)
}

func httpHandlerWrapper(handler Handler) nethttp.HandlerFunc {
	recoverPanic := func(r *nethttp.Request, respWriter *responseWriter) {
		msg := recover()
		if msg == nil {
			return
		}

		respWriter.WritePanic(r.Context(), Panic{
			Message:    fmt.Sprintf("%v", msg),
			Stacktrace: debug.Stack(),
		})
	}

	return func(w nethttp.ResponseWriter, r *nethttp.Request) {
		respWriter := &responseWriter{
			impl:          w,
			writeBodyFunc: nil,
			httpCode:      nethttp.StatusOK,
		}

		defer recoverPanic(r, respWriter)
		err := handler.Handle(respWriter, r)
		respWriter.Write(r.Context(), err)
	}
}
