package http

import (
	"net/http"

	pkgauth "github.com/taldoflemis/brain.test-gateway/pkg/auth"
	pkghttp "github.com/taldoflemis/brain.test-gateway/pkg/http"
)

type GetSessionHandler struct{}

func NewGetSessionHandler() GetSessionHandler {
	return GetSessionHandler{}
}

func (h GetSessionHandler) Method() string {
	return http.MethodGet
}

func (h GetSessionHandler) Path() string {
	return "/session"
}

func (h GetSessionHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	session, ok := currentSession(r.Context())
	if !ok {
		return pkgauth.ErrUnauthenticated
	}

	if session.Errored() {
		w.SetStatusCode(http.StatusUnauthorized)
		w.SetJSONBody(toSessionOut(session))
		return nil
	}

	w.SetJSONBody(toSessionOut(session))
	return nil
}
