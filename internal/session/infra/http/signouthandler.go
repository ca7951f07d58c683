package http

import (
	"net/http"

	pkghttp "github.com/taldoflemis/brain.test-gateway/pkg/http"
)

type SignOutHandler struct{}

func NewSignOutHandler() SignOutHandler {
	return SignOutHandler{}
}

func (h SignOutHandler) Method() string {
	return http.MethodPost
}

func (h SignOutHandler) Path() string {
	return "/auth/sign-out"
}

func (h SignOutHandler) Handle(w pkghttp.ResponseWriter, _ *http.Request) error {
	w.SetCookie(NewExpiredSessionCookie())
	w.SetStatusCode(http.StatusNoContent)
	return nil
}
