package http

import (
	"errors"
	"net/http"

	"github.com/taldoflemis/brain.test-gateway/internal/session/app/idp"
	"github.com/taldoflemis/brain.test-gateway/internal/session/app/service"
	pkghttp "github.com/taldoflemis/brain.test-gateway/pkg/http"
)

type SignInHandler struct {
	sessions     service.Service
	cookieWriter SessionCookieWriter
}

func NewSignInHandler(sessions service.Service, cookieWriter SessionCookieWriter) SignInHandler {
	return SignInHandler{sessions: sessions, cookieWriter: cookieWriter}
}

func (h SignInHandler) Method() string {
	return http.MethodPost
}

func (h SignInHandler) Path() string {
	return "/auth/sign-in"
}

func (h SignInHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	in, err := pkghttp.ParseRequest(r, pkghttp.JSONBody[signInIn](), err)
	if err != nil {
		return err
	}

	session, err := h.sessions.SignIn(r.Context(), in.Username, in.Password)
	var authErr idp.AuthenticationError
	if errors.As(err, &authErr) {
		w.SetStatusCode(http.StatusUnauthorized)
		w.SetJSONBody(errorOut{Error: authErr.Message})
		return err
	}
	if err != nil {
		return err
	}

	if err = h.cookieWriter.Write(r.Context(), w, session); err != nil {
		return err
	}

	w.SetJSONBody(toSessionOut(session))
	return nil
}

type signInIn struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
