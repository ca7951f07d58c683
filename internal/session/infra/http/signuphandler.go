package http

import (
	"errors"
	"net/http"

	"github.com/taldoflemis/brain.test-gateway/internal/session/app/idp"
	"github.com/taldoflemis/brain.test-gateway/internal/session/app/service"
	pkghttp "github.com/taldoflemis/brain.test-gateway/pkg/http"
)

type SignUpHandler struct {
	sessions     service.Service
	cookieWriter SessionCookieWriter
}

func NewSignUpHandler(sessions service.Service, cookieWriter SessionCookieWriter) SignUpHandler {
	return SignUpHandler{sessions: sessions, cookieWriter: cookieWriter}
}

func (h SignUpHandler) Method() string {
	return http.MethodPost
}

func (h SignUpHandler) Path() string {
	return "/auth/sign-up"
}

func (h SignUpHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	in, err := pkghttp.ParseRequest(r, pkghttp.JSONBody[signUpIn](), err)
	if err != nil {
		return err
	}

	session, err := h.sessions.SignUp(r.Context(), service.SignUpData{
		Username: in.Username,
		Email:    in.Email,
		Password: in.Password,
	})
	if field, message, ok := signUpFieldError(err); ok {
		w.SetStatusCode(http.StatusBadRequest)
		w.SetJSONBody(fieldErrorsOut{Errors: map[string]string{field: message}})
		return err
	}
	if errors.Is(err, idp.ErrUserAlreadyExists) {
		w.SetStatusCode(http.StatusConflict)
		w.SetJSONBody(fieldErrorsOut{Errors: map[string]string{"username": "Nome de usuario ja existe"}})
		return err
	}

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
	w.SetStatusCode(http.StatusCreated)
	return nil
}

func signUpFieldError(err error) (field, message string, ok bool) {
	switch {
	case errors.Is(err, service.ErrUsernameInvalid):
		return "username", "Nome de usuario deve ter entre 5 e 50 caracteres", true
	case errors.Is(err, service.ErrEmailInvalid):
		return "email", "Email invalido", true
	case errors.Is(err, service.ErrPasswordInvalid):
		return "password", "Senha deve ter no minimo 8 caracteres", true
	default:
		return "", "", false
	}
}

type signUpIn struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
