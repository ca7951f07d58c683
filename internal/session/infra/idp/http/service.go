package http

import (
	"context"
	"fmt"
	nethttp "net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/taldoflemis/brain.test-gateway/internal/session/app/idp"
	"github.com/taldoflemis/brain.test-gateway/internal/session/domain"
	pkghttp "github.com/taldoflemis/brain.test-gateway/pkg/http"
)

const connectionErrorMessage = "Erro de conexão"

var (
	signInRoute   = pkghttp.Route{Method: nethttp.MethodPost, URL: "/auth/"}
	signUpRoute   = pkghttp.Route{Method: nethttp.MethodPost, URL: "/auth/register"}
	refreshRoute  = pkghttp.Route{Method: nethttp.MethodPost, URL: "/auth/refresh"}
	userInfoRoute = pkghttp.Route{Method: nethttp.MethodGet, URL: "/auth/userinfo"}
)

type service struct {
	client pkghttp.Client
}

func NewService(client pkghttp.Client) idp.Service {
	return service{client: client}
}

func (s service) SignIn(ctx context.Context, username, password string) (domain.TokenBundle, error) {
	resp, err := s.client.NewRequest(ctx, signInRoute).
		SetJSONBody(credentialsIn{Username: username, Password: password}).
		Send()
	if err != nil {
		return domain.TokenBundle{}, idp.AuthenticationError{Message: connectionErrorMessage}
	}
	defer resp.Close()

	if resp.StatusCode() != nethttp.StatusOK {
		return domain.TokenBundle{}, idp.AuthenticationError{Message: errorMessage(resp)}
	}

	return decodeTokenBundle(resp, "auth.signIn")
}

func (s service) SignUp(ctx context.Context, username, email, password string) (domain.TokenBundle, error) {
	resp, err := s.client.NewRequest(ctx, signUpRoute).
		SetJSONBody(registrationIn{Username: username, Email: email, Password: password}).
		Send()
	if err != nil {
		return domain.TokenBundle{}, idp.AuthenticationError{Message: connectionErrorMessage}
	}
	defer resp.Close()

	if resp.StatusCode() == nethttp.StatusConflict {
		return domain.TokenBundle{}, idp.ErrUserAlreadyExists
	}
	if resp.StatusCode() != nethttp.StatusOK && resp.StatusCode() != nethttp.StatusCreated {
		return domain.TokenBundle{}, idp.AuthenticationError{Message: errorMessage(resp)}
	}

	return decodeTokenBundle(resp, "auth.signUp")
}

func (s service) Refresh(ctx context.Context, refreshToken string) (domain.TokenBundle, error) {
	resp, err := s.client.NewRequest(ctx, refreshRoute).
		SetJSONBody(refreshIn{RefreshToken: refreshToken}).
		Send()
	if err != nil {
		return domain.TokenBundle{}, fmt.Errorf("request auth.refresh: %w", err)
	}
	defer resp.Close()

	if resp.StatusCode() != nethttp.StatusOK {
		return domain.TokenBundle{}, fmt.Errorf("request auth.refresh: invalid status code %d", resp.StatusCode())
	}

	return decodeTokenBundle(resp, "auth.refresh")
}

func (s service) UserInfo(ctx context.Context, accessToken string) (domain.User, error) {
	resp, err := s.client.NewRequest(ctx, userInfoRoute).
		SetAuthToken(accessToken).
		Send()
	if err != nil {
		return domain.User{}, fmt.Errorf("request auth.userInfo: %w", err)
	}
	defer resp.Close()

	if resp.StatusCode() != nethttp.StatusOK {
		return domain.User{}, fmt.Errorf("request auth.userInfo: invalid status code %d", resp.StatusCode())
	}

	body, err := pkghttp.ParseResponse(resp, pkghttp.JSONBody[userInfoOut](), nil)
	if err != nil {
		return domain.User{}, fmt.Errorf("auth.userInfo response: %w", err)
	}

	return domain.User{
		ID:       body.ID,
		Username: body.Username,
		Email:    body.Email,
	}, nil
}

func decodeTokenBundle(resp pkghttp.Response, operation string) (domain.TokenBundle, error) {
	body, err := pkghttp.ParseResponse(resp, pkghttp.JSONBody[tokenBundleOut](), nil)
	if err != nil {
		return domain.TokenBundle{}, fmt.Errorf("%s response: %w", operation, err)
	}

	return domain.TokenBundle{
		AccessToken:  body.AccessToken,
		RefreshToken: body.RefreshToken,
		ExpireAt:     domain.ExpiryInstant(body.ExpireAt),
	}, nil
}

// errorMessage digs the human-readable message out of the auth service's
// error payloads, which come in two shapes depending on the endpoint.
func errorMessage(resp pkghttp.Response) string {
	if body, err := pkghttp.ParseResponse(resp, pkghttp.JSONBody[errorOut](), nil); err == nil {
		switch {
		case body.Error != "":
			return body.Error
		case len(body.Errors) > 0:
			return strings.Join(body.Errors, "; ")
		}
	}

	return fmt.Sprintf("authentication failed with status %d", resp.StatusCode())
}

type (
	credentialsIn struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	registrationIn struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	refreshIn struct {
		RefreshToken string `json:"refresh_token"`
	}

	tokenBundleOut struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
		ExpireAt     string `json:"expire_at"`
	}

	userInfoOut struct {
		ID       uuid.UUID `json:"id"`
		Username string    `json:"username"`
		Email    string    `json:"email"`
	}

	errorOut struct {
		Error  string   `json:"error"`
		Errors []string `json:"errors"`
	}
)
