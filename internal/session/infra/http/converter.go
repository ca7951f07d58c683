package http

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/taldoflemis/brain.test-gateway/internal/session/domain"
	"github.com/taldoflemis/brain.test-gateway/internal/session/infra/token"
	pkghttp "github.com/taldoflemis/brain.test-gateway/pkg/http"
	pkgtime "github.com/taldoflemis/brain.test-gateway/pkg/time"
)

type (
	UserOut struct {
		ID       uuid.UUID `json:"id"`
		Username string    `json:"username"`
		Email    string    `json:"email"`
	}

	SessionOut struct {
		User        *UserOut `json:"user,omitempty"`
		AccessToken string   `json:"access_token,omitempty"`
		Error       string   `json:"error,omitempty"`
	}

	errorOut struct {
		Error string `json:"error"`
	}

	fieldErrorsOut struct {
		Errors map[string]string `json:"errors"`
	}
)

func toSessionOut(session domain.Session) SessionOut {
	out := SessionOut{
		AccessToken: session.Tokens.AccessToken,
		Error:       string(session.ErrorTag),
	}
	if session.User != (domain.User{}) {
		out.User = &UserOut{
			ID:       session.User.ID,
			Username: session.User.Username,
			Email:    session.User.Email,
		}
	}

	return out
}

// SessionCookieWriter signs sessions into the browser cookie for the
// handlers that establish or replace one.
type SessionCookieWriter struct {
	codec     token.Codec
	clock     pkgtime.Clock
	cookieTTL time.Duration
}

func NewSessionCookieWriter(codec token.Codec, clock pkgtime.Clock, cookieTTL time.Duration) SessionCookieWriter {
	return SessionCookieWriter{codec: codec, clock: clock, cookieTTL: cookieTTL}
}

func (c SessionCookieWriter) Write(ctx context.Context, w pkghttp.ResponseWriter, session domain.Session) error {
	now := c.clock.Now(ctx)
	encoded, err := c.codec.Encode(session, now)
	if err != nil {
		return fmt.Errorf("encode session cookie: %w", err)
	}

	w.SetCookie(NewSessionCookie(encoded, now.Add(c.cookieTTL)))
	return nil
}
