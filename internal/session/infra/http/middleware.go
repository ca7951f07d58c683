package http

import (
	"context"
	nethttp "net/http"
	"time"

	internalauth "github.com/taldoflemis/brain.test-gateway/internal/pkg/auth"
	"github.com/taldoflemis/brain.test-gateway/internal/session/app/service"
	"github.com/taldoflemis/brain.test-gateway/internal/session/domain"
	"github.com/taldoflemis/brain.test-gateway/internal/session/infra/token"
	pkgauth "github.com/taldoflemis/brain.test-gateway/pkg/auth"
	pkghttp "github.com/taldoflemis/brain.test-gateway/pkg/http"
	"github.com/taldoflemis/brain.test-gateway/pkg/log"
	pkgtime "github.com/taldoflemis/brain.test-gateway/pkg/time"
)

type sessionContextKey int

const currentSessionContextKey sessionContextKey = iota

// WithSessionAuth restores the session from the request cookie, brings its
// tokens up to date and authenticates the request with the session's user.
// An errored session drops the cookie and leaves the request unauthenticated.
func WithSessionAuth(
	codec token.Codec,
	sessions service.Service,
	cookieTTL time.Duration,
	clock pkgtime.Clock,
	logger log.Logger,
) pkghttp.ServerOption {
	return pkghttp.WithMW(func(handler nethttp.Handler) nethttp.Handler {
		return nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			session, renewed, ok := resolveSession(w, r, codec, sessions, logger)
			ctx := r.Context()
			if ok {
				ctx = withCurrentSession(ctx, session)
			}

			if !ok || session.Errored() {
				r = setAuthentication(r.WithContext(ctx), pkgauth.Auth[internalauth.Principal]{})
				handler.ServeHTTP(w, r)
				return
			}

			if renewed {
				now := clock.Now(ctx)
				if encoded, err := codec.Encode(session, now); err == nil {
					nethttp.SetCookie(w, NewSessionCookie(encoded, now.Add(cookieTTL)))
				} else {
					logger.WithError(err).Error(ctx, "failed to encode session cookie")
				}
			}

			r = setAuthentication(r.WithContext(ctx), pkgauth.Auth[internalauth.Principal]{
				AuthPrincipal: &internalauth.Principal{
					UserID:      session.User.ID,
					Username:    session.User.Username,
					Email:       session.User.Email,
					AccessToken: session.Tokens.AccessToken,
				},
			})
			handler.ServeHTTP(w, r)
		})
	})
}

func resolveSession(
	w nethttp.ResponseWriter,
	r *nethttp.Request,
	codec token.Codec,
	sessions service.Service,
	logger log.Logger,
) (session domain.Session, renewed, ok bool) {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return domain.Session{}, false, false
	}

	ctx := r.Context()
	session, err = codec.Decode(cookie.Value)
	if err != nil {
		logger.WithError(err).Debug(ctx, "failed to decode session cookie")
		nethttp.SetCookie(w, NewExpiredSessionCookie())
		return domain.Session{}, false, false
	}

	actualized, err := sessions.Actualize(ctx, session)
	if err != nil {
		logger.WithError(err).Error(ctx, "failed to actualize session")
		return domain.Session{}, false, false
	}

	if actualized.Errored() {
		nethttp.SetCookie(w, NewExpiredSessionCookie())
		return actualized, false, true
	}

	return actualized, actualized.Tokens != session.Tokens, true
}

func setAuthentication(r *nethttp.Request, a pkgauth.Auth[internalauth.Principal]) *nethttp.Request {
	return r.WithContext(pkgauth.WithAuthentication(r.Context(), a))
}

func withCurrentSession(ctx context.Context, session domain.Session) context.Context {
	return context.WithValue(ctx, currentSessionContextKey, session)
}

func currentSession(ctx context.Context) (domain.Session, bool) {
	session, ok := ctx.Value(currentSessionContextKey).(domain.Session)
	return session, ok
}
