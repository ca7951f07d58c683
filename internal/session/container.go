package session

import (
	"time"

	commonhttp "github.com/taldoflemis/brain.test-gateway/internal/pkg/http"
	"github.com/taldoflemis/brain.test-gateway/internal/session/app/idp"
	"github.com/taldoflemis/brain.test-gateway/internal/session/app/service"
	"github.com/taldoflemis/brain.test-gateway/internal/session/infra/http"
	idphttp "github.com/taldoflemis/brain.test-gateway/internal/session/infra/idp/http"
	"github.com/taldoflemis/brain.test-gateway/internal/session/infra/token"
	"github.com/taldoflemis/brain.test-gateway/pkg/env"
	pkghttp "github.com/taldoflemis/brain.test-gateway/pkg/http"
	"github.com/taldoflemis/brain.test-gateway/pkg/lazy"
	"github.com/taldoflemis/brain.test-gateway/pkg/log"
	pkgtime "github.com/taldoflemis/brain.test-gateway/pkg/time"
)

const sessionCookieTTL = 7 * 24 * time.Hour

type DependencyContainer struct {
	SessionService lazy.Loader[service.Service]
	SessionAuth    lazy.Loader[pkghttp.ServerOption]

	signInHandler     lazy.Loader[http.SignInHandler]
	signUpHandler     lazy.Loader[http.SignUpHandler]
	signOutHandler    lazy.Loader[http.SignOutHandler]
	getSessionHandler lazy.Loader[http.GetSessionHandler]
}

func NewDependencyContainer(
	clientFactory lazy.Loader[*commonhttp.ClientFactory],
	logger lazy.Loader[log.Logger],
) DependencyContainer {
	clock := clockProvider()
	idpService := idpServiceProvider(clientFactory)
	tokenCodec := tokenCodecProvider()
	sessionService := sessionServiceProvider(idpService, clock, logger)
	cookieWriter := cookieWriterProvider(tokenCodec, clock)

	return DependencyContainer{
		SessionService: sessionService,
		SessionAuth: lazy.New(func() (pkghttp.ServerOption, error) {
			return http.WithSessionAuth(
				tokenCodec.MustLoad(),
				sessionService.MustLoad(),
				sessionCookieTTL,
				clock.MustLoad(),
				logger.MustLoad(),
			), nil
		}),
		signInHandler: lazy.New(func() (http.SignInHandler, error) {
			return http.NewSignInHandler(sessionService.MustLoad(), cookieWriter.MustLoad()), nil
		}),
		signUpHandler: lazy.New(func() (http.SignUpHandler, error) {
			return http.NewSignUpHandler(sessionService.MustLoad(), cookieWriter.MustLoad()), nil
		}),
		signOutHandler: lazy.New(func() (http.SignOutHandler, error) {
			return http.NewSignOutHandler(), nil
		}),
		getSessionHandler: lazy.New(func() (http.GetSessionHandler, error) {
			return http.NewGetSessionHandler(), nil
		}),
	}
}

func (c *DependencyContainer) MustRegisterHTTPHandlers(registry pkghttp.HandlerRegistry) {
	sessionAuth := c.SessionAuth.MustLoad()

	registry.Register(c.signInHandler.MustLoad())
	registry.Register(c.signUpHandler.MustLoad())
	registry.Register(c.signOutHandler.MustLoad())
	registry.Register(c.getSessionHandler.MustLoad(), sessionAuth)
}

func clockProvider() lazy.Loader[pkgtime.Clock] {
	return lazy.New(func() (pkgtime.Clock, error) {
		return pkgtime.NewAdjustableClock(), nil
	})
}

func idpServiceProvider(clientFactory lazy.Loader[*commonhttp.ClientFactory]) lazy.Loader[idp.Service] {
	return lazy.New(func() (idp.Service, error) {
		client := clientFactory.MustLoad().MustInitClient(commonhttp.DestinationAuthService)
		return idphttp.NewService(client), nil
	})
}

func tokenCodecProvider() lazy.Loader[token.Codec] {
	return lazy.New(func() (token.Codec, error) {
		secret := env.Must(env.Parse[string]("SESSION_TOKEN_SECRET"))
		return token.NewCodec(secret, sessionCookieTTL), nil
	})
}

func sessionServiceProvider(
	idpService lazy.Loader[idp.Service],
	clock lazy.Loader[pkgtime.Clock],
	logger lazy.Loader[log.Logger],
) lazy.Loader[service.Service] {
	return lazy.New(func() (service.Service, error) {
		return service.NewSessionService(
			idpService.MustLoad(),
			clock.MustLoad(),
			logger.MustLoad(),
		), nil
	})
}

func cookieWriterProvider(
	tokenCodec lazy.Loader[token.Codec],
	clock lazy.Loader[pkgtime.Clock],
) lazy.Loader[http.SessionCookieWriter] {
	return lazy.New(func() (http.SessionCookieWriter, error) {
		return http.NewSessionCookieWriter(tokenCodec.MustLoad(), clock.MustLoad(), sessionCookieTTL), nil
	})
}
