package game

import (
	commonhttp "github.com/taldoflemis/brain.test-gateway/internal/pkg/http"
	"github.com/taldoflemis/brain.test-gateway/internal/game/app/backend"
	backendhttp "github.com/taldoflemis/brain.test-gateway/internal/game/infra/backend/http"
	"github.com/taldoflemis/brain.test-gateway/internal/game/infra/http"
	pkghttp "github.com/taldoflemis/brain.test-gateway/pkg/http"
	"github.com/taldoflemis/brain.test-gateway/pkg/lazy"
)

type DependencyContainer struct {
	GameService lazy.Loader[backend.Service]

	getGamesHandler    lazy.Loader[http.GetGamesHandler]
	getGameByIDHandler lazy.Loader[http.GetGameByIDHandler]
	createGameHandler  lazy.Loader[http.CreateGameHandler]
}

func NewDependencyContainer(
	clientFactory lazy.Loader[*commonhttp.ClientFactory],
) DependencyContainer {
	gameService := gameServiceProvider(clientFactory)

	return DependencyContainer{
		GameService: gameService,
		getGamesHandler: lazy.New(func() (http.GetGamesHandler, error) {
			return http.NewGetGamesHandler(gameService.MustLoad()), nil
		}),
		getGameByIDHandler: lazy.New(func() (http.GetGameByIDHandler, error) {
			return http.NewGetGameByIDHandler(gameService.MustLoad()), nil
		}),
		createGameHandler: lazy.New(func() (http.CreateGameHandler, error) {
			return http.NewCreateGameHandler(gameService.MustLoad()), nil
		}),
	}
}

func (c *DependencyContainer) MustRegisterHTTPHandlers(
	registry pkghttp.HandlerRegistry,
	sessionAuth pkghttp.ServerOption,
) {
	registry.Register(c.getGamesHandler.MustLoad(), sessionAuth, pkghttp.WithAuthenticationRequirement())
	registry.Register(c.getGameByIDHandler.MustLoad(), sessionAuth, pkghttp.WithAuthenticationRequirement())
	registry.Register(c.createGameHandler.MustLoad(), sessionAuth, pkghttp.WithAuthenticationRequirement())
}

func gameServiceProvider(clientFactory lazy.Loader[*commonhttp.ClientFactory]) lazy.Loader[backend.Service] {
	return lazy.New(func() (backend.Service, error) {
		client := clientFactory.MustLoad().MustInitClient(commonhttp.DestinationGameService)
		return backendhttp.NewService(client), nil
	})
}
