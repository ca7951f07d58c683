package main

import (
	"context"

	"github.com/taldoflemis/brain.test-gateway/internal/game"
	"github.com/taldoflemis/brain.test-gateway/internal/pkg/cmd"
	"github.com/taldoflemis/brain.test-gateway/internal/session"
	pkgcmd "github.com/taldoflemis/brain.test-gateway/pkg/cmd"
)

func main() {
	ctx := context.Background()
	infra := cmd.NewInfrastructureContainer(ctx)
	defer infra.Close(ctx)

	sessionContainer := session.NewDependencyContainer(
		infra.HTTPClientFactory,
		infra.Logger,
	)
	gameContainer := game.NewDependencyContainer(
		infra.HTTPClientFactory,
	)

	httpServer := infra.HTTPServer.MustLoad()
	sessionContainer.MustRegisterHTTPHandlers(httpServer)
	gameContainer.MustRegisterHTTPHandlers(httpServer, sessionContainer.SessionAuth.MustLoad())

	pkgcmd.MustRun(ctx, infra.Logger.MustLoad(),
		pkgcmd.TermSignalAwaiter,
		httpServer.Listener,
	)
}
