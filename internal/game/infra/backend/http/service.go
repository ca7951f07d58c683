package http

import (
	"context"
	"fmt"
	nethttp "net/http"

	"github.com/google/uuid"

	"github.com/taldoflemis/brain.test-gateway/internal/game/app/backend"
	"github.com/taldoflemis/brain.test-gateway/internal/game/domain"
	pkghttp "github.com/taldoflemis/brain.test-gateway/pkg/http"
)

var (
	gamesByUserRoute = pkghttp.Route{Method: nethttp.MethodGet, URL: "/game/"}
	gameByIDRoute    = pkghttp.Route{Method: nethttp.MethodGet, URL: "/game/{gameID}"}
	createGameRoute  = pkghttp.Route{Method: nethttp.MethodPost, URL: "/game/"}
)

type service struct {
	client pkghttp.Client
}

func NewService(client pkghttp.Client) backend.Service {
	return service{client: client}
}

func (s service) GamesByUser(ctx context.Context, accessToken string) ([]domain.Game, error) {
	resp, err := s.client.NewRequest(ctx, gamesByUserRoute).
		SetAuthToken(accessToken).
		Send()
	if err != nil {
		return nil, fmt.Errorf("request game.gamesByUser: %w", err)
	}
	defer resp.Close()

	if resp.StatusCode() != nethttp.StatusOK {
		return nil, fmt.Errorf("request game.gamesByUser: invalid status code %d", resp.StatusCode())
	}

	body, err := pkghttp.ParseResponse(resp, pkghttp.JSONBody[gamesOut](), nil)
	if err != nil {
		return nil, fmt.Errorf("game.gamesByUser response: %w", err)
	}

	games := make([]domain.Game, 0, len(body.Games))
	for _, game := range body.Games {
		games = append(games, toDomainGame(game))
	}

	return games, nil
}

func (s service) GameByID(ctx context.Context, accessToken string, gameID uuid.UUID) (domain.Game, error) {
	resp, err := s.client.NewRequest(ctx, gameByIDRoute).
		SetAuthToken(accessToken).
		SetPathParam("gameID", gameID.String()).
		Send()
	if err != nil {
		return domain.Game{}, fmt.Errorf("request game.gameByID: %w", err)
	}
	defer resp.Close()

	if resp.StatusCode() == nethttp.StatusNotFound {
		return domain.Game{}, backend.ErrGameNotFound
	}
	if resp.StatusCode() != nethttp.StatusOK {
		return domain.Game{}, fmt.Errorf("request game.gameByID: invalid status code %d", resp.StatusCode())
	}

	body, err := pkghttp.ParseResponse(resp, pkghttp.JSONBody[gameByIDOut](), nil)
	if err != nil {
		return domain.Game{}, fmt.Errorf("game.gameByID response: %w", err)
	}

	return toDomainGame(body.Game), nil
}

func (s service) CreateGame(ctx context.Context, accessToken string, data backend.CreateGameData) error {
	resp, err := s.client.NewRequest(ctx, createGameRoute).
		SetAuthToken(accessToken).
		SetJSONBody(toCreateGameIn(data)).
		Send()
	if err != nil {
		return fmt.Errorf("request game.createGame: %w", err)
	}
	defer resp.Close()

	if resp.StatusCode() != nethttp.StatusOK && resp.StatusCode() != nethttp.StatusCreated {
		return fmt.Errorf("request game.createGame: invalid status code %d", resp.StatusCode())
	}

	return nil
}
