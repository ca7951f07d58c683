//go:generate ${TOOLS_BIN}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "Service=Service"
package backend

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/taldoflemis/brain.test-gateway/internal/game/domain"
)

var ErrGameNotFound = errors.New("game not found")

type (
	// Service is the game backend queried on behalf of the signed-in user,
	// authorized with the user's access token on every call.
	Service interface {
		GamesByUser(ctx context.Context, accessToken string) ([]domain.Game, error)
		GameByID(ctx context.Context, accessToken string, gameID uuid.UUID) (domain.Game, error)
		CreateGame(ctx context.Context, accessToken string, data CreateGameData) error
	}

	CreateGameData struct {
		Title       string
		Description string
		Questions   []domain.Question
	}
)
