package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/taldoflemis/brain.test-gateway/internal/game/app/backend"
	pkghttp "github.com/taldoflemis/brain.test-gateway/pkg/http"
)

type GetGameByIDHandler struct {
	games backend.Service
}

func NewGetGameByIDHandler(games backend.Service) GetGameByIDHandler {
	return GetGameByIDHandler{games: games}
}

func (h GetGameByIDHandler) Method() string {
	return http.MethodGet
}

func (h GetGameByIDHandler) Path() string {
	return "/games/{gameID}"
}

func (h GetGameByIDHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	principal, err := currentPrincipal(r.Context())
	if err != nil {
		return err
	}

	gameID, err := pkghttp.ParseRequest(r, pkghttp.PathParameter[uuid.UUID]("gameID"), err)
	if err != nil {
		return err
	}

	game, err := h.games.GameByID(r.Context(), principal.AccessToken, gameID)
	if errors.Is(err, backend.ErrGameNotFound) {
		w.SetStatusCode(http.StatusNotFound)
		return err
	}
	if err != nil {
		return err
	}

	w.SetJSONBody(getGameByIDOut{Game: toGameOut(game)})
	return nil
}

type getGameByIDOut struct {
	Game GameOut `json:"game"`
}
