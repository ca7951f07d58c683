package http

import (
	"net/http"

	"github.com/taldoflemis/brain.test-gateway/internal/game/app/backend"
	pkghttp "github.com/taldoflemis/brain.test-gateway/pkg/http"
)

type GetGamesHandler struct {
	games backend.Service
}

func NewGetGamesHandler(games backend.Service) GetGamesHandler {
	return GetGamesHandler{games: games}
}

func (h GetGamesHandler) Method() string {
	return http.MethodGet
}

func (h GetGamesHandler) Path() string {
	return "/games"
}

func (h GetGamesHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	principal, err := currentPrincipal(r.Context())
	if err != nil {
		return err
	}

	games, err := h.games.GamesByUser(r.Context(), principal.AccessToken)
	if err != nil {
		return err
	}

	out := make([]GameOut, 0, len(games))
	for _, game := range games {
		out = append(out, toGameOut(game))
	}

	w.SetJSONBody(getGamesOut{Games: out})
	return nil
}

type getGamesOut struct {
	Games []GameOut `json:"games"`
}
