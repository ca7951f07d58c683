package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/taldoflemis/brain.test-gateway/internal/game/app/backend"
	pkghttp "github.com/taldoflemis/brain.test-gateway/pkg/http"
)

var errTitleEmpty = errors.New("title must be not empty")

type CreateGameHandler struct {
	games backend.Service
}

func NewCreateGameHandler(games backend.Service) CreateGameHandler {
	return CreateGameHandler{games: games}
}

func (h CreateGameHandler) Method() string {
	return http.MethodPost
}

func (h CreateGameHandler) Path() string {
	return "/games"
}

func (h CreateGameHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	principal, err := currentPrincipal(r.Context())
	if err != nil {
		return err
	}

	in, err := pkghttp.ParseRequest(r, pkghttp.JSONBody[CreateGameIn](), err)
	if err != nil {
		return err
	}

	if strings.TrimSpace(in.Title) == "" {
		w.SetStatusCode(http.StatusBadRequest)
		return errTitleEmpty
	}

	data, err := toCreateGameData(in)
	if err != nil {
		w.SetStatusCode(http.StatusBadRequest)
		return err
	}

	if err = h.games.CreateGame(r.Context(), principal.AccessToken, data); err != nil {
		return err
	}

	w.SetStatusCode(http.StatusCreated)
	return nil
}
