package http

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	internalauth "github.com/taldoflemis/brain.test-gateway/internal/pkg/auth"
	"github.com/taldoflemis/brain.test-gateway/internal/game/app/backend"
	"github.com/taldoflemis/brain.test-gateway/internal/game/domain"
	pkgauth "github.com/taldoflemis/brain.test-gateway/pkg/auth"
)

type (
	GameOut struct {
		ID          uuid.UUID     `json:"id"`
		Title       string        `json:"title"`
		Description string        `json:"description"`
		OwnerID     uuid.UUID     `json:"owner_id"`
		Questions   []QuestionOut `json:"questions"`
	}

	QuestionOut struct {
		Kind             domain.QuestionKind `json:"kind"`
		ID               uuid.UUID           `json:"id"`
		Title            string              `json:"title"`
		Points           int                 `json:"points"`
		TimeLimit        int                 `json:"time_limit"`
		Alternatives     []AlternativeOut    `json:"alternatives,omitempty"`
		TrueAlternative  string              `json:"true_alternative,omitempty"`
		FalseAlternative string              `json:"false_alternative,omitempty"`
	}

	AlternativeOut struct {
		Data      string `json:"data"`
		IsCorrect bool   `json:"is_correct"`
	}

	CreateGameIn struct {
		Title       string             `json:"title"`
		Description string             `json:"description"`
		Questions   []createQuestionIn `json:"questions"`
	}

	createQuestionIn struct {
		Kind domain.QuestionKind `json:"kind"`
		Data json.RawMessage     `json:"data"`
	}

	quizQuestionIn struct {
		Title        string          `json:"title"`
		Points       int             `json:"points"`
		TimeLimit    int             `json:"time_limit"`
		Alternatives []alternativeIn `json:"alternatives"`
	}

	trueFalseQuestionIn struct {
		Title            string `json:"title"`
		Points           int    `json:"points"`
		TimeLimit        int    `json:"time_limit"`
		TrueAlternative  string `json:"true_alternative"`
		FalseAlternative string `json:"false_alternative"`
	}

	alternativeIn struct {
		Data      string `json:"data"`
		IsCorrect bool   `json:"is_correct"`
	}
)

func toGameOut(game domain.Game) GameOut {
	questions := make([]QuestionOut, 0, len(game.Questions))
	for _, question := range game.Questions {
		questions = append(questions, toQuestionOut(question))
	}

	return GameOut{
		ID:          game.ID,
		Title:       game.Title,
		Description: game.Description,
		OwnerID:     game.OwnerID,
		Questions:   questions,
	}
}

func toQuestionOut(question domain.Question) QuestionOut {
	switch q := question.(type) {
	case domain.QuizQuestion:
		alternatives := make([]AlternativeOut, 0, len(q.Alternatives))
		for _, alternative := range q.Alternatives {
			alternatives = append(alternatives, AlternativeOut(alternative))
		}

		return QuestionOut{
			Kind:         q.Kind(),
			ID:           q.ID,
			Title:        q.Title,
			Points:       q.Points,
			TimeLimit:    q.TimeLimit,
			Alternatives: alternatives,
		}
	case domain.TrueFalseQuestion:
		return QuestionOut{
			Kind:             q.Kind(),
			ID:               q.ID,
			Title:            q.Title,
			Points:           q.Points,
			TimeLimit:        q.TimeLimit,
			TrueAlternative:  q.TrueAlternative,
			FalseAlternative: q.FalseAlternative,
		}
	default:
		return QuestionOut{}
	}
}

func toCreateGameData(in CreateGameIn) (backend.CreateGameData, error) {
	questions := make([]domain.Question, 0, len(in.Questions))
	for _, question := range in.Questions {
		converted, err := toDomainQuestion(question)
		if err != nil {
			return backend.CreateGameData{}, err
		}
		questions = append(questions, converted)
	}

	return backend.CreateGameData{
		Title:       in.Title,
		Description: in.Description,
		Questions:   questions,
	}, nil
}

func toDomainQuestion(in createQuestionIn) (domain.Question, error) {
	switch in.Kind {
	case domain.QuestionKindQuiz:
		var data quizQuestionIn
		if err := json.Unmarshal(in.Data, &data); err != nil {
			return nil, fmt.Errorf("decode quiz question: %w", err)
		}

		alternatives := make([]domain.Alternative, 0, len(data.Alternatives))
		for _, alternative := range data.Alternatives {
			alternatives = append(alternatives, domain.Alternative(alternative))
		}

		return domain.QuizQuestion{
			Title:        data.Title,
			Points:       data.Points,
			TimeLimit:    data.TimeLimit,
			Alternatives: alternatives,
		}, nil
	case domain.QuestionKindTrueFalse:
		var data trueFalseQuestionIn
		if err := json.Unmarshal(in.Data, &data); err != nil {
			return nil, fmt.Errorf("decode true/false question: %w", err)
		}

		return domain.TrueFalseQuestion{
			Title:            data.Title,
			Points:           data.Points,
			TimeLimit:        data.TimeLimit,
			TrueAlternative:  data.TrueAlternative,
			FalseAlternative: data.FalseAlternative,
		}, nil
	default:
		return nil, fmt.Errorf("unknown question kind %q", in.Kind)
	}
}

func currentPrincipal(ctx context.Context) (internalauth.Principal, error) {
	authentication, ok := pkgauth.GetAuthentication[internalauth.Principal](ctx)
	if !ok || !authentication.IsAuthenticated() {
		return internalauth.Principal{}, pkgauth.ErrUnauthenticated
	}

	return *authentication.Principal(), nil
}
