package http

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/taldoflemis/brain.test-gateway/internal/game/app/backend"
	"github.com/taldoflemis/brain.test-gateway/internal/game/domain"
)

type (
	gamesOut struct {
		Games []gameOut `json:"games"`
	}

	gameByIDOut struct {
		Game gameOut `json:"game"`
	}

	gameOut struct {
		ID          uuid.UUID     `json:"id"`
		Title       string        `json:"title"`
		Description string        `json:"description"`
		OwnerID     uuid.UUID     `json:"owner_id"`
		Questions   []questionOut `json:"questions"`
	}

	// questionOut covers both question shapes the game service returns,
	// told apart by which alternative fields are present.
	questionOut struct {
		ID               uuid.UUID        `json:"id"`
		Title            string           `json:"title"`
		Points           int              `json:"points"`
		TimeLimit        int              `json:"time_limit"`
		Alternatives     []alternativeOut `json:"alternatives"`
		TrueAlternative  string           `json:"true_alternative"`
		FalseAlternative string           `json:"false_alternative"`
	}

	alternativeOut struct {
		Data      string `json:"data"`
		IsCorrect bool   `json:"is_correct"`
	}

	createGameIn struct {
		Title       string             `json:"title"`
		Description string             `json:"description,omitempty"`
		Questions   []createQuestionIn `json:"questions"`
	}

	createQuestionIn struct {
		Kind domain.QuestionKind `json:"kind"`
		Data any                 `json:"data"`
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

func toDomainGame(out gameOut) domain.Game {
	questions := make([]domain.Question, 0, len(out.Questions))
	for _, question := range out.Questions {
		questions = append(questions, toDomainQuestion(question))
	}

	return domain.Game{
		ID:          out.ID,
		Title:       out.Title,
		Description: out.Description,
		OwnerID:     out.OwnerID,
		Questions:   questions,
	}
}

func toDomainQuestion(out questionOut) domain.Question {
	if out.Alternatives != nil {
		alternatives := make([]domain.Alternative, 0, len(out.Alternatives))
		for _, alternative := range out.Alternatives {
			alternatives = append(alternatives, domain.Alternative{
				Data:      alternative.Data,
				IsCorrect: alternative.IsCorrect,
			})
		}

		return domain.QuizQuestion{
			ID:           out.ID,
			Title:        out.Title,
			Points:       out.Points,
			TimeLimit:    out.TimeLimit,
			Alternatives: alternatives,
		}
	}

	return domain.TrueFalseQuestion{
		ID:               out.ID,
		Title:            out.Title,
		Points:           out.Points,
		TimeLimit:        out.TimeLimit,
		TrueAlternative:  out.TrueAlternative,
		FalseAlternative: out.FalseAlternative,
	}
}

func toCreateGameIn(data backend.CreateGameData) createGameIn {
	questions := make([]createQuestionIn, 0, len(data.Questions))
	for _, question := range data.Questions {
		questions = append(questions, toCreateQuestionIn(question))
	}

	return createGameIn{
		Title:       data.Title,
		Description: data.Description,
		Questions:   questions,
	}
}

func toCreateQuestionIn(question domain.Question) createQuestionIn {
	switch q := question.(type) {
	case domain.QuizQuestion:
		alternatives := make([]alternativeIn, 0, len(q.Alternatives))
		for _, alternative := range q.Alternatives {
			alternatives = append(alternatives, alternativeIn(alternative))
		}

		return createQuestionIn{
			Kind: q.Kind(),
			Data: quizQuestionIn{
				Title:        q.Title,
				Points:       q.Points,
				TimeLimit:    q.TimeLimit,
				Alternatives: alternatives,
			},
		}
	case domain.TrueFalseQuestion:
		return createQuestionIn{
			Kind: q.Kind(),
			Data: trueFalseQuestionIn{
				Title:            q.Title,
				Points:           q.Points,
				TimeLimit:        q.TimeLimit,
				TrueAlternative:  q.TrueAlternative,
				FalseAlternative: q.FalseAlternative,
			},
		}
	default:
		panic(fmt.Sprintf("unknown question type %T", question))
	}
}
