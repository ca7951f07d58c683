package domain

import (
	"github.com/google/uuid"
)

const (
	QuestionKindQuiz      QuestionKind = "quiz"
	QuestionKindTrueFalse QuestionKind = "true_false"
)

type (
	Game struct {
		ID          uuid.UUID
		Title       string
		Description string
		OwnerID     uuid.UUID
		Questions   []Question
	}

	Question interface {
		Kind() QuestionKind
	}

	QuizQuestion struct {
		ID           uuid.UUID
		Title        string
		Points       int
		TimeLimit    int
		Alternatives []Alternative
	}

	TrueFalseQuestion struct {
		ID               uuid.UUID
		Title            string
		Points           int
		TimeLimit        int
		TrueAlternative  string
		FalseAlternative string
	}

	Alternative struct {
		Data      string
		IsCorrect bool
	}

	QuestionKind string
)

func (q QuizQuestion) Kind() QuestionKind {
	return QuestionKindQuiz
}

func (q TrueFalseQuestion) Kind() QuestionKind {
	return QuestionKindTrueFalse
}
