package generate

import (
	"context"

	"github.com/abhisek/notequiz/internal/notes"
	"github.com/abhisek/notequiz/internal/question"
)

// Generator produces quiz questions from a note using an LLM provider.
type Generator interface {
	// Generate produces a batch of questions for the given note. Every
	// returned question has passed schema validation and carries an
	// assigned ID, sourceNote, and creation date.
	Generate(ctx context.Context, note notes.Note) ([]question.Question, error)
}
