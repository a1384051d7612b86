package generate

import (
	"fmt"
	"strings"

	"github.com/abhisek/notequiz/internal/notes"
)

const systemPrompt = `You are a study assistant creating recall questions from a student's own notes.

Rules:
- Generate questions strictly from facts stated in the note. Never quiz on things the note does not say.
- Each question must be answerable without seeing the note again.
- Mix the three variants where the material allows: multiple_choice for concepts with plausible alternatives, fill_blank for key terms and definitions, true_false for claims that are easy to negate.
- For multiple_choice, provide exactly 3 incorrect answers. Distractors should be plausible misreadings of the note, not random values.
- For fill_blank, mark each blank in the question text with the literal marker ___ and provide one expected answer per marker, in order. Do not set correctAnswer.
- For true_false, correctAnswer must be a JSON boolean, never the string "true" or "false".
- The explanation should cite the relevant part of the note in one or two sentences.
- Do not repeat any question from the "already generated" list.`

// buildUserMessage constructs the user message for one note.
func buildUserMessage(note notes.Note, cfg Config, prior []string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Generate %d questions from the note below.\n", cfg.QuestionsPerNote)
	if cfg.Difficulty != "" {
		fmt.Fprintf(&b, "All questions must have difficulty %q.\n", cfg.Difficulty)
	}

	b.WriteString("\nAlready generated for this note:\n")
	b.WriteString(buildPrior(prior))

	fmt.Fprintf(&b, "\n\nNote: %s\n\n", note.Title)
	b.WriteString(note.Content)

	return b.String()
}

// buildPrior formats previously generated question texts for deduplication.
func buildPrior(prior []string) string {
	if len(prior) == 0 {
		return "None"
	}
	var b strings.Builder
	for i, q := range prior {
		fmt.Fprintf(&b, "%d. %s\n", i+1, q)
	}
	return strings.TrimRight(b.String(), "\n")
}
