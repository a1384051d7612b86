package generate

import "github.com/abhisek/notequiz/internal/llm"

// BatchSchema defines the JSON schema for LLM question generation
// responses. correctAnswer is left untyped here because it is a string
// for multiple_choice and a boolean for true_false; the full structural
// contract is enforced afterwards by question.ValidateImportFile.
var BatchSchema = &llm.Schema{
	Name:        "quiz-questions",
	Description: "A batch of quiz questions generated from one study note",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"type": map[string]any{
							"type":        "string",
							"enum":        []any{"multiple_choice", "fill_blank", "true_false"},
							"description": "The question variant",
						},
						"difficulty": map[string]any{
							"type": "string",
							"enum": []any{"easy", "medium", "hard"},
						},
						"question": map[string]any{
							"type":        "string",
							"description": "The question text. For fill_blank, blanks are marked with ___",
						},
						"correctAnswer": map[string]any{
							"description": "The correct answer: a string for multiple_choice, a boolean for true_false, omitted for fill_blank",
						},
						"incorrectAnswers": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "Exactly 3 plausible distractors for multiple_choice. Empty otherwise.",
						},
						"blanks": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "One expected answer per ___ marker, in order. Only for fill_blank.",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "Why the answer is correct, grounded in the note",
						},
						"relatedConcepts": map[string]any{
							"type":  "array",
							"items": map[string]any{"type": "string"},
						},
					},
					"required": []any{"type", "difficulty", "question", "explanation"},
				},
			},
		},
		"required": []any{"questions"},
	},
}
