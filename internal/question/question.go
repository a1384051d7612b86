package question

import (
	"encoding/json"
	"strings"
)

// BlankMarker is the literal placeholder token in a fill-in-the-blank
// prompt. Each occurrence maps positionally to one entry in Blanks.
const BlankMarker = "___"

// Type discriminates the three question variants.
type Type string

const (
	TypeMultipleChoice Type = "multiple_choice"
	TypeFillBlank      Type = "fill_blank"
	TypeTrueFalse      Type = "true_false"
)

// Types lists all known question variants.
var Types = []Type{TypeMultipleChoice, TypeFillBlank, TypeTrueFalse}

// Difficulty is the author-assigned difficulty of a question.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Difficulties lists all known difficulty values.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

// Question is one quiz question. The variant is discriminated by Type;
// only the fields for that variant are meaningful. The JSON field names
// are an interchange contract with external question generators and must
// not change.
type Question struct {
	ID          string     `json:"id"`
	Type        Type       `json:"type"`
	SourceNote  string     `json:"sourceNote"`
	CreatedAt   string     `json:"createdAt"`
	Difficulty  Difficulty `json:"difficulty"`
	Question    string     `json:"question"`
	Explanation string     `json:"explanation"`

	// RelatedConcepts is an optional ordered list of concept names the
	// question touches, used for display only.
	RelatedConcepts []string `json:"relatedConcepts,omitempty"`

	// CorrectAnswer is the correct option text for multiple_choice.
	// On the wire it shares the "correctAnswer" key with CorrectBool.
	CorrectAnswer string `json:"-"`

	// IncorrectAnswers holds exactly 3 distractors for multiple_choice.
	IncorrectAnswers []string `json:"incorrectAnswers,omitempty"`

	// Blanks holds the expected answers for fill_blank, positional
	// against the BlankMarker occurrences in Question left to right.
	Blanks []string `json:"blanks,omitempty"`

	// CorrectBool is the correct answer for true_false. Strictly a
	// boolean on the wire; the string "true" is rejected by validation.
	CorrectBool bool `json:"-"`
}

// CountBlanks returns the number of blank placeholders in the prompt text.
func CountBlanks(text string) int {
	return strings.Count(text, BlankMarker)
}

// questionAlias breaks the MarshalJSON/UnmarshalJSON recursion.
type questionAlias Question

// MarshalJSON emits the variant-appropriate shape for "correctAnswer":
// a string for multiple_choice, a boolean for true_false, and nothing
// for fill_blank.
func (q Question) MarshalJSON() ([]byte, error) {
	aux := struct {
		questionAlias
		CorrectAnswer any `json:"correctAnswer,omitempty"`
	}{questionAlias: questionAlias(q)}

	switch q.Type {
	case TypeMultipleChoice:
		aux.CorrectAnswer = q.CorrectAnswer
	case TypeTrueFalse:
		aux.CorrectAnswer = q.CorrectBool
	}

	return json.Marshal(aux)
}

// UnmarshalJSON decodes "correctAnswer" according to the variant tag.
// It assumes the document already passed validation; a type mismatch
// surfaces as a decode error.
func (q *Question) UnmarshalJSON(data []byte) error {
	aux := struct {
		*questionAlias
		CorrectAnswer json.RawMessage `json:"correctAnswer"`
	}{questionAlias: (*questionAlias)(q)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if len(aux.CorrectAnswer) == 0 {
		return nil
	}

	switch q.Type {
	case TypeTrueFalse:
		return json.Unmarshal(aux.CorrectAnswer, &q.CorrectBool)
	default:
		return json.Unmarshal(aux.CorrectAnswer, &q.CorrectAnswer)
	}
}

// Store is the durable question collection. The Import Pipeline only
// ever appends to Questions; there are no in-place edits.
type Store struct {
	Version   int        `json:"version"`
	Questions []Question `json:"questions"`
}

// StoreVersion is the current question store document version.
const StoreVersion = 1

// NewStore returns an empty store at the current document version.
func NewStore() Store {
	return Store{Version: StoreVersion, Questions: []Question{}}
}

// ImportBatch is an externally produced set of candidate questions.
// It is untrusted until ValidateImportFile accepts it.
type ImportBatch struct {
	Questions []Question `json:"questions"`
}
