package question

import (
	"encoding/json"
	"testing"
)

func TestCountBlanks(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"", 0},
		{"no markers here", 0},
		{"A ___ is FIFO.", 1},
		{"___ before ___ after", 2},
		{"___", 1},
	}
	for _, tt := range tests {
		if got := CountBlanks(tt.text); got != tt.want {
			t.Errorf("CountBlanks(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}

func TestQuestionJSON_MultipleChoice(t *testing.T) {
	src := `{
		"id": "q-1", "type": "multiple_choice", "sourceNote": "n.md",
		"createdAt": "2026-08-20T10:00:00Z", "difficulty": "hard",
		"question": "Pick one", "explanation": "because",
		"correctAnswer": "right", "incorrectAnswers": ["a", "b", "c"]
	}`

	var q Question
	if err := json.Unmarshal([]byte(src), &q); err != nil {
		t.Fatal(err)
	}
	if q.CorrectAnswer != "right" {
		t.Errorf("CorrectAnswer = %q, want %q", q.CorrectAnswer, "right")
	}
	if len(q.IncorrectAnswers) != 3 {
		t.Errorf("IncorrectAnswers = %v", q.IncorrectAnswers)
	}

	out, err := json.Marshal(q)
	if err != nil {
		t.Fatal(err)
	}
	var round map[string]any
	if err := json.Unmarshal(out, &round); err != nil {
		t.Fatal(err)
	}
	if round["correctAnswer"] != "right" {
		t.Errorf("marshaled correctAnswer = %v, want string", round["correctAnswer"])
	}
}

func TestQuestionJSON_TrueFalseKeepsBoolean(t *testing.T) {
	src := `{
		"id": "q-2", "type": "true_false", "sourceNote": "n.md",
		"createdAt": "2026-08-20T10:00:00Z", "difficulty": "easy",
		"question": "Slices share backing arrays.", "explanation": "They do.",
		"correctAnswer": true
	}`

	var q Question
	if err := json.Unmarshal([]byte(src), &q); err != nil {
		t.Fatal(err)
	}
	if !q.CorrectBool {
		t.Error("CorrectBool = false, want true")
	}

	out, err := json.Marshal(q)
	if err != nil {
		t.Fatal(err)
	}
	var round map[string]any
	if err := json.Unmarshal(out, &round); err != nil {
		t.Fatal(err)
	}
	if v, ok := round["correctAnswer"].(bool); !ok || !v {
		t.Errorf("marshaled correctAnswer = %v (%T), want boolean true", round["correctAnswer"], round["correctAnswer"])
	}
}

func TestQuestionJSON_TrueFalseFalseIsNotOmitted(t *testing.T) {
	q := Question{
		ID: "q-3", Type: TypeTrueFalse, SourceNote: "n.md",
		Difficulty: DifficultyEasy, Question: "?", Explanation: "e",
		CorrectBool: false,
	}
	out, err := json.Marshal(q)
	if err != nil {
		t.Fatal(err)
	}
	var round map[string]any
	if err := json.Unmarshal(out, &round); err != nil {
		t.Fatal(err)
	}
	if v, ok := round["correctAnswer"].(bool); !ok || v {
		t.Errorf("marshaled correctAnswer = %v (%T), want boolean false", round["correctAnswer"], round["correctAnswer"])
	}
}

func TestQuestionJSON_FillBlankOmitsCorrectAnswer(t *testing.T) {
	q := Question{
		ID: "q-4", Type: TypeFillBlank, SourceNote: "n.md",
		Difficulty: DifficultyMedium, Question: "A ___ is FIFO.",
		Explanation: "e", Blanks: []string{"queue"},
	}
	out, err := json.Marshal(q)
	if err != nil {
		t.Fatal(err)
	}
	var round map[string]any
	if err := json.Unmarshal(out, &round); err != nil {
		t.Fatal(err)
	}
	if _, present := round["correctAnswer"]; present {
		t.Error("fill_blank must not emit correctAnswer")
	}
}
