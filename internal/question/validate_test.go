package question

import (
	"encoding/json"
	"strings"
	"testing"
)

// decode parses a JSON literal into the any-shape the validator consumes.
func decode(t *testing.T, src string) any {
	t.Helper()
	var v any
	if err := json.Unmarshal([]byte(src), &v); err != nil {
		t.Fatalf("bad test fixture: %v", err)
	}
	return v
}

func validMultipleChoice() string {
	return `{
		"id": "q-1",
		"type": "multiple_choice",
		"sourceNote": "notes/graphs.md",
		"createdAt": "2026-08-20T10:00:00Z",
		"difficulty": "medium",
		"question": "Which traversal visits neighbors level by level?",
		"explanation": "BFS expands the frontier one level at a time.",
		"correctAnswer": "BFS",
		"incorrectAnswers": ["DFS", "Dijkstra", "A*"]
	}`
}

func TestValidateQuestion_Valid(t *testing.T) {
	res := ValidateQuestion(decode(t, validMultipleChoice()))
	if !res.Valid {
		t.Fatalf("expected valid, got errors: %v", res.Errors)
	}
}

func TestValidateQuestion_NotAnObject(t *testing.T) {
	for _, src := range []string{`null`, `"hello"`, `[1,2,3]`, `42`} {
		res := ValidateQuestion(decode(t, src))
		if res.Valid {
			t.Errorf("input %s: expected invalid", src)
		}
	}
}

func TestValidateQuestion_AccumulatesAllErrors(t *testing.T) {
	res := ValidateQuestion(decode(t, `{"type": "multiple_choice"}`))
	if res.Valid {
		t.Fatal("expected invalid")
	}
	// Missing id, sourceNote, question, explanation, difficulty,
	// correctAnswer, incorrectAnswers: all reported at once.
	if len(res.Errors) < 7 {
		t.Errorf("expected at least 7 accumulated errors, got %d: %v", len(res.Errors), res.Errors)
	}
}

func TestValidateQuestion_UnknownType(t *testing.T) {
	res := ValidateQuestion(decode(t, `{
		"id": "q", "sourceNote": "n.md", "question": "?", "explanation": "e",
		"difficulty": "easy", "type": "matching"
	}`))
	if res.Valid {
		t.Fatal("expected invalid")
	}
	found := false
	for _, e := range res.Errors {
		if strings.Contains(e, `unknown question type "matching"`) {
			found = true
		}
		// Variant checks must not run for an unknown type.
		if strings.Contains(e, "correctAnswer") || strings.Contains(e, "blanks") {
			t.Errorf("unexpected variant error for unknown type: %s", e)
		}
	}
	if !found {
		t.Errorf("missing unknown-type error in %v", res.Errors)
	}
}

func TestValidateQuestion_BadDifficulty(t *testing.T) {
	res := ValidateQuestion(decode(t, `{
		"id": "q", "sourceNote": "n.md", "question": "?", "explanation": "e",
		"difficulty": "extreme", "type": "true_false", "correctAnswer": true
	}`))
	if res.Valid {
		t.Fatal("expected invalid")
	}
	if !containsSubstring(res.Errors, `"extreme"`) {
		t.Errorf("expected difficulty error naming the bad value, got %v", res.Errors)
	}
}

func TestValidateQuestion_MultipleChoiceArity(t *testing.T) {
	tests := []struct {
		name      string
		incorrect string
		wantErr   string
	}{
		{"two distractors", `["a", "b"]`, "exactly 3 entries, got 2"},
		{"four distractors", `["a", "b", "c", "d"]`, "exactly 3 entries, got 4"},
		{"not an array", `"a,b,c"`, `"incorrectAnswers" must be an array`},
		{"non-string element", `["a", 2, "c"]`, "incorrectAnswers[1] must be a string"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ValidateQuestion(decode(t, `{
				"id": "q", "type": "multiple_choice", "sourceNote": "n.md",
				"difficulty": "easy", "question": "?", "explanation": "e",
				"correctAnswer": "a", "incorrectAnswers": `+tt.incorrect+`
			}`))
			if res.Valid {
				t.Fatal("expected invalid")
			}
			if !containsSubstring(res.Errors, tt.wantErr) {
				t.Errorf("want error containing %q, got %v", tt.wantErr, res.Errors)
			}
		})
	}
}

func TestValidateQuestion_FillBlankCounts(t *testing.T) {
	tests := []struct {
		name     string
		question string
		blanks   string
		valid    bool
		wantErr  string
	}{
		{"matching single", "A ___ is FIFO.", `["queue"]`, true, ""},
		{"matching double", "___ is LIFO, ___ is FIFO.", `["stack", "queue"]`, true, ""},
		{"too few blanks", "A ___ is ___.", `["queue"]`, false, "question has 2 blank marker(s) but blanks has 1 entries"},
		{"too many blanks", "A queue is FIFO.", `["queue"]`, false, "question has 0 blank marker(s) but blanks has 1 entries"},
		{"blanks not array", "A ___ is FIFO.", `"queue"`, false, `"blanks" must be an array`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ValidateQuestion(decode(t, `{
				"id": "q", "type": "fill_blank", "sourceNote": "n.md",
				"difficulty": "easy", "question": `+jsonString(tt.question)+`,
				"explanation": "e", "blanks": `+tt.blanks+`
			}`))
			if res.Valid != tt.valid {
				t.Fatalf("valid = %v, want %v (errors: %v)", res.Valid, tt.valid, res.Errors)
			}
			if tt.wantErr != "" && !containsSubstring(res.Errors, tt.wantErr) {
				t.Errorf("want error containing %q, got %v", tt.wantErr, res.Errors)
			}
		})
	}
}

func TestValidateQuestion_TrueFalseStrictBoolean(t *testing.T) {
	base := `{
		"id": "q", "type": "true_false", "sourceNote": "n.md",
		"difficulty": "easy", "question": "Go maps are ordered.",
		"explanation": "Iteration order is randomized.", "correctAnswer": %s
	}`

	res := ValidateQuestion(decode(t, strings.Replace(base, "%s", "false", 1)))
	if !res.Valid {
		t.Fatalf("boolean correctAnswer should be valid, got %v", res.Errors)
	}

	res = ValidateQuestion(decode(t, strings.Replace(base, "%s", `"true"`, 1)))
	if res.Valid {
		t.Fatal("stringified boolean must be rejected")
	}
	if !containsSubstring(res.Errors, `not the string "true"`) {
		t.Errorf("expected explicit string-boolean error, got %v", res.Errors)
	}

	res = ValidateQuestion(decode(t, strings.Replace(base, "%s", "1", 1)))
	if res.Valid {
		t.Fatal("numeric correctAnswer must be rejected")
	}
}

func TestValidateImportFile_AllOrNothing(t *testing.T) {
	batch := `{"questions": [
		` + validMultipleChoice() + `,
		{
			"id": "q-2", "type": "true_false", "sourceNote": "n.md",
			"difficulty": "easy", "question": "?", "explanation": "e",
			"correctAnswer": "true"
		},
		` + validMultipleChoice() + `
	]}`

	res := ValidateImportFile(decode(t, batch))
	if res.Valid {
		t.Fatal("expected invalid batch")
	}
	if !containsSubstring(res.Errors, "Question 2:") {
		t.Errorf("errors must locate the offending entry, got %v", res.Errors)
	}
	for _, e := range res.Errors {
		if strings.HasPrefix(e, "Question 1:") || strings.HasPrefix(e, "Question 3:") {
			t.Errorf("valid entries must not produce errors: %s", e)
		}
	}
}

func TestValidateImportFile_Shape(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"null", `null`},
		{"array", `[]`},
		{"missing questions", `{"version": 1}`},
		{"questions not array", `{"questions": {"a": 1}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if res := ValidateImportFile(decode(t, tt.src)); res.Valid {
				t.Error("expected invalid")
			}
		})
	}
}

func TestValidateImportFile_EmptyBatchIsValid(t *testing.T) {
	if res := ValidateImportFile(decode(t, `{"questions": []}`)); !res.Valid {
		t.Errorf("empty questions array should validate, got %v", res.Errors)
	}
}

func containsSubstring(list []string, sub string) bool {
	for _, s := range list {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func jsonString(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}
