package config

import (
	"encoding/json"
	"strings"
	"testing"
)

func decode(t *testing.T, src string) any {
	t.Helper()
	var v any
	if err := json.Unmarshal([]byte(src), &v); err != nil {
		t.Fatalf("bad test fixture: %v", err)
	}
	return v
}

func TestValidate_Valid(t *testing.T) {
	res := Validate(decode(t, `{
		"version": 1,
		"streak": {"current": 3, "longest": 8, "lastQuizDate": "2026-08-23"},
		"preferences": {"questionsPerQuiz": 10, "showExplanations": true}
	}`))
	if !res.Valid {
		t.Fatalf("expected valid, got %v", res.Errors)
	}
}

func TestValidate_NullLastQuizDateIsAllowed(t *testing.T) {
	res := Validate(decode(t, `{
		"version": 1,
		"streak": {"current": 0, "longest": 0, "lastQuizDate": null},
		"preferences": {}
	}`))
	if !res.Valid {
		t.Fatalf("expected valid, got %v", res.Errors)
	}
}

func TestValidate_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantErr string
	}{
		{"not an object", `[]`, "config must be a JSON object"},
		{"missing version", `{"streak": {"current": 0, "longest": 0}, "preferences": {}}`, `missing required field "version"`},
		{"version not a number", `{"version": "1", "streak": {"current": 0, "longest": 0}, "preferences": {}}`, `"version" must be a number`},
		{"missing streak", `{"version": 1, "preferences": {}}`, `missing required field "streak"`},
		{"streak not object", `{"version": 1, "streak": 3, "preferences": {}}`, `"streak" must be an object`},
		{"negative current", `{"version": 1, "streak": {"current": -1, "longest": 0}, "preferences": {}}`, "streak current must not be negative"},
		{"longest not number", `{"version": 1, "streak": {"current": 0, "longest": "8"}, "preferences": {}}`, "streak longest must be a number"},
		{"bad lastQuizDate type", `{"version": 1, "streak": {"current": 0, "longest": 0, "lastQuizDate": 20260823}, "preferences": {}}`, "lastQuizDate must be a string or null"},
		{"preferences not object", `{"version": 1, "streak": {"current": 0, "longest": 0}, "preferences": []}`, `"preferences" must be an object`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Validate(decode(t, tt.src))
			if res.Valid {
				t.Fatal("expected invalid")
			}
			found := false
			for _, e := range res.Errors {
				if strings.Contains(e, tt.wantErr) {
					found = true
				}
			}
			if !found {
				t.Errorf("want error containing %q, got %v", tt.wantErr, res.Errors)
			}
		})
	}
}
