// Package config models the persisted configuration document:
// streak state plus user preferences.
package config

import (
	"fmt"

	"github.com/abhisek/notequiz/internal/question"
	"github.com/abhisek/notequiz/internal/streak"
)

// Version is the current config document version.
const Version = 1

// Preferences are the user-tunable quiz settings.
type Preferences struct {
	// QuestionsPerQuiz caps the session size. Zero means no cap.
	QuestionsPerQuiz int `json:"questionsPerQuiz"`

	// ShowExplanations toggles the post-answer explanation panel.
	ShowExplanations bool `json:"showExplanations"`
}

// Config is the persisted configuration document. The streak sub-object
// is mutated only through the streak package; the caller loads, applies
// transitions, and saves within one cycle.
type Config struct {
	Version     int          `json:"version"`
	Streak      streak.State `json:"streak"`
	Preferences Preferences  `json:"preferences"`
}

// Default returns the configuration used when no document exists yet or
// the stored one fails validation.
func Default() Config {
	return Config{
		Version: Version,
		Preferences: Preferences{
			QuestionsPerQuiz: 10,
			ShowExplanations: true,
		},
	}
}

// Validate structurally checks a config document decoded from JSON.
// Used defensively when loading possibly-corrupted state; it reports
// every problem found and never panics.
func Validate(candidate any) question.Result {
	obj, ok := candidate.(map[string]any)
	if !ok || obj == nil {
		return question.Result{Errors: []string{"config must be a JSON object"}}
	}

	var errs []string

	if v, present := obj["version"]; !present {
		errs = append(errs, `missing required field "version"`)
	} else if _, ok := v.(float64); !ok {
		errs = append(errs, `"version" must be a number`)
	}

	validateStreak(obj, &errs)

	if v, present := obj["preferences"]; present {
		if _, ok := v.(map[string]any); !ok {
			errs = append(errs, `"preferences" must be an object`)
		}
	} else {
		errs = append(errs, `missing required field "preferences"`)
	}

	if len(errs) > 0 {
		return question.Result{Errors: errs}
	}
	return question.Result{Valid: true}
}

func validateStreak(obj map[string]any, errs *[]string) {
	v, present := obj["streak"]
	if !present {
		*errs = append(*errs, `missing required field "streak"`)
		return
	}
	st, ok := v.(map[string]any)
	if !ok {
		*errs = append(*errs, `"streak" must be an object`)
		return
	}

	for _, field := range []string{"current", "longest"} {
		n, present := st[field]
		if !present {
			*errs = append(*errs, fmt.Sprintf("missing required field %q in streak", field))
			continue
		}
		f, ok := n.(float64)
		if !ok {
			*errs = append(*errs, fmt.Sprintf("streak %s must be a number", field))
			continue
		}
		if f < 0 {
			*errs = append(*errs, fmt.Sprintf("streak %s must not be negative", field))
		}
	}

	// lastQuizDate may be absent, null, or a string.
	if d, present := st["lastQuizDate"]; present && d != nil {
		if _, ok := d.(string); !ok {
			*errs = append(*errs, "streak lastQuizDate must be a string or null")
		}
	}
}
