package question

import "fmt"

// Result is the outcome of a structural validation pass. Errors holds
// every failure found, field-qualified and human-readable; malformed
// input is the expected case and never panics.
type Result struct {
	Valid  bool
	Errors []string
}

func valid() Result {
	return Result{Valid: true}
}

func invalid(errors []string) Result {
	return Result{Valid: false, Errors: errors}
}

// ValidateQuestion checks a single candidate question decoded from JSON
// (a map[string]any as produced by encoding/json). All failures are
// accumulated; variant-specific checks are skipped only when the variant
// tag itself is missing or unknown, since they cannot run without one.
func ValidateQuestion(candidate any) Result {
	obj, ok := candidate.(map[string]any)
	if !ok || obj == nil {
		return invalid([]string{"question must be a JSON object"})
	}

	var errs []string

	for _, field := range []string{"id", "sourceNote", "question", "explanation"} {
		if msg := requireString(obj, field); msg != "" {
			errs = append(errs, msg)
		}
	}

	typ, typeKnown := checkType(obj, &errs)
	checkDifficulty(obj, &errs)

	if typeKnown {
		switch typ {
		case TypeMultipleChoice:
			checkMultipleChoice(obj, &errs)
		case TypeFillBlank:
			checkFillBlank(obj, &errs)
		case TypeTrueFalse:
			checkTrueFalse(obj, &errs)
		}
	}

	if len(errs) > 0 {
		return invalid(errs)
	}
	return valid()
}

// ValidateImportFile checks a whole import batch. Every element is
// validated independently and its errors prefixed with a 1-based index.
// The batch is valid only if every element is valid; there is no partial
// acceptance.
func ValidateImportFile(batch any) Result {
	obj, ok := batch.(map[string]any)
	if !ok || obj == nil {
		return invalid([]string{"import file must be a JSON object"})
	}

	raw, present := obj["questions"]
	if !present {
		return invalid([]string{`import file is missing the "questions" array`})
	}
	list, ok := raw.([]any)
	if !ok {
		return invalid([]string{`"questions" must be an array`})
	}

	var errs []string
	for i, candidate := range list {
		res := ValidateQuestion(candidate)
		for _, msg := range res.Errors {
			errs = append(errs, fmt.Sprintf("Question %d: %s", i+1, msg))
		}
	}

	if len(errs) > 0 {
		return invalid(errs)
	}
	return valid()
}

// requireString returns an error message when field is absent or not a
// string, and "" when it is fine.
func requireString(obj map[string]any, field string) string {
	v, present := obj[field]
	if !present {
		return fmt.Sprintf("missing required field %q", field)
	}
	if _, ok := v.(string); !ok {
		return fmt.Sprintf("%q must be a string", field)
	}
	return ""
}

// checkType validates the variant tag. The second return reports whether
// a known variant was found, gating the variant-specific checks.
func checkType(obj map[string]any, errs *[]string) (Type, bool) {
	v, present := obj["type"]
	if !present {
		*errs = append(*errs, `missing required field "type"`)
		return "", false
	}
	s, ok := v.(string)
	if !ok {
		*errs = append(*errs, `"type" must be a string`)
		return "", false
	}
	for _, t := range Types {
		if Type(s) == t {
			return t, true
		}
	}
	*errs = append(*errs, fmt.Sprintf(`unknown question type %q (want "multiple_choice", "fill_blank", or "true_false")`, s))
	return "", false
}

func checkDifficulty(obj map[string]any, errs *[]string) {
	v, present := obj["difficulty"]
	if !present {
		*errs = append(*errs, `missing required field "difficulty"`)
		return
	}
	s, ok := v.(string)
	if !ok {
		*errs = append(*errs, `"difficulty" must be a string`)
		return
	}
	for _, d := range Difficulties {
		if Difficulty(s) == d {
			return
		}
	}
	*errs = append(*errs, fmt.Sprintf(`difficulty must be "easy", "medium", or "hard", got %q`, s))
}

func checkMultipleChoice(obj map[string]any, errs *[]string) {
	if v, present := obj["correctAnswer"]; !present {
		*errs = append(*errs, `missing required field "correctAnswer"`)
	} else if _, ok := v.(string); !ok {
		*errs = append(*errs, `"correctAnswer" must be a string for multiple_choice questions`)
	}

	v, present := obj["incorrectAnswers"]
	if !present {
		*errs = append(*errs, `missing required field "incorrectAnswers"`)
		return
	}
	list, ok := v.([]any)
	if !ok {
		*errs = append(*errs, `"incorrectAnswers" must be an array`)
		return
	}
	// Arity mismatch is a distinct error, never silently padded or cut.
	if len(list) != 3 {
		*errs = append(*errs, fmt.Sprintf("incorrectAnswers must contain exactly 3 entries, got %d", len(list)))
	}
	for i, e := range list {
		if _, ok := e.(string); !ok {
			*errs = append(*errs, fmt.Sprintf("incorrectAnswers[%d] must be a string", i))
		}
	}
}

func checkFillBlank(obj map[string]any, errs *[]string) {
	v, present := obj["blanks"]
	if !present {
		*errs = append(*errs, `missing required field "blanks"`)
		return
	}
	list, ok := v.([]any)
	if !ok {
		*errs = append(*errs, `"blanks" must be an array`)
		return
	}
	for i, e := range list {
		if _, ok := e.(string); !ok {
			*errs = append(*errs, fmt.Sprintf("blanks[%d] must be a string", i))
		}
	}

	text, _ := obj["question"].(string)
	markers := CountBlanks(text)
	if markers != len(list) {
		*errs = append(*errs, fmt.Sprintf("question has %d blank marker(s) but blanks has %d entries", markers, len(list)))
	}
}

func checkTrueFalse(obj map[string]any, errs *[]string) {
	v, present := obj["correctAnswer"]
	if !present {
		*errs = append(*errs, `missing required field "correctAnswer"`)
		return
	}
	if _, ok := v.(bool); ok {
		return
	}
	// Catch the common generator mistake of a stringified boolean.
	if s, ok := v.(string); ok && (s == "true" || s == "false") {
		*errs = append(*errs, fmt.Sprintf(`correctAnswer must be a boolean for true_false questions, not the string %q`, s))
		return
	}
	*errs = append(*errs, `correctAnswer must be a boolean for true_false questions`)
}
