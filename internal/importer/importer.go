// Package importer composes the validator with the question-store merge.
// Import is atomic: either the whole batch lands or none of it does.
package importer

import (
	"encoding/json"

	"github.com/abhisek/notequiz/internal/question"
)

// Result reports an import outcome. On failure Imported is always zero
// and Errors carries the full aggregated diagnostic list; callers decide
// whether to persist the merged store and whether to clear the consumed
// input.
type Result struct {
	Success  bool
	Imported int
	Errors   []string
}

func failure(errs ...string) Result {
	return Result{Errors: errs}
}

// ImportQuestions validates a raw import batch and, only when every
// element passes, appends the questions to st in batch order. The store
// value is mutated in place; persistence is the caller's decision.
// A nil or empty raw means no batch was available.
func ImportQuestions(raw []byte, st *question.Store) Result {
	if len(raw) == 0 {
		return failure("no import file found")
	}

	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return failure("import file is not valid JSON: " + err.Error())
	}

	if res := question.ValidateImportFile(decoded); !res.Valid {
		return Result{Errors: res.Errors}
	}

	var batch question.ImportBatch
	if err := json.Unmarshal(raw, &batch); err != nil {
		// Validation passed, so a decode failure here means the typed
		// codec disagrees with the validator. Surface it as a normal
		// import error rather than crashing.
		return failure("decode import batch: " + err.Error())
	}

	st.Questions = append(st.Questions, batch.Questions...)

	return Result{
		Success:  true,
		Imported: len(batch.Questions),
	}
}
