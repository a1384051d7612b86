package quiz

import (
	"strings"

	"github.com/abhisek/notequiz/internal/question"
)

// Answer is a submitted answer. Only the field matching the question's
// variant is read: Selected for multiple_choice, Truth for true_false,
// Blanks for fill_blank.
type Answer struct {
	Selected string
	Truth    bool
	Blanks   []string
}

// CheckAnswer applies the per-variant correctness rule:
//
//   - multiple_choice and true_false compare exactly, no normalization;
//   - fill_blank requires the submitted list to match blanks positionally,
//     each position compared case-insensitively after trimming surrounding
//     whitespace. A length mismatch is incorrect and there is no partial
//     credit per blank.
func CheckAnswer(q *question.Question, ans Answer) bool {
	switch q.Type {
	case question.TypeMultipleChoice:
		return ans.Selected == q.CorrectAnswer

	case question.TypeTrueFalse:
		return ans.Truth == q.CorrectBool

	case question.TypeFillBlank:
		if len(ans.Blanks) != len(q.Blanks) {
			return false
		}
		for i, want := range q.Blanks {
			got := strings.TrimSpace(ans.Blanks[i])
			if !strings.EqualFold(got, strings.TrimSpace(want)) {
				return false
			}
		}
		return true
	}
	return false
}
