// Package streak implements the daily quiz streak state machine.
//
// All operations are value in, value out: the caller loads the state
// from the config document, applies transitions, and saves the result.
// Comparisons happen at calendar-day resolution, never on timestamps,
// so two quizzes on the same day count once.
package streak

import "time"

// DateLayout is the calendar-date format stored in the config document.
const DateLayout = "2006-01-02"

// State is the persisted streak record.
type State struct {
	// Current is the count of consecutive days with at least one
	// completed quiz.
	Current int `json:"current"`

	// Longest is the historical best. It never decreases.
	Longest int `json:"longest"`

	// LastQuizDate is the local calendar date of the most recent
	// completed quiz, or empty if none has been recorded yet.
	LastQuizDate string `json:"lastQuizDate"`
}

// Today returns t's local calendar date in DateLayout.
func Today(t time.Time) string {
	return t.Format(DateLayout)
}

// CheckAndUpdate resets Current to zero when at least one full day was
// skipped since LastQuizDate. A one-day gap (yesterday) keeps the streak
// alive; Longest is never touched by a reset. Idempotent when no reset
// is needed. Callers apply this before Increment in the same
// load-modify-save cycle.
func CheckAndUpdate(s State, today string) State {
	if s.LastQuizDate == "" {
		return s
	}

	gap, err := daysBetween(s.LastQuizDate, today)
	if err != nil {
		// Corrupted date in the document: drop the running streak but
		// keep the historical best.
		s.Current = 0
		s.LastQuizDate = ""
		return s
	}

	if gap > 1 {
		s.Current = 0
	}
	return s
}

// Increment records a completed quiz for today. Calling it twice on the
// same calendar date is a no-op, so multiple quizzes in one day cannot
// inflate the streak. It performs no gap detection; CheckAndUpdate must
// already have run.
func Increment(s State, today string) State {
	if s.LastQuizDate == today {
		return s
	}

	s.Current++
	s.LastQuizDate = today
	if s.Current > s.Longest {
		s.Longest = s.Current
	}
	return s
}

// Reset clears the running streak. Longest is permanent.
func Reset(s State) State {
	s.Current = 0
	s.LastQuizDate = ""
	return s
}

// daysBetween returns the whole calendar days from date a to date b.
// Both are parsed at UTC midnight, so the difference is exact.
func daysBetween(a, b string) (int, error) {
	ta, err := time.Parse(DateLayout, a)
	if err != nil {
		return 0, err
	}
	tb, err := time.Parse(DateLayout, b)
	if err != nil {
		return 0, err
	}
	return int(tb.Sub(ta).Hours() / 24), nil
}
