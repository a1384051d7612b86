// Package quiz implements the session engine: ordered progression
// through a fixed question set, per-variant answer checking, and
// aggregate scoring. All operations are total over well-formed sessions;
// out-of-order calls degrade to defined no-ops instead of failing.
package quiz

import (
	"math/rand/v2"
	"time"

	"github.com/abhisek/notequiz/internal/question"
)

// Session is the ephemeral state of one quiz-taking pass. It is owned
// exclusively by the caller for the lifetime of the quiz and discarded
// after Finish.
type Session struct {
	// Questions is the fixed, shuffled order for this session.
	Questions []question.Question

	// CurrentIndex is the cursor into Questions. The session is
	// complete when it equals len(Questions).
	CurrentIndex int

	// Results holds one entry per submitted answer, in order.
	Results []Result

	// StartTime is when the session was created.
	StartTime time.Time
}

// Start creates a session over a uniformly random permutation of the
// input. When count is positive and smaller than the available set, the
// shuffled order is truncated to count entries; the count restricts,
// it never pads or repeats. A nil rng falls back to the global source;
// tests inject a seeded one for deterministic order.
func Start(questions []question.Question, count int, rng *rand.Rand) *Session {
	order := make([]question.Question, len(questions))
	copy(order, questions)

	swap := func(i, j int) { order[i], order[j] = order[j], order[i] }
	if rng != nil {
		rng.Shuffle(len(order), swap)
	} else {
		rand.Shuffle(len(order), swap)
	}

	if count > 0 && count < len(order) {
		order = order[:count]
	}

	return &Session{
		Questions: order,
		StartTime: time.Now(),
	}
}

// CurrentQuestion returns the question at the cursor, or nil when the
// session is complete.
func (s *Session) CurrentQuestion() *question.Question {
	if s.IsComplete() {
		return nil
	}
	return &s.Questions[s.CurrentIndex]
}

// IsComplete reports whether every question has been answered. There is
// no transition back once complete.
func (s *Session) IsComplete() bool {
	return s.CurrentIndex >= len(s.Questions)
}

// SubmitAnswer checks the answer against the current question, records
// the result, and advances the cursor. Submitting past completion is a
// no-op that reports incorrect, since there is no question to check.
func (s *Session) SubmitAnswer(ans Answer, timeSpent time.Duration) bool {
	q := s.CurrentQuestion()
	if q == nil {
		return false
	}

	correct := CheckAnswer(q, ans)
	s.Results = append(s.Results, Result{
		QuestionID: q.ID,
		Correct:    correct,
		TimeSpent:  timeSpent,
	})
	s.CurrentIndex++
	return correct
}

// ShuffledOptions returns the four candidate strings of a multiple
// choice question (correct answer plus the three distractors) in a fresh
// random order. Presentation-only; repeated calls reshuffle.
func ShuffledOptions(q *question.Question, rng *rand.Rand) []string {
	opts := make([]string, 0, 1+len(q.IncorrectAnswers))
	opts = append(opts, q.CorrectAnswer)
	opts = append(opts, q.IncorrectAnswers...)

	swap := func(i, j int) { opts[i], opts[j] = opts[j], opts[i] }
	if rng != nil {
		rng.Shuffle(len(opts), swap)
	} else {
		rand.Shuffle(len(opts), swap)
	}
	return opts
}
