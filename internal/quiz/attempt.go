package quiz

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// Result records the outcome of one answered question.
type Result struct {
	QuestionID string        `json:"questionId"`
	Correct    bool          `json:"correct"`
	TimeSpent  time.Duration `json:"timeSpent"`
}

// Attempt is the durable artifact of a finished quiz, appended to the
// history document by the caller.
type Attempt struct {
	ID          string    `json:"id"`
	Date        time.Time `json:"date"`
	QuestionIDs []string  `json:"questionIds"`
	Results     []Result  `json:"results"`

	// Score is the rounded percentage of correct answers, 0-100.
	Score int `json:"score"`
}

// Finish produces the attempt for a session: a fresh unique id, the
// current timestamp, and the rounded percent score. A zero-question
// session scores 0 rather than dividing by zero. Finish does not
// persist anything; that is an explicit follow-up step by the caller.
func (s *Session) Finish() Attempt {
	ids := make([]string, len(s.Questions))
	for i, q := range s.Questions {
		ids[i] = q.ID
	}

	correct := 0
	for _, r := range s.Results {
		if r.Correct {
			correct++
		}
	}

	score := 0
	if len(s.Questions) > 0 {
		score = int(math.Round(100 * float64(correct) / float64(len(s.Questions))))
	}

	return Attempt{
		ID:          uuid.NewString(),
		Date:        time.Now(),
		QuestionIDs: ids,
		Results:     s.Results,
		Score:       score,
	}
}
