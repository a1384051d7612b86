package quiz

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/abhisek/notequiz/internal/question"
)

func testRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func mcQuestion(id string) question.Question {
	return question.Question{
		ID:               id,
		Type:             question.TypeMultipleChoice,
		SourceNote:       "notes/go.md",
		Difficulty:       question.DifficultyEasy,
		Question:         "Pick the right one",
		Explanation:      "because",
		CorrectAnswer:    "right",
		IncorrectAnswers: []string{"wrong-a", "wrong-b", "wrong-c"},
	}
}

func questionSet(n int) []question.Question {
	qs := make([]question.Question, n)
	for i := range qs {
		qs[i] = mcQuestion(string(rune('a' + i)))
	}
	return qs
}

func TestStart_ShuffleIsDeterministicWithSeededRand(t *testing.T) {
	qs := questionSet(6)
	a := Start(qs, 0, testRand(42))
	b := Start(qs, 0, testRand(42))

	for i := range a.Questions {
		if a.Questions[i].ID != b.Questions[i].ID {
			t.Fatalf("same seed produced different orders at %d: %s vs %s",
				i, a.Questions[i].ID, b.Questions[i].ID)
		}
	}
}

func TestStart_DoesNotMutateInput(t *testing.T) {
	qs := questionSet(6)
	before := make([]string, len(qs))
	for i, q := range qs {
		before[i] = q.ID
	}

	Start(qs, 0, testRand(7))

	for i, q := range qs {
		if q.ID != before[i] {
			t.Fatalf("input slice reordered at %d", i)
		}
	}
}

func TestStart_CountTruncates(t *testing.T) {
	qs := questionSet(5)
	s := Start(qs, 2, testRand(1))

	if len(s.Questions) != 2 {
		t.Fatalf("len = %d, want 2", len(s.Questions))
	}

	// Both drawn from the original set, no repeats.
	seen := map[string]bool{}
	valid := map[string]bool{}
	for _, q := range qs {
		valid[q.ID] = true
	}
	for _, q := range s.Questions {
		if !valid[q.ID] {
			t.Errorf("question %q not from input set", q.ID)
		}
		if seen[q.ID] {
			t.Errorf("question %q repeated", q.ID)
		}
		seen[q.ID] = true
	}
}

func TestStart_CountAtOrAboveLenUsesFullSet(t *testing.T) {
	qs := questionSet(3)
	for _, count := range []int{0, 3, 10} {
		s := Start(qs, count, testRand(1))
		if len(s.Questions) != 3 {
			t.Errorf("count %d: len = %d, want 3", count, len(s.Questions))
		}
	}
}

func TestSubmitAnswer_AdvancesAndRecords(t *testing.T) {
	s := Start(questionSet(2), 0, testRand(3))

	correct := s.SubmitAnswer(Answer{Selected: "right"}, 2*time.Second)
	if !correct {
		t.Error("expected correct")
	}
	if s.CurrentIndex != 1 {
		t.Errorf("CurrentIndex = %d, want 1", s.CurrentIndex)
	}

	correct = s.SubmitAnswer(Answer{Selected: "wrong-a"}, time.Second)
	if correct {
		t.Error("expected incorrect")
	}
	if !s.IsComplete() {
		t.Error("session should be complete")
	}

	if len(s.Results) != 2 {
		t.Fatalf("len(Results) = %d, want 2", len(s.Results))
	}
	if !s.Results[0].Correct || s.Results[1].Correct {
		t.Errorf("Results = %+v", s.Results)
	}
	if s.Results[0].TimeSpent != 2*time.Second {
		t.Errorf("TimeSpent = %v", s.Results[0].TimeSpent)
	}
}

func TestSubmitAnswer_PastCompletionIsNoop(t *testing.T) {
	s := Start(questionSet(1), 0, testRand(3))
	s.SubmitAnswer(Answer{Selected: "right"}, time.Second)

	if got := s.SubmitAnswer(Answer{Selected: "right"}, time.Second); got {
		t.Error("submit past completion must report incorrect")
	}
	if len(s.Results) != 1 {
		t.Errorf("len(Results) = %d, want 1", len(s.Results))
	}
	if s.CurrentIndex != 1 {
		t.Errorf("CurrentIndex = %d, want 1", s.CurrentIndex)
	}
}

func TestCurrentQuestion_NilWhenComplete(t *testing.T) {
	s := Start(nil, 0, testRand(3))
	if q := s.CurrentQuestion(); q != nil {
		t.Errorf("empty session: CurrentQuestion = %v, want nil", q)
	}
}

func TestShuffledOptions_ContainsAllFour(t *testing.T) {
	q := mcQuestion("q")
	opts := ShuffledOptions(&q, testRand(9))

	if len(opts) != 4 {
		t.Fatalf("len = %d, want 4", len(opts))
	}
	want := map[string]bool{"right": true, "wrong-a": true, "wrong-b": true, "wrong-c": true}
	for _, o := range opts {
		if !want[o] {
			t.Errorf("unexpected option %q", o)
		}
		delete(want, o)
	}
	if len(want) != 0 {
		t.Errorf("missing options: %v", want)
	}
}

func TestFinish_Score(t *testing.T) {
	s := Start(questionSet(3), 0, testRand(5))
	s.SubmitAnswer(Answer{Selected: "right"}, time.Second)
	s.SubmitAnswer(Answer{Selected: "right"}, time.Second)
	s.SubmitAnswer(Answer{Selected: "nope"}, time.Second)

	att := s.Finish()
	if att.Score != 67 {
		t.Errorf("Score = %d, want 67", att.Score)
	}
	if len(att.QuestionIDs) != 3 || len(att.Results) != 3 {
		t.Errorf("attempt = %+v", att)
	}
	if att.ID == "" {
		t.Error("attempt must carry a fresh id")
	}
}

func TestFinish_EmptyQuizScoresZero(t *testing.T) {
	s := Start(nil, 0, testRand(5))
	att := s.Finish()
	if att.Score != 0 {
		t.Errorf("Score = %d, want 0", att.Score)
	}
}
