package summary

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/notequiz/internal/quiz"
	"github.com/abhisek/notequiz/internal/streak"
)

func testAttempt() quiz.Attempt {
	return quiz.Attempt{
		ID:          "attempt-1",
		Date:        time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC),
		QuestionIDs: []string{"a", "b", "c"},
		Results: []quiz.Result{
			{QuestionID: "a", Correct: true},
			{QuestionID: "b", Correct: true},
			{QuestionID: "c", Correct: false},
		},
		Score: 67,
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testAttempt(), streak.State{}, "")
	if s.Title() != "Quiz Summary" {
		t.Errorf("Title = %q", s.Title())
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(testAttempt(), streak.State{Current: 4, Longest: 9}, "")
	view := s.View(80, 24)
	if !strings.Contains(view, "67%") {
		t.Error("view missing score")
	}
	if !strings.Contains(view, "2 of 3 correct") {
		t.Error("view missing correct count")
	}
	if !strings.Contains(view, "4 day streak") {
		t.Error("view missing streak")
	}
}

func TestSummaryScreen_ShowsSaveError(t *testing.T) {
	s := New(testAttempt(), streak.State{}, "disk full")
	if !strings.Contains(s.View(80, 24), "disk full") {
		t.Error("view missing save error")
	}
}

func TestSummaryScreen_Navigation_Enter(t *testing.T) {
	s := New(testAttempt(), streak.State{}, "")
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Error("expected a command on Enter (pop)")
	}
}
