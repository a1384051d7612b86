package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/notequiz/internal/quiz"
	"github.com/abhisek/notequiz/internal/router"
	"github.com/abhisek/notequiz/internal/screen"
	"github.com/abhisek/notequiz/internal/streak"
	"github.com/abhisek/notequiz/internal/ui/layout"
	"github.com/abhisek/notequiz/internal/ui/theme"
)

// SummaryScreen displays the finished quiz result and updated streak.
type SummaryScreen struct {
	attempt quiz.Attempt
	streak  streak.State
	saveErr string
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(attempt quiz.Attempt, st streak.State, saveErr string) *SummaryScreen {
	return &SummaryScreen{attempt: attempt, streak: st, saveErr: saveErr}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Quiz Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	var b strings.Builder

	center := func(str string) {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, str))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	center(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("Quiz complete!"))
	b.WriteString("\n")

	correct := 0
	for _, r := range s.attempt.Results {
		if r.Correct {
			correct++
		}
	}

	scoreStyle := theme.Correct
	if s.attempt.Score < 60 {
		scoreStyle = theme.Incorrect
	}
	center(scoreStyle.Render(fmt.Sprintf("Score: %d%%", s.attempt.Score)))
	center(lipgloss.NewStyle().Foreground(theme.Text).Render(
		fmt.Sprintf("%d of %d correct", correct, len(s.attempt.Results))))
	b.WriteString("\n")

	// One mark per question, in answer order.
	var marks []string
	for _, r := range s.attempt.Results {
		if r.Correct {
			marks = append(marks, theme.Correct.Render("✓"))
		} else {
			marks = append(marks, theme.Incorrect.Render("✗"))
		}
	}
	center(strings.Join(marks, " "))
	b.WriteString("\n")

	streakLine := fmt.Sprintf("★ %d day streak   (best: %d)", s.streak.Current, s.streak.Longest)
	center(lipgloss.NewStyle().Foreground(theme.Accent).Render(streakLine))

	if s.saveErr != "" {
		b.WriteString("\n")
		center(theme.Incorrect.Render("Could not save progress: " + s.saveErr))
	}

	b.WriteString("\n")
	center(theme.Hint.Render("Press Enter to return home"))

	return lipgloss.NewStyle().Height(height).Render(b.String())
}
