package stats

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/notequiz/internal/config"
	"github.com/abhisek/notequiz/internal/router"
	"github.com/abhisek/notequiz/internal/screen"
	"github.com/abhisek/notequiz/internal/store"
	"github.com/abhisek/notequiz/internal/ui/layout"
	"github.com/abhisek/notequiz/internal/ui/theme"
)

const recentShown = 10

// StatsScreen shows the streak and quiz history.
type StatsScreen struct {
	cfg     *config.Config
	history store.History
	loadErr string
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)

// New creates a new StatsScreen, loading history up front.
func New(st *store.Store, cfg *config.Config) *StatsScreen {
	s := &StatsScreen{cfg: cfg}
	history, err := st.LoadHistory()
	if err != nil {
		s.loadErr = err.Error()
		return s
	}
	s.history = history
	return s
}

func (s *StatsScreen) Init() tea.Cmd {
	return nil
}

func (s *StatsScreen) Title() string {
	return "Stats"
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	var b strings.Builder

	center := func(str string) {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, str))
		b.WriteString("\n")
	}

	b.WriteString("\n")

	if s.loadErr != "" {
		center(theme.Incorrect.Render("Could not load history: " + s.loadErr))
		return b.String()
	}

	st := s.cfg.Streak
	center(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(
		fmt.Sprintf("★ Current streak: %d days", st.Current)))
	center(lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		fmt.Sprintf("Longest streak: %d days", st.Longest)))
	if st.LastQuizDate != "" {
		center(lipgloss.NewStyle().Foreground(theme.TextDim).Render(
			"Last quiz: " + st.LastQuizDate))
	}
	b.WriteString("\n")

	attempts := s.history.Attempts
	if len(attempts) == 0 {
		center(theme.Hint.Render("No quizzes taken yet."))
		return lipgloss.NewStyle().Height(height).Render(b.String())
	}

	total := 0
	for _, a := range attempts {
		total += a.Score
	}
	center(lipgloss.NewStyle().Foreground(theme.Text).Render(
		fmt.Sprintf("Quizzes taken: %d        Average score: %d%%", len(attempts), total/len(attempts))))
	b.WriteString("\n")

	center(lipgloss.NewStyle().Foreground(theme.TextDim).Render("Recent quizzes"))
	center(lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 50))))

	start := len(attempts) - recentShown
	if start < 0 {
		start = 0
	}
	for i := len(attempts) - 1; i >= start; i-- {
		a := attempts[i]
		style := theme.Correct
		if a.Score < 60 {
			style = theme.Incorrect
		}
		line := fmt.Sprintf("%s    %s    %d questions",
			a.Date.Format("2006-01-02 15:04"),
			style.Render(fmt.Sprintf("%3d%%", a.Score)),
			len(a.QuestionIDs))
		center(lipgloss.NewStyle().Foreground(theme.Text).Render(line))
	}

	return lipgloss.NewStyle().Height(height).Render(b.String())
}
