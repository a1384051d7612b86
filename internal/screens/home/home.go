package home

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/notequiz/internal/config"
	"github.com/abhisek/notequiz/internal/question"
	"github.com/abhisek/notequiz/internal/router"
	"github.com/abhisek/notequiz/internal/screen"
	quizscreen "github.com/abhisek/notequiz/internal/screens/quiz"
	"github.com/abhisek/notequiz/internal/screens/stats"
	"github.com/abhisek/notequiz/internal/store"
	"github.com/abhisek/notequiz/internal/ui/components"
	"github.com/abhisek/notequiz/internal/ui/theme"
)

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	menu          components.Menu
	questionCount int
	cfg           *config.Config
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(st *store.Store, cfg *config.Config, questions *question.Store) *HomeScreen {
	count := len(questions.Questions)

	items := []components.MenuItem{
		{
			Label:    "START QUIZ",
			Disabled: count == 0,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: quizscreen.New(st, cfg, questions.Questions, cfg.Preferences.QuestionsPerQuiz),
					}
				}
			},
		},
		{
			Label: "STATS",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: stats.New(st, cfg)}
				}
			},
		},
		{
			Label: "QUIT",
			Action: func() tea.Cmd {
				return tea.Quit
			},
		},
	}

	return &HomeScreen{
		menu:          components.NewMenu(items),
		questionCount: count,
		cfg:           cfg,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	title := theme.Title.Width(width).Render("Notequiz")
	subtitle := theme.Subtitle.Width(width).Render("Spaced recall from your own notes")

	statsLine := fmt.Sprintf("%d questions in your bank", h.questionCount)
	if h.questionCount == 0 {
		statsLine = "No questions yet. Run `notequiz generate <vault>` then `notequiz import`."
	}
	bank := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(statsLine)

	menu := lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View())

	content := "\n\n" + title + "\n" + subtitle + "\n\n\n" + bank + "\n\n\n" + menu

	return lipgloss.NewStyle().Height(height).Render(content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
