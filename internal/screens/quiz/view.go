package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/notequiz/internal/question"
	"github.com/abhisek/notequiz/internal/ui/components"
	"github.com/abhisek/notequiz/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	if s.showingFeedback {
		return s.renderFeedback(width, height)
	}

	q := s.session.CurrentQuestion()
	if q == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\nQuiz complete.")
	}

	var b strings.Builder

	progress := components.NewProgressBar(
		fmt.Sprintf("Question %d of %d", s.session.CurrentIndex+1, len(s.session.Questions)),
		float64(s.session.CurrentIndex)/float64(len(s.session.Questions)),
		false,
		min(width-8, 60),
	)
	b.WriteString("  " + progress.View() + "\n")
	b.WriteString("  " + theme.Hint.Render(string(q.Difficulty)+" · "+q.SourceNote) + "\n\n")

	switch q.Type {
	case question.TypeMultipleChoice, question.TypeTrueFalse:
		b.WriteString(indent(s.mc.View(), 2))

	case question.TypeFillBlank:
		b.WriteString(indent(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(q.Question), 2))
		b.WriteString("\n\n")
		for i, in := range s.blanks {
			cursor := "  "
			if i == s.blankIndex {
				cursor = "▸ "
			}
			b.WriteString(fmt.Sprintf("  %sBlank %d: %s\n", cursor, i+1, in.View()))
		}
	}

	return lipgloss.NewStyle().Height(height).Render(b.String())
}

func (s *QuizScreen) renderFeedback(width, height int) string {
	// The cursor has already advanced, so the answered question is the
	// previous one.
	answered := s.session.Questions[s.session.CurrentIndex-1]

	var b strings.Builder
	b.WriteString("\n\n")

	if s.lastCorrect {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Correct.Render("✓ Correct!")))
	} else {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Incorrect.Render("✗ Not quite.")))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Text).Render("Answer: "+expectedAnswer(answered))))
	}

	if s.cfg.Preferences.ShowExplanations && answered.Explanation != "" {
		b.WriteString("\n\n")
		card := theme.Card.Width(min(width-8, 70)).Render(
			theme.Hint.Render(answered.Explanation))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, card))
	}

	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Hint.Render("Press any key to continue")))

	return lipgloss.NewStyle().Height(height).Render(b.String())
}

// expectedAnswer renders the correct answer of a question for feedback.
func expectedAnswer(q question.Question) string {
	switch q.Type {
	case question.TypeTrueFalse:
		if q.CorrectBool {
			return "True"
		}
		return "False"
	case question.TypeFillBlank:
		return strings.Join(q.Blanks, ", ")
	default:
		return q.CorrectAnswer
	}
}

func indent(s string, n int) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = pad + line
		}
	}
	return strings.Join(lines, "\n")
}
