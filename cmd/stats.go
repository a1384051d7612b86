package cmd

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/notequiz/internal/ui/theme"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show streak and quiz history",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}

		cfg, _ := st.LoadConfig()
		history, err := st.LoadHistory()
		if err != nil {
			return fmt.Errorf("load history: %w", err)
		}

		accent := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
		dim := lipgloss.NewStyle().Foreground(theme.TextDim)

		fmt.Println(accent.Render(fmt.Sprintf("★ Current streak: %d days", cfg.Streak.Current)))
		fmt.Println(dim.Render(fmt.Sprintf("  Longest streak: %d days", cfg.Streak.Longest)))
		if cfg.Streak.LastQuizDate != "" {
			fmt.Println(dim.Render("  Last quiz:      " + cfg.Streak.LastQuizDate))
		}
		fmt.Println()

		if len(history.Attempts) == 0 {
			fmt.Println(dim.Render("No quizzes taken yet."))
			return nil
		}

		total := 0
		for _, a := range history.Attempts {
			total += a.Score
		}
		fmt.Printf("Quizzes taken: %d\n", len(history.Attempts))
		fmt.Printf("Average score: %d%%\n\n", total/len(history.Attempts))

		shown := history.Attempts
		if len(shown) > 10 {
			shown = shown[len(shown)-10:]
		}
		for i := len(shown) - 1; i >= 0; i-- {
			a := shown[i]
			style := lipgloss.NewStyle().Foreground(theme.Success)
			if a.Score < 60 {
				style = lipgloss.NewStyle().Foreground(theme.Error)
			}
			fmt.Printf("%s  %s  %d questions\n",
				a.Date.Format("2006-01-02 15:04"),
				style.Render(fmt.Sprintf("%3d%%", a.Score)),
				len(a.QuestionIDs))
		}
		return nil
	},
}
