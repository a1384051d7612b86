package cmd

import (
	"fmt"

	"github.com/abhisek/notequiz/internal/app"
	"github.com/abhisek/notequiz/internal/question"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a quiz immediately",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}

		qs, err := st.LoadQuestions()
		if err != nil {
			return fmt.Errorf("load questions: %w", err)
		}

		note, _ := cmd.Flags().GetString("note")
		difficulty, _ := cmd.Flags().GetString("difficulty")
		count, _ := cmd.Flags().GetInt("count")

		pool := filterQuestions(qs.Questions, note, difficulty)
		if len(pool) == 0 {
			return fmt.Errorf("no questions match the given filters")
		}

		if count == 0 {
			cfg, _ := st.LoadConfig()
			count = cfg.Preferences.QuestionsPerQuiz
		}

		return app.RunQuiz(st, pool, count)
	},
}

func init() {
	playCmd.Flags().Int("count", 0, "Number of questions (default: questionsPerQuiz preference)")
	playCmd.Flags().String("note", "", "Only questions generated from this note path")
	playCmd.Flags().String("difficulty", "", "Only questions of this difficulty (easy, medium, hard)")
}

// filterQuestions narrows the bank by source note and difficulty.
func filterQuestions(qs []question.Question, note, difficulty string) []question.Question {
	var out []question.Question
	for _, q := range qs {
		if note != "" && q.SourceNote != note {
			continue
		}
		if difficulty != "" && string(q.Difficulty) != difficulty {
			continue
		}
		out = append(out, q)
	}
	return out
}
