package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/abhisek/notequiz/internal/question"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a question batch file without importing it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		var candidate any
		if err := json.Unmarshal(raw, &candidate); err != nil {
			return fmt.Errorf("not valid JSON: %w", err)
		}

		result := question.ValidateImportFile(candidate)
		if result.Valid {
			var batch question.ImportBatch
			if err := json.Unmarshal(raw, &batch); err != nil {
				return err
			}
			fmt.Printf("OK: %d questions\n", len(batch.Questions))
			return nil
		}

		for _, e := range result.Errors {
			fmt.Fprintln(os.Stderr, e)
		}
		return fmt.Errorf("%d validation error(s)", len(result.Errors))
	},
}
