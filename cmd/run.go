package cmd

import (
	"fmt"

	"github.com/abhisek/notequiz/internal/app"
	"github.com/spf13/cobra"
)

// runApp launches the full TUI at the home screen.
func runApp(cmd *cobra.Command) error {
	st, err := openStore(cmd)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	return app.Run(st)
}
