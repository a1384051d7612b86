package cmd

import (
	"github.com/abhisek/notequiz/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "notequiz",
	Short: "Spaced recall quizzes from your markdown notes",
	Long:  "Notequiz — terminal app that turns your markdown notes into recall quizzes and tracks a daily practice streak.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("data", "", "Path to the data directory (overrides NOTEQUIZ_DATA env var)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// openStore opens the data store at the --data flag path, falling back
// to the environment and XDG defaults.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dir, _ := cmd.Flags().GetString("data")
	return store.Open(dir)
}
