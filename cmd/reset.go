package cmd

import (
	"fmt"

	"github.com/abhisek/notequiz/internal/streak"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the current streak",
	Long:  "Reset zeroes the current streak counter. The longest streak is kept as a record.",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}

		cfg, _ := st.LoadConfig()
		cfg.Streak = streak.Reset(cfg.Streak)
		if err := st.SaveConfig(cfg); err != nil {
			return fmt.Errorf("save config: %w", err)
		}

		fmt.Printf("Streak reset. Longest streak remains %d days.\n", cfg.Streak.Longest)
		return nil
	},
}
