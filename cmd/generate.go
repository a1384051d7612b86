package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/abhisek/notequiz/internal/generate"
	"github.com/abhisek/notequiz/internal/llm"
	"github.com/abhisek/notequiz/internal/notes"
	"github.com/abhisek/notequiz/internal/question"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate <vault>",
	Short: "Generate questions from a markdown vault",
	Long: `Generate walks the vault, sends each markdown note to the configured
LLM provider, and writes the resulting question batches to the import
inbox. Run "notequiz import" afterwards to add them to the bank.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}

		cfg := llm.ConfigFromEnv()
		if cfg.Validate() != nil {
			// No explicit NOTEQUIZ_* setup; probe the standard key vars.
			discovered, ok := llm.DiscoverConfig()
			if !ok {
				return fmt.Errorf("no LLM provider configured: set NOTEQUIZ_LLM_PROVIDER and its API key, or export ANTHROPIC_API_KEY / OPENAI_API_KEY / GEMINI_API_KEY / OPENROUTER_API_KEY")
			}
			cfg = discovered
		}

		provider, err := llm.NewProvider(cmd.Context(), cfg, llm.NewRequestLog(st.LogPath()))
		if err != nil {
			return err
		}

		genCfg := generate.DefaultConfig()
		if n, _ := cmd.Flags().GetInt("count"); n > 0 {
			genCfg.QuestionsPerNote = n
		}
		genCfg.Difficulty, _ = cmd.Flags().GetString("difficulty")

		gen := generate.New(provider, genCfg)

		vault := args[0]
		var noteList []notes.Note
		if rel, _ := cmd.Flags().GetString("note"); rel != "" {
			n, err := notes.Load(vault, rel)
			if err != nil {
				return err
			}
			noteList = []notes.Note{n}
		} else {
			noteList, err = notes.List(vault)
			if err != nil {
				return err
			}
		}
		if len(noteList) == 0 {
			return fmt.Errorf("no markdown notes found in %s", vault)
		}

		var all []question.Question
		for _, n := range noteList {
			fmt.Printf("Generating from %s...\n", n.Path)
			qs, err := gen.Generate(cmd.Context(), n)
			if err != nil {
				fmt.Fprintf(os.Stderr, "  skipped: %v\n", err)
				continue
			}
			fmt.Printf("  %d questions\n", len(qs))
			all = append(all, qs...)
		}
		if len(all) == 0 {
			return fmt.Errorf("no questions generated")
		}

		batch := question.ImportBatch{Questions: all}
		data, err := json.MarshalIndent(batch, "", "  ")
		if err != nil {
			return err
		}

		name := fmt.Sprintf("generated-%s.json", time.Now().Format("20060102-150405"))
		if err := st.WriteImportFile(name, data); err != nil {
			return fmt.Errorf("write import file: %w", err)
		}

		fmt.Printf("\nWrote %d questions to %s. Run `notequiz import` to add them.\n", len(all), name)
		return nil
	},
}

func init() {
	generateCmd.Flags().Int("count", 0, "Questions per note (default 5)")
	generateCmd.Flags().String("note", "", "Generate from a single note (vault-relative path)")
	generateCmd.Flags().String("difficulty", "", "Pin all questions to one difficulty (easy, medium, hard)")
}
