package cmd

import (
	"fmt"
	"os"

	"github.com/abhisek/notequiz/internal/importer"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import question batches from the inbox",
	Long: `Import processes every .json file in the imports/ inbox. A file is
imported all-or-nothing: one invalid question rejects the whole file and
leaves the bank untouched. Successfully imported files are removed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}

		files, err := st.ImportFiles()
		if err != nil {
			return fmt.Errorf("list inbox: %w", err)
		}
		if len(files) == 0 {
			fmt.Println("No import files found.")
			return nil
		}

		qs, err := st.LoadQuestions()
		if err != nil {
			return fmt.Errorf("load questions: %w", err)
		}

		imported := 0
		failed := 0
		for _, name := range files {
			raw, err := st.ReadImportFile(name)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
				failed++
				continue
			}

			result := importer.ImportQuestions(raw, &qs)
			if !result.Success {
				failed++
				fmt.Fprintf(os.Stderr, "%s: rejected\n", name)
				for _, e := range result.Errors {
					fmt.Fprintf(os.Stderr, "  %s\n", e)
				}
				continue
			}

			if err := st.SaveQuestions(qs); err != nil {
				return fmt.Errorf("save questions: %w", err)
			}
			if err := st.RemoveImportFile(name); err != nil {
				fmt.Fprintf(os.Stderr, "%s: imported but could not remove: %v\n", name, err)
			}
			imported += result.Imported
			fmt.Printf("%s: imported %d questions\n", name, result.Imported)
		}

		fmt.Printf("\nImported %d questions. Bank now holds %d.\n", imported, len(qs.Questions))
		if failed > 0 {
			return fmt.Errorf("%d file(s) rejected", failed)
		}
		return nil
	},
}
