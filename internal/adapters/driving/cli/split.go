package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var splitCmd = &cobra.Command{
	Use:   "split [combined.csv]",
	Short: "Split a combined translation CSV",
	Long: `Splits a combined translation CSV into one file per survey, selected
by the configured column. The header row is repeated in every output
file and row order is preserved within each survey.`,
	Args: cobra.ExactArgs(1),
	RunE: runSplit,
}

func init() {
	rootCmd.AddCommand(splitCmd)
}

func runSplit(cmd *cobra.Command, args []string) error {
	if splitService == nil {
		return errors.New("split service not configured")
	}

	results, err := splitService.Split(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	for _, r := range results {
		cmd.Printf("%s: %d row(s) -> %s\n", r.Group, r.Rows, r.File)
	}
	cmd.Printf("%d file(s) written.\n", len(results))
	return nil
}
