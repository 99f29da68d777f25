package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var pruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Rotate translation backups",
	Long: `Removes old backups from the backup directory, keeping the newest N
per artifact as configured.`,
	RunE: runPrune,
}

func init() {
	rootCmd.AddCommand(pruneCmd)
}

func runPrune(cmd *cobra.Command, _ []string) error {
	if pruneService == nil {
		return errors.New("prune service not configured")
	}

	results, err := pruneService.Prune(cmd.Context())
	if err != nil {
		return err
	}
	if len(results) == 0 {
		cmd.Println("No backups to prune.")
		return nil
	}

	for _, r := range results {
		cmd.Printf("%s: kept %d, removed %d\n", r.Prefix, r.Kept, r.Removed)
	}
	return nil
}
