package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize [files...]",
	Short: "Normalise default-language values",
	Long: `Rewrites survey files in place: blank or missing "default" values are
filled from the configured source locale and markup is stripped from
default text. Validation never mutates; this is the separate pass that
does.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runNormalize,
}

func init() {
	rootCmd.AddCommand(normalizeCmd)
}

func runNormalize(cmd *cobra.Command, args []string) error {
	if normalizerService == nil {
		return errors.New("normalizer service not configured")
	}

	total := 0
	for _, path := range args {
		changes, err := normalizerService.NormalizeFile(cmd.Context(), path)
		if err != nil {
			return err
		}
		for _, change := range changes {
			cmd.Printf("%s: %s %s.%s\n", path, change.Reason, change.Path, change.Key)
		}
		total += len(changes)
	}

	if total == 0 {
		cmd.Println("Nothing to normalise.")
		return nil
	}
	cmd.Printf("%d value(s) rewritten.\n", total)
	return nil
}
