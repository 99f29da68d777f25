package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/levante-framework/levante-surveys-sub001/internal/core/ports/driving"
)

var pullPlain bool

var pullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Download translation artifacts",
	Long: `Downloads the configured translation artifacts from their HTTP or
GitHub sources. Before a file is replaced, the previous copy is backed
up into the backup directory; "prune" rotates those backups.`,
	RunE: runPull,
}

func init() {
	pullCmd.Flags().BoolVar(&pullPlain, "plain", false, "disable the progress UI")
	rootCmd.AddCommand(pullCmd)
}

func runPull(cmd *cobra.Command, _ []string) error {
	if pullService == nil {
		return errors.New("pull service not configured")
	}

	ctx := cmd.Context()

	if pullPlain || !term.IsTerminal(int(os.Stdout.Fd())) {
		return pullService.Pull(ctx, func(ev driving.PullEvent) {
			switch {
			case ev.Err != nil:
				cmd.PrintErrf("%s: %v\n", ev.Name, ev.Err)
			case ev.Done:
				cmd.Printf("pulled %s (%d bytes) [%d/%d]\n", ev.Name, ev.Bytes, ev.Index+1, ev.Total)
			default:
				cmd.Printf("fetching %s...\n", ev.Name)
			}
		})
	}

	if err := runPullUI(ctx, pullService); err != nil {
		return fmt.Errorf("pull failed: %w", err)
	}
	return nil
}
