package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var deployCmd = &cobra.Command{
	Use:   "deploy",
	Short: "Deploy the preview site",
	Long: `Runs the configured deploy command (e.g. firebase hosting) and streams
its output. The command, its arguments, and its working directory come
from the [deploy] section of the config.`,
	RunE: runDeploy,
}

func init() {
	rootCmd.AddCommand(deployCmd)
}

func runDeploy(cmd *cobra.Command, _ []string) error {
	if deployService == nil {
		return errors.New("deploy service not configured")
	}

	cmd.Println("Deploying preview site...")
	if err := deployService.Deploy(cmd.Context()); err != nil {
		return err
	}
	cmd.Println("Preview site deployed.")
	return nil
}
