package cli

import (
	"github.com/spf13/cobra"
)

var auditJSON bool

var auditCmd = &cobra.Command{
	Use:   "audit [files...]",
	Short: "Report translation issues without failing",
	Long: `Runs the same analysis as "validate" but purely informationally:
issues are printed and the exit code stays zero. Only a fatal error
(missing file, malformed JSON) fails an audit.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAudit,
}

func init() {
	auditCmd.Flags().BoolVar(&auditJSON, "json", false, "output reports as JSON")
	rootCmd.AddCommand(auditCmd)
}

func runAudit(cmd *cobra.Command, args []string) error {
	_, err := analyse(cmd, args, auditJSON)
	return err
}
