package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/levante-framework/levante-surveys-sub001/internal/core/domain"
)

var (
	validateJSON  bool
	validateWatch bool
)

var validateCmd = &cobra.Command{
	Use:   "validate [files...]",
	Short: "Validate survey translation files",
	Long: `Walks each survey JSON file, classifies translation maps, and checks
them for a missing target locale, disallowed markup, and empty fallback
text. Any issue fails the run with a non-zero exit; use "audit" for the
same analysis without the failing exit.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().BoolVar(&validateJSON, "json", false, "output reports as JSON")
	validateCmd.Flags().BoolVar(&validateWatch, "watch", false, "re-run validation when the files change")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	if validateWatch {
		return watchAndValidate(cmd, args)
	}

	issues, err := analyse(cmd, args, validateJSON)
	if err != nil {
		return err
	}
	if issues > 0 {
		return fmt.Errorf("%d issue(s) found: %w", issues, domain.ErrIssuesFound)
	}
	return nil
}

// analyse runs the validator over every file, renders the reports, and
// returns the total issue count. Load and parse failures are fatal.
func analyse(cmd *cobra.Command, paths []string, asJSON bool) (int, error) {
	ctx := cmd.Context()

	reports := make([]*domain.Report, 0, len(paths))
	for _, path := range paths {
		report, err := validatorService.ValidateFile(ctx, path)
		if err != nil {
			return 0, err
		}
		reports = append(reports, report)
	}

	if asJSON {
		data, err := json.MarshalIndent(reports, "", "  ")
		if err != nil {
			return 0, fmt.Errorf("marshal reports: %w", err)
		}
		cmd.Println(string(data))
	}

	issues, maps := 0, 0
	for _, report := range reports {
		if !asJSON {
			renderReport(cmd.OutOrStdout(), report)
		}
		issues += len(report.Issues)
		maps += report.MapsScanned
	}
	if !asJSON {
		renderSummary(cmd.OutOrStdout(), len(reports), maps, issues)
	}
	return issues, nil
}
