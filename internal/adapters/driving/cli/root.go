// Package cli wires the surveyctl commands. Each command is an
// independently invoked batch operation over local survey files or a
// remote translation source; there is no long-running process apart
// from the optional watch mode.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	configfile "github.com/levante-framework/levante-surveys-sub001/internal/adapters/driven/config/file"
	surveyfile "github.com/levante-framework/levante-surveys-sub001/internal/adapters/driven/loader/file"
	githubsrc "github.com/levante-framework/levante-surveys-sub001/internal/adapters/driven/source/github"
	"github.com/levante-framework/levante-surveys-sub001/internal/adapters/driven/source/httpsrc"
	"github.com/levante-framework/levante-surveys-sub001/internal/core/ports/driving"
	"github.com/levante-framework/levante-surveys-sub001/internal/core/services"
	"github.com/levante-framework/levante-surveys-sub001/internal/logger"
)

var (
	version = "dev"
	cfgFile string
	verbose bool
)

// Services used by commands. Built from configuration on first use;
// tests swap them for mocks.
var (
	validatorService  driving.SurveyValidator
	normalizerService driving.SurveyNormalizer
	pullService       driving.Puller
	splitService      driving.Splitter
	pruneService      driving.Pruner
	deployService     driving.Deployer
)

var rootCmd = &cobra.Command{
	Use:   "surveyctl",
	Short: "Maintenance tools for the survey translation pipeline",
	Long: `surveyctl maintains survey translation files: it validates translated
JSON survey definitions for completeness, normalises default-language
values, pulls translation artifacts from remote sources, splits combined
CSVs, prunes backups, and deploys the preview site.

Each command is independent; configuration comes from surveyctl.toml.`,
	SilenceUsage: true,
}

func init() {
	// Assigned here rather than in the composite literal: the closure
	// refers to ensureServices, which refers back to rootCmd, and that
	// is an initialization cycle at package level.
	rootCmd.PersistentPreRunE = func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)
		return ensureServices()
	}
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to config file (default "+configfile.DefaultConfigName+")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// Execute runs the CLI with the given build version.
func Execute(v string) error {
	version = v
	return rootCmd.Execute()
}

// ensureServices builds every service not already injected (by tests)
// from the loaded configuration. Each invocation operates on freshly
// loaded configuration; nothing persists between runs.
func ensureServices() error {
	cfg, err := configfile.NewLoader().Load(cfgFile)
	if err != nil {
		return err
	}

	loader := surveyfile.NewLoader()

	if validatorService == nil {
		validatorService = services.NewValidator(cfg.Validation, loader)
	}
	if normalizerService == nil {
		normalizerService = services.NewNormalizer(cfg.Normalize, cfg.Validation)
	}
	if pullService == nil {
		repo := githubsrc.New(cfg.Pull.GitHub, &terminalTokenProvider{in: os.Stdin})
		pullService = services.NewPuller(cfg.Pull, httpsrc.New(cfg.Pull), repo)
	}
	if splitService == nil {
		splitService = services.NewSplitter(cfg.Split)
	}
	if pruneService == nil {
		pruneService = services.NewPruner(cfg.Prune)
	}
	if deployService == nil {
		deployService = services.NewDeployer(cfg.Deploy, rootCmd.OutOrStdout())
	}
	return nil
}
