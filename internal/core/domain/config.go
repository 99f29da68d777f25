package domain

// CheckConfig configures the classifier and the validation checks.
// It is passed explicitly into the validator; nothing is read from the
// environment.
type CheckConfig struct {
	// TargetLocale is the locale whose completeness is checked,
	// e.g. "es-CO". The underscore spelling is accepted as an alias.
	TargetLocale string `toml:"target_locale"`

	// TriggerLocales are the locales whose presence implies the target
	// should exist. A map carrying none of them is legitimately
	// locale-agnostic and is not flagged.
	TriggerLocales []string `toml:"trigger_locales"`

	// FallbackLocales are the keys expected to carry non-empty baseline
	// text, typically "default", "en", "en-US". Kept independent from
	// TriggerLocales: the two sets serve different checks.
	FallbackLocales []string `toml:"fallback_locales"`

	// ExtraLocaleKeys extends the locale-key vocabulary beyond the
	// two-letter pattern and "default".
	ExtraLocaleKeys []string `toml:"extra_locale_keys"`

	// Aliases maps alternate spellings onto a canonical one,
	// e.g. "es_co" -> "es-CO".
	Aliases map[string]string `toml:"aliases"`
}

// NormalizeConfig configures the normalisation pass.
type NormalizeConfig struct {
	// SourceLocale is copied into blank or missing "default" values.
	SourceLocale string `toml:"source_locale"`

	// StripMarkup removes HTML-like tags from default values.
	StripMarkup bool `toml:"strip_markup"`
}

// Artifact is one remote translation file to pull.
type Artifact struct {
	// Name identifies the artifact in progress output.
	Name string `toml:"name"`

	// URL is the HTTP location of the artifact. Empty when the artifact
	// comes from the configured GitHub repository instead.
	URL string `toml:"url"`

	// RepoPath is the path within the GitHub repository. Only used when
	// URL is empty.
	RepoPath string `toml:"repo_path"`

	// Out is the local file the artifact is written to.
	Out string `toml:"out"`
}

// GitHubConfig locates translation artifacts in a GitHub repository.
type GitHubConfig struct {
	Owner string `toml:"owner"`
	Repo  string `toml:"repo"`

	// Ref is the branch, tag, or commit to read from. Empty means the
	// repository default branch.
	Ref string `toml:"ref"`

	// Token authenticates API requests. When empty the pull command
	// prompts for it on a terminal.
	Token string `toml:"token"`
}

// PullConfig configures the pull command.
type PullConfig struct {
	// Artifacts are fetched in declaration order.
	Artifacts []Artifact `toml:"artifacts"`

	// GitHub configures the repository source for artifacts without a URL.
	GitHub GitHubConfig `toml:"github"`

	// BackupDir receives a timestamped copy of each artifact before it
	// is replaced. Empty disables backups.
	BackupDir string `toml:"backup_dir"`

	// RatePerSecond throttles HTTP requests.
	RatePerSecond float64 `toml:"rate_per_second"`

	// Burst is the rate limiter burst size.
	Burst int `toml:"burst"`
}

// SplitConfig configures the CSV split command.
type SplitConfig struct {
	// Column is the header name whose value selects the output file.
	Column string `toml:"column"`

	// OutDir receives the per-group CSV files.
	OutDir string `toml:"out_dir"`
}

// PruneConfig configures backup rotation.
type PruneConfig struct {
	// Dir is the backup directory to rotate.
	Dir string `toml:"dir"`

	// Keep is how many backups to retain per artifact, newest first.
	Keep int `toml:"keep"`
}

// DeployConfig configures the preview-site deploy command.
type DeployConfig struct {
	// Command is the external CLI to run, e.g. "firebase".
	Command string `toml:"command"`

	// Args are passed to the command.
	Args []string `toml:"args"`

	// Dir is the working directory for the command. Empty means the
	// current directory.
	Dir string `toml:"dir"`
}

// Config is the full configuration, loaded from one TOML file.
type Config struct {
	Validation CheckConfig     `toml:"validation"`
	Normalize  NormalizeConfig `toml:"normalize"`
	Pull       PullConfig      `toml:"pull"`
	Split      SplitConfig     `toml:"split"`
	Prune      PruneConfig     `toml:"prune"`
	Deploy     DeployConfig    `toml:"deploy"`
}

// DefaultConfig returns the configuration used when no file overrides it.
// The trigger and fallback sets are deliberately different: the first
// targets es-CO completeness, the second checks the English baseline.
func DefaultConfig() *Config {
	return &Config{
		Validation: CheckConfig{
			TargetLocale:   "es-CO",
			TriggerLocales: []string{DefaultKey, "es"},
			FallbackLocales: []string{
				DefaultKey, "en", "en-US",
			},
			Aliases: map[string]string{
				"es_co": "es-CO",
			},
		},
		Normalize: NormalizeConfig{
			SourceLocale: "en",
			StripMarkup:  true,
		},
		Pull: PullConfig{
			BackupDir:     "backups",
			RatePerSecond: 4,
			Burst:         2,
		},
		Split: SplitConfig{
			Column: "survey",
			OutDir: "surveys",
		},
		Prune: PruneConfig{
			Dir:  "backups",
			Keep: 5,
		},
	}
}
