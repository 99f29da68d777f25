package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_Load_ExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "surveyctl.toml")
	content := `
[validation]
target_locale = "de-DE"
trigger_locales = ["default"]

[prune]
keep = 9
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := NewLoader().Load(path)

	require.NoError(t, err)
	assert.Equal(t, "de-DE", cfg.Validation.TargetLocale)
	assert.Equal(t, []string{"default"}, cfg.Validation.TriggerLocales)
	assert.Equal(t, 9, cfg.Prune.Keep)

	// Sections absent from the file keep their defaults.
	assert.Equal(t, []string{"default", "en", "en-US"}, cfg.Validation.FallbackLocales)
	assert.Equal(t, "en", cfg.Normalize.SourceLocale)
}

func TestLoader_Load_ExplicitMissingFile(t *testing.T) {
	_, err := NewLoader().Load(filepath.Join(t.TempDir(), "nope.toml"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}

func TestLoader_Load_EmptyPathUsesDefaults(t *testing.T) {
	// Run from a directory without a surveyctl.toml.
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := NewLoader().Load("")

	require.NoError(t, err)
	assert.Equal(t, "es-CO", cfg.Validation.TargetLocale)
}

func TestLoader_Load_MalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte(`[validation`), 0o644))

	_, err := NewLoader().Load(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}
