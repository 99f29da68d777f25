package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/levante-framework/levante-surveys-sub001/internal/core/domain"
)

// mockValidator implements driving.SurveyValidator for testing.
type mockValidator struct {
	reports map[string]*domain.Report
	err     error
}

func (m *mockValidator) ValidateFile(_ context.Context, path string) (*domain.Report, error) {
	if m.err != nil {
		return nil, m.err
	}
	if report, ok := m.reports[path]; ok {
		return report, nil
	}
	return &domain.Report{RunID: "run", File: path}, nil
}

func (m *mockValidator) Validate(doc domain.SurveyDocument) *domain.Report {
	return &domain.Report{RunID: "run", File: doc.Path}
}

func setupValidateTest(v *mockValidator) func() {
	old := validatorService
	validatorService = v
	return func() {
		validatorService = old
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestValidateCmd_Use(t *testing.T) {
	assert.Equal(t, "validate [files...]", validateCmd.Use)
}

func TestValidateCmd_CleanFileExitsZero(t *testing.T) {
	cleanup := setupValidateTest(&mockValidator{})
	defer cleanup()

	out, err := execute(t, "validate", "clean.json")

	require.NoError(t, err)
	assert.Contains(t, out, "no issues")
}

func TestValidateCmd_IssuesFailTheRun(t *testing.T) {
	cleanup := setupValidateTest(&mockValidator{
		reports: map[string]*domain.Report{
			"bad.json": {
				RunID: "run",
				File:  "bad.json",
				Issues: []domain.Issue{
					{Path: "title", Kind: domain.IssueMissingLocale, Keys: []string{"es-CO"}},
				},
				MapsScanned: 1,
			},
		},
	})
	defer cleanup()

	out, err := execute(t, "validate", "bad.json")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrIssuesFound)
	assert.Contains(t, out, "missing_locale")
	assert.Contains(t, out, "title")
}

func TestValidateCmd_FatalLoadError(t *testing.T) {
	cleanup := setupValidateTest(&mockValidator{err: &domain.ParseError{Path: "broken.json"}})
	defer cleanup()

	_, err := execute(t, "validate", "broken.json")

	require.Error(t, err)
	var parseErr *domain.ParseError
	assert.True(t, errors.As(err, &parseErr))
}

func TestValidateCmd_JSONOutput(t *testing.T) {
	cleanup := setupValidateTest(&mockValidator{})
	defer cleanup()

	out, err := execute(t, "validate", "--json", "clean.json")
	defer func() { validateJSON = false }()

	require.NoError(t, err)
	assert.Contains(t, out, `"file": "clean.json"`)
}

func TestAuditCmd_IssuesDoNotFailTheRun(t *testing.T) {
	cleanup := setupValidateTest(&mockValidator{
		reports: map[string]*domain.Report{
			"bad.json": {
				RunID: "run",
				File:  "bad.json",
				Issues: []domain.Issue{
					{Path: "title", Kind: domain.IssueEmptyFallback, Keys: []string{"default"}},
				},
				MapsScanned: 1,
			},
		},
	})
	defer cleanup()

	out, err := execute(t, "audit", "bad.json")

	require.NoError(t, err)
	assert.Contains(t, out, "empty_fallback")
}
