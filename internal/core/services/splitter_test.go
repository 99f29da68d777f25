package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/levante-framework/levante-surveys-sub001/internal/core/domain"
)

func writeCombined(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "combined.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSplitter_Split_GroupsByColumn(t *testing.T) {
	combined := writeCombined(t,
		"identifier,survey,en,es\n"+
			"q1,child,Hello,Hola\n"+
			"q2,parent,Bye,Adios\n"+
			"q3,child,Yes,Si\n")
	outDir := filepath.Join(t.TempDir(), "out")

	s := NewSplitter(domain.SplitConfig{Column: "survey", OutDir: outDir})
	results, err := s.Split(context.Background(), combined)

	require.NoError(t, err)
	require.Len(t, results, 2)

	// First-appearance order.
	assert.Equal(t, "child", results[0].Group)
	assert.Equal(t, 2, results[0].Rows)
	assert.Equal(t, "parent", results[1].Group)
	assert.Equal(t, 1, results[1].Rows)

	data, err := os.ReadFile(filepath.Join(outDir, "child.csv"))
	require.NoError(t, err)
	assert.Equal(t, "identifier,survey,en,es\nq1,child,Hello,Hola\nq3,child,Yes,Si\n", string(data))
}

func TestSplitter_Split_MissingColumn(t *testing.T) {
	combined := writeCombined(t, "identifier,en\nq1,Hello\n")

	s := NewSplitter(domain.SplitConfig{Column: "survey", OutDir: t.TempDir()})
	_, err := s.Split(context.Background(), combined)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSplitter_Split_BlankGroupCollected(t *testing.T) {
	combined := writeCombined(t, "identifier,survey\nq1,\n")
	outDir := t.TempDir()

	s := NewSplitter(domain.SplitConfig{Column: "survey", OutDir: outDir})
	results, err := s.Split(context.Background(), combined)

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "ungrouped", results[0].Group)
}

func TestSplitter_Split_MissingFile(t *testing.T) {
	s := NewSplitter(domain.SplitConfig{Column: "survey", OutDir: t.TempDir()})
	_, err := s.Split(context.Background(), filepath.Join(t.TempDir(), "nope.csv"))

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSafeFileName(t *testing.T) {
	assert.Equal(t, "a_b", safeFileName("a/b"))
	assert.Equal(t, "__x", safeFileName("../x"))
}
