package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMatcher() *LocaleMatcher {
	return NewLocaleMatcher(DefaultConfig().Validation)
}

func TestLocaleMatcher_IsLocaleKey_Default(t *testing.T) {
	m := newTestMatcher()

	assert.True(t, m.IsLocaleKey("default"))
	assert.True(t, m.IsLocaleKey("Default"))
}

func TestLocaleMatcher_IsLocaleKey_Patterns(t *testing.T) {
	m := newTestMatcher()

	assert.True(t, m.IsLocaleKey("es"))
	assert.True(t, m.IsLocaleKey("es-CO"))
	assert.True(t, m.IsLocaleKey("es_co"))
	assert.True(t, m.IsLocaleKey("EN-us"))
	assert.True(t, m.IsLocaleKey("de"))
}

func TestLocaleMatcher_IsLocaleKey_Rejects(t *testing.T) {
	m := newTestMatcher()

	assert.False(t, m.IsLocaleKey("title"))
	assert.False(t, m.IsLocaleKey("es-COL"))
	assert.False(t, m.IsLocaleKey("e"))
	assert.False(t, m.IsLocaleKey("english"))
	assert.False(t, m.IsLocaleKey(""))
}

func TestLocaleMatcher_IsLocaleKey_ExtraKeys(t *testing.T) {
	cfg := DefaultConfig().Validation
	cfg.ExtraLocaleKeys = []string{"latam"}
	m := NewLocaleMatcher(cfg)

	assert.True(t, m.IsLocaleKey("latam"))
	assert.True(t, m.IsLocaleKey("LATAM"))
	assert.False(t, m.IsLocaleKey("emea"))
}

func TestLocaleMatcher_Canonical_FoldsSpelling(t *testing.T) {
	m := newTestMatcher()

	assert.Equal(t, "es-CO", m.Canonical("es_co"))
	assert.Equal(t, "es-CO", m.Canonical("ES-CO"))
	assert.Equal(t, "en-US", m.Canonical("en_us"))
	assert.Equal(t, "default", m.Canonical("default"))
}

func TestLocaleMatcher_Same_AliasEquivalence(t *testing.T) {
	m := newTestMatcher()

	require.True(t, m.Same("es_co", "es-CO"))
	require.True(t, m.Same("EN", "en"))
	assert.False(t, m.Same("es", "es-CO"))
}
