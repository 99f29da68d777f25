package domain

import (
	"regexp"
	"strings"

	"golang.org/x/text/language"
)

// DefaultKey is the locale key holding the source-language text a survey
// falls back to when no locale-specific translation exists.
const DefaultKey = "default"

// localeKeyPattern matches two letters optionally followed by a separator
// and a two-letter region, e.g. "es", "es-CO", "es_co", "EN-us".
// Case-insensitive on the letters; both hyphen and underscore separators
// are accepted because translation exports are inconsistent about them.
var localeKeyPattern = regexp.MustCompile(`(?i)^[a-z]{2}([-_][a-z]{2})?$`)

// LocaleMatcher answers whether an object key is a locale key and folds
// spelling variants (case, hyphen vs underscore, configured aliases) into
// one canonical form so that "es_co" and "es-CO" compare equal.
type LocaleMatcher struct {
	aliases map[string]string
	extra   map[string]bool
}

// NewLocaleMatcher builds a matcher from the check configuration.
// Alias keys and values, and extra locale keys, are folded before storage
// so lookups are insensitive to casing and separator choice.
func NewLocaleMatcher(cfg CheckConfig) *LocaleMatcher {
	m := &LocaleMatcher{
		aliases: make(map[string]string, len(cfg.Aliases)),
		extra:   make(map[string]bool, len(cfg.ExtraLocaleKeys)),
	}
	for alias, target := range cfg.Aliases {
		m.aliases[fold(alias)] = fold(target)
	}
	for _, key := range cfg.ExtraLocaleKeys {
		m.extra[fold(key)] = true
	}
	return m
}

// IsLocaleKey reports whether key names a locale in a translation map.
// "default" counts, as do configured extra keys and anything matching the
// two-letter / two-letter-region pattern.
func (m *LocaleMatcher) IsLocaleKey(key string) bool {
	folded := fold(key)
	if folded == DefaultKey {
		return true
	}
	if m.extra[folded] {
		return true
	}
	return localeKeyPattern.MatchString(key)
}

// Canonical returns the canonical spelling of a locale key: aliases are
// resolved, then the key is rendered as a BCP 47 tag ("es_co" -> "es-CO").
// Keys that are not parseable tags ("default", extra keys) are returned
// in folded form.
func (m *LocaleMatcher) Canonical(key string) string {
	folded := fold(key)
	if target, ok := m.aliases[folded]; ok {
		folded = target
	}
	if folded == DefaultKey {
		return DefaultKey
	}
	tag, err := language.Parse(folded)
	if err != nil {
		return folded
	}
	return tag.String()
}

// Same reports whether two keys name the same locale.
func (m *LocaleMatcher) Same(a, b string) bool {
	return m.Canonical(a) == m.Canonical(b)
}

// fold lowercases a key and normalises the separator to a hyphen.
func fold(key string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(key)), "_", "-")
}
