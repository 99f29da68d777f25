package services

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/levante-framework/levante-surveys-sub001/internal/core/domain"
	"github.com/levante-framework/levante-surveys-sub001/internal/core/ports/driving"
	"github.com/levante-framework/levante-surveys-sub001/internal/logger"
)

// Ensure Normalizer implements the interface.
var _ driving.SurveyNormalizer = (*Normalizer)(nil)

// Normalizer rewrites survey files: blank or missing "default" values
// are filled from the source locale and markup is stripped from default
// text. Mutation goes through sjson so untouched parts of the document
// keep their bytes, key order, and formatting.
type Normalizer struct {
	cfg     domain.NormalizeConfig
	matcher *domain.LocaleMatcher
}

// NewNormalizer creates a normaliser. The locale vocabulary comes from
// the same check configuration the validator uses.
func NewNormalizer(cfg domain.NormalizeConfig, checks domain.CheckConfig) *Normalizer {
	return &Normalizer{
		cfg:     cfg,
		matcher: domain.NewLocaleMatcher(checks),
	}
}

// NormalizeFile rewrites the file at path in place and returns the
// changes made. The file is not written when nothing changed.
func (n *Normalizer) NormalizeFile(_ context.Context, path string) ([]driving.Change, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", path, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	out, changes, err := n.Normalize(data)
	if err != nil {
		return nil, fmt.Errorf("normalize %s: %w", path, err)
	}
	if len(changes) == 0 {
		return nil, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if err := os.WriteFile(path, out, info.Mode().Perm()); err != nil {
		return nil, fmt.Errorf("write %s: %w", path, err)
	}
	logger.Info("normalized %s: %d change(s)", path, len(changes))
	return changes, nil
}

// Normalize applies the normalisation pass to raw JSON and returns the
// rewritten document with the list of changes in traversal order.
func (n *Normalizer) Normalize(data []byte) ([]byte, []driving.Change, error) {
	if !gjson.ValidBytes(data) {
		return nil, nil, &domain.ParseError{}
	}

	type edit struct {
		wirePath string
		value    string
		change   driving.Change
	}
	var edits []edit

	// wirePath is the sjson path (segments escaped), displayPath the
	// human-readable one used in change records.
	var walk func(displayPath, wirePath string, node gjson.Result)
	walk = func(displayPath, wirePath string, node gjson.Result) {
		cls := Classify(node, n.matcher)

		if cls.Kind == domain.NodeTranslationMap {
			if e, ok := n.defaultEdit(cls); ok {
				e.change.Path = displayPath
				edits = append(edits, edit{
					wirePath: joinWire(wirePath, domain.DefaultKey),
					value:    e.value,
					change:   e.change,
				})
			}
		}

		if cls.Kind == domain.NodeArray {
			index := 0
			node.ForEach(func(_, value gjson.Result) bool {
				if value.IsObject() || value.IsArray() {
					seg := strconv.Itoa(index)
					walk(childPath(displayPath, seg), joinWire(wirePath, seg), value)
				}
				index++
				return true
			})
			return
		}
		if cls.Kind == domain.NodeScalar {
			return
		}

		node.ForEach(func(key, value gjson.Result) bool {
			if value.IsObject() || value.IsArray() {
				k := key.String()
				walk(childPath(displayPath, k), joinWire(wirePath, escapeSegment(k)), value)
			}
			return true
		})
	}
	walk(rootPath, "", gjson.ParseBytes(data))

	var changes []driving.Change
	out := data
	for _, e := range edits {
		var err error
		out, err = sjson.SetBytes(out, e.wirePath, e.value)
		if err != nil {
			return nil, nil, fmt.Errorf("set %s: %w", e.change.Path, err)
		}
		changes = append(changes, e.change)
	}
	return out, changes, nil
}

type defaultEdit struct {
	value  string
	change driving.Change
}

// defaultEdit decides the new "default" value of a translation map, if
// any: missing or blank defaults are filled from the source locale, and
// markup is stripped when configured. Non-string values are left alone.
func (n *Normalizer) defaultEdit(cls domain.Classification) (defaultEdit, bool) {
	current := ""
	hasDefault := false
	skip := false
	for _, entry := range cls.Entries {
		if n.matcher.Canonical(entry.Key) != domain.DefaultKey {
			continue
		}
		hasDefault = true
		if entry.Value.Type == gjson.String {
			current = entry.Value.String()
		} else {
			skip = true
		}
		break
	}
	if skip {
		return defaultEdit{}, false
	}

	value := current
	reason := ""

	if strings.TrimSpace(value) == "" && n.cfg.SourceLocale != "" {
		for _, entry := range cls.Entries {
			if !n.matcher.Same(entry.Key, n.cfg.SourceLocale) {
				continue
			}
			if entry.Value.Type == gjson.String && strings.TrimSpace(entry.Value.String()) != "" {
				value = entry.Value.String()
				reason = "filled_default"
			}
			break
		}
	}

	if n.cfg.StripMarkup && markupPattern.MatchString(value) {
		value = strings.TrimSpace(markupPattern.ReplaceAllString(value, ""))
		reason = "stripped_markup"
	}

	if value == current && hasDefault {
		return defaultEdit{}, false
	}
	if value == "" && !hasDefault {
		return defaultEdit{}, false
	}

	return defaultEdit{
		value:  value,
		change: driving.Change{Key: domain.DefaultKey, Reason: reason},
	}, true
}

// escapeSegment escapes gjson/sjson path metacharacters in an object key.
func escapeSegment(key string) string {
	var b strings.Builder
	for _, r := range key {
		switch r {
		case '\\', '.', '*', '?', '|', '#', '@':
			b.WriteRune('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// joinWire appends a pre-escaped segment to an sjson path. The root is
// the empty string.
func joinWire(parent, segment string) string {
	if parent == "" {
		return segment
	}
	return parent + "." + segment
}
