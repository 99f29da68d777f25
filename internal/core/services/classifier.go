package services

import (
	"github.com/tidwall/gjson"

	"github.com/levante-framework/levante-surveys-sub001/internal/core/domain"
)

// Classify resolves the kind of a JSON node. An object is a translation
// map iff at least one of its own keys is a locale key; matched entries
// are returned in document order. Classification looks at the node's own
// keys only, never at ancestors or descendants, and has no side effects.
func Classify(node gjson.Result, matcher *domain.LocaleMatcher) domain.Classification {
	switch {
	case node.IsArray():
		return domain.Classification{Kind: domain.NodeArray}
	case node.IsObject():
		var entries []domain.LocaleEntry
		node.ForEach(func(key, value gjson.Result) bool {
			if matcher.IsLocaleKey(key.String()) {
				entries = append(entries, domain.LocaleEntry{Key: key.String(), Value: value})
			}
			return true
		})
		if len(entries) > 0 {
			return domain.Classification{Kind: domain.NodeTranslationMap, Entries: entries}
		}
		return domain.Classification{Kind: domain.NodeStructuralObject}
	default:
		return domain.Classification{Kind: domain.NodeScalar}
	}
}
