package domain

import "github.com/tidwall/gjson"

// NodeKind is the shape a JSON node resolves to after classification.
// Computing the kind once keeps the "does this look like a translation
// map" heuristic in a single place instead of re-sniffing raw values in
// every check.
type NodeKind int

const (
	// NodeScalar is a string, number, boolean, or null.
	NodeScalar NodeKind = iota

	// NodeStructuralObject is an object with no locale keys of its own.
	// It is only recursed into, never checked.
	NodeStructuralObject

	// NodeTranslationMap is an object with at least one locale key.
	NodeTranslationMap

	// NodeArray is a JSON array.
	NodeArray
)

// String returns the kind name for logs and test failures.
func (k NodeKind) String() string {
	switch k {
	case NodeScalar:
		return "scalar"
	case NodeStructuralObject:
		return "object"
	case NodeTranslationMap:
		return "translation_map"
	case NodeArray:
		return "array"
	default:
		return "unknown"
	}
}

// LocaleEntry is one locale key of a translation map together with its
// raw value, in document order.
type LocaleEntry struct {
	// Key is the locale key exactly as spelled in the document.
	Key string

	// Value is the raw JSON value under the key. Usually a string but
	// the document is not trusted to guarantee that.
	Value gjson.Result
}

// Classification is the result of classifying a single JSON node.
// It depends only on the node's own keys, never on ancestors or
// descendants.
type Classification struct {
	// Kind is the resolved node kind.
	Kind NodeKind

	// Entries holds the locale-key entries of a translation map in
	// document order. Empty for every other kind.
	Entries []LocaleEntry
}

// IsTranslationMap reports whether the node classified as a translation map.
func (c Classification) IsTranslationMap() bool {
	return c.Kind == NodeTranslationMap
}

// LocaleKeys returns the matched keys in document order.
func (c Classification) LocaleKeys() []string {
	if len(c.Entries) == 0 {
		return nil
	}
	keys := make([]string, len(c.Entries))
	for i, e := range c.Entries {
		keys[i] = e.Key
	}
	return keys
}
