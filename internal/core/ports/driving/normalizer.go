package driving

import "context"

// Change records one value rewritten by the normalisation pass.
type Change struct {
	// Path locates the translation map that was changed.
	Path string `json:"path"`

	// Key is the locale key that was written.
	Key string `json:"key"`

	// Reason is "filled_default" or "stripped_markup".
	Reason string `json:"reason"`
}

// SurveyNormalizer rewrites survey files in place: filling blank default
// values from the source locale and stripping markup. Normalisation is a
// separate pass from validation, which never mutates.
type SurveyNormalizer interface {
	// NormalizeFile rewrites the file at path and returns the changes
	// made. The file is left untouched when there is nothing to change.
	NormalizeFile(ctx context.Context, path string) ([]Change, error)
}
