package driven

import (
	"context"

	"github.com/levante-framework/levante-surveys-sub001/internal/core/domain"
)

// SurveyLoader reads and parses survey documents.
type SurveyLoader interface {
	// Load reads the file at path and parses it. A missing file returns
	// an error wrapping domain.ErrNotFound; malformed JSON returns a
	// *domain.ParseError. Both are fatal for the run on that file.
	Load(ctx context.Context, path string) (domain.SurveyDocument, error)
}

// ConfigLoader loads the pipeline configuration.
type ConfigLoader interface {
	// Load reads the configuration file at path. An empty path loads
	// defaults overlaid with the conventional config file when present.
	Load(path string) (*domain.Config, error)
}
