package driven

import (
	"context"

	"github.com/levante-framework/levante-surveys-sub001/internal/core/domain"
)

// TranslationSource fetches one remote translation artifact.
// Implementations exist for plain HTTP endpoints and for files in a
// GitHub repository.
type TranslationSource interface {
	// Fetch downloads the artifact and returns its raw bytes.
	Fetch(ctx context.Context, artifact domain.Artifact) ([]byte, error)
}
