package driving

import (
	"context"

	"github.com/levante-framework/levante-surveys-sub001/internal/core/domain"
)

// SurveyValidator analyses survey documents for translation issues.
// The same analysis backs both the validate command (issues fail the
// run) and the audit command (issues are informational); the mode split
// lives in the caller, not here.
type SurveyValidator interface {
	// ValidateFile loads and analyses one survey file.
	ValidateFile(ctx context.Context, path string) (*domain.Report, error)

	// Validate analyses an already-loaded document.
	Validate(doc domain.SurveyDocument) *domain.Report
}
