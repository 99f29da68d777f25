// Package file loads survey documents from the local filesystem.
package file

import (
	"context"
	"fmt"
	"os"

	"github.com/levante-framework/levante-surveys-sub001/internal/core/domain"
	"github.com/levante-framework/levante-surveys-sub001/internal/core/ports/driven"
	"github.com/levante-framework/levante-surveys-sub001/internal/logger"
)

// Ensure Loader implements the interface.
var _ driven.SurveyLoader = (*Loader)(nil)

// Loader reads survey JSON files from disk.
type Loader struct{}

// NewLoader creates a survey file loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads and parses the survey file at path. The whole document is
// read into memory before analysis begins; nothing is streamed.
func (l *Loader) Load(_ context.Context, path string) (domain.SurveyDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.SurveyDocument{}, fmt.Errorf("%s: %w", path, domain.ErrNotFound)
		}
		return domain.SurveyDocument{}, fmt.Errorf("read %s: %w", path, err)
	}
	logger.Debug("loaded %s (%d bytes)", path, len(data))
	return domain.ParseSurveyDocument(path, data)
}
