package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"

	"github.com/levante-framework/levante-surveys-sub001/internal/core/domain"
	"github.com/levante-framework/levante-surveys-sub001/internal/core/ports/driven"
	"github.com/levante-framework/levante-surveys-sub001/internal/core/ports/driving"
	"github.com/levante-framework/levante-surveys-sub001/internal/logger"
)

// Ensure Validator implements the interface.
var _ driving.SurveyValidator = (*Validator)(nil)

// rootPath names the document root in issue paths. Children drop it, so
// a map at the top of the document reports as "$" and a nested one as
// "pages.0.title".
const rootPath = "$"

// Validator walks survey documents and reports translation issues.
// Traversal is a pre-order depth-first walk in document order, so two
// runs over the same document produce issues in the same order.
type Validator struct {
	cfg     domain.CheckConfig
	matcher *domain.LocaleMatcher
	checks  *checker
	loader  driven.SurveyLoader
}

// NewValidator creates a validator for the given check configuration.
// The loader may be nil when only Validate on pre-loaded documents is used.
func NewValidator(cfg domain.CheckConfig, loader driven.SurveyLoader) *Validator {
	matcher := domain.NewLocaleMatcher(cfg)
	return &Validator{
		cfg:     cfg,
		matcher: matcher,
		checks:  newChecker(cfg, matcher),
		loader:  loader,
	}
}

// ValidateFile loads and analyses one survey file. Load failures
// (missing file, malformed JSON) are fatal for that file.
func (v *Validator) ValidateFile(ctx context.Context, path string) (*domain.Report, error) {
	if v.loader == nil {
		return nil, fmt.Errorf("validate %s: %w", path, domain.ErrInvalidInput)
	}
	doc, err := v.loader.Load(ctx, path)
	if err != nil {
		return nil, err
	}
	return v.Validate(doc), nil
}

// Validate analyses an already-loaded document. The document is never
// mutated.
func (v *Validator) Validate(doc domain.SurveyDocument) *domain.Report {
	report := &domain.Report{
		RunID: uuid.New().String(),
		File:  doc.Path,
	}
	v.walk(rootPath, doc.Root, report)
	logger.Debug("validated %s: %d maps, %d issues", doc.Path, report.MapsScanned, len(report.Issues))
	return report
}

func (v *Validator) walk(path string, node gjson.Result, report *domain.Report) {
	cls := Classify(node, v.matcher)

	switch cls.Kind {
	case domain.NodeScalar:
		return
	case domain.NodeTranslationMap:
		report.MapsScanned++
		v.runChecks(path, cls, report)
	case domain.NodeStructuralObject, domain.NodeArray:
	}

	// Translation maps are not leaves: nested structures inside them are
	// still walked.
	if cls.Kind == domain.NodeArray {
		index := 0
		node.ForEach(func(_, value gjson.Result) bool {
			if value.IsObject() || value.IsArray() {
				v.walk(childPath(path, strconv.Itoa(index)), value, report)
			}
			index++
			return true
		})
		return
	}

	node.ForEach(func(key, value gjson.Result) bool {
		if value.IsObject() || value.IsArray() {
			v.walk(childPath(path, key.String()), value, report)
		}
		return true
	})
}

func (v *Validator) runChecks(path string, cls domain.Classification, report *domain.Report) {
	for _, entry := range cls.Entries {
		if entry.Value.Type != gjson.String {
			// Schema warning, not an issue: string-specific checks skip
			// this key but traversal continues.
			logger.Warn("%s: locale key %q holds a %s, not a string", path, entry.Key, entry.Value.Type)
		}
	}

	if issue := v.checks.missingLocale(cls); issue != nil {
		report.Issues = append(report.Issues, tagged(*issue, path))
	}
	for _, issue := range v.checks.disallowedMarkup(cls) {
		report.Issues = append(report.Issues, tagged(issue, path))
	}
	if issue := v.checks.emptyFallback(cls); issue != nil {
		report.Issues = append(report.Issues, tagged(*issue, path))
	}
}

// tagged sets the document path on an issue.
func tagged(issue domain.Issue, path string) domain.Issue {
	issue.Path = path
	return issue
}

// childPath appends a segment to a dot-joined path. The root marker is
// dropped so top-level properties read naturally.
func childPath(parent, segment string) string {
	if parent == rootPath {
		return segment
	}
	return parent + "." + segment
}
