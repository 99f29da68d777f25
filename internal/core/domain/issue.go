package domain

// IssueKind identifies the check a finding came from.
type IssueKind string

const (
	// IssueMissingLocale means the target locale is absent from a map
	// that was translated for at least one trigger locale.
	IssueMissingLocale IssueKind = "missing_locale"

	// IssueHTMLInValue means a translated string contains markup.
	IssueHTMLInValue IssueKind = "html_in_value"

	// IssueEmptyFallback means every fallback locale present in the map
	// is blank, so there is nothing to fall back to.
	IssueEmptyFallback IssueKind = "empty_fallback"
)

// Issue is a single finding tied to a document path. Issues are data,
// not errors: the audit command prints them and exits zero, the validate
// command maps a non-empty report to a non-zero exit.
type Issue struct {
	// Path is the dot-joined chain of property names from the document
	// root to the offending translation map. Array elements contribute
	// their index as a numeric segment.
	Path string `json:"path"`

	// Kind is the check that produced the issue.
	Kind IssueKind `json:"kind"`

	// Keys are the locale keys involved: the missing target for
	// missing_locale, the offending key for html_in_value, the blank
	// fallback keys for empty_fallback.
	Keys []string `json:"keys"`

	// Detail carries enough context (truncated value, trigger locale)
	// to locate and fix the source.
	Detail string `json:"detail,omitempty"`
}

// Report is the ordered result of analysing one survey document.
// Two runs over the same unmodified document produce identical reports
// apart from RunID.
type Report struct {
	// RunID uniquely identifies the analysis run.
	RunID string `json:"run_id"`

	// File is the path of the analysed document.
	File string `json:"file"`

	// Issues are the findings in traversal order.
	Issues []Issue `json:"issues"`

	// MapsScanned counts the translation maps visited.
	MapsScanned int `json:"maps_scanned"`
}

// Failed reports whether the document produced any issues.
func (r *Report) Failed() bool {
	return len(r.Issues) > 0
}
