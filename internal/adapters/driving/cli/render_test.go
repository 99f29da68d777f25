package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/levante-framework/levante-surveys-sub001/internal/core/domain"
)

func TestRenderReport_OneLinePerIssue(t *testing.T) {
	buf := new(bytes.Buffer)
	report := &domain.Report{
		File: "survey.json",
		Issues: []domain.Issue{
			{Path: "title", Kind: domain.IssueMissingLocale, Keys: []string{"es-CO"}, Detail: `"default" present but "es-CO" missing`},
			{Path: "pages.0.text", Kind: domain.IssueHTMLInValue, Keys: []string{"default"}},
		},
	}

	renderReport(buf, report)

	out := buf.String()
	assert.Contains(t, out, "survey.json: missing_locale title [es-CO]")
	assert.Contains(t, out, "pages.0.text [default]")
}

func TestRenderSummary_Pass(t *testing.T) {
	buf := new(bytes.Buffer)

	renderSummary(buf, 2, 10, 0)

	assert.Contains(t, buf.String(), "OK: 2 file(s), 10 translation map(s), no issues")
}

func TestRenderSummary_Fail(t *testing.T) {
	buf := new(bytes.Buffer)

	renderSummary(buf, 1, 4, 3)

	assert.Contains(t, buf.String(), "FAIL: 3 issue(s)")
}
