package services

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/levante-framework/levante-surveys-sub001/internal/core/domain"
)

// markupPattern matches an HTML-like tag: "<" followed by at least one
// non-">" character and a closing ">".
var markupPattern = regexp.MustCompile(`<[^>]+>`)

// detailLimit caps the value excerpt carried in issue details.
const detailLimit = 60

// checker runs the configured checks against a classified translation
// map. Checks never mutate the document and only ever look at the map's
// own entries.
type checker struct {
	cfg     domain.CheckConfig
	matcher *domain.LocaleMatcher
}

func newChecker(cfg domain.CheckConfig, matcher *domain.LocaleMatcher) *checker {
	return &checker{cfg: cfg, matcher: matcher}
}

// missingLocale flags a map that was translated for at least one trigger
// locale but lacks the target locale in either spelling. A map carrying
// no trigger locale is legitimately locale-agnostic and is not flagged.
func (c *checker) missingLocale(cls domain.Classification) *domain.Issue {
	if c.cfg.TargetLocale == "" {
		return nil
	}

	trigger := ""
	for _, entry := range cls.Entries {
		if c.matcher.Same(entry.Key, c.cfg.TargetLocale) {
			return nil
		}
		if trigger == "" {
			for _, t := range c.cfg.TriggerLocales {
				if c.matcher.Same(entry.Key, t) {
					trigger = entry.Key
					break
				}
			}
		}
	}
	if trigger == "" {
		return nil
	}

	return &domain.Issue{
		Kind:   domain.IssueMissingLocale,
		Keys:   []string{c.cfg.TargetLocale},
		Detail: fmt.Sprintf("%q present but %q missing", trigger, c.cfg.TargetLocale),
	}
}

// disallowedMarkup flags every string value containing an HTML-like tag,
// one issue per offending key, in document order. Non-string values are
// skipped.
func (c *checker) disallowedMarkup(cls domain.Classification) []domain.Issue {
	var issues []domain.Issue
	for _, entry := range cls.Entries {
		if entry.Value.Type != gjson.String {
			continue
		}
		value := entry.Value.String()
		if tag := markupPattern.FindString(value); tag != "" {
			issues = append(issues, domain.Issue{
				Kind:   domain.IssueHTMLInValue,
				Keys:   []string{entry.Key},
				Detail: fmt.Sprintf("%s in %q", tag, truncate(value, detailLimit)),
			})
		}
	}
	return issues
}

// emptyFallback flags a map whose present fallback locales are all blank
// after trimming. A map with no string-valued fallback key at all is
// assumed intentional and not reported.
func (c *checker) emptyFallback(cls domain.Classification) *domain.Issue {
	var present []string
	for _, entry := range cls.Entries {
		if entry.Value.Type != gjson.String {
			// Non-string values are outside string-specific checks.
			continue
		}
		for _, f := range c.cfg.FallbackLocales {
			if c.matcher.Same(entry.Key, f) {
				if strings.TrimSpace(entry.Value.String()) != "" {
					return nil
				}
				present = append(present, entry.Key)
				break
			}
		}
	}
	if len(present) == 0 {
		return nil
	}

	return &domain.Issue{
		Kind:   domain.IssueEmptyFallback,
		Keys:   present,
		Detail: "all fallback values are empty after trimming",
	}
}

// truncate shortens s to at most limit runes, marking the cut.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
