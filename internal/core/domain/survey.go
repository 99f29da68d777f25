package domain

import "github.com/tidwall/gjson"

// SurveyDocument is a parsed survey definition. The tree is arbitrary:
// no schema is assumed beyond "objects may nest objects and arrays at
// any depth". Documents are loaded fresh per invocation, analysed in
// memory, and never mutated by validation.
type SurveyDocument struct {
	// Path is where the document was loaded from, used in reports.
	Path string

	// Root is the parsed document root.
	Root gjson.Result
}

// ParseSurveyDocument parses raw JSON into a SurveyDocument.
// Malformed JSON returns a *ParseError, which is fatal for the run on
// that file.
func ParseSurveyDocument(path string, data []byte) (SurveyDocument, error) {
	if !gjson.ValidBytes(data) {
		return SurveyDocument{}, &ParseError{Path: path}
	}
	return SurveyDocument{Path: path, Root: gjson.ParseBytes(data)}, nil
}
