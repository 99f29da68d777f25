package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSurveyDocument_Success(t *testing.T) {
	doc, err := ParseSurveyDocument("survey.json", []byte(`{"title":{"default":"Hi"}}`))

	require.NoError(t, err)
	assert.Equal(t, "survey.json", doc.Path)
	assert.Equal(t, "Hi", doc.Root.Get("title.default").String())
}

func TestParseSurveyDocument_MalformedJSON(t *testing.T) {
	_, err := ParseSurveyDocument("broken.json", []byte(`{"title": `))

	require.Error(t, err)

	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, "broken.json", parseErr.Path)
	assert.Contains(t, parseErr.Error(), "broken.json")
}

func TestReport_Failed(t *testing.T) {
	r := &Report{}
	assert.False(t, r.Failed())

	r.Issues = append(r.Issues, Issue{Kind: IssueMissingLocale})
	assert.True(t, r.Failed())
}

func TestNodeKind_String(t *testing.T) {
	assert.Equal(t, "translation_map", NodeTranslationMap.String())
	assert.Equal(t, "scalar", NodeScalar.String())
	assert.Equal(t, "array", NodeArray.String())
	assert.Equal(t, "object", NodeStructuralObject.String())
}
