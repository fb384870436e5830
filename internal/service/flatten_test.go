package service

import (
	"testing"

	"scheme-navigator/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlattenDocuments(t *testing.T) {
	education, ok := models.CategoryBySlug("education")
	require.True(t, ok)

	docs := []models.RawDocument{
		{ID: 1, Data: []byte(`{"education_schemes":[{"scheme_name":"A"},{"scheme_name":"B"}]}`)},
		{ID: 2, Data: []byte(`{"women_schemes":[{"scheme_name":"W"}]}`)},
		{ID: 3, Data: []byte(`{"education_schemes":"not a list"}`)},
		{ID: 4, Data: []byte(`{broken`)},
		{ID: 5, Data: []byte(`{"education_schemes":[{"scheme_name":"C"},"stray",null,{"objectives":["no name"]}]}`)},
	}

	schemes, problems := FlattenDocuments(education, docs)

	names := make([]string, 0, len(schemes))
	for _, s := range schemes {
		names = append(names, s.SchemeName)
		assert.Equal(t, "education", s.Category)
	}
	assert.Equal(t, []string{"A", "B", "C", ""}, names)

	require.Len(t, problems, 3)
	for _, p := range problems {
		assert.ErrorIs(t, p, ErrMalformedDocument)
	}
}

func TestFlattenDocuments_LengthIsSumOfLists(t *testing.T) {
	agriculture, ok := models.CategoryBySlug("agriculture")
	require.True(t, ok)

	docs := []models.RawDocument{
		{ID: 1, Data: []byte(`{"agriculture_schemes":[{},{},{}]}`)},
		{ID: 2, Data: []byte(`{"agriculture_schemes":[]}`)},
		{ID: 3, Data: []byte(`{"agriculture_schemes":[{}]}`)},
	}

	schemes, problems := FlattenDocuments(agriculture, docs)
	assert.Len(t, schemes, 4)
	assert.Empty(t, problems)
}

func TestFlattenDocuments_Empty(t *testing.T) {
	schemes, problems := FlattenDocuments(models.Categories[0], nil)
	assert.NotNil(t, schemes)
	assert.Empty(t, schemes)
	assert.Empty(t, problems)
}
