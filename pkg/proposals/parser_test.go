package proposals_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/guidemap/guidemap/pkg/proposals"
)

const sampleBody = `### Place Name

Trattoria da Mario

### City

roma

### Category

Eat

### Description

Family-run trattoria near the river.
Cash only.

### Address (optional)

Via del Corso 12

### Website (optional)

_No response_
`

func TestParseBody(t *testing.T) {
	fields := proposals.ParseBody(sampleBody)

	assert.Equal(t, "Trattoria da Mario", fields.Title)
	assert.Equal(t, "roma", fields.City)
	assert.Equal(t, "Eat", fields.Category)
	assert.Equal(t, "Family-run trattoria near the river.\nCash only.", fields.Description)
	assert.Equal(t, "Via del Corso 12", fields.Address)
	assert.Equal(t, "", fields.Website, "_No response_ means no value")
}

func TestParseBodyUnknownHeaders(t *testing.T) {
	fields := proposals.ParseBody("### Favorite Color\n\nblue\n\n### City\n\nParis\n")

	assert.Equal(t, "Paris", fields.City)
	assert.Empty(t, fields.Title)
}

func TestFieldsMissing(t *testing.T) {
	fields := proposals.ParseBody("### City\n\nParis\n")
	assert.Equal(t, []string{"place name", "category", "description"}, fields.Missing())

	complete := proposals.ParseBody(sampleBody)
	assert.Empty(t, complete.Missing())
}

func TestFieldsApply(t *testing.T) {
	p := proposals.Proposal{ID: "42", Country: "Italy"}
	proposals.ParseBody(sampleBody).Apply(&p)

	assert.Equal(t, "Trattoria da Mario", p.Title)
	assert.Equal(t, "roma", p.City)
	assert.Equal(t, proposals.CategoryEat, p.Category)
	assert.Equal(t, "Italy", p.Country, "fields absent from the body stay put")
}

func TestParseCategory(t *testing.T) {
	for _, raw := range []string{"Eat", "eat", "EAT", " eat "} {
		c, err := proposals.ParseCategory(raw)
		assert.NoError(t, err, "input %q", raw)
		assert.Equal(t, proposals.CategoryEat, c)
	}

	_, err := proposals.ParseCategory("Sleep")
	assert.Error(t, err)
}
