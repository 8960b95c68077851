package validation

import (
	"errors"
	"testing"

	"jobboard-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var companyBody = &Object{Fields: []Field{
	{Name: "companyName", Kind: KindString, Required: true, Rules: "min=2,max=100,company_name"},
	{Name: "industry", Kind: KindString, Required: true, Rules: "oneof=Technology Healthcare Finance"},
	{Name: "numberOfEmployees", Kind: KindInteger, Required: true, Rules: "min=1,max=10000",
		Messages: map[string]string{"min": "Number of employees must be at least {limit}."}},
	{Name: "tags", Kind: KindStringList, Rules: "min=1,dive,min=2"},
}}

func rules(vs []apperror.Violation) map[string]string {
	out := make(map[string]string, len(vs))
	for _, v := range vs {
		out[v.Field] = v.Rule
	}
	return out
}

func TestValidateObject_ReportsEveryViolation(t *testing.T) {
	val := New()

	vs := val.ValidateObject(FacetBody, companyBody, map[string]any{
		"companyName":       "A",
		"industry":          "Farming",
		"numberOfEmployees": float64(0),
	})

	require.Len(t, vs, 3)
	assert.Equal(t, map[string]string{
		"companyName":       "min",
		"industry":          "oneof",
		"numberOfEmployees": "min",
	}, rules(vs))
	assert.Equal(t, "Number of employees must be at least 1.", vs[2].Message)
	assert.Equal(t, "Industry must be one of: Technology, Healthcare, Finance.", vs[1].Message)
	for _, v := range vs {
		assert.Equal(t, "body", v.Facet)
	}
}

func TestValidateObject_MissingRequiredField(t *testing.T) {
	val := New()

	vs := val.ValidateObject(FacetBody, companyBody, map[string]any{
		"companyName": "Acme",
		"industry":    "Finance",
	})

	require.Len(t, vs, 1)
	assert.Equal(t, "numberOfEmployees", vs[0].Field)
	assert.Equal(t, "required", vs[0].Rule)
	assert.Equal(t, "Number of employees is a required field.", vs[0].Message)
}

func TestValidateObject_OptionalFieldAbsentIsNotChecked(t *testing.T) {
	val := New()

	vs := val.ValidateObject(FacetBody, companyBody, map[string]any{
		"companyName":       "Acme",
		"industry":          "Finance",
		"numberOfEmployees": float64(12),
	})

	assert.Empty(t, vs)
}

func TestValidateObject_TypeAndIntegerChecks(t *testing.T) {
	val := New()

	vs := val.ValidateObject(FacetBody, companyBody, map[string]any{
		"companyName":       42.0,
		"industry":          "Finance",
		"numberOfEmployees": 12.5,
		"tags":              []any{"go", 3.0},
	})

	assert.Equal(t, map[string]string{
		"companyName":       "type",
		"numberOfEmployees": "integer",
		"tags":              "type",
	}, rules(vs))
}

func TestValidateObject_EmptyStringAndUnknownKeys(t *testing.T) {
	val := New()

	vs := val.ValidateObject(FacetBody, companyBody, map[string]any{
		"companyName":       "  ",
		"industry":          "Finance",
		"numberOfEmployees": "15",
		"zeta":              true,
		"alpha":             1.0,
	})

	require.Len(t, vs, 3)
	assert.Equal(t, "empty", vs[0].Rule)
	assert.Equal(t, "alpha", vs[1].Field)
	assert.Equal(t, "unknown", vs[1].Rule)
	assert.Equal(t, `"alpha" is not allowed.`, vs[1].Message)
	assert.Equal(t, "zeta", vs[2].Field)
}

func TestValidateObject_AllowUnknownAndMinFields(t *testing.T) {
	val := New()
	patch := companyBody.Optional(1)
	patch.AllowUnknown = true

	vs := val.ValidateObject(FacetBody, patch, map[string]any{"other": "x"})

	require.Len(t, vs, 1)
	assert.Equal(t, "object.min", vs[0].Rule)
}

func TestValidate_SkipsUnconstrainedFacets(t *testing.T) {
	val := New()
	set := Set{
		Params: &Object{Fields: []Field{{Name: "id", Kind: KindString, Required: true, Rules: "objectid"}}},
	}

	vs := val.Validate(set, Input{
		Params:  map[string]any{"id": "not-an-id"},
		Headers: map[string]any{"anything": "goes"},
		BodyErr: errors.New("ignored because body is unconstrained"),
	})

	require.Len(t, vs, 1)
	assert.Equal(t, "params", vs[0].Facet)
	assert.Equal(t, "objectid", vs[0].Rule)
	assert.Equal(t, "Invalid identifier", vs[0].Message)
}

func TestValidate_MalformedBody(t *testing.T) {
	val := New()

	vs := val.Validate(Set{Body: companyBody}, Input{BodyErr: errors.New("bad json")})

	require.Len(t, vs, 1)
	assert.Equal(t, "object.base", vs[0].Rule)
	assert.Equal(t, "body", vs[0].Field)
}

func TestValidate_CollectsAcrossFacets(t *testing.T) {
	val := New()
	set := Set{
		Body:    companyBody,
		Params:  &Object{Fields: []Field{{Name: "id", Kind: KindString, Required: true, Rules: "objectid"}}},
		Headers: &Object{AllowUnknown: true, Fields: []Field{{Name: "content-type", Kind: KindString, Required: true, Rules: "json_media"}}},
	}

	vs := val.Validate(set, Input{
		Body:    map[string]any{},
		Params:  map[string]any{"id": "123"},
		Headers: map[string]any{"content-type": "text/plain"},
	})

	facets := map[string]int{}
	for _, v := range vs {
		facets[v.Facet]++
	}
	assert.Equal(t, 3, facets["body"])
	assert.Equal(t, 1, facets["params"])
	assert.Equal(t, 1, facets["headers"])
}

func TestValidateObject_ListElementMessagesSpeakOfCharacters(t *testing.T) {
	val := New()

	vs := val.ValidateObject(FacetBody, companyBody, map[string]any{
		"companyName":       "Acme",
		"industry":          "Finance",
		"numberOfEmployees": 10.0,
		"tags":              []any{"go", "x"},
	})

	require.Len(t, vs, 1)
	assert.Equal(t, "tags[1]", vs[0].Field)
	assert.Equal(t, "min", vs[0].Rule)
	assert.Equal(t, "Tags[1] should have a minimum length of 2 characters.", vs[0].Message)
}
