package schema

import (
	"testing"

	"jobboard-backend/pkg/apperror"
	"jobboard-backend/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allEndpoints = []Endpoint{
	UsersSignUp, UsersSignIn, UsersSignOut, UsersList, UsersGet, UsersUpdateSelf, UsersUpdate,
	UsersChangePassword, UsersDeleteSelf, UsersDelete,
	CompaniesCreate, CompaniesList, CompaniesSearch, CompaniesGet, CompaniesUpdate, CompaniesDelete,
	JobsCreate, JobsList, JobsForCompany, JobsGet, JobsUpdate, JobsDelete,
}

func fieldsOf(vs []apperror.Violation) []string {
	out := make([]string, 0, len(vs))
	for _, v := range vs {
		out = append(out, v.Facet+"."+v.Field)
	}
	return out
}

func TestRegistry_EveryEndpointRegistered(t *testing.T) {
	reg := NewRegistry()

	assert.Equal(t, len(allEndpoints), reg.Len())
	for _, ep := range allEndpoints {
		assert.NotPanics(t, func() { reg.MustLookup(ep) }, string(ep))
	}
	assert.Panics(t, func() { reg.MustLookup("nope") })
}

func TestSignUp_ValidPayload(t *testing.T) {
	set := NewRegistry().MustLookup(UsersSignUp)

	vs := validation.New().Validate(set, validation.Input{
		Headers: map[string]any{"content-type": "application/json"},
		Body: map[string]any{
			"firstName":     "Jo",
			"lastName":      "Do",
			"userName":      "jodo",
			"email":         "a@b.com",
			"password":      "Abcdef1!",
			"recoveryEmail": "c@d.com",
			"DOB":           "1990-01-01",
			"mobileNumber":  "1234567890",
			"role":          "user",
		},
	})

	assert.Empty(t, vs)
}

func TestSignUp_RejectsUnknownRoleAndWeakPassword(t *testing.T) {
	set := NewRegistry().MustLookup(UsersSignUp)

	vs := validation.New().Validate(set, validation.Input{
		Headers: map[string]any{"content-type": "application/json"},
		Body: map[string]any{
			"firstName":     "Jo",
			"lastName":      "Do",
			"userName":      "jodo",
			"email":         "a@b.com",
			"password":      "abcdefgh",
			"recoveryEmail": "c@d.com",
			"DOB":           "1990-01-01",
			"mobileNumber":  "1234567890",
			"role":          "admin",
		},
	})

	require.Len(t, vs, 2)
	assert.Equal(t, "body.password", vs[0].Facet+"."+vs[0].Field)
	assert.Equal(t, "body.role", vs[1].Facet+"."+vs[1].Field)
	assert.Equal(t, "role must be one of user, humanResources.", vs[1].Message)
}

func TestCompanyCreate_MissingEmployeeCount(t *testing.T) {
	set := NewRegistry().MustLookup(CompaniesCreate)

	vs := validation.New().Validate(set, validation.Input{
		Headers: map[string]any{"content-type": "application/json"},
		Body: map[string]any{
			"companyName":  "Acme",
			"description":  "We build things that last.",
			"industry":     "Technology",
			"companyEmail": "hr@acme.com",
			"address":      "1 Infinite Loop, Cupertino",
		},
	})

	require.Len(t, vs, 1)
	assert.Equal(t, "numberOfEmployees", vs[0].Field)
	assert.Equal(t, "Number of employees is a required field.", vs[0].Message)
}

func TestCompanyUpdate_RequiresAtLeastOneField(t *testing.T) {
	set := NewRegistry().MustLookup(CompaniesUpdate)

	vs := validation.New().Validate(set, validation.Input{
		Headers: map[string]any{"content-type": "application/json"},
		Params:  map[string]any{"id": "not-a-uuid"},
		Body:    map[string]any{},
	})

	assert.ElementsMatch(t, []string{"body.body", "params.id"}, fieldsOf(vs))
}

func TestJobCreate_CollectsEveryViolation(t *testing.T) {
	set := NewRegistry().MustLookup(JobsCreate)

	vs := validation.New().Validate(set, validation.Input{
		Headers: map[string]any{"content-type": "text/plain"},
		Body: map[string]any{
			"jobTitle":        "Go developer",
			"jobLocation":     "moon",
			"workingTime":     "full-time",
			"seniorityLevel":  "Team-Lead",
			"jobDescription":  "Build and run services.",
			"technicalSkills": []any{},
			"softSkills":      []any{"communication"},
		},
	})

	assert.ElementsMatch(t, []string{"body.jobLocation", "body.technicalSkills", "headers.content-type"}, fieldsOf(vs))
}

func TestReadRoutes_IgnoreAuthorizationHeader(t *testing.T) {
	set := NewRegistry().MustLookup(JobsList)

	vs := validation.New().Validate(set, validation.Input{
		Headers: map[string]any{},
		Query:   map[string]any{"jobLocation": "remote", "page": "2"},
	})

	assert.Empty(t, vs)
}

func TestListQuery_BoundsPage(t *testing.T) {
	set := NewRegistry().MustLookup(CompaniesList)

	vs := validation.New().Validate(set, validation.Input{
		Query: map[string]any{"page": "100000000000000000"},
	})

	require.Len(t, vs, 1)
	assert.Equal(t, "query.page", vs[0].Facet+"."+vs[0].Field)
	assert.Equal(t, "max", vs[0].Rule)
}

func TestSkills_RejectBlankAndOverlongItems(t *testing.T) {
	vs := validation.New().ValidateObject(validation.FacetBody, jobBody.Optional(1), map[string]any{
		"technicalSkills": []any{"Go", "   "},
		"softSkills":      []any{"aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"},
	})

	require.Len(t, vs, 2)
	assert.Equal(t, "technicalSkills[1]", vs[0].Field)
	assert.Equal(t, "notblank", vs[0].Rule)
	assert.Equal(t, "Technical skills[1] cannot be empty.", vs[0].Message)
	assert.Equal(t, "softSkills[0]", vs[1].Field)
	assert.Equal(t, "Soft skills[0] should have a maximum length of 50 characters.", vs[1].Message)
}

func TestSignUp_RejectsClientChosenStatus(t *testing.T) {
	set := NewRegistry().MustLookup(UsersSignUp)

	vs := validation.New().Validate(set, validation.Input{
		Headers: map[string]any{"content-type": "application/json"},
		Body: map[string]any{
			"firstName":     "Jo",
			"lastName":      "Do",
			"userName":      "jodo",
			"email":         "a@b.com",
			"password":      "Abcdef1!",
			"recoveryEmail": "c@d.com",
			"DOB":           "1990-01-01",
			"mobileNumber":  "1234567890",
			"role":          "user",
			"status":        "online",
		},
	})

	require.Len(t, vs, 1)
	assert.Equal(t, "body.status", vs[0].Facet+"."+vs[0].Field)
	assert.Equal(t, "unknown", vs[0].Rule)
}
