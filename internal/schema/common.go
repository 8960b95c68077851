package schema

import (
	"strings"

	"jobboard-backend/pkg/validation"
)

// Headers are matched lower-cased and every other header is allowed.
// The authorization header is left to the authentication stage so that a
// missing credential is reported as 401 rather than 400.
var (
	readHeaders = &validation.Object{
		AllowUnknown: true,
		Fields: []validation.Field{
			{Name: "accept", Kind: validation.KindString, Rules: "max=256"},
		},
	}

	writeHeaders = readHeaders.Extend(validation.Field{
		Name:     "content-type",
		Label:    "Content-Type header",
		Kind:     validation.KindString,
		Required: true,
		Rules:    "json_media",
	})
)

var idParams = &validation.Object{
	Fields: []validation.Field{
		{Name: "id", Kind: validation.KindString, Required: true, Rules: "objectid"},
	},
}

// listQuery validates pagination keys; any other key is a filter and is
// checked against the repository's whitelist.
var listQuery = &validation.Object{
	AllowUnknown: true,
	Fields: []validation.Field{
		{Name: "page", Kind: validation.KindInteger, Rules: "min=1,max=1000000"},
		{Name: "limit", Kind: validation.KindInteger, Rules: "min=1,max=100"},
		{Name: "sort", Kind: validation.KindString, Rules: "max=200"},
		{Name: "fields", Kind: validation.KindString, Rules: "max=200"},
	},
}

// oneOf renders a validator oneof rule from a list of string-like values.
func oneOf[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return "oneof=" + strings.Join(parts, " ")
}

func emailField(name string, required bool) validation.Field {
	return validation.Field{
		Name:     name,
		Kind:     validation.KindString,
		Required: required,
		Rules:    "max=254,email,email_tld",
	}
}
