package validation

import (
	"strings"
	"unicode"
)

// defaultMessages holds the fallback template for each rule.
// Length rules are resolved per kind in defaultMessage.
var defaultMessages = map[string]string{
	"required":        "{label} is a required field.",
	"empty":           "{label} cannot be empty.",
	"notblank":        "{label} cannot be empty.",
	"unknown":         `"{field}" is not allowed.`,
	"oneof":           "{label} must be one of: {valids}.",
	"email":           "{label} must be a valid email.",
	"email_tld":       "{label} must use one of the allowed domains: .com, .net, .org.",
	"objectid":        "Invalid identifier",
	"integer":         "{label} must be an integer.",
	"datetime":        "{label} must be a date in YYYY-MM-DD format.",
	"past_date":       "{label} must be a date in the past.",
	"person_name":     "{label} can only contain letters, numbers, spaces, and the following characters: . ' -",
	"company_name":    "{label} can only contain letters, numbers, spaces, and the following characters: , . ' -",
	"address":         "{label} can only contain letters, numbers, spaces, and the following characters: , . ' -",
	"mobile_number":   "{label} must be between 10 to 15 digits and contain only numbers.",
	"strong_password": "{label} should have a minimum length of 8 characters with at least one lowercase letter, one uppercase letter, one number and one special character ($!%*?&@).",
	"no_emoji":        "{label} must not contain emoji or special symbols.",
	"json_media":      "{label} must be application/json.",
	"alphanum":        "{label} must only contain alpha-numeric characters.",
	"object.base":     "Request {field} must be a JSON object.",
	"object.min":      "At least {limit} field(s) must be provided.",
}

var typeMessages = map[Kind]string{
	KindString:     "{label} should be a type of text.",
	KindInteger:    "{label} must be a number.",
	KindNumber:     "{label} must be a number.",
	KindBoolean:    "{label} must be a boolean.",
	KindStringList: "{label} must be a list of text values.",
}

// message picks the field's override for rule, falling back to the default
// template, and expands placeholders.
func (f Field) message(rule, param string) string {
	tmpl, ok := f.Messages[rule]
	if !ok {
		tmpl = defaultMessage(f.Kind, rule)
	}
	return render(tmpl, f.label(), f.Name, param)
}

// elementMessage describes a failure on one item of a list field, so length
// rules speak about characters rather than items.
func (f Field) elementMessage(suffix, rule, param string) string {
	return render(defaultMessage(KindString, rule), f.label()+suffix, f.Name+suffix, param)
}

func defaultMessage(kind Kind, rule string) string {
	switch rule {
	case "type":
		return typeMessages[kind]
	case "min", "max", "len":
		return lengthMessage(kind, rule)
	}
	if tmpl, ok := defaultMessages[rule]; ok {
		return tmpl
	}
	return "{label} failed the " + rule + " rule."
}

func lengthMessage(kind Kind, rule string) string {
	switch kind {
	case KindString:
		switch rule {
		case "min":
			return "{label} should have a minimum length of {limit} characters."
		case "max":
			return "{label} should have a maximum length of {limit} characters."
		}
		return "{label} must be exactly {limit} characters long."
	case KindStringList:
		switch rule {
		case "min":
			return "{label} must contain at least {limit} item(s)."
		case "max":
			return "{label} must contain at most {limit} item(s)."
		}
		return "{label} must contain exactly {limit} item(s)."
	}
	switch rule {
	case "min":
		return "{label} must be at least {limit}."
	case "max":
		return "{label} must be less than or equal to {limit}."
	}
	return "{label} must be equal to {limit}."
}

func render(tmpl, label, field, param string) string {
	return strings.NewReplacer(
		"{label}", label,
		"{field}", field,
		"{limit}", param,
		"{valids}", formatOneOfOptions(param),
	).Replace(tmpl)
}

func (f Field) label() string {
	if f.Label != "" {
		return f.Label
	}
	return formatCamelCase(f.Name)
}

// formatCamelCase turns "numberOfEmployees" into "Number of employees".
func formatCamelCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		switch {
		case i == 0:
			result.WriteRune(unicode.ToUpper(r))
		case unicode.IsUpper(r):
			result.WriteRune(' ')
			result.WriteRune(unicode.ToLower(r))
		case r == '-' || r == '_':
			result.WriteRune(' ')
		default:
			result.WriteRune(r)
		}
	}
	return result.String()
}

// formatOneOfOptions formats oneof options for display
func formatOneOfOptions(param string) string {
	return strings.Join(strings.Fields(param), ", ")
}
