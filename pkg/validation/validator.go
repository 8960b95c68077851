package validation

import (
	"errors"
	"math"
	"sort"
	"strconv"
	"strings"

	"jobboard-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

// Input is a request split into its facets. Header names are lower-cased.
type Input struct {
	Headers map[string]any
	Params  map[string]any
	Query   map[string]any
	Body    map[string]any
	// BodyErr is set when a body was sent but is not a JSON object.
	BodyErr error
}

func (in Input) facet(f Facet) map[string]any {
	switch f {
	case FacetBody:
		return in.Body
	case FacetParams:
		return in.Params
	case FacetQuery:
		return in.Query
	case FacetHeaders:
		return in.Headers
	}
	return nil
}

// Validator runs schema sets against request input. It is safe for
// concurrent use once constructed.
type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	v := validator.New()
	RegisterValidators(v)
	return &Validator{v: v}
}

// Validate checks every facet constrained by set and returns all violations.
// Facets without a schema are skipped. An empty result means the input passed.
func (val *Validator) Validate(set Set, in Input) []apperror.Violation {
	var out []apperror.Violation
	for _, facet := range Facets {
		obj := set.Object(facet)
		if obj == nil {
			continue
		}
		if facet == FacetBody && in.BodyErr != nil {
			out = append(out, apperror.Violation{
				Facet:   string(facet),
				Field:   string(facet),
				Rule:    "object.base",
				Message: render(defaultMessages["object.base"], "", string(facet), ""),
			})
			continue
		}
		out = append(out, val.ValidateObject(facet, obj, in.facet(facet))...)
	}
	return out
}

// ValidateObject checks one facet. Violations are reported in field
// declaration order, followed by unknown keys in lexical order.
func (val *Validator) ValidateObject(facet Facet, obj *Object, data map[string]any) []apperror.Violation {
	var out []apperror.Violation
	add := func(f Field, suffix, rule, param string) {
		msg := f.message(rule, param)
		if suffix != "" {
			msg = f.elementMessage(suffix, rule, param)
		}
		out = append(out, apperror.Violation{
			Facet:   string(facet),
			Field:   f.Name + suffix,
			Rule:    rule,
			Message: msg,
		})
	}

	present := 0
	for _, f := range obj.Fields {
		raw, ok := data[f.Name]
		if !ok || raw == nil {
			if f.Required {
				add(f, "", "required", "")
			}
			continue
		}
		present++

		value, rule := coerce(f.Kind, raw)
		if rule != "" {
			add(f, "", rule, "")
			continue
		}
		if s, isString := value.(string); isString && strings.TrimSpace(s) == "" {
			add(f, "", "empty", "")
			continue
		}
		if f.Rules == "" {
			continue
		}

		err := val.v.Var(value, f.Rules)
		if err == nil {
			continue
		}
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			add(f, "", "type", "")
			continue
		}
		for _, fe := range fieldErrs {
			add(f, elementSuffix(fe), fe.Tag(), fe.Param())
		}
	}

	if obj.MinFields > 0 && present < obj.MinFields {
		out = append(out, apperror.Violation{
			Facet:   string(facet),
			Field:   string(facet),
			Rule:    "object.min",
			Message: render(defaultMessages["object.min"], "", string(facet), strconv.Itoa(obj.MinFields)),
		})
	}

	if !obj.AllowUnknown {
		out = append(out, unknownKeys(facet, obj, data)...)
	}
	return out
}

func unknownKeys(facet Facet, obj *Object, data map[string]any) []apperror.Violation {
	declared := make(map[string]bool, len(obj.Fields))
	for _, f := range obj.Fields {
		declared[f.Name] = true
	}
	var extra []string
	for k := range data {
		if !declared[k] {
			extra = append(extra, k)
		}
	}
	sort.Strings(extra)

	out := make([]apperror.Violation, 0, len(extra))
	for _, k := range extra {
		f := Field{Name: k}
		out = append(out, apperror.Violation{
			Facet:   string(facet),
			Field:   k,
			Rule:    "unknown",
			Message: f.message("unknown", ""),
		})
	}
	return out
}

// elementSuffix returns "[i]" for errors raised inside a dive.
func elementSuffix(fe validator.FieldError) string {
	for _, s := range []string{fe.Field(), fe.Namespace()} {
		if strings.HasPrefix(s, "[") {
			return s
		}
	}
	return ""
}

// coerce converts a decoded JSON value (or a raw string from the query,
// params or headers) into the Go type matching kind. A non-empty rule is
// returned when the value does not fit.
func coerce(kind Kind, raw any) (any, string) {
	switch kind {
	case KindString:
		s, ok := raw.(string)
		if !ok {
			return nil, "type"
		}
		return s, ""

	case KindInteger, KindNumber:
		f, ok := toFloat(raw)
		if !ok {
			return nil, "type"
		}
		if kind == KindNumber {
			return f, ""
		}
		if f != math.Trunc(f) || math.IsInf(f, 0) || f >= math.MaxInt64 || f <= math.MinInt64 {
			return nil, "integer"
		}
		return int64(f), ""

	case KindBoolean:
		switch b := raw.(type) {
		case bool:
			return b, ""
		case string:
			parsed, err := strconv.ParseBool(b)
			if err != nil {
				return nil, "type"
			}
			return parsed, ""
		}
		return nil, "type"

	case KindStringList:
		items, ok := raw.([]any)
		if !ok {
			if ss, isStrings := raw.([]string); isStrings {
				return ss, ""
			}
			return nil, "type"
		}
		out := make([]string, 0, len(items))
		for _, item := range items {
			s, isString := item.(string)
			if !isString {
				return nil, "type"
			}
			out = append(out, s)
		}
		return out, ""
	}
	return nil, "type"
}

func toFloat(raw any) (float64, bool) {
	switch n := raw.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil || math.IsNaN(f) {
			return 0, false
		}
		return f, true
	}
	return 0, false
}
