package validation

// Facet is one independently validated part of a request.
type Facet string

const (
	FacetBody    Facet = "body"
	FacetParams  Facet = "params"
	FacetQuery   Facet = "query"
	FacetHeaders Facet = "headers"
)

// Facets lists every facet in evaluation order.
var Facets = []Facet{FacetBody, FacetParams, FacetQuery, FacetHeaders}

// Kind is the expected JSON type of a field.
type Kind int

const (
	KindString Kind = iota
	KindInteger
	KindNumber
	KindBoolean
	KindStringList
)

// Field declares the rules for one key of a facet.
//
// Rules is a go-playground/validator tag string applied after the value has
// been type checked. Presence is governed by Required only, so an optional
// field that is absent is never checked against Rules.
//
// Messages overrides the default message for a rule. Keys are validator
// tags plus the synthetic rules "required", "empty", "type" and "unknown".
// Templates may use {label}, {field}, {limit} and {valids}.
type Field struct {
	Name     string
	Label    string
	Kind     Kind
	Required bool
	Rules    string
	Messages map[string]string
}

// Object is the schema of a single facet.
type Object struct {
	Fields []Field
	// AllowUnknown accepts keys that have no Field. Bodies reject them by default.
	AllowUnknown bool
	// MinFields is the minimum number of declared fields that must be present.
	MinFields int
}

// Set groups the optional per-facet schemas of one endpoint.
// A nil facet is unconstrained.
type Set struct {
	Headers *Object
	Params  *Object
	Query   *Object
	Body    *Object
}

// Object returns the schema for facet f, or nil when the facet is unconstrained.
func (s Set) Object(f Facet) *Object {
	switch f {
	case FacetBody:
		return s.Body
	case FacetParams:
		return s.Params
	case FacetQuery:
		return s.Query
	case FacetHeaders:
		return s.Headers
	}
	return nil
}

// Extend returns a copy of o with extra fields appended.
func (o Object) Extend(fields ...Field) *Object {
	out := o
	out.Fields = append(append([]Field(nil), o.Fields...), fields...)
	return &out
}

// Optional returns a copy of o in which every field is optional.
// It is used to derive PATCH bodies from their POST counterparts.
func (o Object) Optional(minFields int) *Object {
	out := o
	out.Fields = make([]Field, len(o.Fields))
	for i, f := range o.Fields {
		f.Required = false
		out.Fields[i] = f
	}
	out.MinFields = minFields
	return &out
}
