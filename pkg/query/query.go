// Package query turns list query strings into filter, sort and pagination
// options. It knows nothing about storage: repositories map the field names
// onto columns and reject the ones they do not expose.
//
// Supported forms:
//
//	?industry=Finance                  equality
//	?numberOfEmployees[gte]=10         gt, gte, lt, lte, ne
//	?companyName[contains]=acme        case-insensitive substring
//	?sort=-createdAt,jobTitle          "-" means descending
//	?page=2&limit=20                   1-based page, limit capped at MaxLimit
package query

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
)

type Op string

const (
	OpEq       Op = "eq"
	OpNe       Op = "ne"
	OpGt       Op = "gt"
	OpGte      Op = "gte"
	OpLt       Op = "lt"
	OpLte      Op = "lte"
	OpContains Op = "contains"
)

var knownOps = map[Op]bool{
	OpEq: true, OpNe: true, OpGt: true, OpGte: true, OpLt: true, OpLte: true, OpContains: true,
}

const (
	DefaultPage  = 1
	DefaultLimit = 100
	MaxLimit     = 100
	// MaxPage keeps (page-1)*limit well inside int range.
	MaxPage = 1_000_000
)

// reserved keys never become filters.
var reserved = map[string]bool{"page": true, "sort": true, "limit": true, "fields": true}

type Filter struct {
	Field string
	Op    Op
	Value string
}

type SortKey struct {
	Field string
	Desc  bool
}

type Options struct {
	Filters []Filter
	Sort    []SortKey
	Page    int
	Limit   int
}

// Default returns options with no filters and default pagination.
func Default() Options {
	return Options{Page: DefaultPage, Limit: DefaultLimit}
}

// Parse reads filters, sort keys and pagination from values.
// Filters are returned sorted by field then operator.
func Parse(values url.Values) (Options, error) {
	opts := Default()

	for key, vals := range values {
		if reserved[key] || len(vals) == 0 {
			continue
		}
		field, op, err := splitKey(key)
		if err != nil {
			return Options{}, err
		}
		opts.Filters = append(opts.Filters, Filter{Field: field, Op: op, Value: vals[0]})
	}
	sort.Slice(opts.Filters, func(i, j int) bool {
		if opts.Filters[i].Field != opts.Filters[j].Field {
			return opts.Filters[i].Field < opts.Filters[j].Field
		}
		return opts.Filters[i].Op < opts.Filters[j].Op
	})

	opts.Sort = parseSort(values.Get("sort"))

	if raw := values.Get("page"); raw != "" {
		p, err := strconv.Atoi(raw)
		if err == nil && p > MaxPage {
			return Options{}, fmt.Errorf("query: page must be at most %d", MaxPage)
		}
		if err == nil && p > 0 {
			opts.Page = p
		}
	}
	if l, err := strconv.Atoi(values.Get("limit")); err == nil && l > 0 {
		opts.Limit = l
	}
	if opts.Limit > MaxLimit {
		opts.Limit = MaxLimit
	}
	return opts, nil
}

// Offset is the number of records skipped before the current page.
func (o Options) Offset() int {
	page := o.Page
	if page < 1 {
		page = DefaultPage
	}
	if page > MaxPage {
		page = MaxPage
	}
	return (page - 1) * o.PageSize()
}

// PageSize is the effective limit.
func (o Options) PageSize() int {
	if o.Limit < 1 || o.Limit > MaxLimit {
		return DefaultLimit
	}
	return o.Limit
}

// With returns a copy of o with extra filters appended.
func (o Options) With(filters ...Filter) Options {
	out := o
	out.Filters = append(append([]Filter(nil), o.Filters...), filters...)
	return out
}

// splitKey parses "field" or "field[op]".
func splitKey(key string) (string, Op, error) {
	open := strings.IndexByte(key, '[')
	if open < 0 {
		return key, OpEq, nil
	}
	if !strings.HasSuffix(key, "]") || open == 0 {
		return "", "", fmt.Errorf("query: malformed filter key %q", key)
	}
	op := Op(key[open+1 : len(key)-1])
	if !knownOps[op] {
		return "", "", fmt.Errorf("query: unsupported operator %q in %q", op, key)
	}
	return key[:open], op, nil
}

func parseSort(raw string) []SortKey {
	var keys []SortKey
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" || part == "-" {
			continue
		}
		if strings.HasPrefix(part, "-") {
			keys = append(keys, SortKey{Field: part[1:], Desc: true})
			continue
		}
		keys = append(keys, SortKey{Field: part})
	}
	return keys
}
