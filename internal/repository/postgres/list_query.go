package postgres

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"jobboard-backend/pkg/apperror"
	"jobboard-backend/pkg/query"

	"github.com/google/uuid"
)

// columnType drives both value checking and the SQL cast of a filter value.
type columnType int

const (
	typeText columnType = iota
	typeInteger
	typeUUID
	typeTime
	typeDate
)

func (t columnType) cast() string {
	switch t {
	case typeInteger:
		return "::integer"
	case typeUUID:
		return "::uuid"
	case typeTime:
		return "::timestamptz"
	case typeDate:
		return "::date"
	}
	return "::text"
}

type column struct {
	expr string
	typ  columnType
}

// columns whitelists the API field names a list endpoint can filter and sort on.
type columns map[string]column

var comparison = map[query.Op]string{
	query.OpEq:  "=",
	query.OpNe:  "<>",
	query.OpGt:  ">",
	query.OpGte: ">=",
	query.OpLt:  "<",
	query.OpLte: "<=",
}

// listQuery is the WHERE / ORDER BY / LIMIT tail of a list statement.
type listQuery struct {
	where string
	tail  string
	args  []any
}

// buildList translates opts into SQL using cols. defaultOrder is used when
// no sort key is given. Unknown fields and badly typed values come back as
// a validation error on the query facet.
func buildList(cols columns, opts query.Options, defaultOrder string) (listQuery, error) {
	var (
		conds      []string
		args       []any
		violations []apperror.Violation
	)

	for _, f := range opts.Filters {
		col, ok := cols[f.Field]
		if !ok {
			violations = append(violations, queryViolation(f.Field, "unknown", fmt.Sprintf("%q cannot be used to filter.", f.Field)))
			continue
		}
		if msg := checkValue(col.typ, f.Value); msg != "" {
			violations = append(violations, queryViolation(f.Field, "type", msg))
			continue
		}

		if f.Op == query.OpContains {
			if col.typ != typeText {
				violations = append(violations, queryViolation(f.Field, "contains", fmt.Sprintf("%q does not support contains.", f.Field)))
				continue
			}
			args = append(args, escapeLike(f.Value))
			conds = append(conds, fmt.Sprintf("%s ILIKE '%%' || $%d || '%%'", col.expr, len(args)))
			continue
		}

		args = append(args, f.Value)
		conds = append(conds, fmt.Sprintf("%s %s $%d%s", col.expr, comparison[f.Op], len(args), col.typ.cast()))
	}

	var order []string
	for _, s := range opts.Sort {
		col, ok := cols[s.Field]
		if !ok {
			violations = append(violations, queryViolation("sort", "unknown", fmt.Sprintf("%q cannot be used to sort.", s.Field)))
			continue
		}
		dir := "ASC"
		if s.Desc {
			dir = "DESC"
		}
		order = append(order, col.expr+" "+dir)
	}

	if len(violations) > 0 {
		return listQuery{}, apperror.Validation(violations)
	}

	lq := listQuery{args: args}
	if len(conds) > 0 {
		lq.where = " WHERE " + strings.Join(conds, " AND ")
	}
	if len(order) == 0 {
		order = []string{defaultOrder}
	}
	lq.args = append(lq.args, opts.PageSize(), opts.Offset())
	lq.tail = fmt.Sprintf(" ORDER BY %s LIMIT $%d OFFSET $%d", strings.Join(order, ", "), len(lq.args)-1, len(lq.args))
	return lq, nil
}

func queryViolation(field, rule, msg string) apperror.Violation {
	return apperror.Violation{Facet: "query", Field: field, Rule: rule, Message: msg}
}

func checkValue(typ columnType, v string) string {
	switch typ {
	case typeInteger:
		if _, err := strconv.ParseInt(v, 10, 32); err != nil {
			if errors.Is(err, strconv.ErrRange) {
				return "Value is out of range for an integer."
			}
			return "Value must be an integer."
		}
	case typeUUID:
		if _, err := uuid.Parse(v); err != nil {
			return "Invalid identifier"
		}
	case typeTime:
		if _, err := time.Parse(time.RFC3339, v); err != nil {
			if _, err := time.Parse("2006-01-02", v); err != nil {
				return "Value must be an RFC 3339 timestamp or a YYYY-MM-DD date."
			}
		}
	case typeDate:
		if _, err := time.Parse("2006-01-02", v); err != nil {
			return "Value must be a date in YYYY-MM-DD format."
		}
	}
	return ""
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// assignments collects the SET clause of a partial update.
type assignments struct {
	cols []string
	args []any
}

func (a *assignments) set(col string, v any) {
	a.args = append(a.args, v)
	a.cols = append(a.cols, fmt.Sprintf("%s = $%d", col, len(a.args)))
}

func (a *assignments) empty() bool {
	return len(a.cols) == 0
}

// clause renders the assignments followed by updated_at and returns the
// placeholder index reserved for the row id.
func (a *assignments) clause() (string, int) {
	cols := append(append([]string(nil), a.cols...), "updated_at = NOW()")
	return strings.Join(cols, ", "), len(a.args) + 1
}
