package filter

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/goliatone/go-repository-bun"
	"github.com/uptrace/bun"

	"github.com/goliatone/go-club-setup/internal/apperr"
)

type Operator string

const (
	OpEquals      Operator = "equals"
	OpNotEquals   Operator = "notEquals"
	OpContains    Operator = "contains"
	OpStartsWith  Operator = "startsWith"
	OpEndsWith    Operator = "endsWith"
	OpGreaterThan Operator = "greaterThan"
	OpLessThan    Operator = "lessThan"
)

var operators = []Operator{
	OpEquals,
	OpNotEquals,
	OpContains,
	OpStartsWith,
	OpEndsWith,
	OpGreaterThan,
	OpLessThan,
}

func Operators() []Operator {
	return append([]Operator(nil), operators...)
}

// ParseOperator resolves raw into an Operator. Empty input means equals.
func ParseOperator(raw string) (Operator, error) {
	if strings.TrimSpace(raw) == "" {
		return OpEquals, nil
	}
	for _, op := range operators {
		if string(op) == raw {
			return op, nil
		}
	}
	return "", apperr.Validation("Invalid operator: %s", raw)
}

// FieldFilter is a single field/value/operator triple.
type FieldFilter struct {
	Field    string `json:"field"`
	Value    any    `json:"value"`
	Operator string `json:"operator,omitempty"`
}

type Class string

const (
	ClassScalar Class = "scalar"
	ClassDate   Class = "date"
	ClassArray  Class = "array"
)

type AllowedField struct {
	Column string
	Class  Class
}

// AllowList lists the fields a client may filter on.
type AllowList map[string]AllowedField

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9_]`)

// Sanitize strips everything but letters, digits and underscores.
func Sanitize(name string) string {
	return unsafeChars.ReplaceAllString(name, "")
}

// SecureQuery builds criteria from client supplied triples, accepting only
// allow-listed fields, known operators and registered relations.
type SecureQuery struct {
	Alias     string
	Fields    AllowList
	Relations map[string]string
}

// Build validates every filter and relation before producing criteria.
func (s SecureQuery) Build(filters []FieldFilter, relations []string) ([]repository.SelectCriteria, error) {
	alias := Sanitize(s.Alias)
	var criteria []repository.SelectCriteria

	for _, f := range filters {
		op, err := ParseOperator(f.Operator)
		if err != nil {
			return nil, err
		}

		field := Sanitize(f.Field)
		allowed, ok := s.Fields[field]
		if !ok || field != f.Field {
			return nil, apperr.Validation("Invalid field name: %s", f.Field)
		}

		column := Column(alias, Sanitize(allowed.Column))
		if allowed.Class == ClassDate || allowed.Class == ClassArray {
			column += "::text"
		}

		expr, value := condition(column, op, f.Value)
		criteria = append(criteria, func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where(expr, value)
		})
	}

	resolved, err := s.relations(relations)
	if err != nil {
		return nil, err
	}
	if len(resolved) > 0 {
		criteria = append(criteria, func(q *bun.SelectQuery) *bun.SelectQuery {
			for _, rel := range resolved {
				q = q.Relation(rel)
			}
			return q
		})
	}

	return criteria, nil
}

func (s SecureQuery) relations(names []string) ([]string, error) {
	out := make([]string, 0, len(names))
	for _, name := range names {
		clean := Sanitize(name)
		rel, ok := s.Relations[clean]
		if !ok || clean != name {
			return nil, apperr.Validation("Invalid relation: %s", name)
		}
		out = append(out, rel)
	}
	return out, nil
}

func condition(column string, op Operator, value any) (string, any) {
	switch op {
	case OpNotEquals:
		return fmt.Sprintf("%s != ?", column), value
	case OpContains:
		return fmt.Sprintf("%s ILIKE ?", column), "%" + fmt.Sprint(value) + "%"
	case OpStartsWith:
		return fmt.Sprintf("%s ILIKE ?", column), fmt.Sprint(value) + "%"
	case OpEndsWith:
		return fmt.Sprintf("%s ILIKE ?", column), "%" + fmt.Sprint(value)
	case OpGreaterThan:
		return fmt.Sprintf("%s > ?", column), value
	case OpLessThan:
		return fmt.Sprintf("%s < ?", column), value
	default:
		return fmt.Sprintf("%s = ?", column), value
	}
}
