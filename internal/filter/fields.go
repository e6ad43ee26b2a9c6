package filter

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/ettle/strcase"
	"github.com/goliatone/go-repository-bun"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
)

// Kind is the match strategy used for a filter key.
type Kind string

const (
	KindPartial Kind = "partial"
	KindExact   Kind = "exact"
	KindArray   Kind = "array"
	KindBoolean Kind = "boolean"
	KindDate    Kind = "date"
	KindNumber  Kind = "number"
)

// Spec groups filter keys by match kind.
type Spec struct {
	Partial []string
	Exact   []string
	Array   []string
	Boolean []string
	Date    []string
	Number  []string
}

type FieldConfig struct {
	Kind   Kind
	Column string
	// ArrayColumn marks columns stored as Postgres arrays, matched with &&.
	ArrayColumn bool
}

// FieldConfigs maps a filter key to the column it targets.
type FieldConfigs map[string]FieldConfig

// NewFieldConfigs derives snake_case columns for every key in spec.
func NewFieldConfigs(spec Spec) FieldConfigs {
	configs := FieldConfigs{}
	add := func(keys []string, kind Kind) {
		for _, key := range keys {
			configs[key] = FieldConfig{Kind: kind, Column: strcase.ToSnake(key)}
		}
	}
	add(spec.Partial, KindPartial)
	add(spec.Exact, KindExact)
	add(spec.Array, KindArray)
	add(spec.Boolean, KindBoolean)
	add(spec.Date, KindDate)
	add(spec.Number, KindNumber)
	return configs
}

// WithColumn overrides the column and kind for key.
func (f FieldConfigs) WithColumn(key, column string, kind Kind) FieldConfigs {
	f[key] = FieldConfig{Kind: kind, Column: column}
	return f
}

// WithArrayColumn marks key as an array column matched by overlap.
func (f FieldConfigs) WithArrayColumn(key string) FieldConfigs {
	cfg, ok := f[key]
	if !ok {
		cfg = FieldConfig{Kind: KindArray, Column: strcase.ToSnake(key)}
	}
	cfg.ArrayColumn = true
	f[key] = cfg
	return f
}

// Predicate is a resolved filter condition.
type Predicate struct {
	Key         string
	Kind        Kind
	Column      string
	Value       any
	ArrayColumn bool
}

// Apply adds the predicate to q. Columns are qualified with alias when set.
func (p Predicate) Apply(q *bun.SelectQuery, alias string) *bun.SelectQuery {
	column := Column(alias, p.Column)

	switch p.Kind {
	case KindPartial:
		return q.Where(fmt.Sprintf("%s ILIKE ?", column), "%"+fmt.Sprint(p.Value)+"%")
	case KindArray:
		values := toStrings(p.Value)
		if p.ArrayColumn {
			return q.Where(fmt.Sprintf("%s::text[] && ?", column), pgdialect.Array(values))
		}
		if len(values) == 0 {
			return q.Where("1 = 0")
		}
		return q.Where(fmt.Sprintf("%s IN (?)", column), bun.In(values))
	default:
		return q.Where(fmt.Sprintf("%s = ?", column), p.Value)
	}
}

// RelationHandler resolves a relation-style filter key into criteria.
type RelationHandler func(alias string, value any) repository.SelectCriteria

type RelationHandlers map[string]RelationHandler

// Predicates resolves filter into predicates, sorted by key. Unknown keys and
// nil values are skipped.
func Predicates(filter map[string]any, configs FieldConfigs) []Predicate {
	keys := make([]string, 0, len(filter))
	for key := range filter {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	out := make([]Predicate, 0, len(keys))
	for _, key := range keys {
		value := filter[key]
		if isNil(value) {
			continue
		}
		cfg, ok := configs[key]
		if !ok {
			continue
		}
		out = append(out, Predicate{
			Key:         key,
			Kind:        cfg.Kind,
			Column:      cfg.Column,
			Value:       value,
			ArrayColumn: cfg.ArrayColumn,
		})
	}
	return out
}

// BuildCriteria turns filter into select criteria. Relation handlers run
// after the field predicates.
func BuildCriteria(alias string, filter map[string]any, configs FieldConfigs, relations RelationHandlers) []repository.SelectCriteria {
	var criteria []repository.SelectCriteria

	for _, p := range Predicates(filter, configs) {
		criteria = append(criteria, func(q *bun.SelectQuery) *bun.SelectQuery {
			return p.Apply(q, alias)
		})
	}

	keys := make([]string, 0, len(relations))
	for key := range relations {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value, ok := filter[key]
		if !ok || isNil(value) {
			continue
		}
		if _, mapped := configs[key]; mapped {
			continue
		}
		criteria = append(criteria, relations[key](alias, value))
	}

	return criteria
}

// ChildExists matches clubs owning a row in table (joined on club_id) whose
// column equals the value, or any of the values when given a list.
func ChildExists(table, column string) RelationHandler {
	table = Sanitize(table)
	column = Sanitize(column)
	return func(alias string, value any) repository.SelectCriteria {
		return func(q *bun.SelectQuery) *bun.SelectQuery {
			base := fmt.Sprintf("EXISTS (SELECT 1 FROM %s AS sub WHERE sub.club_id = %s AND sub.%s", table, Column(alias, "id"), column)
			if values, ok := asList(value); ok {
				if len(values) == 0 {
					return q.Where("1 = 0")
				}
				return q.Where(base+"::text IN (?))", bun.In(values))
			}
			return q.Where(base+"::text = ?)", fmt.Sprint(value))
		}
	}
}

// Equals matches column against the value.
func Equals(column string) RelationHandler {
	column = Sanitize(column)
	return func(alias string, value any) repository.SelectCriteria {
		return func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where(fmt.Sprintf("%s = ?", Column(alias, column)), value)
		}
	}
}

// Column qualifies column with alias.
func Column(alias, column string) string {
	if alias == "" {
		return column
	}
	return alias + "." + column
}

func isNil(value any) bool {
	if value == nil {
		return true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice:
		return rv.IsNil()
	}
	return false
}

func asList(value any) ([]string, bool) {
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	return toStrings(value), true
}

func toStrings(value any) []string {
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		if s := strings.TrimSpace(fmt.Sprint(value)); s != "" {
			return []string{s}
		}
		return []string{}
	}
	out := make([]string, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		out = append(out, fmt.Sprint(rv.Index(i).Interface()))
	}
	return out
}
