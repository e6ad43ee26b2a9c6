package filter

import (
	"fmt"
	"strings"
	"time"

	"github.com/goliatone/go-repository-bun"
	"github.com/uptrace/bun"

	"github.com/goliatone/go-club-setup/internal/apperr"
)

var (
	DefaultTake = 20
	MaxTake     = 100
)

type Pagination struct {
	Skip int `json:"skip"`
	Take int `json:"take"`
}

// Normalize applies the default page size, caps take and floors skip.
func (p *Pagination) Normalize(defaultTake int) Pagination {
	out := Pagination{}
	if p != nil {
		out = *p
	}
	if defaultTake <= 0 {
		defaultTake = DefaultTake
	}
	if out.Skip < 0 {
		out.Skip = 0
	}
	if out.Take <= 0 {
		out.Take = defaultTake
	}
	if out.Take > MaxTake {
		out.Take = MaxTake
	}
	return out
}

// Criteria applies limit and offset.
func (p Pagination) Criteria() repository.SelectCriteria {
	return func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Limit(p.Take).Offset(p.Skip)
	}
}

// Page describes the page a result set belongs to.
type Page struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

func PageOf(total, skip, take int) Page {
	if take <= 0 {
		take = DefaultTake
	}
	if skip < 0 {
		skip = 0
	}
	return Page{
		Total:      total,
		Page:       skip/take + 1,
		Limit:      take,
		TotalPages: (total + take - 1) / take,
	}
}

type SortOrder string

const (
	Asc  SortOrder = "ASC"
	Desc SortOrder = "DESC"
)

type Sort struct {
	Field string    `json:"field"`
	Order SortOrder `json:"order"`
}

// Sortable maps client sort fields to columns.
type Sortable map[string]string

// OrderCriteria validates sorts against fields and orders the query. With no
// sorts the query is ordered by created_at DESC.
func OrderCriteria(alias string, sorts []Sort, fields Sortable) (repository.SelectCriteria, error) {
	clauses := make([]string, 0, len(sorts))
	for _, s := range sorts {
		column, ok := fields[s.Field]
		if !ok {
			return nil, apperr.Validation("Invalid sort field: %s", s.Field)
		}
		order := Asc
		switch SortOrder(strings.ToUpper(string(s.Order))) {
		case Asc, "":
		case Desc:
			order = Desc
		default:
			return nil, apperr.Validation("Invalid sort order: %s", s.Order)
		}
		clauses = append(clauses, fmt.Sprintf("%s %s", Column(alias, Sanitize(column)), order))
	}
	if len(clauses) == 0 {
		clauses = append(clauses, Column(alias, "created_at")+" DESC")
	}

	return func(q *bun.SelectQuery) *bun.SelectQuery {
		for _, clause := range clauses {
			q = q.OrderExpr(clause)
		}
		return q
	}, nil
}

type DateRange struct {
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
}

// Criteria bounds column by the range. Missing ends are open.
func (r *DateRange) Criteria(alias, column string) repository.SelectCriteria {
	return func(q *bun.SelectQuery) *bun.SelectQuery {
		if r == nil {
			return q
		}
		col := Column(alias, column)
		if r.StartDate != nil {
			q = q.Where(fmt.Sprintf("%s >= ?", col), *r.StartDate)
		}
		if r.EndDate != nil {
			q = q.Where(fmt.Sprintf("%s <= ?", col), *r.EndDate)
		}
		return q
	}
}
