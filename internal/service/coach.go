package service

import (
	"context"

	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"

	clubsetup "github.com/goliatone/go-club-setup"
	"github.com/goliatone/go-club-setup/internal/apperr"
	"github.com/goliatone/go-club-setup/internal/events"
	"github.com/goliatone/go-club-setup/internal/filter"
	"github.com/goliatone/go-club-setup/internal/logging"
	"github.com/goliatone/go-club-setup/internal/store"
)

const (
	coachAlias       = "co"
	coachDefaultTake = 10
)

var coachSortable = filter.Sortable{
	"name":      "name",
	"surname":   "surname",
	"email":     "email",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

var coachFields = filter.NewFieldConfigs(filter.Spec{
	Exact: []string{"clubId", "gender", "country", "city"},
}).WithArrayColumn("services")

type CoachFilter struct {
	SearchText *string           `json:"searchText,omitempty"`
	ClubID     *uuid.UUID        `json:"clubId,omitempty"`
	Gender     *clubsetup.Gender `json:"gender,omitempty"`
	Country    *string           `json:"country,omitempty"`
	City       *string           `json:"city,omitempty"`
	Services   []uuid.UUID       `json:"services,omitempty"`
}

type CoachQuery struct {
	Filters    *CoachFilter       `json:"filters,omitempty"`
	Sort       []filter.Sort      `json:"sort,omitempty"`
	Pagination *filter.Pagination `json:"pagination,omitempty"`
}

type CoachList struct {
	Data  []*clubsetup.Coach `json:"data"`
	Total int                `json:"total"`
}

type CoachService struct {
	crud crudService[*clubsetup.Coach]
}

func NewCoachService(coaches store.Store[*clubsetup.Coach], opts ...Option) *CoachService {
	return &CoachService{
		crud: newCRUD(coaches, "coach", "Coach", coachAlias,
			func(c *clubsetup.Coach) *uuid.UUID { return &c.ID }, buildOptions(opts)),
	}
}

// Create stores the coach and completes the coaches step.
func (s *CoachService) Create(ctx context.Context, coach *clubsetup.Coach) (*clubsetup.Coach, error) {
	if err := requireClub(coach.ClubID); err != nil {
		return nil, err
	}
	if coach.Name == "" || coach.Surname == "" || coach.Email == "" {
		return nil, apperr.Validation("Coach name, surname and email are required")
	}
	created, err := s.crud.create(ctx, coach)
	if err != nil {
		return nil, err
	}
	if err := s.crud.track(ctx, events.StepCompleted, created.ClubID, clubsetup.StepCoaches); err != nil {
		return nil, err
	}
	return created, nil
}

// List filters, sorts and pages coaches. Ten coaches per page by default.
func (s *CoachService) List(ctx context.Context, query CoachQuery) (CoachList, error) {
	criteria, err := s.filterCriteria(query.Filters)
	if err != nil {
		return CoachList{}, err
	}
	order, err := filter.OrderCriteria(coachAlias, query.Sort, coachSortable)
	if err != nil {
		return CoachList{}, err
	}
	page := query.Pagination.Normalize(coachDefaultTake)
	criteria = append(criteria, order, page.Criteria())

	coaches, total, err := s.crud.store.List(ctx, criteria...)
	if err != nil {
		s.crud.log(ctx, "list", logging.Fields{"skip": page.Skip, "take": page.Take}).Error("failed to fetch coaches: %v", err)
		return CoachList{}, err
	}
	return CoachList{Data: coaches, Total: total}, nil
}

func (s *CoachService) Count(ctx context.Context, filters *CoachFilter) (int, error) {
	criteria, err := s.filterCriteria(filters)
	if err != nil {
		return 0, err
	}
	return s.crud.count(ctx, criteria...)
}

func (s *CoachService) Get(ctx context.Context, id uuid.UUID) (*clubsetup.Coach, error) {
	return s.crud.get(ctx, id)
}

func (s *CoachService) ByClub(ctx context.Context, clubID uuid.UUID) ([]*clubsetup.Coach, error) {
	return s.crud.list(ctx, s.crud.byClub(clubID))
}

// ByService returns coaches offering serviceID.
func (s *CoachService) ByService(ctx context.Context, serviceID uuid.UUID, clubID *uuid.UUID) ([]*clubsetup.Coach, error) {
	criteria := append(s.crud.inClub(clubID), func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("? = ANY("+s.crud.column("services")+")", serviceID)
	})
	return s.crud.list(ctx, criteria...)
}

func (s *CoachService) Update(ctx context.Context, id uuid.UUID, patch Patch) (*clubsetup.Coach, error) {
	return s.crud.update(ctx, id, patch)
}

func (s *CoachService) Remove(ctx context.Context, id uuid.UUID) (bool, error) {
	if _, err := s.crud.remove(ctx, id); err != nil {
		return false, err
	}
	return true, nil
}

func (s *CoachService) filterCriteria(filters *CoachFilter) ([]repository.SelectCriteria, error) {
	if filters == nil {
		return nil, nil
	}
	values, err := toFilterMap(filters)
	if err != nil {
		return nil, err
	}
	criteria := filter.BuildCriteria(coachAlias, values, coachFields, nil)
	if filters.SearchText != nil && *filters.SearchText != "" {
		criteria = append(criteria, ilikeAny(coachAlias, *filters.SearchText, "name", "surname", "email"))
	}
	return criteria, nil
}
