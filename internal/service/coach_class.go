package service

import (
	"context"

	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"

	clubsetup "github.com/goliatone/go-club-setup"
	"github.com/goliatone/go-club-setup/internal/apperr"
	"github.com/goliatone/go-club-setup/internal/logging"
	"github.com/goliatone/go-club-setup/internal/store"
)

const (
	coachClassAlias        = "cc"
	coachClassDefaultLimit = 10
)

// CoachClassFilter narrows coach classes within one club.
type CoachClassFilter struct {
	ClubID    uuid.UUID            `json:"clubId"`
	Title     *string              `json:"title,omitempty"`
	Service   []uuid.UUID          `json:"service,omitempty"`
	Group     []uuid.UUID          `json:"group,omitempty"`
	Resource  []uuid.UUID          `json:"resource,omitempty"`
	PriceType *clubsetup.PriceType `json:"priceType,omitempty"`
	MinPrice  *float64             `json:"minPrice,omitempty"`
	MaxPrice  *float64             `json:"maxPrice,omitempty"`
	CoachIDs  []string             `json:"coachIds,omitempty"`
	Limit     int                  `json:"limit,omitempty"`
	Offset    int                  `json:"offset,omitempty"`
}

type CoachClassList struct {
	Data  []*clubsetup.CoachClass `json:"data"`
	Total int                     `json:"total"`
}

// CoachClassService manages class templates. Coach classes are not a wizard
// step and every lookup is scoped to a club.
type CoachClassService struct {
	crud crudService[*clubsetup.CoachClass]
}

func NewCoachClassService(classes store.Store[*clubsetup.CoachClass], opts ...Option) *CoachClassService {
	return &CoachClassService{
		crud: newCRUD(classes, "coach_class", "Coach class", coachClassAlias,
			func(c *clubsetup.CoachClass) *uuid.UUID { return &c.ID }, buildOptions(opts)),
	}
}

func (s *CoachClassService) Create(ctx context.Context, class *clubsetup.CoachClass) (*clubsetup.CoachClass, error) {
	if err := requireClub(class.ClubID); err != nil {
		return nil, err
	}
	if class.Title == "" {
		return nil, apperr.Validation("Coach class title is required")
	}
	if !class.PriceType.Valid() {
		return nil, apperr.Validation("Invalid price type: %s", class.PriceType)
	}
	return s.crud.create(ctx, class)
}

// List pages the classes of f.ClubID, newest first.
func (s *CoachClassService) List(ctx context.Context, f CoachClassFilter) (CoachClassList, error) {
	criteria, err := s.filterCriteria(f)
	if err != nil {
		return CoachClassList{}, err
	}
	limit, offset := f.Limit, f.Offset
	if limit <= 0 {
		limit = coachClassDefaultLimit
	}
	if offset < 0 {
		offset = 0
	}
	criteria = append(criteria, s.crud.newestFirst, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Limit(limit).Offset(offset)
	})

	classes, total, err := s.crud.store.List(ctx, criteria...)
	if err != nil {
		s.crud.log(ctx, "list", logging.Fields{"club_id": f.ClubID.String()}).Error("failed to fetch coach classes: %v", err)
		return CoachClassList{}, err
	}
	return CoachClassList{Data: classes, Total: total}, nil
}

func (s *CoachClassService) Count(ctx context.Context, f CoachClassFilter) (int, error) {
	criteria, err := s.filterCriteria(f)
	if err != nil {
		return 0, err
	}
	return s.crud.count(ctx, criteria...)
}

func (s *CoachClassService) Get(ctx context.Context, id, clubID uuid.UUID) (*clubsetup.CoachClass, error) {
	return s.crud.first(ctx,
		apperr.NotFound("Coach class with ID %s not found", id),
		s.crud.where("id", id), s.crud.byClub(clubID))
}

// ByCoach returns the classes of clubID that coachID teaches.
func (s *CoachClassService) ByCoach(ctx context.Context, coachID string, clubID uuid.UUID) ([]*clubsetup.CoachClass, error) {
	return s.crud.list(ctx, s.crud.byClub(clubID), s.taughtBy([]string{coachID}))
}

func (s *CoachClassService) Update(ctx context.Context, id, clubID uuid.UUID, patch Patch) (*clubsetup.CoachClass, error) {
	class, err := s.Get(ctx, id, clubID)
	if err != nil {
		return nil, err
	}
	return s.crud.applyAndSave(ctx, class, patch.Without("clubId"), func(c *clubsetup.CoachClass) error {
		if !c.PriceType.Valid() {
			return apperr.Validation("Invalid price type: %s", c.PriceType)
		}
		return nil
	})
}

func (s *CoachClassService) Remove(ctx context.Context, id, clubID uuid.UUID) (bool, error) {
	class, err := s.Get(ctx, id, clubID)
	if err != nil {
		return false, err
	}
	if err := s.crud.delete(ctx, class); err != nil {
		return false, err
	}
	return true, nil
}

func (s *CoachClassService) filterCriteria(f CoachClassFilter) ([]repository.SelectCriteria, error) {
	if err := requireClub(f.ClubID); err != nil {
		return nil, err
	}
	criteria := []repository.SelectCriteria{s.crud.byClub(f.ClubID)}

	if f.Title != nil && *f.Title != "" {
		criteria = append(criteria, ilikeAny(coachClassAlias, *f.Title, "title"))
	}
	if len(f.Service) > 0 {
		criteria = append(criteria, overlaps(coachClassAlias, "service_ids", f.Service))
	}
	if len(f.Group) > 0 {
		criteria = append(criteria, overlaps(coachClassAlias, "group_ids", f.Group))
	}
	if len(f.Resource) > 0 {
		criteria = append(criteria, overlaps(coachClassAlias, "resource_ids", f.Resource))
	}
	if f.PriceType != nil {
		if !f.PriceType.Valid() {
			return nil, apperr.Validation("Invalid price type: %s", *f.PriceType)
		}
		criteria = append(criteria, s.crud.where("price_type", *f.PriceType))
	}
	if f.MinPrice != nil {
		floor := *f.MinPrice
		criteria = append(criteria, func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where(s.crud.column("price")+" >= ?", floor)
		})
	}
	if f.MaxPrice != nil {
		ceiling := *f.MaxPrice
		criteria = append(criteria, func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where(s.crud.column("price")+" <= ?", ceiling)
		})
	}
	if len(f.CoachIDs) > 0 {
		criteria = append(criteria, s.taughtBy(f.CoachIDs))
	}
	return criteria, nil
}

// taughtBy matches classes whose coach assignments include any of ids.
func (s *CoachClassService) taughtBy(ids []string) repository.SelectCriteria {
	return func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where(
			"EXISTS (SELECT 1 FROM jsonb_array_elements("+s.crud.column("coach")+") AS coach_item WHERE coach_item->>'coachId' IN (?))",
			bun.In(ids),
		)
	}
}
