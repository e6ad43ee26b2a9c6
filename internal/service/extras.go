package service

import (
	"context"

	"dario.cat/mergo"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"

	clubsetup "github.com/goliatone/go-club-setup"
	"github.com/goliatone/go-club-setup/internal/apperr"
	"github.com/goliatone/go-club-setup/internal/filter"
	"github.com/goliatone/go-club-setup/internal/logging"
	"github.com/goliatone/go-club-setup/internal/store"
)

const extrasAlias = "ex"

var extrasSortable = filter.Sortable{
	"createdAt":       "created_at",
	"updatedAt":       "updated_at",
	"status":          "status",
	"hourBankEnabled": "hour_bank",
	"wishlistEnabled": "wishlist",
}

var extrasFields = filter.NewFieldConfigs(filter.Spec{
	Partial: []string{
		"externalBookingSystem",
		"paymentGateway",
		"emailMarketing",
		"analyticsIntegration",
		"socialMediaIntegration",
	},
	Exact: []string{"clubId", "status"},
}).
	WithColumn("hourBankEnabled", "hour_bank", filter.KindBoolean).
	WithColumn("wishlistEnabled", "wishlist", filter.KindBoolean)

// featureColumns maps each toggleable feature to its column.
var featureColumns = map[clubsetup.ExtrasFeature]string{
	clubsetup.FeatureHourBank: "hour_bank",
	clubsetup.FeatureWishlist: "wishlist",
}

type ExtrasFilter struct {
	ClubID                 *uuid.UUID              `json:"clubId,omitempty"`
	Status                 *clubsetup.MemberStatus `json:"status,omitempty"`
	HourBankEnabled        *bool                   `json:"hourBankEnabled,omitempty"`
	WishlistEnabled        *bool                   `json:"wishlistEnabled,omitempty"`
	ExternalBookingSystem  *string                 `json:"externalBookingSystem,omitempty"`
	PaymentGateway         *string                 `json:"paymentGateway,omitempty"`
	EmailMarketing         *string                 `json:"emailMarketing,omitempty"`
	AnalyticsIntegration   *string                 `json:"analyticsIntegration,omitempty"`
	SocialMediaIntegration *string                 `json:"socialMediaIntegration,omitempty"`
	SearchText             *string                 `json:"searchText,omitempty"`
	CreatedAt              *filter.DateRange       `json:"createdAt,omitempty"`
	UpdatedAt              *filter.DateRange       `json:"updatedAt,omitempty"`
}

type ExtrasQuery struct {
	Filters    *ExtrasFilter      `json:"filters,omitempty"`
	Sort       []filter.Sort      `json:"sort,omitempty"`
	Pagination *filter.Pagination `json:"pagination,omitempty"`
}

type ExtrasSearchResult struct {
	Extras     []*clubsetup.Extras `json:"extras"`
	Total      int                 `json:"total"`
	Page       int                 `json:"page"`
	Limit      int                 `json:"limit"`
	TotalPages int                 `json:"totalPages"`
}

// ExtrasService manages optional features and integrations. Extras are
// not a wizard step.
type ExtrasService struct {
	crud  crudService[*clubsetup.Extras]
	stats IntegrationStatsReader
}

func NewExtrasService(extras store.Store[*clubsetup.Extras], stats IntegrationStatsReader, opts ...Option) *ExtrasService {
	return &ExtrasService{
		crud: newCRUD(extras, "extras", "Extras configuration", extrasAlias,
			func(e *clubsetup.Extras) *uuid.UUID { return &e.ID }, buildOptions(opts)),
		stats: stats,
	}
}

func (s *ExtrasService) Create(ctx context.Context, extras *clubsetup.Extras) (*clubsetup.Extras, error) {
	if err := requireClub(extras.ClubID); err != nil {
		return nil, err
	}
	if err := prepareExtras(extras); err != nil {
		return nil, err
	}
	return s.crud.create(ctx, extras)
}

func (s *ExtrasService) List(ctx context.Context, clubID *uuid.UUID) ([]*clubsetup.Extras, error) {
	return s.crud.list(ctx, s.crud.inClub(clubID)...)
}

func (s *ExtrasService) Get(ctx context.Context, id uuid.UUID) (*clubsetup.Extras, error) {
	return s.crud.get(ctx, id)
}

func (s *ExtrasService) ByClub(ctx context.Context, clubID uuid.UUID) ([]*clubsetup.Extras, error) {
	return s.crud.list(ctx, s.crud.byClub(clubID))
}

func (s *ExtrasService) ByStatus(ctx context.Context, status clubsetup.MemberStatus, clubID *uuid.UUID) ([]*clubsetup.Extras, error) {
	if !status.Valid() {
		return nil, apperr.Validation("Invalid extras status: %s", status)
	}
	return s.crud.list(ctx, append(s.crud.inClub(clubID), s.crud.where("status", status))...)
}

// ByFeature returns configurations where feature is enabled or disabled.
func (s *ExtrasService) ByFeature(ctx context.Context, feature clubsetup.ExtrasFeature, enabled bool, clubID *uuid.UUID) ([]*clubsetup.Extras, error) {
	column, ok := featureColumns[feature]
	if !ok {
		return nil, apperr.Validation("Invalid feature: %s", feature)
	}
	return s.crud.list(ctx, append(s.crud.inClub(clubID), s.crud.where(column, enabled))...)
}

func (s *ExtrasService) Search(ctx context.Context, query ExtrasQuery) (ExtrasSearchResult, error) {
	criteria, err := s.filterCriteria(query.Filters)
	if err != nil {
		return ExtrasSearchResult{}, err
	}
	order, err := filter.OrderCriteria(extrasAlias, query.Sort, extrasSortable)
	if err != nil {
		return ExtrasSearchResult{}, err
	}
	page := query.Pagination.Normalize(filter.DefaultTake)
	criteria = append(criteria, order, page.Criteria())

	extras, total, err := s.crud.store.List(ctx, criteria...)
	if err != nil {
		s.crud.log(ctx, "search", logging.Fields{"skip": page.Skip, "take": page.Take}).Error("failed to search extras: %v", err)
		return ExtrasSearchResult{}, err
	}
	meta := filter.PageOf(total, page.Skip, page.Take)
	return ExtrasSearchResult{
		Extras:     extras,
		Total:      meta.Total,
		Page:       meta.Page,
		Limit:      meta.Limit,
		TotalPages: meta.TotalPages,
	}, nil
}

// SearchByDescription matches term against the wishlist description and notes.
func (s *ExtrasService) SearchByDescription(ctx context.Context, term string, limit int, clubID *uuid.UUID) ([]*clubsetup.Extras, error) {
	if limit <= 0 {
		limit = nameSearchLimit
	}
	criteria := append(s.crud.inClub(clubID),
		ilikeAny(extrasAlias, term, "wishlist_description", "notes"),
		s.crud.limit(limit))
	return s.crud.list(ctx, criteria...)
}

func (s *ExtrasService) Count(ctx context.Context, status *clubsetup.MemberStatus, clubID *uuid.UUID) (int, error) {
	criteria := s.crud.inClub(clubID)
	if status != nil {
		criteria = append(criteria, s.crud.where("status", *status))
	}
	return s.crud.count(ctx, criteria...)
}

func (s *ExtrasService) IntegrationStats(ctx context.Context, clubID *uuid.UUID) (clubsetup.IntegrationStats, error) {
	if s.stats == nil {
		return clubsetup.IntegrationStats{}, apperr.Validation("Integration stats are not available")
	}
	stats, err := s.stats.IntegrationStats(ctx, clubID)
	if err != nil {
		s.crud.log(ctx, "stats", nil).Error("failed to aggregate integration stats: %v", err)
		return clubsetup.IntegrationStats{}, err
	}
	return stats, nil
}

func (s *ExtrasService) Update(ctx context.Context, id uuid.UUID, patch Patch) (*clubsetup.Extras, error) {
	return s.crud.update(ctx, id, patch, prepareExtras)
}

func (s *ExtrasService) Delete(ctx context.Context, id uuid.UUID) (string, error) {
	return s.crud.remove(ctx, id)
}

func (s *ExtrasService) UpdateStatus(ctx context.Context, id uuid.UUID, status clubsetup.MemberStatus) (*clubsetup.Extras, error) {
	return s.modify(ctx, id, func(e *clubsetup.Extras) error {
		e.Status = status
		return nil
	})
}

func (s *ExtrasService) ToggleFeature(ctx context.Context, id uuid.UUID, feature clubsetup.ExtrasFeature, enabled bool) (*clubsetup.Extras, error) {
	return s.modify(ctx, id, func(e *clubsetup.Extras) error {
		if !e.SetFeature(feature, enabled) {
			return apperr.Validation("Invalid feature: %s", feature)
		}
		return nil
	})
}

// BulkUpdateStatus updates ids in order and stops at the first failure.
func (s *ExtrasService) BulkUpdateStatus(ctx context.Context, ids []uuid.UUID, status clubsetup.MemberStatus) ([]*clubsetup.Extras, error) {
	updated := make([]*clubsetup.Extras, 0, len(ids))
	for _, id := range ids {
		extras, err := s.UpdateStatus(ctx, id, status)
		if err != nil {
			return nil, err
		}
		updated = append(updated, extras)
	}
	return updated, nil
}

func (s *ExtrasService) BulkDelete(ctx context.Context, ids []uuid.UUID) (bool, error) {
	for _, id := range ids {
		if _, err := s.Delete(ctx, id); err != nil {
			return false, err
		}
	}
	return true, nil
}

func (s *ExtrasService) modify(ctx context.Context, id uuid.UUID, change func(*clubsetup.Extras) error) (*clubsetup.Extras, error) {
	extras, err := s.crud.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := change(extras); err != nil {
		return nil, err
	}
	if err := prepareExtras(extras); err != nil {
		return nil, err
	}
	return s.crud.save(ctx, extras)
}

func (s *ExtrasService) filterCriteria(filters *ExtrasFilter) ([]repository.SelectCriteria, error) {
	if filters == nil {
		return nil, nil
	}
	values, err := toFilterMap(filters)
	if err != nil {
		return nil, err
	}
	criteria := filter.BuildCriteria(extrasAlias, values, extrasFields, nil)
	if filters.SearchText != nil && *filters.SearchText != "" {
		criteria = append(criteria, ilikeAny(extrasAlias, *filters.SearchText, "wishlist_description", "notes"))
	}
	if filters.CreatedAt != nil {
		criteria = append(criteria, filters.CreatedAt.Criteria(extrasAlias, "created_at"))
	}
	if filters.UpdatedAt != nil {
		criteria = append(criteria, filters.UpdatedAt.Criteria(extrasAlias, "updated_at"))
	}
	return criteria, nil
}

func prepareExtras(e *clubsetup.Extras) error {
	if e.Status == "" {
		e.Status = clubsetup.MemberActive
	}
	if !e.Status.Valid() {
		return apperr.Validation("Invalid extras status: %s", e.Status)
	}
	var err error
	if e.HourBankLimits, err = withLimitDefaults(e.HourBankLimits, clubsetup.LimitHours); err != nil {
		return err
	}
	if e.WishlistLimits, err = withLimitDefaults(e.WishlistLimits, clubsetup.LimitAmount); err != nil {
		return err
	}
	return nil
}

// withLimitDefaults fills unset user and limit types. Nil lists become empty.
func withLimitDefaults(limits []clubsetup.ExtrasUserLimit, limitType clubsetup.ExtrasLimitType) ([]clubsetup.ExtrasUserLimit, error) {
	out := make([]clubsetup.ExtrasUserLimit, 0, len(limits))
	defaults := clubsetup.ExtrasUserLimit{
		UserType:  clubsetup.UserTypeDefault,
		LimitType: limitType,
	}
	for _, limit := range limits {
		if err := mergo.Merge(&limit, defaults); err != nil {
			return nil, apperr.Validation("Invalid extras limit: %v", err)
		}
		if limit.LimitValue < 0 {
			return nil, apperr.Validation("Extras limit value must not be negative")
		}
		out = append(out, limit)
	}
	return out, nil
}
