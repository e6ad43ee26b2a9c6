package service

import (
	"context"

	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"

	clubsetup "github.com/goliatone/go-club-setup"
	"github.com/goliatone/go-club-setup/internal/apperr"
	"github.com/goliatone/go-club-setup/internal/events"
	"github.com/goliatone/go-club-setup/internal/filter"
	"github.com/goliatone/go-club-setup/internal/logging"
	"github.com/goliatone/go-club-setup/internal/store"
)

const (
	teamMemberAlias = "tm"
	nameSearchLimit = 20
)

var teamMemberSortable = filter.Sortable{
	"name":      "name",
	"surname":   "surname",
	"email":     "email",
	"position":  "position",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
	"status":    "status",
}

var teamMemberFields = filter.NewFieldConfigs(filter.Spec{
	Partial: []string{"name", "surname", "email", "phone", "country", "position"},
	Exact:   []string{"gender", "club_owner", "clubId"},
}).
	WithColumn("statuses", "status", filter.KindArray).
	WithArrayColumn("permissions")

type TeamMemberFilter struct {
	Name        *string                  `json:"name,omitempty"`
	Surname     *string                  `json:"surname,omitempty"`
	Email       *string                  `json:"email,omitempty"`
	Phone       *string                  `json:"phone,omitempty"`
	Country     *string                  `json:"country,omitempty"`
	Position    *string                  `json:"position,omitempty"`
	Statuses    []clubsetup.MemberStatus `json:"statuses,omitempty"`
	Gender      *clubsetup.Gender        `json:"gender,omitempty"`
	Permissions []clubsetup.Permission   `json:"permissions,omitempty"`
	ClubOwner   *clubsetup.ClubOwnerType `json:"club_owner,omitempty"`
	ClubID      *uuid.UUID               `json:"clubId,omitempty"`
	SearchText  *string                  `json:"searchText,omitempty"`
	CreatedAt   *filter.DateRange        `json:"createdAt,omitempty"`
	UpdatedAt   *filter.DateRange        `json:"updatedAt,omitempty"`
}

type TeamMemberQuery struct {
	Filters    *TeamMemberFilter  `json:"filters,omitempty"`
	Sort       []filter.Sort      `json:"sort,omitempty"`
	Pagination *filter.Pagination `json:"pagination,omitempty"`
}

// TeamMemberSearchResult is one page of an advanced search.
type TeamMemberSearchResult struct {
	TeamMembers []*clubsetup.TeamMember `json:"teamMembers"`
	Total       int                     `json:"total"`
	Page        int                     `json:"page"`
	Limit       int                     `json:"limit"`
	TotalPages  int                     `json:"totalPages"`
}

type TeamMemberService struct {
	crud crudService[*clubsetup.TeamMember]
}

func NewTeamMemberService(members store.Store[*clubsetup.TeamMember], opts ...Option) *TeamMemberService {
	return &TeamMemberService{
		crud: newCRUD(members, "team_member", "Team member", teamMemberAlias,
			func(t *clubsetup.TeamMember) *uuid.UUID { return &t.ID }, buildOptions(opts)),
	}
}

// Create stores the member and completes the club setup. Every creation
// reports completion, not only the first.
func (s *TeamMemberService) Create(ctx context.Context, member *clubsetup.TeamMember) (*clubsetup.TeamMember, error) {
	if err := requireClub(member.ClubID); err != nil {
		return nil, err
	}
	if err := prepareTeamMember(member); err != nil {
		return nil, err
	}
	created, err := s.crud.create(ctx, member)
	if err != nil {
		return nil, err
	}
	if err := s.crud.track(ctx, events.SetupCompleted, created.ClubID, clubsetup.StepTeamMembers); err != nil {
		return nil, err
	}
	return created, nil
}

func (s *TeamMemberService) List(ctx context.Context, clubID *uuid.UUID) ([]*clubsetup.TeamMember, error) {
	return s.crud.list(ctx, s.crud.inClub(clubID)...)
}

func (s *TeamMemberService) Get(ctx context.Context, id uuid.UUID) (*clubsetup.TeamMember, error) {
	return s.crud.get(ctx, id)
}

func (s *TeamMemberService) ByClub(ctx context.Context, clubID uuid.UUID) ([]*clubsetup.TeamMember, error) {
	return s.crud.list(ctx, s.crud.byClub(clubID))
}

func (s *TeamMemberService) ByStatus(ctx context.Context, status clubsetup.MemberStatus, clubID *uuid.UUID) ([]*clubsetup.TeamMember, error) {
	if !status.Valid() {
		return nil, apperr.Validation("Invalid team member status: %s", status)
	}
	return s.crud.list(ctx, append(s.crud.inClub(clubID), s.crud.where("status", status))...)
}

// ByPosition matches position case-insensitively as a substring.
func (s *TeamMemberService) ByPosition(ctx context.Context, position string, clubID *uuid.UUID) ([]*clubsetup.TeamMember, error) {
	return s.crud.list(ctx, append(s.crud.inClub(clubID), ilikeAny(teamMemberAlias, position, "position"))...)
}

// ByPermissions returns members holding any of permissions.
func (s *TeamMemberService) ByPermissions(ctx context.Context, permissions []clubsetup.Permission, clubID *uuid.UUID) ([]*clubsetup.TeamMember, error) {
	if err := validatePermissions(permissions); err != nil {
		return nil, err
	}
	return s.crud.list(ctx, append(s.crud.inClub(clubID), overlaps(teamMemberAlias, "permissions", permissions))...)
}

// Search runs the advanced filter, sort and pagination query.
func (s *TeamMemberService) Search(ctx context.Context, query TeamMemberQuery) (TeamMemberSearchResult, error) {
	criteria, err := s.filterCriteria(query.Filters)
	if err != nil {
		return TeamMemberSearchResult{}, err
	}
	order, err := filter.OrderCriteria(teamMemberAlias, query.Sort, teamMemberSortable)
	if err != nil {
		return TeamMemberSearchResult{}, err
	}
	page := query.Pagination.Normalize(filter.DefaultTake)
	criteria = append(criteria, order, page.Criteria())

	members, total, err := s.crud.store.List(ctx, criteria...)
	if err != nil {
		s.crud.log(ctx, "search", logging.Fields{"skip": page.Skip, "take": page.Take}).Error("failed to search team members: %v", err)
		return TeamMemberSearchResult{}, err
	}
	meta := filter.PageOf(total, page.Skip, page.Take)
	return TeamMemberSearchResult{
		TeamMembers: members,
		Total:       meta.Total,
		Page:        meta.Page,
		Limit:       meta.Limit,
		TotalPages:  meta.TotalPages,
	}, nil
}

// SearchByName matches term against name, surname and email.
func (s *TeamMemberService) SearchByName(ctx context.Context, term string, limit int, clubID *uuid.UUID) ([]*clubsetup.TeamMember, error) {
	if limit <= 0 {
		limit = nameSearchLimit
	}
	criteria := append(s.crud.inClub(clubID),
		ilikeAny(teamMemberAlias, term, "name", "surname", "email"),
		s.crud.limit(limit))
	return s.crud.list(ctx, criteria...)
}

func (s *TeamMemberService) Count(ctx context.Context, status *clubsetup.MemberStatus, clubID *uuid.UUID) (int, error) {
	criteria := s.crud.inClub(clubID)
	if status != nil {
		criteria = append(criteria, s.crud.where("status", *status))
	}
	return s.crud.count(ctx, criteria...)
}

func (s *TeamMemberService) Update(ctx context.Context, id uuid.UUID, patch Patch) (*clubsetup.TeamMember, error) {
	return s.crud.update(ctx, id, patch, prepareTeamMember)
}

func (s *TeamMemberService) Delete(ctx context.Context, id uuid.UUID) (string, error) {
	return s.crud.remove(ctx, id)
}

func (s *TeamMemberService) UpdateStatus(ctx context.Context, id uuid.UUID, status clubsetup.MemberStatus) (*clubsetup.TeamMember, error) {
	return s.modify(ctx, id, func(t *clubsetup.TeamMember) { t.Status = status })
}

// UpdatePermissions replaces the permission set.
func (s *TeamMemberService) UpdatePermissions(ctx context.Context, id uuid.UUID, permissions []clubsetup.Permission) (*clubsetup.TeamMember, error) {
	return s.modify(ctx, id, func(t *clubsetup.TeamMember) { t.Permissions = permissions })
}

func (s *TeamMemberService) AddPermission(ctx context.Context, id uuid.UUID, permission clubsetup.Permission) (*clubsetup.TeamMember, error) {
	return s.modify(ctx, id, func(t *clubsetup.TeamMember) { t.AddPermission(permission) })
}

func (s *TeamMemberService) RemovePermission(ctx context.Context, id uuid.UUID, permission clubsetup.Permission) (*clubsetup.TeamMember, error) {
	return s.modify(ctx, id, func(t *clubsetup.TeamMember) { t.RemovePermission(permission) })
}

// BulkUpdateStatus updates ids in order and stops at the first failure.
// Members updated before the failure keep their new status.
func (s *TeamMemberService) BulkUpdateStatus(ctx context.Context, ids []uuid.UUID, status clubsetup.MemberStatus) ([]*clubsetup.TeamMember, error) {
	updated := make([]*clubsetup.TeamMember, 0, len(ids))
	for _, id := range ids {
		member, err := s.UpdateStatus(ctx, id, status)
		if err != nil {
			return nil, err
		}
		updated = append(updated, member)
	}
	return updated, nil
}

// BulkDelete deletes ids in order and stops at the first failure.
func (s *TeamMemberService) BulkDelete(ctx context.Context, ids []uuid.UUID) (bool, error) {
	for _, id := range ids {
		if _, err := s.Delete(ctx, id); err != nil {
			return false, err
		}
	}
	return true, nil
}

func (s *TeamMemberService) modify(ctx context.Context, id uuid.UUID, change func(*clubsetup.TeamMember)) (*clubsetup.TeamMember, error) {
	member, err := s.crud.get(ctx, id)
	if err != nil {
		return nil, err
	}
	change(member)
	if err := prepareTeamMember(member); err != nil {
		return nil, err
	}
	return s.crud.save(ctx, member)
}

func (s *TeamMemberService) filterCriteria(filters *TeamMemberFilter) ([]repository.SelectCriteria, error) {
	if filters == nil {
		return nil, nil
	}
	values, err := toFilterMap(filters)
	if err != nil {
		return nil, err
	}
	criteria := filter.BuildCriteria(teamMemberAlias, values, teamMemberFields, nil)
	if filters.SearchText != nil && *filters.SearchText != "" {
		criteria = append(criteria, ilikeAny(teamMemberAlias, *filters.SearchText, "name", "surname", "email", "position"))
	}
	if filters.CreatedAt != nil {
		criteria = append(criteria, filters.CreatedAt.Criteria(teamMemberAlias, "created_at"))
	}
	if filters.UpdatedAt != nil {
		criteria = append(criteria, filters.UpdatedAt.Criteria(teamMemberAlias, "updated_at"))
	}
	return criteria, nil
}

func prepareTeamMember(t *clubsetup.TeamMember) error {
	if t.Status == "" {
		t.Status = clubsetup.MemberActive
	}
	if !t.Status.Valid() {
		return apperr.Validation("Invalid team member status: %s", t.Status)
	}
	if t.Name == "" || t.Surname == "" || t.Email == "" {
		return apperr.Validation("Team member name, surname and email are required")
	}
	return validatePermissions(t.Permissions)
}

func validatePermissions(permissions []clubsetup.Permission) error {
	for _, p := range permissions {
		if !p.Valid() {
			return apperr.Validation("Invalid permission: %s", p)
		}
	}
	return nil
}
