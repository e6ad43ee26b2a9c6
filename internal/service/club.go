package service

import (
	"context"
	"strings"

	"github.com/ettle/strcase"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"

	clubsetup "github.com/goliatone/go-club-setup"
	"github.com/goliatone/go-club-setup/internal/apperr"
	"github.com/goliatone/go-club-setup/internal/filter"
	"github.com/goliatone/go-club-setup/internal/logging"
	"github.com/goliatone/go-club-setup/internal/setup"
	"github.com/goliatone/go-club-setup/internal/storage"
	"github.com/goliatone/go-club-setup/internal/store"
)

const clubAlias = "club"

var clubFlags = []string{
	"isPartOfChain",
	"enableOnlineBookings",
	"enableClassBookings",
	"enableOpenMatches",
	"enableAcademyManagement",
	"enableEventManagement",
	"enableLeagueTournamentManagement",
	"onlinePayment",
	"onsitePayment",
	"byInvoice",
}

// ClubFields drives the declarative club filter.
var ClubFields = filter.NewFieldConfigs(filter.Spec{
	Partial: []string{"title", "description"},
	Exact:   []string{"id", "typeOfClub", "chainId", "currency", "setupStatus", "currentStep"},
	Array:   []string{"sports", "additionalServices", "completedSteps"},
	Boolean: clubFlags,
}).
	WithArrayColumn("sports").
	WithArrayColumn("additionalServices").
	WithArrayColumn("completedSteps")

// ClubRelationFilters resolve filter keys that point at child records.
var ClubRelationFilters = filter.RelationHandlers{
	"clubId":                 filter.Equals("id"),
	"amenityId":              filter.ChildExists("amenity", "id"),
	"locationContactId":      filter.ChildExists("location_contact", "id"),
	"workingHoursCalendarId": filter.ChildExists("working_hours", "id"),
	"resourceIds":            filter.ChildExists("resource", "id"),
	"coachId":                filter.ChildExists("coach", "id"),
}

// ClubQuery is the allow-list used by the field/operator search.
var ClubQuery = filter.SecureQuery{
	Alias:     clubAlias,
	Fields:    clubAllowList(),
	Relations: clubsetup.ClubRelations,
}

func clubAllowList() filter.AllowList {
	fields := filter.AllowList{}
	add := func(class filter.Class, names ...string) {
		for _, name := range names {
			fields[name] = filter.AllowedField{Column: strcase.ToSnake(name), Class: class}
		}
	}
	add(filter.ClassScalar, "id", "title", "description", "typeOfClub", "chainId", "currency")
	add(filter.ClassArray, "sports", "additionalServices")
	add(filter.ClassScalar, clubFlags...)
	add(filter.ClassDate, "createdAt", "updatedAt")
	return fields
}

var trackingKeys = []string{"setupStatus", "currentStep", "completedSteps", "lastSavedAt"}

// CreateClubInput carries a new club plus the files to upload for it.
type CreateClubInput struct {
	Club          *clubsetup.Club
	Logo          *storage.FileUploadInput
	GalleryImages []storage.FileUploadInput
}

type UpdateClubInput struct {
	Patch         Patch
	Logo          *storage.FileUploadInput
	GalleryImages []storage.FileUploadInput
}

type ClubService struct {
	crud     crudService[*clubsetup.Club]
	tracker  *setup.Tracker
	uploader storage.Uploader
}

func NewClubService(clubs store.Store[*clubsetup.Club], tracker *setup.Tracker, uploader storage.Uploader, opts ...Option) *ClubService {
	if uploader == nil {
		uploader = storage.Disabled{}
	}
	return &ClubService{
		crud:     newCRUD(clubs, "club", "Club", clubAlias, func(c *clubsetup.Club) *uuid.UUID { return &c.ID }, buildOptions(opts)),
		tracker:  tracker,
		uploader: uploader,
	}
}

// Create uploads the club assets and starts a draft setup session.
func (s *ClubService) Create(ctx context.Context, input CreateClubInput) (*clubsetup.Club, error) {
	club := input.Club
	if club == nil {
		club = &clubsetup.Club{}
	}
	if strings.TrimSpace(club.Title) == "" {
		return nil, apperr.Validation("Club title is required")
	}

	if err := s.attachAssets(ctx, club, input.Logo, input.GalleryImages); err != nil {
		return nil, err
	}

	s.tracker.InitialState().Apply(club)
	return s.crud.create(ctx, club)
}

// Get loads the club with its location, calendar, resources and amenity.
func (s *ClubService) Get(ctx context.Context, id uuid.UUID) (*clubsetup.Club, error) {
	return s.crud.get(ctx, id, withRelations("LocationContact", "WorkingHoursCalendar", "Resources", "Amenity"))
}

// FindAll filters clubs with the declarative mapper. Every relation is loaded
// unless relations names a subset.
func (s *ClubService) FindAll(ctx context.Context, where map[string]any, relations []string) ([]*clubsetup.Club, error) {
	if len(relations) == 0 {
		relations = clubsetup.DefaultClubRelations
	}
	load, err := clubRelations(relations)
	if err != nil {
		return nil, err
	}

	s.crud.log(ctx, "find_all", logging.Fields{"filter": where}).Debug("filtering clubs")

	criteria := filter.BuildCriteria(clubAlias, where, ClubFields, ClubRelationFilters)
	criteria = append(criteria, withRelations(load...))
	return s.crud.list(ctx, criteria...)
}

func (s *ClubService) GetLocation(ctx context.Context, id uuid.UUID) (*clubsetup.Club, error) {
	return s.crud.get(ctx, id, withRelations("LocationContact"))
}

func (s *ClubService) GetResources(ctx context.Context, id uuid.UUID) (*clubsetup.Club, error) {
	return s.crud.get(ctx, id, withRelations("Resources"))
}

// Search runs the allow-listed field search and fails when nothing matches.
func (s *ClubService) Search(ctx context.Context, filters []filter.FieldFilter, relations []string) ([]*clubsetup.Club, error) {
	clubs, err := s.FindWithSecureQuery(ctx, filters, relations)
	if err != nil {
		return nil, err
	}
	if len(clubs) == 0 {
		return nil, apperr.NotFound("No clubs found")
	}
	return clubs, nil
}

func (s *ClubService) FindWithSecureQuery(ctx context.Context, filters []filter.FieldFilter, relations []string) ([]*clubsetup.Club, error) {
	criteria, err := s.secureCriteria(ctx, filters, relations)
	if err != nil {
		return nil, err
	}
	clubs, err := s.crud.store.Select(ctx, criteria...)
	if err != nil {
		s.crud.log(ctx, "secure_query", logging.Fields{"filters": filters}).Error("failed to find clubs: %v", err)
		return nil, err
	}
	return clubs, nil
}

func (s *ClubService) CountWithSecureQuery(ctx context.Context, filters []filter.FieldFilter) (int, error) {
	criteria, err := s.secureCriteria(ctx, filters, nil)
	if err != nil {
		return 0, err
	}
	return s.crud.count(ctx, criteria...)
}

func (s *ClubService) GetByMultipleFields(ctx context.Context, filters []filter.FieldFilter, relations []string) ([]*clubsetup.Club, error) {
	return s.FindWithSecureQuery(ctx, filters, relations)
}

func (s *ClubService) GetOneByMultipleFields(ctx context.Context, filters []filter.FieldFilter, relations []string) (*clubsetup.Club, error) {
	clubs, err := s.FindWithSecureQuery(ctx, filters, relations)
	if err != nil {
		return nil, err
	}
	if len(clubs) == 0 {
		return nil, apperr.NotFound("Club not found")
	}
	return clubs[0], nil
}

// GetByFieldValue matches a single allow-listed field for equality.
func (s *ClubService) GetByFieldValue(ctx context.Context, field string, value any, relations []string) (*clubsetup.Club, error) {
	return s.GetOneByMultipleFields(ctx, []filter.FieldFilter{{
		Field:    field,
		Value:    value,
		Operator: string(filter.OpEquals),
	}}, relations)
}

// Update merges the patch and any uploaded assets. Tracking fields are owned
// by the tracker and ignored here. Uploaded files win over URLs in the patch.
func (s *ClubService) Update(ctx context.Context, id uuid.UUID, input UpdateClubInput) (*clubsetup.Club, error) {
	club, err := s.crud.get(ctx, id)
	if err != nil {
		return nil, err
	}
	patch := input.Patch.Without(trackingKeys...)
	if input.Logo != nil {
		patch = patch.Without("logo")
	}
	if len(input.GalleryImages) > 0 {
		patch = patch.Without("galleryImages")
	}
	if err := s.attachAssets(ctx, club, input.Logo, input.GalleryImages); err != nil {
		return nil, err
	}
	return s.crud.applyAndSave(ctx, club, patch)
}

func (s *ClubService) Delete(ctx context.Context, id uuid.UUID) (string, error) {
	return s.crud.remove(ctx, id)
}

func (s *ClubService) BySetupStatus(ctx context.Context, status clubsetup.SetupStatus) ([]*clubsetup.Club, error) {
	if !status.Valid() {
		return nil, apperr.Validation("Invalid setup status: %s", status)
	}
	return s.crud.list(ctx, s.crud.where("setup_status", status))
}

func (s *ClubService) CompleteClubSetup(ctx context.Context, input setup.CompleteInput) (*clubsetup.Club, error) {
	return s.tracker.CompleteClubSetup(ctx, input)
}

func (s *ClubService) AbandonClubSetup(ctx context.Context, clubID uuid.UUID) (*clubsetup.Club, error) {
	return s.tracker.AbandonClubSetup(ctx, clubID)
}

func (s *ClubService) secureCriteria(ctx context.Context, filters []filter.FieldFilter, relations []string) ([]repository.SelectCriteria, error) {
	criteria, err := ClubQuery.Build(filters, relations)
	if err != nil {
		s.crud.log(ctx, "secure_query", logging.Fields{"filters": filters}).Warn("rejected club query: %v", err)
		return nil, err
	}
	return criteria, nil
}

func (s *ClubService) attachAssets(ctx context.Context, club *clubsetup.Club, logo *storage.FileUploadInput, gallery []storage.FileUploadInput) error {
	if logo != nil {
		location, err := s.upload(ctx, *logo)
		if err != nil {
			return err
		}
		club.Logo = &location
	}

	if len(gallery) == 0 {
		return nil
	}
	images := make([]string, 0, len(gallery))
	for _, image := range gallery {
		location, err := s.upload(ctx, image)
		if err != nil {
			return err
		}
		images = append(images, location)
	}
	club.GalleryImages = images
	return nil
}

func (s *ClubService) upload(ctx context.Context, input storage.FileUploadInput) (string, error) {
	file, err := input.Decode()
	if err != nil {
		return "", err
	}
	result, err := s.uploader.UploadFile(ctx, file)
	if err != nil {
		s.crud.log(ctx, "upload", logging.Fields{"filename": input.Filename}).Error("failed to upload club asset: %v", err)
		return "", err
	}
	return result.Location, nil
}

func clubRelations(names []string) ([]string, error) {
	out := make([]string, 0, len(names))
	for _, name := range names {
		rel, ok := clubsetup.ClubRelations[name]
		if !ok {
			return nil, apperr.Validation("Invalid relation: %s", name)
		}
		out = append(out, rel)
	}
	return out, nil
}
