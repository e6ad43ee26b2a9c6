package service

import (
	"context"

	"github.com/google/uuid"

	clubsetup "github.com/goliatone/go-club-setup"
	"github.com/goliatone/go-club-setup/internal/apperr"
	"github.com/goliatone/go-club-setup/internal/events"
	"github.com/goliatone/go-club-setup/internal/store"
)

type AmenityService struct {
	crud crudService[*clubsetup.Amenity]
}

func NewAmenityService(amenities store.Store[*clubsetup.Amenity], opts ...Option) *AmenityService {
	return &AmenityService{
		crud: newCRUD(amenities, "amenity", "Amenity", "am",
			func(a *clubsetup.Amenity) *uuid.UUID { return &a.ID }, buildOptions(opts)),
	}
}

func (s *AmenityService) Create(ctx context.Context, amenity *clubsetup.Amenity) (*clubsetup.Amenity, error) {
	if err := requireClub(amenity.ClubID); err != nil {
		return nil, err
	}
	created, err := s.crud.create(ctx, amenity)
	if err != nil {
		return nil, err
	}
	if err := s.crud.track(ctx, events.StepCompleted, created.ClubID, clubsetup.StepAmenities); err != nil {
		return nil, err
	}
	return created, nil
}

func (s *AmenityService) List(ctx context.Context) ([]*clubsetup.Amenity, error) {
	return s.crud.list(ctx)
}

func (s *AmenityService) Get(ctx context.Context, id uuid.UUID) (*clubsetup.Amenity, error) {
	return s.crud.get(ctx, id)
}

func (s *AmenityService) GetByClubID(ctx context.Context, clubID uuid.UUID) (*clubsetup.Amenity, error) {
	return s.crud.first(ctx,
		apperr.NotFound("Amenity not found for club with ID: %s", clubID),
		s.crud.byClub(clubID),
	)
}

func (s *AmenityService) Update(ctx context.Context, id uuid.UUID, patch Patch) (*clubsetup.Amenity, error) {
	return s.crud.update(ctx, id, patch)
}

func (s *AmenityService) UpdateByClubID(ctx context.Context, clubID uuid.UUID, patch Patch) (*clubsetup.Amenity, error) {
	amenity, err := s.GetByClubID(ctx, clubID)
	if err != nil {
		return nil, err
	}
	return s.crud.applyAndSave(ctx, amenity, patch.Without("clubId"))
}

func (s *AmenityService) Delete(ctx context.Context, id uuid.UUID) (string, error) {
	return s.crud.remove(ctx, id)
}

func (s *AmenityService) DeleteByClubID(ctx context.Context, clubID uuid.UUID) (string, error) {
	amenity, err := s.GetByClubID(ctx, clubID)
	if err != nil {
		return "", err
	}
	if err := s.crud.delete(ctx, amenity); err != nil {
		return "", err
	}
	return s.crud.deleted(), nil
}
