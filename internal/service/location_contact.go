package service

import (
	"context"

	"github.com/google/uuid"

	clubsetup "github.com/goliatone/go-club-setup"
	"github.com/goliatone/go-club-setup/internal/apperr"
	"github.com/goliatone/go-club-setup/internal/events"
	"github.com/goliatone/go-club-setup/internal/store"
)

// LocationContactService manages the single address/contact record of a club.
type LocationContactService struct {
	crud crudService[*clubsetup.LocationContact]
}

func NewLocationContactService(contacts store.Store[*clubsetup.LocationContact], opts ...Option) *LocationContactService {
	return &LocationContactService{
		crud: newCRUD(contacts, "location_contact", "Location contact", "lc",
			func(l *clubsetup.LocationContact) *uuid.UUID { return &l.ID }, buildOptions(opts)),
	}
}

func (s *LocationContactService) GetByClubID(ctx context.Context, clubID uuid.UUID) (*clubsetup.LocationContact, error) {
	return s.crud.first(ctx,
		apperr.NotFound("Location contact for club %s not found", clubID),
		s.crud.byClub(clubID),
	)
}

// Create stores the contact and completes the location_contact step.
func (s *LocationContactService) Create(ctx context.Context, contact *clubsetup.LocationContact) (*clubsetup.LocationContact, error) {
	if err := requireClub(contact.ClubID); err != nil {
		return nil, err
	}
	created, err := s.crud.create(ctx, contact)
	if err != nil {
		return nil, err
	}
	if err := s.crud.track(ctx, events.StepCompleted, created.ClubID, clubsetup.StepLocationContact); err != nil {
		return nil, err
	}
	return created, nil
}

// UpdateByClubID merges the patch, creating the contact when the club has none.
func (s *LocationContactService) UpdateByClubID(ctx context.Context, clubID uuid.UUID, patch Patch) (*clubsetup.LocationContact, error) {
	contact, err := s.GetByClubID(ctx, clubID)
	if apperr.IsNotFound(err) {
		contact = &clubsetup.LocationContact{}
		if err := patch.Apply(contact); err != nil {
			return nil, err
		}
		contact.ClubID = clubID
		return s.Create(ctx, contact)
	}
	if err != nil {
		return nil, err
	}
	return s.crud.applyAndSave(ctx, contact, patch.Without("clubId"))
}

func (s *LocationContactService) DeleteByClubID(ctx context.Context, clubID uuid.UUID) (string, error) {
	contact, err := s.GetByClubID(ctx, clubID)
	if err != nil {
		return "", err
	}
	if err := s.crud.delete(ctx, contact); err != nil {
		return "", err
	}
	return s.crud.deleted(), nil
}
