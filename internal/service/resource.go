package service

import (
	"context"

	"github.com/google/uuid"

	clubsetup "github.com/goliatone/go-club-setup"
	"github.com/goliatone/go-club-setup/internal/apperr"
	"github.com/goliatone/go-club-setup/internal/store"
)

// ResourceService manages courts, fields and rooms.
type ResourceService struct {
	*ChildService[*clubsetup.Resource]
}

func NewResourceService(resources store.Store[*clubsetup.Resource], opts ...Option) *ResourceService {
	crud := newCRUD(resources, "resource", "Resource", "res",
		func(r *clubsetup.Resource) *uuid.UUID { return &r.ID }, buildOptions(opts))
	return &ResourceService{
		ChildService: newChildService(crud, childConfig[*clubsetup.Resource]{
			clubID:  func(r *clubsetup.Resource) uuid.UUID { return r.ClubID },
			step:    clubsetup.StepResources,
			prepare: prepareResource,
		}),
	}
}

func (s *ResourceService) ByService(ctx context.Context, service clubsetup.ResourceService, clubID *uuid.UUID) ([]*clubsetup.Resource, error) {
	if !service.Valid() {
		return nil, apperr.Validation("Invalid resource service: %s", service)
	}
	criteria := append(s.crud.inClub(clubID), s.crud.where("service", service))
	return s.crud.list(ctx, criteria...)
}

func (s *ResourceService) ByStatus(ctx context.Context, status clubsetup.ResourceStatus, clubID *uuid.UUID) ([]*clubsetup.Resource, error) {
	if !status.Valid() {
		return nil, apperr.Validation("Invalid resource status: %s", status)
	}
	criteria := append(s.crud.inClub(clubID), s.crud.where("status", status))
	return s.crud.list(ctx, criteria...)
}

func prepareResource(r *clubsetup.Resource) error {
	if r.Status == "" {
		r.Status = clubsetup.ResourceStatusActive
	}
	if r.Title == "" {
		return apperr.Validation("Resource title is required")
	}
	return nil
}
