package service

import (
	"context"

	"github.com/google/uuid"

	clubsetup "github.com/goliatone/go-club-setup"
	"github.com/goliatone/go-club-setup/internal/events"
)

// childConfig describes a club-owned entity with plain CRUD.
type childConfig[T any] struct {
	clubID func(T) uuid.UUID
	// step is reported on create. Empty means creation is not a wizard step.
	step clubsetup.SetupStep
	// prepare validates and fills defaults before every write.
	prepare func(T) error
}

// ChildService is the CRUD shared by entities that belong to a club.
type ChildService[T any] struct {
	crud crudService[T]
	cfg  childConfig[T]
}

func newChildService[T any](crud crudService[T], cfg childConfig[T]) *ChildService[T] {
	if cfg.prepare == nil {
		cfg.prepare = func(T) error { return nil }
	}
	return &ChildService[T]{crud: crud, cfg: cfg}
}

// List returns every record, scoped to clubID when given.
func (s *ChildService[T]) List(ctx context.Context, clubID *uuid.UUID) ([]T, error) {
	return s.crud.list(ctx, s.crud.inClub(clubID)...)
}

func (s *ChildService[T]) ByClubID(ctx context.Context, clubID uuid.UUID) ([]T, error) {
	return s.List(ctx, &clubID)
}

func (s *ChildService[T]) Get(ctx context.Context, id uuid.UUID) (T, error) {
	return s.crud.get(ctx, id)
}

func (s *ChildService[T]) Create(ctx context.Context, record T) (T, error) {
	var zero T
	if err := requireClub(s.cfg.clubID(record)); err != nil {
		return zero, err
	}
	if err := s.cfg.prepare(record); err != nil {
		return zero, err
	}
	created, err := s.crud.create(ctx, record)
	if err != nil {
		return zero, err
	}
	if s.cfg.step == "" {
		return created, nil
	}
	if err := s.crud.track(ctx, events.StepCompleted, s.cfg.clubID(created), s.cfg.step); err != nil {
		return zero, err
	}
	return created, nil
}

func (s *ChildService[T]) Update(ctx context.Context, id uuid.UUID, patch Patch) (T, error) {
	return s.crud.update(ctx, id, patch, s.cfg.prepare)
}

func (s *ChildService[T]) Delete(ctx context.Context, id uuid.UUID) (string, error) {
	return s.crud.remove(ctx, id)
}
