package store

import (
	"context"
	"fmt"
	"time"

	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"

	clubsetup "github.com/goliatone/go-club-setup"
	"github.com/goliatone/go-club-setup/internal/apperr"
)

// Store is the persistence port the services depend on.
type Store[T any] interface {
	Create(ctx context.Context, record T) (T, error)
	Update(ctx context.Context, record T, criteria ...repository.UpdateCriteria) (T, error)
	Delete(ctx context.Context, record T) error
	GetByID(ctx context.Context, id uuid.UUID, criteria ...repository.SelectCriteria) (T, error)
	Get(ctx context.Context, criteria ...repository.SelectCriteria) (T, error)
	List(ctx context.Context, criteria ...repository.SelectCriteria) ([]T, int, error)
	Select(ctx context.Context, criteria ...repository.SelectCriteria) ([]T, error)
	Count(ctx context.Context, criteria ...repository.SelectCriteria) (int, error)
}

// RepositoryStore adapts a go-repository-bun repository to Store.
type RepositoryStore[T any] struct {
	repo   repository.Repository[T]
	entity string
}

// New wraps repo. entity names the record type in not found messages.
func New[T any](repo repository.Repository[T], entity string) *RepositoryStore[T] {
	return &RepositoryStore[T]{repo: repo, entity: entity}
}

func (s *RepositoryStore[T]) Repository() repository.Repository[T] { return s.repo }

func (s *RepositoryStore[T]) Create(ctx context.Context, record T) (T, error) {
	return s.repo.Create(ctx, record)
}

// Update refreshes updatedAt on Touchable records before writing.
func (s *RepositoryStore[T]) Update(ctx context.Context, record T, criteria ...repository.UpdateCriteria) (T, error) {
	if t, ok := any(record).(clubsetup.Touchable); ok {
		t.Touch(time.Now())
	}
	return s.repo.Update(ctx, record, criteria...)
}

func (s *RepositoryStore[T]) Delete(ctx context.Context, record T) error {
	return s.repo.Delete(ctx, record)
}

func (s *RepositoryStore[T]) GetByID(ctx context.Context, id uuid.UUID, criteria ...repository.SelectCriteria) (T, error) {
	record, err := s.repo.GetByID(ctx, id.String(), criteria...)
	if err != nil {
		var zero T
		if apperr.IsNotFound(err) {
			return zero, apperr.NotFound("%s with ID %s not found", s.entity, id)
		}
		return zero, err
	}
	return record, nil
}

func (s *RepositoryStore[T]) Get(ctx context.Context, criteria ...repository.SelectCriteria) (T, error) {
	record, err := s.repo.Get(ctx, criteria...)
	if err != nil {
		var zero T
		if apperr.IsNotFound(err) {
			return zero, apperr.NotFound("%s not found", s.entity)
		}
		return zero, err
	}
	return record, nil
}

func (s *RepositoryStore[T]) List(ctx context.Context, criteria ...repository.SelectCriteria) ([]T, int, error) {
	return s.repo.List(ctx, criteria...)
}

// Select returns every match. The repository pages List by default, so the
// limit is cleared before criteria run; a criteria limit still applies.
func (s *RepositoryStore[T]) Select(ctx context.Context, criteria ...repository.SelectCriteria) ([]T, error) {
	criteria = append([]repository.SelectCriteria{unbounded}, criteria...)
	records, _, err := s.repo.List(ctx, criteria...)
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", s.entity, err)
	}
	return records, nil
}

func unbounded(q *bun.SelectQuery) *bun.SelectQuery {
	return q.Limit(0).Offset(0)
}

func (s *RepositoryStore[T]) Count(ctx context.Context, criteria ...repository.SelectCriteria) (int, error) {
	return s.repo.Count(ctx, criteria...)
}
