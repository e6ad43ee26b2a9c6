// Package storetest provides an in-memory store for service tests.
package storetest

import (
	"context"
	"slices"
	"sync"
	"time"

	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"

	clubsetup "github.com/goliatone/go-club-setup"
	"github.com/goliatone/go-club-setup/internal/apperr"
)

// Memory keeps records in insertion order. Select criteria are recorded but
// not evaluated; Filter narrows list results when set.
type Memory[T any] struct {
	mu      sync.Mutex
	records []T
	id      func(T) *uuid.UUID

	// Filter, when set, decides which records List and Select return.
	Filter func(T) bool
	// Criteria holds the criteria passed to the last read.
	Criteria []repository.SelectCriteria
	// Updates holds the criteria passed to the last Update.
	Updates []repository.UpdateCriteria
	// Err, when set, is returned by every write.
	Err error
}

func NewMemory[T any](id func(T) *uuid.UUID, seed ...T) *Memory[T] {
	m := &Memory[T]{id: id}
	for _, record := range seed {
		if ptr := id(record); *ptr == uuid.Nil {
			*ptr = uuid.New()
		}
		m.records = append(m.records, record)
	}
	return m
}

func (m *Memory[T]) All() []T {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.records)
}

func (m *Memory[T]) Create(_ context.Context, record T) (T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		var zero T
		return zero, m.Err
	}
	if ptr := m.id(record); *ptr == uuid.Nil {
		*ptr = uuid.New()
	}
	m.records = append(m.records, record)
	return record, nil
}

func (m *Memory[T]) Update(_ context.Context, record T, criteria ...repository.UpdateCriteria) (T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Updates = criteria
	var zero T
	if m.Err != nil {
		return zero, m.Err
	}
	idx := m.indexOf(*m.id(record))
	if idx < 0 {
		return zero, apperr.NotFound("record %s not found", *m.id(record))
	}
	if t, ok := any(record).(clubsetup.Touchable); ok {
		t.Touch(time.Now())
	}
	m.records[idx] = record
	return record, nil
}

func (m *Memory[T]) Delete(_ context.Context, record T) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	idx := m.indexOf(*m.id(record))
	if idx < 0 {
		return apperr.NotFound("record %s not found", *m.id(record))
	}
	m.records = slices.Delete(m.records, idx, idx+1)
	return nil
}

func (m *Memory[T]) GetByID(_ context.Context, id uuid.UUID, criteria ...repository.SelectCriteria) (T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Criteria = criteria
	idx := m.indexOf(id)
	if idx < 0 {
		var zero T
		return zero, apperr.NotFound("record with ID %s not found", id)
	}
	return m.records[idx], nil
}

func (m *Memory[T]) Get(_ context.Context, criteria ...repository.SelectCriteria) (T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Criteria = criteria
	matches := m.filtered()
	if len(matches) == 0 {
		var zero T
		return zero, apperr.NotFound("record not found")
	}
	return matches[0], nil
}

func (m *Memory[T]) List(_ context.Context, criteria ...repository.SelectCriteria) ([]T, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Criteria = criteria
	matches := m.filtered()
	return matches, len(matches), nil
}

func (m *Memory[T]) Select(ctx context.Context, criteria ...repository.SelectCriteria) ([]T, error) {
	records, _, err := m.List(ctx, criteria...)
	return records, err
}

func (m *Memory[T]) Count(_ context.Context, criteria ...repository.SelectCriteria) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Criteria = criteria
	return len(m.filtered()), nil
}

func (m *Memory[T]) indexOf(id uuid.UUID) int {
	return slices.IndexFunc(m.records, func(record T) bool {
		return *m.id(record) == id
	})
}

func (m *Memory[T]) filtered() []T {
	if m.Filter == nil {
		return slices.Clone(m.records)
	}
	var out []T
	for _, record := range m.records {
		if m.Filter(record) {
			out = append(out, record)
		}
	}
	return out
}
