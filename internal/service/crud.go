package service

import (
	"context"
	"encoding/json"

	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"

	clubsetup "github.com/goliatone/go-club-setup"
	"github.com/goliatone/go-club-setup/internal/apperr"
	"github.com/goliatone/go-club-setup/internal/events"
	"github.com/goliatone/go-club-setup/internal/filter"
	"github.com/goliatone/go-club-setup/internal/logging"
	"github.com/goliatone/go-club-setup/internal/store"
)

// Patch is a partial update keyed by JSON field name. Only the keys present
// are written to the record.
type Patch map[string]any

var immutableKeys = []string{"id", "createdAt", "updatedAt"}

// Apply writes the patch onto target, which must be a pointer to a model.
func (p Patch) Apply(target any) error {
	clean := p.Without(immutableKeys...)
	if len(clean) == 0 {
		return nil
	}
	raw, err := json.Marshal(clean)
	if err != nil {
		return apperr.Validation("Invalid input: %v", err)
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return apperr.Validation("Invalid input: %v", err)
	}
	return nil
}

// Without returns a copy of the patch minus keys.
func (p Patch) Without(keys ...string) Patch {
	out := make(Patch, len(p))
	for k, v := range p {
		out[k] = v
	}
	for _, key := range keys {
		delete(out, key)
	}
	return out
}

// Decode builds a new record from input.
func Decode[T any](input map[string]any) (*T, error) {
	record := new(T)
	if err := Patch(input).Apply(record); err != nil {
		return nil, err
	}
	return record, nil
}

// crudService holds the lookups and writes every entity service shares.
type crudService[T any] struct {
	store   store.Store[T]
	entity  string
	label   string
	alias   string
	id      func(T) *uuid.UUID
	logger  logging.Logger
	emitter events.Emitter
}

func newCRUD[T any](s store.Store[T], entity, label, alias string, id func(T) *uuid.UUID, o options) crudService[T] {
	return crudService[T]{
		store:   s,
		entity:  entity,
		label:   label,
		alias:   alias,
		id:      id,
		logger:  o.logger,
		emitter: o.emitter,
	}
}

func (s *crudService[T]) log(ctx context.Context, operation string, fields logging.Fields) logging.Logger {
	all := logging.Fields{
		"entity":    s.entity,
		"operation": operation,
	}
	for k, v := range fields {
		all[k] = v
	}
	return logging.FromContext(ctx, s.logger).WithFields(all)
}

func (s *crudService[T]) get(ctx context.Context, id uuid.UUID, criteria ...repository.SelectCriteria) (T, error) {
	record, err := s.store.GetByID(ctx, id, criteria...)
	if err != nil {
		var zero T
		if apperr.IsNotFound(err) {
			return zero, apperr.NotFound("%s with ID %s not found", s.label, id)
		}
		s.log(ctx, "get", logging.Fields{"id": id.String()}).Error("failed to load %s: %v", s.entity, err)
		return zero, err
	}
	return record, nil
}

// first returns the first match or notFound.
func (s *crudService[T]) first(ctx context.Context, notFound error, criteria ...repository.SelectCriteria) (T, error) {
	record, err := s.store.Get(ctx, criteria...)
	if err != nil {
		var zero T
		if apperr.IsNotFound(err) {
			return zero, notFound
		}
		s.log(ctx, "get", nil).Error("failed to load %s: %v", s.entity, err)
		return zero, err
	}
	return record, nil
}

// list returns matches newest first.
func (s *crudService[T]) list(ctx context.Context, criteria ...repository.SelectCriteria) ([]T, error) {
	criteria = append(criteria, s.newestFirst)
	records, err := s.store.Select(ctx, criteria...)
	if err != nil {
		s.log(ctx, "list", nil).Error("failed to list %s: %v", s.entity, err)
		return nil, err
	}
	return records, nil
}

func (s *crudService[T]) count(ctx context.Context, criteria ...repository.SelectCriteria) (int, error) {
	total, err := s.store.Count(ctx, criteria...)
	if err != nil {
		s.log(ctx, "count", nil).Error("failed to count %s: %v", s.entity, err)
		return 0, err
	}
	return total, nil
}

func (s *crudService[T]) create(ctx context.Context, record T) (T, error) {
	if id := s.id(record); *id == uuid.Nil {
		*id = uuid.New()
	}
	created, err := s.store.Create(ctx, record)
	if err != nil {
		var zero T
		s.log(ctx, "create", nil).Error("failed to create %s: %v", s.entity, err)
		return zero, err
	}
	s.log(ctx, "create", logging.Fields{"id": s.id(created).String()}).Debug("%s created", s.entity)
	return created, nil
}

func (s *crudService[T]) save(ctx context.Context, record T) (T, error) {
	saved, err := s.store.Update(ctx, record)
	if err != nil {
		var zero T
		s.log(ctx, "update", logging.Fields{"id": s.id(record).String()}).Error("failed to update %s: %v", s.entity, err)
		return zero, err
	}
	return saved, nil
}

// update loads the record, applies the patch and runs checks before saving.
func (s *crudService[T]) update(ctx context.Context, id uuid.UUID, patch Patch, checks ...func(T) error) (T, error) {
	var zero T
	record, err := s.get(ctx, id)
	if err != nil {
		return zero, err
	}
	return s.applyAndSave(ctx, record, patch, checks...)
}

func (s *crudService[T]) applyAndSave(ctx context.Context, record T, patch Patch, checks ...func(T) error) (T, error) {
	var zero T
	id := *s.id(record)
	if err := patch.Apply(record); err != nil {
		return zero, err
	}
	*s.id(record) = id
	for _, check := range checks {
		if err := check(record); err != nil {
			return zero, err
		}
	}
	return s.save(ctx, record)
}

func (s *crudService[T]) delete(ctx context.Context, record T) error {
	if err := s.store.Delete(ctx, record); err != nil {
		s.log(ctx, "delete", logging.Fields{"id": s.id(record).String()}).Error("failed to delete %s: %v", s.entity, err)
		return err
	}
	return nil
}

// remove deletes by id and returns the confirmation message.
func (s *crudService[T]) remove(ctx context.Context, id uuid.UUID) (string, error) {
	record, err := s.get(ctx, id)
	if err != nil {
		return "", err
	}
	if err := s.delete(ctx, record); err != nil {
		return "", err
	}
	return s.deleted(), nil
}

func (s *crudService[T]) deleted() string {
	return s.label + " deleted successfully"
}

// track reports a wizard step for clubID.
func (s *crudService[T]) track(ctx context.Context, typ events.EventType, clubID uuid.UUID, step clubsetup.SetupStep) error {
	if err := s.emitter.Emit(ctx, events.NewStepEvent(typ, clubID, step, s.entity)); err != nil {
		s.log(ctx, "track", logging.Fields{
			"club_id": clubID.String(),
			"step":    string(step),
		}).Error("failed to record setup step: %v", err)
		return err
	}
	return nil
}

func (s *crudService[T]) column(name string) string {
	return filter.Column(s.alias, name)
}

func (s *crudService[T]) newestFirst(q *bun.SelectQuery) *bun.SelectQuery {
	return q.OrderExpr(s.column("created_at") + " DESC")
}

func (s *crudService[T]) where(column string, value any) repository.SelectCriteria {
	return filter.Equals(column)(s.alias, value)
}

func (s *crudService[T]) byClub(clubID uuid.UUID) repository.SelectCriteria {
	return s.where("club_id", clubID)
}

// inClub scopes to clubID when given.
func (s *crudService[T]) inClub(clubID *uuid.UUID) []repository.SelectCriteria {
	if clubID == nil {
		return nil
	}
	return []repository.SelectCriteria{s.byClub(*clubID)}
}

func (s *crudService[T]) limit(n int) repository.SelectCriteria {
	return func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Limit(n)
	}
}

func withRelations(names ...string) repository.SelectCriteria {
	return func(q *bun.SelectQuery) *bun.SelectQuery {
		for _, name := range names {
			q = q.Relation(name)
		}
		return q
	}
}

// overlaps matches array columns sharing any element with values.
func overlaps(alias, column string, values any) repository.SelectCriteria {
	p := filter.Predicate{Kind: filter.KindArray, Column: column, Value: values, ArrayColumn: true}
	return func(q *bun.SelectQuery) *bun.SelectQuery {
		return p.Apply(q, alias)
	}
}

func ilikeAny(alias, term string, columns ...string) repository.SelectCriteria {
	pattern := "%" + term + "%"
	return func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.WhereGroup(" AND ", func(g *bun.SelectQuery) *bun.SelectQuery {
			for _, column := range columns {
				g = g.WhereOr(filter.Column(alias, column)+" ILIKE ?", pattern)
			}
			return g
		})
	}
}

func requireClub(clubID uuid.UUID) error {
	if clubID == uuid.Nil {
		return apperr.Validation("clubId is required")
	}
	return nil
}

// toFilterMap flattens a typed filter into the form BuildCriteria reads.
func toFilterMap(v any) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, apperr.Validation("Invalid filter: %v", err)
	}
	out := map[string]any{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, apperr.Validation("Invalid filter: %v", err)
	}
	return out, nil
}
