// Package graph exposes the club setup services as a code-first GraphQL
// schema.
package graph

import (
	"github.com/graphql-go/graphql"

	"github.com/goliatone/go-club-setup/internal/logging"
	"github.com/goliatone/go-club-setup/internal/service"
)

// QueryField contributes one root query field.
type QueryField interface {
	Name() string
	Serve() *graphql.Field
}

// MutationField contributes one root mutation field.
type MutationField interface {
	Name() string
	Serve() *graphql.Field
}

// Field is a named root field. It satisfies both QueryField and
// MutationField.
type Field struct {
	name  string
	field *graphql.Field
}

func NewField(name string, field *graphql.Field) Field {
	return Field{name: name, field: field}
}

func (f Field) Name() string { return f.name }

func (f Field) Serve() *graphql.Field { return f.field }

// SchemaBuilder assembles root types from field providers.
type SchemaBuilder struct {
	queryFields    []QueryField
	mutationFields []MutationField
	types          []graphql.Type
}

func NewSchemaBuilder(queries []QueryField, mutations []MutationField, types ...graphql.Type) *SchemaBuilder {
	return &SchemaBuilder{
		queryFields:    queries,
		mutationFields: mutations,
		types:          types,
	}
}

func (sb *SchemaBuilder) Build() (graphql.Schema, error) {
	queryFields := graphql.Fields{}
	for _, field := range sb.queryFields {
		queryFields[field.Name()] = field.Serve()
	}

	mutationFields := graphql.Fields{}
	for _, field := range sb.mutationFields {
		mutationFields[field.Name()] = field.Serve()
	}

	schemaConfig := graphql.SchemaConfig{Types: sb.types}

	if len(queryFields) > 0 {
		schemaConfig.Query = graphql.NewObject(graphql.ObjectConfig{
			Name:   "Query",
			Fields: queryFields,
		})
	}

	if len(mutationFields) > 0 {
		schemaConfig.Mutation = graphql.NewObject(graphql.ObjectConfig{
			Name:   "Mutation",
			Fields: mutationFields,
		})
	}

	return graphql.NewSchema(schemaConfig)
}

// Resolver binds the schema to the services.
type Resolver struct {
	services *service.Services
	types    *TypeMapping
	logger   logging.Logger
}

type Option func(*Resolver)

func WithLogger(logger logging.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

func NewResolver(services *service.Services, opts ...Option) *Resolver {
	r := &Resolver{
		services: services,
		types:    newTypeMapping(),
		logger:   logging.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.registerComputed()
	return r
}

func (r *Resolver) Queries() []QueryField {
	var out []QueryField
	for _, group := range [][]Field{
		r.clubQueries(),
		r.locationQueries(),
		r.resourceQueries(),
		r.coachQueries(),
		r.catalogQueries(),
		r.teamMemberQueries(),
		r.extrasQueries(),
	} {
		for _, f := range group {
			out = append(out, f)
		}
	}
	return out
}

func (r *Resolver) Mutations() []MutationField {
	var out []MutationField
	for _, group := range [][]Field{
		r.clubMutations(),
		r.locationMutations(),
		r.resourceMutations(),
		r.coachMutations(),
		r.catalogMutations(),
		r.teamMemberMutations(),
		r.extrasMutations(),
	} {
		for _, f := range group {
			out = append(out, f)
		}
	}
	return out
}

// NewSchema builds the full schema over services.
func NewSchema(services *service.Services, opts ...Option) (graphql.Schema, error) {
	r := NewResolver(services, opts...)
	return NewSchemaBuilder(r.Queries(), r.Mutations(), r.types.Enums()...).Build()
}
