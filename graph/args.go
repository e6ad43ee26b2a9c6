package graph

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/graphql-go/graphql"

	"github.com/goliatone/go-club-setup/internal/apperr"
	"github.com/goliatone/go-club-setup/internal/service"
)

var (
	idArg         = &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)}
	optionalIDArg = &graphql.ArgumentConfig{Type: graphql.ID}
	idListArg     = &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(graphql.ID)))}
)

func argID(p graphql.ResolveParams, name string) (uuid.UUID, error) {
	raw, _ := p.Args[name].(string)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperr.Validation("Invalid %s: %q", name, raw)
	}
	return id, nil
}

// argOptionalID returns nil when the argument was not supplied.
func argOptionalID(p graphql.ResolveParams, name string) (*uuid.UUID, error) {
	if _, ok := p.Args[name]; !ok || p.Args[name] == nil {
		return nil, nil
	}
	id, err := argID(p, name)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func argIDs(p graphql.ResolveParams, name string) ([]uuid.UUID, error) {
	raw, _ := p.Args[name].([]any)
	ids := make([]uuid.UUID, 0, len(raw))
	for _, item := range raw {
		s, _ := item.(string)
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, apperr.Validation("Invalid %s: %q", name, s)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func argString(p graphql.ResolveParams, name string) string {
	s, _ := p.Args[name].(string)
	return s
}

func argInt(p graphql.ResolveParams, name string) int {
	n, _ := p.Args[name].(int)
	return n
}

func argBool(p graphql.ResolveParams, name string) bool {
	b, _ := p.Args[name].(bool)
	return b
}

// argPatch returns an input object argument as a partial update.
func argPatch(p graphql.ResolveParams, name string) service.Patch {
	values, _ := p.Args[name].(map[string]any)
	return service.Patch(values)
}

// bind decodes an argument into target through its json tags. Missing
// arguments leave target untouched.
func bind(p graphql.ResolveParams, name string, target any) error {
	value, ok := p.Args[name]
	if !ok || value == nil {
		return nil
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return apperr.Validation("Invalid %s: %v", name, err)
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return apperr.Validation("Invalid %s: %v", name, err)
	}
	return nil
}

// argInput decodes a required input object into a new T.
func argInput[T any](p graphql.ResolveParams, name string) (*T, error) {
	values, ok := p.Args[name].(map[string]any)
	if !ok {
		return nil, apperr.Validation("%s is required", name)
	}
	return service.Decode[T](values)
}

func arg(typ graphql.Input) *graphql.ArgumentConfig {
	return &graphql.ArgumentConfig{Type: typ}
}

func required(typ graphql.Input) *graphql.ArgumentConfig {
	return &graphql.ArgumentConfig{Type: graphql.NewNonNull(typ)}
}

// byID resolves fn with the ID argument called name.
func byID[T any](name string, fn func(context.Context, uuid.UUID) (T, error)) resolveFunc {
	return func(p graphql.ResolveParams) (any, error) {
		id, err := argID(p, name)
		if err != nil {
			return nil, err
		}
		return fn(p.Context, id)
	}
}

// inClub resolves fn with the optional clubId argument.
func inClub[T any](fn func(context.Context, *uuid.UUID) (T, error)) resolveFunc {
	return func(p graphql.ResolveParams) (any, error) {
		clubID, err := argOptionalID(p, "clubId")
		if err != nil {
			return nil, err
		}
		return fn(p.Context, clubID)
	}
}

// create decodes the input argument and passes it to fn.
func create[T any](fn func(context.Context, *T) (*T, error)) resolveFunc {
	return func(p graphql.ResolveParams) (any, error) {
		record, err := argInput[T](p, "input")
		if err != nil {
			return nil, err
		}
		return fn(p.Context, record)
	}
}

// patchByID applies the input argument to the record named by the ID
// argument called name.
func patchByID[T any](name string, fn func(context.Context, uuid.UUID, service.Patch) (T, error)) resolveFunc {
	return func(p graphql.ResolveParams) (any, error) {
		id, err := argID(p, name)
		if err != nil {
			return nil, err
		}
		return fn(p.Context, id, argPatch(p, "input"))
	}
}
