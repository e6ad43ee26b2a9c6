package graph

import (
	"context"

	"github.com/graphql-go/graphql"

	"github.com/goliatone/go-club-setup/internal/apperr"
	"github.com/goliatone/go-club-setup/internal/logging"
)

// Error is a resolver failure carrying GraphQL extensions. graphql-go copies
// Extensions into the formatted error.
type Error struct {
	err        error
	extensions map[string]any
}

func newError(ctx context.Context, err error) *Error {
	return &Error{err: err, extensions: apperr.GraphQLExtensions(ctx, err)}
}

func (e *Error) Error() string { return e.err.Error() }

func (e *Error) Unwrap() error { return e.err }

func (e *Error) Extensions() map[string]any { return e.extensions }

type resolveFunc func(p graphql.ResolveParams) (any, error)

// resolve wraps fn so failures are logged once and carry extensions.
func (r *Resolver) resolve(operation string, fn resolveFunc) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (any, error) {
		out, err := fn(p)
		if err == nil {
			return out, nil
		}
		logger := logging.FromContext(p.Context, r.logger).WithFields(logging.Fields{
			"operation": operation,
		})
		if apperr.IsNotFound(err) {
			logger.Debug("%s: %v", operation, err)
		} else {
			logger.Warn("%s failed: %v", operation, err)
		}
		return nil, newError(p.Context, err)
	}
}
