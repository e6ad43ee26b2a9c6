package graph

import (
	"github.com/graphql-go/graphql"

	clubsetup "github.com/goliatone/go-club-setup"
)

var stringList = graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(graphql.String)))

// computed serves a field derived from the source model.
func computed[T any](typ graphql.Output, fn func(T) any) *graphql.Field {
	return &graphql.Field{
		Type: typ,
		Resolve: func(p graphql.ResolveParams) (any, error) {
			source, ok := p.Source.(T)
			if !ok {
				return nil, nil
			}
			return fn(source), nil
		},
	}
}

func (r *Resolver) registerComputed() {
	r.types.Extend(clubsetup.TeamMember{}, graphql.Fields{
		"fullName":        computed(graphql.NewNonNull(graphql.String), func(t *clubsetup.TeamMember) any { return t.FullName() }),
		"fullPhone":       computed(graphql.String, func(t *clubsetup.TeamMember) any { return t.FullPhone() }),
		"isActive":        computed(graphql.NewNonNull(graphql.Boolean), func(t *clubsetup.TeamMember) any { return t.IsActive() }),
		"permissionCount": computed(graphql.NewNonNull(graphql.Int), func(t *clubsetup.TeamMember) any { return t.PermissionCount() }),
	})

	r.types.Extend(clubsetup.Extras{}, graphql.Fields{
		"isActive":           computed(graphql.NewNonNull(graphql.Boolean), func(e *clubsetup.Extras) any { return e.IsActive() }),
		"hourBankLimitCount": computed(graphql.NewNonNull(graphql.Int), func(e *clubsetup.Extras) any { return e.HourBankLimitCount() }),
		"wishlistLimitCount": computed(graphql.NewNonNull(graphql.Int), func(e *clubsetup.Extras) any { return e.WishlistLimitCount() }),
		"integrationCount":   computed(graphql.NewNonNull(graphql.Int), func(e *clubsetup.Extras) any { return e.IntegrationCount() }),
		"enabledFeatures":    computed(stringList, func(e *clubsetup.Extras) any { return e.EnabledFeatures() }),
		"activeIntegrations": computed(stringList, func(e *clubsetup.Extras) any { return e.ActiveIntegrations() }),
	})
}
