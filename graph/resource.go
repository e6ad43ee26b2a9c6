package graph

import (
	"github.com/graphql-go/graphql"

	clubsetup "github.com/goliatone/go-club-setup"
)

func (r *Resolver) resourceQueries() []Field {
	resources := r.services.Resources
	list := graphql.NewList(r.types.Object(clubsetup.Resource{}))

	return []Field{
		NewField("getResources", &graphql.Field{
			Type:    list,
			Args:    graphql.FieldConfigArgument{"clubId": optionalIDArg},
			Resolve: r.resolve("getResources", inClub(resources.List)),
		}),
		NewField("getResourcesByClubId", &graphql.Field{
			Type:    list,
			Args:    graphql.FieldConfigArgument{"clubId": idArg},
			Resolve: r.resolve("getResourcesByClubId", byID("clubId", resources.ByClubID)),
		}),
		NewField("getResource", &graphql.Field{
			Type:    r.types.Object(clubsetup.Resource{}),
			Args:    graphql.FieldConfigArgument{"id": idArg},
			Resolve: r.resolve("getResource", byID("id", resources.Get)),
		}),
		NewField("getResourcesByService", &graphql.Field{
			Type: list,
			Args: graphql.FieldConfigArgument{
				"service": required(r.types.Enum(clubsetup.ResourceService(""))),
				"clubId":  optionalIDArg,
			},
			Resolve: r.resolve("getResourcesByService", func(p graphql.ResolveParams) (any, error) {
				clubID, err := argOptionalID(p, "clubId")
				if err != nil {
					return nil, err
				}
				service, _ := p.Args["service"].(clubsetup.ResourceService)
				return resources.ByService(p.Context, service, clubID)
			}),
		}),
		NewField("getResourcesByStatus", &graphql.Field{
			Type: list,
			Args: graphql.FieldConfigArgument{
				"status": required(r.types.Enum(clubsetup.ResourceStatus(""))),
				"clubId": optionalIDArg,
			},
			Resolve: r.resolve("getResourcesByStatus", func(p graphql.ResolveParams) (any, error) {
				clubID, err := argOptionalID(p, "clubId")
				if err != nil {
					return nil, err
				}
				status, _ := p.Args["status"].(clubsetup.ResourceStatus)
				return resources.ByStatus(p.Context, status, clubID)
			}),
		}),
	}
}

func (r *Resolver) resourceMutations() []Field {
	resources := r.services.Resources
	resourceType := r.types.Object(clubsetup.Resource{})

	return []Field{
		NewField("createResource", &graphql.Field{
			Type: resourceType,
			Args: graphql.FieldConfigArgument{
				"input": required(r.types.Input(clubsetup.Resource{}, InputSpec{
					Name:     "CreateResourceInput",
					Required: []string{"clubId", "title", "service", "type", "property", "color"},
				})),
			},
			Resolve: r.resolve("createResource", create(resources.Create)),
		}),
		NewField("updateResource", &graphql.Field{
			Type: resourceType,
			Args: graphql.FieldConfigArgument{
				"id": idArg,
				"input": required(r.types.Input(clubsetup.Resource{}, InputSpec{
					Name:    "UpdateResourceInput",
					Exclude: []string{"clubId"},
				})),
			},
			Resolve: r.resolve("updateResource", patchByID("id", resources.Update)),
		}),
		NewField("deleteResource", &graphql.Field{
			Type:    graphql.NewNonNull(graphql.String),
			Args:    graphql.FieldConfigArgument{"id": idArg},
			Resolve: r.resolve("deleteResource", byID("id", resources.Delete)),
		}),
	}
}
