package graph

import (
	"github.com/graphql-go/graphql"

	clubsetup "github.com/goliatone/go-club-setup"
	"github.com/goliatone/go-club-setup/internal/service"
)

func (r *Resolver) extrasQueries() []Field {
	extras := r.services.Extras
	extrasType := r.types.Object(clubsetup.Extras{})
	list := graphql.NewList(extrasType)
	statusEnum := r.types.Enum(clubsetup.MemberStatus(""))

	return []Field{
		NewField("getExtras", &graphql.Field{
			Type:    list,
			Args:    graphql.FieldConfigArgument{"clubId": optionalIDArg},
			Resolve: r.resolve("getExtras", inClub(extras.List)),
		}),
		NewField("getExtrasById", &graphql.Field{
			Type:    extrasType,
			Args:    graphql.FieldConfigArgument{"id": idArg},
			Resolve: r.resolve("getExtrasById", byID("id", extras.Get)),
		}),
		NewField("getExtrasByClub", &graphql.Field{
			Type:    list,
			Args:    graphql.FieldConfigArgument{"clubId": idArg},
			Resolve: r.resolve("getExtrasByClub", byID("clubId", extras.ByClub)),
		}),
		NewField("getExtrasByStatus", &graphql.Field{
			Type: list,
			Args: graphql.FieldConfigArgument{
				"status": required(statusEnum),
				"clubId": optionalIDArg,
			},
			Resolve: r.resolve("getExtrasByStatus", func(p graphql.ResolveParams) (any, error) {
				clubID, err := argOptionalID(p, "clubId")
				if err != nil {
					return nil, err
				}
				status, _ := p.Args["status"].(clubsetup.MemberStatus)
				return extras.ByStatus(p.Context, status, clubID)
			}),
		}),
		NewField("getExtrasByFeature", &graphql.Field{
			Type: list,
			Args: graphql.FieldConfigArgument{
				"feature": required(r.types.Enum(clubsetup.ExtrasFeature(""))),
				"enabled": arg(graphql.Boolean),
				"clubId":  optionalIDArg,
			},
			Resolve: r.resolve("getExtrasByFeature", func(p graphql.ResolveParams) (any, error) {
				clubID, err := argOptionalID(p, "clubId")
				if err != nil {
					return nil, err
				}
				feature, _ := p.Args["feature"].(clubsetup.ExtrasFeature)
				enabled := true
				if v, ok := p.Args["enabled"].(bool); ok {
					enabled = v
				}
				return extras.ByFeature(p.Context, feature, enabled, clubID)
			}),
		}),
		NewField("searchExtras", &graphql.Field{
			Type: graphql.NewNonNull(r.types.Object(service.ExtrasSearchResult{})),
			Args: graphql.FieldConfigArgument{
				"query": arg(r.types.Input(service.ExtrasQuery{}, InputSpec{})),
			},
			Resolve: r.resolve("searchExtras", func(p graphql.ResolveParams) (any, error) {
				var query service.ExtrasQuery
				if err := bind(p, "query", &query); err != nil {
					return nil, err
				}
				return extras.Search(p.Context, query)
			}),
		}),
		NewField("searchExtrasByDescription", &graphql.Field{
			Type: list,
			Args: graphql.FieldConfigArgument{
				"searchTerm": required(graphql.String),
				"limit":      arg(graphql.Int),
				"clubId":     optionalIDArg,
			},
			Resolve: r.resolve("searchExtrasByDescription", func(p graphql.ResolveParams) (any, error) {
				clubID, err := argOptionalID(p, "clubId")
				if err != nil {
					return nil, err
				}
				return extras.SearchByDescription(p.Context, argString(p, "searchTerm"), argInt(p, "limit"), clubID)
			}),
		}),
		NewField("getExtrasCount", &graphql.Field{
			Type: graphql.NewNonNull(graphql.Int),
			Args: graphql.FieldConfigArgument{
				"status": arg(statusEnum),
				"clubId": optionalIDArg,
			},
			Resolve: r.resolve("getExtrasCount", func(p graphql.ResolveParams) (any, error) {
				clubID, err := argOptionalID(p, "clubId")
				if err != nil {
					return nil, err
				}
				var status *clubsetup.MemberStatus
				if s, ok := p.Args["status"].(clubsetup.MemberStatus); ok {
					status = &s
				}
				return extras.Count(p.Context, status, clubID)
			}),
		}),
		NewField("getIntegrationStats", &graphql.Field{
			Type:    graphql.NewNonNull(r.types.Object(clubsetup.IntegrationStats{})),
			Args:    graphql.FieldConfigArgument{"clubId": optionalIDArg},
			Resolve: r.resolve("getIntegrationStats", inClub(extras.IntegrationStats)),
		}),
	}
}

func (r *Resolver) extrasMutations() []Field {
	extras := r.services.Extras
	extrasType := r.types.Object(clubsetup.Extras{})
	statusEnum := r.types.Enum(clubsetup.MemberStatus(""))

	return []Field{
		NewField("createExtras", &graphql.Field{
			Type: extrasType,
			Args: graphql.FieldConfigArgument{
				"input": required(r.types.Input(clubsetup.Extras{}, InputSpec{
					Name:     "CreateExtrasInput",
					Required: []string{"clubId"},
				})),
			},
			Resolve: r.resolve("createExtras", create(extras.Create)),
		}),
		NewField("updateExtras", &graphql.Field{
			Type: extrasType,
			Args: graphql.FieldConfigArgument{
				"id": idArg,
				"input": required(r.types.Input(clubsetup.Extras{}, InputSpec{
					Name:    "UpdateExtrasInput",
					Exclude: []string{"clubId"},
				})),
			},
			Resolve: r.resolve("updateExtras", patchByID("id", extras.Update)),
		}),
		NewField("deleteExtras", &graphql.Field{
			Type:    graphql.NewNonNull(graphql.String),
			Args:    graphql.FieldConfigArgument{"id": idArg},
			Resolve: r.resolve("deleteExtras", byID("id", extras.Delete)),
		}),
		NewField("updateExtrasStatus", &graphql.Field{
			Type: extrasType,
			Args: graphql.FieldConfigArgument{
				"id":     idArg,
				"status": required(statusEnum),
			},
			Resolve: r.resolve("updateExtrasStatus", func(p graphql.ResolveParams) (any, error) {
				id, err := argID(p, "id")
				if err != nil {
					return nil, err
				}
				status, _ := p.Args["status"].(clubsetup.MemberStatus)
				return extras.UpdateStatus(p.Context, id, status)
			}),
		}),
		NewField("toggleExtrasFeature", &graphql.Field{
			Type: extrasType,
			Args: graphql.FieldConfigArgument{
				"id":      idArg,
				"feature": required(r.types.Enum(clubsetup.ExtrasFeature(""))),
				"enabled": required(graphql.Boolean),
			},
			Resolve: r.resolve("toggleExtrasFeature", func(p graphql.ResolveParams) (any, error) {
				id, err := argID(p, "id")
				if err != nil {
					return nil, err
				}
				feature, _ := p.Args["feature"].(clubsetup.ExtrasFeature)
				return extras.ToggleFeature(p.Context, id, feature, argBool(p, "enabled"))
			}),
		}),
		NewField("bulkUpdateExtrasStatus", &graphql.Field{
			Type: graphql.NewList(extrasType),
			Args: graphql.FieldConfigArgument{
				"ids":    idListArg,
				"status": required(statusEnum),
			},
			Resolve: r.resolve("bulkUpdateExtrasStatus", func(p graphql.ResolveParams) (any, error) {
				ids, err := argIDs(p, "ids")
				if err != nil {
					return nil, err
				}
				status, _ := p.Args["status"].(clubsetup.MemberStatus)
				return extras.BulkUpdateStatus(p.Context, ids, status)
			}),
		}),
		NewField("bulkDeleteExtras", &graphql.Field{
			Type: graphql.NewNonNull(graphql.Boolean),
			Args: graphql.FieldConfigArgument{"ids": idListArg},
			Resolve: r.resolve("bulkDeleteExtras", func(p graphql.ResolveParams) (any, error) {
				ids, err := argIDs(p, "ids")
				if err != nil {
					return nil, err
				}
				return extras.BulkDelete(p.Context, ids)
			}),
		}),
	}
}
