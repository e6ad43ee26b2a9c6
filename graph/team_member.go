package graph

import (
	"github.com/graphql-go/graphql"

	clubsetup "github.com/goliatone/go-club-setup"
	"github.com/goliatone/go-club-setup/internal/service"
)

func (r *Resolver) teamMemberQueries() []Field {
	members := r.services.TeamMembers
	memberType := r.types.Object(clubsetup.TeamMember{})
	list := graphql.NewList(memberType)
	statusEnum := r.types.Enum(clubsetup.MemberStatus(""))
	permissionEnum := r.types.Enum(clubsetup.Permission(""))

	return []Field{
		NewField("getTeamMembers", &graphql.Field{
			Type:    list,
			Args:    graphql.FieldConfigArgument{"clubId": optionalIDArg},
			Resolve: r.resolve("getTeamMembers", inClub(members.List)),
		}),
		NewField("getTeamMember", &graphql.Field{
			Type:    memberType,
			Args:    graphql.FieldConfigArgument{"id": idArg},
			Resolve: r.resolve("getTeamMember", byID("id", members.Get)),
		}),
		NewField("getTeamMembersByClub", &graphql.Field{
			Type:    list,
			Args:    graphql.FieldConfigArgument{"clubId": idArg},
			Resolve: r.resolve("getTeamMembersByClub", byID("clubId", members.ByClub)),
		}),
		NewField("getTeamMembersByStatus", &graphql.Field{
			Type: list,
			Args: graphql.FieldConfigArgument{
				"status": required(statusEnum),
				"clubId": optionalIDArg,
			},
			Resolve: r.resolve("getTeamMembersByStatus", func(p graphql.ResolveParams) (any, error) {
				clubID, err := argOptionalID(p, "clubId")
				if err != nil {
					return nil, err
				}
				status, _ := p.Args["status"].(clubsetup.MemberStatus)
				return members.ByStatus(p.Context, status, clubID)
			}),
		}),
		NewField("getTeamMembersByPosition", &graphql.Field{
			Type: list,
			Args: graphql.FieldConfigArgument{
				"position": required(graphql.String),
				"clubId":   optionalIDArg,
			},
			Resolve: r.resolve("getTeamMembersByPosition", func(p graphql.ResolveParams) (any, error) {
				clubID, err := argOptionalID(p, "clubId")
				if err != nil {
					return nil, err
				}
				return members.ByPosition(p.Context, argString(p, "position"), clubID)
			}),
		}),
		NewField("getTeamMembersByPermissions", &graphql.Field{
			Type: list,
			Args: graphql.FieldConfigArgument{
				"permissions": required(graphql.NewList(graphql.NewNonNull(permissionEnum))),
				"clubId":      optionalIDArg,
			},
			Resolve: r.resolve("getTeamMembersByPermissions", func(p graphql.ResolveParams) (any, error) {
				clubID, err := argOptionalID(p, "clubId")
				if err != nil {
					return nil, err
				}
				var permissions []clubsetup.Permission
				if err := bind(p, "permissions", &permissions); err != nil {
					return nil, err
				}
				return members.ByPermissions(p.Context, permissions, clubID)
			}),
		}),
		NewField("searchTeamMembers", &graphql.Field{
			Type:        graphql.NewNonNull(r.types.Object(service.TeamMemberSearchResult{})),
			Description: "Filter, sort and page team members",
			Args: graphql.FieldConfigArgument{
				"query": arg(r.types.Input(service.TeamMemberQuery{}, InputSpec{})),
			},
			Resolve: r.resolve("searchTeamMembers", func(p graphql.ResolveParams) (any, error) {
				var query service.TeamMemberQuery
				if err := bind(p, "query", &query); err != nil {
					return nil, err
				}
				return members.Search(p.Context, query)
			}),
		}),
		NewField("searchTeamMembersByName", &graphql.Field{
			Type: list,
			Args: graphql.FieldConfigArgument{
				"searchTerm": required(graphql.String),
				"limit":      arg(graphql.Int),
				"clubId":     optionalIDArg,
			},
			Resolve: r.resolve("searchTeamMembersByName", func(p graphql.ResolveParams) (any, error) {
				clubID, err := argOptionalID(p, "clubId")
				if err != nil {
					return nil, err
				}
				return members.SearchByName(p.Context, argString(p, "searchTerm"), argInt(p, "limit"), clubID)
			}),
		}),
		NewField("getTeamMemberCount", &graphql.Field{
			Type: graphql.NewNonNull(graphql.Int),
			Args: graphql.FieldConfigArgument{
				"status": arg(statusEnum),
				"clubId": optionalIDArg,
			},
			Resolve: r.resolve("getTeamMemberCount", func(p graphql.ResolveParams) (any, error) {
				clubID, err := argOptionalID(p, "clubId")
				if err != nil {
					return nil, err
				}
				var status *clubsetup.MemberStatus
				if s, ok := p.Args["status"].(clubsetup.MemberStatus); ok {
					status = &s
				}
				return members.Count(p.Context, status, clubID)
			}),
		}),
	}
}

func (r *Resolver) teamMemberMutations() []Field {
	members := r.services.TeamMembers
	memberType := r.types.Object(clubsetup.TeamMember{})
	statusEnum := r.types.Enum(clubsetup.MemberStatus(""))
	permissionEnum := r.types.Enum(clubsetup.Permission(""))

	return []Field{
		NewField("createTeamMember", &graphql.Field{
			Type: memberType,
			Args: graphql.FieldConfigArgument{
				"input": required(r.types.Input(clubsetup.TeamMember{}, InputSpec{
					Name:     "CreateTeamMemberInput",
					Required: []string{"clubId", "name", "surname", "email"},
				})),
			},
			Resolve: r.resolve("createTeamMember", create(members.Create)),
		}),
		NewField("updateTeamMember", &graphql.Field{
			Type: memberType,
			Args: graphql.FieldConfigArgument{
				"id": idArg,
				"input": required(r.types.Input(clubsetup.TeamMember{}, InputSpec{
					Name:    "UpdateTeamMemberInput",
					Exclude: []string{"clubId"},
				})),
			},
			Resolve: r.resolve("updateTeamMember", patchByID("id", members.Update)),
		}),
		NewField("deleteTeamMember", &graphql.Field{
			Type:    graphql.NewNonNull(graphql.String),
			Args:    graphql.FieldConfigArgument{"id": idArg},
			Resolve: r.resolve("deleteTeamMember", byID("id", members.Delete)),
		}),
		NewField("updateTeamMemberStatus", &graphql.Field{
			Type: memberType,
			Args: graphql.FieldConfigArgument{
				"id":     idArg,
				"status": required(statusEnum),
			},
			Resolve: r.resolve("updateTeamMemberStatus", func(p graphql.ResolveParams) (any, error) {
				id, err := argID(p, "id")
				if err != nil {
					return nil, err
				}
				status, _ := p.Args["status"].(clubsetup.MemberStatus)
				return members.UpdateStatus(p.Context, id, status)
			}),
		}),
		NewField("updateTeamMemberPermissions", &graphql.Field{
			Type: memberType,
			Args: graphql.FieldConfigArgument{
				"id":          idArg,
				"permissions": required(graphql.NewList(graphql.NewNonNull(permissionEnum))),
			},
			Resolve: r.resolve("updateTeamMemberPermissions", func(p graphql.ResolveParams) (any, error) {
				id, err := argID(p, "id")
				if err != nil {
					return nil, err
				}
				var permissions []clubsetup.Permission
				if err := bind(p, "permissions", &permissions); err != nil {
					return nil, err
				}
				return members.UpdatePermissions(p.Context, id, permissions)
			}),
		}),
		NewField("addTeamMemberPermission", &graphql.Field{
			Type: memberType,
			Args: graphql.FieldConfigArgument{
				"id":         idArg,
				"permission": required(permissionEnum),
			},
			Resolve: r.resolve("addTeamMemberPermission", func(p graphql.ResolveParams) (any, error) {
				id, err := argID(p, "id")
				if err != nil {
					return nil, err
				}
				permission, _ := p.Args["permission"].(clubsetup.Permission)
				return members.AddPermission(p.Context, id, permission)
			}),
		}),
		NewField("removeTeamMemberPermission", &graphql.Field{
			Type: memberType,
			Args: graphql.FieldConfigArgument{
				"id":         idArg,
				"permission": required(permissionEnum),
			},
			Resolve: r.resolve("removeTeamMemberPermission", func(p graphql.ResolveParams) (any, error) {
				id, err := argID(p, "id")
				if err != nil {
					return nil, err
				}
				permission, _ := p.Args["permission"].(clubsetup.Permission)
				return members.RemovePermission(p.Context, id, permission)
			}),
		}),
		NewField("bulkUpdateTeamMemberStatus", &graphql.Field{
			Type: graphql.NewList(memberType),
			Args: graphql.FieldConfigArgument{
				"ids":    idListArg,
				"status": required(statusEnum),
			},
			Resolve: r.resolve("bulkUpdateTeamMemberStatus", func(p graphql.ResolveParams) (any, error) {
				ids, err := argIDs(p, "ids")
				if err != nil {
					return nil, err
				}
				status, _ := p.Args["status"].(clubsetup.MemberStatus)
				return members.BulkUpdateStatus(p.Context, ids, status)
			}),
		}),
		NewField("bulkDeleteTeamMembers", &graphql.Field{
			Type: graphql.NewNonNull(graphql.Boolean),
			Args: graphql.FieldConfigArgument{"ids": idListArg},
			Resolve: r.resolve("bulkDeleteTeamMembers", func(p graphql.ResolveParams) (any, error) {
				ids, err := argIDs(p, "ids")
				if err != nil {
					return nil, err
				}
				return members.BulkDelete(p.Context, ids)
			}),
		}),
	}
}
