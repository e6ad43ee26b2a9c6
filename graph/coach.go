package graph

import (
	"github.com/graphql-go/graphql"

	clubsetup "github.com/goliatone/go-club-setup"
	"github.com/goliatone/go-club-setup/internal/service"
)

func (r *Resolver) coachClassFilterInput() *graphql.InputObject {
	return r.types.Input(service.CoachClassFilter{}, InputSpec{
		Name:     "CoachClassFilterInput",
		Required: []string{"clubId"},
	})
}

func (r *Resolver) coachQueries() []Field {
	coaches := r.services.Coaches
	classes := r.services.CoachClasses
	coachType := r.types.Object(clubsetup.Coach{})
	classType := r.types.Object(clubsetup.CoachClass{})

	return []Field{
		NewField("coaches", &graphql.Field{
			Type:        graphql.NewNonNull(r.types.Object(service.CoachList{})),
			Description: "Coaches matching query, ten per page by default",
			Args: graphql.FieldConfigArgument{
				"query": arg(r.types.Input(service.CoachQuery{}, InputSpec{})),
			},
			Resolve: r.resolve("coaches", func(p graphql.ResolveParams) (any, error) {
				var query service.CoachQuery
				if err := bind(p, "query", &query); err != nil {
					return nil, err
				}
				return coaches.List(p.Context, query)
			}),
		}),
		NewField("coachesCount", &graphql.Field{
			Type: graphql.NewNonNull(graphql.Int),
			Args: graphql.FieldConfigArgument{
				"filters": arg(r.types.Input(service.CoachFilter{}, InputSpec{})),
			},
			Resolve: r.resolve("coachesCount", func(p graphql.ResolveParams) (any, error) {
				var filters *service.CoachFilter
				if err := bind(p, "filters", &filters); err != nil {
					return nil, err
				}
				return coaches.Count(p.Context, filters)
			}),
		}),
		NewField("coach", &graphql.Field{
			Type:    coachType,
			Args:    graphql.FieldConfigArgument{"id": idArg},
			Resolve: r.resolve("coach", byID("id", coaches.Get)),
		}),
		NewField("coachesByClub", &graphql.Field{
			Type:    graphql.NewList(coachType),
			Args:    graphql.FieldConfigArgument{"clubId": idArg},
			Resolve: r.resolve("coachesByClub", byID("clubId", coaches.ByClub)),
		}),
		NewField("coachesByService", &graphql.Field{
			Type: graphql.NewList(coachType),
			Args: graphql.FieldConfigArgument{
				"serviceId": idArg,
				"clubId":    optionalIDArg,
			},
			Resolve: r.resolve("coachesByService", func(p graphql.ResolveParams) (any, error) {
				serviceID, err := argID(p, "serviceId")
				if err != nil {
					return nil, err
				}
				clubID, err := argOptionalID(p, "clubId")
				if err != nil {
					return nil, err
				}
				return coaches.ByService(p.Context, serviceID, clubID)
			}),
		}),

		NewField("coachClasses", &graphql.Field{
			Type: graphql.NewNonNull(r.types.Object(service.CoachClassList{})),
			Args: graphql.FieldConfigArgument{
				"filters": required(r.coachClassFilterInput()),
			},
			Resolve: r.resolve("coachClasses", func(p graphql.ResolveParams) (any, error) {
				var filters service.CoachClassFilter
				if err := bind(p, "filters", &filters); err != nil {
					return nil, err
				}
				return classes.List(p.Context, filters)
			}),
		}),
		NewField("coachClassesCount", &graphql.Field{
			Type: graphql.NewNonNull(graphql.Int),
			Args: graphql.FieldConfigArgument{
				"filters": required(r.coachClassFilterInput()),
			},
			Resolve: r.resolve("coachClassesCount", func(p graphql.ResolveParams) (any, error) {
				var filters service.CoachClassFilter
				if err := bind(p, "filters", &filters); err != nil {
					return nil, err
				}
				return classes.Count(p.Context, filters)
			}),
		}),
		NewField("coachClass", &graphql.Field{
			Type: classType,
			Args: graphql.FieldConfigArgument{
				"id":     idArg,
				"clubId": idArg,
			},
			Resolve: r.resolve("coachClass", func(p graphql.ResolveParams) (any, error) {
				id, err := argID(p, "id")
				if err != nil {
					return nil, err
				}
				clubID, err := argID(p, "clubId")
				if err != nil {
					return nil, err
				}
				return classes.Get(p.Context, id, clubID)
			}),
		}),
		NewField("coachClassesByCoach", &graphql.Field{
			Type: graphql.NewList(classType),
			Args: graphql.FieldConfigArgument{
				"coachId": required(graphql.String),
				"clubId":  idArg,
			},
			Resolve: r.resolve("coachClassesByCoach", func(p graphql.ResolveParams) (any, error) {
				clubID, err := argID(p, "clubId")
				if err != nil {
					return nil, err
				}
				return classes.ByCoach(p.Context, argString(p, "coachId"), clubID)
			}),
		}),
	}
}

func (r *Resolver) coachMutations() []Field {
	coaches := r.services.Coaches
	classes := r.services.CoachClasses
	coachType := r.types.Object(clubsetup.Coach{})
	classType := r.types.Object(clubsetup.CoachClass{})

	return []Field{
		NewField("createCoach", &graphql.Field{
			Type: coachType,
			Args: graphql.FieldConfigArgument{
				"input": required(r.types.Input(clubsetup.Coach{}, InputSpec{
					Name:     "CreateCoachInput",
					Required: []string{"clubId", "name", "surname", "email"},
				})),
			},
			Resolve: r.resolve("createCoach", create(coaches.Create)),
		}),
		NewField("updateCoach", &graphql.Field{
			Type: coachType,
			Args: graphql.FieldConfigArgument{
				"id": idArg,
				"input": required(r.types.Input(clubsetup.Coach{}, InputSpec{
					Name:    "UpdateCoachInput",
					Exclude: []string{"clubId"},
				})),
			},
			Resolve: r.resolve("updateCoach", patchByID("id", coaches.Update)),
		}),
		NewField("removeCoach", &graphql.Field{
			Type:    graphql.NewNonNull(graphql.Boolean),
			Args:    graphql.FieldConfigArgument{"id": idArg},
			Resolve: r.resolve("removeCoach", byID("id", coaches.Remove)),
		}),

		NewField("createCoachClass", &graphql.Field{
			Type: classType,
			Args: graphql.FieldConfigArgument{
				"input": required(r.types.Input(clubsetup.CoachClass{}, InputSpec{
					Name:     "CreateCoachClassInput",
					Required: []string{"clubId", "title", "priceType", "price", "coach"},
				})),
			},
			Resolve: r.resolve("createCoachClass", create(classes.Create)),
		}),
		NewField("updateCoachClass", &graphql.Field{
			Type: classType,
			Args: graphql.FieldConfigArgument{
				"id":     idArg,
				"clubId": idArg,
				"input": required(r.types.Input(clubsetup.CoachClass{}, InputSpec{
					Name:    "UpdateCoachClassInput",
					Exclude: []string{"clubId"},
				})),
			},
			Resolve: r.resolve("updateCoachClass", func(p graphql.ResolveParams) (any, error) {
				id, err := argID(p, "id")
				if err != nil {
					return nil, err
				}
				clubID, err := argID(p, "clubId")
				if err != nil {
					return nil, err
				}
				return classes.Update(p.Context, id, clubID, argPatch(p, "input"))
			}),
		}),
		NewField("removeCoachClass", &graphql.Field{
			Type: graphql.NewNonNull(graphql.Boolean),
			Args: graphql.FieldConfigArgument{
				"id":     idArg,
				"clubId": idArg,
			},
			Resolve: r.resolve("removeCoachClass", func(p graphql.ResolveParams) (any, error) {
				id, err := argID(p, "id")
				if err != nil {
					return nil, err
				}
				clubID, err := argID(p, "clubId")
				if err != nil {
					return nil, err
				}
				return classes.Remove(p.Context, id, clubID)
			}),
		}),
	}
}
