package graph

import (
	"github.com/graphql-go/graphql"

	clubsetup "github.com/goliatone/go-club-setup"
	"github.com/goliatone/go-club-setup/internal/service"
)

// catalog describes a club owned entity served with plain CRUD.
type catalog[T any] struct {
	name     string
	plural   string
	service  *service.ChildService[*T]
	required []string
}

func (r *Resolver) catalogs() []func() (queries, mutations []Field) {
	return []func() ([]Field, []Field){
		catalogFields(r, catalog[clubsetup.Membership]{
			name: "Membership", plural: "Memberships",
			service:  r.services.Memberships,
			required: []string{"clubId", "title"},
		}),
		catalogFields(r, catalog[clubsetup.Pricing]{
			name: "Pricing", plural: "Pricings",
			service:  r.services.Pricing,
			required: []string{"clubId", "startTime", "endTime"},
		}),
		catalogFields(r, catalog[clubsetup.PromoCode]{
			name: "PromoCode", plural: "PromoCodes",
			service:  r.services.PromoCodes,
			required: []string{"clubId", "serviceIds"},
		}),
		catalogFields(r, catalog[clubsetup.UserGroup]{
			name: "UserGroup", plural: "UserGroups",
			service:  r.services.UserGroups,
			required: []string{"clubId", "title", "color"},
		}),
	}
}

func (r *Resolver) catalogQueries() []Field {
	var out []Field
	for _, fields := range r.catalogs() {
		queries, _ := fields()
		out = append(out, queries...)
	}
	return out
}

func (r *Resolver) catalogMutations() []Field {
	var out []Field
	for _, fields := range r.catalogs() {
		_, mutations := fields()
		out = append(out, mutations...)
	}
	return out
}

func catalogFields[T any](r *Resolver, c catalog[T]) func() ([]Field, []Field) {
	return func() ([]Field, []Field) {
		var sample T
		object := r.types.Object(sample)
		svc := c.service

		queries := []Field{
			NewField("get"+c.plural, &graphql.Field{
				Type:    graphql.NewList(object),
				Args:    graphql.FieldConfigArgument{"clubId": optionalIDArg},
				Resolve: r.resolve("get"+c.plural, inClub(svc.List)),
			}),
			NewField("get"+c.name, &graphql.Field{
				Type:    object,
				Args:    graphql.FieldConfigArgument{"id": idArg},
				Resolve: r.resolve("get"+c.name, byID("id", svc.Get)),
			}),
		}

		mutations := []Field{
			NewField("create"+c.name, &graphql.Field{
				Type: object,
				Args: graphql.FieldConfigArgument{
					"input": required(r.types.Input(sample, InputSpec{
						Name:     "Create" + c.name + "Input",
						Required: c.required,
					})),
				},
				Resolve: r.resolve("create"+c.name, create(svc.Create)),
			}),
			NewField("update"+c.name, &graphql.Field{
				Type: object,
				Args: graphql.FieldConfigArgument{
					"id": idArg,
					"input": required(r.types.Input(sample, InputSpec{
						Name:    "Update" + c.name + "Input",
						Exclude: []string{"clubId"},
					})),
				},
				Resolve: r.resolve("update"+c.name, patchByID("id", svc.Update)),
			}),
			NewField("delete"+c.name, &graphql.Field{
				Type:    graphql.NewNonNull(graphql.String),
				Args:    graphql.FieldConfigArgument{"id": idArg},
				Resolve: r.resolve("delete"+c.name, byID("id", svc.Delete)),
			}),
		}
		return queries, mutations
	}
}
