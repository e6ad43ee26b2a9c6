package graph

import (
	"github.com/graphql-go/graphql"

	clubsetup "github.com/goliatone/go-club-setup"
)

func (r *Resolver) locationQueries() []Field {
	contacts := r.services.LocationContacts
	hours := r.services.WorkingHours
	amenities := r.services.Amenities
	contactType := r.types.Object(clubsetup.LocationContact{})
	calendarType := r.types.Object(clubsetup.WorkingHoursCalendar{})
	amenityType := r.types.Object(clubsetup.Amenity{})

	return []Field{
		NewField("getLocationContact", &graphql.Field{
			Type:    contactType,
			Args:    graphql.FieldConfigArgument{"clubId": idArg},
			Resolve: r.resolve("getLocationContact", byID("clubId", contacts.GetByClubID)),
		}),
		NewField("getWorkingHoursCalendar", &graphql.Field{
			Type:    calendarType,
			Args:    graphql.FieldConfigArgument{"clubId": idArg},
			Resolve: r.resolve("getWorkingHoursCalendar", byID("clubId", hours.GetByClubID)),
		}),
		NewField("getAmenities", &graphql.Field{
			Type: graphql.NewList(amenityType),
			Resolve: r.resolve("getAmenities", func(p graphql.ResolveParams) (any, error) {
				return amenities.List(p.Context)
			}),
		}),
		NewField("getAmenity", &graphql.Field{
			Type:    amenityType,
			Args:    graphql.FieldConfigArgument{"id": idArg},
			Resolve: r.resolve("getAmenity", byID("id", amenities.Get)),
		}),
		NewField("getAmenityByClubId", &graphql.Field{
			Type:    amenityType,
			Args:    graphql.FieldConfigArgument{"clubId": idArg},
			Resolve: r.resolve("getAmenityByClubId", byID("clubId", amenities.GetByClubID)),
		}),
	}
}

func (r *Resolver) locationMutations() []Field {
	contacts := r.services.LocationContacts
	hours := r.services.WorkingHours
	amenities := r.services.Amenities
	contactType := r.types.Object(clubsetup.LocationContact{})
	calendarType := r.types.Object(clubsetup.WorkingHoursCalendar{})
	amenityType := r.types.Object(clubsetup.Amenity{})
	deleted := graphql.NewNonNull(graphql.String)

	return []Field{
		NewField("createLocationContact", &graphql.Field{
			Type: contactType,
			Args: graphql.FieldConfigArgument{
				"input": required(r.types.Input(clubsetup.LocationContact{}, InputSpec{
					Name:     "CreateLocationContactInput",
					Required: []string{"clubId", "address", "city", "country"},
				})),
			},
			Resolve: r.resolve("createLocationContact", create(contacts.Create)),
		}),
		NewField("updateLocationContact", &graphql.Field{
			Type:        contactType,
			Description: "Update the club contact, creating it when missing",
			Args: graphql.FieldConfigArgument{
				"clubId": idArg,
				"input": required(r.types.Input(clubsetup.LocationContact{}, InputSpec{
					Name:    "UpdateLocationContactInput",
					Exclude: []string{"clubId"},
				})),
			},
			Resolve: r.resolve("updateLocationContact", patchByID("clubId", contacts.UpdateByClubID)),
		}),
		NewField("deleteLocationContact", &graphql.Field{
			Type:    deleted,
			Args:    graphql.FieldConfigArgument{"clubId": idArg},
			Resolve: r.resolve("deleteLocationContact", byID("clubId", contacts.DeleteByClubID)),
		}),

		NewField("createWorkingHoursCalendar", &graphql.Field{
			Type: calendarType,
			Args: graphql.FieldConfigArgument{
				"input": required(r.types.Input(clubsetup.WorkingHoursCalendar{}, InputSpec{
					Name:     "CreateWorkingHoursCalendarInput",
					Required: []string{"clubId", "availableDays"},
				})),
			},
			Resolve: r.resolve("createWorkingHoursCalendar", create(hours.Create)),
		}),
		NewField("updateWorkingHoursCalendar", &graphql.Field{
			Type: calendarType,
			Args: graphql.FieldConfigArgument{
				"id": idArg,
				"input": required(r.types.Input(clubsetup.WorkingHoursCalendar{}, InputSpec{
					Name:    "UpdateWorkingHoursCalendarInput",
					Exclude: []string{"clubId"},
				})),
			},
			Resolve: r.resolve("updateWorkingHoursCalendar", patchByID("id", hours.Update)),
		}),
		NewField("deleteWorkingHoursCalendar", &graphql.Field{
			Type:    deleted,
			Args:    graphql.FieldConfigArgument{"clubId": idArg},
			Resolve: r.resolve("deleteWorkingHoursCalendar", byID("clubId", hours.DeleteByClubID)),
		}),

		NewField("createAmenity", &graphql.Field{
			Type: amenityType,
			Args: graphql.FieldConfigArgument{
				"input": required(r.types.Input(clubsetup.Amenity{}, InputSpec{
					Name:     "CreateAmenityInput",
					Required: []string{"clubId"},
				})),
			},
			Resolve: r.resolve("createAmenity", create(amenities.Create)),
		}),
		NewField("updateAmenity", &graphql.Field{
			Type: amenityType,
			Args: graphql.FieldConfigArgument{
				"id":    idArg,
				"input": required(r.amenityUpdateInput()),
			},
			Resolve: r.resolve("updateAmenity", patchByID("id", amenities.Update)),
		}),
		NewField("updateAmenityByClubId", &graphql.Field{
			Type: amenityType,
			Args: graphql.FieldConfigArgument{
				"clubId": idArg,
				"input":  required(r.amenityUpdateInput()),
			},
			Resolve: r.resolve("updateAmenityByClubId", patchByID("clubId", amenities.UpdateByClubID)),
		}),
		NewField("deleteAmenity", &graphql.Field{
			Type:    deleted,
			Args:    graphql.FieldConfigArgument{"id": idArg},
			Resolve: r.resolve("deleteAmenity", byID("id", amenities.Delete)),
		}),
		NewField("deleteAmenityByClubId", &graphql.Field{
			Type:    deleted,
			Args:    graphql.FieldConfigArgument{"clubId": idArg},
			Resolve: r.resolve("deleteAmenityByClubId", byID("clubId", amenities.DeleteByClubID)),
		}),
	}
}

func (r *Resolver) amenityUpdateInput() *graphql.InputObject {
	return r.types.Input(clubsetup.Amenity{}, InputSpec{
		Name:    "UpdateAmenityInput",
		Exclude: []string{"clubId"},
	})
}
