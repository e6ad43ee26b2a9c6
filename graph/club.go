package graph

import (
	"github.com/graphql-go/graphql"

	clubsetup "github.com/goliatone/go-club-setup"
	"github.com/goliatone/go-club-setup/internal/filter"
	"github.com/goliatone/go-club-setup/internal/service"
	"github.com/goliatone/go-club-setup/internal/setup"
	"github.com/goliatone/go-club-setup/internal/storage"
)

// clubSearch is the argument of searchClubs and countClubs.
type clubSearch struct {
	Filters   []filter.FieldFilter `json:"filters"`
	Relations []string             `json:"relations,omitempty"`
}

type clubUploads struct {
	Logo          *storage.FileUploadInput  `json:"logo,omitempty"`
	GalleryImages []storage.FileUploadInput `json:"galleryImages,omitempty"`
}

var clubTrackingKeys = []string{"setupStatus", "currentStep", "completedSteps", "lastSavedAt"}

func (r *Resolver) clubType() *graphql.Object {
	return r.types.Object(clubsetup.Club{})
}

func (r *Resolver) uploadInput() *graphql.InputObject {
	return r.types.Input(storage.FileUploadInput{}, InputSpec{Required: []string{"filename", "base64"}})
}

func (r *Resolver) clubSearchInput() *graphql.InputObject {
	r.types.Input(filter.FieldFilter{}, InputSpec{Required: []string{"field", "value"}})
	return r.types.Input(clubSearch{}, InputSpec{Name: "ClubSearchInput", Required: []string{"filters"}})
}

func (r *Resolver) clubQueries() []Field {
	clubs := r.services.Clubs
	relations := arg(graphql.NewList(graphql.NewNonNull(graphql.String)))

	return []Field{
		NewField("getClub", &graphql.Field{
			Type:        r.clubType(),
			Description: "Club with its location, calendar, resources and amenity",
			Args:        graphql.FieldConfigArgument{"id": idArg},
			Resolve: r.resolve("getClub", func(p graphql.ResolveParams) (any, error) {
				id, err := argID(p, "id")
				if err != nil {
					return nil, err
				}
				return clubs.Get(p.Context, id)
			}),
		}),
		NewField("getAllClubs", &graphql.Field{
			Type: graphql.NewList(r.clubType()),
			Args: graphql.FieldConfigArgument{
				"filter":    arg(JSON),
				"relations": relations,
			},
			Resolve: r.resolve("getAllClubs", func(p graphql.ResolveParams) (any, error) {
				where, _ := p.Args["filter"].(map[string]any)
				var names []string
				if err := bind(p, "relations", &names); err != nil {
					return nil, err
				}
				return clubs.FindAll(p.Context, where, names)
			}),
		}),
		NewField("getClubLocation", &graphql.Field{
			Type: r.clubType(),
			Args: graphql.FieldConfigArgument{"id": idArg},
			Resolve: r.resolve("getClubLocation", func(p graphql.ResolveParams) (any, error) {
				id, err := argID(p, "id")
				if err != nil {
					return nil, err
				}
				return clubs.GetLocation(p.Context, id)
			}),
		}),
		NewField("getClubResources", &graphql.Field{
			Type: r.clubType(),
			Args: graphql.FieldConfigArgument{"id": idArg},
			Resolve: r.resolve("getClubResources", func(p graphql.ResolveParams) (any, error) {
				id, err := argID(p, "id")
				if err != nil {
					return nil, err
				}
				return clubs.GetResources(p.Context, id)
			}),
		}),
		NewField("searchClubs", &graphql.Field{
			Type: graphql.NewList(r.clubType()),
			Args: graphql.FieldConfigArgument{"input": required(r.clubSearchInput())},
			Resolve: r.resolve("searchClubs", func(p graphql.ResolveParams) (any, error) {
				var in clubSearch
				if err := bind(p, "input", &in); err != nil {
					return nil, err
				}
				return clubs.Search(p.Context, in.Filters, in.Relations)
			}),
		}),
		NewField("getClubsByFields", &graphql.Field{
			Type:        graphql.NewList(r.clubType()),
			Description: "Clubs matching every filter; empty when nothing matches",
			Args:        graphql.FieldConfigArgument{"input": required(r.clubSearchInput())},
			Resolve: r.resolve("getClubsByFields", func(p graphql.ResolveParams) (any, error) {
				var in clubSearch
				if err := bind(p, "input", &in); err != nil {
					return nil, err
				}
				return clubs.GetByMultipleFields(p.Context, in.Filters, in.Relations)
			}),
		}),
		NewField("getClubByFields", &graphql.Field{
			Type: r.clubType(),
			Args: graphql.FieldConfigArgument{"input": required(r.clubSearchInput())},
			Resolve: r.resolve("getClubByFields", func(p graphql.ResolveParams) (any, error) {
				var in clubSearch
				if err := bind(p, "input", &in); err != nil {
					return nil, err
				}
				return clubs.GetOneByMultipleFields(p.Context, in.Filters, in.Relations)
			}),
		}),
		NewField("getClubByField", &graphql.Field{
			Type: r.clubType(),
			Args: graphql.FieldConfigArgument{
				"field":     required(graphql.String),
				"value":     required(JSON),
				"relations": relations,
			},
			Resolve: r.resolve("getClubByField", func(p graphql.ResolveParams) (any, error) {
				var names []string
				if err := bind(p, "relations", &names); err != nil {
					return nil, err
				}
				return clubs.GetByFieldValue(p.Context, argString(p, "field"), p.Args["value"], names)
			}),
		}),
		NewField("getClubsBySetupStatus", &graphql.Field{
			Type: graphql.NewList(r.clubType()),
			Args: graphql.FieldConfigArgument{
				"status": required(r.types.Enum(clubsetup.SetupStatus(""))),
			},
			Resolve: r.resolve("getClubsBySetupStatus", func(p graphql.ResolveParams) (any, error) {
				status, _ := p.Args["status"].(clubsetup.SetupStatus)
				return clubs.BySetupStatus(p.Context, status)
			}),
		}),
		NewField("countClubs", &graphql.Field{
			Type: graphql.NewNonNull(graphql.Int),
			Args: graphql.FieldConfigArgument{"input": arg(r.clubSearchInput())},
			Resolve: r.resolve("countClubs", func(p graphql.ResolveParams) (any, error) {
				var in clubSearch
				if err := bind(p, "input", &in); err != nil {
					return nil, err
				}
				return clubs.CountWithSecureQuery(p.Context, in.Filters)
			}),
		}),
	}
}

func (r *Resolver) clubMutations() []Field {
	clubs := r.services.Clubs
	uploads := graphql.FieldConfigArgument{
		"logo":          arg(r.uploadInput()),
		"galleryImages": arg(graphql.NewList(graphql.NewNonNull(r.uploadInput()))),
	}
	withUploads := func(extra graphql.FieldConfigArgument) graphql.FieldConfigArgument {
		out := graphql.FieldConfigArgument{}
		for k, v := range uploads {
			out[k] = v
		}
		for k, v := range extra {
			out[k] = v
		}
		return out
	}
	bindUploads := func(p graphql.ResolveParams) (clubUploads, error) {
		var files clubUploads
		if err := bind(p, "logo", &files.Logo); err != nil {
			return files, err
		}
		err := bind(p, "galleryImages", &files.GalleryImages)
		return files, err
	}

	return []Field{
		NewField("createClubSetup", &graphql.Field{
			Type:        r.clubType(),
			Description: "Create a club and start its setup in draft",
			Args: withUploads(graphql.FieldConfigArgument{
				"input": required(r.types.Input(clubsetup.Club{}, InputSpec{
					Name:     "CreateClubInput",
					Required: []string{"title"},
					Exclude:  clubTrackingKeys,
				})),
			}),
			Resolve: r.resolve("createClubSetup", func(p graphql.ResolveParams) (any, error) {
				club, err := argInput[clubsetup.Club](p, "input")
				if err != nil {
					return nil, err
				}
				files, err := bindUploads(p)
				if err != nil {
					return nil, err
				}
				return clubs.Create(p.Context, service.CreateClubInput{
					Club:          club,
					Logo:          files.Logo,
					GalleryImages: files.GalleryImages,
				})
			}),
		}),
		NewField("updateClubSetup", &graphql.Field{
			Type: r.clubType(),
			Args: withUploads(graphql.FieldConfigArgument{
				"id": idArg,
				"input": required(r.types.Input(clubsetup.Club{}, InputSpec{
					Name:    "UpdateClubInput",
					Exclude: clubTrackingKeys,
				})),
			}),
			Resolve: r.resolve("updateClubSetup", func(p graphql.ResolveParams) (any, error) {
				id, err := argID(p, "id")
				if err != nil {
					return nil, err
				}
				files, err := bindUploads(p)
				if err != nil {
					return nil, err
				}
				return clubs.Update(p.Context, id, service.UpdateClubInput{
					Patch:         argPatch(p, "input"),
					Logo:          files.Logo,
					GalleryImages: files.GalleryImages,
				})
			}),
		}),
		NewField("deleteClub", &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
			Args: graphql.FieldConfigArgument{"id": idArg},
			Resolve: r.resolve("deleteClub", func(p graphql.ResolveParams) (any, error) {
				id, err := argID(p, "id")
				if err != nil {
					return nil, err
				}
				return clubs.Delete(p.Context, id)
			}),
		}),
		NewField("completeClubSetup", &graphql.Field{
			Type: r.clubType(),
			Args: graphql.FieldConfigArgument{
				"input": required(r.types.Input(setup.CompleteInput{}, InputSpec{
					Name:     "CompleteClubSetupInput",
					Required: []string{"clubId", "finalStep"},
				})),
			},
			Resolve: r.resolve("completeClubSetup", func(p graphql.ResolveParams) (any, error) {
				var in setup.CompleteInput
				if err := bind(p, "input", &in); err != nil {
					return nil, err
				}
				return clubs.CompleteClubSetup(p.Context, in)
			}),
		}),
		NewField("abandonClubSetup", &graphql.Field{
			Type: r.clubType(),
			Args: graphql.FieldConfigArgument{"clubId": idArg},
			Resolve: r.resolve("abandonClubSetup", func(p graphql.ResolveParams) (any, error) {
				clubID, err := argID(p, "clubId")
				if err != nil {
					return nil, err
				}
				return clubs.AbandonClubSetup(p.Context, clubID)
			}),
		}),
	}
}
