// Package service holds the per-entity business logic behind the GraphQL
// resolvers.
package service

import (
	"context"

	"github.com/google/uuid"

	clubsetup "github.com/goliatone/go-club-setup"
	"github.com/goliatone/go-club-setup/internal/events"
	"github.com/goliatone/go-club-setup/internal/logging"
	"github.com/goliatone/go-club-setup/internal/setup"
	"github.com/goliatone/go-club-setup/internal/storage"
	"github.com/goliatone/go-club-setup/internal/store"
)

type options struct {
	logger  logging.Logger
	emitter events.Emitter
}

type Option func(*options)

func WithLogger(logger logging.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithEmitter sets where setup step events go. Defaults to events.Nop.
func WithEmitter(emitter events.Emitter) Option {
	return func(o *options) {
		if emitter != nil {
			o.emitter = emitter
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{
		logger:  logging.Nop(),
		emitter: events.Nop,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Stores groups the persistence ports of every entity.
type Stores struct {
	Clubs                 store.Store[*clubsetup.Club]
	LocationContacts      store.Store[*clubsetup.LocationContact]
	WorkingHoursCalendars store.Store[*clubsetup.WorkingHoursCalendar]
	Resources             store.Store[*clubsetup.Resource]
	Amenities             store.Store[*clubsetup.Amenity]
	Coaches               store.Store[*clubsetup.Coach]
	CoachClasses          store.Store[*clubsetup.CoachClass]
	Memberships           store.Store[*clubsetup.Membership]
	Pricing               store.Store[*clubsetup.Pricing]
	PromoCodes            store.Store[*clubsetup.PromoCode]
	UserGroups            store.Store[*clubsetup.UserGroup]
	TeamMembers           store.Store[*clubsetup.TeamMember]
	Extras                store.Store[*clubsetup.Extras]
}

// NewStores wraps the bun repositories.
func NewStores(repos clubsetup.Repositories) Stores {
	return Stores{
		Clubs:                 store.New(repos.Clubs, "Club"),
		LocationContacts:      store.New(repos.LocationContacts, "Location contact"),
		WorkingHoursCalendars: store.New(repos.WorkingHoursCalendars, "Working hours calendar"),
		Resources:             store.New(repos.Resources, "Resource"),
		Amenities:             store.New(repos.Amenities, "Amenity"),
		Coaches:               store.New(repos.Coaches, "Coach"),
		CoachClasses:          store.New(repos.CoachClasses, "Coach class"),
		Memberships:           store.New(repos.Memberships, "Membership"),
		Pricing:               store.New(repos.Pricing, "Pricing"),
		PromoCodes:            store.New(repos.PromoCodes, "Promo code"),
		UserGroups:            store.New(repos.UserGroups, "User group"),
		TeamMembers:           store.New(repos.TeamMembers, "Team member"),
		Extras:                store.New(repos.Extras, "Extras configuration"),
	}
}

// IntegrationStatsReader aggregates extras adoption.
type IntegrationStatsReader interface {
	IntegrationStats(ctx context.Context, clubID *uuid.UUID) (clubsetup.IntegrationStats, error)
}

// Services is the full set of entity services.
type Services struct {
	Clubs            *ClubService
	LocationContacts *LocationContactService
	WorkingHours     *WorkingHoursService
	Resources        *ResourceService
	Amenities        *AmenityService
	Coaches          *CoachService
	CoachClasses     *CoachClassService
	Memberships      *MembershipService
	Pricing          *PricingService
	PromoCodes       *PromoCodeService
	UserGroups       *UserGroupService
	TeamMembers      *TeamMemberService
	Extras           *ExtrasService
}

// New builds every service. Child services report wizard progress through
// the emitter; the tracker only serves club creation and the explicit
// complete/abandon operations.
func New(stores Stores, tracker *setup.Tracker, uploader storage.Uploader, stats IntegrationStatsReader, opts ...Option) *Services {
	return &Services{
		Clubs:            NewClubService(stores.Clubs, tracker, uploader, opts...),
		LocationContacts: NewLocationContactService(stores.LocationContacts, opts...),
		WorkingHours:     NewWorkingHoursService(stores.WorkingHoursCalendars, opts...),
		Resources:        NewResourceService(stores.Resources, opts...),
		Amenities:        NewAmenityService(stores.Amenities, opts...),
		Coaches:          NewCoachService(stores.Coaches, opts...),
		CoachClasses:     NewCoachClassService(stores.CoachClasses, opts...),
		Memberships:      NewMembershipService(stores.Memberships, opts...),
		Pricing:          NewPricingService(stores.Pricing, opts...),
		PromoCodes:       NewPromoCodeService(stores.PromoCodes, opts...),
		UserGroups:       NewUserGroupService(stores.UserGroups, opts...),
		TeamMembers:      NewTeamMemberService(stores.TeamMembers, opts...),
		Extras:           NewExtrasService(stores.Extras, stats, opts...),
	}
}
