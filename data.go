package clubsetup

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	persistence "github.com/goliatone/go-persistence-bun"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/extra/bundebug"
)

// Repositories groups the generic repositories for every setup entity.
type Repositories struct {
	Clubs                 repository.Repository[*Club]
	LocationContacts      repository.Repository[*LocationContact]
	WorkingHoursCalendars repository.Repository[*WorkingHoursCalendar]
	Resources             repository.Repository[*Resource]
	Amenities             repository.Repository[*Amenity]
	Coaches               repository.Repository[*Coach]
	CoachClasses          repository.Repository[*CoachClass]
	Memberships           repository.Repository[*Membership]
	Pricing               repository.Repository[*Pricing]
	PromoCodes            repository.Repository[*PromoCode]
	UserGroups            repository.Repository[*UserGroup]
	TeamMembers           repository.Repository[*TeamMember]
	Extras                repository.Repository[*Extras]
}

// DatabaseConfig is the subset of the service configuration needed to open
// the Postgres connection.
type DatabaseConfig interface {
	DSN() string
	GetDebug() bool
}

// Query logging is attached separately through bundebug.
type persistenceConfig struct {
	dsn string
}

func (p persistenceConfig) GetDebug() bool                { return false }
func (p persistenceConfig) GetDriver() string             { return "postgres" }
func (p persistenceConfig) GetServer() string             { return p.dsn }
func (p persistenceConfig) GetPingTimeout() time.Duration { return 5 * time.Second }
func (p persistenceConfig) GetOtelIdentifier() string     { return "club-setup" }

// Models lists every table owned by the service, parents first.
func Models() []any {
	return []any{
		(*Club)(nil),
		(*LocationContact)(nil),
		(*WorkingHoursCalendar)(nil),
		(*Resource)(nil),
		(*Amenity)(nil),
		(*Coach)(nil),
		(*CoachClass)(nil),
		(*Membership)(nil),
		(*Pricing)(nil),
		(*PromoCode)(nil),
		(*UserGroup)(nil),
		(*TeamMember)(nil),
		(*Extras)(nil),
	}
}

var clubChildren = []struct {
	model any
	table string
}{
	{(*LocationContact)(nil), "location_contact"},
	{(*WorkingHoursCalendar)(nil), "working_hours"},
	{(*Resource)(nil), "resource"},
	{(*Amenity)(nil), "amenity"},
	{(*Coach)(nil), "coach"},
	{(*CoachClass)(nil), "coach_classes"},
	{(*Membership)(nil), "membership"},
	{(*Pricing)(nil), "pricing"},
	{(*PromoCode)(nil), "promocode"},
	{(*UserGroup)(nil), "user_group"},
	{(*TeamMember)(nil), "team_members"},
	{(*Extras)(nil), "extras"},
}

func registerModels() {
	persistence.RegisterModel(Models()...)
}

// SetupDatabase opens Postgres through lib/pq and wraps it in a
// go-persistence-bun client.
func SetupDatabase(ctx context.Context, cfg DatabaseConfig) (*persistence.Client, error) {
	registerModels()

	sqlDB, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	client, err := persistence.New(persistenceConfig{dsn: cfg.DSN()}, sqlDB, pgdialect.New())
	if err != nil {
		return nil, err
	}

	if cfg.GetDebug() {
		client.DB().AddQueryHook(bundebug.NewQueryHook(bundebug.WithVerbose(true)))
	}

	if err := client.DB().PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return client, nil
}

// MigrateSchema creates missing tables and the club_id lookup indexes.
func MigrateSchema(ctx context.Context, db *bun.DB) error {
	for _, model := range Models() {
		if _, err := db.NewCreateTable().IfNotExists().Model(model).Exec(ctx); err != nil {
			return fmt.Errorf("create table for %T: %w", model, err)
		}
	}

	for _, child := range clubChildren {
		index := fmt.Sprintf("idx_%s_club_id", child.table)
		if _, err := db.NewCreateIndex().
			IfNotExists().
			Model(child.model).
			Index(index).
			Column("club_id").
			Exec(ctx); err != nil {
			return fmt.Errorf("create index %s: %w", index, err)
		}
	}

	return nil
}

func RegisterRepositories(db *bun.DB) Repositories {
	return Repositories{
		Clubs: repository.NewRepository(db, handlers(
			func() *Club { return &Club{} },
			func(c *Club) *uuid.UUID { return &c.ID },
		)),
		LocationContacts: repository.NewRepository(db, handlers(
			func() *LocationContact { return &LocationContact{} },
			func(l *LocationContact) *uuid.UUID { return &l.ID },
		)),
		WorkingHoursCalendars: repository.NewRepository(db, handlers(
			func() *WorkingHoursCalendar { return &WorkingHoursCalendar{} },
			func(w *WorkingHoursCalendar) *uuid.UUID { return &w.ID },
		)),
		Resources: repository.NewRepository(db, handlers(
			func() *Resource { return &Resource{} },
			func(r *Resource) *uuid.UUID { return &r.ID },
		)),
		Amenities: NewAmenityRepository(db),
		Coaches: repository.NewRepository(db, handlers(
			func() *Coach { return &Coach{} },
			func(c *Coach) *uuid.UUID { return &c.ID },
		)),
		CoachClasses: repository.NewRepository(db, handlers(
			func() *CoachClass { return &CoachClass{} },
			func(c *CoachClass) *uuid.UUID { return &c.ID },
		)),
		Memberships: repository.NewRepository(db, handlers(
			func() *Membership { return &Membership{} },
			func(m *Membership) *uuid.UUID { return &m.ID },
		)),
		Pricing: repository.NewRepository(db, handlers(
			func() *Pricing { return &Pricing{} },
			func(p *Pricing) *uuid.UUID { return &p.ID },
		)),
		PromoCodes: repository.NewRepository(db, handlers(
			func() *PromoCode { return &PromoCode{} },
			func(p *PromoCode) *uuid.UUID { return &p.ID },
		)),
		UserGroups: repository.NewRepository(db, handlers(
			func() *UserGroup { return &UserGroup{} },
			func(u *UserGroup) *uuid.UUID { return &u.ID },
		)),
		TeamMembers: repository.NewRepository(db, repository.ModelHandlers[*TeamMember]{
			NewRecord: func() *TeamMember { return &TeamMember{} },
			GetID: func(t *TeamMember) uuid.UUID {
				if t == nil {
					return uuid.Nil
				}
				return t.ID
			},
			SetID: func(t *TeamMember, id uuid.UUID) {
				if t != nil {
					t.ID = id
				}
			},
			GetIdentifier: func() string { return "email" },
			GetIdentifierValue: func(t *TeamMember) string {
				if t == nil {
					return ""
				}
				return t.Email
			},
		}),
		Extras: repository.NewRepository(db, handlers(
			func() *Extras { return &Extras{} },
			func(e *Extras) *uuid.UUID { return &e.ID },
		)),
	}
}

// NewAmenityRepository builds the amenity repository on any bun dialect.
func NewAmenityRepository(db *bun.DB) repository.Repository[*Amenity] {
	return repository.NewRepository(db, handlers(
		func() *Amenity { return &Amenity{} },
		func(a *Amenity) *uuid.UUID { return &a.ID },
	))
}

func handlers[T any](newRecord func() *T, id func(*T) *uuid.UUID) repository.ModelHandlers[*T] {
	return repository.ModelHandlers[*T]{
		NewRecord: newRecord,
		GetID: func(record *T) uuid.UUID {
			if record == nil {
				return uuid.Nil
			}
			return *id(record)
		},
		SetID: func(record *T, value uuid.UUID) {
			if record != nil {
				*id(record) = value
			}
		},
		GetIdentifier: func() string { return "id" },
		GetIdentifierValue: func(record *T) string {
			if record == nil {
				return ""
			}
			return id(record).String()
		},
	}
}
