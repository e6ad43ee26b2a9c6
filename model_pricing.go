package clubsetup

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type Membership struct {
	bun.BaseModel `bun:"table:membership,alias:mem"`

	ID                   uuid.UUID      `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	Title                string         `bun:"title,notnull" json:"title"`
	Services             []uuid.UUID    `bun:"services,array,type:uuid[]" json:"services"`
	Price                *float64       `bun:"price,type:decimal(12,2)" json:"price"`
	Currency             *string        `bun:"currency,type:varchar(8)" json:"currency"`
	NumberOfBookingHours *int           `bun:"number_of_booking_hours" json:"numberOfBookingHours"`
	Resources            []uuid.UUID    `bun:"resources,array,type:uuid[]" json:"resources"`
	MembershipsLimit     *int           `bun:"memberships_limit" json:"membershipsLimit"`
	FixedDiscount        *int           `bun:"fixed_discount" json:"fixedDiscount"`
	PeriodType           *string        `bun:"period_type,type:varchar(32)" json:"periodType"`
	StartAt              *time.Time     `bun:"start_at,type:timestamptz" json:"startAt"`
	EndAt                *time.Time     `bun:"end_at,type:timestamptz" json:"endAt"`
	Status               ActivityStatus `bun:"status,notnull,default:'active'" json:"status"`
	ClubID               uuid.UUID      `bun:"club_id,type:uuid,notnull" json:"clubId"`
	CreatedAt            time.Time      `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"createdAt"`
	UpdatedAt            time.Time      `bun:"updated_at,nullzero,notnull,default:current_timestamp" json:"updatedAt"`
}

// Pricing is a time-window price rule.
type Pricing struct {
	bun.BaseModel `bun:"table:pricing,alias:pr"`

	ID            uuid.UUID   `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	Weekdays      []Weekday   `bun:"weekdays,array" json:"weekdays"`
	StartTime     string      `bun:"start_time,type:time,notnull" json:"startTime"`
	EndTime       string      `bun:"end_time,type:time,notnull" json:"endTime"`
	ResourceIDs   []uuid.UUID `bun:"resource_ids,array,type:uuid[]" json:"resourceIds"`
	Price         *float64    `bun:"price,type:decimal(12,2)" json:"price"`
	Currency      *string     `bun:"currency,type:varchar(8)" json:"currency"`
	UserGroupIDs  []uuid.UUID `bun:"user_group_ids,array,type:uuid[]" json:"userGroupIds"`
	MembershipIDs []uuid.UUID `bun:"membership_ids,array,type:uuid[]" json:"membershipIds"`
	Type          string      `bun:"type,type:varchar(20),notnull,default:'single'" json:"type"`
	Period        string      `bun:"period,type:varchar(20),notnull,default:'single'" json:"period"`
	ClubID        uuid.UUID   `bun:"club_id,type:uuid,notnull" json:"clubId"`
	CreatedAt     time.Time   `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"createdAt"`
	UpdatedAt     time.Time   `bun:"updated_at,nullzero,notnull,default:current_timestamp" json:"updatedAt"`
}

type PromoCode struct {
	bun.BaseModel `bun:"table:promocode,alias:promo"`

	ID                 uuid.UUID       `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	Name               *string         `bun:"name,type:text" json:"name"`
	ServiceIDs         []string        `bun:"service_ids,array" json:"serviceIds"`
	ResourceIDs        []uuid.UUID     `bun:"resource_ids,array,type:uuid[]" json:"resourceIds"`
	UserGroupIDs       []uuid.UUID     `bun:"user_group_ids,array,type:uuid[]" json:"userGroupIds"`
	MembershipIDs      []uuid.UUID     `bun:"membership_ids,array,type:uuid[]" json:"membershipIds"`
	PromoPeriod        *string         `bun:"promo_period,type:text" json:"promo_period"`
	CustomPeriodNumber *int            `bun:"custom_period_number" json:"custom_period_number"`
	CustomPeriodString *string         `bun:"custom_period_string,type:text" json:"custom_period_string"`
	PriceType          *PromoPriceType `bun:"price_type,type:text" json:"price_type"`
	Amount             *float64        `bun:"amount,type:decimal(12,2)" json:"amount"`
	ClubID             uuid.UUID       `bun:"club_id,type:uuid,notnull" json:"clubId"`
	CreatedAt          time.Time       `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"createdAt"`
	UpdatedAt          time.Time       `bun:"updated_at,nullzero,notnull,default:current_timestamp" json:"updatedAt"`
}

type UserGroup struct {
	bun.BaseModel `bun:"table:user_group,alias:ug"`

	ID            uuid.UUID      `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	Title         string         `bun:"title,notnull" json:"title"`
	Color         string         `bun:"color,notnull" json:"color"`
	Services      []uuid.UUID    `bun:"services,array,type:uuid[]" json:"services"`
	FixedDiscount *int           `bun:"fixed_discount" json:"fixedDiscount"`
	MaxCustomers  *int           `bun:"max_customers" json:"maxCustomers"`
	Status        ActivityStatus `bun:"status,notnull,default:'active'" json:"status"`
	ClubID        uuid.UUID      `bun:"club_id,type:uuid,notnull" json:"clubId"`
	CreatedAt     time.Time      `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"createdAt"`
	UpdatedAt     time.Time      `bun:"updated_at,nullzero,notnull,default:current_timestamp" json:"updatedAt"`
}
