package clubsetup

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Resource is a bookable court, field or room.
type Resource struct {
	bun.BaseModel `bun:"table:resource,alias:res"`

	ID                  uuid.UUID        `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	Title               string           `bun:"title,notnull" json:"title"`
	Service             ResourceService  `bun:"service,notnull" json:"service"`
	Type                ResourceType     `bun:"type,notnull" json:"type"`
	Property            ResourceProperty `bun:"property,notnull" json:"property"`
	Description         *string          `bun:"description,type:text" json:"description"`
	EnableOnlineBooking bool             `bun:"enable_online_booking,notnull,default:true" json:"enableOnlineBooking"`
	Color               string           `bun:"color,notnull" json:"color"`
	Status              ResourceStatus   `bun:"status,notnull,default:'active'" json:"status"`
	Note                *string          `bun:"note,type:text" json:"note"`
	ClubID              uuid.UUID        `bun:"club_id,type:uuid,notnull" json:"clubId"`
	CreatedAt           time.Time        `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"createdAt"`
	UpdatedAt           time.Time        `bun:"updated_at,nullzero,notnull,default:current_timestamp" json:"updatedAt"`
}

// Amenity holds the on-site facilities of a club. One per club.
type Amenity struct {
	bun.BaseModel `bun:"table:amenity,alias:am"`

	ID           uuid.UUID `bun:"id,pk,type:uuid" json:"id"`
	ClubID       uuid.UUID `bun:"club_id,type:uuid,notnull,unique" json:"clubId"`
	Restaurant   bool      `bun:"restaurant,notnull,default:false" json:"restaurant"`
	Hotel        bool      `bun:"hotel,notnull,default:false" json:"hotel"`
	Drinks       bool      `bun:"drinks,notnull,default:false" json:"drinks"`
	Food         bool      `bun:"food,notnull,default:false" json:"food"`
	HotShower    bool      `bun:"hot_shower,notnull,default:false" json:"hotShower"`
	KidsRoom     bool      `bun:"kids_room,notnull,default:false" json:"kidsRoom"`
	Wifi         bool      `bun:"wifi,notnull,default:false" json:"wifi"`
	Bar          bool      `bun:"bar,notnull,default:false" json:"bar"`
	ChangingRoom bool      `bun:"changing_room,notnull,default:false" json:"changingRoom"`
	CreatedAt    time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"createdAt"`
	UpdatedAt    time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp" json:"updatedAt"`
}
