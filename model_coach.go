package clubsetup

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type LanguageProficiency struct {
	Language string        `json:"language"`
	Level    LanguageLevel `json:"level"`
}

type ExperienceCategory struct {
	Name      string  `json:"name"`
	StartDate string  `json:"startDate"`
	EndDate   *string `json:"endDate,omitempty"`
}

type Coach struct {
	bun.BaseModel `bun:"table:coach,alias:co"`

	ID                   uuid.UUID             `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	Name                 string                `bun:"name,notnull" json:"name"`
	Surname              string                `bun:"surname,notnull" json:"surname"`
	Email                string                `bun:"email,notnull" json:"email"`
	PhoneCountryCode     *string               `bun:"phone_country_code" json:"phoneCountryCode"`
	Phone                *string               `bun:"phone" json:"phone"`
	Avatar               *string               `bun:"avatar" json:"avatar"`
	Gender               *Gender               `bun:"gender" json:"gender"`
	Country              *string               `bun:"country" json:"country"`
	City                 *string               `bun:"city" json:"city"`
	Address              *string               `bun:"address,type:text" json:"address"`
	Languages            []LanguageProficiency `bun:"languages,type:jsonb" json:"languages"`
	Services             []uuid.UUID           `bun:"services,array,type:uuid[]" json:"services"`
	Education            *string               `bun:"education,type:text" json:"education"`
	ExperienceCategories []ExperienceCategory  `bun:"experience_categories,type:jsonb" json:"experienceCategories"`
	WorkExperience       *string               `bun:"work_experience,type:text" json:"workExperience"`
	OnlineBookingEnabled bool                  `bun:"online_booking_enabled,notnull,default:false" json:"onlineBookingEnabled"`
	Availability         []AvailableDay        `bun:"availability,type:jsonb" json:"availability"`
	Resources            *string               `bun:"resources" json:"resources"`
	HolidaySchedule      map[string]any        `bun:"holiday_schedule,type:jsonb" json:"holidaySchedule"`
	ClubID               uuid.UUID             `bun:"club_id,type:uuid,notnull" json:"clubId"`
	CreatedAt            time.Time             `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"createdAt"`
	UpdatedAt            time.Time             `bun:"updated_at,nullzero,notnull,default:current_timestamp" json:"updatedAt"`
}

type CoachAssignment struct {
	CoachID      string  `json:"coachId"`
	Salary       float64 `json:"salary"`
	AddToBalance bool    `json:"addToBalance"`
}

// CoachClass is a scheduled class template taught by one or more coaches.
type CoachClass struct {
	bun.BaseModel `bun:"table:coach_classes,alias:cc"`

	ID        uuid.UUID         `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	Title     string            `bun:"title,notnull" json:"title"`
	Service   []uuid.UUID       `bun:"service_ids,array,type:uuid[]" json:"service"`
	Group     []uuid.UUID       `bun:"group_ids,array,type:uuid[]" json:"group"`
	Resource  []uuid.UUID       `bun:"resource_ids,array,type:uuid[]" json:"resource"`
	PriceType PriceType         `bun:"price_type,notnull" json:"priceType"`
	Price     float64           `bun:"price,type:decimal(10,2),notnull" json:"price"`
	Coach     []CoachAssignment `bun:"coach,type:jsonb,notnull" json:"coach"`
	ClubID    uuid.UUID         `bun:"club_id,type:uuid,notnull" json:"clubId"`
	CreatedAt time.Time         `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"createdAt"`
	UpdatedAt time.Time         `bun:"updated_at,nullzero,notnull,default:current_timestamp" json:"updatedAt"`
}
