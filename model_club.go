package clubsetup

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Club is the aggregate root of a setup session. Child entities reference it
// through club_id; deleting a club does not cascade.
type Club struct {
	bun.BaseModel `bun:"table:club,alias:club"`

	ID                 uuid.UUID           `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	Title              string              `bun:"title,notnull" json:"title"`
	Description        *string             `bun:"description,type:text" json:"description"`
	TypeOfClub         *string             `bun:"type_of_club" json:"typeOfClub"`
	Sports             []SportsType        `bun:"sports,array" json:"sports"`
	AdditionalServices []AdditionalService `bun:"additional_services,array" json:"additionalServices"`
	IsPartOfChain      bool                `bun:"is_part_of_chain,notnull,default:false" json:"isPartOfChain"`
	ChainID            *string             `bun:"chain_id" json:"chainId"`
	Logo               *string             `bun:"logo" json:"logo"`
	GalleryImages      []string            `bun:"gallery_images,array" json:"galleryImages"`

	EnableOnlineBookings             bool `bun:"enable_online_bookings,notnull,default:false" json:"enableOnlineBookings"`
	EnableClassBookings              bool `bun:"enable_class_bookings,notnull,default:false" json:"enableClassBookings"`
	EnableOpenMatches                bool `bun:"enable_open_matches,notnull,default:false" json:"enableOpenMatches"`
	EnableAcademyManagement          bool `bun:"enable_academy_management,notnull,default:false" json:"enableAcademyManagement"`
	EnableEventManagement            bool `bun:"enable_event_management,notnull,default:false" json:"enableEventManagement"`
	EnableLeagueTournamentManagement bool `bun:"enable_league_tournament_management,notnull,default:false" json:"enableLeagueTournamentManagement"`

	Currency      *string `bun:"currency" json:"currency"`
	OnlinePayment bool    `bun:"online_payment,notnull,default:false" json:"onlinePayment"`
	OnsitePayment bool    `bun:"onsite_payment,notnull,default:false" json:"onsitePayment"`
	ByInvoice     bool    `bun:"by_invoice,notnull,default:false" json:"byInvoice"`

	SetupStatus    SetupStatus `bun:"setup_status,default:'draft'" json:"setupStatus"`
	CurrentStep    *SetupStep  `bun:"current_step" json:"currentStep"`
	CompletedSteps []SetupStep `bun:"completed_steps,array" json:"completedSteps"`
	LastSavedAt    *time.Time  `bun:"last_saved_at" json:"lastSavedAt"`

	CreatedAt time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"createdAt"`
	UpdatedAt time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp" json:"updatedAt"`

	LocationContact      *LocationContact      `bun:"rel:has-one,join:id=club_id" json:"locationContact,omitempty"`
	WorkingHoursCalendar *WorkingHoursCalendar `bun:"rel:has-one,join:id=club_id" json:"workingHoursCalendar,omitempty"`
	Amenity              *Amenity              `bun:"rel:has-one,join:id=club_id" json:"amenity,omitempty"`
	Resources            []*Resource           `bun:"rel:has-many,join:id=club_id" json:"resources,omitempty"`
	Coaches              []*Coach              `bun:"rel:has-many,join:id=club_id" json:"coaches,omitempty"`
	TeamMembers          []*TeamMember         `bun:"rel:has-many,join:id=club_id" json:"teamMembers,omitempty"`
	Memberships          []*Membership         `bun:"rel:has-many,join:id=club_id" json:"memberships,omitempty"`
	Pricing              []*Pricing            `bun:"rel:has-many,join:id=club_id" json:"pricing,omitempty"`
	PromoCodes           []*PromoCode          `bun:"rel:has-many,join:id=club_id" json:"promocodes,omitempty"`
	UserGroups           []*UserGroup          `bun:"rel:has-many,join:id=club_id" json:"userGroups,omitempty"`
}

// HasCompleted reports whether step was recorded as completed.
func (c *Club) HasCompleted(step SetupStep) bool {
	if c == nil {
		return false
	}
	for _, s := range c.CompletedSteps {
		if s == step {
			return true
		}
	}
	return false
}

// ClubRelations maps the relation names exposed to clients onto the bun
// relation (struct field) names.
var ClubRelations = map[string]string{
	"locationContact":      "LocationContact",
	"workingHoursCalendar": "WorkingHoursCalendar",
	"amenity":              "Amenity",
	"resources":            "Resources",
	"coaches":              "Coaches",
	"teamMembers":          "TeamMembers",
	"memberships":          "Memberships",
	"pricing":              "Pricing",
	"promocodes":           "PromoCodes",
	"userGroups":           "UserGroups",
}

// DefaultClubRelations is loaded by list queries when the caller does not
// ask for a specific set.
var DefaultClubRelations = []string{
	"locationContact",
	"workingHoursCalendar",
	"resources",
	"amenity",
	"coaches",
	"teamMembers",
	"memberships",
	"pricing",
	"promocodes",
	"userGroups",
}

type LocationContact struct {
	bun.BaseModel `bun:"table:location_contact,alias:lc"`

	ID               uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	ClubID           uuid.UUID `bun:"club_id,type:uuid,notnull,unique" json:"clubId"`
	Address          string    `bun:"address,notnull" json:"address"`
	City             string    `bun:"city,notnull" json:"city"`
	Country          string    `bun:"country,notnull" json:"country"`
	Description      *string   `bun:"description,type:text" json:"description"`
	Email            *string   `bun:"email" json:"email"`
	PhoneCountryCode *string   `bun:"phone_country_code" json:"phoneCountryCode"`
	PhoneNumber      *string   `bun:"phone_number" json:"phoneNumber"`
	WebsiteLink      *string   `bun:"website_link" json:"websiteLink"`
	InstagramLink    *string   `bun:"instagram_link" json:"instagramLink"`
	TiktokLink       *string   `bun:"tiktok_link" json:"tiktokLink"`
	FacebookLink     *string   `bun:"facebook_link" json:"facebookLink"`
	CreatedAt        time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"createdAt"`
	UpdatedAt        time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp" json:"updatedAt"`
}

type TimeSlot struct {
	Start       string `json:"start"`
	End         string `json:"end"`
	IsAvailable *bool  `json:"isAvailable,omitempty"`
}

type AvailableDay struct {
	Day       Weekday    `json:"day"`
	IsOpen    bool       `json:"isOpen"`
	TimeSlots []TimeSlot `json:"timeSlots,omitempty"`
}

type UnavailableDay struct {
	Date      string     `json:"date"`
	IsClosed  bool       `json:"isClosed"`
	TimeSlots []TimeSlot `json:"timeSlots,omitempty"`
}

type CalendarSettings struct {
	FirstDayOfWeek            Weekday `json:"firstDayOfWeek"`
	DefaultIntervalInMins     int     `json:"default_interval_in_mins"`
	MinBookingTimeInMins      int     `json:"min_booking_time_in_mins"`
	CancellationBufferInHours int     `json:"cancellation_buffer_in_hours"`
	ShowBookingForInWeeks     string  `json:"show_booking_for_in_weeks"`
}

// DefaultCalendarSettings fills the gaps of a partially specified calendar.
func DefaultCalendarSettings() CalendarSettings {
	return CalendarSettings{
		FirstDayOfWeek:            Monday,
		DefaultIntervalInMins:     60,
		MinBookingTimeInMins:      60,
		CancellationBufferInHours: 24,
		ShowBookingForInWeeks:     "2",
	}
}

type WorkingHoursCalendar struct {
	bun.BaseModel `bun:"table:working_hours,alias:wh"`

	ID               uuid.UUID         `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	ClubID           uuid.UUID         `bun:"club_id,type:uuid,notnull,unique" json:"clubId"`
	Timezone         *string           `bun:"timezone" json:"timezone"`
	AvailableDays    []AvailableDay    `bun:"available_days,type:jsonb,notnull" json:"availableDays"`
	UnavailableDays  []UnavailableDay  `bun:"unavailable_days,type:jsonb" json:"unavailableDays"`
	CalendarSettings *CalendarSettings `bun:"calendar_settings,type:jsonb" json:"calendarSettings"`
	CreatedAt        time.Time         `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"createdAt"`
	UpdatedAt        time.Time         `bun:"updated_at,nullzero,notnull,default:current_timestamp" json:"updatedAt"`
}
