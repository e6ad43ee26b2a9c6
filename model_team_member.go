package clubsetup

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// TeamMember is a club staff account. Creating one completes the setup wizard.
type TeamMember struct {
	bun.BaseModel `bun:"table:team_members,alias:tm"`

	ID          uuid.UUID      `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	Name        string         `bun:"name,notnull" json:"name"`
	Surname     string         `bun:"surname,notnull" json:"surname"`
	Email       string         `bun:"email,notnull" json:"email"`
	Phone       *string        `bun:"phone" json:"phone"`
	CountryCode *string        `bun:"country_code" json:"countryCode"`
	Country     *string        `bun:"country" json:"country"`
	Gender      *Gender        `bun:"gender" json:"gender"`
	DateOfBirth *time.Time     `bun:"date_of_birth,type:date" json:"dateOfBirth"`
	Position    *string        `bun:"position" json:"position"`
	Bio         *string        `bun:"bio,type:text" json:"bio"`
	Avatar      *string        `bun:"avatar" json:"avatar"`
	Status      MemberStatus   `bun:"status,notnull,default:'active'" json:"status"`
	Permissions []Permission   `bun:"permissions,array" json:"permissions"`
	ClubOwner   *ClubOwnerType `bun:"club_owner" json:"club_owner"`
	Notes       *string        `bun:"notes,type:text" json:"notes"`
	ClubID      uuid.UUID      `bun:"club_id,type:uuid,notnull" json:"clubId"`
	CreatedAt   time.Time      `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"createdAt"`
	UpdatedAt   time.Time      `bun:"updated_at,nullzero,notnull,default:current_timestamp" json:"updatedAt"`
}

func (t *TeamMember) FullName() string {
	return strings.TrimSpace(t.Name + " " + t.Surname)
}

// FullPhone joins the country code and phone number, or returns an empty
// string when no phone is set.
func (t *TeamMember) FullPhone() string {
	if t.Phone == nil || *t.Phone == "" {
		return ""
	}
	if t.CountryCode == nil || *t.CountryCode == "" {
		return *t.Phone
	}
	return *t.CountryCode + " " + *t.Phone
}

func (t *TeamMember) IsActive() bool { return t.Status == MemberActive }

func (t *TeamMember) PermissionCount() int { return len(t.Permissions) }

func (t *TeamMember) HasPermission(p Permission) bool { return slices.Contains(t.Permissions, p) }

// AddPermission appends p unless already present.
func (t *TeamMember) AddPermission(p Permission) {
	if !t.HasPermission(p) {
		t.Permissions = append(t.Permissions, p)
	}
}

func (t *TeamMember) RemovePermission(p Permission) {
	t.Permissions = slices.DeleteFunc(t.Permissions, func(existing Permission) bool {
		return existing == p
	})
}
