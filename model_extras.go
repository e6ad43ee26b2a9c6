package clubsetup

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// ExtrasUserLimit caps hour bank or wishlist usage for one user tier.
type ExtrasUserLimit struct {
	UserType      ExtrasUserType  `json:"userType"`
	LimitValue    float64         `json:"limitValue"`
	LimitType     ExtrasLimitType `json:"limitType"`
	Currency      *string         `json:"currency,omitempty"`
	Configuration *string         `json:"configuration,omitempty"`
}

// Extras stores the optional features and third-party integrations of a club.
type Extras struct {
	bun.BaseModel `bun:"table:extras,alias:ex"`

	ID                     uuid.UUID         `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	ClubID                 uuid.UUID         `bun:"club_id,type:uuid,notnull" json:"clubId"`
	HourBank               bool              `bun:"hour_bank,notnull,default:false" json:"hourBank"`
	HourBankLimits         []ExtrasUserLimit `bun:"hour_bank_limits,type:jsonb,notnull,default:'[]'" json:"hourBankLimits"`
	Wishlist               bool              `bun:"wishlist,notnull,default:false" json:"wishlist"`
	WishlistDescription    *string           `bun:"wishlist_description,type:text" json:"wishlistDescription"`
	WishlistLimits         []ExtrasUserLimit `bun:"wishlist_limits,type:jsonb,notnull,default:'[]'" json:"wishlistLimits"`
	ExternalBookingSystem  *string           `bun:"external_booking_system,type:text" json:"externalBookingSystem"`
	PaymentGateway         *string           `bun:"payment_gateway,type:text" json:"paymentGateway"`
	EmailMarketing         *string           `bun:"email_marketing,type:text" json:"emailMarketing"`
	AnalyticsIntegration   *string           `bun:"analytics_integration,type:text" json:"analyticsIntegration"`
	SocialMediaIntegration *string           `bun:"social_media_integration,type:text" json:"socialMediaIntegration"`
	LoyaltyProgram         map[string]any    `bun:"loyalty_program,type:jsonb" json:"loyaltyProgram"`
	NotificationSettings   map[string]any    `bun:"notification_settings,type:jsonb" json:"notificationSettings"`
	APIKeys                map[string]any    `bun:"api_keys,type:jsonb" json:"apiKeys"`
	Status                 MemberStatus      `bun:"status,notnull,default:'active'" json:"status"`
	Notes                  *string           `bun:"notes,type:text" json:"notes"`
	CreatedAt              time.Time         `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"createdAt"`
	UpdatedAt              time.Time         `bun:"updated_at,nullzero,notnull,default:current_timestamp" json:"updatedAt"`
}

// Integration names reported by ActiveIntegrations.
const (
	IntegrationExternalBooking = "externalBooking"
	IntegrationPaymentGateway  = "paymentGateway"
	IntegrationEmailMarketing  = "emailMarketing"
	IntegrationAnalytics       = "analytics"
	IntegrationSocialMedia     = "socialMedia"
)

func (e *Extras) IsActive() bool { return e.Status == MemberActive }

func (e *Extras) HourBankLimitCount() int { return len(e.HourBankLimits) }

func (e *Extras) WishlistLimitCount() int { return len(e.WishlistLimits) }

func (e *Extras) IntegrationCount() int { return len(e.ActiveIntegrations()) }

func (e *Extras) EnabledFeatures() []string {
	features := []string{}
	if e.HourBank {
		features = append(features, string(FeatureHourBank))
	}
	if e.Wishlist {
		features = append(features, string(FeatureWishlist))
	}
	return features
}

// ActiveIntegrations lists integrations with a non-empty configuration.
func (e *Extras) ActiveIntegrations() []string {
	integrations := []string{}
	for _, item := range []struct {
		name  string
		value *string
	}{
		{IntegrationExternalBooking, e.ExternalBookingSystem},
		{IntegrationPaymentGateway, e.PaymentGateway},
		{IntegrationEmailMarketing, e.EmailMarketing},
		{IntegrationAnalytics, e.AnalyticsIntegration},
		{IntegrationSocialMedia, e.SocialMediaIntegration},
	} {
		if item.value != nil && *item.value != "" {
			integrations = append(integrations, item.name)
		}
	}
	return integrations
}

// SetFeature flips one of the toggleable features.
func (e *Extras) SetFeature(feature ExtrasFeature, enabled bool) bool {
	switch feature {
	case FeatureHourBank:
		e.HourBank = enabled
	case FeatureWishlist:
		e.Wishlist = enabled
	default:
		return false
	}
	return true
}

// IntegrationStats aggregates feature adoption across extras records.
type IntegrationStats struct {
	HourBankEnabled      int `json:"hourBankEnabled"`
	WishlistEnabled      int `json:"wishlistEnabled"`
	ExternalBookingCount int `json:"externalBookingCount"`
	PaymentGatewayCount  int `json:"paymentGatewayCount"`
	EmailMarketingCount  int `json:"emailMarketingCount"`
	AnalyticsCount       int `json:"analyticsCount"`
	SocialMediaCount     int `json:"socialMediaCount"`
}
