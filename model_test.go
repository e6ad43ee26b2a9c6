package clubsetup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestTeamMemberComputed(t *testing.T) {
	tests := []struct {
		name      string
		member    TeamMember
		fullName  string
		fullPhone string
		active    bool
	}{
		{
			name:      "full record",
			member:    TeamMember{Name: "Ana", Surname: "Silva", Phone: strPtr("912345678"), CountryCode: strPtr("+351"), Status: MemberActive},
			fullName:  "Ana Silva",
			fullPhone: "+351 912345678",
			active:    true,
		},
		{
			name:      "phone without country code",
			member:    TeamMember{Name: "Rui", Phone: strPtr("912345678"), Status: MemberSuspended},
			fullName:  "Rui",
			fullPhone: "912345678",
		},
		{
			name:     "no phone",
			member:   TeamMember{Name: "Rita", Surname: "Costa", CountryCode: strPtr("+351"), Status: MemberInactive},
			fullName: "Rita Costa",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.fullName, tt.member.FullName())
			assert.Equal(t, tt.fullPhone, tt.member.FullPhone())
			assert.Equal(t, tt.active, tt.member.IsActive())
		})
	}
}

func TestTeamMemberPermissions(t *testing.T) {
	member := &TeamMember{}

	member.AddPermission(PermManageCoaches)
	member.AddPermission(PermManageCoaches)
	member.AddPermission(PermManageFinances)
	assert.Equal(t, []Permission{PermManageCoaches, PermManageFinances}, member.Permissions)
	assert.Equal(t, 2, member.PermissionCount())
	assert.True(t, member.HasPermission(PermManageFinances))

	member.RemovePermission(PermManageCoaches)
	member.RemovePermission(PermManageClasses)
	assert.Equal(t, []Permission{PermManageFinances}, member.Permissions)
	assert.False(t, member.HasPermission(PermManageCoaches))
}

func TestExtrasComputed(t *testing.T) {
	extras := &Extras{
		HourBank:             true,
		HourBankLimits:       []ExtrasUserLimit{{UserType: UserTypeDefault, LimitValue: 10}},
		PaymentGateway:       strPtr("stripe"),
		EmailMarketing:       strPtr(""),
		AnalyticsIntegration: strPtr("ga4"),
		Status:               MemberActive,
	}

	assert.True(t, extras.IsActive())
	assert.Equal(t, []string{"hourBank"}, extras.EnabledFeatures())
	assert.Equal(t, []string{IntegrationPaymentGateway, IntegrationAnalytics}, extras.ActiveIntegrations())
	assert.Equal(t, 2, extras.IntegrationCount())
	assert.Equal(t, 1, extras.HourBankLimitCount())
	assert.Equal(t, 0, extras.WishlistLimitCount())

	assert.True(t, extras.SetFeature(FeatureWishlist, true))
	assert.False(t, extras.SetFeature(ExtrasFeature("loyalty"), true))
	assert.Equal(t, []string{"hourBank", "wishlist"}, extras.EnabledFeatures())

	empty := &Extras{Status: MemberInactive}
	assert.False(t, empty.IsActive())
	assert.Empty(t, empty.EnabledFeatures())
	assert.NotNil(t, empty.ActiveIntegrations())
}

func TestSetupStepOrder(t *testing.T) {
	steps := SetupStep("").Values()
	assert.Len(t, steps, 11)
	assert.Equal(t, StepClubSetup, steps[0])
	assert.Equal(t, StepTeamMembers, steps[len(steps)-1])

	assert.Equal(t, 0, StepClubSetup.Index())
	assert.Equal(t, 9, StepCoaches.Index())
	assert.Equal(t, -1, SetupStep("payments").Index())

	assert.True(t, StepExtrasIntegrations.Valid())
	assert.False(t, SetupStep("CLUB_SETUP").Valid())
}

func TestClubHasCompleted(t *testing.T) {
	var nilClub *Club
	assert.False(t, nilClub.HasCompleted(StepClubSetup))

	club := &Club{CompletedSteps: []SetupStep{StepClubSetup, StepResources}}
	assert.True(t, club.HasCompleted(StepResources))
	assert.False(t, club.HasCompleted(StepAmenities))
}

func TestEnumValidation(t *testing.T) {
	assert.True(t, SetupStatusAbandoned.Valid())
	assert.False(t, SetupStatus("archived").Valid())
	assert.True(t, Sunday.Valid())
	assert.False(t, Weekday("someday").Valid())
	assert.True(t, PermManageAnnouncementsNotifications.Valid())
	assert.False(t, Permission("admin").Valid())
}

func TestDefaultCalendarSettings(t *testing.T) {
	settings := DefaultCalendarSettings()
	assert.Equal(t, Monday, settings.FirstDayOfWeek)
	assert.Equal(t, 60, settings.DefaultIntervalInMins)
	assert.Equal(t, 24, settings.CancellationBufferInHours)
	assert.Equal(t, "2", settings.ShowBookingForInWeeks)
}
