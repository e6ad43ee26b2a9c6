package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clubsetup "github.com/goliatone/go-club-setup"
	"github.com/goliatone/go-club-setup/internal/apperr"
)

func seedMembers(t *testing.T, h *harness, n int) []*clubsetup.TeamMember {
	t.Helper()
	club := h.createClub(t, "Riverside Tennis")
	members := make([]*clubsetup.TeamMember, 0, n)
	for i := range n {
		member, err := h.services.TeamMembers.Create(context.Background(), &clubsetup.TeamMember{
			ClubID:  club.ID,
			Name:    "Member",
			Surname: string(rune('A' + i)),
			Email:   "member@example.com",
		})
		require.NoError(t, err)
		members = append(members, member)
	}
	return members
}

func TestTeamMemberPermissions(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	member := seedMembers(t, h, 1)[0]

	updated, err := h.services.TeamMembers.AddPermission(ctx, member.ID, clubsetup.PermManageCoaches)
	require.NoError(t, err)
	updated, err = h.services.TeamMembers.AddPermission(ctx, member.ID, clubsetup.PermManageCoaches)
	require.NoError(t, err)
	assert.Equal(t, []clubsetup.Permission{clubsetup.PermManageCoaches}, updated.Permissions)
	assert.Equal(t, 1, updated.PermissionCount())

	updated, err = h.services.TeamMembers.RemovePermission(ctx, member.ID, clubsetup.PermManageCoaches)
	require.NoError(t, err)
	assert.Empty(t, updated.Permissions)

	_, err = h.services.TeamMembers.UpdatePermissions(ctx, member.ID, []clubsetup.Permission{"manage_everything"})
	var validation *apperr.ValidationError
	assert.ErrorAs(t, err, &validation)
}

func TestTeamMemberBulkUpdateStatus(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	members := seedMembers(t, h, 3)

	t.Run("updates every member", func(t *testing.T) {
		ids := []uuid.UUID{members[0].ID, members[1].ID}
		updated, err := h.services.TeamMembers.BulkUpdateStatus(ctx, ids, clubsetup.MemberSuspended)
		require.NoError(t, err)
		require.Len(t, updated, 2)
		for _, member := range updated {
			assert.Equal(t, clubsetup.MemberSuspended, member.Status)
			assert.False(t, member.IsActive())
		}
	})

	t.Run("stops at the first missing id", func(t *testing.T) {
		ids := []uuid.UUID{members[2].ID, uuid.New(), members[0].ID}
		_, err := h.services.TeamMembers.BulkUpdateStatus(ctx, ids, clubsetup.MemberInactive)
		require.True(t, apperr.IsNotFound(err))

		assert.Equal(t, clubsetup.MemberInactive, members[2].Status)
		assert.Equal(t, clubsetup.MemberSuspended, members[0].Status)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		_, err := h.services.TeamMembers.UpdateStatus(ctx, members[0].ID, "retired")
		var validation *apperr.ValidationError
		assert.ErrorAs(t, err, &validation)
	})
}

func TestTeamMemberBulkDelete(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	members := seedMembers(t, h, 3)

	ok, err := h.services.TeamMembers.BulkDelete(ctx, []uuid.UUID{members[0].ID, uuid.New(), members[1].ID})
	assert.False(t, ok)
	assert.True(t, apperr.IsNotFound(err))
	assert.Len(t, h.members.All(), 2)

	ok, err = h.services.TeamMembers.BulkDelete(ctx, []uuid.UUID{members[1].ID, members[2].ID})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, h.members.All())
}

func TestTeamMemberCreateValidation(t *testing.T) {
	h := newHarness(t)
	club := h.createClub(t, "Riverside Tennis")

	cases := []struct {
		name   string
		member clubsetup.TeamMember
		want   string
	}{
		{"missing club", clubsetup.TeamMember{Name: "A", Surname: "B", Email: "c"}, "clubId is required"},
		{"missing email", clubsetup.TeamMember{ClubID: club.ID, Name: "A", Surname: "B"}, "Team member name, surname and email are required"},
		{"bad permission", clubsetup.TeamMember{ClubID: club.ID, Name: "A", Surname: "B", Email: "c", Permissions: []clubsetup.Permission{"root"}}, "Invalid permission: root"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			member := tc.member
			_, err := h.services.TeamMembers.Create(context.Background(), &member)
			assert.EqualError(t, err, tc.want)
		})
	}
	assert.Empty(t, h.emitted)
}

func TestExtrasToggleAndStats(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	clubID := uuid.New()

	extras, err := h.services.Extras.Create(ctx, &clubsetup.Extras{
		ClubID:         clubID,
		HourBankLimits: []clubsetup.ExtrasUserLimit{{LimitValue: 5}},
	})
	require.NoError(t, err)
	assert.Equal(t, clubsetup.MemberActive, extras.Status)
	require.Len(t, extras.HourBankLimits, 1)
	assert.Equal(t, clubsetup.UserTypeDefault, extras.HourBankLimits[0].UserType)
	assert.Equal(t, clubsetup.LimitHours, extras.HourBankLimits[0].LimitType)
	assert.NotNil(t, extras.WishlistLimits)

	toggled, err := h.services.Extras.ToggleFeature(ctx, extras.ID, clubsetup.FeatureHourBank, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"hourBank"}, toggled.EnabledFeatures())

	_, err = h.services.Extras.ToggleFeature(ctx, extras.ID, "loyalty", true)
	assert.EqualError(t, err, "Invalid feature: loyalty")

	stats := &fakeStats{stats: clubsetup.IntegrationStats{HourBankEnabled: 1}}
	svc := NewExtrasService(h.extras, stats)
	got, err := svc.IntegrationStats(ctx, &clubID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.HourBankEnabled)
	assert.Equal(t, &clubID, stats.club)
}

func TestExtrasBulkUpdateStatusAbortsOnError(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	first, err := h.services.Extras.Create(ctx, &clubsetup.Extras{ClubID: uuid.New()})
	require.NoError(t, err)
	second, err := h.services.Extras.Create(ctx, &clubsetup.Extras{ClubID: uuid.New()})
	require.NoError(t, err)

	h.extras.Err = errors.New("disk full")
	_, err = h.services.Extras.BulkUpdateStatus(ctx, []uuid.UUID{first.ID, second.ID}, clubsetup.MemberInactive)
	assert.EqualError(t, err, "disk full")
}
