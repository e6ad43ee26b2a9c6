package service

import (
	"github.com/google/uuid"

	clubsetup "github.com/goliatone/go-club-setup"
	"github.com/goliatone/go-club-setup/internal/apperr"
	"github.com/goliatone/go-club-setup/internal/store"
)

type (
	MembershipService = ChildService[*clubsetup.Membership]
	PricingService    = ChildService[*clubsetup.Pricing]
	PromoCodeService  = ChildService[*clubsetup.PromoCode]
	UserGroupService  = ChildService[*clubsetup.UserGroup]
)

const defaultPricingKind = "single"

func NewMembershipService(memberships store.Store[*clubsetup.Membership], opts ...Option) *MembershipService {
	crud := newCRUD(memberships, "membership", "Membership", "mem",
		func(m *clubsetup.Membership) *uuid.UUID { return &m.ID }, buildOptions(opts))
	return newChildService(crud, childConfig[*clubsetup.Membership]{
		clubID: func(m *clubsetup.Membership) uuid.UUID { return m.ClubID },
		step:   clubsetup.StepMemberships,
		prepare: func(m *clubsetup.Membership) error {
			if m.Status == "" {
				m.Status = clubsetup.StatusActive
			}
			if m.FixedDiscount != nil && (*m.FixedDiscount < 0 || *m.FixedDiscount > 100) {
				return apperr.Validation("fixedDiscount must be between 0 and 100")
			}
			return nil
		},
	})
}

func NewPricingService(pricing store.Store[*clubsetup.Pricing], opts ...Option) *PricingService {
	crud := newCRUD(pricing, "pricing", "Pricing", "pr",
		func(p *clubsetup.Pricing) *uuid.UUID { return &p.ID }, buildOptions(opts))
	return newChildService(crud, childConfig[*clubsetup.Pricing]{
		clubID: func(p *clubsetup.Pricing) uuid.UUID { return p.ClubID },
		step:   clubsetup.StepPricing,
		prepare: func(p *clubsetup.Pricing) error {
			if p.Type == "" {
				p.Type = defaultPricingKind
			}
			if p.Period == "" {
				p.Period = defaultPricingKind
			}
			for _, day := range p.Weekdays {
				if !day.Valid() {
					return apperr.Validation("Invalid weekday: %s", day)
				}
			}
			return nil
		},
	})
}

// NewPromoCodeService builds the promo code service. Promo codes are not a
// wizard step.
func NewPromoCodeService(promos store.Store[*clubsetup.PromoCode], opts ...Option) *PromoCodeService {
	crud := newCRUD(promos, "promocode", "Promo code", "promo",
		func(p *clubsetup.PromoCode) *uuid.UUID { return &p.ID }, buildOptions(opts))
	return newChildService(crud, childConfig[*clubsetup.PromoCode]{
		clubID: func(p *clubsetup.PromoCode) uuid.UUID { return p.ClubID },
		prepare: func(p *clubsetup.PromoCode) error {
			if len(p.ServiceIDs) == 0 {
				return apperr.Validation("serviceIds must contain at least one service")
			}
			return nil
		},
	})
}

func NewUserGroupService(groups store.Store[*clubsetup.UserGroup], opts ...Option) *UserGroupService {
	crud := newCRUD(groups, "user_group", "User group", "ug",
		func(u *clubsetup.UserGroup) *uuid.UUID { return &u.ID }, buildOptions(opts))
	return newChildService(crud, childConfig[*clubsetup.UserGroup]{
		clubID: func(u *clubsetup.UserGroup) uuid.UUID { return u.ClubID },
		step:   clubsetup.StepUserGroups,
		prepare: func(u *clubsetup.UserGroup) error {
			if u.Status == "" {
				u.Status = clubsetup.StatusActive
			}
			return nil
		},
	})
}
