package clubsetup

import "slices"

// SetupStatus tracks the lifecycle of a club onboarding session.
type SetupStatus string

const (
	SetupStatusDraft      SetupStatus = "draft"
	SetupStatusInProgress SetupStatus = "in_progress"
	SetupStatusCompleted  SetupStatus = "completed"
	SetupStatusAbandoned  SetupStatus = "abandoned"
)

func (s SetupStatus) Values() []SetupStatus {
	return []SetupStatus{SetupStatusDraft, SetupStatusInProgress, SetupStatusCompleted, SetupStatusAbandoned}
}

func (s SetupStatus) Valid() bool { return slices.Contains(s.Values(), s) }

// SetupStep names a wizard step. Values are listed in wizard order.
type SetupStep string

const (
	StepClubSetup          SetupStep = "club_setup"
	StepLocationContact    SetupStep = "location_contact"
	StepWorkingHours       SetupStep = "working_hours"
	StepResources          SetupStep = "resources"
	StepAmenities          SetupStep = "amenities"
	StepMemberships        SetupStep = "memberships"
	StepPricing            SetupStep = "pricing"
	StepUserGroups         SetupStep = "user_groups"
	StepExtrasIntegrations SetupStep = "extras_integrations"
	StepCoaches            SetupStep = "coaches"
	StepTeamMembers        SetupStep = "team_members"
)

var setupSteps = []SetupStep{
	StepClubSetup,
	StepLocationContact,
	StepWorkingHours,
	StepResources,
	StepAmenities,
	StepMemberships,
	StepPricing,
	StepUserGroups,
	StepExtrasIntegrations,
	StepCoaches,
	StepTeamMembers,
}

func (s SetupStep) Values() []SetupStep { return slices.Clone(setupSteps) }

func (s SetupStep) Valid() bool { return slices.Contains(setupSteps, s) }

// Index returns the wizard position of the step, or -1.
func (s SetupStep) Index() int { return slices.Index(setupSteps, s) }

// ClubType is informational. typeOfClub is stored as free text.
type ClubType string

const (
	ClubTypeTennis     ClubType = "tennis"
	ClubTypePadel      ClubType = "padel"
	ClubTypeSquash     ClubType = "squash"
	ClubTypeBadminton  ClubType = "badminton"
	ClubTypeFootball   ClubType = "football"
	ClubTypeBasketball ClubType = "basketball"
	ClubTypeVolleyball ClubType = "volleyball"
	ClubTypeFitness    ClubType = "fitness"
	ClubTypeGym        ClubType = "gym"
	ClubTypeSwimming   ClubType = "swimming"
	ClubTypeGolf       ClubType = "golf"
	ClubTypeMultiSport ClubType = "multi_sport"
	ClubTypeOther      ClubType = "other"
)

func (c ClubType) Values() []ClubType {
	return []ClubType{
		ClubTypeTennis, ClubTypePadel, ClubTypeSquash, ClubTypeBadminton, ClubTypeFootball,
		ClubTypeBasketball, ClubTypeVolleyball, ClubTypeFitness, ClubTypeGym, ClubTypeSwimming,
		ClubTypeGolf, ClubTypeMultiSport, ClubTypeOther,
	}
}

type SportsType string

const (
	SportTennis     SportsType = "tennis"
	SportPadel      SportsType = "padel"
	SportSquash     SportsType = "squash"
	SportBadminton  SportsType = "badminton"
	SportFootball   SportsType = "football"
	SportBasketball SportsType = "basketball"
	SportVolleyball SportsType = "volleyball"
	SportFitness    SportsType = "fitness"
	SportGym        SportsType = "gym"
	SportSwimming   SportsType = "swimming"
	SportGolf       SportsType = "golf"
	SportOther      SportsType = "other"
)

func (s SportsType) Values() []SportsType {
	return []SportsType{
		SportTennis, SportPadel, SportSquash, SportBadminton, SportFootball, SportBasketball,
		SportVolleyball, SportFitness, SportGym, SportSwimming, SportGolf, SportOther,
	}
}

type AdditionalService string

const (
	ServiceRestaurant    AdditionalService = "restaurant"
	ServiceHotel         AdditionalService = "hotel"
	ServiceDrinks        AdditionalService = "drinks"
	ServiceFood          AdditionalService = "food"
	ServiceHotShower     AdditionalService = "hot_shower"
	ServiceKidsRoom      AdditionalService = "kids_room"
	ServiceWifi          AdditionalService = "wifi"
	ServiceBar           AdditionalService = "bar"
	ServiceChangingRoom  AdditionalService = "changing_room"
	ServiceParking       AdditionalService = "parking"
	ServiceLockerRoom    AdditionalService = "locker_room"
	ServiceProShop       AdditionalService = "pro_shop"
	ServiceCoaching      AdditionalService = "coaching"
	ServicePhysiotherapy AdditionalService = "physiotherapy"
	ServiceMassage       AdditionalService = "massage"
	ServiceOther         AdditionalService = "other"
)

func (a AdditionalService) Values() []AdditionalService {
	return []AdditionalService{
		ServiceRestaurant, ServiceHotel, ServiceDrinks, ServiceFood, ServiceHotShower, ServiceKidsRoom,
		ServiceWifi, ServiceBar, ServiceChangingRoom, ServiceParking, ServiceLockerRoom, ServiceProShop,
		ServiceCoaching, ServicePhysiotherapy, ServiceMassage, ServiceOther,
	}
}

type ResourceService string

const (
	ResourceServiceTennis     ResourceService = "tennis"
	ResourceServicePadel      ResourceService = "padel"
	ResourceServiceSquash     ResourceService = "squash"
	ResourceServiceBadminton  ResourceService = "badminton"
	ResourceServiceFootball   ResourceService = "football"
	ResourceServiceBasketball ResourceService = "basketball"
	ResourceServiceVolleyball ResourceService = "volleyball"
	ResourceServiceFitness    ResourceService = "fitness"
	ResourceServiceGym        ResourceService = "gym"
	ResourceServiceSwimming   ResourceService = "swimming"
	ResourceServiceGolf       ResourceService = "golf"
	ResourceServiceOther      ResourceService = "other"
)

func (r ResourceService) Values() []ResourceService {
	return []ResourceService{
		ResourceServiceTennis, ResourceServicePadel, ResourceServiceSquash, ResourceServiceBadminton,
		ResourceServiceFootball, ResourceServiceBasketball, ResourceServiceVolleyball, ResourceServiceFitness,
		ResourceServiceGym, ResourceServiceSwimming, ResourceServiceGolf, ResourceServiceOther,
	}
}

type ResourceType string

const (
	ResourceTypeIndoor  ResourceType = "indoor"
	ResourceTypeOutdoor ResourceType = "outdoor"
)

func (r ResourceType) Values() []ResourceType {
	return []ResourceType{ResourceTypeIndoor, ResourceTypeOutdoor}
}

type ResourceProperty string

const (
	PropertyClay      ResourceProperty = "clay"
	PropertyHard      ResourceProperty = "hard"
	PropertyGrass     ResourceProperty = "grass"
	PropertyCarpet    ResourceProperty = "carpet"
	PropertyConcrete  ResourceProperty = "concrete"
	PropertyWood      ResourceProperty = "wood"
	PropertySynthetic ResourceProperty = "synthetic"
	PropertyOther     ResourceProperty = "other"
)

func (r ResourceProperty) Values() []ResourceProperty {
	return []ResourceProperty{
		PropertyClay, PropertyHard, PropertyGrass, PropertyCarpet,
		PropertyConcrete, PropertyWood, PropertySynthetic, PropertyOther,
	}
}

type ResourceStatus string

const (
	ResourceStatusActive      ResourceStatus = "active"
	ResourceStatusInactive    ResourceStatus = "inactive"
	ResourceStatusMaintenance ResourceStatus = "maintenance"
)

func (r ResourceStatus) Values() []ResourceStatus {
	return []ResourceStatus{ResourceStatusActive, ResourceStatusInactive, ResourceStatusMaintenance}
}

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

func (g Gender) Values() []Gender { return []Gender{GenderMale, GenderFemale, GenderOther} }

type LanguageLevel string

const (
	LanguageBeginner     LanguageLevel = "beginner"
	LanguageIntermediate LanguageLevel = "intermediate"
	LanguageAdvanced     LanguageLevel = "advanced"
	LanguageNative       LanguageLevel = "native"
)

func (l LanguageLevel) Values() []LanguageLevel {
	return []LanguageLevel{LanguageBeginner, LanguageIntermediate, LanguageAdvanced, LanguageNative}
}

type PriceType string

const (
	PricePerClass  PriceType = "per_class"
	PricePerClient PriceType = "per_client"
)

func (p PriceType) Values() []PriceType { return []PriceType{PricePerClass, PricePerClient} }

type PromoPriceType string

const (
	PromoDiscountPercent PromoPriceType = "discount_percent"
	PromoDiscountAmount  PromoPriceType = "discount_amount"
)

func (p PromoPriceType) Values() []PromoPriceType {
	return []PromoPriceType{PromoDiscountPercent, PromoDiscountAmount}
}

// ActivityStatus is shared by memberships and user groups.
type ActivityStatus string

const (
	StatusActive   ActivityStatus = "active"
	StatusInactive ActivityStatus = "inactive"
)

func (s ActivityStatus) Values() []ActivityStatus { return []ActivityStatus{StatusActive, StatusInactive} }

// MemberStatus is used by team members and extras configurations.
type MemberStatus string

const (
	MemberActive    MemberStatus = "active"
	MemberInactive  MemberStatus = "inactive"
	MemberSuspended MemberStatus = "suspended"
)

func (s MemberStatus) Values() []MemberStatus {
	return []MemberStatus{MemberActive, MemberInactive, MemberSuspended}
}

func (s MemberStatus) Valid() bool { return slices.Contains(s.Values(), s) }

type Permission string

const (
	PermManageBookingsMatches            Permission = "manage_bookings_matches"
	PermManageCustomers                  Permission = "manage_customers"
	PermManageFinances                   Permission = "manage_finances"
	PermManageCoaches                    Permission = "manage_coaches"
	PermManageClasses                    Permission = "manage_classes"
	PermManageCommunities                Permission = "manage_communities"
	PermManageNewsGalleries              Permission = "manage_news_galleries"
	PermManageAnnouncementsNotifications Permission = "manage_announcements_notifications"
)

func (p Permission) Values() []Permission {
	return []Permission{
		PermManageBookingsMatches, PermManageCustomers, PermManageFinances, PermManageCoaches,
		PermManageClasses, PermManageCommunities, PermManageNewsGalleries, PermManageAnnouncementsNotifications,
	}
}

func (p Permission) Valid() bool { return slices.Contains(p.Values(), p) }

type ClubOwnerType string

const (
	OwnerOwner   ClubOwnerType = "owner"
	OwnerCoOwner ClubOwnerType = "co_owner"
	OwnerManager ClubOwnerType = "manager"
	OwnerAdmin   ClubOwnerType = "admin"
	OwnerMember  ClubOwnerType = "member"
)

func (c ClubOwnerType) Values() []ClubOwnerType {
	return []ClubOwnerType{OwnerOwner, OwnerCoOwner, OwnerManager, OwnerAdmin, OwnerMember}
}

type ExtrasUserType string

const (
	UserTypeDefault ExtrasUserType = "default"
	UserTypeRegular ExtrasUserType = "regular"
	UserTypePremium ExtrasUserType = "premium"
	UserTypeVIP     ExtrasUserType = "vip"
)

func (u ExtrasUserType) Values() []ExtrasUserType {
	return []ExtrasUserType{UserTypeDefault, UserTypeRegular, UserTypePremium, UserTypeVIP}
}

type ExtrasLimitType string

const (
	LimitHours      ExtrasLimitType = "hours"
	LimitAmount     ExtrasLimitType = "amount"
	LimitPercentage ExtrasLimitType = "percentage"
)

func (l ExtrasLimitType) Values() []ExtrasLimitType {
	return []ExtrasLimitType{LimitHours, LimitAmount, LimitPercentage}
}

// ExtrasFeature names a toggleable extras flag.
type ExtrasFeature string

const (
	FeatureHourBank ExtrasFeature = "hourBank"
	FeatureWishlist ExtrasFeature = "wishlist"
)

func (f ExtrasFeature) Values() []ExtrasFeature { return []ExtrasFeature{FeatureHourBank, FeatureWishlist} }

func (f ExtrasFeature) Valid() bool { return slices.Contains(f.Values(), f) }

type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

func (w Weekday) Values() []Weekday {
	return []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
}

func (w Weekday) Valid() bool { return slices.Contains(w.Values(), w) }

func (r ResourceService) Valid() bool { return slices.Contains(r.Values(), r) }

func (r ResourceStatus) Valid() bool { return slices.Contains(r.Values(), r) }

func (s ActivityStatus) Valid() bool { return slices.Contains(s.Values(), s) }

func (p PriceType) Valid() bool { return slices.Contains(p.Values(), p) }
