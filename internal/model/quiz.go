package model

// Citizenship classifies the user for tax purposes. Dual citizens are
// treated identically to Americans everywhere it matters.
type Citizenship string

const (
	CitizenshipAmerican    Citizenship = "american"
	CitizenshipNonAmerican Citizenship = "non-american"
	CitizenshipDual        Citizenship = "dual"
)

// IsAmerican reports whether US worldwide taxation applies.
func (c Citizenship) IsAmerican() bool {
	return c == CitizenshipAmerican || c == CitizenshipDual
}

// TimeHorizon is how long the user plans to stay abroad.
type TimeHorizon string

const (
	Horizon3to5    TimeHorizon = "3-5y"
	Horizon5to10   TimeHorizon = "5-10y"
	HorizonForever TimeHorizon = "forever"
)

// Priority is a generic low/medium/high preference level.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// HousingBudget is the user's housing spend band.
type HousingBudget string

const (
	HousingLow      HousingBudget = "low"
	HousingMedium   HousingBudget = "medium"
	HousingHigh     HousingBudget = "high"
	HousingVeryHigh HousingBudget = "very-high"
)

// BitcoinUsage is how the user primarily interacts with Bitcoin.
type BitcoinUsage string

const (
	UsageHodl     BitcoinUsage = "hodl"
	UsageTrade    BitcoinUsage = "trade"
	UsageBusiness BitcoinUsage = "business"
)

// ClimatePreference narrows acceptable climates. The zero value means
// no preference: the lifestyle matcher skips the climate check entirely.
type ClimatePreference string

const (
	ClimatePrefWarm      ClimatePreference = "warm"
	ClimatePrefTemperate ClimatePreference = "temperate"
	ClimatePrefCold      ClimatePreference = "cold"
)

// UrbanPreference narrows acceptable settlement types. The zero value
// means no preference.
type UrbanPreference string

const (
	UrbanPrefUrban  UrbanPreference = "urban"
	UrbanPrefNature UrbanPreference = "nature"
	UrbanPrefMixed  UrbanPreference = "mixed"
)

// VisaFlexibility captures which residency routes the user can pursue.
// The three flags are independent.
type VisaFlexibility struct {
	CanInvest       bool `json:"can_invest"`
	CanWorkRemotely bool `json:"can_work_remotely"`
	IsEntrepreneur  bool `json:"is_entrepreneur"`
}

// DealBreakers are hard requirements. Each violated flag costs a fixed
// score penalty rather than disqualifying the jurisdiction.
type DealBreakers struct {
	NoExtremeHeat        bool `json:"no_extreme_heat"`
	MustHaveTopSchools   bool `json:"must_have_top_schools"`
	MustBeLowTaxCrypto   bool `json:"must_be_low_tax_crypto"`
	MustBeVerySafe       bool `json:"must_be_very_safe"`
	MustBeEnglish        bool `json:"must_be_english"`
	MustHaveFastInternet bool `json:"must_have_fast_internet"`
	NoColdWinters        bool `json:"no_cold_winters"`
}

// Any reports whether at least one deal breaker is set.
func (d DealBreakers) Any() bool {
	return d.NoExtremeHeat || d.MustHaveTopSchools || d.MustBeLowTaxCrypto ||
		d.MustBeVerySafe || d.MustBeEnglish || d.MustHaveFastInternet || d.NoColdWinters
}

// QuizAnswers is a snapshot of one user's self-reported situation. It is
// passed by value into the scorer and treated as read-only.
//
// TimezonePreference's zero value means "any", mirroring the empty
// ClimatePreference/UrbanPreference convention.
type QuizAnswers struct {
	Citizenship        Citizenship       `json:"citizenship"`
	TimeHorizon        TimeHorizon       `json:"time_horizon"`
	HasKids            bool              `json:"has_kids"`
	KidsAges           string            `json:"kids_ages,omitempty"`
	SchoolingPriority  Priority          `json:"schooling_priority"`
	CostTolerance      Priority          `json:"cost_tolerance"`
	HousingBudget      HousingBudget     `json:"housing_budget"`
	SafetyTolerance    Priority          `json:"safety_tolerance"`
	VisaFlexibility    VisaFlexibility   `json:"visa_flexibility"`
	ClimatePreference  ClimatePreference `json:"climate_preference,omitempty"`
	UrbanPreference    UrbanPreference   `json:"urban_preference,omitempty"`
	EnglishRequired    bool              `json:"english_required"`
	TimezonePreference TimezoneBand      `json:"timezone_preference,omitempty"`
	BitcoinUsage       BitcoinUsage      `json:"bitcoin_usage"`
	StabilityPriority  Priority          `json:"stability_priority"`
	DealBreakers       DealBreakers      `json:"deal_breakers"`
}

// DefaultAnswers returns the documented defaults used whenever a field
// is absent or unparsable.
func DefaultAnswers() QuizAnswers {
	return QuizAnswers{
		Citizenship:       CitizenshipNonAmerican,
		TimeHorizon:       Horizon5to10,
		SchoolingPriority: PriorityMedium,
		CostTolerance:     PriorityMedium,
		HousingBudget:     HousingMedium,
		SafetyTolerance:   PriorityMedium,
		VisaFlexibility: VisaFlexibility{
			CanWorkRemotely: true,
		},
		BitcoinUsage:      UsageHodl,
		StabilityPriority: PriorityMedium,
	}
}
