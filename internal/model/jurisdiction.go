// Package model defines the jurisdiction catalog and quiz answer types
// shared by the scorer, the catalog loader, and the store.
package model

// Climate classifies a jurisdiction's dominant climate.
type Climate string

const (
	ClimateTropical      Climate = "tropical"
	ClimateSubtropical   Climate = "subtropical"
	ClimateMediterranean Climate = "mediterranean"
	ClimateTemperate     Climate = "temperate"
	ClimateAlpine        Climate = "alpine"
	ClimateDesert        Climate = "desert"
)

// Urbanity classifies the dominant settlement type.
type Urbanity string

const (
	UrbanityMajorCity Urbanity = "major-city"
	UrbanityCity      Urbanity = "city"
	UrbanityTown      Urbanity = "town"
	UrbanityIsland    Urbanity = "island"
	UrbanityMixed     Urbanity = "mixed"
)

// CostTier buckets overall cost of living.
type CostTier string

const (
	CostTierLow      CostTier = "low"
	CostTierMedium   CostTier = "medium"
	CostTierHigh     CostTier = "high"
	CostTierVeryHigh CostTier = "very-high"
)

// SafetyTier buckets personal safety.
type SafetyTier string

const (
	SafetyTierVerySafe   SafetyTier = "very-safe"
	SafetyTierSafe       SafetyTier = "safe"
	SafetyTierModerate   SafetyTier = "moderate"
	SafetyTierDeveloping SafetyTier = "developing"
)

// TimezoneBand groups jurisdictions into broad timezone regions.
type TimezoneBand string

const (
	TimezoneAmericas     TimezoneBand = "americas"
	TimezoneEuropeAfrica TimezoneBand = "europe-africa"
	TimezoneAsiaPacific  TimezoneBand = "asia-pacific"
	TimezoneMiddleEast   TimezoneBand = "middle-east"
)

// VisaRoute is a residency path a jurisdiction offers.
type VisaRoute string

const (
	VisaInvestment              VisaRoute = "investment"
	VisaEntrepreneur            VisaRoute = "entrepreneur"
	VisaGolden                  VisaRoute = "golden-visa"
	VisaDigitalNomad            VisaRoute = "digital-nomad"
	VisaEmployment              VisaRoute = "employment"
	VisaCitizenshipByInvestment VisaRoute = "citizenship-by-investment"
	VisaTerritoryResident       VisaRoute = "territory-resident"
)

// Continent is the coarse geographic region used for result filtering.
type Continent string

const (
	ContinentNorthAmerica   Continent = "north-america"
	ContinentCentralAmerica Continent = "central-america"
	ContinentCaribbean      Continent = "caribbean"
	ContinentSouthAmerica   Continent = "south-america"
	ContinentEurope         Continent = "europe"
	ContinentMiddleEast     Continent = "middle-east"
	ContinentAsia           Continent = "asia"
	ContinentOceania        Continent = "oceania"
)

// JurisdictionScores holds the twelve editorial 0-10 criterion scores.
// Higher is always better, including cost and housing where 10 means
// most affordable.
type JurisdictionScores struct {
	TaxHodl         float64 `json:"tax_hodl" yaml:"tax_hodl"`
	TaxTrade        float64 `json:"tax_trade" yaml:"tax_trade"`
	Regulation      float64 `json:"regulation" yaml:"regulation"`
	Safety          float64 `json:"safety" yaml:"safety"`
	Stability       float64 `json:"stability" yaml:"stability"`
	CostLiving      float64 `json:"cost_living" yaml:"cost_living"`
	Housing         float64 `json:"housing" yaml:"housing"`
	Education       float64 `json:"education" yaml:"education"`
	Visa            float64 `json:"visa" yaml:"visa"`
	Infra           float64 `json:"infra" yaml:"infra"`
	LifestyleBase   float64 `json:"lifestyle_base" yaml:"lifestyle_base"`
	CryptoCommunity float64 `json:"crypto_community" yaml:"crypto_community"`
}

// JurisdictionNotes carries the free-text editorial explanation per category.
type JurisdictionNotes struct {
	Tax             string `json:"tax" yaml:"tax"`
	Visa            string `json:"visa" yaml:"visa"`
	Safety          string `json:"safety" yaml:"safety"`
	Education       string `json:"education" yaml:"education"`
	Cost            string `json:"cost" yaml:"cost"`
	CryptoCommunity string `json:"crypto_community" yaml:"crypto_community"`
	Infra           string `json:"infra" yaml:"infra"`
	Lifestyle       string `json:"lifestyle" yaml:"lifestyle"`
}

// SpecialRules holds optional narrative rules that affect scoring or
// deserve a callout (e.g. holding-period exemptions, Act 60).
type SpecialRules struct {
	AmericanTaxNote   string `json:"american_tax_note,omitempty" yaml:"american_tax_note,omitempty"`
	HoldingPeriodRule string `json:"holding_period_rule,omitempty" yaml:"holding_period_rule,omitempty"`
	Act60             string `json:"act60,omitempty" yaml:"act60,omitempty"`
	NHRProgram        string `json:"nhr_program,omitempty" yaml:"nhr_program,omitempty"`
	FreeZone          string `json:"free_zone,omitempty" yaml:"free_zone,omitempty"`
	LegalTender       string `json:"legal_tender,omitempty" yaml:"legal_tender,omitempty"`
	Other             string `json:"other,omitempty" yaml:"other,omitempty"`
}

// JurisdictionTags holds the classification tags used by the matchers.
type JurisdictionTags struct {
	Climate            Climate      `json:"climate" yaml:"climate"`
	Urbanity           Urbanity     `json:"urbanity" yaml:"urbanity"`
	EnglishFriendly    bool         `json:"english_friendly" yaml:"english_friendly"`
	CostTier           CostTier     `json:"cost_tier" yaml:"cost_tier"`
	SafetyTier         SafetyTier   `json:"safety_tier" yaml:"safety_tier"`
	VisaRoutes         []VisaRoute  `json:"visa_routes" yaml:"visa_routes"`
	TimezoneBand       TimezoneBand `json:"timezone_band" yaml:"timezone_band"`
	FamilyFriendly     bool         `json:"family_friendly" yaml:"family_friendly"`
	BitcoinLegalTender bool         `json:"bitcoin_legal_tender" yaml:"bitcoin_legal_tender"`
	NoCapitalGains     bool         `json:"no_capital_gains" yaml:"no_capital_gains"`
	EUMember           bool         `json:"eu_member" yaml:"eu_member"`
}

// JurisdictionImage is one gallery entry with attribution.
type JurisdictionImage struct {
	URL        string `json:"url" yaml:"url"`
	Alt        string `json:"alt" yaml:"alt"`
	CreditName string `json:"credit_name" yaml:"credit_name"`
	CreditURL  string `json:"credit_url" yaml:"credit_url"`
	SourceName string `json:"source_name" yaml:"source_name"`
}

// Jurisdiction is one immutable catalog entry. The scorer never mutates
// these; scored results embed a copy.
type Jurisdiction struct {
	ID                 string              `json:"id" yaml:"id"`
	Name               string              `json:"name" yaml:"name"`
	Country            string              `json:"country" yaml:"country"`
	Region             string              `json:"region" yaml:"region"`
	Slug               string              `json:"slug" yaml:"slug"`
	Continent          Continent           `json:"continent" yaml:"continent"`
	Rank               int                 `json:"rank" yaml:"rank"`
	IsHonorableMention bool                `json:"is_honorable_mention" yaml:"is_honorable_mention"`
	ShortBlurb         string              `json:"short_blurb" yaml:"short_blurb"`
	LongDescription    string              `json:"long_description" yaml:"long_description"`
	Tags               JurisdictionTags    `json:"tags" yaml:"tags"`
	Scores             JurisdictionScores  `json:"scores" yaml:"scores"`
	Notes              JurisdictionNotes   `json:"notes" yaml:"notes"`
	SpecialRules       SpecialRules        `json:"special_rules" yaml:"special_rules"`
	Images             []JurisdictionImage `json:"images" yaml:"images"`
}

// HasVisaRoute reports whether the jurisdiction offers the given route.
func (j *Jurisdiction) HasVisaRoute(route VisaRoute) bool {
	for _, r := range j.Tags.VisaRoutes {
		if r == route {
			return true
		}
	}
	return false
}
