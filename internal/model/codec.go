package model

import (
	"net/url"
	"strconv"
)

// Flat query keys shared with the web quiz. The deal breakers travel as
// a single 7-bit mask under "db".
const (
	keyCitizenship     = "cit"
	keyTimeHorizon     = "th"
	keyHasKids         = "kids"
	keyKidsAges        = "ka"
	keySchooling       = "sp"
	keyCostTolerance   = "ct"
	keyHousingBudget   = "hb"
	keySafetyTolerance = "st"
	keyCanInvest       = "vi"
	keyCanWorkRemotely = "vw"
	keyIsEntrepreneur  = "ve"
	keyClimatePref     = "cp"
	keyUrbanPref       = "up"
	keyEnglishRequired = "er"
	keyTimezonePref    = "tz"
	keyBitcoinUsage    = "bu"
	keyStability       = "stb"
	keyDealBreakers    = "db"
)

// Deal-breaker bit positions, fixed by the wire format.
const (
	bitNoExtremeHeat = 1 << iota
	bitMustHaveTopSchools
	bitMustBeLowTaxCrypto
	bitMustBeVerySafe
	bitMustBeEnglish
	bitMustHaveFastInternet
	bitNoColdWinters
)

// anySentinel is what the web quiz sends for an unset preference.
const anySentinel = "any"

// EncodeQuery serializes answers to the flat query format used by the
// quiz URL persistence collaborator.
func EncodeQuery(a QuizAnswers) url.Values {
	v := url.Values{}
	v.Set(keyCitizenship, string(a.Citizenship))
	v.Set(keyTimeHorizon, string(a.TimeHorizon))
	v.Set(keyHasKids, encodeBool(a.HasKids))
	if a.KidsAges != "" {
		v.Set(keyKidsAges, a.KidsAges)
	}
	v.Set(keySchooling, string(a.SchoolingPriority))
	v.Set(keyCostTolerance, string(a.CostTolerance))
	v.Set(keyHousingBudget, string(a.HousingBudget))
	v.Set(keySafetyTolerance, string(a.SafetyTolerance))
	v.Set(keyCanInvest, encodeBool(a.VisaFlexibility.CanInvest))
	v.Set(keyCanWorkRemotely, encodeBool(a.VisaFlexibility.CanWorkRemotely))
	v.Set(keyIsEntrepreneur, encodeBool(a.VisaFlexibility.IsEntrepreneur))
	v.Set(keyClimatePref, orAny(string(a.ClimatePreference)))
	v.Set(keyUrbanPref, orAny(string(a.UrbanPreference)))
	v.Set(keyEnglishRequired, encodeBool(a.EnglishRequired))
	v.Set(keyTimezonePref, orAny(string(a.TimezonePreference)))
	v.Set(keyBitcoinUsage, string(a.BitcoinUsage))
	v.Set(keyStability, string(a.StabilityPriority))
	v.Set(keyDealBreakers, strconv.Itoa(dealBreakerMask(a.DealBreakers)))
	return v
}

// DecodeQuery parses answers from the flat query format. Every field
// fails closed: an absent or unrecognized value becomes the default for
// that field rather than aborting the decode. The boolean result is
// false when the query carries no answers at all (no "cit" key), in
// which case the defaults are returned unchanged.
func DecodeQuery(v url.Values) (QuizAnswers, bool) {
	a := DefaultAnswers()
	if !v.Has(keyCitizenship) {
		return a, false
	}

	a.Citizenship = parseCitizenship(v.Get(keyCitizenship), a.Citizenship)
	a.TimeHorizon = parseTimeHorizon(v.Get(keyTimeHorizon), a.TimeHorizon)
	a.HasKids = v.Get(keyHasKids) == "1"
	a.KidsAges = v.Get(keyKidsAges)
	a.SchoolingPriority = parsePriority(v.Get(keySchooling), a.SchoolingPriority)
	a.CostTolerance = parsePriority(v.Get(keyCostTolerance), a.CostTolerance)
	a.HousingBudget = parseHousingBudget(v.Get(keyHousingBudget), a.HousingBudget)
	a.SafetyTolerance = parsePriority(v.Get(keySafetyTolerance), a.SafetyTolerance)
	a.VisaFlexibility = VisaFlexibility{
		CanInvest:       v.Get(keyCanInvest) == "1",
		CanWorkRemotely: v.Get(keyCanWorkRemotely) == "1",
		IsEntrepreneur:  v.Get(keyIsEntrepreneur) == "1",
	}
	a.ClimatePreference = parseClimatePref(v.Get(keyClimatePref))
	a.UrbanPreference = parseUrbanPref(v.Get(keyUrbanPref))
	a.EnglishRequired = v.Get(keyEnglishRequired) == "1"
	a.TimezonePreference = parseTimezonePref(v.Get(keyTimezonePref))
	a.BitcoinUsage = parseBitcoinUsage(v.Get(keyBitcoinUsage), a.BitcoinUsage)
	a.StabilityPriority = parsePriority(v.Get(keyStability), a.StabilityPriority)

	mask, err := strconv.Atoi(v.Get(keyDealBreakers))
	if err != nil {
		mask = 0
	}
	a.DealBreakers = dealBreakersFromMask(mask)

	return a, true
}

func dealBreakerMask(d DealBreakers) int {
	var mask int
	if d.NoExtremeHeat {
		mask |= bitNoExtremeHeat
	}
	if d.MustHaveTopSchools {
		mask |= bitMustHaveTopSchools
	}
	if d.MustBeLowTaxCrypto {
		mask |= bitMustBeLowTaxCrypto
	}
	if d.MustBeVerySafe {
		mask |= bitMustBeVerySafe
	}
	if d.MustBeEnglish {
		mask |= bitMustBeEnglish
	}
	if d.MustHaveFastInternet {
		mask |= bitMustHaveFastInternet
	}
	if d.NoColdWinters {
		mask |= bitNoColdWinters
	}
	return mask
}

func dealBreakersFromMask(mask int) DealBreakers {
	return DealBreakers{
		NoExtremeHeat:        mask&bitNoExtremeHeat != 0,
		MustHaveTopSchools:   mask&bitMustHaveTopSchools != 0,
		MustBeLowTaxCrypto:   mask&bitMustBeLowTaxCrypto != 0,
		MustBeVerySafe:       mask&bitMustBeVerySafe != 0,
		MustBeEnglish:        mask&bitMustBeEnglish != 0,
		MustHaveFastInternet: mask&bitMustHaveFastInternet != 0,
		NoColdWinters:        mask&bitNoColdWinters != 0,
	}
}

func encodeBool(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func orAny(s string) string {
	if s == "" {
		return anySentinel
	}
	return s
}

func parseCitizenship(s string, def Citizenship) Citizenship {
	switch c := Citizenship(s); c {
	case CitizenshipAmerican, CitizenshipNonAmerican, CitizenshipDual:
		return c
	}
	return def
}

func parseTimeHorizon(s string, def TimeHorizon) TimeHorizon {
	switch h := TimeHorizon(s); h {
	case Horizon3to5, Horizon5to10, HorizonForever:
		return h
	}
	return def
}

func parsePriority(s string, def Priority) Priority {
	switch p := Priority(s); p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return p
	}
	return def
}

func parseHousingBudget(s string, def HousingBudget) HousingBudget {
	switch b := HousingBudget(s); b {
	case HousingLow, HousingMedium, HousingHigh, HousingVeryHigh:
		return b
	}
	return def
}

func parseBitcoinUsage(s string, def BitcoinUsage) BitcoinUsage {
	switch u := BitcoinUsage(s); u {
	case UsageHodl, UsageTrade, UsageBusiness:
		return u
	}
	return def
}

func parseClimatePref(s string) ClimatePreference {
	switch p := ClimatePreference(s); p {
	case ClimatePrefWarm, ClimatePrefTemperate, ClimatePrefCold:
		return p
	}
	return ""
}

func parseUrbanPref(s string) UrbanPreference {
	switch p := UrbanPreference(s); p {
	case UrbanPrefUrban, UrbanPrefNature, UrbanPrefMixed:
		return p
	}
	return ""
}

func parseTimezonePref(s string) TimezoneBand {
	switch b := TimezoneBand(s); b {
	case TimezoneAmericas, TimezoneEuropeAfrica, TimezoneAsiaPacific, TimezoneMiddleEast:
		return b
	}
	return ""
}
