package main

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/btc-haven/haven-cli/internal/model"
	"github.com/btc-haven/haven-cli/internal/scorer"
)

// registerAnswerFlags adds the quiz answer flags shared by commands that
// score. Defaults mirror model.DefaultAnswers; only flags the user
// actually set override the baseline.
func registerAnswerFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("answers", "", "encoded answer query string (cit=...&bu=...), overridden by explicit flags")
	f.String("citizenship", "non-american", "citizenship: american, non-american, dual")
	f.String("horizon", "5-10y", "time horizon: 3-5y, 5-10y, forever")
	f.Bool("kids", false, "relocating with children")
	f.String("kids-ages", "", "children's ages (free text, e.g. 6,9)")
	f.String("schooling", "medium", "schooling priority: low, medium, high")
	f.String("cost-tolerance", "medium", "cost tolerance: low, medium, high")
	f.String("housing-budget", "medium", "housing budget: low, medium, high, very-high")
	f.String("safety-tolerance", "medium", "safety tolerance: low, medium, high")
	f.Bool("can-invest", false, "can pursue investment or golden visas")
	f.Bool("remote", true, "works remotely (digital nomad visas apply)")
	f.Bool("entrepreneur", false, "can pursue entrepreneur visas")
	f.String("climate", "any", "climate preference: warm, temperate, cold, any")
	f.String("urban", "any", "setting preference: urban, nature, mixed, any")
	f.Bool("english", false, "require an English-friendly environment")
	f.String("timezone", "any", "timezone preference: americas, europe-africa, asia-pacific, middle-east, any")
	f.String("usage", "hodl", "bitcoin usage: hodl, trade, business")
	f.String("stability", "medium", "political stability priority: low, medium, high")
	f.String("deal-breakers", "", "comma-separated hard requirements: no-extreme-heat, top-schools, low-tax, very-safe, english, fast-internet, no-cold-winters")
}

// answersFromFlags builds QuizAnswers from the registered flags. An
// --answers query string seeds the baseline; explicit flags win.
func answersFromFlags(cmd *cobra.Command) (model.QuizAnswers, error) {
	a := model.DefaultAnswers()
	f := cmd.Flags()

	if encoded, _ := f.GetString("answers"); encoded != "" {
		values, err := url.ParseQuery(encoded)
		if err != nil {
			return a, eris.Wrap(err, "score: parse --answers")
		}
		a, _ = model.DecodeQuery(values)
	}

	if f.Changed("citizenship") {
		v, _ := f.GetString("citizenship")
		c, err := parseEnum("citizenship", v, model.CitizenshipAmerican, model.CitizenshipNonAmerican, model.CitizenshipDual)
		if err != nil {
			return a, err
		}
		a.Citizenship = c
	}
	if f.Changed("horizon") {
		v, _ := f.GetString("horizon")
		h, err := parseEnum("horizon", v, model.Horizon3to5, model.Horizon5to10, model.HorizonForever)
		if err != nil {
			return a, err
		}
		a.TimeHorizon = h
	}
	if f.Changed("kids") {
		a.HasKids, _ = f.GetBool("kids")
	}
	if f.Changed("kids-ages") {
		a.KidsAges, _ = f.GetString("kids-ages")
	}
	if f.Changed("schooling") {
		p, err := priorityFlag(f, "schooling")
		if err != nil {
			return a, err
		}
		a.SchoolingPriority = p
	}
	if f.Changed("cost-tolerance") {
		p, err := priorityFlag(f, "cost-tolerance")
		if err != nil {
			return a, err
		}
		a.CostTolerance = p
	}
	if f.Changed("housing-budget") {
		v, _ := f.GetString("housing-budget")
		b, err := parseEnum("housing-budget", v, model.HousingLow, model.HousingMedium, model.HousingHigh, model.HousingVeryHigh)
		if err != nil {
			return a, err
		}
		a.HousingBudget = b
	}
	if f.Changed("safety-tolerance") {
		p, err := priorityFlag(f, "safety-tolerance")
		if err != nil {
			return a, err
		}
		a.SafetyTolerance = p
	}
	if f.Changed("can-invest") {
		a.VisaFlexibility.CanInvest, _ = f.GetBool("can-invest")
	}
	if f.Changed("remote") {
		a.VisaFlexibility.CanWorkRemotely, _ = f.GetBool("remote")
	}
	if f.Changed("entrepreneur") {
		a.VisaFlexibility.IsEntrepreneur, _ = f.GetBool("entrepreneur")
	}
	if f.Changed("climate") {
		v, _ := f.GetString("climate")
		if v == "any" {
			a.ClimatePreference = ""
		} else {
			p, err := parseEnum("climate", v, model.ClimatePrefWarm, model.ClimatePrefTemperate, model.ClimatePrefCold)
			if err != nil {
				return a, err
			}
			a.ClimatePreference = p
		}
	}
	if f.Changed("urban") {
		v, _ := f.GetString("urban")
		if v == "any" {
			a.UrbanPreference = ""
		} else {
			p, err := parseEnum("urban", v, model.UrbanPrefUrban, model.UrbanPrefNature, model.UrbanPrefMixed)
			if err != nil {
				return a, err
			}
			a.UrbanPreference = p
		}
	}
	if f.Changed("english") {
		a.EnglishRequired, _ = f.GetBool("english")
	}
	if f.Changed("timezone") {
		v, _ := f.GetString("timezone")
		if v == "any" {
			a.TimezonePreference = ""
		} else {
			b, err := parseEnum("timezone", v, model.TimezoneAmericas, model.TimezoneEuropeAfrica, model.TimezoneAsiaPacific, model.TimezoneMiddleEast)
			if err != nil {
				return a, err
			}
			a.TimezonePreference = b
		}
	}
	if f.Changed("usage") {
		v, _ := f.GetString("usage")
		u, err := parseEnum("usage", v, model.UsageHodl, model.UsageTrade, model.UsageBusiness)
		if err != nil {
			return a, err
		}
		a.BitcoinUsage = u
	}
	if f.Changed("stability") {
		p, err := priorityFlag(f, "stability")
		if err != nil {
			return a, err
		}
		a.StabilityPriority = p
	}
	if f.Changed("deal-breakers") {
		v, _ := f.GetString("deal-breakers")
		d, err := parseDealBreakers(v)
		if err != nil {
			return a, err
		}
		a.DealBreakers = d
	}

	return a, nil
}

func parseEnum[T ~string](flag, value string, allowed ...T) (T, error) {
	for _, v := range allowed {
		if T(value) == v {
			return v, nil
		}
	}
	var zero T
	names := make([]string, len(allowed))
	for i, v := range allowed {
		names[i] = string(v)
	}
	return zero, eris.Errorf("--%s must be one of %s (got %q)", flag, strings.Join(names, ", "), value)
}

func priorityFlag(f *pflag.FlagSet, flag string) (model.Priority, error) {
	value, _ := f.GetString(flag)
	return parseEnum(flag, value, model.PriorityLow, model.PriorityMedium, model.PriorityHigh)
}

func parseDealBreakers(s string) (model.DealBreakers, error) {
	var d model.DealBreakers
	for _, name := range strings.Split(s, ",") {
		name = strings.TrimSpace(name)
		switch name {
		case "":
		case "no-extreme-heat":
			d.NoExtremeHeat = true
		case "top-schools":
			d.MustHaveTopSchools = true
		case "low-tax":
			d.MustBeLowTaxCrypto = true
		case "very-safe":
			d.MustBeVerySafe = true
		case "english":
			d.MustBeEnglish = true
		case "fast-internet":
			d.MustHaveFastInternet = true
		case "no-cold-winters":
			d.NoColdWinters = true
		default:
			return d, eris.Errorf("unknown deal breaker %q", name)
		}
	}
	return d, nil
}

// parseWeightOverrides turns "criterion=value" pairs into overrides.
// Criterion names match the breakdown keys (tax_hodl, visa, ...).
func parseWeightOverrides(pairs []string) (*scorer.WeightOverrides, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	o := &scorer.WeightOverrides{}
	fields := map[string]**float64{
		"tax_hodl":         &o.TaxHodl,
		"tax_trade":        &o.TaxTrade,
		"regulation":       &o.Regulation,
		"safety":           &o.Safety,
		"stability":        &o.Stability,
		"cost_living":      &o.CostLiving,
		"housing":          &o.Housing,
		"education":        &o.Education,
		"visa":             &o.Visa,
		"infra":            &o.Infra,
		"lifestyle":        &o.Lifestyle,
		"crypto_community": &o.CryptoCommunity,
	}

	for _, pair := range pairs {
		key, raw, found := strings.Cut(pair, "=")
		if !found {
			return nil, eris.Errorf("--weight must be criterion=value (got %q)", pair)
		}
		field, ok := fields[key]
		if !ok {
			return nil, eris.Errorf("unknown criterion %q in --weight", key)
		}
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, eris.Wrapf(err, "parse --weight %s", pair)
		}
		if value < 0 {
			return nil, eris.Errorf("--weight %s must be non-negative", key)
		}
		v := value
		*field = &v
	}
	return o, nil
}
