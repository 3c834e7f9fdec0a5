// Package scorer ranks jurisdictions for one user's quiz answers. All
// functions are pure and deterministic: same answers, same catalog,
// same output.
package scorer

import (
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/btc-haven/haven-cli/internal/model"
)

// CriterionScore is one row of a jurisdiction's score breakdown.
type CriterionScore struct {
	Key       string  `json:"key"`
	Label     string  `json:"label"`
	RawScore  float64 `json:"raw_score"`
	Weight    float64 `json:"weight"`
	Weighted  float64 `json:"weighted"`
	UserMatch bool    `json:"user_match"`
}

// ScoredJurisdiction is one ranked result: the catalog entry plus the
// computed score, its breakdown, and the human-readable explanations.
type ScoredJurisdiction struct {
	model.Jurisdiction
	FinalScore         float64          `json:"final_score"`
	AmericanModifier   int              `json:"american_modifier"`
	Breakdown          []CriterionScore `json:"breakdown"`
	MatchedPreferences []string         `json:"matched_preferences"`
	Warnings           []string         `json:"warnings"`
}

// dealBreakerPenalty is subtracted from the final score per violated
// hard requirement.
const dealBreakerPenalty = 3.0

// ScoreJurisdictions scores and ranks every jurisdiction for one set of
// answers. Results are sorted by final score descending; catalog order
// breaks ties, so equal-scoring jurisdictions keep their rank order.
func ScoreJurisdictions(jurisdictions []model.Jurisdiction, a model.QuizAnswers, preset Preset, overrides *WeightOverrides) []ScoredJurisdiction {
	w := ResolveWeights(preset, overrides, a)

	results := make([]ScoredJurisdiction, 0, len(jurisdictions))
	for i := range jurisdictions {
		results = append(results, scoreOne(&jurisdictions[i], a, w))
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].FinalScore > results[j].FinalScore
	})

	zap.L().Debug("scored jurisdictions",
		zap.Int("count", len(results)),
		zap.String("preset", string(preset)))
	return results
}

func scoreOne(j *model.Jurisdiction, a model.QuizAnswers, w Weights) ScoredJurisdiction {
	lifestyle, lifestyleNotes := lifestyleScore(j, a)

	visa := j.Scores.Visa + visaBonus(j, a)
	if visa > 10 {
		visa = 10
	}

	usage := a.BitcoinUsage
	criteria := []struct {
		key    string
		label  string
		raw    float64
		weight float64
		match  bool
	}{
		{"tax_hodl", "Tax (HODL)", j.Scores.TaxHodl, w.TaxHodl,
			usage == model.UsageHodl && j.Scores.TaxHodl >= 8},
		{"tax_trade", "Tax (Trading/Business)", j.Scores.TaxTrade, w.TaxTrade,
			usage != model.UsageHodl && j.Scores.TaxTrade >= 8},
		{"regulation", "Regulatory Clarity", j.Scores.Regulation, w.Regulation,
			j.Scores.Regulation >= 8},
		{"safety", "Safety", j.Scores.Safety, w.Safety,
			a.SafetyTolerance == model.PriorityLow && j.Scores.Safety >= 8},
		{"stability", "Political Stability", j.Scores.Stability, w.Stability,
			a.StabilityPriority == model.PriorityHigh && j.Scores.Stability >= 8},
		{"cost_living", "Cost of Living", j.Scores.CostLiving, w.CostLiving,
			a.CostTolerance == model.PriorityLow && j.Scores.CostLiving >= 7},
		{"housing", "Housing Affordability", j.Scores.Housing, w.Housing,
			a.HousingBudget != model.HousingVeryHigh && j.Scores.Housing >= 7},
		{"education", "Education Quality", j.Scores.Education, w.Education,
			a.HasKids && j.Scores.Education >= 8},
		{"visa", "Visa Accessibility", visa, w.Visa,
			visa >= 8},
		{"infra", "Infrastructure", j.Scores.Infra, w.Infra,
			a.VisaFlexibility.CanWorkRemotely && j.Scores.Infra >= 8},
		{"lifestyle", "Lifestyle Match", lifestyle, w.Lifestyle,
			lifestyle >= 7},
		{"crypto_community", "Bitcoin Community", j.Scores.CryptoCommunity, w.CryptoCommunity,
			usage == model.UsageBusiness && j.Scores.CryptoCommunity >= 7},
	}

	breakdown := make([]CriterionScore, 0, len(criteria))
	totalWeighted := 0.0
	totalWeight := 0.0
	matched := append([]string(nil), lifestyleNotes...)

	for _, c := range criteria {
		weighted := c.raw * c.weight
		totalWeighted += weighted
		totalWeight += c.weight
		breakdown = append(breakdown, CriterionScore{
			Key:       c.key,
			Label:     c.label,
			RawScore:  c.raw,
			Weight:    c.weight,
			Weighted:  weighted,
			UserMatch: c.match,
		})
		if c.match {
			matched = append(matched, "Strong "+strings.ToLower(c.label))
		}
	}

	final := 0.0
	if totalWeight > 0 {
		final = totalWeighted / totalWeight
	}

	modifier, warnings := americanModifier(j, a)
	final += float64(modifier)

	violations := dealBreakerViolations(j, a.DealBreakers)
	final -= dealBreakerPenalty * float64(len(violations))
	warnings = append(warnings, violations...)

	if final < 0 {
		final = 0
	}

	return ScoredJurisdiction{
		Jurisdiction:       *j,
		FinalScore:         final,
		AmericanModifier:   modifier,
		Breakdown:          breakdown,
		MatchedPreferences: matched,
		Warnings:           warnings,
	}
}
