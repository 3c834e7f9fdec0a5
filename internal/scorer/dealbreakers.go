package scorer

import "github.com/btc-haven/haven-cli/internal/model"

// dealBreakerViolations returns one message per violated hard
// requirement. Violations do not disqualify; the orchestrator applies a
// fixed penalty per message.
func dealBreakerViolations(j *model.Jurisdiction, d model.DealBreakers) []string {
	var violations []string

	if d.NoExtremeHeat && (j.Tags.Climate == model.ClimateTropical || j.Tags.Climate == model.ClimateDesert) {
		violations = append(violations, "Climate may be too hot")
	}
	if d.MustHaveTopSchools && j.Scores.Education < 7 {
		violations = append(violations, "Education quality below top-tier")
	}
	if d.MustBeLowTaxCrypto && j.Scores.TaxHodl < 8 {
		violations = append(violations, "Bitcoin taxation not optimal")
	}
	if d.MustBeVerySafe && j.Tags.SafetyTier != model.SafetyTierVerySafe {
		violations = append(violations, `Safety level below "very safe"`)
	}
	if d.MustBeEnglish && !j.Tags.EnglishFriendly {
		violations = append(violations, "Not primarily English-speaking")
	}
	if d.MustHaveFastInternet && j.Scores.Infra < 7 {
		violations = append(violations, "Infrastructure/internet quality concerns")
	}
	if d.NoColdWinters && (j.Tags.Climate == model.ClimateAlpine || j.Tags.Climate == model.ClimateTemperate) {
		violations = append(violations, "May have cold winters")
	}

	return violations
}
