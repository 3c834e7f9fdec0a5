package scorer

import "github.com/btc-haven/haven-cli/internal/model"

// puertoRicoID is the one jurisdiction where US citizenship flips from
// liability to advantage (Act 60 bona fide residency).
const puertoRicoID = "puerto-rico"

// americanModifier computes the flat score adjustment that US worldwide
// taxation imposes, plus the warnings that explain it. Non-Americans get
// no adjustment. Puerto Rico short-circuits every other rule, including
// the holding-period bonus.
func americanModifier(j *model.Jurisdiction, a model.QuizAnswers) (int, []string) {
	if !a.Citizenship.IsAmerican() {
		return 0, nil
	}

	if j.ID == puertoRicoID {
		return 25, []string{"Act 60 allows 0% capital gains for US citizens who become bona fide residents"}
	}

	modifier := 0
	var warnings []string

	if j.Tags.NoCapitalGains {
		modifier -= 5
		warnings = append(warnings,
			"US citizens are taxed on worldwide income regardless of residence",
			"Moving here won't eliminate federal tax on Bitcoin gains",
		)
		if j.Scores.Safety >= 8 || j.Scores.Education >= 8 {
			modifier = -3
			warnings = append(warnings, "However, strong lifestyle benefits may still make this attractive")
		}
	}

	if j.SpecialRules.HoldingPeriodRule != "" {
		modifier++
		warnings = append(warnings, "Holding period rules may provide some local tax benefits")
	}

	return modifier, warnings
}
