package scorer

import (
	"fmt"

	"github.com/btc-haven/haven-cli/internal/model"
)

// climateMatches maps each climate preference to the catalog climates
// that satisfy it. Mediterranean counts as both warm and temperate.
var climateMatches = map[model.ClimatePreference][]model.Climate{
	model.ClimatePrefWarm:      {model.ClimateTropical, model.ClimateSubtropical, model.ClimateDesert, model.ClimateMediterranean},
	model.ClimatePrefTemperate: {model.ClimateTemperate, model.ClimateMediterranean},
	model.ClimatePrefCold:      {model.ClimateAlpine, model.ClimateTemperate},
}

var urbanMatches = map[model.UrbanPreference][]model.Urbanity{
	model.UrbanPrefUrban:  {model.UrbanityMajorCity, model.UrbanityCity},
	model.UrbanPrefNature: {model.UrbanityTown, model.UrbanityIsland},
	model.UrbanPrefMixed:  {model.UrbanityMixed, model.UrbanityCity},
}

// lifestyleScore adjusts the editorial lifestyle base score by how well
// the jurisdiction matches the user's stated preferences. The result is
// clamped to [0, 10]. Notes explain each positive match; misses only
// lower the score.
func lifestyleScore(j *model.Jurisdiction, a model.QuizAnswers) (float64, []string) {
	score := j.Scores.LifestyleBase
	var notes []string

	if a.ClimatePreference != "" {
		if containsClimate(climateMatches[a.ClimatePreference], j.Tags.Climate) {
			score++
			notes = append(notes, fmt.Sprintf("%s climate matches preference", j.Tags.Climate))
		} else {
			score--
		}
	}

	if a.UrbanPreference != "" {
		if containsUrbanity(urbanMatches[a.UrbanPreference], j.Tags.Urbanity) {
			score += 0.5
			notes = append(notes, fmt.Sprintf("%s setting matches preference", j.Tags.Urbanity))
		}
	}

	if a.EnglishRequired {
		if j.Tags.EnglishFriendly {
			score++
			notes = append(notes, "English-friendly environment")
		} else {
			score -= 2
		}
	}

	if a.TimezonePreference != "" && a.TimezonePreference == j.Tags.TimezoneBand {
		score += 0.5
		notes = append(notes, "Timezone matches preference")
	}

	if a.HasKids && j.Tags.FamilyFriendly {
		score++
		notes = append(notes, "Family-friendly destination")
	}

	if score < 0 {
		score = 0
	}
	if score > 10 {
		score = 10
	}
	return score, notes
}

func containsClimate(set []model.Climate, c model.Climate) bool {
	for _, v := range set {
		if v == c {
			return true
		}
	}
	return false
}

func containsUrbanity(set []model.Urbanity, u model.Urbanity) bool {
	for _, v := range set {
		if v == u {
			return true
		}
	}
	return false
}
