package scorer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/btc-haven/haven-cli/internal/model"
)

func lifestyleFixture() model.Jurisdiction {
	return model.Jurisdiction{
		ID:   "fixture",
		Name: "Fixture",
		Tags: model.JurisdictionTags{
			Climate:         model.ClimateMediterranean,
			Urbanity:        model.UrbanityCity,
			EnglishFriendly: true,
			TimezoneBand:    model.TimezoneEuropeAfrica,
			FamilyFriendly:  true,
		},
		Scores: model.JurisdictionScores{LifestyleBase: 7},
	}
}

func TestLifestyleScore(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*model.QuizAnswers)
		wantScore float64
		wantNotes []string
	}{
		{
			name:      "no preferences leaves base untouched",
			mutate:    func(a *model.QuizAnswers) {},
			wantScore: 7,
			wantNotes: nil,
		},
		{
			name: "climate match",
			mutate: func(a *model.QuizAnswers) {
				a.ClimatePreference = model.ClimatePrefWarm
			},
			wantScore: 8,
			wantNotes: []string{"mediterranean climate matches preference"},
		},
		{
			name: "mediterranean satisfies temperate too",
			mutate: func(a *model.QuizAnswers) {
				a.ClimatePreference = model.ClimatePrefTemperate
			},
			wantScore: 8,
			wantNotes: []string{"mediterranean climate matches preference"},
		},
		{
			name: "climate miss",
			mutate: func(a *model.QuizAnswers) {
				a.ClimatePreference = model.ClimatePrefCold
			},
			wantScore: 6,
			wantNotes: nil,
		},
		{
			name: "urban match",
			mutate: func(a *model.QuizAnswers) {
				a.UrbanPreference = model.UrbanPrefUrban
			},
			wantScore: 7.5,
			wantNotes: []string{"city setting matches preference"},
		},
		{
			name: "urban miss has no penalty",
			mutate: func(a *model.QuizAnswers) {
				a.UrbanPreference = model.UrbanPrefNature
			},
			wantScore: 7,
			wantNotes: nil,
		},
		{
			name: "english required and available",
			mutate: func(a *model.QuizAnswers) {
				a.EnglishRequired = true
			},
			wantScore: 8,
			wantNotes: []string{"English-friendly environment"},
		},
		{
			name: "timezone match",
			mutate: func(a *model.QuizAnswers) {
				a.TimezonePreference = model.TimezoneEuropeAfrica
			},
			wantScore: 7.5,
			wantNotes: []string{"Timezone matches preference"},
		},
		{
			name: "kids in a family-friendly destination",
			mutate: func(a *model.QuizAnswers) {
				a.HasKids = true
			},
			wantScore: 8,
			wantNotes: []string{"Family-friendly destination"},
		},
		{
			name: "everything matches",
			mutate: func(a *model.QuizAnswers) {
				a.ClimatePreference = model.ClimatePrefWarm
				a.UrbanPreference = model.UrbanPrefUrban
				a.EnglishRequired = true
				a.TimezonePreference = model.TimezoneEuropeAfrica
				a.HasKids = true
			},
			wantScore: 10, // 7+1+0.5+1+0.5+1 clamped
			wantNotes: []string{
				"mediterranean climate matches preference",
				"city setting matches preference",
				"English-friendly environment",
				"Timezone matches preference",
				"Family-friendly destination",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j := lifestyleFixture()
			a := model.DefaultAnswers()
			tt.mutate(&a)

			score, notes := lifestyleScore(&j, a)
			assert.InDelta(t, tt.wantScore, score, 1e-9)
			assert.Equal(t, tt.wantNotes, notes)
		})
	}
}

func TestLifestyleScoreClamps(t *testing.T) {
	j := lifestyleFixture()
	j.Scores.LifestyleBase = 1
	j.Tags.EnglishFriendly = false
	j.Tags.Climate = model.ClimateTropical

	a := model.DefaultAnswers()
	a.EnglishRequired = true
	a.ClimatePreference = model.ClimatePrefCold

	// 1 - 2 (english) - 1 (climate) clamps at zero.
	score, notes := lifestyleScore(&j, a)
	assert.Equal(t, 0.0, score)
	assert.Empty(t, notes)

	j.Scores.LifestyleBase = 10
	j.Tags.EnglishFriendly = true
	a = model.DefaultAnswers()
	a.EnglishRequired = true
	score, _ = lifestyleScore(&j, a)
	assert.Equal(t, 10.0, score)
}
