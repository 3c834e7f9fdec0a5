package scorer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/btc-haven/haven-cli/internal/model"
)

func TestAmericanModifier(t *testing.T) {
	americans := model.DefaultAnswers()
	americans.Citizenship = model.CitizenshipAmerican

	tests := []struct {
		name         string
		jurisdiction model.Jurisdiction
		answers      model.QuizAnswers
		wantModifier int
		wantWarnings []string
	}{
		{
			name:         "non-americans are unaffected",
			jurisdiction: model.Jurisdiction{ID: "x", Tags: model.JurisdictionTags{NoCapitalGains: true}},
			answers:      model.DefaultAnswers(),
			wantModifier: 0,
			wantWarnings: nil,
		},
		{
			name:         "puerto rico short-circuits",
			jurisdiction: model.Jurisdiction{ID: "puerto-rico", Tags: model.JurisdictionTags{NoCapitalGains: true}},
			answers:      americans,
			wantModifier: 25,
			wantWarnings: []string{"Act 60 allows 0% capital gains for US citizens who become bona fide residents"},
		},
		{
			name: "zero capital gains elsewhere is a trap",
			jurisdiction: model.Jurisdiction{
				ID:   "x",
				Tags: model.JurisdictionTags{NoCapitalGains: true},
			},
			answers:      americans,
			wantModifier: -5,
			wantWarnings: []string{
				"US citizens are taxed on worldwide income regardless of residence",
				"Moving here won't eliminate federal tax on Bitcoin gains",
			},
		},
		{
			name: "strong lifestyle softens the penalty",
			jurisdiction: model.Jurisdiction{
				ID:     "x",
				Tags:   model.JurisdictionTags{NoCapitalGains: true},
				Scores: model.JurisdictionScores{Safety: 9},
			},
			answers:      americans,
			wantModifier: -3,
			wantWarnings: []string{
				"US citizens are taxed on worldwide income regardless of residence",
				"Moving here won't eliminate federal tax on Bitcoin gains",
				"However, strong lifestyle benefits may still make this attractive",
			},
		},
		{
			name: "education alone also softens",
			jurisdiction: model.Jurisdiction{
				ID:     "x",
				Tags:   model.JurisdictionTags{NoCapitalGains: true},
				Scores: model.JurisdictionScores{Education: 8},
			},
			answers:      americans,
			wantModifier: -3,
			wantWarnings: []string{
				"US citizens are taxed on worldwide income regardless of residence",
				"Moving here won't eliminate federal tax on Bitcoin gains",
				"However, strong lifestyle benefits may still make this attractive",
			},
		},
		{
			name: "holding period rule alone",
			jurisdiction: model.Jurisdiction{
				ID:           "x",
				SpecialRules: model.SpecialRules{HoldingPeriodRule: "1-year exemption"},
			},
			answers:      americans,
			wantModifier: 1,
			wantWarnings: []string{"Holding period rules may provide some local tax benefits"},
		},
		{
			name: "penalty and holding period compound",
			jurisdiction: model.Jurisdiction{
				ID:           "x",
				Tags:         model.JurisdictionTags{NoCapitalGains: true},
				SpecialRules: model.SpecialRules{HoldingPeriodRule: "1-year exemption"},
			},
			answers:      americans,
			wantModifier: -4,
			wantWarnings: []string{
				"US citizens are taxed on worldwide income regardless of residence",
				"Moving here won't eliminate federal tax on Bitcoin gains",
				"Holding period rules may provide some local tax benefits",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mod, warnings := americanModifier(&tt.jurisdiction, tt.answers)
			assert.Equal(t, tt.wantModifier, mod)
			assert.Equal(t, tt.wantWarnings, warnings)
		})
	}
}

func TestAmericanModifierDualCitizens(t *testing.T) {
	a := model.DefaultAnswers()
	a.Citizenship = model.CitizenshipDual

	j := model.Jurisdiction{ID: "puerto-rico"}
	mod, _ := americanModifier(&j, a)
	assert.Equal(t, 25, mod)
}
