package main

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/btc-haven/haven-cli/internal/model"
)

func parseAnswers(t *testing.T, args ...string) (model.QuizAnswers, error) {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	registerAnswerFlags(cmd)
	require.NoError(t, cmd.ParseFlags(args))
	return answersFromFlags(cmd)
}

func TestAnswersFromFlagsDefaults(t *testing.T) {
	a, err := parseAnswers(t)
	require.NoError(t, err)
	assert.Equal(t, model.DefaultAnswers(), a)
}

func TestAnswersFromFlags(t *testing.T) {
	a, err := parseAnswers(t,
		"--citizenship", "american",
		"--usage", "business",
		"--kids",
		"--schooling", "high",
		"--climate", "warm",
		"--english",
		"--deal-breakers", "very-safe,fast-internet",
	)
	require.NoError(t, err)

	assert.Equal(t, model.CitizenshipAmerican, a.Citizenship)
	assert.Equal(t, model.UsageBusiness, a.BitcoinUsage)
	assert.True(t, a.HasKids)
	assert.Equal(t, model.PriorityHigh, a.SchoolingPriority)
	assert.Equal(t, model.ClimatePrefWarm, a.ClimatePreference)
	assert.True(t, a.EnglishRequired)
	assert.True(t, a.DealBreakers.MustBeVerySafe)
	assert.True(t, a.DealBreakers.MustHaveFastInternet)
	assert.False(t, a.DealBreakers.NoExtremeHeat)
}

func TestAnswersFromFlagsRejectsBadEnums(t *testing.T) {
	_, err := parseAnswers(t, "--citizenship", "martian")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--citizenship must be one of")

	_, err = parseAnswers(t, "--deal-breakers", "no-mondays")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown deal breaker")
}

func TestAnswersFromFlagsAnyClearsPreference(t *testing.T) {
	a, err := parseAnswers(t, "--answers", "cit=american&cp=warm", "--climate", "any")
	require.NoError(t, err)
	assert.Empty(t, a.ClimatePreference)
	assert.Equal(t, model.CitizenshipAmerican, a.Citizenship)
}

func TestAnswersFromFlagsEncodedSeed(t *testing.T) {
	a, err := parseAnswers(t, "--answers", "cit=american&bu=trade&kids=1&db=65")
	require.NoError(t, err)

	assert.Equal(t, model.CitizenshipAmerican, a.Citizenship)
	assert.Equal(t, model.UsageTrade, a.BitcoinUsage)
	assert.True(t, a.HasKids)
	assert.True(t, a.DealBreakers.NoExtremeHeat)
	assert.True(t, a.DealBreakers.NoColdWinters)

	// Explicit flags win over the encoded baseline.
	a, err = parseAnswers(t, "--answers", "cit=american", "--citizenship", "dual")
	require.NoError(t, err)
	assert.Equal(t, model.CitizenshipDual, a.Citizenship)
}

func TestParseWeightOverrides(t *testing.T) {
	o, err := parseWeightOverrides(nil)
	require.NoError(t, err)
	assert.Nil(t, o)

	o, err = parseWeightOverrides([]string{"tax_hodl=1.5", "visa=0"})
	require.NoError(t, err)
	require.NotNil(t, o)
	require.NotNil(t, o.TaxHodl)
	assert.Equal(t, 1.5, *o.TaxHodl)
	require.NotNil(t, o.Visa)
	assert.Equal(t, 0.0, *o.Visa)
	assert.Nil(t, o.Safety)

	_, err = parseWeightOverrides([]string{"charisma=2"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown criterion")

	_, err = parseWeightOverrides([]string{"visa"})
	require.Error(t, err)

	_, err = parseWeightOverrides([]string{"visa=-1"})
	require.Error(t, err)
}
