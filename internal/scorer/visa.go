package scorer

import "github.com/btc-haven/haven-cli/internal/model"

// visaBonus rewards jurisdictions whose residency routes line up with
// what the user can actually pursue. Puerto Rico gets an extra bump for
// Americans because no visa is needed at all.
func visaBonus(j *model.Jurisdiction, a model.QuizAnswers) float64 {
	bonus := 0.0

	if a.VisaFlexibility.CanInvest &&
		(j.HasVisaRoute(model.VisaInvestment) || j.HasVisaRoute(model.VisaGolden) || j.HasVisaRoute(model.VisaCitizenshipByInvestment)) {
		bonus++
	}
	if a.VisaFlexibility.IsEntrepreneur && j.HasVisaRoute(model.VisaEntrepreneur) {
		bonus++
	}
	if a.VisaFlexibility.CanWorkRemotely && j.HasVisaRoute(model.VisaDigitalNomad) {
		bonus++
	}
	if a.Citizenship.IsAmerican() && j.ID == puertoRicoID {
		bonus += 2
	}

	return bonus
}
