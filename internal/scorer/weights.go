package scorer

import (
	"github.com/rotisserie/eris"

	"github.com/btc-haven/haven-cli/internal/model"
)

// Preset names a baseline weight table.
type Preset string

const (
	PresetBalanced        Preset = "balanced"
	PresetTaxEfficiency   Preset = "tax-efficiency"
	PresetFamilyFirst     Preset = "family-first"
	PresetSafetyStability Preset = "safety-stability"
	PresetCustom          Preset = "custom"
)

// Weights holds one multiplier per criterion. All twelve fields
// participate in every weighted average; a zero weight removes a
// criterion from both numerator and denominator.
type Weights struct {
	TaxHodl         float64 `json:"tax_hodl"`
	TaxTrade        float64 `json:"tax_trade"`
	Regulation      float64 `json:"regulation"`
	Safety          float64 `json:"safety"`
	Stability       float64 `json:"stability"`
	CostLiving      float64 `json:"cost_living"`
	Housing         float64 `json:"housing"`
	Education       float64 `json:"education"`
	Visa            float64 `json:"visa"`
	Infra           float64 `json:"infra"`
	Lifestyle       float64 `json:"lifestyle"`
	CryptoCommunity float64 `json:"crypto_community"`
}

// WeightOverrides carries optional per-criterion replacements applied on
// top of a preset. Nil fields leave the preset value in place.
type WeightOverrides struct {
	TaxHodl         *float64 `json:"tax_hodl,omitempty"`
	TaxTrade        *float64 `json:"tax_trade,omitempty"`
	Regulation      *float64 `json:"regulation,omitempty"`
	Safety          *float64 `json:"safety,omitempty"`
	Stability       *float64 `json:"stability,omitempty"`
	CostLiving      *float64 `json:"cost_living,omitempty"`
	Housing         *float64 `json:"housing,omitempty"`
	Education       *float64 `json:"education,omitempty"`
	Visa            *float64 `json:"visa,omitempty"`
	Infra           *float64 `json:"infra,omitempty"`
	Lifestyle       *float64 `json:"lifestyle,omitempty"`
	CryptoCommunity *float64 `json:"crypto_community,omitempty"`
}

// PresetWeights returns the baseline table for a preset. Unknown names
// fall back to the balanced table.
func PresetWeights(p Preset) Weights {
	switch p {
	case PresetTaxEfficiency:
		return Weights{
			TaxHodl:         1.5,
			TaxTrade:        1.3,
			Regulation:      1.0,
			Safety:          0.6,
			Stability:       0.5,
			CostLiving:      0.5,
			Housing:         0.4,
			Education:       0.3,
			Visa:            0.7,
			Infra:           0.5,
			Lifestyle:       0.4,
			CryptoCommunity: 0.6,
		}
	case PresetFamilyFirst:
		return Weights{
			TaxHodl:         0.6,
			TaxTrade:        0.4,
			Regulation:      0.6,
			Safety:          1.5,
			Stability:       1.3,
			CostLiving:      0.9,
			Housing:         1.0,
			Education:       1.5,
			Visa:            0.8,
			Infra:           1.0,
			Lifestyle:       1.0,
			CryptoCommunity: 0.3,
		}
	case PresetSafetyStability:
		return Weights{
			TaxHodl:         0.5,
			TaxTrade:        0.4,
			Regulation:      0.8,
			Safety:          1.5,
			Stability:       1.5,
			CostLiving:      0.6,
			Housing:         0.5,
			Education:       0.8,
			Visa:            0.7,
			Infra:           1.0,
			Lifestyle:       0.8,
			CryptoCommunity: 0.4,
		}
	case PresetCustom:
		return Weights{
			TaxHodl:         1.0,
			TaxTrade:        1.0,
			Regulation:      1.0,
			Safety:          1.0,
			Stability:       1.0,
			CostLiving:      1.0,
			Housing:         1.0,
			Education:       1.0,
			Visa:            1.0,
			Infra:           1.0,
			Lifestyle:       1.0,
			CryptoCommunity: 1.0,
		}
	default:
		return Weights{
			TaxHodl:         1.0,
			TaxTrade:        0.8,
			Regulation:      0.9,
			Safety:          1.0,
			Stability:       0.9,
			CostLiving:      0.8,
			Housing:         0.7,
			Education:       0.6,
			Visa:            0.8,
			Infra:           0.7,
			Lifestyle:       0.7,
			CryptoCommunity: 0.6,
		}
	}
}

// Apply overlays the non-nil override fields onto w.
func (o WeightOverrides) Apply(w Weights) Weights {
	set := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	set(&w.TaxHodl, o.TaxHodl)
	set(&w.TaxTrade, o.TaxTrade)
	set(&w.Regulation, o.Regulation)
	set(&w.Safety, o.Safety)
	set(&w.Stability, o.Stability)
	set(&w.CostLiving, o.CostLiving)
	set(&w.Housing, o.Housing)
	set(&w.Education, o.Education)
	set(&w.Visa, o.Visa)
	set(&w.Infra, o.Infra)
	set(&w.Lifestyle, o.Lifestyle)
	set(&w.CryptoCommunity, o.CryptoCommunity)
	return w
}

// Validate rejects negative weights and an all-zero table, which would
// make every weighted average degenerate.
func (w Weights) Validate() error {
	total := 0.0
	for _, v := range []float64{
		w.TaxHodl, w.TaxTrade, w.Regulation, w.Safety, w.Stability,
		w.CostLiving, w.Housing, w.Education, w.Visa, w.Infra,
		w.Lifestyle, w.CryptoCommunity,
	} {
		if v < 0 {
			return eris.New("scorer: weights must be non-negative")
		}
		total += v
	}
	if total == 0 {
		return eris.New("scorer: at least one weight must be positive")
	}
	return nil
}

// ResolveWeights produces the effective weight table for one user:
// preset baseline, then overrides, then the multiplicative personal
// adjustments. Adjustments compound when several conditions touch the
// same criterion.
func ResolveWeights(p Preset, overrides *WeightOverrides, a model.QuizAnswers) Weights {
	w := PresetWeights(p)
	if overrides != nil {
		w = overrides.Apply(w)
	}

	switch a.BitcoinUsage {
	case model.UsageHodl:
		w.TaxHodl *= 1.3
		w.TaxTrade *= 0.5
	case model.UsageTrade:
		w.TaxHodl *= 0.8
		w.TaxTrade *= 1.3
	case model.UsageBusiness:
		w.TaxTrade *= 1.4
		w.Regulation *= 1.3
		w.CryptoCommunity *= 1.2
	}

	if a.HasKids {
		w.Education *= 1.5
		w.Safety *= 1.3
		w.Infra *= 1.2
	}
	switch a.SchoolingPriority {
	case model.PriorityHigh:
		w.Education *= 1.5
	case model.PriorityLow:
		w.Education *= 0.5
	}

	switch a.CostTolerance {
	case model.PriorityLow:
		w.CostLiving *= 1.5
		w.Housing *= 1.4
	case model.PriorityHigh:
		w.CostLiving *= 0.5
		w.Housing *= 0.5
	}

	switch a.SafetyTolerance {
	case model.PriorityLow:
		w.Safety *= 1.5
		w.Stability *= 1.3
	case model.PriorityHigh:
		w.Safety *= 0.7
	}

	switch a.StabilityPriority {
	case model.PriorityHigh:
		w.Stability *= 1.4
		w.Regulation *= 1.2
	case model.PriorityLow:
		w.Stability *= 0.6
	}

	if a.VisaFlexibility.CanWorkRemotely {
		w.Infra *= 1.3
	}

	return w
}

// RecommendPreset picks the preset whose emphasis matches the answers.
// Safety concerns outrank family, which outranks tax focus.
func RecommendPreset(a model.QuizAnswers) Preset {
	taxFocus := a.BitcoinUsage == model.UsageTrade || a.BitcoinUsage == model.UsageBusiness
	familyFocus := a.HasKids && a.SchoolingPriority == model.PriorityHigh
	safetyFocus := a.SafetyTolerance == model.PriorityLow && a.StabilityPriority == model.PriorityHigh

	switch {
	case taxFocus && !familyFocus && !safetyFocus:
		return PresetTaxEfficiency
	case familyFocus:
		return PresetFamilyFirst
	case safetyFocus:
		return PresetSafetyStability
	default:
		return PresetBalanced
	}
}
