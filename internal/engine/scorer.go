package engine

import (
	"github.com/assuranceops/verdict/internal/catalog"
)

// Inputs are the raw per-indicator submissions for one assessment run.
// Values are whatever the decoder produced (string/bool/number); absent
// entries default to the type-appropriate neutral.
type Inputs struct {
	Responses     map[string]any `json:"responses"`
	Likelihood    map[string]any `json:"likelihood"`
	Impact        map[string]any `json:"impact"`
	Detectability map[string]any `json:"detectability"`
}

// WeightBreakdown records the three multipliers applied to one indicator.
type WeightBreakdown struct {
	Domain    float64 `json:"domain"`
	Nature    float64 `json:"nature"`
	Indicator float64 `json:"indicator"`
}

// RawInputs preserves the caller's original values for the audit trail, even
// when they were coerced to a neutral default.
type RawInputs struct {
	Response      any `json:"response"`
	Likelihood    any `json:"likelihood"`
	Impact        any `json:"impact"`
	Detectability any `json:"detectability"`
}

// ScaledInputs are the canonical 1–5 values actually multiplied.
type ScaledInputs struct {
	Response      float64 `json:"response"`
	Likelihood    float64 `json:"likelihood"`
	Impact        float64 `json:"impact"`
	Detectability float64 `json:"detectability"`
}

// IndicatorDetail is the per-indicator provenance record, rebuilt fresh on
// every run.
type IndicatorDetail struct {
	Domain   catalog.RiskDomain   `json:"domain"`
	Category catalog.RiskCategory `json:"category"`
	Nature   catalog.RiskNature   `json:"nature"`
	Weights  WeightBreakdown      `json:"weights"`
	Inputs   RawInputs            `json:"inputs"`
	Scaled   ScaledInputs         `json:"scaled"`
}

// ScoreResult holds one score and one detail record per library indicator.
type ScoreResult struct {
	LocalScores map[string]float64         `json:"local_scores"`
	Details     map[string]IndicatorDetail `json:"indicator_details"`
}

// ScoreIndicators walks the library in order and computes
//
//	score = response × likelihood × impact × detectability × domainWeight × natureWeight × baseWeight
//
// with all four scaled values in [1,5]. The combination is multiplicative;
// every indicator produces exactly one score whether or not it was answered.
func ScoreIndicators(lib *catalog.Library, in Inputs, domainWeights map[catalog.RiskDomain]float64) ScoreResult {
	scores := make(map[string]float64, lib.Len())
	details := make(map[string]IndicatorDetail, lib.Len())

	for _, ind := range lib.Indicators() {
		r := in.Responses[ind.ID]
		l := in.Likelihood[ind.ID]
		i := in.Impact[ind.ID]
		d := in.Detectability[ind.ID]

		scaled := ScaledInputs{
			Response:      MapAnswer(ind.AnswerType, r),
			Likelihood:    MapAnswer(catalog.AnswerScale1To5, l),
			Impact:        MapAnswer(catalog.AnswerScale1To5, i),
			Detectability: MapAnswer(catalog.AnswerScale1To5, d),
		}

		dw, ok := domainWeights[ind.Domain]
		if !ok {
			dw = 1.0
		}
		nw := ind.Nature.WeightModifier()
		iw := ind.BaseWeight

		score := scaled.Response * scaled.Likelihood * scaled.Impact * scaled.Detectability * dw * nw * iw

		scores[ind.ID] = score
		details[ind.ID] = IndicatorDetail{
			Domain:   ind.Domain,
			Category: ind.Category,
			Nature:   ind.Nature,
			Weights:  WeightBreakdown{Domain: dw, Nature: nw, Indicator: iw},
			Inputs:   RawInputs{Response: r, Likelihood: l, Impact: i, Detectability: d},
			Scaled:   scaled,
		}
	}

	return ScoreResult{LocalScores: scores, Details: details}
}
