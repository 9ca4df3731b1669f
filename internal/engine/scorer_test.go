package engine

import (
	"math"
	"testing"

	"github.com/assuranceops/verdict/internal/catalog"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// Worked fixture: I001 answered "no" with L=I=D=3 under product_design.
// response 5.0 × 3 × 3 × 3 × domain 1.25 × structural 1.25 × base 1.10.
func TestScoreIndicatorsFixture(t *testing.T) {
	lib := catalog.DefaultLibrary()
	weights := catalog.DomainWeights(catalog.ActivityProductDesign)

	in := Inputs{
		Responses:     map[string]any{"I001": "no"},
		Likelihood:    map[string]any{"I001": 3},
		Impact:        map[string]any{"I001": 3},
		Detectability: map[string]any{"I001": 3},
	}

	result := ScoreIndicators(lib, in, weights)

	want := 5.0 * 3.0 * 3.0 * 3.0 * 1.25 * 1.25 * 1.10
	if !almostEqual(result.LocalScores["I001"], want) {
		t.Errorf("I001 score = %f, want %f", result.LocalScores["I001"], want)
	}
	if !almostEqual(want, 232.03125) {
		t.Errorf("fixture arithmetic drifted: %f", want)
	}
}

func TestScoreIndicatorsCoversWholeLibrary(t *testing.T) {
	lib := catalog.DefaultLibrary()
	weights := catalog.DomainWeights(catalog.ActivityDataCollection)

	result := ScoreIndicators(lib, Inputs{}, weights)

	if len(result.LocalScores) != lib.Len() {
		t.Fatalf("expected %d scores, got %d", lib.Len(), len(result.LocalScores))
	}
	if len(result.Details) != lib.Len() {
		t.Fatalf("expected %d details, got %d", lib.Len(), len(result.Details))
	}
}

func TestScoreIndicatorsUnansweredDefaultsNeutral(t *testing.T) {
	lib := catalog.DefaultLibrary()
	weights := catalog.DomainWeights(catalog.ActivityProductDesign)

	result := ScoreIndicators(lib, Inputs{}, weights)

	// I004 is low_med_high: every factor neutral at 3.0.
	detail := result.Details["I004"]
	if detail.Scaled.Response != 3.0 || detail.Scaled.Likelihood != 3.0 ||
		detail.Scaled.Impact != 3.0 || detail.Scaled.Detectability != 3.0 {
		t.Errorf("unanswered indicator not neutral: %+v", detail.Scaled)
	}

	// measurement_integrity carries no product_design boost, technical nature
	// is 1.0, so the score is 3^4 × base weight.
	want := 81.0 * 1.00
	if !almostEqual(result.LocalScores["I004"], want) {
		t.Errorf("I004 score = %f, want %f", result.LocalScores["I004"], want)
	}
}

func TestScoreIndicatorsMalformedAnswersFailOpen(t *testing.T) {
	lib := catalog.DefaultLibrary()
	weights := catalog.DomainWeights(catalog.ActivityProductDesign)

	in := Inputs{
		Responses:     map[string]any{"I001": []any{"nested", "junk"}},
		Likelihood:    map[string]any{"I001": "not a number"},
		Impact:        map[string]any{"I001": map[string]any{"x": 1}},
		Detectability: map[string]any{"I001": nil},
	}

	result := ScoreIndicators(lib, in, weights)

	detail := result.Details["I001"]
	if detail.Scaled.Response != 3.0 {
		t.Errorf("malformed response scaled to %f, want 3.0", detail.Scaled.Response)
	}
	if detail.Scaled.Likelihood != 3.0 {
		t.Errorf("malformed likelihood scaled to %f, want 3.0", detail.Scaled.Likelihood)
	}
	// The raw value is preserved for the audit trail even when coerced.
	if detail.Inputs.Likelihood != "not a number" {
		t.Errorf("raw likelihood not preserved: %v", detail.Inputs.Likelihood)
	}
}

func TestAggregateUsesMean(t *testing.T) {
	details := map[string]IndicatorDetail{
		"A1": {Domain: catalog.DomainSupplyChain, Category: catalog.CategorySingleSourceSupplier},
		"A2": {Domain: catalog.DomainSupplyChain, Category: catalog.CategorySupplierChangeRisk},
		"B1": {Domain: catalog.DomainDesignMaturity, Category: catalog.CategoryUnvalidatedAssumptions},
	}
	scores := map[string]float64{"A1": 100.0, "A2": 50.0, "B1": 80.0}

	agg := Aggregate(details, scores)

	if !almostEqual(agg.DomainScores[catalog.DomainSupplyChain], 75.0) {
		t.Errorf("supply_chain mean = %f, want 75.0", agg.DomainScores[catalog.DomainSupplyChain])
	}
	if !almostEqual(agg.DomainScores[catalog.DomainDesignMaturity], 80.0) {
		t.Errorf("design_maturity mean = %f, want 80.0", agg.DomainScores[catalog.DomainDesignMaturity])
	}
	if _, ok := agg.DomainScores[catalog.DomainManufacturing]; ok {
		t.Error("domain with no indicators should be absent")
	}
	if !almostEqual(agg.CategoryScores[catalog.CategorySingleSourceSupplier], 100.0) {
		t.Errorf("single-member category mean = %f, want 100.0", agg.CategoryScores[catalog.CategorySingleSourceSupplier])
	}
}
