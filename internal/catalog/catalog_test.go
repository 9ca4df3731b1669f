package catalog

import "testing"

func TestDefaultLibrary(t *testing.T) {
	lib := DefaultLibrary()

	if lib.Len() != 12 {
		t.Fatalf("library size = %d, want 12", lib.Len())
	}

	ind, ok := lib.Get("I001")
	if !ok {
		t.Fatal("I001 missing")
	}
	if ind.Domain != DomainDesignMaturity || ind.BaseWeight != 1.10 {
		t.Errorf("I001 = %+v", ind)
	}

	if _, ok := lib.Get("I999"); ok {
		t.Error("unknown id should miss")
	}

	// Declaration order is the contract for tie-breaks and audit output.
	first := lib.Indicators()[0]
	if first.ID != "I001" {
		t.Errorf("first indicator = %s, want I001", first.ID)
	}
}

func TestDomainWeightsAlwaysComplete(t *testing.T) {
	for _, a := range []Activity{
		ActivityProductDesign, ActivityPrototypeDevelopment, ActivityManufacturingScaleUp,
		ActivitySupplierSelection, ActivityRegulatoryPreparation, ActivityDataCollection,
		ActivitySystemDesign, ActivityProcessOptimisation,
	} {
		weights := DomainWeights(a)
		if len(weights) != len(Domains()) {
			t.Errorf("%s: %d weights, want %d", a, len(weights), len(Domains()))
		}
		for d, w := range weights {
			if w < 1.0 {
				t.Errorf("%s/%s weight %f below 1.0", a, d, w)
			}
		}
	}
}

func TestDomainWeightsBoosts(t *testing.T) {
	w := DomainWeights(ActivitySupplierSelection)
	if w[DomainSupplyChain] != 1.35 {
		t.Errorf("supply_chain weight = %f, want 1.35", w[DomainSupplyChain])
	}
	if w[DomainDesignMaturity] != 1.0 {
		t.Errorf("unboosted domain = %f, want 1.0", w[DomainDesignMaturity])
	}
}

func TestNatureWeightModifiers(t *testing.T) {
	tests := []struct {
		nature RiskNature
		want   float64
	}{
		{NatureStructural, 1.25},
		{NatureTechnical, 1.00},
		{NatureProcess, 1.05},
		{NatureExternalDependency, 1.15},
		{NatureDecisionGovernance, 1.20},
	}
	for _, tt := range tests {
		if got := tt.nature.WeightModifier(); got != tt.want {
			t.Errorf("%s modifier = %f, want %f", tt.nature, got, tt.want)
		}
	}
}

func TestParseActivity(t *testing.T) {
	if _, ok := ParseActivity("product_design"); !ok {
		t.Error("product_design should parse")
	}
	if _, ok := ParseActivity("underwater_basket_weaving"); ok {
		t.Error("unknown activity should not parse")
	}
}

func TestParseStage(t *testing.T) {
	if _, ok := ParseStage("validation"); !ok {
		t.Error("validation should parse")
	}
	if _, ok := ParseStage("afterlife"); ok {
		t.Error("unknown stage should not parse")
	}
}
