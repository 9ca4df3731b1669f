package catalog

// RiskDomain is the aggregation key for indicator scores. The set is closed;
// adding a domain means touching the classifier and decision boundaries too.
type RiskDomain string

const (
	DomainDesignMaturity       RiskDomain = "design_maturity"
	DomainRegulatoryCompliance RiskDomain = "regulatory_compliance"
	DomainManufacturing        RiskDomain = "manufacturing"
	DomainMeasurementIntegrity RiskDomain = "measurement_integrity"
	DomainSupplyChain          RiskDomain = "supply_chain"
	DomainDataEvidence         RiskDomain = "data_evidence"
	DomainDecisionGovernance   RiskDomain = "decision_governance"
)

// Domains lists every risk domain in canonical order.
func Domains() []RiskDomain {
	return []RiskDomain{
		DomainDesignMaturity,
		DomainRegulatoryCompliance,
		DomainManufacturing,
		DomainMeasurementIntegrity,
		DomainSupplyChain,
		DomainDataEvidence,
		DomainDecisionGovernance,
	}
}

// DomainWeights returns the domain weight profile for an activity. Every
// domain is present; activities boost the domains they stress and leave the
// rest at 1.0.
func DomainWeights(a Activity) map[RiskDomain]float64 {
	base := map[RiskDomain]float64{
		DomainDesignMaturity:       1.0,
		DomainRegulatoryCompliance: 1.0,
		DomainManufacturing:        1.0,
		DomainMeasurementIntegrity: 1.0,
		DomainSupplyChain:          1.0,
		DomainDataEvidence:         1.0,
		DomainDecisionGovernance:   1.0,
	}

	boosts := map[Activity]map[RiskDomain]float64{
		ActivityProductDesign: {
			DomainDesignMaturity:       1.25,
			DomainRegulatoryCompliance: 1.15,
			DomainDataEvidence:         1.10,
			DomainDecisionGovernance:   1.10,
		},
		ActivityPrototypeDevelopment: {
			DomainMeasurementIntegrity: 1.20,
			DomainDesignMaturity:       1.10,
			DomainDataEvidence:         1.10,
		},
		ActivityManufacturingScaleUp: {
			DomainManufacturing:        1.30,
			DomainSupplyChain:          1.20,
			DomainRegulatoryCompliance: 1.10,
		},
		ActivitySupplierSelection: {
			DomainSupplyChain:   1.35,
			DomainManufacturing: 1.10,
		},
		ActivityRegulatoryPreparation: {
			DomainRegulatoryCompliance: 1.40,
			DomainDataEvidence:         1.20,
			DomainDecisionGovernance:   1.10,
		},
		ActivityDataCollection: {
			DomainDataEvidence:       1.40,
			DomainDecisionGovernance: 1.10,
		},
		ActivitySystemDesign: {
			DomainDesignMaturity:     1.15,
			DomainDecisionGovernance: 1.20,
			DomainDataEvidence:       1.10,
		},
		ActivityProcessOptimisation: {
			DomainManufacturing:      1.15,
			DomainDecisionGovernance: 1.15,
		},
	}

	for d, w := range boosts[a] {
		base[d] = w
	}
	return base
}
