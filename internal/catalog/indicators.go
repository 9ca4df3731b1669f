package catalog

// AnswerType determines how a raw answer is mapped onto the 1–5 severity
// scale.
type AnswerType string

const (
	AnswerYesNo      AnswerType = "yes_no"
	AnswerLowMedHigh AnswerType = "low_med_high"
	AnswerScale1To5  AnswerType = "scale_1_5"
)

// Indicator is one risk signal in the catalogue. Indicators are defined at
// process start and never mutated.
type Indicator struct {
	ID         string       `json:"id"`
	Question   string       `json:"question"`
	AnswerType AnswerType   `json:"answer_type"`
	Domain     RiskDomain   `json:"domain"`
	Category   RiskCategory `json:"category"`
	Nature     RiskNature   `json:"nature"`
	BaseWeight float64      `json:"base_weight"`
}

// Library holds the indicator catalogue in declaration order. The order is
// load-bearing: scoring, explainability tie-breaks, and the audit trail all
// iterate it.
type Library struct {
	indicators []Indicator
	byID       map[string]Indicator
}

func NewLibrary(indicators []Indicator) *Library {
	byID := make(map[string]Indicator, len(indicators))
	for _, ind := range indicators {
		byID[ind.ID] = ind
	}
	return &Library{indicators: indicators, byID: byID}
}

// Indicators returns the catalogue in declaration order.
func (l *Library) Indicators() []Indicator { return l.indicators }

func (l *Library) Get(id string) (Indicator, bool) {
	ind, ok := l.byID[id]
	return ind, ok
}

func (l *Library) Len() int { return len(l.indicators) }

// DefaultLibrary returns the built-in indicator catalogue.
func DefaultLibrary() *Library {
	return NewLibrary([]Indicator{
		{
			ID:         "I001",
			Question:   "Are key design assumptions explicitly documented?",
			AnswerType: AnswerYesNo,
			Domain:     DomainDesignMaturity,
			Category:   CategoryUnvalidatedAssumptions,
			Nature:     NatureStructural,
			BaseWeight: 1.10,
		},
		{
			ID:         "I002",
			Question:   "Is there a traceable link from requirements to design decisions?",
			AnswerType: AnswerYesNo,
			Domain:     DomainRegulatoryCompliance,
			Category:   CategoryTraceabilityGaps,
			Nature:     NatureStructural,
			BaseWeight: 1.15,
		},
		{
			ID:         "I003",
			Question:   "Are acceptance criteria defined for key verification checks?",
			AnswerType: AnswerYesNo,
			Domain:     DomainRegulatoryCompliance,
			Category:   CategoryDocumentationGaps,
			Nature:     NatureProcess,
			BaseWeight: 1.05,
		},
		{
			ID:         "I004",
			Question:   "How sensitive is the system to environmental conditions?",
			AnswerType: AnswerLowMedHigh,
			Domain:     DomainMeasurementIntegrity,
			Category:   CategoryEnvironmentalSensitivity,
			Nature:     NatureTechnical,
			BaseWeight: 1.00,
		},
		{
			ID:         "I005",
			Question:   "How likely is long-term drift without an early warning signal?",
			AnswerType: AnswerLowMedHigh,
			Domain:     DomainMeasurementIntegrity,
			Category:   CategoryDriftStability,
			Nature:     NatureTechnical,
			BaseWeight: 1.05,
		},
		{
			ID:         "I006",
			Question:   "How high is batch-to-batch variability exposure in consumables?",
			AnswerType: AnswerLowMedHigh,
			Domain:     DomainManufacturing,
			Category:   CategoryBatchVariability,
			Nature:     NatureProcess,
			BaseWeight: 1.10,
		},
		{
			ID:         "I007",
			Question:   "Is there a defined QC threshold set for critical-to-quality parameters?",
			AnswerType: AnswerYesNo,
			Domain:     DomainManufacturing,
			Category:   CategoryQCGaps,
			Nature:     NatureProcess,
			BaseWeight: 1.10,
		},
		{
			ID:         "I008",
			Question:   "Is there single-source dependency for critical components?",
			AnswerType: AnswerYesNo,
			Domain:     DomainSupplyChain,
			Category:   CategorySingleSourceSupplier,
			Nature:     NatureExternalDependency,
			BaseWeight: 1.20,
		},
		{
			ID:         "I009",
			Question:   "Is supplier change control defined and enforced contractually?",
			AnswerType: AnswerYesNo,
			Domain:     DomainSupplyChain,
			Category:   CategorySupplierChangeRisk,
			Nature:     NatureExternalDependency,
			BaseWeight: 1.10,
		},
		{
			ID:         "I010",
			Question:   "Is the data capture plan defined for this stage of the project?",
			AnswerType: AnswerYesNo,
			Domain:     DomainDataEvidence,
			Category:   CategoryDataDefinitionGaps,
			Nature:     NatureDecisionGovernance,
			BaseWeight: 1.10,
		},
		{
			ID:         "I011",
			Question:   "Is there an auditable record of key risk decisions and changes?",
			AnswerType: AnswerYesNo,
			Domain:     DomainDecisionGovernance,
			Category:   CategoryAuditTrailGaps,
			Nature:     NatureDecisionGovernance,
			BaseWeight: 1.15,
		},
		{
			ID:         "I012",
			Question:   "Are escalation thresholds defined and applied consistently?",
			AnswerType: AnswerYesNo,
			Domain:     DomainDecisionGovernance,
			Category:   CategoryEscalationGaps,
			Nature:     NatureDecisionGovernance,
			BaseWeight: 1.20,
		},
	})
}
