package gapplan

// ControlDomain groups control expectations within a decision scenario.
type ControlDomain string

const (
	DomainSupplierControl              ControlDomain = "supplier_control"
	DomainProcessControl               ControlDomain = "process_control"
	DomainDesignControl                ControlDomain = "design_control"
	DomainDataMeasurementControl       ControlDomain = "data_measurement_control"
	DomainEvidenceValidationControl    ControlDomain = "evidence_validation_control"
	DomainGovernanceDecisionControl    ControlDomain = "governance_decision_control"
	DomainRegulatoryComplianceControl  ControlDomain = "regulatory_compliance_control"
	DomainOperationalContinuityControl ControlDomain = "operational_continuity_control"
)

// ControlExpectation names one control the scenario expects, the evidence
// that proves it, and whether it is part of the minimum bar.
type ControlExpectation struct {
	ControlID        string   `json:"control_id"`
	Description      string   `json:"description"`
	ExpectedEvidence []string `json:"expected_evidence"`
	MinimumRequired  bool     `json:"minimum_required"`
}

// DomainExpectations pairs a control domain with its expectations. Kept as
// a slice so matrix declaration order is the iteration order.
type DomainExpectations struct {
	Domain       ControlDomain        `json:"domain"`
	Expectations []ControlExpectation `json:"expectations"`
}

// Matrix is the control expectation set for one decision scenario. Static
// per scenario, read-only.
type Matrix struct {
	Decision string               `json:"decision"`
	Domains  []DomainExpectations `json:"domains"`
}

// DecisionSupplierOnboarding is the built-in scenario.
const DecisionSupplierOnboarding = "approve_supplier_onboarding"

// SupplierOnboardingMatrix returns the control expectations for approving a
// supplier onboarding decision.
func SupplierOnboardingMatrix() Matrix {
	return Matrix{
		Decision: DecisionSupplierOnboarding,
		Domains: []DomainExpectations{
			{
				Domain: DomainSupplierControl,
				Expectations: []ControlExpectation{
					{
						ControlID:        "SC01",
						Description:      "Supplier qualification criteria defined and applied",
						ExpectedEvidence: []string{"Supplier qualification checklist", "Supplier assessment record"},
						MinimumRequired:  true,
					},
					{
						ControlID:        "SC02",
						Description:      "Supplier change notification mechanism defined",
						ExpectedEvidence: []string{"Change notification rule or clause", "Supplier agreement excerpt"},
						MinimumRequired:  true,
					},
					{
						ControlID:        "SC03",
						Description:      "Single source dependency identified and recorded",
						ExpectedEvidence: []string{"Dependency note", "Contingency outline"},
						MinimumRequired:  false,
					},
				},
			},
			{
				Domain: DomainProcessControl,
				Expectations: []ControlExpectation{
					{
						ControlID:        "PC01",
						Description:      "Incoming inspection or acceptance criteria defined",
						ExpectedEvidence: []string{"Incoming inspection checklist", "Acceptance criteria"},
						MinimumRequired:  true,
					},
					{
						ControlID:        "PC02",
						Description:      "Rejection and escalation criteria defined",
						ExpectedEvidence: []string{"Escalation rule", "Rejection criteria note"},
						MinimumRequired:  true,
					},
					{
						ControlID:        "PC03",
						Description:      "Process impact of supplier variability assessed",
						ExpectedEvidence: []string{"Impact assessment note", "Monitoring plan"},
						MinimumRequired:  false,
					},
				},
			},
			{
				Domain: DomainDesignControl,
				Expectations: []ControlExpectation{
					{
						ControlID:        "DC01",
						Description:      "Supplier related design assumptions documented",
						ExpectedEvidence: []string{"Assumptions log entry", "Design rationale note"},
						MinimumRequired:  true,
					},
					{
						ControlID:        "DC02",
						Description:      "Supplier specification dependency identified and referenced",
						ExpectedEvidence: []string{"Supplier specification reference", "Dependency mapping note"},
						MinimumRequired:  false,
					},
				},
			},
			{
				Domain: DomainDataMeasurementControl,
				Expectations: []ControlExpectation{
					{
						ControlID:        "DM01",
						Description:      "Supplier data sources identified and owned",
						ExpectedEvidence: []string{"Data source list", "Ownership assignment"},
						MinimumRequired:  true,
					},
					{
						ControlID:        "DM02",
						Description:      "Data or specification change tracking defined",
						ExpectedEvidence: []string{"Version tracking note", "Change log template"},
						MinimumRequired:  false,
					},
				},
			},
			{
				Domain: DomainEvidenceValidationControl,
				Expectations: []ControlExpectation{
					{
						ControlID:        "EV01",
						Description:      "Evidence checklist defined for supplier onboarding",
						ExpectedEvidence: []string{"Evidence checklist", "Evidence review record"},
						MinimumRequired:  true,
					},
					{
						ControlID:        "EV02",
						Description:      "Evidence acceptance criteria defined",
						ExpectedEvidence: []string{"Acceptance criteria note"},
						MinimumRequired:  true,
					},
				},
			},
			{
				Domain: DomainGovernanceDecisionControl,
				Expectations: []ControlExpectation{
					{
						ControlID:        "GD01",
						Description:      "Decision owner and approval criteria defined",
						ExpectedEvidence: []string{"Decision owner record", "Approval criteria document"},
						MinimumRequired:  true,
					},
					{
						ControlID:        "GD02",
						Description:      "Decision log format and traceability defined",
						ExpectedEvidence: []string{"Decision log template", "Sample decision log entry"},
						MinimumRequired:  false,
					},
				},
			},
			{
				Domain: DomainRegulatoryComplianceControl,
				Expectations: []ControlExpectation{
					{
						ControlID:        "RC01",
						Description:      "Regulatory relevance assessed and recorded",
						ExpectedEvidence: []string{"Regulatory relevance note", "Documentation requirement list"},
						MinimumRequired:  false,
					},
				},
			},
			{
				Domain: DomainOperationalContinuityControl,
				Expectations: []ControlExpectation{
					{
						ControlID:        "OC01",
						Description:      "Supplier failure scenarios and contingency defined",
						ExpectedEvidence: []string{"Failure scenario list", "Contingency note"},
						MinimumRequired:  false,
					},
				},
			},
		},
	}
}

// EmptyControlChecks returns a check map covering every expectation in the
// matrix, all missing with no evidence.
func EmptyControlChecks(m Matrix) map[string]ControlCheck {
	out := make(map[string]ControlCheck)
	for _, de := range m.Domains {
		for _, exp := range de.Expectations {
			out[exp.ControlID] = ControlCheck{ControlID: exp.ControlID, Status: StatusMissing}
		}
	}
	return out
}
