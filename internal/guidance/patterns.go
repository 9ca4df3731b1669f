package guidance

import "strings"

// Pattern is the qualitative family a user risk belongs to. It drives which
// actions and evidence the guidance recommends.
type Pattern string

const (
	PatternSupplierReliability      Pattern = "supplier_reliability"
	PatternProcessVariability       Pattern = "process_variability"
	PatternDesignMaturity           Pattern = "design_maturity"
	PatternMeasurementIntegrity     Pattern = "measurement_integrity"
	PatternDataIntegrity            Pattern = "data_integrity"
	PatternEvidenceSufficiency      Pattern = "evidence_sufficiency"
	PatternGovernanceAccountability Pattern = "governance_accountability"
	PatternRegulatoryReadiness      Pattern = "regulatory_readiness"
	PatternOperationalContinuity    Pattern = "operational_continuity"
	PatternOther                    Pattern = "other"
)

// patternKeywords is checked in order; the first family with a keyword hit
// wins.
var patternKeywords = []struct {
	pattern  Pattern
	keywords []string
}{
	{PatternSupplierReliability, []string{"supplier", "vendor", "procurement", "lead time", "single source", "subcontract"}},
	{PatternProcessVariability, []string{"batch", "variability", "process", "yield", "defect", "scrap", "manufactur"}},
	{PatternDesignMaturity, []string{"assumption", "architecture", "requirement", "specification", "design change"}},
	{PatternMeasurementIntegrity, []string{"calibration", "drift", "stability", "noise", "environment", "temperature", "humidity"}},
	{PatternDataIntegrity, []string{"data", "integrity", "logging", "audit trail", "trace", "traceability"}},
	{PatternEvidenceSufficiency, []string{"evidence", "validation", "verification", "test plan", "dataset", "sample size"}},
	{PatternGovernanceAccountability, []string{"governance", "decision", "threshold", "escalation", "approval", "owner"}},
	{PatternRegulatoryReadiness, []string{"regulatory", "compliance", "submission", "standard", "iso", "documentation"}},
	{PatternOperationalContinuity, []string{"continuity", "availability", "downtime", "failure", "disruption", "support"}},
}

// SuggestPattern classifies a free-text risk description by keyword.
func SuggestPattern(text string) Pattern {
	t := strings.ToLower(strings.TrimSpace(text))
	for _, pk := range patternKeywords {
		for _, kw := range pk.keywords {
			if strings.Contains(t, kw) {
				return pk.pattern
			}
		}
	}
	return PatternOther
}
