package readiness

import "sort"

// State is the tri-state readiness verdict. Within one evaluation it only
// ever downgrades: ready → conditionally_ready → not_ready.
type State string

const (
	StateReady              State = "ready"
	StateConditionallyReady State = "conditionally_ready"
	StateNotReady           State = "not_ready"
)

// Result is the outcome of one readiness evaluation.
type Result struct {
	Readiness                   State    `json:"readiness"`
	CoveredControls             []string `json:"covered_controls"`
	MissingRequiredControls     []string `json:"missing_required_controls"`
	OptionalControls            []string `json:"optional_controls"`
	HighResidualRiskCount       int      `json:"high_residual_risk_count"`
	HighResidualThreshold       int      `json:"high_residual_threshold"`
	MaxAllowedHighResidualRisks *int     `json:"max_allowed_high_residual_risks,omitempty"`
	Reasons                     []string `json:"reasons"`
}

const (
	reasonMissingControls   = "Missing required controls"
	reasonHighResidualRisks = "High residual risks remain"
)

// Evaluate checks required-control coverage and residual-risk exposure
// against the matrix rules. not_ready is sticky: both rules are always
// evaluated so every applicable reason is reported, and the conditional
// downgrade never fires once not_ready is set.
func Evaluate(m DecisionMatrix, risks []Risk) Result {
	covered := coveredControls(risks)
	coveredSet := make(map[string]struct{}, len(covered))
	for _, c := range covered {
		coveredSet[c] = struct{}{}
	}

	// Matrix order is preserved for missing controls.
	missing := []string{}
	for _, c := range m.RequiredControls {
		if _, ok := coveredSet[c]; !ok {
			missing = append(missing, c)
		}
	}

	threshold := m.HighResidualThresholdOrDefault()
	highCount := 0
	for _, r := range risks {
		if r.ResidualScore >= threshold {
			highCount++
		}
	}

	state := StateReady
	reasons := []string{}

	if m.ReadinessRules.NotReadyIfMissingRequired && len(missing) > 0 {
		state = StateNotReady
		reasons = append(reasons, reasonMissingControls)
	}
	if m.ReadinessRules.MaxAllowedHighResidualRisks != nil && highCount > *m.ReadinessRules.MaxAllowedHighResidualRisks {
		state = StateNotReady
		reasons = append(reasons, reasonHighResidualRisks)
	}
	if state == StateReady && (len(missing) > 0 || highCount > 0) {
		state = StateConditionallyReady
	}

	optional := m.OptionalControls
	if optional == nil {
		optional = []string{}
	}

	return Result{
		Readiness:                   state,
		CoveredControls:             covered,
		MissingRequiredControls:     missing,
		OptionalControls:            optional,
		HighResidualRiskCount:       highCount,
		HighResidualThreshold:       threshold,
		MaxAllowedHighResidualRisks: m.ReadinessRules.MaxAllowedHighResidualRisks,
		Reasons:                     reasons,
	}
}

// coveredControls is the sorted union of every risk's selected controls.
func coveredControls(risks []Risk) []string {
	set := make(map[string]struct{})
	for _, r := range risks {
		for _, c := range r.SelectedControls {
			set[c] = struct{}{}
		}
	}
	out := make([]string, 0, len(set))
	for c := range set {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}
