package readiness

// DecisionMatrix is the readiness configuration for one governance gate.
// Loaded once per process and treated as read-only afterwards; the loader
// validates it fatally before any evaluation runs.
type DecisionMatrix struct {
	DecisionID           string              `json:"decision_id" validate:"required"`
	Title                string              `json:"title" validate:"required"`
	RequiredControls     []string            `json:"required_controls"`
	OptionalControls     []string            `json:"optional_controls"`
	EvidenceExpectations map[string][]string `json:"evidence_expectations"`
	ReadinessRules       ReadinessRules      `json:"readiness_rules"`
}

// ReadinessRules are the matrix's gating rules. MaxAllowedHighResidualRisks
// is a pointer so "rule absent" and "zero allowed" stay distinguishable.
type ReadinessRules struct {
	NotReadyIfMissingRequired   bool `json:"not_ready_if_missing_any_required_control"`
	MaxAllowedHighResidualRisks *int `json:"max_allowed_high_residual_risks"`
	HighResidualThreshold       int  `json:"high_residual_threshold"`
}

// DefaultHighResidualThreshold applies when the matrix leaves the residual
// threshold unset.
const DefaultHighResidualThreshold = 4

// HighResidualThresholdOrDefault returns the configured residual threshold,
// falling back to the default.
func (m DecisionMatrix) HighResidualThresholdOrDefault() int {
	if m.ReadinessRules.HighResidualThreshold > 0 {
		return m.ReadinessRules.HighResidualThreshold
	}
	return DefaultHighResidualThreshold
}
