package events

import "time"

type AssessmentCompletedEvent struct {
	AssessmentID    string    `json:"assessment_id"`
	Activity        string    `json:"activity"`
	Stage           string    `json:"stage"`
	OverallDecision string    `json:"overall_decision"`
	Domains         int       `json:"domains"`
	Timestamp       time.Time `json:"timestamp"`
}

type ReadinessEvaluatedEvent struct {
	DecisionID              string    `json:"decision_id"`
	Readiness               string    `json:"readiness"`
	MissingRequiredControls []string  `json:"missing_required_controls,omitempty"`
	HighResidualRiskCount   int       `json:"high_residual_risk_count"`
	Timestamp               time.Time `json:"timestamp"`
}

type GapsEvaluatedEvent struct {
	Decision  string    `json:"decision"`
	Readiness string    `json:"readiness"`
	GapCount  int       `json:"gap_count"`
	Timestamp time.Time `json:"timestamp"`
}
