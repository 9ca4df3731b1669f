package guidance

import (
	"fmt"
	"sort"

	"github.com/assuranceops/verdict/internal/catalog"
	"github.com/assuranceops/verdict/internal/gapplan"
)

// Gate is the recommended gate handling for a risk or for the whole set.
type Gate string

const (
	GateProceed               Gate = "proceed"
	GateProceedWithConditions Gate = "proceed_with_conditions"
	GateHoldPendingControls   Gate = "hold_pending_controls"
	GateReviewBeforeNextStage Gate = "review_before_next_stage"
)

// Risk is a user risk annotated with its pattern. A zero Pattern means
// unclassified; callers may fill it via SuggestPattern.
type Risk struct {
	ID            string  `json:"risk_id"`
	Description   string  `json:"description"`
	Owner         string  `json:"owner"`
	Likelihood    int     `json:"likelihood"`
	Impact        int     `json:"impact"`
	Detectability int     `json:"detectability"`
	Pattern       Pattern `json:"pattern,omitempty"`
}

// RiskGuidance is the per-risk recommendation.
type RiskGuidance struct {
	RiskID             string           `json:"risk_id"`
	Pattern            Pattern          `json:"pattern"`
	Priority           gapplan.Priority `json:"priority"`
	GateGuidance       Gate             `json:"gate_guidance"`
	Why                string           `json:"why"`
	RecommendedActions []string         `json:"recommended_actions"`
	ExpectedEvidence   []string         `json:"expected_evidence"`
}

// Summary is the ranked guidance for one set of risks.
type Summary struct {
	OverallGateGuidance Gate           `json:"overall_gate_guidance"`
	Rationale           string         `json:"rationale"`
	Items               []RiskGuidance `json:"items"`
}

// priority bands here differ from the gap planner's: impact 5 with
// likelihood ≥4 is critical regardless of detectability.
func priorityFor(l, i, d int) gapplan.Priority {
	severity := l + i + d
	switch {
	case i >= 5 && l >= 4:
		return gapplan.PriorityCritical
	case severity >= 12:
		return gapplan.PriorityHigh
	case severity >= 9:
		return gapplan.PriorityMedium
	default:
		return gapplan.PriorityLow
	}
}

func gateFor(stage catalog.ProjectStage, p gapplan.Priority) Gate {
	switch p {
	case gapplan.PriorityCritical:
		return GateHoldPendingControls
	case gapplan.PriorityHigh:
		if stage == catalog.StageConcept || stage == catalog.StageDesign {
			return GateProceedWithConditions
		}
		return GateReviewBeforeNextStage
	case gapplan.PriorityMedium:
		return GateReviewBeforeNextStage
	default:
		return GateProceed
	}
}

// Generate produces prioritized gate guidance for the mapped risks in ctx.
// Risks without a pattern are skipped; classify them first.
func Generate(ctx catalog.Context, risks []Risk) Summary {
	items := []RiskGuidance{}

	for _, r := range risks {
		if r.Pattern == "" {
			continue
		}

		p := priorityFor(r.Likelihood, r.Impact, r.Detectability)
		gate := gateFor(ctx.Stage, p)

		items = append(items, RiskGuidance{
			RiskID:       r.ID,
			Pattern:      r.Pattern,
			Priority:     p,
			GateGuidance: gate,
			Why: fmt.Sprintf("Pattern is %s with L I D %d %d %d at stage %s",
				r.Pattern, r.Likelihood, r.Impact, r.Detectability, ctx.Stage),
			RecommendedActions: actionsFor(r.Pattern),
			ExpectedEvidence:   evidenceFor(r.Pattern),
		})
	}

	order := map[gapplan.Priority]int{
		gapplan.PriorityCritical: 0,
		gapplan.PriorityHigh:     1,
		gapplan.PriorityMedium:   2,
		gapplan.PriorityLow:      3,
	}
	sort.SliceStable(items, func(i, j int) bool {
		return order[items[i].Priority] < order[items[j].Priority]
	})

	overall := GateProceed
	for _, it := range items {
		if it.GateGuidance == GateHoldPendingControls {
			overall = GateHoldPendingControls
			break
		}
		if it.GateGuidance == GateProceedWithConditions {
			overall = GateProceedWithConditions
		}
		if it.GateGuidance == GateReviewBeforeNextStage && overall == GateProceed {
			overall = GateReviewBeforeNextStage
		}
	}

	return Summary{
		OverallGateGuidance: overall,
		Rationale:           "Overall guidance is derived from the highest priority mapped risks in the selected context",
		Items:               items,
	}
}

func actionsFor(p Pattern) []string {
	switch p {
	case PatternSupplierReliability:
		return []string{
			"Define supplier change notification rule",
			"Define incoming inspection criteria",
			"Define second source or contingency plan",
		}
	case PatternProcessVariability:
		return []string{
			"Define critical process parameters",
			"Define batch variability monitoring",
			"Define acceptance criteria for release decisions",
		}
	case PatternDesignMaturity:
		return []string{
			"Create assumptions and rationale log",
			"Define design review checkpoint and outputs",
			"Define change control for design decisions",
		}
	case PatternMeasurementIntegrity:
		return []string{
			"Define calibration and drift monitoring approach",
			"Define environmental sensitivity checks",
			"Define criteria for re verification triggers",
		}
	case PatternDataIntegrity:
		return []string{
			"Define data capture plan and ownership",
			"Define audit trail for changes and decisions",
			"Define data quality checks",
		}
	case PatternEvidenceSufficiency:
		return []string{
			"Define what evidence is required for this stage",
			"Define test plan or evaluation plan",
			"Define acceptance criteria for evidence completeness",
		}
	case PatternGovernanceAccountability:
		return []string{
			"Define decision thresholds and escalation rules",
			"Define accountable owner for each decision gate",
			"Define decision log format and review cadence",
		}
	case PatternRegulatoryReadiness:
		return []string{
			"Define required documentation set for this stage",
			"Define traceability between requirements and evidence",
			"Define review checklist for readiness gaps",
		}
	case PatternOperationalContinuity:
		return []string{
			"Define failure scenarios and recovery steps",
			"Define monitoring and incident logging",
			"Define continuity expectations and responsibilities",
		}
	default:
		return []string{
			"Clarify risk statement and expected impact",
			"Define a control objective",
			"Define evidence to confirm controls are working",
		}
	}
}

func evidenceFor(p Pattern) []string {
	switch p {
	case PatternSupplierReliability:
		return []string{"Supplier change rule document", "Incoming inspection checklist", "Supplier contingency note"}
	case PatternProcessVariability:
		return []string{"Critical process parameters list", "Variability monitoring plan", "Release acceptance criteria"}
	case PatternDesignMaturity:
		return []string{"Assumptions and rationale log", "Design review record", "Change control record"}
	case PatternMeasurementIntegrity:
		return []string{"Calibration plan", "Sensitivity check record", "Re verification trigger criteria"}
	case PatternDataIntegrity:
		return []string{"Data capture plan", "Audit trail entry template", "Data quality check list"}
	case PatternEvidenceSufficiency:
		return []string{"Evidence checklist for this stage", "Test or evaluation plan", "Evidence acceptance criteria"}
	case PatternGovernanceAccountability:
		return []string{"Escalation thresholds document", "Decision ownership matrix", "Decision log sample entry"}
	case PatternRegulatoryReadiness:
		return []string{"Documentation checklist", "Traceability mapping note", "Readiness gap review record"}
	case PatternOperationalContinuity:
		return []string{"Failure scenarios list", "Incident log template", "Recovery steps note"}
	default:
		return []string{"Risk clarification note", "Control objective statement", "Evidence definition note"}
	}
}
