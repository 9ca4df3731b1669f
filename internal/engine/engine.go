package engine

import (
	"log/slog"

	"github.com/assuranceops/verdict/internal/catalog"
)

// Thresholds carry the classification boundaries and explainability depth
// for one deployment. Explicit configuration, not hidden constants, so
// multiple activities can run side by side in one process.
type Thresholds struct {
	Low             float64
	High            float64
	TopContributors int
}

// DefaultThresholds returns the standard classification boundaries.
func DefaultThresholds() Thresholds {
	return Thresholds{Low: 20.0, High: 45.0, TopContributors: 5}
}

// Engine runs the full indicator pipeline: scoring, aggregation,
// classification, decision, explainability, audit trail. Stateless between
// calls; every run produces a fresh graph of derived records.
type Engine struct {
	lib        *catalog.Library
	thresholds Thresholds
	logger     *slog.Logger
}

func New(lib *catalog.Library, thresholds Thresholds, logger *slog.Logger) *Engine {
	return &Engine{lib: lib, thresholds: thresholds, logger: logger}
}

// Report is the JSON-stable output of one assessment run. Key names and the
// audit-trail ordering are the external contract.
type Report struct {
	Context           catalog.Context                             `json:"context"`
	OverallDecision   Decision                                    `json:"overall_decision"`
	PerDomainDecision map[catalog.RiskDomain]Decision             `json:"per_domain_decision"`
	DomainScores      map[catalog.RiskDomain]DomainScore          `json:"domain_scores"`
	TopContributors   map[catalog.RiskDomain][]Contribution       `json:"top_contributors_by_domain"`
	CategoryScores    map[catalog.RiskCategory]float64            `json:"category_scores"`
	Classifications   map[catalog.RiskDomain]DomainClassification `json:"-"`
	AuditTrail        []AuditEntry                                `json:"audit_trail"`
}

// Run executes the pipeline for one submission. Deterministic: identical
// inputs yield an identical report.
func (e *Engine) Run(ctx catalog.Context, in Inputs) Report {
	weights := catalog.DomainWeights(ctx.Activity)

	scored := ScoreIndicators(e.lib, in, weights)
	aggregated := Aggregate(scored.Details, scored.LocalScores)
	classifications := Classify(aggregated.DomainScores, e.thresholds.Low, e.thresholds.High)
	decision := Decide(classifications)
	top := Explain(e.lib, classifications, scored.LocalScores, e.thresholds.TopContributors)
	trail := BuildTrail(classifications, decision, scored.Details, scored.LocalScores)

	domainScores := make(map[catalog.RiskDomain]DomainScore, len(classifications))
	for domain, c := range classifications {
		domainScores[domain] = DomainScore{Score: c.Score, Level: c.Level}
	}

	e.logger.Info("assessment scored",
		"activity", ctx.Activity,
		"stage", ctx.Stage,
		"overall_decision", decision.Overall,
		"domains", len(classifications),
	)

	return Report{
		Context:           ctx,
		OverallDecision:   decision.Overall,
		PerDomainDecision: decision.PerDomain,
		DomainScores:      domainScores,
		TopContributors:   top,
		CategoryScores:    aggregated.CategoryScores,
		Classifications:   classifications,
		AuditTrail:        trail,
	}
}
