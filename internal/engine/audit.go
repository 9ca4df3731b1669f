package engine

import (
	"github.com/assuranceops/verdict/internal/catalog"
)

// AuditEntry is one fact in the ordered audit trail.
type AuditEntry struct {
	Key   string `json:"key"`
	Value any    `json:"value"`
}

// DomainScore is the score+level pair exported per domain.
type DomainScore struct {
	Score float64   `json:"score"`
	Level RiskLevel `json:"level"`
}

// BuildTrail serializes a run into its fixed audit entries:
// overall_decision, per_domain_decision, domain_scores, indicator_details,
// local_scores. The order is part of the export contract; audit artifacts
// are diffed and archived over time.
func BuildTrail(classifications map[catalog.RiskDomain]DomainClassification, decision DecisionResult, details map[string]IndicatorDetail, scores map[string]float64) []AuditEntry {
	domainScores := make(map[catalog.RiskDomain]DomainScore, len(classifications))
	for domain, c := range classifications {
		domainScores[domain] = DomainScore{Score: c.Score, Level: c.Level}
	}

	return []AuditEntry{
		{Key: "overall_decision", Value: decision.Overall},
		{Key: "per_domain_decision", Value: decision.PerDomain},
		{Key: "domain_scores", Value: domainScores},
		{Key: "indicator_details", Value: details},
		{Key: "local_scores", Value: scores},
	}
}
