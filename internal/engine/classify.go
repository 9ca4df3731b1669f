package engine

import (
	"github.com/assuranceops/verdict/internal/catalog"
)

// RiskLevel is the classification band for an aggregated domain score.
type RiskLevel string

const (
	LevelAcceptable         RiskLevel = "acceptable"
	LevelActionRequired     RiskLevel = "action_required"
	LevelEscalationRequired RiskLevel = "escalation_required"
)

// DomainClassification pairs a domain's aggregated score with its band.
type DomainClassification struct {
	Domain catalog.RiskDomain `json:"domain"`
	Score  float64            `json:"score"`
	Level  RiskLevel          `json:"level"`
}

// Classify thresholds each domain score into a risk level. Boundaries are
// half-open: score == low is action_required, score == high is
// escalation_required.
func Classify(domainScores map[catalog.RiskDomain]float64, low, high float64) map[catalog.RiskDomain]DomainClassification {
	out := make(map[catalog.RiskDomain]DomainClassification, len(domainScores))
	for domain, score := range domainScores {
		level := LevelEscalationRequired
		switch {
		case score < low:
			level = LevelAcceptable
		case score < high:
			level = LevelActionRequired
		}
		out[domain] = DomainClassification{Domain: domain, Score: score, Level: level}
	}
	return out
}
