package engine

import (
	"github.com/assuranceops/verdict/internal/catalog"
)

// Aggregated holds the per-domain and per-category rollups for one run.
type Aggregated struct {
	DomainScores   map[catalog.RiskDomain]float64   `json:"domain_scores"`
	CategoryScores map[catalog.RiskCategory]float64 `json:"category_scores"`
}

// Aggregate rolls indicator scores up by domain and category using the mean
// of the group members, so a domain is not penalized merely for carrying
// more indicators. Domains and categories with no indicators are absent
// from the output.
func Aggregate(details map[string]IndicatorDetail, scores map[string]float64) Aggregated {
	domainSums := make(map[catalog.RiskDomain]float64)
	domainCounts := make(map[catalog.RiskDomain]int)
	categorySums := make(map[catalog.RiskCategory]float64)
	categoryCounts := make(map[catalog.RiskCategory]int)

	for id, meta := range details {
		score := scores[id]
		domainSums[meta.Domain] += score
		domainCounts[meta.Domain]++
		categorySums[meta.Category] += score
		categoryCounts[meta.Category]++
	}

	out := Aggregated{
		DomainScores:   make(map[catalog.RiskDomain]float64, len(domainSums)),
		CategoryScores: make(map[catalog.RiskCategory]float64, len(categorySums)),
	}
	for d, sum := range domainSums {
		out.DomainScores[d] = sum / float64(domainCounts[d])
	}
	for c, sum := range categorySums {
		out.CategoryScores[c] = sum / float64(categoryCounts[c])
	}
	return out
}
