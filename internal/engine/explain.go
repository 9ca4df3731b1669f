package engine

import (
	"sort"

	"github.com/assuranceops/verdict/internal/catalog"
)

// Contribution is one indicator's share of a domain's risk, for the
// top-contributors view.
type Contribution struct {
	IndicatorID string  `json:"indicator_id"`
	Score       float64 `json:"score"`
}

// Explain ranks each classified domain's indicators by score, descending,
// and keeps the first topN. Ties keep library order. A domain with no
// indicators yields an empty list.
func Explain(lib *catalog.Library, classifications map[catalog.RiskDomain]DomainClassification, scores map[string]float64, topN int) map[catalog.RiskDomain][]Contribution {
	if topN < 0 {
		topN = 0
	}

	byDomain := make(map[catalog.RiskDomain][]Contribution)
	for _, ind := range lib.Indicators() {
		byDomain[ind.Domain] = append(byDomain[ind.Domain], Contribution{
			IndicatorID: ind.ID,
			Score:       scores[ind.ID],
		})
	}

	out := make(map[catalog.RiskDomain][]Contribution, len(classifications))
	for domain := range classifications {
		items := byDomain[domain]
		sorted := make([]Contribution, len(items))
		copy(sorted, items)
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Score > sorted[j].Score
		})
		if len(sorted) > topN {
			sorted = sorted[:topN]
		}
		out[domain] = sorted
	}
	return out
}
