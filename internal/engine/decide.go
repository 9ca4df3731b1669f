package engine

import (
	"github.com/assuranceops/verdict/internal/catalog"
)

// Decision is the go/no-go verdict for a domain or the whole run.
type Decision string

const (
	DecisionProceed  Decision = "proceed"
	DecisionRevise   Decision = "revise"
	DecisionEscalate Decision = "escalate"
)

func decisionRank(d Decision) int {
	switch d {
	case DecisionRevise:
		return 1
	case DecisionEscalate:
		return 2
	default:
		return 0
	}
}

// DecisionResult carries the overall decision and the per-domain map it was
// derived from.
type DecisionResult struct {
	Overall   Decision                        `json:"overall"`
	PerDomain map[catalog.RiskDomain]Decision `json:"per_domain"`
}

// Decide maps each domain's level to a decision and takes the worst as the
// overall verdict. The rule is a pure max over proceed < revise < escalate,
// so evaluation order cannot change the outcome.
func Decide(classifications map[catalog.RiskDomain]DomainClassification) DecisionResult {
	perDomain := make(map[catalog.RiskDomain]Decision, len(classifications))
	overall := DecisionProceed

	for domain, c := range classifications {
		var d Decision
		switch c.Level {
		case LevelAcceptable:
			d = DecisionProceed
		case LevelActionRequired:
			d = DecisionRevise
		default:
			d = DecisionEscalate
		}
		perDomain[domain] = d
		if decisionRank(d) > decisionRank(overall) {
			overall = d
		}
	}

	return DecisionResult{Overall: overall, PerDomain: perDomain}
}
