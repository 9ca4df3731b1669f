package gapplan

import (
	"sort"

	"github.com/assuranceops/verdict/internal/readiness"
)

// ControlStatus is the recorded state of one control check.
type ControlStatus string

const (
	StatusMissing ControlStatus = "missing"
	StatusPartial ControlStatus = "partial"
	StatusPresent ControlStatus = "present"
)

// ControlCheck is the user-entered state for one control id. One check per
// id; re-entering overwrites.
type ControlCheck struct {
	ControlID        string        `json:"control_id"`
	Status           ControlStatus `json:"status"`
	EvidenceAttached bool          `json:"evidence_attached"`
}

// UserRisk is a user-entered risk mapped to a control domain. Severity is
// the plain sum of the three 1–5 inputs.
type UserRisk struct {
	ID            string        `json:"risk_id"`
	Description   string        `json:"description"`
	Owner         string        `json:"owner"`
	Likelihood    int           `json:"likelihood"`
	Impact        int           `json:"impact"`
	Detectability int           `json:"detectability"`
	MappedDomain  ControlDomain `json:"mapped_domain,omitempty"`
}

func (r UserRisk) Severity() int {
	return r.Likelihood + r.Impact + r.Detectability
}

// Priority is the remediation band derived from domain risk severity.
type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
)

func priorityRank(p Priority) int {
	switch p {
	case PriorityCritical:
		return 0
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 3
	}
	return 9
}

// PriorityFromSeverity maps a domain's max risk severity onto its band.
func PriorityFromSeverity(severity int) Priority {
	switch {
	case severity >= 13:
		return PriorityCritical
	case severity >= 10:
		return PriorityHigh
	case severity >= 7:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// Gap is one unmet or under-evidenced control expectation.
type Gap struct {
	Domain           ControlDomain `json:"domain"`
	ControlID        string        `json:"control_id"`
	Description      string        `json:"description"`
	MinimumRequired  bool          `json:"minimum_required"`
	Status           ControlStatus `json:"status"`
	ExpectedEvidence []string      `json:"expected_evidence"`
	EvidenceAttached bool          `json:"evidence_attached"`
	Priority         Priority      `json:"priority"`
	LinkedRisks      []string      `json:"linked_risks"`
}

// DomainSeverity pairs a control domain with the worst risk severity mapped
// to it.
type DomainSeverity struct {
	Domain   ControlDomain `json:"domain"`
	Severity int           `json:"severity"`
}

// Summary is the control-gap view of decision readiness.
type Summary struct {
	Decision           string           `json:"decision"`
	Readiness          readiness.State  `json:"readiness"`
	Rationale          string           `json:"rationale"`
	Gaps               []Gap            `json:"gaps"`
	PrioritisedDomains []DomainSeverity `json:"prioritised_domains"`
}

const (
	rationaleNotReady    = "Decision readiness is limited due to missing minimum required controls or missing required evidence."
	rationaleConditional = "Decision readiness is acceptable with conditions, as non minimum gaps remain."
	rationaleReady       = "Decision readiness is acceptable, with minimum required controls and evidence present."
)

// EvaluateDecisionReadiness walks the matrix, finds every expectation that
// is not fully satisfied, prioritizes gaps by the worst risk severity seen
// in their domain, and derives the overall verdict. A minimum-required
// control contributes to the blocking count once for not being present and
// once for lacking evidence; either alone forces not_ready.
func EvaluateDecisionReadiness(m Matrix, risks []UserRisk, checks map[string]ControlCheck) Summary {
	severityByDomain := domainRiskSeverity(risks)

	prioritised := make([]DomainSeverity, 0, len(m.Domains))
	for _, de := range m.Domains {
		prioritised = append(prioritised, DomainSeverity{
			Domain:   de.Domain,
			Severity: severityByDomain[de.Domain],
		})
	}
	sort.SliceStable(prioritised, func(i, j int) bool {
		return prioritised[i].Severity > prioritised[j].Severity
	})

	gaps := []Gap{}
	blocking := 0

	for _, de := range m.Domains {
		severity := severityByDomain[de.Domain]
		priority := PriorityFromSeverity(severity)
		linked := linkedRiskIDs(risks, de.Domain)

		for _, exp := range de.Expectations {
			status := StatusMissing
			evidence := false
			if ck, ok := checks[exp.ControlID]; ok {
				status = ck.Status
				evidence = ck.EvidenceAttached
			}

			isGap := status != StatusPresent || (exp.MinimumRequired && !evidence)
			if !isGap {
				continue
			}

			if exp.MinimumRequired && status != StatusPresent {
				blocking++
			}
			if exp.MinimumRequired && !evidence {
				blocking++
			}

			gaps = append(gaps, Gap{
				Domain:           de.Domain,
				ControlID:        exp.ControlID,
				Description:      exp.Description,
				MinimumRequired:  exp.MinimumRequired,
				Status:           status,
				ExpectedEvidence: exp.ExpectedEvidence,
				EvidenceAttached: evidence,
				Priority:         priority,
				LinkedRisks:      linked,
			})
		}
	}

	sort.SliceStable(gaps, func(i, j int) bool {
		ri, rj := priorityRank(gaps[i].Priority), priorityRank(gaps[j].Priority)
		if ri != rj {
			return ri < rj
		}
		return gaps[i].MinimumRequired && !gaps[j].MinimumRequired
	})

	state := readiness.StateReady
	rationale := rationaleReady
	switch {
	case blocking > 0:
		state = readiness.StateNotReady
		rationale = rationaleNotReady
	case len(gaps) > 0:
		state = readiness.StateConditionallyReady
		rationale = rationaleConditional
	}

	return Summary{
		Decision:           m.Decision,
		Readiness:          state,
		Rationale:          rationale,
		Gaps:               gaps,
		PrioritisedDomains: prioritised,
	}
}

// domainRiskSeverity keeps the max severity per mapped domain. Unmapped
// risks are skipped.
func domainRiskSeverity(risks []UserRisk) map[ControlDomain]int {
	out := make(map[ControlDomain]int)
	for _, r := range risks {
		if r.MappedDomain == "" {
			continue
		}
		if s := r.Severity(); s > out[r.MappedDomain] {
			out[r.MappedDomain] = s
		}
	}
	return out
}

func linkedRiskIDs(risks []UserRisk, domain ControlDomain) []string {
	ids := []string{}
	for _, r := range risks {
		if r.MappedDomain == domain {
			ids = append(ids, r.ID)
		}
	}
	return ids
}
