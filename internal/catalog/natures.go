package catalog

// RiskNature is a qualitative tag on an indicator carrying a fixed weight
// modifier.
type RiskNature string

const (
	NatureStructural         RiskNature = "structural"
	NatureTechnical          RiskNature = "technical"
	NatureProcess            RiskNature = "process"
	NatureExternalDependency RiskNature = "external_dependency"
	NatureDecisionGovernance RiskNature = "decision_governance"
)

// WeightModifier returns the fixed multiplier for a nature. Unknown natures
// fall back to 1.0 so a miskeyed catalogue entry cannot zero out a score.
func (n RiskNature) WeightModifier() float64 {
	switch n {
	case NatureStructural:
		return 1.25
	case NatureTechnical:
		return 1.00
	case NatureProcess:
		return 1.05
	case NatureExternalDependency:
		return 1.15
	case NatureDecisionGovernance:
		return 1.20
	default:
		return 1.0
	}
}
