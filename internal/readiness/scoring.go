package readiness

import "strings"

// TreatmentThreshold is the score at or above which treatment should reduce
// the risk rather than accept it.
const TreatmentThreshold = 4

const (
	TreatmentReduce = "Reduce"
	TreatmentAccept = "Accept"
)

// LevelScore maps a qualitative likelihood/impact level to its numeric
// value. Unknown levels read as medium so a typo cannot drop a risk to zero.
func LevelScore(level string) int {
	switch strings.ToLower(level) {
	case "low":
		return 1
	case "medium":
		return 2
	case "high":
		return 3
	default:
		return 2
	}
}

// Score computes likelihood × impact on the 1–3 level scale.
func Score(likelihood, impact string) int {
	return LevelScore(likelihood) * LevelScore(impact)
}

// SuggestTreatment recommends Reduce for scores at or above the threshold,
// Accept otherwise.
func SuggestTreatment(score, threshold int) string {
	if score >= threshold {
		return TreatmentReduce
	}
	return TreatmentAccept
}
