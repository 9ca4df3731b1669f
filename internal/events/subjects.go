package events

const (
	StreamName   = "VERDICT_EVENTS"
	StreamMaxAge = "720h" // 30 days
)

func SubjectAssessmentCompleted(assessmentID string) string {
	return "grc.assessment." + assessmentID + ".completed"
}

func SubjectReadinessEvaluated(decisionID string) string {
	return "grc.readiness." + decisionID + ".evaluated"
}

func SubjectGapsEvaluated(decision string) string {
	return "grc.gaps." + decision + ".evaluated"
}
