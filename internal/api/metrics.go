package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	assessmentsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "verdict_assessments_total",
		Help: "Assessment runs, labelled by overall decision.",
	}, []string{"decision"})

	readinessEvaluationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "verdict_readiness_evaluations_total",
		Help: "Readiness evaluations, labelled by verdict.",
	}, []string{"state"})

	gapEvaluationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "verdict_gap_evaluations_total",
		Help: "Control gap evaluations, labelled by verdict.",
	}, []string{"state"})
)
