package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/assuranceops/verdict/internal/catalog"
	"github.com/assuranceops/verdict/internal/engine"
	"github.com/assuranceops/verdict/internal/events"
)

type AssessHandler struct {
	engine *engine.Engine
	events events.Client
}

func NewAssessHandler(e *engine.Engine, ev events.Client) *AssessHandler {
	return &AssessHandler{engine: e, events: ev}
}

type AssessmentRequest struct {
	Context struct {
		Activity string `json:"activity"`
		Stage    string `json:"stage"`
	} `json:"context"`
	Responses     map[string]any `json:"responses"`
	Likelihood    map[string]any `json:"likelihood"`
	Impact        map[string]any `json:"impact"`
	Detectability map[string]any `json:"detectability"`
}

// Create runs the full scoring pipeline for one submission.
// POST /api/v1/assessments
//
// Answer values are coerced fail-open inside the engine; only an unknown
// activity/stage pair is rejected, since it selects the weight profile.
func (h *AssessHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req AssessmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	activity, ok := catalog.ParseActivity(req.Context.Activity)
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown activity: " + req.Context.Activity})
		return
	}
	stage, ok := catalog.ParseStage(req.Context.Stage)
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown stage: " + req.Context.Stage})
		return
	}

	report := h.engine.Run(catalog.Context{Activity: activity, Stage: stage}, engine.Inputs{
		Responses:     req.Responses,
		Likelihood:    req.Likelihood,
		Impact:        req.Impact,
		Detectability: req.Detectability,
	})

	assessmentsTotal.WithLabelValues(string(report.OverallDecision)).Inc()

	if h.events != nil {
		id := uuid.NewString()
		_ = h.events.Publish(events.SubjectAssessmentCompleted(id), events.AssessmentCompletedEvent{
			AssessmentID:    id,
			Activity:        string(activity),
			Stage:           string(stage),
			OverallDecision: string(report.OverallDecision),
			Domains:         len(report.DomainScores),
			Timestamp:       time.Now().UTC(),
		})
	}

	writeJSON(w, http.StatusOK, report)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
