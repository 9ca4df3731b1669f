package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/assuranceops/verdict/internal/catalog"
	"github.com/assuranceops/verdict/internal/events"
	"github.com/assuranceops/verdict/internal/gapplan"
	"github.com/assuranceops/verdict/internal/guidance"
	"github.com/assuranceops/verdict/internal/registry"
)

// GapsHandler serves control-check entry, the gap evaluation, and the
// pattern-based guidance endpoint.
type GapsHandler struct {
	matrix   gapplan.Matrix
	registry *registry.Registry
	events   events.Client
}

func NewGapsHandler(m gapplan.Matrix, reg *registry.Registry, ev events.Client) *GapsHandler {
	return &GapsHandler{matrix: m, registry: reg, events: ev}
}

type checkRequest struct {
	Status           gapplan.ControlStatus `json:"status"`
	EvidenceAttached bool                  `json:"evidence_attached"`
}

func validStatus(s gapplan.ControlStatus) bool {
	switch s {
	case gapplan.StatusMissing, gapplan.StatusPartial, gapplan.StatusPresent:
		return true
	}
	return false
}

// SetCheck records the check state for one control id, overwriting any
// previous entry.
// PUT /api/v1/controls/{id}/check
func (h *GapsHandler) SetCheck(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req checkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if !validStatus(req.Status) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown status: " + string(req.Status)})
		return
	}

	check := gapplan.ControlCheck{
		ControlID:        id,
		Status:           req.Status,
		EvidenceAttached: req.EvidenceAttached,
	}
	h.registry.SetCheck(check)
	writeJSON(w, http.StatusOK, check)
}

type gapsRequest struct {
	Risks  []gapplan.UserRisk     `json:"risks"`
	Checks []gapplan.ControlCheck `json:"checks"`
}

// Evaluate runs the gap planner over the supplier-onboarding matrix. Checks
// supplied inline take precedence; otherwise the session's recorded checks
// are used.
// POST /api/v1/gaps
func (h *GapsHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	var req gapsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	checks := h.registry.Checks()
	if len(req.Checks) > 0 {
		checks = make(map[string]gapplan.ControlCheck, len(req.Checks))
		for _, c := range req.Checks {
			checks[c.ControlID] = c
		}
	}

	summary := gapplan.EvaluateDecisionReadiness(h.matrix, req.Risks, checks)

	gapEvaluationsTotal.WithLabelValues(string(summary.Readiness)).Inc()

	if h.events != nil {
		_ = h.events.Publish(events.SubjectGapsEvaluated(summary.Decision), events.GapsEvaluatedEvent{
			Decision:  summary.Decision,
			Readiness: string(summary.Readiness),
			GapCount:  len(summary.Gaps),
			Timestamp: time.Now().UTC(),
		})
	}

	writeJSON(w, http.StatusOK, summary)
}

type guidanceRequest struct {
	Context struct {
		Activity string `json:"activity"`
		Stage    string `json:"stage"`
	} `json:"context"`
	Risks []guidance.Risk `json:"risks"`
}

// Guidance classifies any unpatterned risks from their descriptions and
// returns gate guidance for the given context.
// POST /api/v1/guidance
func (h *GapsHandler) Guidance(w http.ResponseWriter, r *http.Request) {
	var req guidanceRequest
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

	risks := make([]guidance.Risk, len(req.Risks))
	copy(risks, req.Risks)
	for i := range risks {
		if risks[i].Pattern == "" {
			risks[i].Pattern = guidance.SuggestPattern(risks[i].Description)
		}
	}

	summary := guidance.Generate(catalog.Context{Activity: activity, Stage: stage}, risks)
	writeJSON(w, http.StatusOK, summary)
}
