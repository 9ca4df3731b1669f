package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/assuranceops/verdict/internal/events"
	"github.com/assuranceops/verdict/internal/readiness"
	"github.com/assuranceops/verdict/internal/registry"
)

// SessionHandler serves the session-scoped asset inventory and risk
// register, plus the readiness evaluation over them.
type SessionHandler struct {
	registry *registry.Registry
	matrix   readiness.DecisionMatrix
	events   events.Client
}

func NewSessionHandler(reg *registry.Registry, matrix readiness.DecisionMatrix, ev events.Client) *SessionHandler {
	return &SessionHandler{registry: reg, matrix: matrix, events: ev}
}

type assetRequest struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Owner        string   `json:"owner"`
	Category     string   `json:"category"`
	CIA          []string `json:"cia"`
	PersonalData bool     `json:"personal_data"`
	Access       string   `json:"access"`
}

// CreateAsset appends an asset to the inventory and returns it with its
// assigned id.
// POST /api/v1/assets
func (h *SessionHandler) CreateAsset(w http.ResponseWriter, r *http.Request) {
	var req assetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if req.Name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "name is required"})
		return
	}

	asset := h.registry.AddAsset(readiness.Asset{
		Name:         req.Name,
		Description:  req.Description,
		Owner:        req.Owner,
		Category:     req.Category,
		CIA:          req.CIA,
		PersonalData: req.PersonalData,
		Access:       req.Access,
	})
	writeJSON(w, http.StatusCreated, asset)
}

// ListAssets returns the asset inventory in creation order.
// GET /api/v1/assets
func (h *SessionHandler) ListAssets(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.registry.Assets())
}

type riskRequest struct {
	AssetID            int      `json:"asset_id"`
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	Owner              string   `json:"owner"`
	Source             string   `json:"source"`
	CIA                []string `json:"cia"`
	Likelihood         string   `json:"likelihood"`
	Impact             string   `json:"impact"`
	SelectedControls   []string `json:"selected_controls"`
	ResidualLikelihood string   `json:"residual_likelihood"`
	ResidualImpact     string   `json:"residual_impact"`
}

// CreateRisk computes the inherent and residual scores, suggests a
// treatment, and appends the risk to the register. AssetID is accepted as
// given; it is a weak reference and is not validated against the inventory.
// POST /api/v1/risks
func (h *SessionHandler) CreateRisk(w http.ResponseWriter, r *http.Request) {
	var req riskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if req.Title == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "title is required"})
		return
	}

	// Residual levels default to the inherent ones when untreated.
	residualLikelihood := req.ResidualLikelihood
	if residualLikelihood == "" {
		residualLikelihood = req.Likelihood
	}
	residualImpact := req.ResidualImpact
	if residualImpact == "" {
		residualImpact = req.Impact
	}

	score := readiness.Score(req.Likelihood, req.Impact)
	risk := readiness.Risk{
		ID:                 registry.NewRiskID(),
		AssetID:            req.AssetID,
		Title:              req.Title,
		Description:        req.Description,
		Owner:              req.Owner,
		Source:             req.Source,
		CIA:                req.CIA,
		Likelihood:         req.Likelihood,
		Impact:             req.Impact,
		Score:              score,
		SuggestedTreatment: readiness.SuggestTreatment(score, readiness.TreatmentThreshold),
		SelectedControls:   req.SelectedControls,
		ResidualLikelihood: residualLikelihood,
		ResidualImpact:     residualImpact,
		ResidualScore:      readiness.Score(residualLikelihood, residualImpact),
	}
	h.registry.AddRisk(risk)
	writeJSON(w, http.StatusCreated, risk)
}

// ListRisks returns the risk register in creation order.
// GET /api/v1/risks
func (h *SessionHandler) ListRisks(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.registry.Risks())
}

// Readiness evaluates the configured decision matrix against the current
// risk register.
// GET /api/v1/readiness
func (h *SessionHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	result := readiness.Evaluate(h.matrix, h.registry.Risks())

	readinessEvaluationsTotal.WithLabelValues(string(result.Readiness)).Inc()

	if h.events != nil {
		_ = h.events.Publish(events.SubjectReadinessEvaluated(h.matrix.DecisionID), events.ReadinessEvaluatedEvent{
			DecisionID:              h.matrix.DecisionID,
			Readiness:               string(result.Readiness),
			MissingRequiredControls: result.MissingRequiredControls,
			HighResidualRiskCount:   result.HighResidualRiskCount,
			Timestamp:               time.Now().UTC(),
		})
	}

	writeJSON(w, http.StatusOK, result)
}

// Reset clears the session: assets, risks, and control checks.
// POST /api/v1/session/reset
func (h *SessionHandler) Reset(w http.ResponseWriter, r *http.Request) {
	h.registry.Reset()
	writeJSON(w, http.StatusOK, map[string]string{"status": "reset"})
}
