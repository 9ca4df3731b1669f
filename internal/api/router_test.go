package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/assuranceops/verdict/internal/catalog"
	"github.com/assuranceops/verdict/internal/engine"
	"github.com/assuranceops/verdict/internal/gapplan"
	"github.com/assuranceops/verdict/internal/matrixio"
	"github.com/assuranceops/verdict/internal/readiness"
	"github.com/assuranceops/verdict/internal/registry"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func intPtr(v int) *int { return &v }

func testMatrix() readiness.DecisionMatrix {
	return readiness.DecisionMatrix{
		DecisionID:       "approve_supplier_onboarding",
		Title:            "Approve supplier onboarding",
		RequiredControls: []string{"SC01", "SC02"},
		OptionalControls: []string{"SC03"},
		ReadinessRules: readiness.ReadinessRules{
			NotReadyIfMissingRequired:   true,
			MaxAllowedHighResidualRisks: intPtr(0),
			HighResidualThreshold:       4,
		},
	}
}

func newTestRouter() http.Handler {
	lib := catalog.DefaultLibrary()
	deps := Dependencies{
		Engine:    engine.New(lib, engine.DefaultThresholds(), discardLogger()),
		Library:   lib,
		Registry:  registry.New(),
		Matrix:    testMatrix(),
		GapMatrix: gapplan.SupplierOnboardingMatrix(),
		Controls:  []matrixio.Control{{ID: "SC01", Title: "Supplier qualification"}},
	}
	return NewRouter(deps, discardLogger())
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestGetIndicators(t *testing.T) {
	router := newTestRouter()
	rr := doJSON(t, router, http.MethodGet, "/api/v1/indicators", nil)

	assert.Equal(t, http.StatusOK, rr.Code)

	var indicators []catalog.Indicator
	if err := json.Unmarshal(rr.Body.Bytes(), &indicators); err != nil {
		t.Fatal(err)
	}
	assert.Len(t, indicators, 12)
	assert.Equal(t, "I001", indicators[0].ID)
}

func TestGetControls(t *testing.T) {
	router := newTestRouter()
	rr := doJSON(t, router, http.MethodGet, "/api/v1/controls", nil)

	assert.Equal(t, http.StatusOK, rr.Code)

	var controls []matrixio.Control
	if err := json.Unmarshal(rr.Body.Bytes(), &controls); err != nil {
		t.Fatal(err)
	}
	assert.Len(t, controls, 1)
}

func TestCreateAssessment(t *testing.T) {
	router := newTestRouter()
	payload := map[string]any{
		"context":    map[string]string{"activity": "product_design", "stage": "design"},
		"responses":  map[string]any{"I001": "no"},
		"likelihood": map[string]any{"I001": 3},
		"impact":     map[string]any{"I001": 3},
	}

	rr := doJSON(t, router, http.MethodPost, "/api/v1/assessments", payload)

	assert.Equal(t, http.StatusOK, rr.Code)

	var report engine.Report
	if err := json.Unmarshal(rr.Body.Bytes(), &report); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, catalog.ActivityProductDesign, report.Context.Activity)
	assert.NotEmpty(t, report.OverallDecision)
	assert.Len(t, report.AuditTrail, 5)
}

func TestCreateAssessmentUnknownActivity(t *testing.T) {
	router := newTestRouter()
	payload := map[string]any{
		"context": map[string]string{"activity": "time_travel", "stage": "design"},
	}

	rr := doJSON(t, router, http.MethodPost, "/api/v1/assessments", payload)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCreateAssessmentBadBody(t *testing.T) {
	router := newTestRouter()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/assessments", bytes.NewBufferString("{broken"))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestAssetLifecycle(t *testing.T) {
	router := newTestRouter()

	rr := doJSON(t, router, http.MethodPost, "/api/v1/assets", map[string]any{
		"name":  "Optical bench",
		"owner": "eng",
		"cia":   []string{"integrity"},
	})
	assert.Equal(t, http.StatusCreated, rr.Code)

	var asset readiness.Asset
	if err := json.Unmarshal(rr.Body.Bytes(), &asset); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, 1, asset.ID)

	rr = doJSON(t, router, http.MethodGet, "/api/v1/assets", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	var assets []readiness.Asset
	if err := json.Unmarshal(rr.Body.Bytes(), &assets); err != nil {
		t.Fatal(err)
	}
	assert.Len(t, assets, 1)
}

func TestCreateAssetRequiresName(t *testing.T) {
	router := newTestRouter()
	rr := doJSON(t, router, http.MethodPost, "/api/v1/assets", map[string]any{"owner": "eng"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCreateRiskComputesScores(t *testing.T) {
	router := newTestRouter()

	rr := doJSON(t, router, http.MethodPost, "/api/v1/risks", map[string]any{
		"title":               "Supplier variability",
		"likelihood":          "high",
		"impact":              "medium",
		"selected_controls":   []string{"SC01"},
		"residual_likelihood": "low",
		"residual_impact":     "low",
	})
	assert.Equal(t, http.StatusCreated, rr.Code)

	var risk readiness.Risk
	if err := json.Unmarshal(rr.Body.Bytes(), &risk); err != nil {
		t.Fatal(err)
	}
	assert.Len(t, risk.ID, 8)
	assert.Equal(t, 6, risk.Score)
	assert.Equal(t, "Reduce", risk.SuggestedTreatment)
	assert.Equal(t, 1, risk.ResidualScore)
}

func TestCreateRiskDefaultsResidualToInherent(t *testing.T) {
	router := newTestRouter()

	rr := doJSON(t, router, http.MethodPost, "/api/v1/risks", map[string]any{
		"title":      "Untreated risk",
		"likelihood": "high",
		"impact":     "high",
	})
	assert.Equal(t, http.StatusCreated, rr.Code)

	var risk readiness.Risk
	if err := json.Unmarshal(rr.Body.Bytes(), &risk); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, 9, risk.Score)
	assert.Equal(t, 9, risk.ResidualScore)
	assert.Equal(t, "high", risk.ResidualLikelihood)
}

func TestReadinessEndpoint(t *testing.T) {
	router := newTestRouter()

	// Cover one required control, leave SC02 missing.
	rr := doJSON(t, router, http.MethodPost, "/api/v1/risks", map[string]any{
		"title":               "Covered risk",
		"likelihood":          "low",
		"impact":              "low",
		"selected_controls":   []string{"SC01"},
		"residual_likelihood": "low",
		"residual_impact":     "low",
	})
	assert.Equal(t, http.StatusCreated, rr.Code)

	rr = doJSON(t, router, http.MethodGet, "/api/v1/readiness", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	var result readiness.Result
	if err := json.Unmarshal(rr.Body.Bytes(), &result); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, readiness.StateNotReady, result.Readiness)
	assert.Equal(t, []string{"SC02"}, result.MissingRequiredControls)
}

func TestSessionReset(t *testing.T) {
	router := newTestRouter()

	doJSON(t, router, http.MethodPost, "/api/v1/assets", map[string]any{"name": "a"})
	rr := doJSON(t, router, http.MethodPost, "/api/v1/session/reset", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = doJSON(t, router, http.MethodGet, "/api/v1/assets", nil)
	var assets []readiness.Asset
	if err := json.Unmarshal(rr.Body.Bytes(), &assets); err != nil {
		t.Fatal(err)
	}
	assert.Empty(t, assets)
}

func TestControlCheckAndGaps(t *testing.T) {
	router := newTestRouter()

	// Record one control as present with evidence.
	rr := doJSON(t, router, http.MethodPut, "/api/v1/controls/SC01/check", map[string]any{
		"status":            "present",
		"evidence_attached": true,
	})
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = doJSON(t, router, http.MethodPost, "/api/v1/gaps", map[string]any{
		"risks": []map[string]any{{
			"risk_id":       "r1",
			"description":   "Single supplier",
			"likelihood":    5,
			"impact":        5,
			"detectability": 3,
			"mapped_domain": "supplier_control",
		}},
	})
	assert.Equal(t, http.StatusOK, rr.Code)

	var summary gapplan.Summary
	if err := json.Unmarshal(rr.Body.Bytes(), &summary); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, readiness.StateNotReady, summary.Readiness)
	assert.NotEmpty(t, summary.Gaps)
	// SC01 is satisfied, so it must not appear as a gap.
	for _, g := range summary.Gaps {
		assert.NotEqual(t, "SC01", g.ControlID)
	}
	assert.Equal(t, gapplan.DomainSupplierControl, summary.PrioritisedDomains[0].Domain)
}

func TestSetCheckRejectsUnknownStatus(t *testing.T) {
	router := newTestRouter()
	rr := doJSON(t, router, http.MethodPut, "/api/v1/controls/SC01/check", map[string]any{
		"status": "unknowable",
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGapsInlineChecksTakePrecedence(t *testing.T) {
	router := newTestRouter()

	// Session has SC01 missing; the inline payload says everything present.
	checks := []map[string]any{}
	for _, de := range gapplan.SupplierOnboardingMatrix().Domains {
		for _, exp := range de.Expectations {
			checks = append(checks, map[string]any{
				"control_id":        exp.ControlID,
				"status":            "present",
				"evidence_attached": true,
			})
		}
	}

	rr := doJSON(t, router, http.MethodPost, "/api/v1/gaps", map[string]any{"checks": checks})
	assert.Equal(t, http.StatusOK, rr.Code)

	var summary gapplan.Summary
	if err := json.Unmarshal(rr.Body.Bytes(), &summary); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, readiness.StateReady, summary.Readiness)
	assert.Empty(t, summary.Gaps)
}

func TestGuidanceEndpoint(t *testing.T) {
	router := newTestRouter()

	rr := doJSON(t, router, http.MethodPost, "/api/v1/guidance", map[string]any{
		"context": map[string]string{"activity": "supplier_selection", "stage": "validation"},
		"risks": []map[string]any{{
			"risk_id":       "r1",
			"description":   "Single source supplier for critical component",
			"likelihood":    5,
			"impact":        5,
			"detectability": 2,
		}},
	})
	assert.Equal(t, http.StatusOK, rr.Code)

	var summary map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &summary); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "hold_pending_controls", summary["overall_gate_guidance"])

	items := summary["items"].([]any)
	assert.Len(t, items, 1)
	item := items[0].(map[string]any)
	assert.Equal(t, "supplier_reliability", item["pattern"])
}

func TestGuidanceUnknownStage(t *testing.T) {
	router := newTestRouter()
	rr := doJSON(t, router, http.MethodPost, "/api/v1/guidance", map[string]any{
		"context": map[string]string{"activity": "supplier_selection", "stage": "retirement"},
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestMetricsRouterHealth(t *testing.T) {
	router := NewMetricsRouter()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
}
