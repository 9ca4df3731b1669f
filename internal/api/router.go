package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/assuranceops/verdict/internal/catalog"
	"github.com/assuranceops/verdict/internal/engine"
	"github.com/assuranceops/verdict/internal/events"
	"github.com/assuranceops/verdict/internal/gapplan"
	"github.com/assuranceops/verdict/internal/matrixio"
	"github.com/assuranceops/verdict/internal/readiness"
	"github.com/assuranceops/verdict/internal/registry"
)

// Dependencies bundles everything the handlers need. The decision matrix
// and control catalogue are loaded once at startup and read-only here.
type Dependencies struct {
	Engine    *engine.Engine
	Library   *catalog.Library
	Registry  *registry.Registry
	Matrix    readiness.DecisionMatrix
	GapMatrix gapplan.Matrix
	Controls  []matrixio.Control
	Events    events.Client
}

func NewRouter(deps Dependencies, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(RequestLogger(logger))
	r.Use(RateLimitMiddleware(120))

	assess := NewAssessHandler(deps.Engine, deps.Events)
	cat := NewCatalogHandler(deps.Library, deps.Controls)
	session := NewSessionHandler(deps.Registry, deps.Matrix, deps.Events)
	gaps := NewGapsHandler(deps.GapMatrix, deps.Registry, deps.Events)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/indicators", cat.Indicators)
		r.Get("/controls", cat.Controls)

		r.Post("/assessments", assess.Create)

		r.Post("/assets", session.CreateAsset)
		r.Get("/assets", session.ListAssets)
		r.Post("/risks", session.CreateRisk)
		r.Get("/risks", session.ListRisks)
		r.Get("/readiness", session.Readiness)
		r.Post("/session/reset", session.Reset)

		r.Put("/controls/{id}/check", gaps.SetCheck)
		r.Post("/gaps", gaps.Evaluate)
		r.Post("/guidance", gaps.Guidance)
	})

	return r
}

func NewMetricsRouter() http.Handler {
	r := chi.NewRouter()
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())
	return r
}
