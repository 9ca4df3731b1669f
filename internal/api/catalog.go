package api

import (
	"net/http"

	"github.com/assuranceops/verdict/internal/catalog"
	"github.com/assuranceops/verdict/internal/matrixio"
)

type CatalogHandler struct {
	lib      *catalog.Library
	controls []matrixio.Control
}

func NewCatalogHandler(lib *catalog.Library, controls []matrixio.Control) *CatalogHandler {
	return &CatalogHandler{lib: lib, controls: controls}
}

// Indicators returns the indicator library in catalogue order.
// GET /api/v1/indicators
func (h *CatalogHandler) Indicators(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.lib.Indicators())
}

// Controls returns the loaded control catalogue.
// GET /api/v1/controls
func (h *CatalogHandler) Controls(w http.ResponseWriter, r *http.Request) {
	controls := h.controls
	if controls == nil {
		controls = []matrixio.Control{}
	}
	writeJSON(w, http.StatusOK, controls)
}
