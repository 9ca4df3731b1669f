// Package registry holds the in-memory session state: the asset inventory,
// the risk register, and control-check entries. The evaluation engines never
// touch it directly; handlers pass snapshots by value. Nothing is persisted.
package registry

import (
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/assuranceops/verdict/internal/gapplan"
	"github.com/assuranceops/verdict/internal/readiness"
)

type Registry struct {
	mu     sync.RWMutex
	assets []readiness.Asset
	risks  []readiness.Risk
	checks map[string]gapplan.ControlCheck
}

func New() *Registry {
	return &Registry{checks: make(map[string]gapplan.ControlCheck)}
}

// NewRiskID returns a short random token for a risk register entry.
func NewRiskID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

// AddAsset assigns the next sequential id and appends the asset.
func (r *Registry) AddAsset(a readiness.Asset) readiness.Asset {
	r.mu.Lock()
	defer r.mu.Unlock()
	a.ID = len(r.assets) + 1
	r.assets = append(r.assets, a)
	return a
}

// Assets returns a snapshot of the asset inventory.
func (r *Registry) Assets() []readiness.Asset {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]readiness.Asset, len(r.assets))
	copy(out, r.assets)
	return out
}

// GetAsset looks up an asset by id.
func (r *Registry) GetAsset(id int) (readiness.Asset, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.assets {
		if a.ID == id {
			return a, true
		}
	}
	return readiness.Asset{}, false
}

// AddRisk appends a fully computed risk. Risks are immutable once added.
func (r *Registry) AddRisk(risk readiness.Risk) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.risks = append(r.risks, risk)
}

// Risks returns a snapshot of the risk register.
func (r *Registry) Risks() []readiness.Risk {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]readiness.Risk, len(r.risks))
	copy(out, r.risks)
	return out
}

// SetCheck records the check state for a control id, overwriting any
// previous entry for the same id.
func (r *Registry) SetCheck(c gapplan.ControlCheck) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checks[c.ControlID] = c
}

// Checks returns a snapshot of the control-check map.
func (r *Registry) Checks() map[string]gapplan.ControlCheck {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]gapplan.ControlCheck, len(r.checks))
	for id, c := range r.checks {
		out[id] = c
	}
	return out
}

// Reset clears the whole session.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.assets = nil
	r.risks = nil
	r.checks = make(map[string]gapplan.ControlCheck)
}
