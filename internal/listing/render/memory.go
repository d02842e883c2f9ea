package render

import (
	"sync"

	"marketplace-browser/internal/listing"
	"marketplace-browser/internal/model"
)

// Grid is what a surface currently shows.
type Grid struct {
	SurfaceID string          `json:"surface_id"`
	Variant   listing.Variant `json:"variant"`
	Items     []model.Product `json:"items"`
	Renders   int             `json:"renders"`
}

// Memory keeps the last rendered grid of every surface. Headless surfaces
// read their product grid back from it.
type Memory struct {
	mu    sync.RWMutex
	grids map[string]Grid
}

var _ listing.Renderer = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{grids: make(map[string]Grid)}
}

// Render replaces the surface's grid with items.
func (m *Memory) Render(items []model.Product, surfaceID string, variant listing.Variant) {
	m.mu.Lock()
	defer m.mu.Unlock()

	g := m.grids[surfaceID]
	g.SurfaceID = surfaceID
	g.Variant = variant
	g.Items = append(make([]model.Product, 0, len(items)), items...)
	g.Renders++
	m.grids[surfaceID] = g
}

// Grid returns a copy of the surface's grid.
func (m *Memory) Grid(surfaceID string) (Grid, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	g, ok := m.grids[surfaceID]
	if !ok {
		return Grid{}, false
	}
	items := make([]model.Product, len(g.Items))
	copy(items, g.Items)
	g.Items = items
	return g, true
}

// Forget drops a surface's grid.
func (m *Memory) Forget(surfaceID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.grids, surfaceID)
}
