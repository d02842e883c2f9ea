package urlsync

import (
	"strings"
	"sync"
)

// Location is the navigable address whose query string mirrors a listing.
type Location interface {
	// Query returns the raw query string without the leading '?'.
	Query() string
	// Replace swaps the query string in place. It never adds a history entry.
	Replace(query string)
}

// MemoryLocation is an in-process Location, used by headless surfaces and the CLI.
type MemoryLocation struct {
	mu       sync.RWMutex
	path     string
	query    string
	replaced int
}

// NewMemoryLocation parses raw as "path?query". Either part may be empty.
func NewMemoryLocation(raw string) *MemoryLocation {
	path, query, _ := strings.Cut(raw, "?")
	return &MemoryLocation{path: path, query: query}
}

func (m *MemoryLocation) Query() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.query
}

func (m *MemoryLocation) Replace(query string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.query = strings.TrimPrefix(query, "?")
	m.replaced++
}

// Replaced counts Replace calls.
func (m *MemoryLocation) Replaced() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.replaced
}

// String renders the full location, e.g. "/explore?page=2&q=lamp".
func (m *MemoryLocation) String() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.query == "" {
		return m.path
	}
	return m.path + "?" + m.query
}
