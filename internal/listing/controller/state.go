package controller

import "marketplace-browser/internal/listing"

func (c *implController) SurfaceID() string {
	return c.surfaceID
}

// Snapshot returns a deep copy of the controller state and UI flags.
func (c *implController) Snapshot() listing.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	st := c.state
	st.Filters = c.state.Filters.Clone()
	if c.state.LastEnvelope != nil {
		env := c.state.LastEnvelope.Clone()
		st.LastEnvelope = &env
	}

	ui := c.ui
	if c.ui.Controls != nil {
		controls := c.ui.Controls.Clone()
		ui.Controls = &controls
	}

	return listing.Snapshot{State: st, UI: ui}
}
