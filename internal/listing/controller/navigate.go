package controller

import (
	"context"

	"marketplace-browser/internal/listing"
)

// NextPage loads the page after the one shown, if the last result has one.
func (c *implController) NextPage(ctx context.Context) listing.Outcome {
	c.clearInputError()

	p, ok := c.lastPagination()
	if !ok || !p.HasNextPage {
		return listing.OutcomeNoop
	}
	return c.LoadPage(ctx, p.CurrentPage+1, nil)
}

// PrevPage loads the page before the one shown, if the last result has one.
func (c *implController) PrevPage(ctx context.Context) listing.Outcome {
	c.clearInputError()

	p, ok := c.lastPagination()
	if !ok || !p.HasPrevPage {
		return listing.OutcomeNoop
	}
	return c.LoadPage(ctx, p.CurrentPage-1, nil)
}

// GoToPage jumps to page keeping the current filters. Pages beyond the last
// known page are ignored.
func (c *implController) GoToPage(ctx context.Context, page int) listing.Outcome {
	c.clearInputError()

	if p, ok := c.lastPagination(); ok && p.TotalPages > 0 && page > p.TotalPages {
		return listing.OutcomeNoop
	}
	return c.LoadPage(ctx, page, nil)
}

// Retry re-issues the last attempted load.
func (c *implController) Retry(ctx context.Context) listing.Outcome {
	c.mu.Lock()
	page := c.state.CurrentPage
	c.mu.Unlock()
	return c.LoadPage(ctx, page, nil)
}

// Refresh drops every cached page and reloads the current one.
func (c *implController) Refresh(ctx context.Context) listing.Outcome {
	c.clearInputError()

	if c.inFlight.Load() {
		return listing.OutcomeSkipped
	}
	if c.cache != nil {
		c.cache.Clear()
	}
	return c.Retry(ctx)
}

// InitFromLocation restores page and filters from the location and loads them.
// Malformed values have already fallen back to defaults in the synchronizer.
func (c *implController) InitFromLocation(ctx context.Context) listing.Outcome {
	if c.url == nil {
		return c.LoadPage(ctx, 1, &listing.FilterSet{})
	}
	st := c.url.Restore()
	return c.LoadPage(ctx, st.Page, &st.Filters)
}

func (c *implController) lastPagination() (listing.Pagination, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state.LastEnvelope == nil {
		return listing.Pagination{}, false
	}
	return c.state.LastEnvelope.Pagination, true
}
