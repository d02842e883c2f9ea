package controller

import (
	"context"
	"fmt"

	"marketplace-browser/internal/listing"
	"marketplace-browser/internal/model"
)

// LoadPage loads page with filters, or with the current filters when nil.
// A call made while another load is in flight is dropped, never queued.
func (c *implController) LoadPage(ctx context.Context, page int, filters *listing.FilterSet) listing.Outcome {
	c.clearInputError()

	if page < 1 {
		c.l.Warnf(ctx, "controller.LoadPage: surface=%s: %v: %d", c.surfaceID, listing.ErrInvalidPage, page)
		return listing.OutcomeNoop
	}

	if !c.inFlight.CompareAndSwap(false, true) {
		c.l.Debugf(ctx, "controller.LoadPage: surface=%s page=%d skipped, load in flight", c.surfaceID, page)
		return listing.OutcomeSkipped
	}
	defer c.inFlight.Store(false)

	c.mu.Lock()
	var f listing.FilterSet
	if filters != nil {
		f = filters.Clone()
	} else {
		f = c.state.Filters.Clone()
	}
	c.state.CurrentPage = page
	c.state.Filters = f.Clone()
	c.state.IsLoading = true
	c.ui.Loading = true
	c.mu.Unlock()

	req := listing.PageRequest{Page: page, Limit: c.limit, Filters: f}

	env, err := c.fetch(ctx, req)
	if err != nil {
		c.l.Warnf(ctx, "controller.LoadPage: surface=%s page=%d: %v", c.surfaceID, page, err)
		c.fail(err)
		return listing.OutcomeFailed
	}

	if len(env.Items) == 0 {
		c.renderer.Render([]model.Product{}, c.surfaceID, c.variant)
		c.succeed(req, env, nil, "")
		return listing.OutcomeEmpty
	}

	c.renderer.Render(env.Items, c.surfaceID, c.variant)
	controls := listing.BuildControls(env.Pagination, c.delta)
	results := listing.ResultsText(env.Pagination.CurrentPage, env.Pagination.Limit, env.Pagination.TotalItems)
	c.succeed(req, env, &controls, results)
	return listing.OutcomeLoaded
}

// fetch consults the cache before calling the Fetcher and stores what it fetched.
func (c *implController) fetch(ctx context.Context, req listing.PageRequest) (listing.PageEnvelope, error) {
	if c.cache != nil {
		if env, ok := c.cache.Get(req); ok {
			c.l.Debugf(ctx, "controller.fetch: surface=%s page=%d cache hit", c.surfaceID, req.Page)
			return env, nil
		}
	}

	env, err := c.fetcher.Fetch(ctx, req)
	if err != nil {
		return listing.PageEnvelope{}, err
	}

	if c.cache != nil {
		c.cache.Put(req, env)
	}
	return env, nil
}

// succeed records a completed load. controls is nil for an empty result.
func (c *implController) succeed(req listing.PageRequest, env listing.PageEnvelope, controls *listing.Controls, results string) {
	var query string
	if c.url != nil {
		query = c.url.Apply(listing.LocationState{Page: req.Page, Filters: req.Filters})
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	last := env.Clone()
	c.state.LastEnvelope = &last
	c.state.IsLoading = false

	c.ui = listing.UIState{
		Empty:    len(env.Items) == 0,
		Controls: controls,
		Results:  results,
		Query:    query,
	}
}

// fail raises the error flag and leaves the last rendered envelope alone.
func (c *implController) fail(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.IsLoading = false
	c.ui.Loading = false
	c.ui.Error = fmt.Sprintf("%s: %v", errorMessage, err)
}
