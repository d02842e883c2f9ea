package controller

import (
	"context"

	"marketplace-browser/internal/listing"
)

// Search replaces the search term and restarts at page 1. A blank query clears it.
func (c *implController) Search(ctx context.Context, query string) listing.Outcome {
	f := c.currentFilters().WithSearch(query)
	return c.LoadPage(ctx, 1, &f)
}

// FilterByCategory constrains results to category and restarts at page 1.
// "all" or an empty category clears the constraint.
func (c *implController) FilterByCategory(ctx context.Context, category string) listing.Outcome {
	f := c.currentFilters().WithCategory(category)
	return c.LoadPage(ctx, 1, &f)
}

// FilterByPrice sets both price bounds and restarts at page 1. An empty bound
// clears it; an unparseable one leaves the surface untouched and shows an error.
func (c *implController) FilterByPrice(ctx context.Context, minPrice, maxPrice string) listing.Outcome {
	c.clearInputError()

	lo, err := listing.ParsePrice(minPrice)
	if err != nil {
		c.rejectInput(ctx, "min price", minPrice, err)
		return listing.OutcomeNoop
	}
	hi, err := listing.ParsePrice(maxPrice)
	if err != nil {
		c.rejectInput(ctx, "max price", maxPrice, err)
		return listing.OutcomeNoop
	}

	f := c.currentFilters().WithPriceRange(lo, hi)
	return c.LoadPage(ctx, 1, &f)
}

func (c *implController) currentFilters() listing.FilterSet {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Filters.Clone()
}

func (c *implController) rejectInput(ctx context.Context, field, raw string, err error) {
	c.l.Warnf(ctx, "controller.FilterByPrice: surface=%s %s=%q: %v", c.surfaceID, field, raw, err)

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.inputErr {
		c.hiddenErr = c.ui.Error
	}
	c.ui.Error = err.Error()
	c.inputErr = true
}

// clearInputError drops a rejected-input message left by an earlier call.
func (c *implController) clearInputError() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.inputErr {
		return
	}
	c.ui.Error = c.hiddenErr
	c.hiddenErr = ""
	c.inputErr = false
}
