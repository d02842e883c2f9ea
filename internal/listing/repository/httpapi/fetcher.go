package httpapi

import (
	"context"
	"fmt"

	"marketplace-browser/internal/listing"
	"marketplace-browser/internal/listing/repository"
	"marketplace-browser/internal/model"
	pkgLog "marketplace-browser/pkg/log"
)

type implRepository struct {
	client *Client
	l      pkgLog.Logger
}

// New creates the HTTP-backed Fetcher.
func New(client *Client, l pkgLog.Logger) repository.Fetcher {
	return &implRepository{
		client: client,
		l:      l,
	}
}

func (r *implRepository) Fetch(ctx context.Context, req listing.PageRequest) (listing.PageEnvelope, error) {
	if err := req.Validate(); err != nil {
		return listing.PageEnvelope{}, fmt.Errorf("%w: %v", listing.ErrFetchFailed, err)
	}

	resp, err := r.client.ListProducts(ctx, ListProductsRequest{
		Page:    req.Page,
		Limit:   req.Limit,
		Filters: req.Filters.Values(),
	})
	if err != nil {
		r.l.Errorf(ctx, "httpapi.Fetch: page=%d limit=%d: %v", req.Page, req.Limit, err)
		return listing.PageEnvelope{}, err
	}

	return r.toEnvelope(ctx, req, resp), nil
}

// toEnvelope maps the wire response onto a PageEnvelope. The next/prev flags
// are derived from the counters so the envelope invariants always hold.
func (r *implRepository) toEnvelope(ctx context.Context, req listing.PageRequest, resp *ListProductsResponse) listing.PageEnvelope {
	p := resp.Pagination

	current := p.CurrentPage
	if current < 1 {
		current = req.Page
	}
	limit := p.Limit
	if limit < 1 {
		limit = req.Limit
	}

	items := resp.Products
	if items == nil {
		items = []model.Product{}
	}
	if len(items) > limit {
		r.l.Warnf(ctx, "httpapi.Fetch: backend returned %d items for limit %d, truncating", len(items), limit)
		items = items[:limit]
	}

	return listing.PageEnvelope{
		Items:      items,
		Pagination: listing.NewPagination(current, p.TotalPages, p.TotalProducts, limit),
	}
}
