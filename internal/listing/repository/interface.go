package repository

import (
	"context"

	"marketplace-browser/internal/listing"
)

// Fetcher loads one page of products from the backend.
// Any failure (connectivity, non-2xx, timeout) is reported as an error
// wrapping listing.ErrFetchFailed.
type Fetcher interface {
	Fetch(ctx context.Context, req listing.PageRequest) (listing.PageEnvelope, error)
}
