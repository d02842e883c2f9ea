package http

import (
	"errors"

	"marketplace-browser/internal/listing"
	"marketplace-browser/pkg/response"
)

var (
	errSurfaceNotFound = response.NewHTTPError(404, "listing surface not found")
	errInvalidPage     = response.NewHTTPError(400, "page must be >= 1")
	errInvalidPrice    = response.NewHTTPError(400, "price must be a number")
	errCacheDisabled   = response.NewHTTPError(404, "response cache is disabled")
)

// mapError translates listing errors into HTTP errors. Unknown errors become a 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, listing.ErrSurfaceNotFound):
		return errSurfaceNotFound
	case errors.Is(err, listing.ErrInvalidPage):
		return errInvalidPage
	case errors.Is(err, listing.ErrInvalidPrice):
		return errInvalidPrice
	default:
		return response.ErrInternalServer
	}
}
