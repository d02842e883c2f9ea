package listing

import "errors"

// Domain-specific errors for the listing package.
var (
	ErrFetchFailed     = errors.New("failed to fetch products")
	ErrUnauthorized    = errors.New("not authorized to fetch products")
	ErrInvalidPage     = errors.New("page must be >= 1")
	ErrInvalidPrice    = errors.New("price must be a number")
	ErrSurfaceNotFound = errors.New("listing surface not found")
)
