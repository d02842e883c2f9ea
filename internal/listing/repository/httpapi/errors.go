package httpapi

import (
	"net/http"

	"marketplace-browser/internal/listing"
)

func statusErr(code int) error {
	if code == http.StatusUnauthorized {
		return listing.ErrUnauthorized
	}
	return nil
}
