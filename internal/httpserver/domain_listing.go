package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	listingHTTP "marketplace-browser/internal/listing/delivery/http"
	"marketplace-browser/internal/middleware"
)

// setupListingDomain registers the headless listing surfaces under /api/v1/listing.
// The fetcher and response cache are built in main and shared by every surface.
func (srv HTTPServer) setupListingDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := listingHTTP.New(srv.l, srv.fetcher, srv.cache, srv.listing)

	listingHTTP.RegisterRoutes(api.Group("/listing"), h, mw)

	srv.l.Infof(ctx, "Listing domain registered (cache enabled: %t)", srv.cache != nil)
	return nil
}
