package http

import (
	"context"

	"github.com/gin-gonic/gin"

	"marketplace-browser/internal/listing"
	"marketplace-browser/pkg/response"
)

// CreateSurface godoc
// @Summary     Open a listing surface
// @Description Creates a headless product listing initialised from a location such as "/explore?page=2&q=lamp" and loads it.
// @Tags        Listing
// @Accept      json
// @Produce     json
// @Param       body body createReq false "Location, variant and page size"
// @Success     200  {object} surfaceResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Router      /api/v1/listing/surfaces [POST]
func (h *handler) CreateSurface(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	s, outcome := h.reg.create(ctx, req.toInput())
	response.OK(c, h.newSurfaceResp(s, &outcome))
}

// GetSurface godoc
// @Summary     Show a listing surface
// @Description Returns the page, filters, UI flags and product grid a surface currently shows.
// @Tags        Listing
// @Produce     json
// @Param       id path string true "Surface ID"
// @Success     200 {object} surfaceResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/listing/surfaces/{id} [GET]
func (h *handler) GetSurface(c *gin.Context) {
	s, err := h.reg.get(c.Param("id"))
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, h.newSurfaceResp(s, nil))
}

// DeleteSurface godoc
// @Summary     Close a listing surface
// @Tags        Listing
// @Produce     json
// @Param       id path string true "Surface ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/listing/surfaces/{id} [DELETE]
func (h *handler) DeleteSurface(c *gin.Context) {
	if err := h.reg.remove(c.Param("id")); err != nil {
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, nil)
}

// Search godoc
// @Summary     Search products
// @Description Sets the search term and restarts at page 1. An empty query clears it.
// @Tags        Listing
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Surface ID"
// @Param       body body searchReq true "Search term"
// @Success     200  {object} surfaceResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     404  {object} response.Resp "Not Found"
// @Router      /api/v1/listing/surfaces/{id}/search [POST]
func (h *handler) Search(c *gin.Context) {
	req, err := h.processSearchReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	h.act(c, func(ctx context.Context, ctrl listing.Controller) listing.Outcome {
		return ctrl.Search(ctx, req.Query)
	})
}

// FilterCategory godoc
// @Summary     Filter by category
// @Description Constrains results to one category and restarts at page 1. "all" clears the constraint.
// @Tags        Listing
// @Accept      json
// @Produce     json
// @Param       id   path string      true "Surface ID"
// @Param       body body categoryReq true "Category"
// @Success     200  {object} surfaceResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     404  {object} response.Resp "Not Found"
// @Router      /api/v1/listing/surfaces/{id}/category [POST]
func (h *handler) FilterCategory(c *gin.Context) {
	req, err := h.processCategoryReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	h.act(c, func(ctx context.Context, ctrl listing.Controller) listing.Outcome {
		return ctrl.FilterByCategory(ctx, req.Category)
	})
}

// FilterPrice godoc
// @Summary     Filter by price
// @Description Sets both price bounds and restarts at page 1. An empty bound clears it.
// @Tags        Listing
// @Accept      json
// @Produce     json
// @Param       id   path string   true "Surface ID"
// @Param       body body priceReq true "Price bounds"
// @Success     200  {object} surfaceResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     404  {object} response.Resp "Not Found"
// @Router      /api/v1/listing/surfaces/{id}/price [POST]
func (h *handler) FilterPrice(c *gin.Context) {
	req, err := h.processPriceReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	h.act(c, func(ctx context.Context, ctrl listing.Controller) listing.Outcome {
		return ctrl.FilterByPrice(ctx, req.MinPrice, req.MaxPrice)
	})
}

// GoToPage godoc
// @Summary     Jump to a page
// @Tags        Listing
// @Accept      json
// @Produce     json
// @Param       id   path string  true "Surface ID"
// @Param       body body pageReq true "Page number"
// @Success     200  {object} surfaceResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     404  {object} response.Resp "Not Found"
// @Router      /api/v1/listing/surfaces/{id}/page [POST]
func (h *handler) GoToPage(c *gin.Context) {
	req, err := h.processPageReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	h.act(c, func(ctx context.Context, ctrl listing.Controller) listing.Outcome {
		return ctrl.GoToPage(ctx, req.Page)
	})
}

// NextPage godoc
// @Summary     Next page
// @Description Loads the next page. A no-op on the last page.
// @Tags        Listing
// @Produce     json
// @Param       id path string true "Surface ID"
// @Success     200 {object} surfaceResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/listing/surfaces/{id}/next [POST]
func (h *handler) NextPage(c *gin.Context) {
	h.act(c, func(ctx context.Context, ctrl listing.Controller) listing.Outcome {
		return ctrl.NextPage(ctx)
	})
}

// PrevPage godoc
// @Summary     Previous page
// @Description Loads the previous page. A no-op on the first page.
// @Tags        Listing
// @Produce     json
// @Param       id path string true "Surface ID"
// @Success     200 {object} surfaceResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/listing/surfaces/{id}/prev [POST]
func (h *handler) PrevPage(c *gin.Context) {
	h.act(c, func(ctx context.Context, ctrl listing.Controller) listing.Outcome {
		return ctrl.PrevPage(ctx)
	})
}

// Retry godoc
// @Summary     Try again
// @Description Re-issues the last attempted load after a failure.
// @Tags        Listing
// @Produce     json
// @Param       id path string true "Surface ID"
// @Success     200 {object} surfaceResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/listing/surfaces/{id}/retry [POST]
func (h *handler) Retry(c *gin.Context) {
	h.act(c, func(ctx context.Context, ctrl listing.Controller) listing.Outcome {
		return ctrl.Retry(ctx)
	})
}

// Refresh godoc
// @Summary     Refresh
// @Description Drops every cached page and reloads the current one.
// @Tags        Listing
// @Produce     json
// @Param       id path string true "Surface ID"
// @Success     200 {object} surfaceResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/listing/surfaces/{id}/refresh [POST]
func (h *handler) Refresh(c *gin.Context) {
	h.act(c, func(ctx context.Context, ctrl listing.Controller) listing.Outcome {
		return ctrl.Refresh(ctx)
	})
}

// CacheMetrics godoc
// @Summary     Response cache metrics
// @Description Hit, miss and eviction counters plus the cached keys, oldest first.
// @Tags        Listing
// @Produce     json
// @Success     200 {object} cacheMetricsResp
// @Failure     404 {object} response.Resp "Cache disabled"
// @Router      /api/v1/listing/cache [GET]
func (h *handler) CacheMetrics(c *gin.Context) {
	if h.cache == nil {
		response.Error(c, errCacheDisabled)
		return
	}
	response.OK(c, newCacheMetricsResp(h.cache.Metrics(), h.cache.Keys()))
}

// act runs op against the surface named in the path and returns its new state.
func (h *handler) act(c *gin.Context, op func(ctx context.Context, ctrl listing.Controller) listing.Outcome) {
	ctx := c.Request.Context()

	s, err := h.reg.get(c.Param("id"))
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	outcome := op(ctx, s.ctrl)
	if outcome == listing.OutcomeFailed {
		h.l.Warnf(ctx, "listing.delivery: surface %s load failed", s.id)
	}
	response.OK(c, h.newSurfaceResp(s, &outcome))
}
