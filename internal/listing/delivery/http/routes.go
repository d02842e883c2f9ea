package http

import (
	"github.com/gin-gonic/gin"

	"marketplace-browser/internal/middleware"
)

// RegisterRoutes maps the listing surface API onto rg. Surface routes are rate limited per client.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.GET("/cache", h.CacheMetrics)

	surfaces := rg.Group("/surfaces", mw.RateLimit())
	{
		surfaces.POST("", h.CreateSurface)
		surfaces.GET("/:id", h.GetSurface)
		surfaces.DELETE("/:id", h.DeleteSurface)
		surfaces.POST("/:id/search", h.Search)
		surfaces.POST("/:id/category", h.FilterCategory)
		surfaces.POST("/:id/price", h.FilterPrice)
		surfaces.POST("/:id/page", h.GoToPage)
		surfaces.POST("/:id/next", h.NextPage)
		surfaces.POST("/:id/prev", h.PrevPage)
		surfaces.POST("/:id/retry", h.Retry)
		surfaces.POST("/:id/refresh", h.Refresh)
	}
}
