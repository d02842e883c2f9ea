package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"marketplace-browser/internal/listing"
	"marketplace-browser/internal/listing/cache"
	"marketplace-browser/internal/listing/repository"
	"marketplace-browser/pkg/log"
)

// Handler is the public interface for the listing HTTP delivery layer.
type Handler interface {
	CreateSurface(c *gin.Context)
	GetSurface(c *gin.Context)
	DeleteSurface(c *gin.Context)
	Search(c *gin.Context)
	FilterCategory(c *gin.Context)
	FilterPrice(c *gin.Context)
	GoToPage(c *gin.Context)
	NextPage(c *gin.Context)
	PrevPage(c *gin.Context)
	Retry(c *gin.Context)
	Refresh(c *gin.Context)
	CacheMetrics(c *gin.Context)
}

// Options sizes the surface registry.
type Options struct {
	PageLimit   int
	Variant     listing.Variant
	MaxSurfaces int
	SurfaceTTL  time.Duration
}

type handler struct {
	l     log.Logger
	reg   *registry
	cache cache.Store
}

var _ Handler = (*handler)(nil)

// New creates the listing HTTP handler. c may be nil to run without a response cache.
func New(l log.Logger, fetcher repository.Fetcher, c cache.Store, opt Options) *handler {
	return &handler{
		l:     l,
		reg:   newRegistry(l, fetcher, c, opt),
		cache: c,
	}
}
