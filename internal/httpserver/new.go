package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	listingHTTP "marketplace-browser/internal/listing/delivery/http"
	"marketplace-browser/internal/listing/cache"
	"marketplace-browser/internal/listing/repository"
	"marketplace-browser/internal/middleware"
	"marketplace-browser/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	middleware  middleware.Config

	// Listing domain
	fetcher repository.Fetcher
	cache   cache.Store
	listing listingHTTP.Options
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	Middleware  middleware.Config

	// Listing domain. Cache may be nil.
	Fetcher repository.Fetcher
	Cache   cache.Store
	Listing listingHTTP.Options
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		middleware:  cfg.Middleware,
		fetcher:     cfg.Fetcher,
		cache:       cfg.Cache,
		listing:     cfg.Listing,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.fetcher == nil {
		return errors.New("product fetcher is required")
	}
	return nil
}
