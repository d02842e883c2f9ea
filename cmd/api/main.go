package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"marketplace-browser/config"
	_ "marketplace-browser/docs" // Swagger docs
	"marketplace-browser/internal/httpserver"
	"marketplace-browser/internal/listing"
	"marketplace-browser/internal/listing/cache"
	"marketplace-browser/internal/listing/cache/rediscache"
	listingHTTP "marketplace-browser/internal/listing/delivery/http"
	"marketplace-browser/internal/listing/repository"
	"marketplace-browser/internal/listing/repository/httpapi"
	"marketplace-browser/internal/middleware"
	"marketplace-browser/internal/model"
	"marketplace-browser/pkg/log"
)

// @title       Marketplace Browser API
// @description Headless paginated product listings over the marketplace product API.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Marketplace Browser...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Product API: %s", cfg.API.BaseURL)

	// 3. Product fetcher
	session := model.Session{
		AccessToken:  cfg.API.AccessToken,
		RefreshToken: cfg.API.RefreshToken,
	}
	if !session.Authorized() {
		logger.Warn(ctx, "No API access token configured, browsing anonymously")
	}

	client := httpapi.NewClient(repository.FetcherOptions{
		BaseURL:    cfg.API.BaseURL,
		Timeout:    cfg.API.Timeout,
		RatePerSec: cfg.API.RateLimitPerSec,
		Burst:      cfg.API.Burst,
		Session:    session,
	})
	fetcher := httpapi.New(client, logger)

	// 4. Shared response cache (optional)
	var responseCache cache.Store
	if cfg.Listing.CacheEnabled {
		cacheOpt := cache.Options{Capacity: cfg.Listing.CacheCapacity, TTL: cfg.Listing.CacheTTL}
		switch cfg.Listing.CacheBackend {
		case "redis":
			rdb, err := rediscache.Connect(ctx, cfg.Redis.URL)
			if err != nil {
				logger.Error(ctx, "Failed to connect to Redis: ", err)
				return
			}
			defer rdb.Close()
			responseCache = rediscache.New(logger, rdb, rediscache.Options{Options: cacheOpt, Prefix: cfg.Redis.Prefix})
		default:
			responseCache = cache.New(logger, cacheOpt)
		}
		logger.Infof(ctx, "Response cache enabled: backend=%s capacity=%d ttl=%s",
			cfg.Listing.CacheBackend, cfg.Listing.CacheCapacity, cfg.Listing.CacheTTL)
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware: middleware.Config{
			RateLimitPerMin:  cfg.Middleware.RateLimitPerMin,
			CORSAllowOrigins: cfg.Middleware.CORSAllowOrigins,
		},
		Fetcher: fetcher,
		Cache:   responseCache,
		Listing: listingHTTP.Options{
			PageLimit:   cfg.Listing.PageLimit,
			Variant:     listing.Variant(cfg.Listing.Variant),
			MaxSurfaces: cfg.Listing.MaxSurfaces,
			SurfaceTTL:  cfg.Listing.SurfaceTTL,
		},
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
