package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"marketplace-browser/config"
	"marketplace-browser/internal/listing"
	"marketplace-browser/internal/listing/cache"
	"marketplace-browser/internal/listing/cache/rediscache"
	"marketplace-browser/internal/listing/controller"
	"marketplace-browser/internal/listing/render"
	"marketplace-browser/internal/listing/repository"
	"marketplace-browser/internal/listing/repository/httpapi"
	"marketplace-browser/internal/listing/urlsync"
	"marketplace-browser/internal/model"
	"marketplace-browser/pkg/log"
)

var flags struct {
	location string
	variant  string
	noCache  bool
	logLevel string
}

var rootCmd = &cobra.Command{
	Use:           "browse",
	Short:         "Browse the product catalogue page by page from a terminal",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVarP(&flags.location, "location", "l", "/explore", `starting location, e.g. "/explore?page=2&q=lamp"`)
	rootCmd.Flags().StringVar(&flags.variant, "variant", "", "card layout: explore, seller or recommended (defaults to config)")
	rootCmd.Flags().BoolVar(&flags.noCache, "no-cache", false, "disable the response cache")
	rootCmd.Flags().StringVar(&flags.logLevel, "log-level", "warn", "log level written to stderr")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := log.Init(log.ZapConfig{
		Level:        flags.logLevel,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	variant := listing.Variant(cfg.Listing.Variant)
	if flags.variant != "" {
		variant = listing.Variant(flags.variant)
	}
	if !variant.Valid() {
		return fmt.Errorf("unknown variant %q", variant)
	}

	client := httpapi.NewClient(repository.FetcherOptions{
		BaseURL:    cfg.API.BaseURL,
		Timeout:    cfg.API.Timeout,
		RatePerSec: cfg.API.RateLimitPerSec,
		Burst:      cfg.API.Burst,
		Session: model.Session{
			AccessToken:  cfg.API.AccessToken,
			RefreshToken: cfg.API.RefreshToken,
		},
	})

	var responseCache listing.Cache
	if cfg.Listing.CacheEnabled && !flags.noCache {
		cacheOpt := cache.Options{Capacity: cfg.Listing.CacheCapacity, TTL: cfg.Listing.CacheTTL}
		if cfg.Listing.CacheBackend == "redis" {
			rdb, err := rediscache.Connect(ctx, cfg.Redis.URL)
			if err != nil {
				return err
			}
			defer rdb.Close()
			responseCache = rediscache.New(logger, rdb, rediscache.Options{Options: cacheOpt, Prefix: cfg.Redis.Prefix})
		} else {
			responseCache = cache.New(logger, cacheOpt)
		}
	}

	out := cmd.OutOrStdout()
	loc := urlsync.NewMemoryLocation(flags.location)
	ctrl := controller.New(
		logger,
		httpapi.New(client, logger),
		render.NewText(out),
		responseCache,
		urlsync.New(loc),
		controller.Options{Variant: variant, Limit: cfg.Listing.PageLimit},
	)

	sess := &session{ctrl: ctrl, loc: loc, out: out}
	return sess.run(ctx, cmd.InOrStdin())
}
