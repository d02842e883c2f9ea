package middleware

import (
	"marketplace-browser/pkg/log"
)

// Config configures the shared middlewares.
type Config struct {
	RateLimitPerMin  int      // per client IP; 0 disables limiting
	CORSAllowOrigins []string // empty disables CORS headers
}

type Middleware struct {
	l           log.Logger
	limiter     *rateLimiter
	corsOrigins []string
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{l: l, corsOrigins: cfg.CORSAllowOrigins}
	if cfg.RateLimitPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RateLimitPerMin)
	}
	return mw
}
