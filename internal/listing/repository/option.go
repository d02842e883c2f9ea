package repository

import (
	"time"

	"marketplace-browser/internal/model"
)

// FetcherOptions configures the HTTP-backed Fetcher.
type FetcherOptions struct {
	BaseURL    string        // e.g. "http://localhost:5000/api"
	Timeout    time.Duration // per request; 0 means no timeout
	RatePerSec float64       // client-side throttle; <= 0 disables it
	Burst      int
	Session    model.Session // credentials; zero value fetches anonymously
}
