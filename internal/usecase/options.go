// Package usecase contains the business logic of the accommodation
// resolution core: the priority-chain search coordinator, the concurrent
// multi-location dispatcher, and the plan merge step.
package usecase

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/trip-planner/accommodation-aggregation-system/internal/obs"
)

// DefaultCacheTTL is how long a search result stays fresh in the cache.
const DefaultCacheTTL = 2 * time.Minute

// Config contains configuration options for the use case.
type Config struct {
	// CacheTTL is the freshness window for cached search results.
	// A negative value disables caching entirely.
	CacheTTL time.Duration

	// Logger is used for structured logging; defaults to a no-op logger.
	Logger zerolog.Logger

	// Metrics receives instrumentation; nil disables it.
	Metrics *obs.Metrics
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		CacheTTL: DefaultCacheTTL,
		Logger:   zerolog.Nop(),
	}
}
