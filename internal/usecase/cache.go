package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/trip-planner/accommodation-aggregation-system/internal/domain"
	"github.com/trip-planner/accommodation-aggregation-system/internal/obs"
)

// cacheEntry holds one cached search result. While a computation is in
// flight (ready == false), concurrent callers for the same key register as
// waiters instead of recomputing.
type cacheEntry struct {
	val     []domain.AccommodationOption
	expiry  time.Time
	ready   bool
	waiters []chan []domain.AccommodationOption
}

// resultCache is a TTL cache for search results with request collapsing:
// at most one chain traversal runs per key at a time.
type resultCache struct {
	mu    sync.Mutex
	ttl   time.Duration
	items map[string]*cacheEntry
}

func newResultCache(ttl time.Duration) *resultCache {
	return &resultCache{
		ttl:   ttl,
		items: make(map[string]*cacheEntry),
	}
}

// GetOrCompute returns the cached value for key, joining an in-flight
// computation when one exists, or runs fn and caches its result.
// The returned slice is an independent copy; callers may mutate it.
func (c *resultCache) GetOrCompute(ctx context.Context, key string, fn func(ctx context.Context) []domain.AccommodationOption, metrics *obs.Metrics) ([]domain.AccommodationOption, error) {
	c.mu.Lock()
	entry, found := c.items[key]
	now := time.Now()

	// Fresh hit.
	if found && entry.ready && now.Before(entry.expiry) {
		val := domain.CloneOptions(entry.val)
		c.mu.Unlock()
		metrics.IncCacheHits()
		return val, nil
	}

	// Computation in progress: join the waiters.
	if found && !entry.ready {
		ch := make(chan []domain.AccommodationOption, 1)
		entry.waiters = append(entry.waiters, ch)
		c.mu.Unlock()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case val := <-ch:
			metrics.IncCacheHits()
			return domain.CloneOptions(val), nil
		}
	}

	// Stale or missing: this goroutine computes.
	entry = &cacheEntry{}
	c.items[key] = entry
	c.mu.Unlock()

	val := fn(ctx)

	c.mu.Lock()
	entry.val = val
	entry.expiry = time.Now().Add(c.ttl)
	entry.ready = true
	waiters := entry.waiters
	entry.waiters = nil
	c.mu.Unlock()

	for _, ch := range waiters {
		ch <- val
	}

	return domain.CloneOptions(val), nil
}

// cacheKey builds a canonical key from every parameter that affects the
// search result, including post-filters.
func cacheKey(params domain.SearchParams) string {
	var b strings.Builder
	b.WriteString(params.DestinationKey())
	b.WriteString("|")
	b.WriteString(params.CheckIn)
	b.WriteString("|")
	b.WriteString(params.CheckOut)
	fmt.Fprintf(&b, "|g%d", params.Guests)
	if params.MaxNightlyPriceINR != nil {
		fmt.Fprintf(&b, "|b%d", *params.MaxNightlyPriceINR)
	}
	if len(params.PreferredCategories) > 0 {
		categories := make([]string, 0, len(params.PreferredCategories))
		for _, c := range params.PreferredCategories {
			categories = append(categories, string(c))
		}
		sort.Strings(categories)
		b.WriteString("|c")
		b.WriteString(strings.Join(categories, ","))
	}
	if params.LocationCode != "" {
		b.WriteString("|l")
		b.WriteString(params.LocationCode)
	}
	if params.Lat != nil {
		fmt.Fprintf(&b, "|lat%v", *params.Lat)
	}
	if params.Lng != nil {
		fmt.Fprintf(&b, "|lng%v", *params.Lng)
	}
	return b.String()
}
