package usecase

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/trip-planner/accommodation-aggregation-system/internal/domain"
)

func TestResultCache_HitWithinTTL(t *testing.T) {
	cache := newResultCache(time.Minute)

	var calls int32
	fn := func(context.Context) []domain.AccommodationOption {
		atomic.AddInt32(&calls, 1)
		return []domain.AccommodationOption{pricedOption("a", domain.CategoryHotel, 2000)}
	}

	first, err := cache.GetOrCompute(context.Background(), "k", fn, nil)
	require.NoError(t, err)
	second, err := cache.GetOrCompute(context.Background(), "k", fn, nil)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestResultCache_ExpiryRecomputes(t *testing.T) {
	cache := newResultCache(time.Millisecond)

	var calls int32
	fn := func(context.Context) []domain.AccommodationOption {
		atomic.AddInt32(&calls, 1)
		return []domain.AccommodationOption{}
	}

	_, err := cache.GetOrCompute(context.Background(), "k", fn, nil)
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	_, err = cache.GetOrCompute(context.Background(), "k", fn, nil)
	require.NoError(t, err)

	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

// TestResultCache_CollapsesConcurrentRequests verifies that concurrent
// callers for the same key share a single computation.
func TestResultCache_CollapsesConcurrentRequests(t *testing.T) {
	cache := newResultCache(time.Minute)

	var calls int32
	started := make(chan struct{})
	release := make(chan struct{})
	fn := func(context.Context) []domain.AccommodationOption {
		atomic.AddInt32(&calls, 1)
		close(started)
		<-release
		return []domain.AccommodationOption{pricedOption("a", domain.CategoryHotel, 2000)}
	}

	var wg sync.WaitGroup
	results := make([][]domain.AccommodationOption, 5)
	wg.Add(1)
	go func() {
		defer wg.Done()
		results[0], _ = cache.GetOrCompute(context.Background(), "k", fn, nil)
	}()

	<-started
	for i := 1; i < 5; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = cache.GetOrCompute(context.Background(), "k", fn, nil)
		}(i)
	}

	// Give the joiners time to register as waiters before releasing.
	time.Sleep(10 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	for i := range results {
		require.Len(t, results[i], 1)
		assert.Equal(t, "a", results[i][0].ID)
	}
}

// TestResultCache_ReturnsIndependentCopies guards against a caller's
// mutation leaking into the cached value.
func TestResultCache_ReturnsIndependentCopies(t *testing.T) {
	cache := newResultCache(time.Minute)

	fn := func(context.Context) []domain.AccommodationOption {
		return []domain.AccommodationOption{pricedOption("a", domain.CategoryHotel, 2000)}
	}

	first, err := cache.GetOrCompute(context.Background(), "k", fn, nil)
	require.NoError(t, err)
	first[0].Name = "mutated"

	second, err := cache.GetOrCompute(context.Background(), "k", fn, nil)
	require.NoError(t, err)
	assert.Equal(t, "Option a", second[0].Name)
}

func TestCacheKey(t *testing.T) {
	base := domain.SearchParams{
		Destination: "Manali",
		CheckIn:     "2026-10-01",
		CheckOut:    "2026-10-04",
		Guests:      2,
	}

	t.Run("case and whitespace insensitive destination", func(t *testing.T) {
		other := base
		other.Destination = "  MANALI "
		assert.Equal(t, cacheKey(base), cacheKey(other))
	})

	t.Run("budget changes the key", func(t *testing.T) {
		other := base
		other.MaxNightlyPriceINR = intPtr(2000)
		assert.NotEqual(t, cacheKey(base), cacheKey(other))
	})

	t.Run("category order is canonicalized", func(t *testing.T) {
		a := base
		a.PreferredCategories = []domain.LodgingCategory{domain.CategoryHotel, domain.CategoryCamp}
		b := base
		b.PreferredCategories = []domain.LodgingCategory{domain.CategoryCamp, domain.CategoryHotel}
		assert.Equal(t, cacheKey(a), cacheKey(b))
	})

	t.Run("guests change the key", func(t *testing.T) {
		other := base
		other.Guests = 4
		assert.NotEqual(t, cacheKey(base), cacheKey(other))
	})

	t.Run("coordinates change the key", func(t *testing.T) {
		other := base
		other.Lat = floatPtr(32.2396)
		other.Lng = floatPtr(77.1887)
		assert.NotEqual(t, cacheKey(base), cacheKey(other))
	})

	t.Run("different coordinates differ", func(t *testing.T) {
		a := base
		a.Lat = floatPtr(32.2396)
		a.Lng = floatPtr(77.1887)
		b := base
		b.Lat = floatPtr(32.2521)
		b.Lng = floatPtr(77.1743)
		assert.NotEqual(t, cacheKey(a), cacheKey(b))
	})
}

// TestSearch_CoordinatesBypassCachedDestination verifies that a request
// carrying explicit coordinates does not reuse a result cached for the same
// destination without them.
func TestSearch_CoordinatesBypassCachedDestination(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p := provider(ctrl, "opentripmap", true)
	p.EXPECT().Search(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, params domain.SearchParams) ([]domain.AccommodationOption, error) {
			id := "geocoded"
			if params.Lat != nil {
				id = "pinned"
			}
			return []domain.AccommodationOption{pricedOption(id, domain.CategoryHotel, 1800)}, nil
		}).Times(2)

	uc := New(domain.NewChain(p), &Config{CacheTTL: time.Minute})

	params := searchParams()
	first, err := uc.Search(context.Background(), params)
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, "geocoded", first[0].ID)

	params.Lat = floatPtr(32.2396)
	params.Lng = floatPtr(77.1887)
	second, err := uc.Search(context.Background(), params)
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, "pinned", second[0].ID)
}
