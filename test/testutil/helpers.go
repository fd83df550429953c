// Package testutil provides test helper functions for unit and integration tests.
package testutil

import (
	"testing"
	"time"

	"github.com/trip-planner/accommodation-aggregation-system/internal/domain"
)

// MustParseDate parses a date string in YYYY-MM-DD format.
// It fails the test if parsing fails.
func MustParseDate(t *testing.T, dateStr string) time.Time {
	t.Helper()
	parsed, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		t.Fatalf("Failed to parse date %s: %v", dateStr, err)
	}
	return parsed
}

// Ptr returns a pointer to the given value.
// Useful for creating pointers to literals in tests.
func Ptr[T any](v T) *T {
	return &v
}

// IntPtr returns a pointer to an int.
// Convenience function for budget filter tests.
func IntPtr(i int) *int {
	return &i
}

// FloatPtr returns a pointer to a float64.
// Convenience function for coordinate tests.
func FloatPtr(f float64) *float64 {
	return &f
}

// Categories builds a lodging category slice from string values.
// Unknown values fail the test.
func Categories(t *testing.T, values ...string) []domain.LodgingCategory {
	t.Helper()
	categories := make([]domain.LodgingCategory, 0, len(values))
	for _, v := range values {
		c, ok := domain.ParseLodgingCategory(v)
		if !ok {
			t.Fatalf("Unknown lodging category %q", v)
		}
		categories = append(categories, c)
	}
	return categories
}
