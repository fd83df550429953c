// Package http provides the HTTP handler layer for the accommodation search API.
package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers all accommodation API routes.
// It creates a versioned API group and attaches the handler methods.
func RegisterRoutes(e *echo.Echo, h *AccommodationHandler) {
	// Health check endpoint (no version prefix)
	e.GET("/health", h.Health)

	// API v1 group
	api := e.Group("/api/v1")

	accommodations := api.Group("/accommodations")
	accommodations.POST("/search", h.SearchAccommodations)

	itineraries := api.Group("/itineraries")
	itineraries.POST("/enrich", h.EnrichItinerary)
}
