// Package http provides the HTTP handler layer for the accommodation search API.
// It handles request parsing, validation, response formatting, and error mapping.
package http

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/trip-planner/accommodation-aggregation-system/internal/adapter/http/response"
	"github.com/trip-planner/accommodation-aggregation-system/internal/domain"
	"github.com/trip-planner/accommodation-aggregation-system/internal/usecase"
)

// AccommodationHandler handles HTTP requests for accommodation endpoints.
type AccommodationHandler struct {
	useCase usecase.AccommodationUseCase
}

// NewAccommodationHandler creates a new AccommodationHandler with the given use case.
func NewAccommodationHandler(uc usecase.AccommodationUseCase) *AccommodationHandler {
	return &AccommodationHandler{
		useCase: uc,
	}
}

// SearchAccommodations handles POST /api/v1/accommodations/search
//
// @Summary Search accommodation options
// @Description Resolve lodging options for a destination via the provider chain
// @Tags accommodations
// @Accept json
// @Produce json
// @Param request body SearchAccommodationsRequest true "Search criteria"
// @Success 200 {object} SearchResponseDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 503 {object} response.ErrorDetail "Service unavailable"
// @Failure 504 {object} response.ErrorDetail "Gateway timeout"
// @Router /api/v1/accommodations/search [post]
func (h *AccommodationHandler) SearchAccommodations(c echo.Context) error {
	var req SearchAccommodationsRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	params := ToSearchParams(&req)

	options, err := h.useCase.Search(c.Request().Context(), params)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.SearchResults(c, &SearchResponseDTO{
		SearchCriteria: SearchCriteriaDTO{
			Destination:         params.Destination,
			CheckIn:             params.CheckIn,
			CheckOut:            params.CheckOut,
			Guests:              params.Guests,
			MaxNightlyPriceINR:  params.MaxNightlyPriceINR,
			PreferredCategories: req.PreferredCategories,
		},
		TotalResults: len(options),
		Options:      options,
	})
}

// EnrichItinerary handles POST /api/v1/itineraries/enrich
//
// @Summary Enrich an itinerary with live accommodation options
// @Description Attach resolved lodging options to each plan day by its overnight location
// @Tags itineraries
// @Accept json
// @Produce json
// @Param request body EnrichItineraryRequest true "Plan days and stay parameters"
// @Success 200 {object} EnrichResponseDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 504 {object} response.ErrorDetail "Gateway timeout"
// @Router /api/v1/itineraries/enrich [post]
func (h *AccommodationHandler) EnrichItinerary(c echo.Context) error {
	var req EnrichItineraryRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	days := ToDomainDays(req.Days)
	stay := ToStayParams(&req)

	enriched, err := h.useCase.EnrichPlan(c.Request().Context(), days, stay)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, &EnrichResponseDTO{
		Days:               FromDomainDays(enriched),
		OvernightLocations: usecase.UniqueOvernightLocations(enriched),
	})
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *AccommodationHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	// Fallback for non-structured validation errors
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to appropriate HTTP responses.
func (h *AccommodationHandler) handleError(c echo.Context, err error) error {
	if errors.Is(err, domain.ErrNoProvidersConfigured) {
		return response.ServiceUnavailable(c)
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return response.GatewayTimeout(c)
	}

	if errors.Is(err, context.Canceled) {
		return response.RequestCancelled(c)
	}

	if errors.Is(err, domain.ErrInvalidRequest) {
		return response.ValidationErrorWithMessage(c, err.Error())
	}

	return response.InternalServerError(c)
}

// Health handles GET /health
// Simple health check endpoint.
func (h *AccommodationHandler) Health(c echo.Context) error {
	return response.Health(c)
}
