// Package integration provides helpers and integration tests for the
// accommodation search system. Integration tests verify that components work
// together correctly, including HTTP handlers, the resolution core, and mock
// providers.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/labstack/echo/v4"

	httpAdapter "github.com/trip-planner/accommodation-aggregation-system/internal/adapter/http"
	"github.com/trip-planner/accommodation-aggregation-system/internal/domain"
	"github.com/trip-planner/accommodation-aggregation-system/internal/usecase"
)

// TestServer wraps an Echo instance and provides helper methods for
// integration testing.
type TestServer struct {
	Echo    *echo.Echo
	Handler *httpAdapter.AccommodationHandler
}

// NewTestServer creates a new test server with the given use case.
func NewTestServer(uc usecase.AccommodationUseCase) *TestServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	handler := httpAdapter.NewAccommodationHandler(uc)
	httpAdapter.RegisterRoutes(e, handler)

	return &TestServer{
		Echo:    e,
		Handler: handler,
	}
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method      string
	Path        string
	Body        interface{}
	ContentType string
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(req Request) Response {
	var bodyReader *bytes.Reader
	if req.Body != nil {
		bodyBytes, _ := json.Marshal(req.Body)
		bodyReader = bytes.NewReader(bodyBytes)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bodyReader)

	if req.ContentType != "" {
		httpReq.Header.Set(echo.HeaderContentType, req.ContentType)
	} else if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// SearchRequest makes an accommodation search request with the given body.
func (ts *TestServer) SearchRequest(body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/accommodations/search",
		Body:   body,
	})
}

// EnrichRequest makes an itinerary enrichment request with the given body.
func (ts *TestServer) EnrichRequest(body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/itineraries/enrich",
		Body:   body,
	})
}

// HealthRequest makes a health check request.
func (ts *TestServer) HealthRequest() Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/health",
	})
}

// ParseSearchResponse parses the response body as a SearchResponseDTO.
func (r *Response) ParseSearchResponse() (*httpAdapter.SearchResponseDTO, error) {
	var resp httpAdapter.SearchResponseDTO
	if err := json.Unmarshal(r.Body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ParseEnrichResponse parses the response body as an EnrichResponseDTO.
func (r *Response) ParseEnrichResponse() (*httpAdapter.EnrichResponseDTO, error) {
	var resp httpAdapter.EnrichResponseDTO
	if err := json.Unmarshal(r.Body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ParseError parses the response body to extract error information.
func (r *Response) ParseError() (map[string]interface{}, error) {
	var errResp map[string]interface{}
	if err := json.Unmarshal(r.Body, &errResp); err != nil {
		return nil, err
	}
	return errResp, nil
}

// DefaultSearchRequest returns a valid search request body for testing.
func DefaultSearchRequest() httpAdapter.SearchAccommodationsRequest {
	return httpAdapter.SearchAccommodationsRequest{
		Destination: "Manali",
		CheckIn:     "2026-10-01",
		CheckOut:    "2026-10-04",
		Guests:      2,
	}
}

// CreateUseCase creates a use case over the given provider chain with
// caching disabled, so every request exercises the chain.
func CreateUseCase(providers ...domain.AccommodationProvider) usecase.AccommodationUseCase {
	return usecase.New(domain.NewChain(providers...), &usecase.Config{
		CacheTTL: -1,
	})
}

// CreateUseCaseWithConfig creates a use case with custom configuration.
func CreateUseCaseWithConfig(config *usecase.Config, providers ...domain.AccommodationProvider) usecase.AccommodationUseCase {
	return usecase.New(domain.NewChain(providers...), config)
}

// DefaultSearchParams returns valid search parameters for exercising the
// use case directly.
func DefaultSearchParams() domain.SearchParams {
	return domain.SearchParams{
		Destination: "Manali",
		CheckIn:     "2026-10-01",
		CheckOut:    "2026-10-04",
		Guests:      2,
	}
}

// DefaultStayParams returns valid stay parameters for enrichment tests.
func DefaultStayParams() domain.StayParams {
	return domain.StayParams{
		CheckIn:  "2026-10-01",
		CheckOut: "2026-10-04",
		Guests:   2,
	}
}
