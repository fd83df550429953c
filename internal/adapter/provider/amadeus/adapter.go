// Package amadeus implements the Amadeus hotel provider, the highest
// priority entry in the chain and the only one with live pricing.
//
// It uses two Amadeus Self-Service endpoints:
//
//	Hotel List   GET /v1/reference-data/locations/hotels/by-city
//	Hotel Offers GET /v3/shopping/hotel-offers
//
// Auth is OAuth2 client_credentials; tokens last about 30 minutes and are
// cached across searches. Amadeus requires IATA city codes, so destinations
// without an airport produce no results and the chain falls through.
package amadeus

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/trip-planner/accommodation-aggregation-system/internal/domain"
	"github.com/trip-planner/accommodation-aggregation-system/internal/infrastructure/retry"
	"github.com/trip-planner/accommodation-aggregation-system/internal/infrastructure/timeutil"
)

// DefaultBaseURL is the Amadeus sandbox endpoint. Production uses
// https://api.amadeus.com with production credentials.
const DefaultBaseURL = "https://test.api.amadeus.com"

// DefaultTimeout bounds each upstream HTTP call.
const DefaultTimeout = 15 * time.Second

// maxHotelIDs caps how many hotel IDs are passed to the offers endpoint.
const maxHotelIDs = 20

// Config holds the Amadeus provider configuration.
type Config struct {
	ClientID     string
	ClientSecret string
	BaseURL      string
	Timeout      time.Duration
}

// Adapter implements domain.AccommodationProvider against the Amadeus API.
type Adapter struct {
	cfg      Config
	client   *http.Client
	log      zerolog.Logger
	tokens   *tokenCache
	retryCfg retry.Config
}

// New creates an Amadeus Adapter. The clock parameterizes token expiry for
// tests; pass nil for system time.
func New(cfg Config, log zerolog.Logger, clock timeutil.Clock) *Adapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Adapter{
		cfg:      cfg,
		client:   &http.Client{Timeout: cfg.Timeout},
		log:      log,
		tokens:   newTokenCache(clock),
		retryCfg: retry.ProviderConfig.WithRetryIf(retry.SkipPermanent),
	}
}

// Name implements domain.AccommodationProvider.
func (a *Adapter) Name() string {
	return ProviderName
}

// Available implements domain.AccommodationProvider. The provider is usable
// only when both OAuth2 credentials are configured.
func (a *Adapter) Available() bool {
	return a.cfg.ClientID != "" && a.cfg.ClientSecret != ""
}

// Search implements domain.AccommodationProvider. Destinations without an
// IATA code yield an empty result so the chain can fall through.
func (a *Adapter) Search(ctx context.Context, params domain.SearchParams) ([]domain.AccommodationOption, error) {
	ctx, cancel := context.WithTimeout(ctx, a.cfg.Timeout)
	defer cancel()

	code := strings.ToUpper(strings.TrimSpace(params.LocationCode))
	if code == "" {
		code = resolveIATA(params.Destination)
	}
	if code == "" {
		a.log.Debug().
			Str("destination", params.Destination).
			Msg("No IATA code for destination")
		return []domain.AccommodationOption{}, nil
	}

	token, err := a.tokens.get(ctx, a.fetchToken)
	if err != nil {
		return nil, fmt.Errorf("amadeus auth: %w", err)
	}

	hotelIDs, err := a.listHotels(ctx, token, code)
	if err != nil {
		return nil, err
	}
	if len(hotelIDs) == 0 {
		a.log.Debug().Str("city_code", code).Msg("No hotels listed for city")
		return []domain.AccommodationOption{}, nil
	}

	offers, err := a.fetchOffers(ctx, token, hotelIDs, params)
	if err != nil {
		return nil, err
	}

	return normalize(offers), nil
}

// listHotels returns up to maxHotelIDs hotel IDs for the IATA city code.
func (a *Adapter) listHotels(ctx context.Context, token, cityCode string) ([]string, error) {
	query := url.Values{
		"cityCode":   {cityCode},
		"radius":     {"20"},
		"radiusUnit": {"KM"},
	}

	var body hotelListResponse
	if err := a.getJSON(ctx, "/v1/reference-data/locations/hotels/by-city", query, token, &body); err != nil {
		return nil, fmt.Errorf("amadeus hotel list: %w", err)
	}

	ids := make([]string, 0, maxHotelIDs)
	for _, h := range body.Data {
		if h.HotelID == "" {
			continue
		}
		ids = append(ids, h.HotelID)
		if len(ids) == maxHotelIDs {
			break
		}
	}
	return ids, nil
}

// fetchOffers returns availability and pricing for the given hotel IDs.
func (a *Adapter) fetchOffers(ctx context.Context, token string, hotelIDs []string, params domain.SearchParams) ([]hotelOffers, error) {
	query := url.Values{
		"hotelIds":     {strings.Join(hotelIDs, ",")},
		"checkInDate":  {params.CheckIn},
		"checkOutDate": {params.CheckOut},
		"adults":       {fmt.Sprintf("%d", params.Guests)},
		"currency":     {"INR"},
		"bestRateOnly": {"true"},
	}

	var body offersResponse
	if err := a.getJSON(ctx, "/v3/shopping/hotel-offers", query, token, &body); err != nil {
		return nil, fmt.Errorf("amadeus hotel offers: %w", err)
	}
	return body.Data, nil
}

// getJSON performs an authorized GET with retries and decodes the response
// into out. Client errors (4xx) are permanent; server errors are retried.
func (a *Adapter) getJSON(ctx context.Context, path string, query url.Values, token string, out any) error {
	return retry.Do(ctx, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet,
			a.cfg.BaseURL+path+"?"+query.Encode(), nil)
		if err != nil {
			return retry.NewPermanent(err)
		}
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := a.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 500 {
			return fmt.Errorf("status %d", resp.StatusCode)
		}
		if resp.StatusCode != http.StatusOK {
			return retry.NewPermanent(fmt.Errorf("status %d", resp.StatusCode))
		}

		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return retry.NewPermanent(fmt.Errorf("decode response: %w", err))
		}
		return nil
	}, a.retryCfg)
}

var _ domain.AccommodationProvider = (*Adapter)(nil)
