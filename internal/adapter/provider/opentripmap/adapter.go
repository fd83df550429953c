// Package opentripmap implements the OpenTripMap lodging provider, the
// location-discovery fallback behind Amadeus.
//
// OpenTripMap serves OSM-sourced lodging listings near coordinates: name,
// position, category, and a popularity score. It has no pricing data, so
// every option it produces carries an unknown price. It shines for
// destinations without an IATA code (Manali, Rishikesh, Spiti, Hampi and the
// like) where Amadeus cannot search at all.
//
// Free tier: 1,000 calls/day, key from https://opentripmap.io/register.
package opentripmap

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/trip-planner/accommodation-aggregation-system/internal/domain"
	"github.com/trip-planner/accommodation-aggregation-system/internal/infrastructure/retry"
)

// DefaultBaseURL is the public OpenTripMap API endpoint.
const DefaultBaseURL = "https://api.opentripmap.com/0.1/en"

// DefaultTimeout bounds each upstream HTTP call.
const DefaultTimeout = 15 * time.Second

// lodgingKinds is the OpenTripMap kinds filter for lodging. The missing "m"
// is intentional; that is how the upstream API spells it.
const lodgingKinds = "accomodations"

// searchRadiusMeters is how far around the destination centre to look.
const searchRadiusMeters = 5000

// maxPlaces caps the radius search result size.
const maxPlaces = 20

// maxDetailFetches caps per-place detail lookups to limit API calls.
const maxDetailFetches = 10

// Config holds the OpenTripMap provider configuration.
type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// Adapter implements domain.AccommodationProvider against OpenTripMap.
type Adapter struct {
	cfg      Config
	client   *http.Client
	log      zerolog.Logger
	retryCfg retry.Config
}

// New creates an OpenTripMap Adapter.
func New(cfg Config, log zerolog.Logger) *Adapter {
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
		retryCfg: retry.ProviderConfig.WithRetryIf(retry.SkipPermanent),
	}
}

// Name implements domain.AccommodationProvider.
func (a *Adapter) Name() string {
	return ProviderName
}

// Available implements domain.AccommodationProvider.
func (a *Adapter) Available() bool {
	return a.cfg.APIKey != ""
}

// Search implements domain.AccommodationProvider. Destinations that cannot
// be geocoded yield an empty result so the chain can fall through.
func (a *Adapter) Search(ctx context.Context, params domain.SearchParams) ([]domain.AccommodationOption, error) {
	ctx, cancel := context.WithTimeout(ctx, a.cfg.Timeout)
	defer cancel()

	c, ok := resolveCoords(params)
	if !ok {
		a.log.Debug().
			Str("destination", params.Destination).
			Msg("No coordinates for destination")
		return []domain.AccommodationOption{}, nil
	}

	places, err := a.fetchPlaces(ctx, c)
	if err != nil {
		return nil, err
	}
	if len(places) == 0 {
		return []domain.AccommodationOption{}, nil
	}

	if len(places) > maxDetailFetches {
		places = places[:maxDetailFetches]
	}

	options := make([]domain.AccommodationOption, 0, len(places))
	for _, p := range places {
		var detail placeDetail
		if p.XID != "" {
			// Detail failures degrade to the radius data alone.
			if d, err := a.fetchDetail(ctx, p.XID); err == nil {
				detail = d
			} else {
				a.log.Debug().Err(err).Str("xid", p.XID).Msg("Place detail fetch failed")
			}
		}

		if opt, ok := mapPlace(p, detail, params.Destination); ok {
			options = append(options, opt)
		}
	}

	return options, nil
}

// fetchPlaces runs the radius search around the destination centre.
func (a *Adapter) fetchPlaces(ctx context.Context, c coords) ([]place, error) {
	query := url.Values{
		"radius": {strconv.Itoa(searchRadiusMeters)},
		"lon":    {strconv.FormatFloat(c.Lng, 'f', -1, 64)},
		"lat":    {strconv.FormatFloat(c.Lat, 'f', -1, 64)},
		"kinds":  {lodgingKinds},
		"limit":  {strconv.Itoa(maxPlaces)},
		"format": {"json"},
		"apikey": {a.cfg.APIKey},
	}

	var places []place
	if err := a.getJSON(ctx, "/places/radius", query, &places); err != nil {
		return nil, fmt.Errorf("opentripmap radius search: %w", err)
	}
	return places, nil
}

// fetchDetail loads the address and preview data for one place.
func (a *Adapter) fetchDetail(ctx context.Context, xid string) (placeDetail, error) {
	query := url.Values{"apikey": {a.cfg.APIKey}}

	var detail placeDetail
	if err := a.getJSON(ctx, "/places/xid/"+url.PathEscape(xid), query, &detail); err != nil {
		return placeDetail{}, err
	}
	return detail, nil
}

// getJSON performs a GET with retries and decodes the response into out.
// Client errors (4xx) are permanent; server errors are retried.
func (a *Adapter) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	return retry.Do(ctx, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet,
			a.cfg.BaseURL+path+"?"+query.Encode(), nil)
		if err != nil {
			return retry.NewPermanent(err)
		}

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
