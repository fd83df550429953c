package amadeus

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/trip-planner/accommodation-aggregation-system/internal/infrastructure/timeutil"
)

// tokenExpirySkew is subtracted from the token lifetime so a token is
// refreshed before it actually expires mid-request.
const tokenExpirySkew = 60 * time.Second

// tokenCache holds the OAuth2 access token shared across searches.
// Amadeus tokens last about 30 minutes; fetching one per request would burn
// through the sandbox quota.
type tokenCache struct {
	mu        sync.Mutex
	clock     timeutil.Clock
	token     string
	expiresAt time.Time
}

func newTokenCache(clock timeutil.Clock) *tokenCache {
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	return &tokenCache{clock: clock}
}

// get returns a valid cached token or fetches a fresh one via fetch.
// Concurrent callers serialize on the mutex so at most one token request is
// in flight.
func (c *tokenCache) get(ctx context.Context, fetch func(ctx context.Context) (string, time.Duration, error)) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && c.clock.Now().Before(c.expiresAt.Add(-tokenExpirySkew)) {
		return c.token, nil
	}

	token, lifetime, err := fetch(ctx)
	if err != nil {
		return "", err
	}

	c.token = token
	c.expiresAt = c.clock.Now().Add(lifetime)
	return token, nil
}

// fetchToken performs the OAuth2 client_credentials grant.
func (a *Adapter) fetchToken(ctx context.Context) (string, time.Duration, error) {
	form := url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {a.cfg.ClientID},
		"client_secret": {a.cfg.ClientSecret},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		a.cfg.BaseURL+"/v1/security/oauth2/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", 0, fmt.Errorf("build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := a.client.Do(req)
	if err != nil {
		return "", 0, fmt.Errorf("token request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", 0, fmt.Errorf("token request returned status %d", resp.StatusCode)
	}

	var body tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", 0, fmt.Errorf("decode token response: %w", err)
	}
	if body.AccessToken == "" {
		return "", 0, fmt.Errorf("token response missing access_token")
	}

	return body.AccessToken, time.Duration(body.ExpiresIn) * time.Second, nil
}
