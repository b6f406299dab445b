package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"paquexpress/internal/cache"
)

const (
	userAgent      = "paquexpress/1.0"
	cacheKeyFmt    = "geocode:%s,%s"
	resultCacheTTL = 24 * time.Hour
)

// Geocoder resolves coordinates into a human-readable address.
type Geocoder interface {
	ReverseGeocode(ctx context.Context, lat, lon decimal.Decimal) (string, error)
}

type reverseResponse struct {
	DisplayName string `json:"display_name"`
}

// NominatimClient resolves coordinates against a Nominatim-compatible
// /reverse endpoint. Lookups are best-effort with a short timeout and no
// retry; successful results are cached in redis keyed by coordinates.
type NominatimClient struct {
	baseURL string
	client  *http.Client
	cache   *cache.Client
}

// NewNominatimClient creates a reverse-geocoding client. The cache may be nil.
func NewNominatimClient(baseURL string, timeout time.Duration, cacheClient *cache.Client) *NominatimClient {
	return &NominatimClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		cache:   cacheClient,
	}
}

// ReverseGeocode returns the display name for the given coordinates, or an
// error on any lookup failure. Callers decide the fallback behavior.
func (n *NominatimClient) ReverseGeocode(ctx context.Context, lat, lon decimal.Decimal) (string, error) {
	key := fmt.Sprintf(cacheKeyFmt, lat.String(), lon.String())
	if cached, _ := n.cache.Get(ctx, key); cached != nil {
		return string(cached), nil
	}

	url := fmt.Sprintf("%s/reverse?format=json&lat=%s&lon=%s", n.baseURL, lat.String(), lon.String())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("create reverse request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("execute reverse request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var decoded reverseResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("decode reverse response: %w", err)
	}
	if decoded.DisplayName == "" {
		return "", fmt.Errorf("no display name for %s,%s", lat.String(), lon.String())
	}

	_ = n.cache.Set(ctx, key, []byte(decoded.DisplayName), resultCacheTTL)

	return decoded.DisplayName, nil
}
