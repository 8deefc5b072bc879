package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/yanqian/cosmic-blueprint/internal/domain/reading"
)

const (
	defaultBaseURL   = "https://nominatim.openstreetmap.org"
	defaultUserAgent = "CosmicBlueprint/1.0"
	defaultTimeout   = 5 * time.Second
	sourceNominatim  = "nominatim"
)

// NominatimConfig tunes the OpenStreetMap search client.
type NominatimConfig struct {
	BaseURL           string
	UserAgent         string
	Timeout           time.Duration
	RequestsPerSecond float64
}

// Nominatim searches OpenStreetMap for free-text places. Requests are
// throttled to stay inside the public usage policy.
type Nominatim struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewNominatim builds a search client.
func NewNominatim(cfg NominatimConfig) *Nominatim {
	base := strings.TrimSpace(cfg.BaseURL)
	if base == "" {
		base = defaultBaseURL
	}
	agent := strings.TrimSpace(cfg.UserAgent)
	if agent == "" {
		agent = defaultUserAgent
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 1
	}
	return &Nominatim{
		baseURL:   strings.TrimRight(base, "/"),
		userAgent: agent,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
	}
}

type searchResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// Search returns the best match for place. The offset is estimated from
// longitude in whole hours.
func (n *Nominatim) Search(ctx context.Context, place string) (reading.GeoResult, bool, error) {
	if err := n.limiter.Wait(ctx); err != nil {
		return reading.GeoResult{}, false, fmt.Errorf("geocode throttle: %w", err)
	}

	query := url.Values{}
	query.Set("q", place)
	query.Set("format", "json")
	query.Set("limit", "1")
	endpoint := n.baseURL + "/search?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return reading.GeoResult{}, false, fmt.Errorf("build geocode request: %w", err)
	}
	req.Header.Set("User-Agent", n.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return reading.GeoResult{}, false, fmt.Errorf("geocode request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return reading.GeoResult{}, false, fmt.Errorf("geocode request error: status=%d body=%s", resp.StatusCode, string(payload))
	}

	var results []searchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return reading.GeoResult{}, false, fmt.Errorf("decode geocode response: %w", err)
	}
	if len(results) == 0 {
		return reading.GeoResult{}, false, nil
	}

	lat, errLat := strconv.ParseFloat(results[0].Lat, 64)
	lon, errLon := strconv.ParseFloat(results[0].Lon, 64)
	if errLat != nil || errLon != nil || math.IsNaN(lat) || math.IsNaN(lon) {
		return reading.GeoResult{}, false, nil
	}
	return reading.GeoResult{
		Latitude:            lat,
		Longitude:           lon,
		TimezoneOffsetHours: math.Round(lon / 15),
		Source:              sourceNominatim,
	}, true, nil
}
