package geocode

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/cosmic-blueprint/internal/domain/reading"
)

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"  São   Paulo ":   "sao paulo",
		"Diyarbakır":       "diyarbakir",
		"Eskişehir":        "eskisehir",
		"Zürich!":          "zurich",
		"Istanbul, Turkey": "istanbul turkey",
		"":                 "",
	}
	for in, want := range cases {
		require.Equal(t, want, Normalize(in), in)
	}
}

func TestLookupTable(t *testing.T) {
	cases := []struct {
		place string
		lat   float64
		tz    float64
		ok    bool
	}{
		{place: "Istanbul", lat: 41.0082, tz: 3, ok: true},
		{place: "istanbul, Turkey", lat: 41.0082, tz: 3, ok: true},
		{place: "SÃO PAULO", lat: -23.5505, tz: -3, ok: true},
		{place: "New Delhi, India", lat: 28.6139, tz: 5.5, ok: true},
		{place: "Greater London Area", lat: 51.5074, tz: 0, ok: true},
		{place: "Diyarbakır", lat: 37.9144, tz: 3, ok: true},
		{place: "la", ok: false},
		{place: "Brooklyn", ok: false},
		{place: "   ", ok: false},
	}
	for _, tc := range cases {
		t.Run(tc.place, func(t *testing.T) {
			res, ok := LookupTable(tc.place)
			require.Equal(t, tc.ok, ok)
			if !tc.ok {
				return
			}
			require.Equal(t, tc.lat, res.Latitude)
			require.Equal(t, tc.tz, res.TimezoneOffsetHours)
			require.Equal(t, "table", res.Source)
		})
	}
}

func TestCityNamesAreNormalized(t *testing.T) {
	for _, c := range cities {
		require.Equal(t, c.name, Normalize(c.name))
	}
	require.Len(t, cityIndex, len(cities))
}

func TestNominatimSearch(t *testing.T) {
	var gotQuery, gotAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/search", r.URL.Path)
		gotQuery = r.URL.Query().Get("q")
		gotAgent = r.Header.Get("User-Agent")
		require.Equal(t, "json", r.URL.Query().Get("format"))
		require.Equal(t, "1", r.URL.Query().Get("limit"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"lat":"40.6782","lon":"-73.9442","display_name":"Brooklyn, New York"}]`))
	}))
	defer srv.Close()

	client := NewNominatim(NominatimConfig{BaseURL: srv.URL + "/", RequestsPerSecond: 100})
	res, ok, err := client.Search(context.Background(), "Brooklyn, NY")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "Brooklyn, NY", gotQuery)
	require.Equal(t, "CosmicBlueprint/1.0", gotAgent)
	require.Equal(t, reading.GeoResult{Latitude: 40.6782, Longitude: -73.9442, TimezoneOffsetHours: -5, Source: "nominatim"}, res)
}

func TestNominatimSearchNoResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := NewNominatim(NominatimConfig{BaseURL: srv.URL, RequestsPerSecond: 100})
	_, ok, err := client.Search(context.Background(), "Nowhere")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestNominatimSearchRejectsBadCoordinates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{"lat":"north","lon":"12.5"}]`))
	}))
	defer srv.Close()

	client := NewNominatim(NominatimConfig{BaseURL: srv.URL, RequestsPerSecond: 100})
	_, ok, err := client.Search(context.Background(), "Somewhere")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestNominatimSearchStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "slow down", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewNominatim(NominatimConfig{BaseURL: srv.URL, RequestsPerSecond: 100})
	_, ok, err := client.Search(context.Background(), "Anywhere")
	require.Error(t, err)
	require.False(t, ok)
	require.Contains(t, err.Error(), "status=429")
}

func TestNominatimThrottleHonoursContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := NewNominatim(NominatimConfig{BaseURL: srv.URL, RequestsPerSecond: 0.01})
	_, _, err := client.Search(context.Background(), "first")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, _, err = client.Search(ctx, "second")
	require.Error(t, err)
	require.Contains(t, err.Error(), "throttle")
}

func TestGeocoderPrefersTable(t *testing.T) {
	remote := &stubSearcher{ok: true}
	g := New(remote, slog.New(slog.NewTextHandler(io.Discard, nil)))

	res, ok, err := g.Lookup(context.Background(), "Tokyo, Japan")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 9.0, res.TimezoneOffsetHours)
	require.Zero(t, remote.calls)
}

func TestGeocoderFallsBackToRemote(t *testing.T) {
	remote := &stubSearcher{ok: true, result: reading.GeoResult{Latitude: 1, Longitude: 2, Source: "nominatim"}}
	g := New(remote, slog.New(slog.NewTextHandler(io.Discard, nil)))

	res, ok, err := g.Lookup(context.Background(), "Brooklyn")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "nominatim", res.Source)
	require.Equal(t, 1, remote.calls)

	remote.err = errors.New("timeout")
	_, ok, err = g.Lookup(context.Background(), "Brooklyn")
	require.Error(t, err)
	require.False(t, ok)
}

func TestGeocoderOffline(t *testing.T) {
	g := New(nil, slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, ok, err := g.Lookup(context.Background(), "Brooklyn")
	require.NoError(t, err)
	require.False(t, ok)
}

type stubSearcher struct {
	result reading.GeoResult
	ok     bool
	err    error
	calls  int
}

func (s *stubSearcher) Search(context.Context, string) (reading.GeoResult, bool, error) {
	s.calls++
	if s.err != nil {
		return reading.GeoResult{}, false, s.err
	}
	return s.result, s.ok, nil
}
