package geocode

import (
	"context"
	"log/slog"
	"strings"

	"github.com/yanqian/cosmic-blueprint/internal/domain/reading"
)

// Searcher resolves places the built-in table does not know.
type Searcher interface {
	Search(ctx context.Context, place string) (reading.GeoResult, bool, error)
}

// Geocoder answers from the city table first and falls back to a remote
// searcher when one is configured.
type Geocoder struct {
	remote Searcher
	logger *slog.Logger
}

// New builds a geocoder. A nil remote keeps lookups offline.
func New(remote Searcher, logger *slog.Logger) *Geocoder {
	return &Geocoder{
		remote: remote,
		logger: logger.With("component", "geocode.geocoder"),
	}
}

// Lookup implements reading.Geocoder.
func (g *Geocoder) Lookup(ctx context.Context, place string) (reading.GeoResult, bool, error) {
	place = strings.TrimSpace(place)
	if place == "" {
		return reading.GeoResult{}, false, nil
	}
	if res, ok := LookupTable(place); ok {
		return res, true, nil
	}
	if g.remote == nil {
		return reading.GeoResult{}, false, nil
	}

	res, ok, err := g.remote.Search(ctx, place)
	if err != nil {
		return reading.GeoResult{}, false, err
	}
	if ok {
		g.logger.Debug("place resolved remotely", "place", place, "lat", res.Latitude, "lon", res.Longitude)
	}
	return res, ok, nil
}
