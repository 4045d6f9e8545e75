package weather

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when the provider has no data for the requested place.
	ErrNotFound = errors.New("city not found")
	// ErrInvalid is returned for unsuccessful or malformed provider payloads.
	ErrInvalid = errors.New("invalid weather data")
	// ErrLookup is returned when a place lookup fails.
	ErrLookup = errors.New("place lookup failed")
)

// Provider abstracts a weather data source (e.g. OpenWeatherMap, WeatherAPI, Open-Meteo).
type Provider interface {
	Name() string
	Fetch(ctx context.Context, place string) (Snapshot, error)
}

// PlaceProvider returns candidate places for partial text.
type PlaceProvider interface {
	Lookup(ctx context.Context, text string, limit int) ([]Place, error)
}

// Labels maps places to "<name>, <country>" strings, dropping duplicates
// while keeping the provider's order, capped at limit (<= 0 means no cap).
func Labels(places []Place, limit int) []string {
	seen := make(map[string]struct{}, len(places))
	out := make([]string, 0, len(places))
	for _, p := range places {
		label := p.Label()
		if label == "" {
			continue
		}
		if _, ok := seen[label]; ok {
			continue
		}
		seen[label] = struct{}{}
		out = append(out, label)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out
}
