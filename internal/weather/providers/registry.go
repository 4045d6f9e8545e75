package providers

import (
	"fmt"
	"net/http"

	"github.com/i474232898/weather-orbit/internal/weather"
)

// Source is a backend that serves both weather snapshots and place lookups.
type Source interface {
	weather.Provider
	weather.PlaceProvider
}

// Keys holds the API keys of the keyed backends.
type Keys struct {
	OpenWeather string
	WeatherAPI  string
}

// New builds the named backend: "openweather", "weatherapi" or "openmeteo".
func New(name string, client *http.Client, keys Keys) (Source, error) {
	switch name {
	case "openweather":
		return NewOpenWeatherProvider(client, keys.OpenWeather), nil
	case "weatherapi":
		return NewWeatherAPIProvider(client, keys.WeatherAPI), nil
	case "openmeteo":
		return NewOpenMeteoProvider(client), nil
	default:
		return nil, fmt.Errorf("unknown provider %q", name)
	}
}
