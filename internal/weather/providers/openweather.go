package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/sony/gobreaker"

	"github.com/i474232898/weather-orbit/internal/common"
	"github.com/i474232898/weather-orbit/internal/weather"
)

// OpenWeatherProvider implements weather.Provider and weather.PlaceProvider
// for OpenWeatherMap (current weather and direct geocoding).
type OpenWeatherProvider struct {
	name    string
	apiKey  string
	baseURL string
	httpCfg HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
}

func NewOpenWeatherProvider(client *http.Client, apiKey string) *OpenWeatherProvider {
	return &OpenWeatherProvider{
		name:    "openweathermap",
		apiKey:  apiKey,
		baseURL: "https://api.openweathermap.org",
		httpCfg: defaultHTTPConfig(client),
		circuit: newCircuit("openweather"),
	}
}

func (p *OpenWeatherProvider) Name() string {
	return p.name
}

// statusCode is OpenWeather's "cod" field, which is a number on success and
// a string on errors.
type statusCode int

func (c *statusCode) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*c = 0
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("cod %q: %w", s, err)
	}
	*c = statusCode(n)
	return nil
}

type openWeatherPayload struct {
	Cod      statusCode `json:"cod"`
	Message  string     `json:"message"`
	Name     string     `json:"name"`
	Dt       int64      `json:"dt"`
	Timezone int64      `json:"timezone"`
	Sys      struct {
		Country string `json:"country"`
		Sunrise int64  `json:"sunrise"`
		Sunset  int64  `json:"sunset"`
	} `json:"sys"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  float64 `json:"humidity"`
		Pressure  float64 `json:"pressure"`
	} `json:"main"`
	Visibility float64 `json:"visibility"`
	Wind       struct {
		Speed float64 `json:"speed"`
		Deg   *int    `json:"deg"`
		Gust  float64 `json:"gust"`
	} `json:"wind"`
	Weather []struct {
		ID          int    `json:"id"`
		Main        string `json:"main"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
}

func (p *OpenWeatherProvider) Fetch(ctx context.Context, place string) (weather.Snapshot, error) {
	if p.apiKey == "" {
		return weather.Snapshot{}, fmt.Errorf("openweather: %w", errNoAPIKey)
	}

	values := url.Values{}
	values.Set("q", strings.TrimSpace(place))
	values.Set("appid", p.apiKey)
	values.Set("units", "metric")

	var payload openWeatherPayload
	if err := getJSON(ctx, p.httpCfg, p.circuit, p.baseURL+"/data/2.5/weather", values, &payload); err != nil {
		return weather.Snapshot{}, fmt.Errorf("openweather: %w", err)
	}

	if payload.Cod != http.StatusOK {
		msg := payload.Message
		if msg == "" {
			msg = "Invalid data"
		}
		return weather.Snapshot{}, fmt.Errorf("openweather: %w: %s", weather.ErrInvalid, msg)
	}
	if len(payload.Weather) == 0 {
		return weather.Snapshot{}, fmt.Errorf("openweather: %w: missing conditions", weather.ErrInvalid)
	}

	cond := payload.Weather[0]
	return weather.Snapshot{
		Name:           payload.Name,
		Country:        payload.Sys.Country,
		Timestamp:      payload.Dt,
		TimezoneOffset: payload.Timezone,
		Sunrise:        payload.Sys.Sunrise,
		Sunset:         payload.Sys.Sunset,
		TemperatureC:   payload.Main.Temp,
		FeelsLikeC:     payload.Main.FeelsLike,
		HumidityPct:    payload.Main.Humidity,
		PressureHpa:    payload.Main.Pressure,
		VisibilityM:    payload.Visibility,
		WindSpeedMS:    payload.Wind.Speed,
		WindDeg:        payload.Wind.Deg,
		WindGustMS:     payload.Wind.Gust,
		ConditionCode:  cond.ID,
		Condition:      weather.ConditionFromOpenWeather(cond.ID),
		Description:    cond.Description,
		Icon:           cond.Icon,
		Provider:       p.name,
	}, nil
}

// Lookup resolves partial text through the direct geocoding endpoint.
func (p *OpenWeatherProvider) Lookup(ctx context.Context, text string, limit int) ([]weather.Place, error) {
	if common.IsBlank(text) {
		return nil, nil
	}
	if p.apiKey == "" {
		return nil, fmt.Errorf("openweather: %w", errNoAPIKey)
	}

	values := url.Values{}
	values.Set("q", strings.TrimSpace(text))
	values.Set("limit", strconv.Itoa(limit))
	values.Set("appid", p.apiKey)

	var payload []struct {
		Name    string `json:"name"`
		State   string `json:"state"`
		Country string `json:"country"`
	}
	if err := getJSON(ctx, p.httpCfg, p.circuit, p.baseURL+"/geo/1.0/direct", values, &payload); err != nil {
		return nil, lookupError("openweather", err)
	}

	places := make([]weather.Place, 0, len(payload))
	for _, loc := range payload {
		places = append(places, weather.Place{Name: loc.Name, Region: loc.State, Country: loc.Country})
	}
	return places, nil
}

var _ json.Unmarshaler = (*statusCode)(nil)
