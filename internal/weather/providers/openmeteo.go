package providers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/sony/gobreaker"

	"github.com/i474232898/weather-orbit/internal/common"
	"github.com/i474232898/weather-orbit/internal/weather"
)

// OpenMeteoProvider implements weather.Provider and weather.PlaceProvider for
// Open-Meteo. It needs no API key; places are resolved through the geocoding
// API before the forecast call.
type OpenMeteoProvider struct {
	name        string
	forecastURL string
	geocodeURL  string
	httpCfg     HTTPClientConfig
	circuit     *gobreaker.CircuitBreaker
}

func NewOpenMeteoProvider(client *http.Client) *OpenMeteoProvider {
	return &OpenMeteoProvider{
		name:        "openmeteo",
		forecastURL: "https://api.open-meteo.com/v1/forecast",
		geocodeURL:  "https://geocoding-api.open-meteo.com/v1/search",
		httpCfg:     defaultHTTPConfig(client),
		circuit:     newCircuit("openmeteo"),
	}
}

func (p *OpenMeteoProvider) Name() string {
	return p.name
}

type geocodeResult struct {
	Name        string  `json:"name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	CountryCode string  `json:"country_code"`
	Country     string  `json:"country"`
	Admin1      string  `json:"admin1"`
}

func (p *OpenMeteoProvider) geocode(ctx context.Context, name string, count int) ([]geocodeResult, error) {
	values := url.Values{}
	values.Set("name", name)
	values.Set("count", strconv.Itoa(count))
	values.Set("language", "en")
	values.Set("format", "json")

	var payload struct {
		Results []geocodeResult `json:"results"`
	}
	if err := getJSON(ctx, p.httpCfg, p.circuit, p.geocodeURL, values, &payload); err != nil {
		return nil, err
	}
	return payload.Results, nil
}

// resolve picks the first geocoding hit for "<name>[, <country>]". The country
// part matches either the ISO code or the full country name.
func (p *OpenMeteoProvider) resolve(ctx context.Context, place string) (geocodeResult, error) {
	name, country, _ := strings.Cut(place, ",")
	name = strings.TrimSpace(name)
	country = strings.TrimSpace(country)

	count := 1
	if country != "" {
		count = 10
	}
	results, err := p.geocode(ctx, name, count)
	if err != nil {
		return geocodeResult{}, err
	}
	for _, r := range results {
		if country == "" || strings.EqualFold(r.CountryCode, country) || strings.EqualFold(r.Country, country) {
			return r, nil
		}
	}
	return geocodeResult{}, fmt.Errorf("%w: %q", weather.ErrNotFound, place)
}

func (p *OpenMeteoProvider) Fetch(ctx context.Context, place string) (weather.Snapshot, error) {
	loc, err := p.resolve(ctx, place)
	if err != nil {
		return weather.Snapshot{}, fmt.Errorf("openmeteo: %w", err)
	}

	values := url.Values{}
	values.Set("latitude", strconv.FormatFloat(loc.Latitude, 'f', 4, 64))
	values.Set("longitude", strconv.FormatFloat(loc.Longitude, 'f', 4, 64))
	values.Set("current", "temperature_2m,apparent_temperature,relative_humidity_2m,pressure_msl,"+
		"weather_code,wind_speed_10m,wind_direction_10m,wind_gusts_10m,visibility")
	values.Set("daily", "sunrise,sunset")
	values.Set("timezone", "auto")
	values.Set("timeformat", "unixtime")
	values.Set("wind_speed_unit", "ms")
	values.Set("forecast_days", "1")

	var payload struct {
		UTCOffsetSeconds int64 `json:"utc_offset_seconds"`
		Current          *struct {
			Time                int64   `json:"time"`
			Temperature2m       float64 `json:"temperature_2m"`
			ApparentTemperature float64 `json:"apparent_temperature"`
			RelativeHumidity2m  float64 `json:"relative_humidity_2m"`
			PressureMSL         float64 `json:"pressure_msl"`
			WeatherCode         int     `json:"weather_code"`
			WindSpeed10m        float64 `json:"wind_speed_10m"`
			WindDirection10m    *int    `json:"wind_direction_10m"`
			WindGusts10m        float64 `json:"wind_gusts_10m"`
			Visibility          float64 `json:"visibility"`
		} `json:"current"`
		Daily struct {
			Sunrise []int64 `json:"sunrise"`
			Sunset  []int64 `json:"sunset"`
		} `json:"daily"`
	}
	if err := getJSON(ctx, p.httpCfg, p.circuit, p.forecastURL, values, &payload); err != nil {
		return weather.Snapshot{}, fmt.Errorf("openmeteo: %w", err)
	}
	if payload.Current == nil {
		return weather.Snapshot{}, fmt.Errorf("openmeteo: %w: missing current conditions", weather.ErrInvalid)
	}

	cur := payload.Current
	cond := weather.ConditionFromWMO(cur.WeatherCode)
	snap := weather.Snapshot{
		Name:           loc.Name,
		Country:        loc.CountryCode,
		Timestamp:      cur.Time,
		TimezoneOffset: payload.UTCOffsetSeconds,
		TemperatureC:   cur.Temperature2m,
		FeelsLikeC:     cur.ApparentTemperature,
		HumidityPct:    cur.RelativeHumidity2m,
		PressureHpa:    cur.PressureMSL,
		VisibilityM:    cur.Visibility,
		WindSpeedMS:    cur.WindSpeed10m,
		WindDeg:        cur.WindDirection10m,
		WindGustMS:     cur.WindGusts10m,
		ConditionCode:  cur.WeatherCode,
		Condition:      cond,
		Description:    strings.ReplaceAll(string(cond), "_", " "),
		Provider:       p.name,
	}
	if len(payload.Daily.Sunrise) > 0 && len(payload.Daily.Sunset) > 0 {
		snap.Sunrise = payload.Daily.Sunrise[0]
		snap.Sunset = payload.Daily.Sunset[0]
	}
	return snap, nil
}

// Lookup searches the geocoding API by name prefix.
func (p *OpenMeteoProvider) Lookup(ctx context.Context, text string, limit int) ([]weather.Place, error) {
	if common.IsBlank(text) {
		return nil, nil
	}
	if limit <= 0 {
		limit = 10
	}

	results, err := p.geocode(ctx, strings.TrimSpace(text), limit)
	if err != nil {
		return nil, lookupError("openmeteo", err)
	}

	places := make([]weather.Place, 0, len(results))
	for _, r := range results {
		places = append(places, weather.Place{Name: r.Name, Region: r.Admin1, Country: r.CountryCode})
	}
	return places, nil
}
