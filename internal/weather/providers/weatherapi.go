package providers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/sony/gobreaker"

	"github.com/i474232898/weather-orbit/internal/common"
	"github.com/i474232898/weather-orbit/internal/weather"
)

// WeatherAPIProvider implements weather.Provider and weather.PlaceProvider
// for WeatherAPI.com.
type WeatherAPIProvider struct {
	name    string
	apiKey  string
	baseURL string
	httpCfg HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
}

func NewWeatherAPIProvider(client *http.Client, apiKey string) *WeatherAPIProvider {
	return &WeatherAPIProvider{
		name:    "weatherapi",
		apiKey:  apiKey,
		baseURL: "https://api.weatherapi.com/v1",
		httpCfg: defaultHTTPConfig(client),
		circuit: newCircuit("weatherapi"),
	}
}

func (p *WeatherAPIProvider) Name() string {
	return p.name
}

type weatherAPIPayload struct {
	Location struct {
		Name           string `json:"name"`
		Region         string `json:"region"`
		Country        string `json:"country"`
		TzID           string `json:"tz_id"`
		LocaltimeEpoch int64  `json:"localtime_epoch"`
	} `json:"location"`
	Current *struct {
		LastUpdatedEpoch int64   `json:"last_updated_epoch"`
		TempC            float64 `json:"temp_c"`
		FeelsLikeC       float64 `json:"feelslike_c"`
		Humidity         float64 `json:"humidity"`
		PressureMb       float64 `json:"pressure_mb"`
		VisKm            float64 `json:"vis_km"`
		WindKph          float64 `json:"wind_kph"`
		WindDegree       *int    `json:"wind_degree"`
		GustKph          float64 `json:"gust_kph"`
		Condition        struct {
			Text string `json:"text"`
			Icon string `json:"icon"`
			Code int    `json:"code"`
		} `json:"condition"`
	} `json:"current"`
	Forecast struct {
		ForecastDay []struct {
			Date  string `json:"date"`
			Astro struct {
				Sunrise string `json:"sunrise"`
				Sunset  string `json:"sunset"`
			} `json:"astro"`
		} `json:"forecastday"`
	} `json:"forecast"`
}

func (p *WeatherAPIProvider) Fetch(ctx context.Context, place string) (weather.Snapshot, error) {
	if p.apiKey == "" {
		return weather.Snapshot{}, fmt.Errorf("weatherapi: %w", errNoAPIKey)
	}

	values := url.Values{}
	values.Set("key", p.apiKey)
	values.Set("q", strings.TrimSpace(place))
	values.Set("days", "1")
	values.Set("aqi", "no")
	values.Set("alerts", "no")

	var payload weatherAPIPayload
	if err := getJSON(ctx, p.httpCfg, p.circuit, p.baseURL+"/forecast.json", values, &payload); err != nil {
		return weather.Snapshot{}, fmt.Errorf("weatherapi: %w", err)
	}
	if payload.Current == nil {
		return weather.Snapshot{}, fmt.Errorf("weatherapi: %w: missing current conditions", weather.ErrInvalid)
	}

	loc, err := time.LoadLocation(payload.Location.TzID)
	if err != nil || payload.Location.TzID == "" {
		loc = time.UTC
	}

	cur := payload.Current
	ts := cur.LastUpdatedEpoch
	if ts == 0 {
		ts = payload.Location.LocaltimeEpoch
	}
	_, offset := time.Unix(ts, 0).In(loc).Zone()

	snap := weather.Snapshot{
		Name:           payload.Location.Name,
		Country:        payload.Location.Country,
		Timestamp:      ts,
		TimezoneOffset: int64(offset),
		TemperatureC:   cur.TempC,
		FeelsLikeC:     cur.FeelsLikeC,
		HumidityPct:    cur.Humidity,
		PressureHpa:    cur.PressureMb,
		VisibilityM:    cur.VisKm * 1000,
		WindSpeedMS:    cur.WindKph / 3.6,
		WindDeg:        cur.WindDegree,
		WindGustMS:     cur.GustKph / 3.6,
		ConditionCode:  cur.Condition.Code,
		Condition:      weather.ConditionFromText(cur.Condition.Text),
		Description:    cur.Condition.Text,
		Icon:           cur.Condition.Icon,
		Provider:       p.name,
	}

	if days := payload.Forecast.ForecastDay; len(days) > 0 {
		snap.Sunrise = astroEpoch(days[0].Date, days[0].Astro.Sunrise, loc)
		snap.Sunset = astroEpoch(days[0].Date, days[0].Astro.Sunset, loc)
	}
	return snap, nil
}

// astroEpoch converts a local "2006-01-02" date and "06:45 AM" clock time to
// UTC epoch seconds. Unparseable values (e.g. "No sunset") yield 0.
func astroEpoch(date, clock string, loc *time.Location) int64 {
	t, err := time.ParseInLocation("2006-01-02 03:04 PM", date+" "+clock, loc)
	if err != nil {
		return 0
	}
	return t.Unix()
}

// Lookup uses the search/autocomplete endpoint.
func (p *WeatherAPIProvider) Lookup(ctx context.Context, text string, limit int) ([]weather.Place, error) {
	if common.IsBlank(text) {
		return nil, nil
	}
	if p.apiKey == "" {
		return nil, fmt.Errorf("weatherapi: %w", errNoAPIKey)
	}

	values := url.Values{}
	values.Set("key", p.apiKey)
	values.Set("q", strings.TrimSpace(text))

	var payload []struct {
		Name    string `json:"name"`
		Region  string `json:"region"`
		Country string `json:"country"`
	}
	if err := getJSON(ctx, p.httpCfg, p.circuit, p.baseURL+"/search.json", values, &payload); err != nil {
		return nil, lookupError("weatherapi", err)
	}

	places := make([]weather.Place, 0, len(payload))
	for _, loc := range payload {
		if limit > 0 && len(places) >= limit {
			break
		}
		places = append(places, weather.Place{Name: loc.Name, Region: loc.Region, Country: loc.Country})
	}
	return places, nil
}
