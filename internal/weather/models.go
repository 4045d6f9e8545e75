package weather

import (
	"strings"
)

// Condition represents a normalized high-level weather condition.
// The values double as artwork keys for the presentation layer.
type Condition string

const (
	ConditionUnknown     Condition = ""
	ConditionClear       Condition = "clear"
	ConditionMostlyClear Condition = "mostly_clear"
	ConditionClouds      Condition = "clouds"
	ConditionOvercast    Condition = "overcast"
	ConditionDrizzle     Condition = "drizzle"
	ConditionRain        Condition = "rain"
	ConditionHeavyRain   Condition = "heavy_rain"
	ConditionStorm       Condition = "thunderstorm"
	ConditionSnow        Condition = "snow"
	ConditionSleet       Condition = "sleet"
	ConditionFog         Condition = "fog"
	ConditionWind        Condition = "wind"
)

// Place is a single place lookup candidate.
type Place struct {
	Name    string `json:"name"`
	Region  string `json:"region,omitempty"`
	Country string `json:"country"`
}

// Label returns the display form used for suggestions and history keys.
func (p Place) Label() string {
	return FormatLabel(p.Name, p.Country)
}

// FormatLabel joins a place name and country as "<name>, <country>".
func FormatLabel(name, country string) string {
	name = strings.TrimSpace(name)
	country = strings.TrimSpace(country)
	if country == "" {
		return name
	}
	return name + ", " + country
}

// Snapshot is the last successfully fetched weather payload for a place.
// Epoch fields are UTC seconds; TimezoneOffset is seconds east of UTC.
type Snapshot struct {
	Name           string `json:"name"`
	Country        string `json:"country"`
	Timestamp      int64  `json:"dt"`
	TimezoneOffset int64  `json:"timezone"`
	Sunrise        int64  `json:"sunrise"`
	Sunset         int64  `json:"sunset"`

	TemperatureC float64 `json:"temperatureC"`
	FeelsLikeC   float64 `json:"feelsLikeC"`
	HumidityPct  float64 `json:"humidityPercent"`
	PressureHpa  float64 `json:"pressureHpa"`
	VisibilityM  float64 `json:"visibilityM"`

	WindSpeedMS float64 `json:"windSpeed"`
	WindDeg     *int    `json:"windDeg,omitempty"`
	WindGustMS  float64 `json:"windGust"`

	ConditionCode int       `json:"conditionCode"`
	Condition     Condition `json:"condition"`
	Description   string    `json:"description"`
	Icon          string    `json:"icon"`

	Provider string `json:"provider"`
}

// Label returns the "<name>, <country>" key used by the history cache.
func (s Snapshot) Label() string {
	return FormatLabel(s.Name, s.Country)
}

// HasSunTimes reports whether the snapshot carries sunrise/sunset data.
func (s Snapshot) HasSunTimes() bool {
	return s.Sunrise != 0 && s.Sunset != 0
}
