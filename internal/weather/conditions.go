package weather

import (
	"strings"

	"github.com/i474232898/weather-orbit/internal/common"
)

type conditionRule struct {
	condition Condition
	min, max  int
	list      []int
}

func (r conditionRule) match(id int) bool {
	if r.list != nil {
		for _, v := range r.list {
			if v == id {
				return true
			}
		}
		return false
	}
	return id >= r.min && id <= r.max
}

// Evaluated in order; the first match wins.
var openWeatherRules = []conditionRule{
	{condition: ConditionClear, min: 800, max: 800},
	{condition: ConditionMostlyClear, min: 801, max: 801},
	{condition: ConditionClouds, min: 802, max: 803},
	{condition: ConditionOvercast, min: 804, max: 804},
	{condition: ConditionDrizzle, min: 300, max: 321},
	{condition: ConditionRain, list: []int{500, 501, 511, 520, 521, 522, 531}},
	{condition: ConditionHeavyRain, list: []int{502, 503, 504}},
	{condition: ConditionStorm, min: 200, max: 232},
	{condition: ConditionSnow, min: 600, max: 602},
	{condition: ConditionSleet, min: 611, max: 622},
	{condition: ConditionFog, list: []int{701, 711, 721, 741}},
	{condition: ConditionWind, list: []int{731, 751, 761, 762, 771, 781}},
}

// ConditionFromOpenWeather maps an OpenWeatherMap condition id.
func ConditionFromOpenWeather(id int) Condition {
	for _, r := range openWeatherRules {
		if r.match(id) {
			return r.condition
		}
	}
	return ConditionUnknown
}

// ConditionFromWMO maps a WMO weather interpretation code as used by Open-Meteo.
func ConditionFromWMO(code int) Condition {
	switch {
	case code == 0:
		return ConditionClear
	case code == 1:
		return ConditionMostlyClear
	case code == 2:
		return ConditionClouds
	case code == 3:
		return ConditionOvercast
	case code == 45 || code == 48:
		return ConditionFog
	case code == 56 || code == 57 || code == 66 || code == 67:
		return ConditionSleet
	case code >= 51 && code <= 55:
		return ConditionDrizzle
	case code == 65 || code == 82:
		return ConditionHeavyRain
	case (code >= 61 && code <= 63) || code == 80 || code == 81:
		return ConditionRain
	case (code >= 71 && code <= 77) || code == 85 || code == 86:
		return ConditionSnow
	case code >= 95 && code <= 99:
		return ConditionStorm
	default:
		return ConditionUnknown
	}
}

// ConditionFromText maps free-form condition text (e.g. WeatherAPI.com's
// condition.text). Order matters: "heavy rain" must win over "rain".
func ConditionFromText(text string) Condition {
	t := strings.ToLower(text)
	switch {
	case t == "":
		return ConditionUnknown
	case common.HasAny(t, "thunder", "storm"):
		return ConditionStorm
	case common.HasAny(t, "sleet", "ice pellets", "freezing"):
		return ConditionSleet
	case common.HasAny(t, "snow", "blizzard"):
		return ConditionSnow
	case common.HasAny(t, "heavy rain", "torrential"):
		return ConditionHeavyRain
	case common.HasAny(t, "drizzle"):
		return ConditionDrizzle
	case common.HasAny(t, "rain", "shower"):
		return ConditionRain
	case common.HasAny(t, "fog", "mist", "haze"):
		return ConditionFog
	case common.HasAny(t, "overcast"):
		return ConditionOvercast
	case common.HasAny(t, "partly"):
		return ConditionMostlyClear
	case common.HasAny(t, "cloud"):
		return ConditionClouds
	case common.HasAny(t, "sunny", "clear"):
		return ConditionClear
	case common.HasAny(t, "wind", "gale"):
		return ConditionWind
	default:
		return ConditionUnknown
	}
}

// assets is the set of artwork keys the presentation layer ships.
var assets = map[string]struct{}{
	"clouds":             {},
	"day_clear":          {},
	"day_mostly_clear":   {},
	"drizzle":            {},
	"fog":                {},
	"heavy_rain":         {},
	"night_clear":        {},
	"night_mostly_clear": {},
	"overcast":           {},
	"rain":               {},
	"sleet":              {},
	"snow":               {},
	"thunderstorm":       {},
	"wind":               {},
}

// AssetKey picks the artwork for a snapshot: "<day|night>_<condition>" when a
// period-specific asset exists, otherwise the plain condition. Unknown
// conditions yield "".
func AssetKey(s *Snapshot) string {
	if s == nil || s.Condition == ConditionUnknown {
		return ""
	}
	key := string(s.Condition)
	periodKey := string(ImagePeriodOf(s)) + "_" + key
	if _, ok := assets[periodKey]; ok {
		return periodKey
	}
	if _, ok := assets[key]; ok {
		return key
	}
	return ""
}
