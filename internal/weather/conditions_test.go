package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConditionFromOpenWeather(t *testing.T) {
	tests := map[int]Condition{
		800: ConditionClear,
		801: ConditionMostlyClear,
		802: ConditionClouds,
		803: ConditionClouds,
		804: ConditionOvercast,
		300: ConditionDrizzle,
		321: ConditionDrizzle,
		500: ConditionRain,
		531: ConditionRain,
		502: ConditionHeavyRain,
		211: ConditionStorm,
		601: ConditionSnow,
		616: ConditionSleet,
		741: ConditionFog,
		781: ConditionWind,
		701: ConditionFog,
		523: ConditionUnknown,
		0:   ConditionUnknown,
	}
	for id, want := range tests {
		assert.Equal(t, want, ConditionFromOpenWeather(id), "id %d", id)
	}
}

func TestConditionFromWMO(t *testing.T) {
	assert.Equal(t, ConditionClear, ConditionFromWMO(0))
	assert.Equal(t, ConditionMostlyClear, ConditionFromWMO(1))
	assert.Equal(t, ConditionOvercast, ConditionFromWMO(3))
	assert.Equal(t, ConditionFog, ConditionFromWMO(48))
	assert.Equal(t, ConditionDrizzle, ConditionFromWMO(53))
	assert.Equal(t, ConditionSleet, ConditionFromWMO(67))
	assert.Equal(t, ConditionHeavyRain, ConditionFromWMO(65))
	assert.Equal(t, ConditionRain, ConditionFromWMO(80))
	assert.Equal(t, ConditionSnow, ConditionFromWMO(86))
	assert.Equal(t, ConditionStorm, ConditionFromWMO(95))
	assert.Equal(t, ConditionUnknown, ConditionFromWMO(42))
}

func TestConditionFromText(t *testing.T) {
	tests := map[string]Condition{
		"Sunny":                         ConditionClear,
		"Partly cloudy":                 ConditionMostlyClear,
		"Cloudy":                        ConditionClouds,
		"Overcast":                      ConditionOvercast,
		"Mist":                          ConditionFog,
		"Patchy light drizzle":          ConditionDrizzle,
		"Moderate or heavy rain shower": ConditionHeavyRain,
		"Light rain":                    ConditionRain,
		"Light freezing rain":           ConditionSleet,
		"Blowing snow":                  ConditionSnow,
		"Thundery outbreaks possible":   ConditionStorm,
		"":                              ConditionUnknown,
	}
	for text, want := range tests {
		assert.Equal(t, want, ConditionFromText(text), "text %q", text)
	}
}

func TestAssetKey(t *testing.T) {
	day := Snapshot{Timestamp: 43200, Sunrise: 21600, Sunset: 64800}
	night := Snapshot{Timestamp: 0, Sunrise: 21600, Sunset: 64800}

	clearDay := day
	clearDay.Condition = ConditionClear
	assert.Equal(t, "day_clear", AssetKey(&clearDay))

	clearNight := night
	clearNight.Condition = ConditionMostlyClear
	assert.Equal(t, "night_mostly_clear", AssetKey(&clearNight))

	rain := night
	rain.Condition = ConditionRain
	assert.Equal(t, "rain", AssetKey(&rain))

	unknown := day
	assert.Equal(t, "", AssetKey(&unknown))
	assert.Equal(t, "", AssetKey(nil))
}
