package weather

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var compass = [16]string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

// WindDirection converts degrees to a 16-point compass label. A nil degree
// reading yields "".
func WindDirection(deg *int) string {
	if deg == nil {
		return ""
	}
	idx := int(math.Round(float64(*deg)/22.5)) % 16
	if idx < 0 {
		idx += 16
	}
	return compass[idx]
}

// TimezoneLabel renders an offset in seconds as "GMT+5.5", "GMT-4" or "GMT0".
// Offsets below one hour get no sign.
func TimezoneLabel(offset int64) string {
	hours := float64(offset) / 3600
	sign := ""
	if hours >= 1 {
		sign = "+"
	}
	return "GMT" + sign + strconv.FormatFloat(hours, 'f', -1, 64)
}

var titleCaser = cases.Title(language.English, cases.NoLower)

// TitleCase capitalizes the first letter of every word of a condition description.
func TitleCase(s string) string {
	return titleCaser.String(s)
}

// LocalClock formats an epoch in the snapshot's local time as "15:04".
func LocalClock(epoch, offset int64) string {
	return time.Unix(epoch+offset, 0).UTC().Format("15:04")
}

// LocalStamp formats an epoch in local time as "Mon 2 Jan 06, 15:04".
func LocalStamp(epoch, offset int64) string {
	return time.Unix(epoch+offset, 0).UTC().Format("Mon 2 Jan 06, 15:04")
}

// IconURL returns the image URL for a provider icon code. WeatherAPI icons are
// already protocol-relative URLs.
func IconURL(icon string) string {
	switch {
	case icon == "":
		return ""
	case strings.HasPrefix(icon, "//"):
		return "https:" + icon
	case strings.HasPrefix(icon, "http"):
		return icon
	default:
		return fmt.Sprintf("https://openweathermap.org/img/wn/%s@2x.png", icon)
	}
}

// VisibilityKm converts metres to kilometres rounded to one decimal.
func VisibilityKm(m float64) float64 {
	return math.Round(m/100) / 10
}
