package utils

import (
	"strings"
	"time"
)

// DefaultSunExposure is used when the direction is not a known compass point.
const DefaultSunExposure = "Partial Sun"

var sunByDirection = map[string]string{
	"N":  "Shade to Partial Shade (north-facing)",
	"NE": "Partial Shade (northeast-facing)",
	"E":  "Partial Sun (east-facing, morning sun)",
	"SE": "Partial Sun to Full Sun (southeast-facing)",
	"S":  "Full Sun (south-facing)",
	"SW": "Partial Sun to Full Sun (southwest-facing)",
	"W":  "Partial Sun (west-facing, afternoon sun)",
	"NW": "Partial Shade (northwest-facing)",
}

// SunExposure converts a yard-facing compass direction into a sun
// exposure label for the prompt.
func SunExposure(direction string) string {
	if sun, ok := sunByDirection[strings.ToUpper(strings.TrimSpace(direction))]; ok {
		return sun
	}
	return DefaultSunExposure
}

// SeasonForMonth returns the gardening season label for a month.
// Northern hemisphere boundaries only.
func SeasonForMonth(m time.Month) string {
	switch m {
	case time.March, time.April, time.May:
		return "Spring Planting Season"
	case time.June, time.July, time.August:
		return "Summer Growing Season"
	case time.September, time.October, time.November:
		return "Fall Planting Season"
	default:
		return "Winter Planning Season"
	}
}

// CurrentSeason returns the season label for the given time.
func CurrentSeason(t time.Time) string {
	return SeasonForMonth(t.Month())
}

// zoneByCity holds rough USDA hardiness zones for common US cities,
// in fixed order: the first match wins when a location names several.
var zoneByCity = []struct {
	city string
	zone string
}{
	{"denver", "5b"},
	{"colorado", "5b"},
	{"seattle", "8b"},
	{"portland", "8b"},
	{"boston", "6b"},
	{"new york", "7a"},
	{"chicago", "6a"},
	{"atlanta", "8a"},
	{"miami", "10b"},
	{"los angeles", "10a"},
	{"phoenix", "9b"},
	{"austin", "8b"},
	{"dallas", "8a"},
}

// DefaultHardinessZone covers locations the table does not know.
const DefaultHardinessZone = "6b"

// HardinessZone guesses the USDA zone from a free-form location string.
func HardinessZone(location string) string {
	loc := strings.ToLower(location)
	for _, entry := range zoneByCity {
		if strings.Contains(loc, entry.city) {
			return entry.zone
		}
	}
	return DefaultHardinessZone
}
