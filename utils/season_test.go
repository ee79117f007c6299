package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSunExposureKnownDirections(t *testing.T) {
	cases := map[string]string{
		"N":  "Shade to Partial Shade (north-facing)",
		"NE": "Partial Shade (northeast-facing)",
		"E":  "Partial Sun (east-facing, morning sun)",
		"SE": "Partial Sun to Full Sun (southeast-facing)",
		"S":  "Full Sun (south-facing)",
		"SW": "Partial Sun to Full Sun (southwest-facing)",
		"W":  "Partial Sun (west-facing, afternoon sun)",
		"NW": "Partial Shade (northwest-facing)",
	}
	for dir, want := range cases {
		t.Run(dir, func(t *testing.T) {
			assert.Equal(t, want, SunExposure(dir))
		})
	}
}

func TestSunExposureNormalizesInput(t *testing.T) {
	assert.Equal(t, SunExposure("S"), SunExposure("s"))
	assert.Equal(t, SunExposure("NE"), SunExposure(" ne "))
}

func TestSunExposureUnknownDefaultsToPartialSun(t *testing.T) {
	for _, dir := range []string{"", "NORTH", "up", "NNE", "123"} {
		assert.Equal(t, DefaultSunExposure, SunExposure(dir), "direction %q", dir)
	}
}

func TestSeasonForMonthCoversTheYear(t *testing.T) {
	want := map[time.Month]string{
		time.January:   "Winter Planning Season",
		time.February:  "Winter Planning Season",
		time.March:     "Spring Planting Season",
		time.April:     "Spring Planting Season",
		time.May:       "Spring Planting Season",
		time.June:      "Summer Growing Season",
		time.July:      "Summer Growing Season",
		time.August:    "Summer Growing Season",
		time.September: "Fall Planting Season",
		time.October:   "Fall Planting Season",
		time.November:  "Fall Planting Season",
		time.December:  "Winter Planning Season",
	}
	for m, label := range want {
		assert.Equal(t, label, SeasonForMonth(m), m.String())
	}
}

func TestCurrentSeasonUsesTheMonth(t *testing.T) {
	july := time.Date(2025, time.July, 14, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "Summer Growing Season", CurrentSeason(july))
}

func TestHardinessZone(t *testing.T) {
	cases := []struct {
		location string
		want     string
	}{
		{"Denver, Colorado", "5b"},
		{"Boulder, Colorado", "5b"},
		{"New York, NY", "7a"},
		{"MIAMI, FL", "10b"},
		{"los angeles, california", "10a"},
		{"Smalltown, USA", DefaultHardinessZone},
		{"", DefaultHardinessZone},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, HardinessZone(tc.location), tc.location)
	}
}

func TestHardinessZoneFirstMatchWins(t *testing.T) {
	// Austin precedes Dallas in the table, so a location naming both
	// resolves the same way every time.
	for i := 0; i < 100; i++ {
		assert.Equal(t, "8b", HardinessZone("Austin and Dallas, TX"))
	}
}
