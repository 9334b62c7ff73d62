package daylight

import (
	"testing"
	"time"

	"github.com/tj/assert"

	"github.com/katiamach/alaska-weather-api/internal/model"
)

func TestForAnchorageEquinox(t *testing.T) {
	akst, err := time.LoadLocation("America/Anchorage")
	assert.Nil(t, err)

	loc := model.Location{Name: "Anchorage", Latitude: 61.2181, Longitude: -149.9003}
	noon := time.Date(2024, time.March, 20, 13, 0, 0, 0, akst)

	d := For(loc, noon)

	assert.Equal(t, "Anchorage", d.Location)
	assert.True(t, d.Sunset.After(d.Sunrise))
	assert.True(t, d.Sunrise.Before(noon) && d.Sunset.After(noon))

	hours := time.Duration(d.DaylightSeconds) * time.Second
	assert.True(t, hours > 11*time.Hour && hours < 14*time.Hour, "daylight %s", hours)
}

func TestForSummerIsLongerThanWinter(t *testing.T) {
	akst, err := time.LoadLocation("America/Anchorage")
	assert.Nil(t, err)

	loc := model.Location{Name: "Fairbanks", Latitude: 64.8378, Longitude: -147.7164}

	winter := For(loc, time.Date(2024, time.December, 21, 13, 0, 0, 0, akst))
	summer := For(loc, time.Date(2024, time.June, 1, 13, 0, 0, 0, akst))

	assert.True(t, summer.DaylightSeconds > winter.DaylightSeconds)
}
