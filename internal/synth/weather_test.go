package synth

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/tj/assert"

	"github.com/katiamach/alaska-weather-api/internal/locations"
	"github.com/katiamach/alaska-weather-api/internal/model"
)

func mustFind(t *testing.T, name string) model.Location {
	t.Helper()
	loc, ok := locations.Find(name)
	assert.True(t, ok, "unknown city %q", name)
	return loc
}

func meanTemperature(g *Generator, loc model.Location, now time.Time, n int) float64 {
	var sum int
	for i := 0; i < n; i++ {
		sum += g.Weather(loc, now).TemperatureF
	}
	return float64(sum) / float64(n)
}

func TestWeatherNorthInWinterIsColder(t *testing.T) {
	g := New(2024)
	winter := time.Date(2024, time.January, 15, 12, 0, 0, 0, Alaska)
	summer := time.Date(2024, time.July, 15, 12, 0, 0, 0, Alaska)

	barrow := meanTemperature(g, mustFind(t, "Barrow"), winter, 500)
	ketchikan := meanTemperature(g, mustFind(t, "Ketchikan"), summer, 500)

	assert.True(t, barrow < ketchikan, "barrow %.1f, ketchikan %.1f", barrow, ketchikan)
}

func TestWeatherTemperatureBounds(t *testing.T) {
	g := New(3)
	now := time.Date(2024, time.April, 2, 22, 0, 0, 0, Alaska)

	for _, loc := range locations.All() {
		// shoulder season, night time
		base := int(shoulderBase + latitudeEffect(loc.Latitude) + nightPenalty)

		for i := 0; i < 100; i++ {
			w := g.Weather(loc, now)
			assert.True(t, w.TemperatureF >= base-8 && w.TemperatureF <= base+8,
				"%s temperature %d around %d", loc.Name, w.TemperatureF, base)
		}
	}
}

// High and low are drawn as separate offsets from the temperature. With the
// current offsets low stays below high; the temperature itself always sits
// between them as well.
func TestWeatherHighLow(t *testing.T) {
	g := New(99)
	now := time.Now()

	for _, loc := range locations.All() {
		for i := 0; i < 200; i++ {
			w := g.Weather(loc, now)

			assert.True(t, w.LowF < w.HighF, "%s low %d high %d", loc.Name, w.LowF, w.HighF)
			assert.True(t, w.HighF-w.TemperatureF >= 3 && w.HighF-w.TemperatureF <= 10)
			assert.True(t, w.TemperatureF-w.LowF >= 5 && w.TemperatureF-w.LowF <= 14)
		}
	}
}

func TestWeatherRanges(t *testing.T) {
	g := New(5)
	loc := mustFind(t, "Juneau")

	for i := 0; i < 500; i++ {
		w := g.Weather(loc, time.Now())

		assert.Equal(t, "Juneau", w.Location)
		assert.True(t, w.Humidity >= 40 && w.Humidity <= 79)
		assert.True(t, w.WindMPH >= 5 && w.WindMPH <= 24)
		assert.Contains(t, compassPoints, w.WindDirection)
	}
}

func TestWeatherConditionMatchesBand(t *testing.T) {
	g := New(11)

	allowed := func(temp int) []model.Condition {
		for _, band := range conditionBands {
			if temp < band.below {
				return band.conditions
			}
		}
		return nil
	}

	for _, loc := range locations.All() {
		for _, month := range []time.Month{time.January, time.April, time.July} {
			w := g.Weather(loc, time.Date(2024, month, 10, 13, 0, 0, 0, Alaska))
			assert.Contains(t, allowed(w.TemperatureF), w.Condition)
		}
	}
}

func TestConditionBands(t *testing.T) {
	want := []model.Condition{model.ConditionSnow, model.ConditionLightSnow, model.ConditionCloudy, model.ConditionPartlyCloudy}
	if diff := cmp.Diff(want, conditionBands[0].conditions); diff != "" {
		t.Errorf("coldest band (-want,+got):\n%s", diff)
	}
}

func TestSeasonalBase(t *testing.T) {
	cases := []struct {
		month time.Month
		want  float64
	}{
		{time.January, winterBase},
		{time.February, winterBase},
		{time.March, shoulderBase},
		{time.May, shoulderBase},
		{time.June, summerBase},
		{time.September, summerBase},
		{time.October, shoulderBase},
		{time.November, winterBase},
		{time.December, winterBase},
	}

	for _, tc := range cases {
		t.Run(tc.month.String(), func(t *testing.T) {
			assert.Equal(t, tc.want, seasonalBase(tc.month))
		})
	}
}

func TestHourEffect(t *testing.T) {
	assert.Equal(t, nightPenalty, hourEffect(9))
	assert.Equal(t, daytimeBoost, hourEffect(10))
	assert.Equal(t, daytimeBoost, hourEffect(16))
	assert.Equal(t, nightPenalty, hourEffect(17))
}

func TestWeatherUsesAlaskaTime(t *testing.T) {
	// 20:00 UTC is noon in Anchorage in winter
	now := time.Date(2024, time.January, 10, 20, 0, 0, 0, time.UTC)
	loc := model.Location{Name: "Reference", Latitude: referenceLatitude}

	g := New(8)
	for i := 0; i < 100; i++ {
		w := g.Weather(loc, now)
		assert.True(t, w.TemperatureF >= -12 && w.TemperatureF <= 2, "temperature %d", w.TemperatureF)
	}
}
