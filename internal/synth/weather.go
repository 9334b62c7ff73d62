package synth

import (
	"math"
	"time"

	"github.com/katiamach/alaska-weather-api/internal/model"
)

const (
	referenceLatitude = 55.0

	winterBase   = -10.0
	summerBase   = 55.0
	shoulderBase = 35.0

	daytimeBoost = 5.0
	nightPenalty = -3.0
)

var compassPoints = []string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// conditionBands are checked in order; the first band whose ceiling is above
// the temperature provides the candidate conditions.
var conditionBands = []struct {
	below      int
	conditions []model.Condition
}{
	{below: 10, conditions: []model.Condition{model.ConditionSnow, model.ConditionLightSnow, model.ConditionCloudy, model.ConditionPartlyCloudy}},
	{below: 32, conditions: []model.Condition{model.ConditionLightSnow, model.ConditionCloudy, model.ConditionPartlyCloudy, model.ConditionClear}},
	{below: 50, conditions: []model.Condition{model.ConditionPartlyCloudy, model.ConditionCloudy, model.ConditionLightRain, model.ConditionClear}},
	{below: math.MaxInt, conditions: []model.Condition{model.ConditionClear, model.ConditionPartlyCloudy, model.ConditionLightRain, model.ConditionSunny}},
}

// Weather draws a weather sample for loc at now. High and low are offset from
// the drawn temperature by their own random amounts.
func (g *Generator) Weather(loc model.Location, now time.Time) *model.Weather {
	g.mu.Lock()
	defer g.mu.Unlock()

	local := now.In(Alaska)

	temp := int(math.Round(seasonalBase(local.Month()) +
		latitudeEffect(loc.Latitude) +
		hourEffect(local.Hour()) +
		float64(g.intn(-7, 7))))

	return &model.Weather{
		Location:      loc.Name,
		TemperatureF:  temp,
		Condition:     g.condition(temp),
		HighF:         temp + g.intn(3, 10),
		LowF:          temp - g.intn(5, 14),
		Humidity:      g.intn(40, 79),
		WindMPH:       g.intn(5, 24),
		WindDirection: compassPoints[g.rng.Intn(len(compassPoints))],
		UpdatedAt:     now,
	}
}

func (g *Generator) condition(temp int) model.Condition {
	for _, band := range conditionBands {
		if temp < band.below {
			return band.conditions[g.rng.Intn(len(band.conditions))]
		}
	}

	// unreachable, last band is unbounded
	return model.ConditionClear
}

// latitudeEffect makes places further north colder.
func latitudeEffect(lat float64) float64 {
	return (lat - referenceLatitude) * -2
}

func seasonalBase(m time.Month) float64 {
	switch m {
	case time.November, time.December, time.January, time.February:
		return winterBase
	case time.June, time.July, time.August, time.September:
		return summerBase
	default:
		return shoulderBase
	}
}

func hourEffect(hour int) float64 {
	if hour >= 10 && hour <= 16 {
		return daytimeBoost
	}
	return nightPenalty
}
