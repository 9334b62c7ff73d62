package synth

import (
	"math"
	"time"

	"github.com/katiamach/alaska-weather-api/internal/model"
)

const (
	// TideStation is the estuary the tide curve is drawn for.
	TideStation = "Anchorage (Cook Inlet)"

	tidePeriodMinutes = 372 // about half a lunar day
	slackThreshold    = 0.1
	tideEvents        = 4
	tideEventSpacing  = 6 * time.Hour
	msPerDay          = 86_400_000

	clockFormat = "3:04 PM"
)

// Tides computes the tide snapshot at now. Heights of the current water level
// and of the forecast events are independent synthetic streams; only the
// 6-hour cadence is shared.
func (g *Generator) Tides(now time.Time) model.TideSnapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	local := now.In(Alaska)

	// slow modulation driven by the absolute epoch, not reset daily
	drift := math.Sin(float64(now.UnixMilli()) / msPerDay)
	baseHigh := 28 + 4*drift
	baseLow := 2 + 2*drift

	phase := tidePhase(local.Hour(), local.Minute())
	amplitude := (baseHigh - baseLow) / 2
	mean := (baseHigh + baseLow) / 2

	tides := make([]model.TidePoint, 0, tideEvents)
	start := local.Truncate(time.Hour).Add(time.Hour)
	for i := 0; i < tideEvents; i++ {
		at := start.Add(time.Duration(i) * tideEventSpacing).Add(time.Duration(g.intn(0, 59)) * time.Minute)

		point := model.TidePoint{Time: at.Format(clockFormat)}
		if i%2 == 0 {
			point.Type = model.TideHigh
			point.Height = round1(baseHigh + g.uniform(-1, 1))
		} else {
			point.Type = model.TideLow
			point.Height = round1(baseLow + g.uniform(-0.5, 0.5))
		}

		tides = append(tides, point)
	}

	return model.TideSnapshot{
		Location: TideStation,
		Current: model.TideCurrent{
			Height:    round1(amplitude*math.Sin(phase) + mean),
			Trend:     tideTrend(phase),
			NextEvent: tides[0],
		},
		Tides: tides,
		Conditions: model.TideConditions{
			WaterTemp:    round1(g.uniform(38, 46)),
			Visibility:   round1(g.uniform(5, 15)),
			CurrentSpeed: round1(g.uniform(0.5, 3.0)),
		},
		GeneratedAt: now,
	}
}

// tidePhase is the angle of the semi-diurnal curve at the given clock time.
func tidePhase(hour, minute int) float64 {
	return float64(hour*60+minute) / tidePeriodMinutes * 2 * math.Pi
}

func tideTrend(phase float64) model.TideTrend {
	c := math.Cos(phase)
	switch {
	case math.Abs(c) < slackThreshold:
		return model.TrendSlack
	case c > 0:
		return model.TrendRising
	default:
		return model.TrendFalling
	}
}
