package service

import (
	"context"

	"github.com/katiamach/alaska-weather-api/internal/daylight"
	"github.com/katiamach/alaska-weather-api/internal/locations"
	"github.com/katiamach/alaska-weather-api/internal/model"
	"github.com/katiamach/alaska-weather-api/internal/synth"
)

// GetTides computes the current tide snapshot of Cook Inlet.
func (ws *WeatherService) GetTides(ctx context.Context) (*model.TideSnapshot, error) {
	snap := ws.gen.Tides(ws.clock.Now())
	return &snap, nil
}

// GetDaylight gets today's sunrise and sunset of the given city.
func (ws *WeatherService) GetDaylight(ctx context.Context, city string) (*model.Daylight, error) {
	loc, ok := locations.Find(city)
	if !ok {
		return nil, ErrCityNotFound
	}

	return daylight.For(loc, ws.clock.Now().In(synth.Alaska)), nil
}
