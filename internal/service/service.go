package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jonboulle/clockwork"

	"github.com/katiamach/alaska-weather-api/internal/dashboard"
	"github.com/katiamach/alaska-weather-api/internal/locations"
	"github.com/katiamach/alaska-weather-api/internal/logger"
	"github.com/katiamach/alaska-weather-api/internal/metrics"
	"github.com/katiamach/alaska-weather-api/internal/model"
	"github.com/katiamach/alaska-weather-api/internal/synth"
)

var (
	ErrCityNotFound = errors.New("city not found")
)

//go:generate mockgen -source=service.go -destination=mock/mock.go Repository

// Repository provides necessary repo methods.
type Repository interface {
	UpsertWeather(ctx context.Context, w *model.Weather) error
	ListWeather(ctx context.Context) ([]*model.Weather, error)
}

// Invalidator drops cached dashboard views.
type Invalidator interface {
	Invalidate(view string)
}

// WeatherService provides weather service functionality.
type WeatherService struct {
	repo    Repository
	gen     *synth.Generator
	clock   clockwork.Clock
	metrics *metrics.Metrics
	views   Invalidator
}

// New creates new WeatherService. A nil repo disables persistence.
func New(repo Repository, gen *synth.Generator, clock clockwork.Clock, m *metrics.Metrics) *WeatherService {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	return &WeatherService{
		repo:    repo,
		gen:     gen,
		clock:   clock,
		metrics: m,
	}
}

// SetInvalidator registers the views to invalidate after weather is persisted.
func (ws *WeatherService) SetInvalidator(v Invalidator) {
	ws.views = v
}

// PersistenceEnabled reports whether samples can be persisted.
func (ws *WeatherService) PersistenceEnabled() bool {
	return ws.repo != nil
}

// GetWeather generates weather for the requested location, or for every known
// location if none is requested, and optionally persists the samples.
func (ws *WeatherService) GetWeather(ctx context.Context, req *model.WeatherRequest) (*model.WeatherReport, error) {
	locs, err := resolveLocations(req)
	if err != nil {
		return nil, err
	}

	now := ws.clock.Now()

	samples := make([]*model.Weather, 0, len(locs))
	for _, loc := range locs {
		samples = append(samples, ws.gen.Weather(loc, now))
	}
	ws.metrics.SamplesGenerated.Add(float64(len(samples)))

	if req.Update {
		ws.persist(ctx, samples)
	}

	return &model.WeatherReport{
		Samples:   samples,
		UpdatedAt: now,
	}, nil
}

// RefreshWeather generates and persists weather for every known location.
func (ws *WeatherService) RefreshWeather(ctx context.Context) error {
	if !ws.PersistenceEnabled() {
		return nil
	}

	_, err := ws.GetWeather(ctx, &model.WeatherRequest{Update: true})
	if err != nil {
		return fmt.Errorf("failed to refresh weather: %w", err)
	}

	return nil
}

// ListWeather gets persisted weather of all locations.
func (ws *WeatherService) ListWeather(ctx context.Context) ([]*model.Weather, error) {
	if !ws.PersistenceEnabled() {
		return []*model.Weather{}, nil
	}

	weather, err := ws.repo.ListWeather(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list weather: %w", err)
	}

	return weather, nil
}

// persist upserts each sample. Failures are logged and skipped.
func (ws *WeatherService) persist(ctx context.Context, samples []*model.Weather) {
	if !ws.PersistenceEnabled() {
		logger.Warn("weather update requested but no store is configured, skipping")
		return
	}

	var stored int
	for _, w := range samples {
		if err := ws.repo.UpsertWeather(ctx, w); err != nil {
			ws.metrics.UpsertFailures.Inc()
			logger.Error(fmt.Errorf("failed to persist weather: %w", err))
			continue
		}
		stored++
	}

	logger.Info(fmt.Sprintf("Persisted weather for %d of %d locations", stored, len(samples)))

	if stored > 0 && ws.views != nil {
		ws.views.Invalidate(dashboard.ViewWeather)
	}
}

func resolveLocations(req *model.WeatherRequest) ([]model.Location, error) {
	if req.City != "" {
		loc, ok := locations.Find(req.City)
		if !ok {
			return nil, ErrCityNotFound
		}
		return []model.Location{loc}, nil
	}

	if req.Latitude != nil && req.Longitude != nil {
		return []model.Location{locations.Nearest(*req.Latitude, *req.Longitude)}, nil
	}

	return locations.All(), nil
}
