// Package dashboard serves the encoded tide and weather views shown on the
// front page. Views are cached and rebuilt on a miss, on a scheduled refresh
// or after being invalidated by a change notification. The latest write wins.
package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/katiamach/alaska-weather-api/internal/cache"
	"github.com/katiamach/alaska-weather-api/internal/metrics"
	"github.com/katiamach/alaska-weather-api/internal/model"
)

// Views.
const (
	ViewTides   = "tides"
	ViewWeather = "weather"
)

var ErrUnknownView = errors.New("unknown view")

//go:generate mockgen -source=dashboard.go -destination=mock/mock.go Source

// Source provides the data views are built from.
type Source interface {
	GetTides(ctx context.Context) (*model.TideSnapshot, error)
	ListWeather(ctx context.Context) ([]*model.Weather, error)
}

// Board builds and caches dashboard views.
type Board struct {
	source   Source
	cache    *cache.Timed
	metrics  *metrics.Metrics
	builders map[string]func(ctx context.Context) (interface{}, error)
}

// New creates new Board.
func New(source Source, c *cache.Timed, m *metrics.Metrics) *Board {
	b := &Board{
		source:  source,
		cache:   c,
		metrics: m,
	}

	b.builders = map[string]func(ctx context.Context) (interface{}, error){
		ViewTides: func(ctx context.Context) (interface{}, error) {
			return source.GetTides(ctx)
		},
		ViewWeather: func(ctx context.Context) (interface{}, error) {
			return source.ListWeather(ctx)
		},
	}

	return b
}

// View gets the encoded view, building it if it is not cached.
func (b *Board) View(ctx context.Context, view string) ([]byte, error) {
	if cached, ok := b.cache.Get(view); ok {
		b.metrics.ViewCache.WithLabelValues(view, "hit").Inc()
		return cached, nil
	}
	b.metrics.ViewCache.WithLabelValues(view, "miss").Inc()

	return b.build(ctx, view)
}

// Refresh rebuilds the view and stores it regardless of what is cached.
func (b *Board) Refresh(ctx context.Context, view string) error {
	_, err := b.build(ctx, view)
	return err
}

// Invalidate drops the cached view so the next read rebuilds it.
func (b *Board) Invalidate(view string) {
	b.cache.Invalidate(view)
	b.metrics.Invalidations.WithLabelValues(view).Inc()
}

func (b *Board) build(ctx context.Context, view string) ([]byte, error) {
	builder, ok := b.builders[view]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownView, view)
	}

	data, err := builder(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s view: %w", view, err)
	}

	body, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s view: %w", view, err)
	}

	b.cache.Set(view, body)
	return body, nil
}
