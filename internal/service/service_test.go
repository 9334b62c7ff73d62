package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/tj/assert"

	"github.com/katiamach/alaska-weather-api/internal/dashboard"
	"github.com/katiamach/alaska-weather-api/internal/metrics"
	"github.com/katiamach/alaska-weather-api/internal/model"
	"github.com/katiamach/alaska-weather-api/internal/synth"

	mock "github.com/katiamach/alaska-weather-api/internal/service/mock"
)

var errTest = errors.New("test error")

var testNow = time.Date(2024, time.January, 10, 20, 0, 0, 0, time.UTC)

func ptr(v float64) *float64 {
	return &v
}

func TestGetWeather(t *testing.T) {
	ctx := context.Background()
	clock := clockwork.NewFakeClockAt(testNow)

	cases := []struct {
		name      string
		request   *model.WeatherRequest
		expected  []string
		expectErr error
	}{
		{
			name:     "all cities",
			request:  &model.WeatherRequest{},
			expected: []string{"Anchorage", "Fairbanks", "Juneau", "Barrow (Utqiaġvik)", "Kodiak", "Bethel", "Nome", "Ketchikan", "Sitka", "Valdez"},
		},
		{
			name:     "explicit city",
			request:  &model.WeatherRequest{City: "VALDEZ"},
			expected: []string{"Valdez"},
		},
		{
			name:     "nearest city",
			request:  &model.WeatherRequest{Latitude: ptr(64.5), Longitude: ptr(-165.3)},
			expected: []string{"Nome"},
		},
		{
			name:      "unknown city",
			request:   &model.WeatherRequest{City: "Atlantis"},
			expectErr: ErrCityNotFound,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := metrics.NewForTesting()
			ws := New(nil, synth.New(1), clock, m)

			report, err := ws.GetWeather(ctx, tc.request)
			if tc.expectErr != nil {
				assert.True(t, errors.Is(err, tc.expectErr))
				return
			}
			assert.Nil(t, err)

			got := make([]string, 0, len(report.Samples))
			for _, s := range report.Samples {
				got = append(got, s.Location)
				assert.Equal(t, testNow, s.UpdatedAt)
			}
			assert.Equal(t, tc.expected, got)
			assert.Equal(t, testNow, report.UpdatedAt)
			assert.Equal(t, float64(len(tc.expected)), testutil.ToFloat64(m.SamplesGenerated))
		})
	}
}

func TestGetWeatherUpdate(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)
	views := mock.NewMockInvalidator(ctrl)
	m := metrics.NewForTesting()

	ws := New(repo, synth.New(1), clockwork.NewFakeClockAt(testNow), m)
	ws.SetInvalidator(views)

	// one failing location does not abort the batch
	repo.EXPECT().UpsertWeather(gomock.Any(), gomock.Any()).Return(errTest)
	repo.EXPECT().UpsertWeather(gomock.Any(), gomock.Any()).Return(nil).Times(9)
	views.EXPECT().Invalidate(dashboard.ViewWeather)

	report, err := ws.GetWeather(ctx, &model.WeatherRequest{Update: true})
	assert.Nil(t, err)
	assert.Len(t, report.Samples, 10)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.UpsertFailures))
}

func TestGetWeatherUpdateAllFail(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)
	views := mock.NewMockInvalidator(ctrl)

	ws := New(repo, synth.New(1), nil, metrics.NewForTesting())
	ws.SetInvalidator(views)

	repo.EXPECT().UpsertWeather(gomock.Any(), gomock.Any()).Return(errTest)

	report, err := ws.GetWeather(ctx, &model.WeatherRequest{City: "Sitka", Update: true})
	assert.Nil(t, err)
	assert.Len(t, report.Samples, 1)
}

func TestGetWeatherWithoutUpdateDoesNotPersist(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)

	ws := New(repo, synth.New(1), nil, metrics.NewForTesting())

	_, err := ws.GetWeather(context.Background(), &model.WeatherRequest{City: "Sitka"})
	assert.Nil(t, err)
}

func TestUpdateWithoutStore(t *testing.T) {
	ws := New(nil, synth.New(1), nil, metrics.NewForTesting())
	assert.False(t, ws.PersistenceEnabled())

	report, err := ws.GetWeather(context.Background(), &model.WeatherRequest{City: "Bethel", Update: true})
	assert.Nil(t, err)
	assert.Len(t, report.Samples, 1)

	assert.Nil(t, ws.RefreshWeather(context.Background()))
}

func TestRefreshWeather(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)

	ws := New(repo, synth.New(1), nil, metrics.NewForTesting())

	repo.EXPECT().UpsertWeather(gomock.Any(), gomock.Any()).Return(nil).Times(10)

	assert.Nil(t, ws.RefreshWeather(context.Background()))
}

func TestListWeather(t *testing.T) {
	ctx := context.Background()

	t.Run("no store", func(t *testing.T) {
		ws := New(nil, synth.New(1), nil, metrics.NewForTesting())

		weather, err := ws.ListWeather(ctx)
		assert.Nil(t, err)
		assert.Empty(t, weather)
	})

	t.Run("store error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockRepository(ctrl)
		ws := New(repo, synth.New(1), nil, metrics.NewForTesting())

		repo.EXPECT().ListWeather(gomock.Any()).Return(nil, errTest)

		_, err := ws.ListWeather(ctx)
		assert.True(t, errors.Is(err, errTest))
	})

	t.Run("ok", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockRepository(ctrl)
		ws := New(repo, synth.New(1), nil, metrics.NewForTesting())

		rows := []*model.Weather{{Location: "Anchorage"}, {Location: "Juneau"}}
		repo.EXPECT().ListWeather(gomock.Any()).Return(rows, nil)

		weather, err := ws.ListWeather(ctx)
		assert.Nil(t, err)
		assert.Equal(t, rows, weather)
	})
}

func TestGetTides(t *testing.T) {
	ws := New(nil, synth.New(1), clockwork.NewFakeClockAt(testNow), metrics.NewForTesting())

	snap, err := ws.GetTides(context.Background())
	assert.Nil(t, err)
	assert.Len(t, snap.Tides, 4)
	assert.Equal(t, testNow, snap.GeneratedAt)
}

func TestGetDaylight(t *testing.T) {
	ws := New(nil, synth.New(1), clockwork.NewFakeClockAt(testNow), metrics.NewForTesting())

	d, err := ws.GetDaylight(context.Background(), "juneau")
	assert.Nil(t, err)
	assert.Equal(t, "Juneau", d.Location)
	assert.True(t, d.DaylightSeconds > 0)

	_, err = ws.GetDaylight(context.Background(), "Atlantis")
	assert.True(t, errors.Is(err, ErrCityNotFound))
}
