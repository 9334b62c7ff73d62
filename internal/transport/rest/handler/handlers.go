package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/katiamach/alaska-weather-api/internal/dashboard"
	"github.com/katiamach/alaska-weather-api/internal/logger"
	"github.com/katiamach/alaska-weather-api/internal/model"
	"github.com/katiamach/alaska-weather-api/internal/service"
)

//go:generate mockgen -source=handlers.go -destination=mock/mock.go WeatherService Dashboard Pinger

// WeatherService provides weather service methods.
type WeatherService interface {
	GetWeather(ctx context.Context, req *model.WeatherRequest) (*model.WeatherReport, error)
	GetDaylight(ctx context.Context, city string) (*model.Daylight, error)
}

// Dashboard provides encoded dashboard views.
type Dashboard interface {
	View(ctx context.Context, view string) ([]byte, error)
}

// Pinger checks that the weather store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

const pingTimeout = 2 * time.Second

// WeatherServer is a server for weather and tide data.
type WeatherServer struct {
	service WeatherService
	board   Dashboard
	store   Pinger
}

// NewWeatherServer creates new WeatherServer.
func NewWeatherServer(service WeatherService, board Dashboard) *WeatherServer {
	return &WeatherServer{service: service, board: board}
}

// GetWeatherHandler handles GetWeather request.
func (s *WeatherServer) GetWeatherHandler(w http.ResponseWriter, r *http.Request) {
	weatherReq, err := validateQueryParams(r.URL.Query())
	if err != nil {
		respondErr(w, http.StatusBadRequest, "Invalid request", err)
		return
	}

	report, err := s.service.GetWeather(r.Context(), weatherReq)
	if errors.Is(err, service.ErrCityNotFound) {
		respondErr(w, http.StatusNotFound, "City not found", nil)
		return
	}
	if err != nil {
		logger.Error(fmt.Errorf("failed to get weather: %v", err))
		respondErr(w, http.StatusInternalServerError, "Failed to get weather", err)
		return
	}

	respond(w, http.StatusOK, weatherResponse{
		Success:   true,
		Data:      report.Samples,
		UpdatedAt: report.UpdatedAt,
		Count:     len(report.Samples),
	})
}

// GetDaylightHandler handles GetDaylight request.
func (s *WeatherServer) GetDaylightHandler(w http.ResponseWriter, r *http.Request) {
	city := strings.TrimSpace(r.URL.Query().Get("city"))
	if city == "" {
		respondErr(w, http.StatusBadRequest, "Invalid request", errors.New("city parameter not provided in query"))
		return
	}

	daylight, err := s.service.GetDaylight(r.Context(), city)
	if errors.Is(err, service.ErrCityNotFound) {
		respondErr(w, http.StatusNotFound, "City not found", nil)
		return
	}
	if err != nil {
		logger.Error(fmt.Errorf("failed to get daylight: %v", err))
		respondErr(w, http.StatusInternalServerError, "Failed to get daylight", err)
		return
	}

	respond(w, http.StatusOK, daylight)
}

// GetTidesHandler serves the tide dashboard view.
func (s *WeatherServer) GetTidesHandler(w http.ResponseWriter, r *http.Request) {
	s.serveView(w, r, dashboard.ViewTides)
}

// GetStoredWeatherHandler serves the persisted weather dashboard view.
func (s *WeatherServer) GetStoredWeatherHandler(w http.ResponseWriter, r *http.Request) {
	s.serveView(w, r, dashboard.ViewWeather)
}

// SetStore registers the store checked by HealthHandler.
func (s *WeatherServer) SetStore(p Pinger) {
	s.store = p
}

// HealthHandler reports the service is up and its store, if any, answers.
func (s *WeatherServer) HealthHandler(w http.ResponseWriter, r *http.Request) {
	if s.store != nil {
		ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
		defer cancel()

		if err := s.store.Ping(ctx); err != nil {
			logger.Error(fmt.Errorf("failed to ping store: %v", err))
			respondErr(w, http.StatusServiceUnavailable, "Store unavailable", err)
			return
		}
	}

	respond(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *WeatherServer) serveView(w http.ResponseWriter, r *http.Request, view string) {
	body, err := s.board.View(r.Context(), view)
	if err != nil {
		logger.Error(fmt.Errorf("failed to get %s view: %v", view, err))
		respondErr(w, http.StatusInternalServerError, fmt.Sprintf("Failed to get %s", view), err)
		return
	}

	respondRaw(w, http.StatusOK, body)
}

func validateQueryParams(params url.Values) (*model.WeatherRequest, error) {
	req := &model.WeatherRequest{
		City:   strings.TrimSpace(params.Get("city")),
		Update: strings.EqualFold(params.Get("update"), "true"),
	}

	latStr, lonStr := params.Get("lat"), params.Get("lon")
	if latStr == "" && lonStr == "" {
		return req, nil
	}
	if latStr == "" || lonStr == "" {
		return nil, errors.New("lat and lon parameters should be provided together")
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return nil, fmt.Errorf("lat parameter is not a number: %w", err)
	}
	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		return nil, fmt.Errorf("lon parameter is not a number: %w", err)
	}

	if lat < -90 || lat > 90 {
		return nil, errors.New("lat should be between -90 and 90")
	}
	if lon < -180 || lon > 180 {
		return nil, errors.New("lon should be between -180 and 180")
	}

	req.Latitude, req.Longitude = &lat, &lon
	return req, nil
}
