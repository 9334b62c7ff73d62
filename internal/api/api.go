package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/jonboulle/clockwork"

	"github.com/katiamach/alaska-weather-api/internal/cache"
	"github.com/katiamach/alaska-weather-api/internal/config"
	"github.com/katiamach/alaska-weather-api/internal/dashboard"
	"github.com/katiamach/alaska-weather-api/internal/logger"
	"github.com/katiamach/alaska-weather-api/internal/metrics"
	"github.com/katiamach/alaska-weather-api/internal/notify"
	"github.com/katiamach/alaska-weather-api/internal/repository"
	"github.com/katiamach/alaska-weather-api/internal/scheduler"
	"github.com/katiamach/alaska-weather-api/internal/service"
	"github.com/katiamach/alaska-weather-api/internal/synth"
	"github.com/katiamach/alaska-weather-api/internal/transport/rest/handler"
)

// store is a weather repository that holds a connection.
type store interface {
	service.Repository
	handler.Pinger
	Close() error
}

// RunAPI runs weather service API until SIGINT or SIGTERM.
func RunAPI() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.SetLevel(cfg.LogLevel); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}

	m := metrics.New()
	clock := clockwork.NewRealClock()

	var repo service.Repository
	if st != nil {
		repo = st
		defer func() {
			if err := st.Close(); err != nil {
				logger.Error(err)
			}
		}()
	}

	svc := service.New(repo, synth.NewRandom(), clock, m)
	board := dashboard.New(svc, cache.NewTimed(cfg.ViewTTL, clock), m)
	svc.SetInvalidator(board)

	jobs := []scheduler.Job{{
		Name:     dashboard.ViewTides,
		Interval: cfg.TideInterval,
		Run: func(ctx context.Context) error {
			return board.Refresh(ctx, dashboard.ViewTides)
		},
	}}
	if svc.PersistenceEnabled() {
		jobs = append(jobs, scheduler.Job{
			Name:     dashboard.ViewWeather,
			Interval: cfg.WeatherInterval,
			Run:      svc.RefreshWeather,
		})
	}
	go scheduler.New(clock, jobs...).Run(ctx)

	if cfg.NotificationsEnabled() {
		listener := notify.NewListener(notify.NewKafkaReader(cfg.KafkaBrokers, cfg.KafkaTopic, cfg.KafkaGroupID), board, m)
		defer func() {
			if err := listener.Close(); err != nil {
				logger.Error(fmt.Errorf("failed to close change listener: %w", err))
			}
		}()

		go func() {
			if err := listener.Run(ctx); err != nil {
				logger.Error(err)
			}
		}()
		logger.Info(fmt.Sprintf("Listening for changes on topic %s", cfg.KafkaTopic))
	}

	server := handler.NewWeatherServer(svc, board)
	if st != nil {
		server.SetStore(st)
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      NewRouter(server, m, cfg.AllowedOrigins),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	errs := make(chan error, 1)
	go func() {
		logger.Info(fmt.Sprintf("Starting weather service api at port %s", cfg.Port))
		errs <- srv.ListenAndServe()
	}()

	select {
	case err := <-errs:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
		logger.Info("Shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}

// NewRouter registers weather service routes.
func NewRouter(server *handler.WeatherServer, m *metrics.Metrics, origins []string) http.Handler {
	r := mux.NewRouter()
	r.Use(m.LatencyHandler)

	r.HandleFunc("/get-weather", server.GetWeatherHandler).Methods("GET")
	r.HandleFunc("/weather", server.GetStoredWeatherHandler).Methods("GET")
	r.HandleFunc("/tides", server.GetTidesHandler).Methods("GET")
	r.HandleFunc("/daylight", server.GetDaylightHandler).Methods("GET")
	r.HandleFunc("/healthz", server.HealthHandler).Methods("GET")
	r.Handle("/metrics", metrics.Handler()).Methods("GET")

	options := setupCorsOptions(origins)
	recovery := handlers.RecoveryHandler(handlers.RecoveryLogger(logger.Logrus()), handlers.PrintRecoveryStack(true))

	return recovery(handlers.CORS(options...)(r))
}

func openStore(ctx context.Context, cfg *config.Config) (store, error) {
	switch cfg.StoreDriver {
	case config.DriverMongo:
		repo, err := repository.New(ctx, cfg.DBConnString, cfg.DBName)
		if err != nil {
			return nil, fmt.Errorf("failed to open mongo store: %w", err)
		}
		logger.Info("Persisting weather to mongodb")
		return repo, nil
	case config.DriverPostgres:
		repo, err := repository.NewPostgres(cfg.PostgresDSN)
		if err != nil {
			return nil, fmt.Errorf("failed to open postgres store: %w", err)
		}
		logger.Info("Persisting weather to postgres")
		return repo, nil
	default:
		logger.Info("No store configured, weather will not be persisted")
		return nil, nil
	}
}
