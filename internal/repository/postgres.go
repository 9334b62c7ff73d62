package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/katiamach/alaska-weather-api/internal/model"
)

// Postgres stores weather rows in a relational weather table.
type Postgres struct {
	db *gorm.DB
}

// NewPostgres connects to postgres and migrates the weather table. The pool
// is closed if the migration fails.
func NewPostgres(dsn string) (*Postgres, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	p := &Postgres{db: db}
	if err := db.AutoMigrate(&model.Weather{}); err != nil {
		return nil, closeOnError(fmt.Errorf("failed to migrate weather table: %w", err), p.Close)
	}

	return p, nil
}

// UpsertWeather inserts the row or overwrites the row with the same location.
func (p *Postgres) UpsertWeather(ctx context.Context, w *model.Weather) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tx := p.db.WithContext(ctxWithTimeout).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "location"}},
		UpdateAll: true,
	}).Create(w)
	if tx.Error != nil {
		return fmt.Errorf("failed to upsert weather for %s: %w", w.Location, tx.Error)
	}

	return nil
}

// ListWeather gets all weather rows ordered by location.
func (p *Postgres) ListWeather(ctx context.Context) ([]*model.Weather, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	weather := make([]*model.Weather, 0)
	if tx := p.db.WithContext(ctxWithTimeout).Order("location").Find(&weather); tx.Error != nil {
		return nil, tx.Error
	}

	return weather, nil
}

// Ping checks the database is reachable. Used by the health check.
func (p *Postgres) Ping(ctx context.Context) error {
	sqlDB, err := p.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.PingContext(ctx)
}

// Close closes the underlying connection pool.
func (p *Postgres) Close() error {
	sqlDB, err := p.db.DB()
	if err != nil {
		return err
	}

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close postgres: %w", err)
	}

	return nil
}
