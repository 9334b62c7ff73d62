// Package repository provides weather persistence backed by MongoDB or Postgres.
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/katiamach/alaska-weather-api/internal/model"
)

// DB collections.
const (
	weatherCollection = "weather"
)

// Repository wraps database and mongo client.
type Repository struct {
	client *mongo.Client
	db     *mongo.Database
}

// New connects to mongo and ensures the unique location index of the weather
// collection. The client is disconnected if the index cannot be created.
func New(ctx context.Context, connString, dbName string) (*Repository, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := NewMongoDBClient(ctxWithTimeout, connString, dbName)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	db := client.Database(dbName)

	err = createIndexes(ctxWithTimeout, db)
	if err != nil {
		return nil, closeOnError(fmt.Errorf("failed to create indexes: %w", err), func() error {
			return client.Disconnect(context.Background())
		})
	}

	return &Repository{
		client: client,
		db:     db,
	}, nil
}

// CreateIndexes creates necessary indexes for collections.
func createIndexes(ctx context.Context, db *mongo.Database) error {
	indexModelWeather := mongo.IndexModel{
		Keys:    bson.M{"location": 1},
		Options: options.Index().SetUnique(true),
	}

	_, err := db.Collection(weatherCollection).Indexes().CreateOne(ctx, indexModelWeather)
	if err != nil {
		return fmt.Errorf("failed to create unique location index: %w", err)
	}

	return nil
}

// Close closes mongo db connection.
func (r *Repository) Close() error {
	if err := r.client.Disconnect(context.TODO()); err != nil {
		return fmt.Errorf("failed to disconnect from mongodb: %w", err)
	}

	return nil
}

// UpsertWeather replaces the weather document of the sample's location, inserting it if absent.
func (r *Repository) UpsertWeather(ctx context.Context, w *model.Weather) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"location": w.Location,
	}

	opts := options.Replace().SetUpsert(true)

	_, err := r.db.Collection(weatherCollection).ReplaceOne(ctxWithTimeout, filter, w, opts)
	if err != nil {
		return fmt.Errorf("failed to upsert weather for %s: %w", w.Location, err)
	}

	return nil
}

// ListWeather gets all persisted weather documents ordered by location.
func (r *Repository) ListWeather(ctx context.Context) ([]*model.Weather, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.M{"location": 1})

	cur, err := r.db.Collection(weatherCollection).Find(ctxWithTimeout, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctxWithTimeout)

	weather := make([]*model.Weather, 0)
	for cur.Next(ctxWithTimeout) {
		w := model.Weather{}
		err := cur.Decode(&w)
		if err != nil {
			return nil, err
		}

		weather = append(weather, &w)
	}

	if err := cur.Err(); err != nil {
		return nil, err
	}

	return weather, nil
}

// closeOnError releases a half-opened connection and returns err together
// with any failure to release it.
func closeOnError(err error, closeFn func() error) error {
	if closeErr := closeFn(); closeErr != nil {
		return errors.Join(err, fmt.Errorf("failed to close connection: %w", closeErr))
	}

	return err
}

// Ping checks the database is reachable. Used by the health check.
func (r *Repository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx, nil)
}
