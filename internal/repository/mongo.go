package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// NewMongoDBClient connects to connString/dbName and pings the primary. Both
// steps share a 10s budget, and a client that fails the ping is disconnected.
func NewMongoDBClient(ctx context.Context, connString, dbName string) (*mongo.Client, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	connectionURI := fmt.Sprintf("%s/%s", connString, dbName)

	clientOptions := options.Client().ApplyURI(connectionURI)
	client, err := mongo.Connect(ctxWithTimeout, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect: %w", err)
	}

	err = client.Ping(ctxWithTimeout, readpref.Primary())
	if err != nil {
		return nil, closeOnError(fmt.Errorf("failed to ping: %w", err), func() error {
			return client.Disconnect(context.Background())
		})
	}

	return client, nil
}
