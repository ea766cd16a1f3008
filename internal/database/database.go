package database

import (
	"context"
	"fmt"
	"time"

	"hospital-finder-backend/internal/config"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const defaultConnectTimeout = 10 * time.Second

func connectTimeout(cfg *config.Config) time.Duration {
	if cfg.Database.ConnectTimeout > 0 {
		return cfg.Database.ConnectTimeout
	}
	return defaultConnectTimeout
}

// NewClient creates a MongoDB client without waiting for the server.
// Operations fail until the deployment becomes reachable.
func NewClient(ctx context.Context, cfg *config.Config) (*mongo.Client, error) {
	clientOpts := options.Client().
		ApplyURI(cfg.Database.URI).
		SetMaxPoolSize(100).
		SetMinPoolSize(10).
		SetMaxConnIdleTime(time.Hour).
		SetServerSelectionTimeout(connectTimeout(cfg))

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	return client, nil
}

// Ping verifies the client can reach the primary within timeout
func Ping(ctx context.Context, client *mongo.Client, timeout time.Duration) error {
	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		return fmt.Errorf("failed to ping mongodb: %w", err)
	}
	return nil
}

// Connect opens a MongoDB client and verifies it with a ping.
// The caller owns the client and must Disconnect it.
func Connect(ctx context.Context, cfg *config.Config) (*mongo.Client, error) {
	client, err := NewClient(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if err := Ping(ctx, client, connectTimeout(cfg)); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	log.Info().Str("database", cfg.Database.Name).Msg("Successfully connected to MongoDB")

	return client, nil
}

// Disconnect closes the client, logging instead of failing.
func Disconnect(client *mongo.Client) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultConnectTimeout)
	defer cancel()

	if err := client.Disconnect(ctx); err != nil {
		log.Warn().Err(err).Msg("Failed to disconnect from MongoDB")
		return
	}
	log.Info().Msg("MongoDB connection closed")
}
