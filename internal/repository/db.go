package repository

import (
	"context"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

type Config struct {
	URI            string
	Database       string
	ConnectTimeout time.Duration
	PingTimeout    time.Duration
}

// Open connects a Mongo client and returns it with the database handle.
func Open(ctx context.Context, cfg Config, logger *slog.Logger) (*mongo.Client, *mongo.Database, error) {
	logger.Info("connecting to database", "uri", cfg.URI, "db", cfg.Database)

	opts := options.Client().ApplyURI(cfg.URI).SetAppName("campus-records")
	if cfg.ConnectTimeout > 0 {
		opts = opts.SetConnectTimeout(cfg.ConnectTimeout)
	}
	client, err := mongo.Connect(opts)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		return nil, nil, err
	}

	logger.Info("successfully connected to database")
	return client, client.Database(cfg.Database), nil
}

// Close disconnects the client gracefully.
func Close(ctx context.Context, client *mongo.Client, logger *slog.Logger) {
	logger.Info("closing database connection")
	if client != nil {
		if err := client.Disconnect(ctx); err != nil {
			logger.Error("failed to disconnect client", "error", err)
		}
	}
	logger.Info("database connection closed")
}

// HealthCheck pings the primary to catch URI issues early.
func HealthCheck(ctx context.Context, client *mongo.Client, timeout time.Duration, logger *slog.Logger) error {
	logger.Debug("pinging database")
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return err
	}
	logger.Debug("database ping successful")
	return nil
}

// EnsureIndexes creates the content-hash lookup index on every record
// collection that exists so upserts stay cheap. Best effort per collection.
func EnsureIndexes(ctx context.Context, db *mongo.Database, collections []string, logger *slog.Logger) {
	model := mongo.IndexModel{
		Keys:    bson.D{{Key: "content_hash", Value: 1}},
		Options: options.Index().SetSparse(true),
	}
	for _, name := range collections {
		if _, err := db.Collection(name).Indexes().CreateOne(ctx, model); err != nil {
			logger.Warn("index creation failed", "collection", name, "error", err)
		}
	}
}
