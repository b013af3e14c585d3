package database

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"

	"ztrack_backend/config"
)

// NewDatabase connects to MongoDB and provides the application database
// handle. The client is disconnected through the fx lifecycle on shutdown.
func NewDatabase(lc fx.Lifecycle, cfg *config.Config) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Database.URL))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Disconnecting from MongoDB...")
			return client.Disconnect(ctx)
		},
	})

	log.Info().Str("database", cfg.Database.Name).Msg("Connected to MongoDB")
	return client.Database(cfg.Database.Name), nil
}

// EnsureIndexes creates the unique indexes backing the dni/email uniqueness
// guarantee. The services still pre-check for friendly conflict messages,
// but a racing insert is rejected here by the store itself.
func EnsureIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := db.Collection("students").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "dni", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("Failed to create student indexes")
		return err
	}
	log.Info().Msg("Student indexes ensured")
	return nil
}
