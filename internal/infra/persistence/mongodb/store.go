// Package mongodb contains the MongoDB implementation of the persistence layer.
package mongodb

import (
	"context"
	"log/slog"
	"time"

	"penpal/config"
	"penpal/internal/domain/lifecycle"
	"penpal/internal/errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
	"go.uber.org/fx"
)

// Collection names shared with the first release of the service.
const (
	usersCollection   = "users"
	lettersCollection = "letters"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Store holds the client and the collections the repositories work on.
type Store struct {
	client       *mongo.Client
	users        *mongo.Collection
	letters      *mongo.Collection
	transactions bool
}

// New connects to MongoDB. The fx start hook pings the primary and creates indexes.
func New(params Params) (*Store, error) {
	cfg := params.Config.Mongo
	if cfg == nil || cfg.URI == "" {
		return nil, errors.New("mongo configuration is missing")
	}

	client, err := mongo.Connect(options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(cfg.ConnectTimeout))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MongoDB client")
	}

	db := client.Database(cfg.Database)
	store := &Store{
		client:       client,
		users:        db.Collection(usersCollection),
		letters:      db.Collection(lettersCollection),
		transactions: cfg.Transactions,
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx, readpref.Primary()); err != nil {
				return errors.Wrap(err, "failed to ping MongoDB")
			}

			if err := store.ensureIndexes(ctx); err != nil {
				return err
			}

			params.Logger.Info("Connected to MongoDB",
				slog.String("database", cfg.Database),
				slog.Bool("transactions", cfg.Transactions),
			)

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			ctx, cancel := context.WithTimeout(stopCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return errors.WithStack(client.Disconnect(ctx))
		},
	})

	return store, nil
}

func (s *Store) ensureIndexes(ctx context.Context) error {
	if _, err := s.users.Indexes().CreateMany(ctx, userIndexes()); err != nil {
		return errors.Wrap(err, "failed to create user indexes")
	}

	if _, err := s.letters.Indexes().CreateMany(ctx, letterIndexes()); err != nil {
		return errors.Wrap(err, "failed to create letter indexes")
	}

	return nil
}

func userIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{Keys: bson.D{{Key: fieldName, Value: 1}}},
	}
}

func letterIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{Keys: bson.D{{Key: fieldAuthor, Value: 1}}},
		{Keys: bson.D{{Key: fieldRecipient, Value: 1}, {Key: fieldKind, Value: 1}}},
		{Keys: bson.D{{Key: fieldAnswered, Value: 1}}},
	}
}

// now returns the current time at the precision MongoDB stores.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
