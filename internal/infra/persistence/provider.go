// Package persistence selects the store behind the repositories.
package persistence

import (
	"log/slog"

	"penpal/config"
	"penpal/internal/domain/constants"
	"penpal/internal/domain/repository"
	"penpal/internal/errors"
	"penpal/internal/infra/persistence/mongodb"
	"penpal/internal/infra/persistence/postgres"

	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// Repositories is what the rest of the application sees of the store.
type Repositories struct {
	fx.Out

	TxManager  repository.TransactionManager
	UserRepo   repository.UserRepository
	LetterRepo repository.LetterRepository
}

// New opens the store named by storage.driver and builds its repositories.
func New(params Params) (Repositories, error) {
	switch params.Config.Storage.Driver {
	case constants.StorageDriverMongo:
		store, err := mongodb.New(mongodb.Params{
			Lifecycle: params.Lc,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return Repositories{}, err
		}
		params.Logger.Info("Using MongoDB storage")

		return Repositories{
			TxManager:  mongodb.NewTransactionManager(store),
			UserRepo:   mongodb.NewUserRepository(store),
			LetterRepo: mongodb.NewLetterRepository(store),
		}, nil

	case constants.StorageDriverPostgres, "":
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lc,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return Repositories{}, err
		}
		params.Logger.Info("Using PostgreSQL storage")

		return Repositories{
			TxManager:  postgres.NewTransactionManager(db),
			UserRepo:   postgres.NewUserRepository(db),
			LetterRepo: postgres.NewLetterRepository(db),
		}, nil

	default:
		return Repositories{}, errors.Errorf("unsupported storage driver %q", params.Config.Storage.Driver)
	}
}
