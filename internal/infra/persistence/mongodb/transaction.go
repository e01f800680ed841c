package mongodb

import (
	"context"

	domainerrors "penpal/internal/domain/errors"
	"penpal/internal/domain/repository"
)

// transactionManager implements repository.TransactionManager. With transactions
// enabled fn runs in a session transaction; otherwise its writes apply one by one
// and an error part way leaves the earlier writes in place.
type transactionManager struct {
	store   *Store
	factory *repositoryFactory
}

// repositoryFactory hands out the store's repositories. Session binding travels in txCtx.
type repositoryFactory struct {
	users   repository.UserRepository
	letters repository.LetterRepository
}

func (f *repositoryFactory) UserRepo() repository.UserRepository {
	return f.users
}

func (f *repositoryFactory) LetterRepo() repository.LetterRepository {
	return f.letters
}

// NewTransactionManager is the constructor for transactionManager.
func NewTransactionManager(store *Store) repository.TransactionManager {
	return &transactionManager{
		store: store,
		factory: &repositoryFactory{
			users:   NewUserRepository(store),
			letters: NewLetterRepository(store),
		},
	}
}

func (tm *transactionManager) Execute(ctx context.Context, fn func(txCtx context.Context, repos repository.RepositoryFactory) error) error {
	if !tm.store.transactions {
		return fn(ctx, tm.factory)
	}

	session, err := tm.store.client.StartSession()
	if err != nil {
		return domainerrors.ErrTransactionFailed.WrapMessage("failed to start MongoDB session: " + err.Error())
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(txCtx context.Context) (any, error) {
		return nil, fn(txCtx, tm.factory)
	})

	return err
}
