package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a specific store.
type TransactionManager interface {
	// Execute runs fn within a transaction. If fn returns an error the transaction is
	// rolled back, otherwise it is committed. fn must use txCtx and the repositories
	// vended by repos for every call that belongs to the transaction.
	Execute(ctx context.Context, fn func(txCtx context.Context, repos RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to a specific transaction.
type RepositoryFactory interface {
	// UserRepo returns a UserRepository bound to the current transaction.
	UserRepo() UserRepository

	// LetterRepo returns a LetterRepository bound to the current transaction.
	LetterRepo() LetterRepository
}
