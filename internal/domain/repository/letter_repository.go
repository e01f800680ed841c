package repository

import (
	"context"
	"errors"

	"penpal/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrLetterNotFound is returned when a letter id does not resolve.
	ErrLetterNotFound = errors.New("letter not found")

	// ErrNoEligibleLetter is returned by SampleUnanswered when nothing can be drawn.
	ErrNoEligibleLetter = errors.New("no eligible letter")
)

// LetterRepository defines persistence for letters and replies.
type LetterRepository interface {
	// Create persists a letter and fills in the store-assigned ID and timestamps.
	Create(ctx context.Context, letter *entity.Letter) error

	// FindByID retrieves a letter with its reply ids.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Letter, error)

	// FindByAuthor retrieves the letters written by authorID, oldest first.
	FindByAuthor(ctx context.Context, authorID uuid.UUID) ([]*entity.Letter, error)

	// FindByRecipient retrieves the letters addressed to recipientID, oldest first.
	// A nil kind matches every kind.
	FindByRecipient(ctx context.Context, recipientID uuid.UUID, kind *entity.LetterKind) ([]*entity.Letter, error)

	// SampleUnanswered picks one unanswered letter not written by excludeAuthorID,
	// uniformly at random. It returns ErrNoEligibleLetter when the eligible set is empty.
	SampleUnanswered(ctx context.Context, excludeAuthorID uuid.UUID) (*entity.Letter, error)

	// MarkAnswered flags the letter as answered and records replyID as one of its replies.
	MarkAnswered(ctx context.Context, letterID, replyID uuid.UUID) error

	// DeleteByIDs removes the given letters and returns how many existed.
	// References held by mailboxes or other letters are not cleaned up.
	DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error)
}
