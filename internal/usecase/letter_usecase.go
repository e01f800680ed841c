package usecase

import (
	"context"

	"penpal/internal/domain/entity"

	"github.com/google/uuid"
)

// ReplyOutput is the result of linking a reply to its parent letter.
type ReplyOutput struct {
	Reply  *entity.Letter
	Parent *entity.Letter // Parent as it stands after the link.
}

// LetterUsecase defines the letter exchange operations.
type LetterUsecase interface {
	// Submit writes a new original letter and files it in the author's sent mailbox.
	Submit(ctx context.Context, authorID uuid.UUID, body string) (*entity.Letter, error)

	// DrawUnanswered hands requesterID one random unanswered letter written by someone else.
	// Drawing reserves nothing.
	DrawUnanswered(ctx context.Context, requesterID uuid.UUID) (*entity.Letter, error)

	// Reply answers parentID on behalf of replierID and links the reply to the parent
	// letter and to the parent author's received mailbox.
	Reply(ctx context.Context, parentID, replierID uuid.UUID, body string) (*ReplyOutput, error)

	// ListByAuthor returns the letters written by authorID.
	ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]*entity.Letter, error)

	// ListReceived returns the letters addressed to userID.
	ListReceived(ctx context.Context, userID uuid.UUID) ([]*entity.Letter, error)

	// Inbox returns the replies addressed to userID along with their writers' names.
	Inbox(ctx context.Context, userID uuid.UUID) ([]*entity.InboxLetter, error)

	// Delete removes the given letters without touching references to them.
	Delete(ctx context.Context, ids []uuid.UUID) (int64, error)
}
