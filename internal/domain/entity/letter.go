package entity

import (
	"time"

	"github.com/google/uuid"
)

// LetterKind distinguishes a top-level letter from a reply.
type LetterKind string

const (
	// LetterKindOriginal is a letter submitted to the pool of unanswered letters.
	LetterKindOriginal LetterKind = "carta"
	// LetterKindReply is a letter written in answer to another one.
	LetterKindReply LetterKind = "resposta"
)

// IsValid checks if the kind is one of the known values.
func (k LetterKind) IsValid() bool {
	return k == LetterKindOriginal || k == LetterKindReply
}

// String returns the stored representation of the kind.
func (k LetterKind) String() string {
	return string(k)
}

// Letter is either an original letter or a reply to one.
//
// A letter is answered iff it has at least one reply; only LinkReply changes either field.
// A reply always addresses the author of the letter it answers.
type Letter struct {
	ID          uuid.UUID
	AuthorID    uuid.UUID
	RecipientID *uuid.UUID // Set on replies only.
	ParentID    *uuid.UUID // Set on replies only.
	Body        string
	Kind        LetterKind
	Answered    bool
	Replies     []uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewLetter builds an unanswered original letter. The body is kept as given.
func NewLetter(authorID uuid.UUID, body string) *Letter {
	return &Letter{
		AuthorID: authorID,
		Body:     body,
		Kind:     LetterKindOriginal,
		Answered: false,
		Replies:  []uuid.UUID{},
	}
}

// NewReply builds the reply replierID writes to l. The reply is addressed to l's author
// and is created answered, with no replies of its own.
func (l *Letter) NewReply(replierID uuid.UUID, body string) *Letter {
	recipient := l.AuthorID
	parent := l.ID

	return &Letter{
		AuthorID:    replierID,
		RecipientID: &recipient,
		ParentID:    &parent,
		Body:        body,
		Kind:        LetterKindReply,
		Answered:    true,
		Replies:     []uuid.UUID{},
	}
}

// LinkReply records reply as an answer to l.
func (l *Letter) LinkReply(reply *Letter) {
	l.Answered = true
	l.Replies = append(l.Replies, reply.ID)
}

// EligibleFor reports whether requesterID may draw l: unanswered and written by someone else.
func (l *Letter) EligibleFor(requesterID uuid.UUID) bool {
	return !l.Answered && l.AuthorID != requesterID
}

// InboxLetter is a reply delivered to a user, together with its writer's display name.
type InboxLetter struct {
	Letter     *Letter
	AuthorName string
}
