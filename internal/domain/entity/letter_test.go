package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLetter(t *testing.T) {
	authorID := uuid.New()

	letter := NewLetter(authorID, "")

	assert.Equal(t, LetterKindOriginal, letter.Kind)
	assert.False(t, letter.Answered)
	assert.NotNil(t, letter.Replies)
	assert.Empty(t, letter.Replies)
	assert.Nil(t, letter.RecipientID)
	assert.Nil(t, letter.ParentID)
}

func TestLetter_NewReplyAddressesParentAuthor(t *testing.T) {
	anaID := uuid.New()
	bobID := uuid.New()
	parent := NewLetter(anaID, "olá")
	parent.ID = uuid.New()

	reply := parent.NewReply(bobID, "oi")

	assert.Equal(t, bobID, reply.AuthorID)
	require.NotNil(t, reply.RecipientID)
	assert.Equal(t, anaID, *reply.RecipientID)
	require.NotNil(t, reply.ParentID)
	assert.Equal(t, parent.ID, *reply.ParentID)
	assert.True(t, reply.Answered)
	assert.Equal(t, LetterKindReply, reply.Kind)
	assert.False(t, parent.Answered, "building a reply does not link it")
}

func TestLetter_LinkReply(t *testing.T) {
	parent := NewLetter(uuid.New(), "olá")
	first := &Letter{ID: uuid.New()}
	second := &Letter{ID: uuid.New()}

	parent.LinkReply(first)
	parent.LinkReply(second)

	assert.True(t, parent.Answered)
	assert.Equal(t, []uuid.UUID{first.ID, second.ID}, parent.Replies)
}

func TestLetter_EligibleFor(t *testing.T) {
	authorID := uuid.New()
	otherID := uuid.New()

	letter := NewLetter(authorID, "olá")
	assert.True(t, letter.EligibleFor(otherID))
	assert.False(t, letter.EligibleFor(authorID))

	letter.LinkReply(&Letter{ID: uuid.New()})
	assert.False(t, letter.EligibleFor(otherID))
}

func TestLetterKind_IsValid(t *testing.T) {
	assert.True(t, LetterKindOriginal.IsValid())
	assert.True(t, LetterKindReply.IsValid())
	assert.False(t, LetterKind("rascunho").IsValid())
}
