package impl

import (
	"context"
	"testing"

	"penpal/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLetterService_ListByAuthor(t *testing.T) {
	fx := createTestLetterService(t)

	ctx := context.Background()
	authorID := uuid.New()
	letters := []*entity.Letter{entity.NewLetter(authorID, "a"), entity.NewLetter(authorID, "b")}

	fx.letterRepo.EXPECT().FindByAuthor(ctx, authorID).Return(letters, nil)

	got, err := fx.service.ListByAuthor(ctx, authorID)

	require.NoError(t, err)
	assert.Equal(t, letters, got)
}

func TestLetterService_ListReceived_AnyKind(t *testing.T) {
	fx := createTestLetterService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.letterRepo.EXPECT().FindByRecipient(ctx, userID, (*entity.LetterKind)(nil)).Return([]*entity.Letter{}, nil)

	got, err := fx.service.ListReceived(ctx, userID)

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLetterService_Inbox_ResolvesWriterNames(t *testing.T) {
	fx := createTestLetterService(t)

	ctx := context.Background()
	anaID := uuid.New()
	bobID := uuid.New()
	goneID := uuid.New()

	parent := entity.NewLetter(anaID, "olá")
	parent.ID = uuid.New()
	fromBob := parent.NewReply(bobID, "oi")
	fromBobAgain := parent.NewReply(bobID, "oi de novo")
	fromGone := parent.NewReply(goneID, "tchau")

	fx.letterRepo.EXPECT().
		FindByRecipient(ctx, anaID, mock.MatchedBy(func(kind *entity.LetterKind) bool {
			return kind != nil && *kind == entity.LetterKindReply
		})).
		Return([]*entity.Letter{fromBob, fromBobAgain, fromGone}, nil)
	fx.userRepo.EXPECT().
		FindNames(ctx, []uuid.UUID{bobID, goneID}).
		Return(map[uuid.UUID]string{bobID: "bob"}, nil)

	inbox, err := fx.service.Inbox(ctx, anaID)

	require.NoError(t, err)
	require.Len(t, inbox, 3)
	assert.Equal(t, "bob", inbox[0].AuthorName)
	assert.Equal(t, "bob", inbox[1].AuthorName)
	assert.Empty(t, inbox[2].AuthorName)
	assert.Same(t, fromGone, inbox[2].Letter)
}

func TestLetterService_Inbox_EmptySkipsNameLookup(t *testing.T) {
	fx := createTestLetterService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.letterRepo.EXPECT().FindByRecipient(ctx, userID, mock.Anything).Return(nil, nil)

	inbox, err := fx.service.Inbox(ctx, userID)

	require.NoError(t, err)
	assert.Empty(t, inbox)
}

func TestLetterService_Delete_ReturnsCount(t *testing.T) {
	fx := createTestLetterService(t)

	ctx := context.Background()
	ids := []uuid.UUID{uuid.New(), uuid.New()}

	fx.letterRepo.EXPECT().DeleteByIDs(ctx, ids).Return(int64(1), nil)

	deleted, err := fx.service.Delete(ctx, ids)

	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)
}
