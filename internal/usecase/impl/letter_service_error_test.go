package impl

import (
	"context"
	"testing"

	"penpal/internal/domain/entity"
	domainerrors "penpal/internal/domain/errors"
	"penpal/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLetterService_Submit_UnknownAuthor(t *testing.T) {
	fx := createTestLetterService(t)

	ctx := context.Background()
	authorID := uuid.New()

	fx.expectTransaction()
	fx.userRepo.EXPECT().FindByID(ctx, authorID).Return(nil, repository.ErrUserNotFound)

	letter, err := fx.service.Submit(ctx, authorID, "olá")

	require.Error(t, err)
	assert.Nil(t, letter)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestLetterService_Submit_AppendFailureIsReturned(t *testing.T) {
	fx := createTestLetterService(t)

	ctx := context.Background()
	authorID := uuid.New()
	dbErr := errors.New("connection reset")

	fx.expectTransaction()
	fx.userRepo.EXPECT().FindByID(ctx, authorID).Return(&entity.User{ID: authorID}, nil)
	fx.letterRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Letter")).RunAndReturn(assignLetterID(uuid.New()))
	fx.userRepo.EXPECT().AppendSentLetter(ctx, authorID, mock.Anything).Return(dbErr)

	_, err := fx.service.Submit(ctx, authorID, "olá")

	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
}

func TestLetterService_DrawUnanswered_NoneEligible(t *testing.T) {
	fx := createTestLetterService(t)

	ctx := context.Background()
	requesterID := uuid.New()

	fx.letterRepo.EXPECT().SampleUnanswered(ctx, requesterID).Return(nil, repository.ErrNoEligibleLetter)

	letter, err := fx.service.DrawUnanswered(ctx, requesterID)

	assert.Nil(t, letter)
	assert.ErrorIs(t, err, domainerrors.ErrNoUnansweredLetters)
}

func TestLetterService_DrawUnanswered_StoreFailure(t *testing.T) {
	fx := createTestLetterService(t)

	ctx := context.Background()
	requesterID := uuid.New()
	dbErr := errors.New("timeout")

	fx.letterRepo.EXPECT().SampleUnanswered(ctx, requesterID).Return(nil, dbErr)

	_, err := fx.service.DrawUnanswered(ctx, requesterID)

	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, domainerrors.ErrNoUnansweredLetters)
}

func TestLetterService_Reply_BlankBodyIsRejectedBeforeStore(t *testing.T) {
	for _, body := range []string{"", "   ", "\n\t"} {
		t.Run("body="+body, func(t *testing.T) {
			fx := createTestLetterService(t)

			output, err := fx.service.Reply(context.Background(), uuid.New(), uuid.New(), body)

			assert.Nil(t, output)
			assert.ErrorIs(t, err, domainerrors.ErrEmptyReplyBody)
		})
	}
}

func TestLetterService_Reply_ParentNotFound(t *testing.T) {
	fx := createTestLetterService(t)

	ctx := context.Background()
	parentID := uuid.New()

	fx.expectTransaction()
	fx.letterRepo.EXPECT().FindByID(ctx, parentID).Return(nil, repository.ErrLetterNotFound)

	_, err := fx.service.Reply(ctx, parentID, uuid.New(), "oi")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrLetterNotFound)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, parentID.String(), appErr.Details())
}

func TestLetterService_Reply_LinkFailureIsReturned(t *testing.T) {
	fx := createTestLetterService(t)

	ctx := context.Background()
	anaID := uuid.New()
	bobID := uuid.New()
	replyID := uuid.New()
	parent := entity.NewLetter(anaID, "olá")
	parent.ID = uuid.New()
	dbErr := errors.New("write conflict")

	fx.expectTransaction()
	fx.letterRepo.EXPECT().FindByID(ctx, parent.ID).Return(parent, nil)
	fx.letterRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Letter")).RunAndReturn(assignLetterID(replyID))
	fx.letterRepo.EXPECT().MarkAnswered(ctx, parent.ID, replyID).Return(nil)
	fx.userRepo.EXPECT().AppendReceivedLetter(ctx, anaID, replyID).Return(dbErr)

	output, err := fx.service.Reply(ctx, parent.ID, bobID, "oi")

	assert.Nil(t, output)
	assert.ErrorIs(t, err, dbErr)
}

func TestLetterService_Reply_ParentVanishedBeforeMark(t *testing.T) {
	fx := createTestLetterService(t)

	ctx := context.Background()
	bobID := uuid.New()
	replyID := uuid.New()
	parent := entity.NewLetter(uuid.New(), "olá")
	parent.ID = uuid.New()

	fx.expectTransaction()
	fx.letterRepo.EXPECT().FindByID(ctx, parent.ID).Return(parent, nil)
	fx.letterRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Letter")).RunAndReturn(assignLetterID(replyID))
	fx.letterRepo.EXPECT().MarkAnswered(ctx, parent.ID, replyID).Return(repository.ErrLetterNotFound)

	_, err := fx.service.Reply(ctx, parent.ID, bobID, "oi")

	assert.ErrorIs(t, err, domainerrors.ErrLetterNotFound)
}

func TestLetterService_Delete_NoIDs(t *testing.T) {
	fx := createTestLetterService(t)

	deleted, err := fx.service.Delete(context.Background(), nil)

	assert.Zero(t, deleted)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidLetterIDs)
}

func TestLetterService_Delete_StoreFailure(t *testing.T) {
	fx := createTestLetterService(t)

	ctx := context.Background()
	ids := []uuid.UUID{uuid.New()}

	fx.letterRepo.EXPECT().DeleteByIDs(ctx, ids).Return(int64(0), errors.New("disk full"))

	_, err := fx.service.Delete(ctx, ids)

	assert.ErrorIs(t, err, domainerrors.ErrLetterDeletionFailed)
}

func TestLetterService_DrawUnanswered_RejectsIneligibleSample(t *testing.T) {
	requesterID := uuid.New()

	own := entity.NewLetter(requesterID, "minha")
	own.ID = uuid.New()

	answered := entity.NewLetter(uuid.New(), "já respondida")
	answered.ID = uuid.New()
	answered.LinkReply(&entity.Letter{ID: uuid.New()})

	tests := []struct {
		name   string
		letter *entity.Letter
	}{
		{name: "own letter", letter: own},
		{name: "answered letter", letter: answered},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestLetterService(t)
			ctx := context.Background()

			fx.letterRepo.EXPECT().SampleUnanswered(ctx, requesterID).Return(tt.letter, nil)

			letter, err := fx.service.DrawUnanswered(ctx, requesterID)

			assert.Nil(t, letter)
			assert.ErrorIs(t, err, domainerrors.ErrNoUnansweredLetters)
		})
	}
}
