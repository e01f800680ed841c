package impl

import (
	"context"
	"testing"

	"penpal/internal/domain/constants"
	"penpal/internal/domain/entity"
	"penpal/internal/domain/repository"
	"penpal/internal/domain/service"
	mockRepo "penpal/internal/mocks/repository"
	mockService "penpal/internal/mocks/service"
	"penpal/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// letterServiceFixtures holds all test dependencies for letter service tests.
type letterServiceFixtures struct {
	service    usecase.LetterUsecase
	txManager  *mockRepo.MockTransactionManager
	factory    *mockRepo.MockRepositoryFactory
	userRepo   *mockRepo.MockUserRepository
	letterRepo *mockRepo.MockLetterRepository
	publisher  *mockService.MockEventPublisher
}

func createTestLetterService(t *testing.T) letterServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	letterRepo := mockRepo.NewMockLetterRepository(t)
	publisher := mockService.NewMockEventPublisher(t)

	svc := NewLetterService(LetterServiceParams{
		TxManager:  txManager,
		UserRepo:   userRepo,
		LetterRepo: letterRepo,
		Publisher:  publisher,
		Logger:     newDiscardLogger(),
	})

	return letterServiceFixtures{
		service:    svc,
		txManager:  txManager,
		factory:    factory,
		userRepo:   userRepo,
		letterRepo: letterRepo,
		publisher:  publisher,
	}
}

// expectTransaction makes Execute run the callback against the fixture repositories.
func (f letterServiceFixtures) expectTransaction() {
	f.factory.EXPECT().UserRepo().Return(f.userRepo).Maybe()
	f.factory.EXPECT().LetterRepo().Return(f.letterRepo).Maybe()

	f.txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(context.Context, repository.RepositoryFactory) error) error {
			return fn(ctx, f.factory)
		}).
		Once()
}

func assignLetterID(id uuid.UUID) func(context.Context, *entity.Letter) error {
	return func(_ context.Context, letter *entity.Letter) error {
		letter.ID = id

		return nil
	}
}

func TestLetterService_Submit_Success(t *testing.T) {
	fx := createTestLetterService(t)

	ctx := context.Background()
	authorID := uuid.New()
	letterID := uuid.New()

	fx.expectTransaction()
	fx.userRepo.EXPECT().FindByID(ctx, authorID).Return(&entity.User{ID: authorID}, nil)
	fx.letterRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Letter")).
		RunAndReturn(assignLetterID(letterID))
	fx.userRepo.EXPECT().AppendSentLetter(ctx, authorID, letterID).Return(nil)
	fx.publisher.EXPECT().
		PublishLetterEvent(ctx, mock.MatchedBy(func(event *service.LetterEvent) bool {
			return event.Type == constants.EventLetterSubmitted &&
				event.LetterID == letterID.String() &&
				event.AuthorID == authorID.String() &&
				event.EventID != "" &&
				!event.OccurredAt.IsZero()
		})).
		Return(nil)

	letter, err := fx.service.Submit(ctx, authorID, "Querido amigo")

	require.NoError(t, err)
	assert.Equal(t, letterID, letter.ID)
	assert.Equal(t, authorID, letter.AuthorID)
	assert.Equal(t, "Querido amigo", letter.Body)
	assert.Equal(t, entity.LetterKindOriginal, letter.Kind)
	assert.False(t, letter.Answered)
	assert.Empty(t, letter.Replies)
	assert.Nil(t, letter.ParentID)
}

func TestLetterService_Submit_EmptyBodyIsAccepted(t *testing.T) {
	fx := createTestLetterService(t)

	ctx := context.Background()
	authorID := uuid.New()

	fx.expectTransaction()
	fx.userRepo.EXPECT().FindByID(ctx, authorID).Return(&entity.User{ID: authorID}, nil)
	fx.letterRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Letter")).RunAndReturn(assignLetterID(uuid.New()))
	fx.userRepo.EXPECT().AppendSentLetter(ctx, authorID, mock.Anything).Return(nil)
	fx.publisher.EXPECT().PublishLetterEvent(ctx, mock.Anything).Return(nil)

	letter, err := fx.service.Submit(ctx, authorID, "")

	require.NoError(t, err)
	assert.Empty(t, letter.Body)
}

func TestLetterService_Submit_PublishFailureDoesNotFail(t *testing.T) {
	fx := createTestLetterService(t)

	ctx := context.Background()
	authorID := uuid.New()

	fx.expectTransaction()
	fx.userRepo.EXPECT().FindByID(ctx, authorID).Return(&entity.User{ID: authorID}, nil)
	fx.letterRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Letter")).RunAndReturn(assignLetterID(uuid.New()))
	fx.userRepo.EXPECT().AppendSentLetter(ctx, authorID, mock.Anything).Return(nil)
	fx.publisher.EXPECT().PublishLetterEvent(ctx, mock.Anything).Return(errors.New("queue down"))

	letter, err := fx.service.Submit(ctx, authorID, "olá")

	require.NoError(t, err)
	assert.NotNil(t, letter)
}

func TestLetterService_DrawUnanswered_Success(t *testing.T) {
	fx := createTestLetterService(t)

	ctx := context.Background()
	requesterID := uuid.New()
	expected := entity.NewLetter(uuid.New(), "olá")
	expected.ID = uuid.New()

	fx.letterRepo.EXPECT().SampleUnanswered(ctx, requesterID).Return(expected, nil)

	letter, err := fx.service.DrawUnanswered(ctx, requesterID)

	require.NoError(t, err)
	assert.Equal(t, expected, letter)
	assert.True(t, letter.EligibleFor(requesterID))
}

func TestLetterService_Reply_Success(t *testing.T) {
	fx := createTestLetterService(t)

	ctx := context.Background()
	anaID := uuid.New()
	bobID := uuid.New()
	replyID := uuid.New()

	parent := entity.NewLetter(anaID, "olá")
	parent.ID = uuid.New()

	fx.expectTransaction()
	fx.letterRepo.EXPECT().FindByID(ctx, parent.ID).Return(parent, nil)
	fx.letterRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(reply *entity.Letter) bool {
			return reply.Kind == entity.LetterKindReply &&
				reply.AuthorID == bobID &&
				reply.ParentID != nil && *reply.ParentID == parent.ID &&
				reply.RecipientID != nil && *reply.RecipientID == anaID &&
				reply.Answered
		})).
		RunAndReturn(assignLetterID(replyID))
	fx.letterRepo.EXPECT().MarkAnswered(ctx, parent.ID, replyID).Return(nil)
	fx.userRepo.EXPECT().AppendReceivedLetter(ctx, anaID, replyID).Return(nil)
	fx.publisher.EXPECT().
		PublishLetterEvent(ctx, mock.MatchedBy(func(event *service.LetterEvent) bool {
			return event.Type == constants.EventLetterReplied &&
				event.LetterID == replyID.String() &&
				event.RecipientID == anaID.String() &&
				event.ParentID == parent.ID.String()
		})).
		Return(nil)

	output, err := fx.service.Reply(ctx, parent.ID, bobID, "oi")

	require.NoError(t, err)
	assert.Equal(t, replyID, output.Reply.ID)
	assert.Equal(t, "oi", output.Reply.Body)
	assert.True(t, output.Parent.Answered)
	assert.Equal(t, []uuid.UUID{replyID}, output.Parent.Replies)
}

func TestLetterService_Reply_ToAnsweredLetterAppendsAnotherReply(t *testing.T) {
	fx := createTestLetterService(t)

	ctx := context.Background()
	anaID := uuid.New()
	carolID := uuid.New()
	firstReply := uuid.New()
	secondReply := uuid.New()

	parent := entity.NewLetter(anaID, "olá")
	parent.ID = uuid.New()
	parent.Answered = true
	parent.Replies = []uuid.UUID{firstReply}

	fx.expectTransaction()
	fx.letterRepo.EXPECT().FindByID(ctx, parent.ID).Return(parent, nil)
	fx.letterRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Letter")).RunAndReturn(assignLetterID(secondReply))
	fx.letterRepo.EXPECT().MarkAnswered(ctx, parent.ID, secondReply).Return(nil)
	fx.userRepo.EXPECT().AppendReceivedLetter(ctx, anaID, secondReply).Return(nil)
	fx.publisher.EXPECT().PublishLetterEvent(ctx, mock.Anything).Return(nil)

	output, err := fx.service.Reply(ctx, parent.ID, carolID, "também")

	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{firstReply, secondReply}, output.Parent.Replies)
}

func TestLetterService_Reply_UnregisteredReplierIsLinked(t *testing.T) {
	fx := createTestLetterService(t)

	ctx := context.Background()
	anaID := uuid.New()
	strangerID := uuid.New()
	replyID := uuid.New()

	parent := entity.NewLetter(anaID, "olá")
	parent.ID = uuid.New()

	fx.expectTransaction()
	fx.letterRepo.EXPECT().FindByID(ctx, parent.ID).Return(parent, nil)
	fx.letterRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(reply *entity.Letter) bool {
			return reply.AuthorID == strangerID
		})).
		RunAndReturn(assignLetterID(replyID))
	fx.letterRepo.EXPECT().MarkAnswered(ctx, parent.ID, replyID).Return(nil)
	fx.userRepo.EXPECT().AppendReceivedLetter(ctx, anaID, replyID).Return(nil)
	fx.publisher.EXPECT().PublishLetterEvent(ctx, mock.Anything).Return(nil)

	output, err := fx.service.Reply(ctx, parent.ID, strangerID, "oi")

	require.NoError(t, err)
	assert.Equal(t, strangerID, output.Reply.AuthorID)
	assert.True(t, output.Parent.Answered)
	assert.Equal(t, []uuid.UUID{replyID}, output.Parent.Replies)
	fx.userRepo.AssertNotCalled(t, "FindByID", mock.Anything, strangerID)
}
