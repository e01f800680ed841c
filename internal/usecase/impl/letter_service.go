package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "penpal/internal/delivery/context"
	"penpal/internal/domain/constants"
	"penpal/internal/domain/entity"
	domainerrors "penpal/internal/domain/errors"
	"penpal/internal/domain/repository"
	"penpal/internal/domain/service"
	"penpal/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// letterService implements the LetterUsecase interface.
type letterService struct {
	txManager  repository.TransactionManager
	userRepo   repository.UserRepository
	letterRepo repository.LetterRepository
	publisher  service.EventPublisher
	logger     *slog.Logger
}

// LetterServiceParams holds dependencies for LetterService, injected by Fx.
type LetterServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	UserRepo   repository.UserRepository
	LetterRepo repository.LetterRepository
	Publisher  service.EventPublisher
	Logger     *slog.Logger
}

// NewLetterService creates a new letter service instance
func NewLetterService(params LetterServiceParams) usecase.LetterUsecase {
	return &letterService{
		txManager:  params.TxManager,
		userRepo:   params.UserRepo,
		letterRepo: params.LetterRepo,
		publisher:  params.Publisher,
		logger:     params.Logger,
	}
}

func (s *letterService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Submit creates an original letter and appends it to the author's sent mailbox.
func (s *letterService) Submit(ctx context.Context, authorID uuid.UUID, body string) (*entity.Letter, error) {
	letter := entity.NewLetter(authorID, body)

	err := s.txManager.Execute(ctx, func(txCtx context.Context, repos repository.RepositoryFactory) error {
		if _, err := repos.UserRepo().FindByID(txCtx, authorID); err != nil {
			return mapUserLookupError(err, authorID)
		}

		if err := repos.LetterRepo().Create(txCtx, letter); err != nil {
			return errors.Wrap(err, "failed to create letter")
		}

		if err := repos.UserRepo().AppendSentLetter(txCtx, authorID, letter.ID); err != nil {
			return mapUserLookupError(err, authorID)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log(ctx).Info("Letter submitted",
		slog.String("letter_id", letter.ID.String()),
		slog.String("author_id", authorID.String()),
	)

	s.publish(ctx, &service.LetterEvent{
		Type:     constants.EventLetterSubmitted,
		LetterID: letter.ID.String(),
		AuthorID: authorID.String(),
	})

	return letter, nil
}

// DrawUnanswered picks one eligible letter at random.
func (s *letterService) DrawUnanswered(ctx context.Context, requesterID uuid.UUID) (*entity.Letter, error) {
	letter, err := s.letterRepo.SampleUnanswered(ctx, requesterID)
	if err != nil {
		if errors.Is(err, repository.ErrNoEligibleLetter) {
			return nil, domainerrors.ErrNoUnansweredLetters
		}

		return nil, errors.Wrap(err, "failed to sample unanswered letter")
	}

	if !letter.EligibleFor(requesterID) {
		s.log(ctx).Warn("Store sampled an ineligible letter",
			slog.String("letter_id", letter.ID.String()),
			slog.String("requester_id", requesterID.String()),
		)

		return nil, domainerrors.ErrNoUnansweredLetters
	}

	return letter, nil
}

// Reply creates the reply and links it to the parent letter and to the parent author's
// received mailbox inside one transaction. Only the body and the parent are checked.
func (s *letterService) Reply(ctx context.Context, parentID, replierID uuid.UUID, body string) (*usecase.ReplyOutput, error) {
	if strings.TrimSpace(body) == "" {
		return nil, domainerrors.ErrEmptyReplyBody
	}

	var output *usecase.ReplyOutput
	err := s.txManager.Execute(ctx, func(txCtx context.Context, repos repository.RepositoryFactory) error {
		letterRepo := repos.LetterRepo()
		userRepo := repos.UserRepo()

		parent, err := letterRepo.FindByID(txCtx, parentID)
		if err != nil {
			if errors.Is(err, repository.ErrLetterNotFound) {
				return domainerrors.ErrLetterNotFound.WithDetails(parentID.String())
			}

			return errors.Wrap(err, "failed to find parent letter")
		}

		// The replier is not looked up; an unregistered id still writes a reply.
		reply := parent.NewReply(replierID, body)
		if err := letterRepo.Create(txCtx, reply); err != nil {
			return errors.Wrap(err, "failed to create reply")
		}

		if err := letterRepo.MarkAnswered(txCtx, parent.ID, reply.ID); err != nil {
			if errors.Is(err, repository.ErrLetterNotFound) {
				return domainerrors.ErrLetterNotFound.WithDetails(parentID.String())
			}

			return errors.Wrap(err, "failed to mark letter as answered")
		}
		parent.LinkReply(reply)
		parent.UpdatedAt = time.Now()

		if err := userRepo.AppendReceivedLetter(txCtx, parent.AuthorID, reply.ID); err != nil {
			return mapUserLookupError(err, parent.AuthorID)
		}

		output = &usecase.ReplyOutput{Reply: reply, Parent: parent}

		return nil
	})
	if err != nil {
		s.log(ctx).Warn("Reply not linked",
			slog.String("parent_id", parentID.String()),
			slog.String("replier_id", replierID.String()),
			slog.Any("error", err),
		)

		return nil, err
	}

	s.log(ctx).Info("Reply linked",
		slog.String("reply_id", output.Reply.ID.String()),
		slog.String("parent_id", parentID.String()),
	)

	s.publish(ctx, &service.LetterEvent{
		Type:        constants.EventLetterReplied,
		LetterID:    output.Reply.ID.String(),
		AuthorID:    replierID.String(),
		RecipientID: output.Parent.AuthorID.String(),
		ParentID:    parentID.String(),
	})

	return output, nil
}

// ListByAuthor returns the letters written by authorID.
func (s *letterService) ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]*entity.Letter, error) {
	letters, err := s.letterRepo.FindByAuthor(ctx, authorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find letters by author")
	}

	return letters, nil
}

// ListReceived returns the letters whose recipient is userID.
func (s *letterService) ListReceived(ctx context.Context, userID uuid.UUID) ([]*entity.Letter, error) {
	letters, err := s.letterRepo.FindByRecipient(ctx, userID, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find letters by recipient")
	}

	return letters, nil
}

// Inbox returns the replies addressed to userID with their writers' names resolved.
func (s *letterService) Inbox(ctx context.Context, userID uuid.UUID) ([]*entity.InboxLetter, error) {
	kind := entity.LetterKindReply
	letters, err := s.letterRepo.FindByRecipient(ctx, userID, &kind)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find inbox letters")
	}

	authorIDs := make([]uuid.UUID, 0, len(letters))
	seen := make(map[uuid.UUID]struct{}, len(letters))
	for _, letter := range letters {
		if _, ok := seen[letter.AuthorID]; ok {
			continue
		}
		seen[letter.AuthorID] = struct{}{}
		authorIDs = append(authorIDs, letter.AuthorID)
	}

	names := map[uuid.UUID]string{}
	if len(authorIDs) > 0 {
		names, err = s.userRepo.FindNames(ctx, authorIDs)
		if err != nil {
			return nil, errors.Wrap(err, "failed to resolve letter writers")
		}
	}

	inbox := make([]*entity.InboxLetter, 0, len(letters))
	for _, letter := range letters {
		// A deleted writer leaves an empty name, like an unpopulated reference.
		inbox = append(inbox, &entity.InboxLetter{
			Letter:     letter,
			AuthorName: names[letter.AuthorID],
		})
	}

	return inbox, nil
}

// Delete removes letters by id.
func (s *letterService) Delete(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, domainerrors.ErrInvalidLetterIDs
	}

	deleted, err := s.letterRepo.DeleteByIDs(ctx, ids)
	if err != nil {
		s.log(ctx).Error("Failed to delete letters", slog.Int("count", len(ids)), slog.Any("error", err))

		return 0, domainerrors.ErrLetterDeletionFailed.WrapMessage(err.Error())
	}

	s.log(ctx).Info("Letters deleted", slog.Int64("deleted", deleted), slog.Int("requested", len(ids)))

	return deleted, nil
}

// publish sends the event best-effort; a committed letter is never rolled back
// because the queue is unavailable.
func (s *letterService) publish(ctx context.Context, event *service.LetterEvent) {
	if s.publisher == nil {
		return
	}

	event.EventID = uuid.NewString()
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	event.OccurredAt = time.Now().UTC()

	if err := s.publisher.PublishLetterEvent(ctx, event); err != nil {
		s.log(ctx).Warn("Failed to publish letter event",
			slog.String("type", event.Type),
			slog.String("letter_id", event.LetterID),
			slog.Any("error", err),
		)
	}
}

// mapUserLookupError turns a missing user into the USER_NOT_FOUND application error.
func mapUserLookupError(err error, userID uuid.UUID) error {
	if errors.Is(err, repository.ErrUserNotFound) {
		return domainerrors.ErrUserNotFound.WithDetails(userID.String())
	}

	return errors.Wrap(err, "failed to load user")
}
