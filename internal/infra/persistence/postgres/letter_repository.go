package postgres

import (
	"context"
	"time"

	"penpal/internal/domain/entity"
	domainerrors "penpal/internal/domain/errors"
	"penpal/internal/domain/repository"
	"penpal/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// letterRepository implements the repository.LetterRepository interface.
type letterRepository struct {
	db *gorm.DB
}

// NewLetterRepository is the constructor for letterRepository.
func NewLetterRepository(db *gorm.DB) repository.LetterRepository {
	return &letterRepository{
		db: db,
	}
}

// Create persists a letter or a reply.
func (repo *letterRepository) Create(ctx context.Context, letter *entity.Letter) error {
	if letter.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate letter id")
		}
		letter.ID = id
	}

	letterM := fromLetterDomain(letter)

	if err := repo.db.WithContext(ctx).Create(letterM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid letter kind")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create letter")
	}

	letter.CreatedAt = letterM.CreatedAt
	letter.UpdatedAt = letterM.UpdatedAt

	return nil
}

// FindByID retrieves a letter and the ids of its replies.
func (repo *letterRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Letter, error) {
	var letterM model.LetterModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&letterM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLetterNotFound
		}

		return nil, errors.Wrap(err, "failed to find letter by id")
	}

	letters, err := repo.withReplies(ctx, []*model.LetterModel{&letterM})
	if err != nil {
		return nil, err
	}

	return letters[0], nil
}

// FindByAuthor retrieves the letters written by authorID, oldest first.
func (repo *letterRepository) FindByAuthor(ctx context.Context, authorID uuid.UUID) ([]*entity.Letter, error) {
	var letterModels []*model.LetterModel

	if err := repo.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("created_at ASC, id ASC").
		Find(&letterModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find letters by author")
	}

	return repo.withReplies(ctx, letterModels)
}

// FindByRecipient retrieves the letters addressed to recipientID, optionally of one kind.
func (repo *letterRepository) FindByRecipient(ctx context.Context, recipientID uuid.UUID, kind *entity.LetterKind) ([]*entity.Letter, error) {
	var letterModels []*model.LetterModel

	query := repo.db.WithContext(ctx).Where("recipient_id = ?", recipientID)
	if kind != nil {
		query = query.Where("kind = ?", kind.String())
	}

	if err := query.
		Order("created_at ASC, id ASC").
		Find(&letterModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find letters by recipient")
	}

	return repo.withReplies(ctx, letterModels)
}

// SampleUnanswered picks one eligible letter uniformly at random.
func (repo *letterRepository) SampleUnanswered(ctx context.Context, excludeAuthorID uuid.UUID) (*entity.Letter, error) {
	var letterM model.LetterModel

	if err := repo.db.WithContext(ctx).
		Where("answered = ? AND author_id <> ?", false, excludeAuthorID).
		Order("random()").
		Take(&letterM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNoEligibleLetter
		}

		return nil, errors.Wrap(err, "failed to sample unanswered letter")
	}

	letters, err := repo.withReplies(ctx, []*model.LetterModel{&letterM})
	if err != nil {
		return nil, err
	}

	return letters[0], nil
}

// MarkAnswered appends replyID to the letter's reply list and flags it as answered.
func (repo *letterRepository) MarkAnswered(ctx context.Context, letterID, replyID uuid.UUID) error {
	link := &model.LetterReplyModel{LetterID: letterID, ReplyID: replyID}
	if err := repo.db.WithContext(ctx).Create(link).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrLetterNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to link reply")
	}

	result := repo.db.WithContext(ctx).
		Model(&model.LetterModel{}).
		Where("id = ?", letterID).
		Updates(map[string]any{
			"answered":   true,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark letter as answered")
	}

	if result.RowsAffected == 0 {
		return repository.ErrLetterNotFound
	}

	return nil
}

// DeleteByIDs removes the given letters and reports how many existed.
func (repo *letterRepository) DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	result := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Delete(&model.LetterModel{})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete letters")
	}

	return result.RowsAffected, nil
}

// withReplies maps models to entities, loading every letter's reply list in one query.
func (repo *letterRepository) withReplies(ctx context.Context, letterModels []*model.LetterModel) ([]*entity.Letter, error) {
	letterIDs := make([]uuid.UUID, 0, len(letterModels))
	for _, letterM := range letterModels {
		letterIDs = append(letterIDs, letterM.ID)
	}

	replies := map[uuid.UUID][]uuid.UUID{}
	if len(letterIDs) > 0 {
		var links []*model.LetterReplyModel
		if err := repo.db.WithContext(ctx).
			Where("letter_id IN ?", letterIDs).
			Order("seq ASC").
			Find(&links).Error; err != nil {
			return nil, errors.Wrap(err, "failed to load replies")
		}
		replies = groupReplies(links)
	}

	letters := make([]*entity.Letter, 0, len(letterModels))
	for _, letterM := range letterModels {
		letters = append(letters, toLetterDomain(letterM, replies[letterM.ID]))
	}

	return letters, nil
}

// groupReplies keys reply ids by parent letter, keeping link order.
func groupReplies(links []*model.LetterReplyModel) map[uuid.UUID][]uuid.UUID {
	grouped := make(map[uuid.UUID][]uuid.UUID)
	for _, link := range links {
		grouped[link.LetterID] = append(grouped[link.LetterID], link.ReplyID)
	}

	return grouped
}

// --- Mapper Functions ---

func toLetterDomain(data *model.LetterModel, replies []uuid.UUID) *entity.Letter {
	if data == nil {
		return nil
	}

	return &entity.Letter{
		ID:          data.ID,
		AuthorID:    data.AuthorID,
		RecipientID: data.RecipientID,
		ParentID:    data.ParentID,
		Body:        data.Body,
		Kind:        entity.LetterKind(data.Kind),
		Answered:    data.Answered,
		Replies:     append([]uuid.UUID{}, replies...),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromLetterDomain(data *entity.Letter) *model.LetterModel {
	if data == nil {
		return nil
	}

	return &model.LetterModel{
		ID:          data.ID,
		AuthorID:    data.AuthorID,
		RecipientID: data.RecipientID,
		ParentID:    data.ParentID,
		Body:        data.Body,
		Kind:        data.Kind.String(),
		Answered:    data.Answered,
	}
}
