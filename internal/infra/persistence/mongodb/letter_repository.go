package mongodb

import (
	"context"

	"penpal/internal/domain/entity"
	domainerrors "penpal/internal/domain/errors"
	"penpal/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// letterRepository implements repository.LetterRepository on the letters collection.
type letterRepository struct {
	letters *mongo.Collection
}

// NewLetterRepository is the constructor for letterRepository.
func NewLetterRepository(store *Store) repository.LetterRepository {
	return &letterRepository{letters: store.letters}
}

func (repo *letterRepository) Create(ctx context.Context, letter *entity.Letter) error {
	if letter.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate letter id")
		}
		letter.ID = id
	}

	ts := now()
	letter.CreatedAt = ts
	letter.UpdatedAt = ts

	if _, err := repo.letters.InsertOne(ctx, fromLetterEntity(letter)); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create letter")
	}

	return nil
}

func (repo *letterRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Letter, error) {
	var doc letterDocument

	if err := repo.letters.FindOne(ctx, bson.D{{Key: fieldID, Value: id.String()}}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrLetterNotFound
		}

		return nil, errors.Wrap(err, "failed to find letter by id")
	}

	return doc.toEntity()
}

func (repo *letterRepository) FindByAuthor(ctx context.Context, authorID uuid.UUID) ([]*entity.Letter, error) {
	return repo.find(ctx, bson.D{{Key: fieldAuthor, Value: authorID.String()}})
}

func (repo *letterRepository) FindByRecipient(ctx context.Context, recipientID uuid.UUID, kind *entity.LetterKind) ([]*entity.Letter, error) {
	return repo.find(ctx, recipientFilter(recipientID.String(), kind))
}

func (repo *letterRepository) find(ctx context.Context, filter bson.D) ([]*entity.Letter, error) {
	cursor, err := repo.letters.Find(ctx, filter, options.Find().SetSort(chronological()))
	if err != nil {
		return nil, errors.Wrap(err, "failed to find letters")
	}

	var docs []*letterDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "failed to decode letters")
	}

	return letterEntities(docs)
}

func (repo *letterRepository) SampleUnanswered(ctx context.Context, excludeAuthorID uuid.UUID) (*entity.Letter, error) {
	cursor, err := repo.letters.Aggregate(ctx, sampleUnansweredPipeline(excludeAuthorID.String()))
	if err != nil {
		return nil, errors.Wrap(err, "failed to sample unanswered letter")
	}

	var docs []*letterDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "failed to decode sampled letter")
	}

	if len(docs) == 0 {
		return nil, repository.ErrNoEligibleLetter
	}

	return docs[0].toEntity()
}

func (repo *letterRepository) MarkAnswered(ctx context.Context, letterID, replyID uuid.UUID) error {
	result, err := repo.letters.UpdateOne(ctx,
		bson.D{{Key: fieldID, Value: letterID.String()}},
		markAnsweredUpdate(replyID.String()),
	)
	if err != nil {
		return errors.Wrap(err, "failed to mark letter as answered")
	}

	if result.MatchedCount == 0 {
		return repository.ErrLetterNotFound
	}

	return nil
}

func (repo *letterRepository) DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	result, err := repo.letters.DeleteMany(ctx, bson.D{{Key: fieldID, Value: bson.D{{Key: "$in", Value: idStrings(ids)}}}})
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete letters")
	}

	return result.DeletedCount, nil
}
