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

// userRepository implements repository.UserRepository on the users collection.
type userRepository struct {
	users *mongo.Collection
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(store *Store) repository.UserRepository {
	return &userRepository{users: store.users}
}

func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	if user.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate user id")
		}
		user.ID = id
	}

	ts := now()
	user.CreatedAt = ts
	user.UpdatedAt = ts

	if _, err := repo.users.InsertOne(ctx, fromUserEntity(user)); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	return nil
}

func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return repo.findOne(ctx, bson.D{{Key: fieldID, Value: id.String()}})
}

// FindByName returns the earliest registered account with that name.
func (repo *userRepository) FindByName(ctx context.Context, name string) (*entity.User, error) {
	return repo.findOne(ctx, bson.D{{Key: fieldName, Value: name}}, options.FindOne().SetSort(chronological()))
}

func (repo *userRepository) findOne(ctx context.Context, filter bson.D, opts ...options.Lister[options.FindOneOptions]) (*entity.User, error) {
	var doc userDocument

	if err := repo.users.FindOne(ctx, filter, opts...).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return doc.toEntity()
}

func (repo *userRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	cursor, err := repo.users.Find(ctx, bson.D{}, options.Find().SetSort(chronological()))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	var docs []*userDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "failed to decode users")
	}

	users := make([]*entity.User, 0, len(docs))
	for _, doc := range docs {
		user, err := doc.toEntity()
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	return users, nil
}

func (repo *userRepository) FindNames(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	names := make(map[uuid.UUID]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	cursor, err := repo.users.Find(ctx,
		bson.D{{Key: fieldID, Value: bson.D{{Key: "$in", Value: idStrings(ids)}}}},
		options.Find().SetProjection(bson.D{{Key: fieldName, Value: 1}}),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user names")
	}

	var docs []struct {
		ID   string `bson:"_id"`
		Name string `bson:"nome"`
	}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "failed to decode user names")
	}

	for _, doc := range docs {
		id, err := uuid.Parse(doc.ID)
		if err != nil {
			continue
		}
		names[id] = doc.Name
	}

	return names, nil
}

// Update writes the account fields; mailboxes are only changed by the append methods.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	ts := now()
	result, err := repo.users.UpdateOne(ctx,
		bson.D{{Key: fieldID, Value: user.ID.String()}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: fieldName, Value: user.Name},
			{Key: "senha", Value: user.Secret},
			{Key: "dataNascimento", Value: user.BirthDate},
			{Key: "idade", Value: user.Age},
			{Key: fieldUpdatedAt, Value: ts},
		}}},
	)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update user")
	}

	if result.MatchedCount == 0 {
		return repository.ErrUserNotFound
	}

	user.UpdatedAt = ts

	return nil
}

func (repo *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := repo.users.DeleteOne(ctx, bson.D{{Key: fieldID, Value: id.String()}})
	if err != nil {
		return errors.Wrap(err, "failed to delete user")
	}

	if result.DeletedCount == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

func (repo *userRepository) AppendSentLetter(ctx context.Context, userID, letterID uuid.UUID) error {
	return repo.push(ctx, userID, fieldSent, letterID)
}

func (repo *userRepository) AppendReceivedLetter(ctx context.Context, userID, letterID uuid.UUID) error {
	return repo.push(ctx, userID, fieldReceived, letterID)
}

func (repo *userRepository) push(ctx context.Context, userID uuid.UUID, field string, letterID uuid.UUID) error {
	result, err := repo.users.UpdateOne(ctx,
		bson.D{{Key: fieldID, Value: userID.String()}},
		pushUpdate(field, letterID.String()),
	)
	if err != nil {
		return errors.Wrapf(err, "failed to append to %s", field)
	}

	if result.MatchedCount == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

