// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
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

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a repository.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// Create persists a new user. The mailboxes of a new user are always empty.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	if user.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate user id")
		}
		user.ID = id
	}

	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// FindByID retrieves a single user by their unique ID, mailboxes included.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return repo.withMailboxes(ctx, &userM)
}

// FindByName retrieves the earliest registered user with the given name.
func (repo *userRepository) FindByName(ctx context.Context, name string) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("name = ?", name).
		Order("created_at ASC, id ASC").
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by name")
	}

	return repo.withMailboxes(ctx, &userM)
}

// FindAll retrieves every user in registration order.
func (repo *userRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	var userModels []*model.UserModel

	if err := repo.db.WithContext(ctx).
		Order("created_at ASC, id ASC").
		Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	ids := make([]uuid.UUID, 0, len(userModels))
	for _, userM := range userModels {
		ids = append(ids, userM.ID)
	}

	boxes, err := loadMailboxes(ctx, repo.db, ids)
	if err != nil {
		return nil, err
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toUserDomain(userM, boxes[userM.ID]))
	}

	return users, nil
}

// FindNames resolves display names for the given ids.
func (repo *userRepository) FindNames(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	names := make(map[uuid.UUID]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	var rows []struct {
		ID   uuid.UUID
		Name string
	}
	if err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Select("id", "name").
		Where("id IN ?", ids).
		Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find user names")
	}

	for _, row := range rows {
		names[row.ID] = row.Name
	}

	return names, nil
}

// Update persists the account fields of an existing user.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	now := time.Now()
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"name":       user.Name,
			"secret":     user.Secret,
			"birth_date": user.BirthDate,
			"age":        user.Age,
			"updated_at": now,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	user.UpdatedAt = now

	return nil
}

// Delete removes a user. Mailbox entries go with it through ON DELETE CASCADE.
func (repo *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.UserModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete user")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// AppendSentLetter appends letterID to the user's sent mailbox.
func (repo *userRepository) AppendSentLetter(ctx context.Context, userID, letterID uuid.UUID) error {
	return repo.appendToMailbox(ctx, userID, letterID, model.MailboxSent)
}

// AppendReceivedLetter appends letterID to the user's received mailbox.
func (repo *userRepository) AppendReceivedLetter(ctx context.Context, userID, letterID uuid.UUID) error {
	return repo.appendToMailbox(ctx, userID, letterID, model.MailboxReceived)
}

func (repo *userRepository) appendToMailbox(ctx context.Context, userID, letterID uuid.UUID, box string) error {
	db := repo.db.WithContext(ctx)

	// Touching the owner first both checks it exists and bumps updated_at.
	result := db.Model(&model.UserModel{}).
		Where("id = ?", userID).
		Update("updated_at", time.Now())
	if result.Error != nil {
		return errors.Wrapf(result.Error, "failed to touch user before %s append", box)
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	entry := &model.MailboxEntryModel{
		UserID:   userID,
		LetterID: letterID,
		Box:      box,
	}
	if err := db.Create(entry).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to append mailbox entry")
	}

	return nil
}

func (repo *userRepository) withMailboxes(ctx context.Context, userM *model.UserModel) (*entity.User, error) {
	boxes, err := loadMailboxes(ctx, repo.db, []uuid.UUID{userM.ID})
	if err != nil {
		return nil, err
	}

	return toUserDomain(userM, boxes[userM.ID]), nil
}

// mailboxes holds one user's letter ids in append order.
type mailboxes struct {
	sent     []uuid.UUID
	received []uuid.UUID
}

// loadMailboxes reads the mailbox entries of the given users in one query.
func loadMailboxes(ctx context.Context, db *gorm.DB, userIDs []uuid.UUID) (map[uuid.UUID]*mailboxes, error) {
	boxes := make(map[uuid.UUID]*mailboxes, len(userIDs))
	if len(userIDs) == 0 {
		return boxes, nil
	}

	var entries []*model.MailboxEntryModel
	if err := db.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Order("seq ASC").
		Find(&entries).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load mailboxes")
	}

	return groupMailboxEntries(entries), nil
}

func groupMailboxEntries(entries []*model.MailboxEntryModel) map[uuid.UUID]*mailboxes {
	boxes := make(map[uuid.UUID]*mailboxes)
	for _, entry := range entries {
		box, ok := boxes[entry.UserID]
		if !ok {
			box = &mailboxes{}
			boxes[entry.UserID] = box
		}

		switch entry.Box {
		case model.MailboxSent:
			box.sent = append(box.sent, entry.LetterID)
		case model.MailboxReceived:
			box.received = append(box.received, entry.LetterID)
		}
	}

	return boxes
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toUserDomain converts a GORM UserModel and its mailboxes to a domain User entity.
func toUserDomain(data *model.UserModel, boxes *mailboxes) *entity.User {
	if data == nil {
		return nil
	}

	user := &entity.User{
		ID:              data.ID,
		Name:            data.Name,
		Secret:          data.Secret,
		BirthDate:       data.BirthDate,
		Age:             data.Age,
		SentLetters:     []uuid.UUID{},
		ReceivedLetters: []uuid.UUID{},
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
	if boxes != nil {
		user.SentLetters = append(user.SentLetters, boxes.sent...)
		user.ReceivedLetters = append(user.ReceivedLetters, boxes.received...)
	}

	return user
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:        data.ID,
		Name:      data.Name,
		Secret:    data.Secret,
		BirthDate: data.BirthDate,
		Age:       data.Age,
	}
}
