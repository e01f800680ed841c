package mongodb

import (
	"time"

	"penpal/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// BSON field names. They match the JSON the API exposes.
const (
	fieldID        = "_id"
	fieldName      = "nome"
	fieldSent      = "cartasEnviadas"
	fieldReceived  = "cartasRecebidas"
	fieldAuthor    = "escritor"
	fieldRecipient = "destinatario"
	fieldKind      = "tipo"
	fieldAnswered  = "respondida"
	fieldReplies   = "respostas"
	fieldCreatedAt = "createdAt"
	fieldUpdatedAt = "updatedAt"
)

// userDocument maps to the users collection. Ids are stored as UUID strings.
type userDocument struct {
	ID              string    `bson:"_id"`
	Name            string    `bson:"nome"`
	Secret          string    `bson:"senha"`
	BirthDate       string    `bson:"dataNascimento,omitempty"`
	Age             int       `bson:"idade"`
	SentLetters     []string  `bson:"cartasEnviadas"`
	ReceivedLetters []string  `bson:"cartasRecebidas"`
	CreatedAt       time.Time `bson:"createdAt"`
	UpdatedAt       time.Time `bson:"updatedAt"`
}

// letterDocument maps to the letters collection.
type letterDocument struct {
	ID          string    `bson:"_id"`
	AuthorID    string    `bson:"escritor"`
	RecipientID string    `bson:"destinatario,omitempty"`
	ParentID    string    `bson:"cartaOriginal,omitempty"`
	Body        string    `bson:"conteudo"`
	Kind        string    `bson:"tipo"`
	Answered    bool      `bson:"respondida"`
	Replies     []string  `bson:"respostas"`
	CreatedAt   time.Time `bson:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt"`
}

func fromUserEntity(u *entity.User) *userDocument {
	return &userDocument{
		ID:              u.ID.String(),
		Name:            u.Name,
		Secret:          u.Secret,
		BirthDate:       u.BirthDate,
		Age:             u.Age,
		SentLetters:     idStrings(u.SentLetters),
		ReceivedLetters: idStrings(u.ReceivedLetters),
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}

func (d *userDocument) toEntity() (*entity.User, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, errors.Wrapf(err, "user document has invalid _id %q", d.ID)
	}

	sent, err := parseIDs(d.SentLetters)
	if err != nil {
		return nil, errors.Wrapf(err, "user %s sent mailbox", d.ID)
	}

	received, err := parseIDs(d.ReceivedLetters)
	if err != nil {
		return nil, errors.Wrapf(err, "user %s received mailbox", d.ID)
	}

	return &entity.User{
		ID:              id,
		Name:            d.Name,
		Secret:          d.Secret,
		BirthDate:       d.BirthDate,
		Age:             d.Age,
		SentLetters:     sent,
		ReceivedLetters: received,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}, nil
}

func fromLetterEntity(l *entity.Letter) *letterDocument {
	doc := &letterDocument{
		ID:        l.ID.String(),
		AuthorID:  l.AuthorID.String(),
		Body:      l.Body,
		Kind:      l.Kind.String(),
		Answered:  l.Answered,
		Replies:   idStrings(l.Replies),
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
	if l.RecipientID != nil {
		doc.RecipientID = l.RecipientID.String()
	}
	if l.ParentID != nil {
		doc.ParentID = l.ParentID.String()
	}

	return doc
}

func (d *letterDocument) toEntity() (*entity.Letter, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, errors.Wrapf(err, "letter document has invalid _id %q", d.ID)
	}

	author, err := uuid.Parse(d.AuthorID)
	if err != nil {
		return nil, errors.Wrapf(err, "letter %s has invalid author", d.ID)
	}

	recipient, err := optionalID(d.RecipientID)
	if err != nil {
		return nil, errors.Wrapf(err, "letter %s has invalid recipient", d.ID)
	}

	parent, err := optionalID(d.ParentID)
	if err != nil {
		return nil, errors.Wrapf(err, "letter %s has invalid parent", d.ID)
	}

	replies, err := parseIDs(d.Replies)
	if err != nil {
		return nil, errors.Wrapf(err, "letter %s replies", d.ID)
	}

	kind := entity.LetterKind(d.Kind)
	if !kind.IsValid() {
		return nil, errors.Errorf("letter %s has unknown tipo %q", d.ID, d.Kind)
	}

	return &entity.Letter{
		ID:          id,
		AuthorID:    author,
		RecipientID: recipient,
		ParentID:    parent,
		Body:        d.Body,
		Kind:        kind,
		Answered:    d.Answered,
		Replies:     replies,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}, nil
}

func letterEntities(docs []*letterDocument) ([]*entity.Letter, error) {
	letters := make([]*entity.Letter, 0, len(docs))
	for _, doc := range docs {
		letter, err := doc.toEntity()
		if err != nil {
			return nil, err
		}
		letters = append(letters, letter)
	}

	return letters, nil
}

func idStrings(ids []uuid.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}

	return out
}

// parseIDs never returns nil so empty mailboxes encode as [].
func parseIDs(raw []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid id %q", s)
		}
		ids = append(ids, id)
	}

	return ids, nil
}

func optionalID(raw string) (*uuid.UUID, error) {
	if raw == "" {
		return nil, nil
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, err
	}

	return &id, nil
}
