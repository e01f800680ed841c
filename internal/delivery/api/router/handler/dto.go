package handler

import (
	"time"

	"penpal/internal/domain/entity"

	"github.com/google/uuid"
)

// Wire names follow the documents existing clients were written against.

// UserResponse is the JSON shape of an account. The secret is included on purpose:
// clients read it back after login.
type UserResponse struct {
	ID              uuid.UUID   `json:"_id"`
	Name            string      `json:"nome"`
	Secret          string      `json:"senha"`
	BirthDate       string      `json:"dataNascimento,omitempty"`
	Age             int         `json:"idade"`
	SentLetters     []uuid.UUID `json:"cartasEnviadas"`
	ReceivedLetters []uuid.UUID `json:"cartasRecebidas"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}

// LetterResponse is the JSON shape of a letter or reply.
type LetterResponse struct {
	ID          uuid.UUID   `json:"_id"`
	AuthorID    uuid.UUID   `json:"escritor"`
	RecipientID *uuid.UUID  `json:"destinatario,omitempty"`
	ParentID    *uuid.UUID  `json:"cartaOriginal,omitempty"`
	Body        string      `json:"conteudo"`
	Kind        string      `json:"tipo"`
	Answered    bool        `json:"respondida"`
	Replies     []uuid.UUID `json:"respostas"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// WriterRef is the populated writer of an inbox letter.
type WriterRef struct {
	ID   uuid.UUID `json:"_id"`
	Name string    `json:"nome"`
}

// InboxLetterResponse is a reply with its writer populated.
type InboxLetterResponse struct {
	ID          uuid.UUID   `json:"_id"`
	Author      WriterRef   `json:"escritor"`
	RecipientID *uuid.UUID  `json:"destinatario,omitempty"`
	ParentID    *uuid.UUID  `json:"cartaOriginal,omitempty"`
	Body        string      `json:"conteudo"`
	Kind        string      `json:"tipo"`
	Answered    bool        `json:"respondida"`
	Replies     []uuid.UUID `json:"respostas"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// ReplyResponse is returned after a reply has been linked.
type ReplyResponse struct {
	Reply  LetterResponse `json:"resposta"`
	Parent LetterResponse `json:"cartaOriginal"`
}

func nonNilIDs(ids []uuid.UUID) []uuid.UUID {
	if ids == nil {
		return []uuid.UUID{}
	}

	return ids
}

func toUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:              u.ID,
		Name:            u.Name,
		Secret:          u.Secret,
		BirthDate:       u.BirthDate,
		Age:             u.Age,
		SentLetters:     nonNilIDs(u.SentLetters),
		ReceivedLetters: nonNilIDs(u.ReceivedLetters),
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}

func toUserResponses(users []*entity.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}

	return out
}

func toLetterResponse(l *entity.Letter) LetterResponse {
	return LetterResponse{
		ID:          l.ID,
		AuthorID:    l.AuthorID,
		RecipientID: l.RecipientID,
		ParentID:    l.ParentID,
		Body:        l.Body,
		Kind:        l.Kind.String(),
		Answered:    l.Answered,
		Replies:     nonNilIDs(l.Replies),
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}

func toLetterResponses(letters []*entity.Letter) []LetterResponse {
	out := make([]LetterResponse, 0, len(letters))
	for _, l := range letters {
		out = append(out, toLetterResponse(l))
	}

	return out
}

func toInboxResponses(letters []*entity.InboxLetter) []InboxLetterResponse {
	out := make([]InboxLetterResponse, 0, len(letters))
	for _, in := range letters {
		l := in.Letter
		out = append(out, InboxLetterResponse{
			ID:          l.ID,
			Author:      WriterRef{ID: l.AuthorID, Name: in.AuthorName},
			RecipientID: l.RecipientID,
			ParentID:    l.ParentID,
			Body:        l.Body,
			Kind:        l.Kind.String(),
			Answered:    l.Answered,
			Replies:     nonNilIDs(l.Replies),
			CreatedAt:   l.CreatedAt,
			UpdatedAt:   l.UpdatedAt,
		})
	}

	return out
}
