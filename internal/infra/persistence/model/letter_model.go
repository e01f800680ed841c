package model

import (
	"time"

	"github.com/google/uuid"
)

// LetterModel mirrors the 'letters' table. Reply ids live in 'letter_replies'.
type LetterModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	AuthorID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	RecipientID *uuid.UUID `gorm:"type:uuid;index"`
	ParentID    *uuid.UUID `gorm:"type:uuid;index"`
	Body        string     `gorm:"type:text;not null"`
	Kind        string     `gorm:"type:varchar(16);not null"`
	Answered    bool       `gorm:"not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (LetterModel) TableName() string {
	return "letters"
}
