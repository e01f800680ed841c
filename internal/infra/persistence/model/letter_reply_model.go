package model

import (
	"time"

	"github.com/google/uuid"
)

// LetterReplyModel mirrors the 'letter_replies' table, the ordered reply list of a letter.
// ReplyID is not a foreign key: deleting a reply leaves its id on the parent.
type LetterReplyModel struct {
	Seq       int64     `gorm:"primaryKey;autoIncrement"`
	LetterID  uuid.UUID `gorm:"type:uuid;not null"`
	ReplyID   uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (LetterReplyModel) TableName() string {
	return "letter_replies"
}
