package model

import (
	"time"

	"github.com/google/uuid"
)

// Mailbox names stored in mailbox_entries.box.
const (
	MailboxSent     = "sent"
	MailboxReceived = "received"
)

// MailboxEntryModel mirrors the 'mailbox_entries' table. Seq preserves append order.
// LetterID is not a foreign key: deleting a letter leaves the entry behind.
type MailboxEntryModel struct {
	Seq       int64     `gorm:"primaryKey;autoIncrement"`
	UserID    uuid.UUID `gorm:"type:uuid;not null"`
	LetterID  uuid.UUID `gorm:"type:uuid;not null"`
	Box       string    `gorm:"type:varchar(16);not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (MailboxEntryModel) TableName() string {
	return "mailbox_entries"
}
