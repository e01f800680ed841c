// Package model holds the GORM structs that mirror the PostgreSQL schema.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. Mailboxes live in 'mailbox_entries'.
type UserModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(100);not null;index"`
	Secret    string    `gorm:"type:text;not null"`
	BirthDate string    `gorm:"type:varchar(64)"`
	Age       int       `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
