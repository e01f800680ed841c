package postgres

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintViolationDetection(t *testing.T) {
	fk := errors.New(`ERROR: insert or update on table "mailbox_entries" violates foreign key constraint (SQLSTATE 23503)`)
	notNull := errors.New(`ERROR: null value in column "name" violates not-null constraint (SQLSTATE 23502)`)
	check := errors.New(`ERROR: new row violates check constraint "letters_kind_check" (SQLSTATE 23514)`)
	other := errors.New("connection reset by peer")

	assert.True(t, isForeignKeyConstraintViolation(fk))
	assert.True(t, isForeignKeyConstraintViolation(errors.WithStack(gorm.ErrForeignKeyViolated)))
	assert.False(t, isForeignKeyConstraintViolation(other))
	assert.False(t, isForeignKeyConstraintViolation(nil))

	assert.True(t, isNotNullConstraintViolation(notNull))
	assert.False(t, isNotNullConstraintViolation(check))

	assert.True(t, isCheckConstraintViolation(check))
	assert.True(t, isCheckConstraintViolation(gorm.ErrCheckConstraintViolated))
	assert.False(t, isCheckConstraintViolation(fk))
}
