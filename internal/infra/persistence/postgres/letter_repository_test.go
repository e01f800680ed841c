package postgres

import (
	"context"
	"testing"

	"penpal/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pgDriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type capturedStatement struct {
	SQL  string
	Vars []any
}

// newDryRunDB returns a gorm handle that renders postgres SQL without a server
// and records every statement the repository issues.
func newDryRunDB(t *testing.T) (*gorm.DB, *[]capturedStatement) {
	t.Helper()

	db, err := gorm.Open(pgDriver.Open("host=localhost user=penpal dbname=penpal sslmode=disable"), &gorm.Config{
		DryRun:                 true,
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	var statements []capturedStatement
	capture := func(tx *gorm.DB) {
		statements = append(statements, capturedStatement{
			SQL:  tx.Statement.SQL.String(),
			Vars: append([]any(nil), tx.Statement.Vars...),
		})
	}

	require.NoError(t, db.Callback().Query().After("gorm:query").Register("penpal:capture_query", capture))
	require.NoError(t, db.Callback().Create().After("gorm:create").Register("penpal:capture_create", capture))
	require.NoError(t, db.Callback().Update().After("gorm:update").Register("penpal:capture_update", capture))
	require.NoError(t, db.Callback().Delete().After("gorm:delete").Register("penpal:capture_delete", capture))

	return db, &statements
}

func TestLetterRepository_SampleUnanswered_FiltersOwnAndAnswered(t *testing.T) {
	db, statements := newDryRunDB(t)
	repo := NewLetterRepository(db)
	requesterID := uuid.New()

	_, err := repo.SampleUnanswered(context.Background(), requesterID)
	require.NoError(t, err)

	require.NotEmpty(t, *statements)
	draw := (*statements)[0]
	assert.Contains(t, draw.SQL, `FROM "letters"`)
	assert.Contains(t, draw.SQL, "answered = $1 AND author_id <> $2")
	assert.Contains(t, draw.SQL, "ORDER BY random()")
	require.GreaterOrEqual(t, len(draw.Vars), 2)
	assert.Equal(t, false, draw.Vars[0])
	assert.Equal(t, requesterID, draw.Vars[1])
}

func TestLetterRepository_MarkAnswered_AppendsReplyAndFlagsParent(t *testing.T) {
	db, statements := newDryRunDB(t)
	repo := NewLetterRepository(db)
	parentID, replyID := uuid.New(), uuid.New()

	err := repo.MarkAnswered(context.Background(), parentID, replyID)
	// A dry run affects no rows.
	assert.ErrorIs(t, err, repository.ErrLetterNotFound)

	require.Len(t, *statements, 2)
	link, flag := (*statements)[0], (*statements)[1]

	assert.Contains(t, link.SQL, `INSERT INTO "letter_replies"`)
	assert.Contains(t, link.Vars, parentID)
	assert.Contains(t, link.Vars, replyID)

	assert.Contains(t, flag.SQL, `UPDATE "letters"`)
	assert.Contains(t, flag.SQL, `"answered"`)
	assert.Contains(t, flag.Vars, parentID)
}

func TestLetterRepository_FindByID_ReadsStoredReplyList(t *testing.T) {
	db, statements := newDryRunDB(t)
	repo := NewLetterRepository(db)
	letterID := uuid.New()

	_, err := repo.FindByID(context.Background(), letterID)
	require.NoError(t, err)

	require.Len(t, *statements, 2)
	replies := (*statements)[1]
	assert.Contains(t, replies.SQL, `FROM "letter_replies"`)
	assert.Contains(t, replies.SQL, "letter_id IN")
	assert.Contains(t, replies.SQL, "ORDER BY seq ASC")
	assert.NotContains(t, replies.SQL, "parent_id")
}

func TestLetterRepository_DeleteByIDs_LeavesReplyListsAlone(t *testing.T) {
	db, statements := newDryRunDB(t)
	repo := NewLetterRepository(db)
	replyID := uuid.New()

	_, err := repo.DeleteByIDs(context.Background(), []uuid.UUID{replyID})
	require.NoError(t, err)

	require.Len(t, *statements, 1)
	assert.Contains(t, (*statements)[0].SQL, `DELETE FROM "letters"`)
	assert.NotContains(t, (*statements)[0].SQL, "letter_replies")
}
