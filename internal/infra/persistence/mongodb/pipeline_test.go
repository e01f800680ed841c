package mongodb

import (
	"testing"

	"penpal/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestSampleUnansweredPipeline(t *testing.T) {
	pipeline := sampleUnansweredPipeline("author-1")
	require.Len(t, pipeline, 2)

	match := pipeline[0][0]
	assert.Equal(t, "$match", match.Key)
	assert.Equal(t, bson.D{
		{Key: "respondida", Value: false},
		{Key: "escritor", Value: bson.D{{Key: "$ne", Value: "author-1"}}},
	}, match.Value)

	sample := pipeline[1][0]
	assert.Equal(t, "$sample", sample.Key)
	assert.Equal(t, bson.D{{Key: "size", Value: 1}}, sample.Value)
}

func TestRecipientFilter(t *testing.T) {
	assert.Equal(t, bson.D{{Key: "destinatario", Value: "u1"}}, recipientFilter("u1", nil))

	kind := entity.LetterKindReply
	assert.Equal(t, bson.D{
		{Key: "destinatario", Value: "u1"},
		{Key: "tipo", Value: "resposta"},
	}, recipientFilter("u1", &kind))
}

func TestMarkAnsweredUpdate(t *testing.T) {
	update := markAnsweredUpdate("r1")
	require.Len(t, update, 2)

	assert.Equal(t, "$push", update[0].Key)
	assert.Equal(t, bson.D{{Key: "respostas", Value: "r1"}}, update[0].Value)

	assert.Equal(t, "$set", update[1].Key)
	set, ok := update[1].Value.(bson.D)
	require.True(t, ok)
	assert.Equal(t, bson.E{Key: "respondida", Value: true}, set[0])
	assert.Equal(t, "updatedAt", set[1].Key)
}

func TestPushUpdate(t *testing.T) {
	update := pushUpdate("cartasEnviadas", "l1")

	assert.Equal(t, "$push", update[0].Key)
	assert.Equal(t, bson.D{{Key: "cartasEnviadas", Value: "l1"}}, update[0].Value)
	assert.Equal(t, "$set", update[1].Key)
}

func TestIndexes(t *testing.T) {
	assert.Len(t, userIndexes(), 1)
	assert.Len(t, letterIndexes(), 3)
	assert.Equal(t, bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}}, chronological())
}
