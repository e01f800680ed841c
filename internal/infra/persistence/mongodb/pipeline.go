package mongodb

import (
	"penpal/internal/domain/entity"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// sampleUnansweredPipeline draws one unanswered letter not written by excludeAuthorID.
// $sample picks uniformly among the documents that pass $match.
func sampleUnansweredPipeline(excludeAuthorID string) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.D{
			{Key: fieldAnswered, Value: false},
			{Key: fieldAuthor, Value: bson.D{{Key: "$ne", Value: excludeAuthorID}}},
		}}},
		{{Key: "$sample", Value: bson.D{{Key: "size", Value: 1}}}},
	}
}

// recipientFilter matches letters addressed to recipientID, optionally of one kind.
func recipientFilter(recipientID string, kind *entity.LetterKind) bson.D {
	filter := bson.D{{Key: fieldRecipient, Value: recipientID}}
	if kind != nil {
		filter = append(filter, bson.E{Key: fieldKind, Value: kind.String()})
	}

	return filter
}

// chronological orders oldest first, ties broken by id.
func chronological() bson.D {
	return bson.D{{Key: fieldCreatedAt, Value: 1}, {Key: fieldID, Value: 1}}
}

// pushUpdate appends value to the array field and bumps updatedAt.
func pushUpdate(field, value string) bson.D {
	return bson.D{
		{Key: "$push", Value: bson.D{{Key: field, Value: value}}},
		{Key: "$set", Value: bson.D{{Key: fieldUpdatedAt, Value: now()}}},
	}
}

// markAnsweredUpdate records replyID on the parent and flags it answered in one write.
func markAnsweredUpdate(replyID string) bson.D {
	return bson.D{
		{Key: "$push", Value: bson.D{{Key: fieldReplies, Value: replyID}}},
		{Key: "$set", Value: bson.D{
			{Key: fieldAnswered, Value: true},
			{Key: fieldUpdatedAt, Value: now()},
		}},
	}
}
