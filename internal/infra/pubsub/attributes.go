package pubsub

import "penpal/internal/domain/service"

// eventAttributes are the message attributes subscribers filter on.
func eventAttributes(event *service.LetterEvent) map[string]string {
	attributes := map[string]string{
		"event_type": event.Type,
		"letter_id":  event.LetterID,
		"author_id":  event.AuthorID,
	}
	if event.RecipientID != "" {
		attributes["recipient_id"] = event.RecipientID
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
