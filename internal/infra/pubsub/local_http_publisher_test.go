package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"penpal/internal/domain/constants"
	"penpal/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PostsPushEnvelope(t *testing.T) {
	var (
		got       PubSubPushMessage
		requestID string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	event := &service.LetterEvent{
		RequestID:   "req-1",
		EventID:     "evt-1",
		Type:        constants.EventLetterReplied,
		LetterID:    "reply-1",
		AuthorID:    "bob",
		RecipientID: "ana",
		ParentID:    "letter-1",
		OccurredAt:  time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC),
	}

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	require.NoError(t, publisher.PublishLetterEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "evt-1", got.Message.MessageID)
	assert.Equal(t, localSubscription, got.Subscription)
	assert.Equal(t, map[string]string{
		"event_type":   constants.EventLetterReplied,
		"letter_id":    "reply-1",
		"author_id":    "bob",
		"recipient_id": "ana",
		"request_id":   "req-1",
	}, got.Message.Attributes)

	data, err := base64.StdEncoding.DecodeString(got.Message.Data)
	require.NoError(t, err)

	var decoded service.LetterEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *event, decoded)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	err := publisher.PublishLetterEvent(context.Background(), &service.LetterEvent{Type: constants.EventLetterSubmitted})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestEventAttributes_OmitsEmptyOptionalFields(t *testing.T) {
	attrs := eventAttributes(&service.LetterEvent{
		Type:     constants.EventLetterSubmitted,
		LetterID: "l1",
		AuthorID: "a1",
	})

	assert.Equal(t, map[string]string{
		"event_type": constants.EventLetterSubmitted,
		"letter_id":  "l1",
		"author_id":  "a1",
	}, attrs)
}
