package pubsub

import (
	"context"
	"testing"

	"penpal/config"
	"penpal/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newPublisherParams(t *testing.T, cfg *config.PubSubConfig) PublisherParams {
	t.Helper()

	return PublisherParams{
		Lc:     fxtest.NewLifecycle(t),
		Ctx:    context.Background(),
		Config: &config.Config{PubSub: cfg},
		Logger: discardLogger(),
	}
}

func TestNewEventPublisher_NoopWhenUnconfigured(t *testing.T) {
	publisher, err := NewEventPublisher(newPublisherParams(t, nil))
	require.NoError(t, err)

	assert.IsType(t, &noopPublisher{}, publisher)
	assert.NoError(t, publisher.PublishLetterEvent(context.Background(), &service.LetterEvent{}))
	assert.NoError(t, publisher.Close())
}

func TestNewEventPublisher_Local(t *testing.T) {
	publisher, err := NewEventPublisher(newPublisherParams(t, &config.PubSubConfig{
		Provider:      "local",
		LocalEndpoint: "http://localhost:9/events",
	}))
	require.NoError(t, err)

	assert.IsType(t, &localHTTPPublisher{}, publisher)
}

func TestNewEventPublisher_InvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.PubSubConfig
	}{
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: "local"}},
		{name: "google without project", cfg: &config.PubSubConfig{Provider: "google", TopicID: "t"}},
		{name: "google without topic", cfg: &config.PubSubConfig{Provider: "google", ProjectID: "p"}},
		{name: "unknown provider", cfg: &config.PubSubConfig{Provider: "kafka"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEventPublisher(newPublisherParams(t, tt.cfg))
			assert.Error(t, err)
		})
	}
}
