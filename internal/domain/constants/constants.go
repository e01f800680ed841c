// Package constants holds the string values shared by config and infrastructure.
package constants

// PubSub provider names accepted in the pubsub.provider setting.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Storage driver names accepted in the storage.driver setting.
const (
	StorageDriverPostgres = "postgres"
	StorageDriverMongo    = "mongo"
)

// Letter event types carried by service.LetterEvent.
const (
	EventLetterSubmitted = "letter.submitted"
	EventLetterReplied   = "letter.replied"
)
