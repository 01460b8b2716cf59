// Package constants holds shared domain-level constant values.
package constants

// Pub/Sub provider selectors for event publishing.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Remote document store collections.
const (
	ProfileCollection = "users"
	SampleCollection  = "locations"
)
