// Package constants holds identifiers shared across layers.
package constants

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Pub/Sub message attributes
const (
	AttrRunID     = "run_id"
	AttrRunStatus = "status"
	AttrRequestID = "request_id"
)

// LocalRunSubscription is the subscription name stamped on locally pushed messages.
const LocalRunSubscription = "projects/local/subscriptions/fixture-runs-sub"
