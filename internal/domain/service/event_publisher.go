package service

import (
	"context"
)

// RunEvent announces the outcome of a fixture run
type RunEvent struct {
	RequestID     string           `json:"request_id,omitempty"` // For distributed tracing
	RunID         string           `json:"run_id"`
	Status        string           `json:"status"`
	Stage         string           `json:"stage"`
	LastCommitted string           `json:"last_committed,omitempty"`
	Error         string           `json:"error,omitempty"`
	Seed          uint64           `json:"seed"`
	Counts        map[string]int64 `json:"counts"`
	DurationMs    int64            `json:"duration_ms"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishRunEvent publishes the outcome of a fixture run
	PublishRunEvent(ctx context.Context, event *RunEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
