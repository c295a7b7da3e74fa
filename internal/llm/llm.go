package llm

import (
	"context"
	"encoding/json"
	"errors"
)

// Client abstracts LLM providers for resume writing and import.
type Client interface {
	// Complete returns plain text for a prompt.
	Complete(ctx context.Context, system, user string) (string, error)
	// CompleteJSON returns a valid JSON document for a prompt.
	CompleteJSON(ctx context.Context, system, user string) (json.RawMessage, error)
}

// ErrNotConfigured is returned when no provider has been wired.
var ErrNotConfigured = errors.New("LLM provider not configured")

// PlaceholderClient is used when no provider is configured, so AI routes
// fail cleanly instead of panicking on a nil client.
type PlaceholderClient struct{}

// Complete returns ErrNotConfigured.
func (PlaceholderClient) Complete(ctx context.Context, system, user string) (string, error) {
	_ = ctx
	_ = system
	_ = user
	return "", ErrNotConfigured
}

// CompleteJSON returns ErrNotConfigured.
func (PlaceholderClient) CompleteJSON(ctx context.Context, system, user string) (json.RawMessage, error) {
	_ = ctx
	_ = system
	_ = user
	return nil, ErrNotConfigured
}
