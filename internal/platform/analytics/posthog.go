// Package analytics wraps the PostHog client so callers need not care
// whether tracking is configured.
package analytics

import (
	"log/slog"

	"github.com/posthog/posthog-go"
)

// Client is a nil-safe PostHog client. The zero value and a nil pointer
// both drop every event.
type Client struct {
	posthog posthog.Client
	logger  *slog.Logger
}

// New returns a client sending to endpoint, or a disabled client when
// apiKey is empty.
func New(apiKey, endpoint string, logger *slog.Logger) (*Client, error) {
	if apiKey == "" {
		logger.Info("PostHog API key not set, analytics disabled")
		return &Client{}, nil
	}
	ph, err := posthog.NewWithConfig(apiKey, posthog.Config{Endpoint: endpoint})
	if err != nil {
		return nil, err
	}
	return &Client{posthog: ph, logger: logger}, nil
}

// Enabled reports whether events are actually sent.
func (c *Client) Enabled() bool {
	return c != nil && c.posthog != nil
}

// Enqueue queues an event for the user.
func (c *Client) Enqueue(distinctID, event string, properties map[string]any) {
	if !c.Enabled() {
		return
	}
	err := c.posthog.Enqueue(posthog.Capture{
		DistinctId: distinctID,
		Event:      event,
		Properties: properties,
	})
	if err != nil {
		c.logger.Warn("Failed to enqueue analytics event", slog.String("event", event), slog.String("error", err.Error()))
	}
}

// Close flushes pending events.
func (c *Client) Close() {
	if !c.Enabled() {
		return
	}
	if err := c.posthog.Close(); err != nil {
		c.logger.Warn("Failed to close analytics client", slog.String("error", err.Error()))
	}
}
