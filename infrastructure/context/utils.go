// Package context holds the timeout defaults used when talking to backing services.
package context

import (
	"context"
	"time"
)

const (
	// DefaultPingTimeout bounds start-up connectivity checks.
	DefaultPingTimeout = 5 * time.Second
	// DefaultQueryTimeout bounds CLI-driven database work.
	DefaultQueryTimeout = 30 * time.Second
)

// WithPingTimeout derives a context bounded by DefaultPingTimeout.
func WithPingTimeout(parent context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, DefaultPingTimeout)
}

// WithQueryTimeout derives a context bounded by DefaultQueryTimeout.
func WithQueryTimeout(parent context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, DefaultQueryTimeout)
}
