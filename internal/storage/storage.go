// Package storage selects and manages the relational backend behind the API.
// A backend is configured once from a connection descriptor and hands out the
// shared *gorm.DB, which is the unit-of-work factory for the rest of the app.
package storage

import (
	"context"
	"strings"

	"gorm.io/gorm"
)

// Backend is the capability contract every store must satisfy.
type Backend interface {
	// DB returns the shared handle used to start sessions and transactions.
	DB() *gorm.DB
	// Initialize creates missing tables. It is idempotent and never alters
	// existing tables; migration-managed deployments remain authoritative.
	Initialize() error
	// HealthCheck runs a trivial round-trip query. It reports false instead
	// of returning an error.
	HealthCheck(ctx context.Context) bool
	// Close releases pooled connections. Safe to call more than once.
	Close() error
}

// Open picks a backend from the connection descriptor: postgres:// and
// mysql:// URLs get the pooled network backend, anything else is treated as a
// SQLite file path (an optional sqlite:// prefix is accepted).
//
// Malformed network descriptors fail here, at construction time, not at first
// use.
func Open(descriptor string) (Backend, error) {
	switch {
	case strings.HasPrefix(descriptor, "postgres://"),
		strings.HasPrefix(descriptor, "postgresql://"),
		strings.HasPrefix(descriptor, "mysql://"):
		return NewCloud(descriptor)
	default:
		return NewLocal(strings.TrimPrefix(descriptor, "sqlite://"))
	}
}
