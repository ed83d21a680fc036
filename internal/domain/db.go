package domain

import "context"

// Database defines lifecycle operations for the backing store. An
// implementation owns its own schema migration strategy, so the storage
// backend stays swappable behind the repository interfaces.
type Database interface {
	Migrate(ctx context.Context) error
	Close() error
}
