package utils

import (
	"context"
	"time"
)

// DefaultDBTimeout bounds every Postgres and Redis round trip made on
// behalf of a request. Booking submission is the longest path (insert
// plus session teardown) and still finishes well inside this.
const DefaultDBTimeout = 5 * time.Second

func WithDBTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, DefaultDBTimeout)
}
