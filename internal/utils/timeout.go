package utils

import (
	"context"
	"time"
)

// DefaultDBTimeout bounds every store call so a hung database connection
// cannot block a request indefinitely.
const DefaultDBTimeout = 5 * time.Second

func WithDBTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, DefaultDBTimeout)
}
