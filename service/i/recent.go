package i

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// RecentSolutions is a bounded, newest-first index of stored solutions.
type RecentSolutions interface {
	Record(ctx context.Context, id uuid.UUID, at time.Time) error
	Latest(ctx context.Context, n int64) ([]uuid.UUID, error)
	Count(ctx context.Context) (int64, error)
}
