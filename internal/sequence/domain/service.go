package domain

import (
	"context"
	"time"
)

// Allocator hands out document numbers formatted "<YYYY>-<NNN>". Every
// call consumes a number; the counter restarts at 001 when the year key
// changes.
type Allocator interface {
	Next(ctx context.Context, today time.Time) (string, error)
}
