package clock

import (
	"context"
	"time"
)

// Clock abstracts wall time so issue dates and document numbers can be
// pinned in tests.
type Clock interface {
	Now(ctx context.Context) time.Time
}
