package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	// FindForUpdate loads the counter row for yearKey, locking it for
	// the duration of the surrounding transaction. Returns nil when no
	// counter exists for that year yet.
	FindForUpdate(ctx context.Context, db *gorm.DB, yearKey string) (*DocumentSequence, error)
	Save(ctx context.Context, db *gorm.DB, seq *DocumentSequence) error
}
