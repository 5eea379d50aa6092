package service

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/turingco/quotation/internal/sequence/domain"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.DocumentSequence{}))
	return db
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNextIsGapFreeWithinYear(t *testing.T) {
	alloc := NewService(ServiceParam{DB: newTestDB(t), Log: zap.NewNop()})
	ctx := context.Background()

	first, err := alloc.Next(ctx, date(2025, time.May, 1))
	require.NoError(t, err)
	second, err := alloc.Next(ctx, date(2025, time.November, 30))
	require.NoError(t, err)

	assert.Equal(t, "2025-001", first)
	assert.Equal(t, "2025-002", second)
}

func TestNextResetsOnNewYear(t *testing.T) {
	alloc := NewService(ServiceParam{DB: newTestDB(t), Log: zap.NewNop()})
	ctx := context.Background()

	_, err := alloc.Next(ctx, date(2025, time.December, 31))
	require.NoError(t, err)

	number, err := alloc.Next(ctx, date(2026, time.January, 1))
	require.NoError(t, err)
	assert.Equal(t, "2026-001", number)

	// The old year's counter keeps its position.
	number, err = alloc.Next(ctx, date(2025, time.December, 31))
	require.NoError(t, err)
	assert.Equal(t, "2025-002", number)
}

func TestNextStampsCallerTime(t *testing.T) {
	db := newTestDB(t)
	alloc := NewService(ServiceParam{DB: db, Log: zap.NewNop()})

	issuedAt := date(2025, time.May, 1)
	_, err := alloc.Next(context.Background(), issuedAt)
	require.NoError(t, err)

	var seq domain.DocumentSequence
	require.NoError(t, db.First(&seq, "year_key = ?", "2025").Error)
	assert.True(t, seq.UpdatedAt.Equal(issuedAt))
}

func TestNextNeverDeduplicates(t *testing.T) {
	alloc := NewService(ServiceParam{DB: newTestDB(t), Log: zap.NewNop()})
	ctx := context.Background()

	seen := map[string]bool{}
	for i := 0; i < 5; i++ {
		number, err := alloc.Next(ctx, date(2025, time.May, 1))
		require.NoError(t, err)
		assert.False(t, seen[number])
		seen[number] = true
	}
	assert.True(t, seen["2025-005"])
}
