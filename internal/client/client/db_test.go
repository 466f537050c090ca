package client

import (
	"context"
	"testing"

	"github.com/mantisworks/mantis-field/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func TestInitDatabase_AppliesMigrations(t *testing.T) {
	ctx := context.Background()

	repos, err := InitDatabase(ctx, "file:initdb?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = repos.DB.Close() })

	// both tables exist and are usable
	rec := models.NewQueuedInfringement()
	rec.VehicleRegNumber = "ABC123"
	rec.OffenceID = "OFF-1"
	require.NoError(t, repos.Queue.Append(ctx, rec))
	require.NoError(t, repos.Metadata.Set(ctx, "k", []byte("v")))

	counts, err := repos.Queue.CountByStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, counts.Pending)
}

func TestInitDatabase_ResetsStuckSyncingRecords(t *testing.T) {
	ctx := context.Background()
	dsn := "file:stuckdb?mode=memory&cache=shared"

	repos, err := InitDatabase(ctx, dsn)
	require.NoError(t, err)

	rec := models.NewQueuedInfringement()
	rec.VehicleRegNumber = "ABC123"
	rec.OffenceID = "OFF-1"
	rec.SyncStatus = models.SyncStatusSyncing // simulate a crash mid-pass
	require.NoError(t, repos.Queue.Append(ctx, rec))

	// reopen: the stuck record must come back as pending
	repos2, err := InitDatabase(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = repos2.DB.Close()
		_ = repos.DB.Close()
	})

	got, err := repos2.Queue.GetByLocalID(ctx, rec.LocalID)
	require.NoError(t, err)
	assert.Equal(t, models.SyncStatusPending, got.SyncStatus)
}
