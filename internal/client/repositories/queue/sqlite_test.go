package queue

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/mantisworks/mantis-field/internal/client/models"
	"github.com/mantisworks/mantis-field/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE queue (
  seq INTEGER PRIMARY KEY AUTOINCREMENT,
  id TEXT NOT NULL UNIQUE,
  vehicle_reg_number TEXT NOT NULL,
  offence_id TEXT NOT NULL,
  driver_licence_number TEXT NOT NULL DEFAULT '',
  location_description TEXT NOT NULL DEFAULT '',
  notes TEXT NOT NULL DEFAULT '',
  photos TEXT NOT NULL DEFAULT '[]',
  gps_coordinates TEXT,
  created_at TEXT NOT NULL,
  sync_status TEXT NOT NULL DEFAULT 'pending',
  sync_attempts INTEGER NOT NULL DEFAULT 0,
  last_sync_attempt TEXT,
  sync_error TEXT NOT NULL DEFAULT '',
  synced_infringement_id TEXT NOT NULL DEFAULT ''
);
`)
	require.NoError(t, err)
	return db
}

func makeRecord(localID string) *models.QueuedInfringement {
	return &models.QueuedInfringement{
		LocalID:          localID,
		VehicleRegNumber: "ABC123",
		OffenceID:        "OFF-1",
		CreatedAt:        time.Date(2026, 4, 2, 8, 30, 0, 0, time.UTC),
		SyncStatus:       models.SyncStatusPending,
	}
}

func TestAppendAndList_PreservesInsertionOrder(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, r.Append(ctx, makeRecord(fmt.Sprintf("loc-%d", i))))
	}

	got, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 5)
	for i, rec := range got {
		assert.Equal(t, fmt.Sprintf("loc-%d", i), rec.LocalID)
	}
}

func TestAppend_RoundTripsAllFields(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	attempt := time.Date(2026, 4, 2, 9, 0, 0, 123456000, time.UTC)
	rec := &models.QueuedInfringement{
		LocalID:             "loc-full",
		VehicleRegNumber:    "XYZ789",
		OffenceID:           "OFF-22",
		DriverLicenceNumber: "DL-5",
		LocationDescription: "N1 offramp",
		Notes:               "no front plate",
		Photos: []models.EvidencePhoto{
			{LocalID: "p1", Path: "/data/p1.jpg"},
			{LocalID: "p2", Path: "/data/p2.jpg", RemoteURL: "https://cdn/p2"},
		},
		Gps:             &models.GpsCoordinates{Latitude: -33.9, Longitude: 18.4, Accuracy: 3.1},
		CreatedAt:       time.Date(2026, 4, 2, 8, 45, 11, 0, time.UTC),
		SyncStatus:      models.SyncStatusFailed,
		SyncAttempts:    2,
		LastSyncAttempt: &attempt,
		SyncError:       "500 server error",
	}
	require.NoError(t, r.Append(ctx, rec))

	got, err := r.GetByLocalID(ctx, "loc-full")
	require.NoError(t, err)
	assert.Equal(t, rec, got)
}

func TestGetByLocalID_NotFound(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)

	_, err := r.GetByLocalID(context.Background(), "missing")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestUpdate_MergesOnlyGivenFields(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Append(ctx, makeRecord("loc-1")))

	status := models.SyncStatusSyncing
	attempts := 1
	ts := time.Date(2026, 4, 2, 9, 15, 0, 0, time.UTC)
	clearErr := ""
	require.NoError(t, r.Update(ctx, "loc-1", UpdateFields{
		SyncStatus:      &status,
		SyncAttempts:    &attempts,
		LastSyncAttempt: &ts,
		SyncError:       &clearErr,
	}))

	got, err := r.GetByLocalID(ctx, "loc-1")
	require.NoError(t, err)
	assert.Equal(t, models.SyncStatusSyncing, got.SyncStatus)
	assert.Equal(t, 1, got.SyncAttempts)
	require.NotNil(t, got.LastSyncAttempt)
	assert.Equal(t, ts, *got.LastSyncAttempt)
	assert.Empty(t, got.SyncError)
	// untouched payload fields
	assert.Equal(t, "ABC123", got.VehicleRegNumber)
	assert.Equal(t, "OFF-1", got.OffenceID)
}

func TestUpdate_NotFound(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)

	status := models.SyncStatusSynced
	err := r.Update(context.Background(), "missing", UpdateFields{SyncStatus: &status})
	assert.ErrorIs(t, err, common.ErrNotFound)

	// empty field set on a missing record still reports not found
	err = r.Update(context.Background(), "missing", UpdateFields{})
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestRemove_IsNoOpWhenAbsent(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Append(ctx, makeRecord("loc-1")))
	require.NoError(t, r.Remove(ctx, "loc-1"))
	require.NoError(t, r.Remove(ctx, "loc-1")) // second call: no-op

	got, err := r.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRemoveByStatus_ClearsSyncedOnly(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	// scenario: 2 synced + 1 pending → clearing synced retains the pending one
	for i, status := range []models.SyncStatus{models.SyncStatusSynced, models.SyncStatusSynced, models.SyncStatusPending} {
		rec := makeRecord(fmt.Sprintf("loc-%d", i))
		rec.SyncStatus = status
		require.NoError(t, r.Append(ctx, rec))
	}

	n, err := r.RemoveByStatus(ctx, models.SyncStatusSynced)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	got, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, models.SyncStatusPending, got[0].SyncStatus)
}

func TestCountByStatus(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	statuses := []models.SyncStatus{
		models.SyncStatusPending, models.SyncStatusPending,
		models.SyncStatusFailed, models.SyncStatusSynced,
	}
	for i, s := range statuses {
		rec := makeRecord(fmt.Sprintf("loc-%d", i))
		rec.SyncStatus = s
		require.NoError(t, r.Append(ctx, rec))
	}

	counts, err := r.CountByStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCounts{Total: 4, Pending: 2, Syncing: 0, Synced: 1, Failed: 1}, counts)
}

func TestResetStuckSyncing(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	stuck := makeRecord("loc-stuck")
	stuck.SyncStatus = models.SyncStatusSyncing
	require.NoError(t, r.Append(ctx, stuck))
	done := makeRecord("loc-done")
	done.SyncStatus = models.SyncStatusSynced
	require.NoError(t, r.Append(ctx, done))

	n, err := r.ResetStuckSyncing(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, err := r.GetByLocalID(ctx, "loc-stuck")
	require.NoError(t, err)
	assert.Equal(t, models.SyncStatusPending, got.SyncStatus)

	// synced records are untouched
	got, err = r.GetByLocalID(ctx, "loc-done")
	require.NoError(t, err)
	assert.Equal(t, models.SyncStatusSynced, got.SyncStatus)
}

func TestClear(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Append(ctx, makeRecord("loc-1")))
	require.NoError(t, r.Append(ctx, makeRecord("loc-2")))
	require.NoError(t, r.Clear(ctx))

	counts, err := r.CountByStatus(ctx)
	require.NoError(t, err)
	assert.Zero(t, counts.Total)
}
