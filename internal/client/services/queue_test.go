package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mantisworks/mantis-field/internal/client/models"
	"github.com/mantisworks/mantis-field/internal/common"
)

func TestEnqueue_WorksWhileOffline(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.probe.set(false)

	rec, err := env.queue.Enqueue(ctx, EnqueueInput{
		VehicleRegNumber: "ca 123-456",
		OffenceID:        "PRK-DISABLED",
		Notes:            "parked in disabled bay",
		Gps:              &models.GpsCoordinates{Latitude: -33.92, Longitude: 18.42, Accuracy: 8},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, rec.LocalID)
	assert.Equal(t, models.SyncStatusPending, rec.SyncStatus)
	assert.Equal(t, "CA 123-456", rec.VehicleRegNumber)
	assert.False(t, rec.CreatedAt.IsZero())

	// capture never reached the network
	assert.Empty(t, env.client.createdOrder())

	got, err := env.queue.Get(ctx, rec.LocalID)
	require.NoError(t, err)
	assert.Equal(t, rec.LocalID, got.LocalID)
}

func TestEnqueue_Validation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.queue.Enqueue(ctx, EnqueueInput{OffenceID: "SPD-60-80"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = env.queue.Enqueue(ctx, EnqueueInput{VehicleRegNumber: "   ", OffenceID: "SPD-60-80"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = env.queue.Enqueue(ctx, EnqueueInput{VehicleRegNumber: "CA123456"})
	assert.ErrorIs(t, err, ErrValidation)

	photos := make([]models.EvidencePhoto, common.MaxEvidencePhotos+1)
	_, err = env.queue.Enqueue(ctx, EnqueueInput{
		VehicleRegNumber: "CA123456",
		OffenceID:        "SPD-60-80",
		Photos:           photos,
	})
	require.ErrorIs(t, err, ErrValidation)
	assert.True(t, strings.Contains(err.Error(), "photos"))
}

func TestCounts_ReflectQueueState(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.enqueue(t, "AAA11111")
	bad := env.enqueue(t, "BBB22222")
	env.client.createFn = func(rec *models.QueuedInfringement) (string, error) {
		if rec.LocalID == bad.LocalID {
			return "", assert.AnError
		}
		return "remote-" + rec.LocalID, nil
	}

	_, err := env.sync.TriggerSync(ctx)
	require.NoError(t, err)
	env.enqueue(t, "CCC33333")

	counts := env.queue.Counts(ctx)
	assert.Equal(t, 3, counts.Total)
	assert.Equal(t, 1, counts.Pending)
	assert.Equal(t, 1, counts.Synced)
	assert.Equal(t, 1, counts.Failed)
	assert.Equal(t, 0, counts.Syncing)
}

func TestClearSynced_KeepsUnsyncedRecords(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.enqueue(t, "AAA11111")
	env.enqueue(t, "BBB22222")
	_, err := env.sync.TriggerSync(ctx)
	require.NoError(t, err)

	pending := env.enqueue(t, "CCC33333")

	n, err := env.queue.ClearSynced(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	left := env.queue.List(ctx)
	require.Len(t, left, 1)
	assert.Equal(t, pending.LocalID, left[0].LocalID)
}

func TestClearAll_EmptiesQueueAndSummary(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.enqueue(t, "AAA11111")
	env.enqueue(t, "BBB22222")
	_, err := env.sync.TriggerSync(ctx)
	require.NoError(t, err)

	require.NoError(t, env.queue.ClearAll(ctx))
	assert.Empty(t, env.queue.List(ctx))
	assert.Equal(t, 0, env.queue.Counts(ctx).Total)

	// the stale summary goes with the records it described
	summary, err := env.sync.LastSummary(ctx)
	require.NoError(t, err)
	assert.Nil(t, summary)
}
