package queue

import (
	"context"
	"time"

	"github.com/mantisworks/mantis-field/internal/client/models"
)

// UpdateFields is a partial update of one queued record. Nil fields are left
// untouched; a non-nil pointer overwrites, including with a zero value (so a
// retry can clear sync_error by setting it to "").
type UpdateFields struct {
	SyncStatus      *models.SyncStatus
	SyncAttempts    *int
	LastSyncAttempt *time.Time
	SyncError       *string
	RemoteID        *string
	// Photos replaces the whole photo list when non-nil (used to persist
	// remote URLs after upload).
	Photos []models.EvidencePhoto
}

// Repository is the durable, ordered store of queued infringements. It
// survives process restarts; records are returned in insertion order.
type Repository interface {
	// List returns every record, oldest first.
	List(ctx context.Context) ([]models.QueuedInfringement, error)

	// ListByStatuses returns records whose sync_status matches any of the
	// given statuses, oldest first. An empty status list yields no rows.
	ListByStatuses(ctx context.Context, statuses ...models.SyncStatus) ([]models.QueuedInfringement, error)

	// GetByLocalID returns one record or common.ErrNotFound.
	GetByLocalID(ctx context.Context, localID string) (*models.QueuedInfringement, error)

	// Append adds one record at the end of the queue.
	Append(ctx context.Context, rec *models.QueuedInfringement) error

	// Update merges fields into the record matching localID. Returns
	// common.ErrNotFound when no record matches.
	Update(ctx context.Context, localID string, fields UpdateFields) error

	// Remove deletes one record. Absent records are a no-op.
	Remove(ctx context.Context, localID string) error

	// RemoveByStatus bulk-deletes records in the given status and reports how
	// many were removed. Used to clear synced records after audit.
	RemoveByStatus(ctx context.Context, status models.SyncStatus) (int, error)

	// Clear deletes all records. Destructive; callers must confirm first.
	Clear(ctx context.Context) error

	// CountByStatus computes the status surface in a single scan.
	CountByStatus(ctx context.Context) (models.StatusCounts, error)

	// ResetStuckSyncing moves records left in "syncing" by an abrupt
	// termination back to "pending" and reports how many were reset.
	ResetStuckSyncing(ctx context.Context) (int, error)
}
