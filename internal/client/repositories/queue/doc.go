// Package queue provides the durable persistence layer for the offline
// infringement queue.
//
// # Overview
//
// The package defines a Repository interface over QueuedInfringement records
// (see internal/client/models) and a SQLite-backed implementation
// (SQLiteRepository) over a dbx.DBTX (either *sql.DB or *sql.Tx). Records are
// ordered by an autoincrement seq column, which gives the FIFO drain order the
// sync executor relies on.
//
// # Data Model
//
// One row per queued infringement. The payload columns reuse the field names
// the mobile apps persisted (vehicle_reg_number, offence_id, …); photos and
// gps_coordinates are stored as JSON text, timestamps as RFC3339Nano text.
//
// # Concurrency
//
// Safe for concurrent use when backed by a properly configured *sql.DB; the
// sync executor and the enqueue path may interleave freely because every
// record has a distinct local id.
//
// Typical Usage
//
//	repo := queue.NewSQLiteRepository(db)
//	_ = repo.Append(ctx, rec)
//	pend, _ := repo.ListByStatuses(ctx, models.SyncStatusPending, models.SyncStatusFailed)
//	_ = repo.Update(ctx, rec.LocalID, queue.UpdateFields{SyncStatus: &synced})
package queue
