package queue

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mantisworks/mantis-field/internal/client/models"
	"github.com/mantisworks/mantis-field/internal/common"
	"github.com/mantisworks/mantis-field/internal/dbx"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

const selectColumns = `id, vehicle_reg_number, offence_id, driver_licence_number,
	location_description, notes, photos, gps_coordinates, created_at,
	sync_status, sync_attempts, last_sync_attempt, sync_error, synced_infringement_id`

func (r *SQLiteRepository) Append(ctx context.Context, rec *models.QueuedInfringement) error {
	photos, err := json.Marshal(rec.Photos)
	if err != nil {
		return fmt.Errorf("failed to marshal photos: %w", err)
	}

	var gps sql.NullString
	if rec.Gps != nil {
		b, err := json.Marshal(rec.Gps)
		if err != nil {
			return fmt.Errorf("failed to marshal gps coordinates: %w", err)
		}
		gps = sql.NullString{String: string(b), Valid: true}
	}

	var lastAttempt sql.NullString
	if rec.LastSyncAttempt != nil {
		lastAttempt = sql.NullString{String: rec.LastSyncAttempt.UTC().Format(time.RFC3339Nano), Valid: true}
	}

	query := `INSERT INTO queue (id, vehicle_reg_number, offence_id, driver_licence_number,
			location_description, notes, photos, gps_coordinates, created_at,
			sync_status, sync_attempts, last_sync_attempt, sync_error, synced_infringement_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err = r.db.ExecContext(ctx, query,
		rec.LocalID, rec.VehicleRegNumber, rec.OffenceID, rec.DriverLicenceNumber,
		rec.LocationDescription, rec.Notes, string(photos), gps,
		rec.CreatedAt.UTC().Format(time.RFC3339Nano),
		string(rec.SyncStatus), rec.SyncAttempts, lastAttempt, rec.SyncError, rec.RemoteID)
	if err != nil {
		return fmt.Errorf("failed to append queue record: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) List(ctx context.Context) ([]models.QueuedInfringement, error) {
	query := `SELECT ` + selectColumns + ` FROM queue ORDER BY seq`
	return r.queryRecords(ctx, query)
}

func (r *SQLiteRepository) ListByStatuses(ctx context.Context, statuses ...models.SyncStatus) ([]models.QueuedInfringement, error) {
	if len(statuses) == 0 {
		return nil, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(statuses)), ",")
	query := `SELECT ` + selectColumns + ` FROM queue WHERE sync_status IN (` + placeholders + `) ORDER BY seq`

	args := make([]any, 0, len(statuses))
	for _, s := range statuses {
		args = append(args, string(s))
	}
	return r.queryRecords(ctx, query, args...)
}

func (r *SQLiteRepository) GetByLocalID(ctx context.Context, localID string) (*models.QueuedInfringement, error) {
	query := `SELECT ` + selectColumns + ` FROM queue WHERE id = ?`

	row := r.db.QueryRowContext(ctx, query, localID)
	rec, err := scanRecord(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get queue record %s: %w", localID, err)
	}
	return rec, nil
}

func (r *SQLiteRepository) Update(ctx context.Context, localID string, fields UpdateFields) error {
	set := make([]string, 0, 6)
	args := make([]any, 0, 7)

	if fields.SyncStatus != nil {
		set = append(set, "sync_status = ?")
		args = append(args, string(*fields.SyncStatus))
	}
	if fields.SyncAttempts != nil {
		set = append(set, "sync_attempts = ?")
		args = append(args, *fields.SyncAttempts)
	}
	if fields.LastSyncAttempt != nil {
		set = append(set, "last_sync_attempt = ?")
		args = append(args, fields.LastSyncAttempt.UTC().Format(time.RFC3339Nano))
	}
	if fields.SyncError != nil {
		set = append(set, "sync_error = ?")
		args = append(args, *fields.SyncError)
	}
	if fields.RemoteID != nil {
		set = append(set, "synced_infringement_id = ?")
		args = append(args, *fields.RemoteID)
	}
	if fields.Photos != nil {
		b, err := json.Marshal(fields.Photos)
		if err != nil {
			return fmt.Errorf("failed to marshal photos: %w", err)
		}
		set = append(set, "photos = ?")
		args = append(args, string(b))
	}

	if len(set) == 0 {
		// Nothing to merge; still report a missing record to the caller.
		_, err := r.GetByLocalID(ctx, localID)
		return err
	}

	args = append(args, localID)
	query := `UPDATE queue SET ` + strings.Join(set, ", ") + ` WHERE id = ?`

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update queue record %s: %w", localID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *SQLiteRepository) Remove(ctx context.Context, localID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM queue WHERE id = ?`, localID)
	if err != nil {
		return fmt.Errorf("failed to remove queue record %s: %w", localID, err)
	}
	return nil
}

func (r *SQLiteRepository) RemoveByStatus(ctx context.Context, status models.SyncStatus) (int, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM queue WHERE sync_status = ?`, string(status))
	if err != nil {
		return 0, fmt.Errorf("failed to remove %s queue records: %w", status, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM queue`); err != nil {
		return fmt.Errorf("failed to clear queue: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) CountByStatus(ctx context.Context) (models.StatusCounts, error) {
	var counts models.StatusCounts

	rows, err := r.db.QueryContext(ctx, `SELECT sync_status, COUNT(*) FROM queue GROUP BY sync_status`)
	if err != nil {
		return counts, fmt.Errorf("failed to count queue records: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return counts, err
		}
		counts.Total += n
		switch models.SyncStatus(status) {
		case models.SyncStatusPending:
			counts.Pending = n
		case models.SyncStatusSyncing:
			counts.Syncing = n
		case models.SyncStatusSynced:
			counts.Synced = n
		case models.SyncStatusFailed:
			counts.Failed = n
		}
	}
	if err := rows.Err(); err != nil {
		return counts, err
	}
	return counts, nil
}

func (r *SQLiteRepository) ResetStuckSyncing(ctx context.Context) (int, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE queue SET sync_status = ? WHERE sync_status = ?`,
		string(models.SyncStatusPending), string(models.SyncStatusSyncing))
	if err != nil {
		return 0, fmt.Errorf("failed to reset stuck records: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

func (r *SQLiteRepository) queryRecords(ctx context.Context, query string, args ...any) ([]models.QueuedInfringement, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select queue records: %w", err)
	}
	defer rows.Close()

	var result []models.QueuedInfringement
	for rows.Next() {
		rec, err := scanRecord(rows.Scan)
		if err != nil {
			return nil, err
		}
		result = append(result, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// scanRecord maps one row onto a model. Timestamps are stored as RFC3339Nano
// text so the layout does not depend on driver-specific time handling.
func scanRecord(scan func(dest ...any) error) (*models.QueuedInfringement, error) {
	var rec models.QueuedInfringement
	var photos, createdAt, status string
	var gps, lastAttempt sql.NullString

	err := scan(&rec.LocalID, &rec.VehicleRegNumber, &rec.OffenceID, &rec.DriverLicenceNumber,
		&rec.LocationDescription, &rec.Notes, &photos, &gps, &createdAt,
		&status, &rec.SyncAttempts, &lastAttempt, &rec.SyncError, &rec.RemoteID)
	if err != nil {
		return nil, err
	}

	rec.SyncStatus = models.SyncStatus(status)

	if err := json.Unmarshal([]byte(photos), &rec.Photos); err != nil {
		return nil, fmt.Errorf("failed to unmarshal photos: %w", err)
	}
	if gps.Valid {
		rec.Gps = &models.GpsCoordinates{}
		if err := json.Unmarshal([]byte(gps.String), rec.Gps); err != nil {
			return nil, fmt.Errorf("failed to unmarshal gps coordinates: %w", err)
		}
	}

	rec.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}
	if lastAttempt.Valid {
		t, err := time.Parse(time.RFC3339Nano, lastAttempt.String)
		if err != nil {
			return nil, fmt.Errorf("failed to parse last_sync_attempt: %w", err)
		}
		rec.LastSyncAttempt = &t
	}

	return &rec, nil
}
