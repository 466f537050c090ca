// Package services contains the application services of the field client:
// the sync executor, queue management, connectivity watching, and officer
// session handling.
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/mantisworks/mantis-field/internal/client/client"
	"github.com/mantisworks/mantis-field/internal/client/models"
	"github.com/mantisworks/mantis-field/internal/client/repositories/metadata"
	"github.com/mantisworks/mantis-field/internal/client/repositories/queue"
	"github.com/mantisworks/mantis-field/internal/common"
	"github.com/mantisworks/mantis-field/internal/logging"
)

// ItemError records one failed queue item of a sync pass, keyed by local id.
type ItemError struct {
	LocalID string `json:"id"`
	Error   string `json:"error"`
}

// SyncResult aggregates one full sync pass. Per-item remote errors are
// captured here and on the records themselves; they are never raised to the
// caller of TriggerSync.
type SyncResult struct {
	SuccessCount int
	FailedCount  int
	Errors       []ItemError
}

// ConnectivityProbe reports whether the gateway is reachable right now.
type ConnectivityProbe interface {
	Online(ctx context.Context) bool
}

// PingProbe adapts the gateway client's Ping to ConnectivityProbe.
type PingProbe struct {
	Client client.Client
}

func (p *PingProbe) Online(ctx context.Context) bool {
	return p.Client.Ping(ctx) == nil
}

// PhotoUploader pushes one evidence photo of an already-created infringement
// and returns its remote URL. Implementations live in internal/client/evidence.
type PhotoUploader interface {
	Upload(ctx context.Context, infringementID string, photo models.EvidencePhoto) (string, error)
}

// SyncService drains the offline queue against the sync gateway.
type SyncService interface {
	// TriggerSync runs one full pass: reachability check, then every pending
	// and failed record, sequentially and oldest first. Returns ErrOffline
	// without touching any record when the gateway is unreachable, and
	// ErrSyncInProgress when a pass is already running.
	TriggerSync(ctx context.Context) (*SyncResult, error)

	// Retry re-attempts a single failed (or pending) record. Returns
	// common.ErrNotFound when the local id is no longer in the queue and the
	// remote error when the attempt itself fails.
	Retry(ctx context.Context, localID string) error

	// LastSummary returns the persisted last-run summary, or nil when no
	// pass has completed yet.
	LastSummary(ctx context.Context) (*models.SyncSummary, error)
}

type syncService struct {
	client   client.Client
	repo     queue.Repository
	meta     metadata.Repository
	photos   PhotoUploader
	probe    ConnectivityProbe
	logger   logging.Logger
	inFlight atomic.Bool
	now      func() time.Time
}

// NewSyncService wires the sync executor. photos may be nil when the
// deployment has no photo storage configured; records still sync.
func NewSyncService(c client.Client, repo queue.Repository, meta metadata.Repository,
	photos PhotoUploader, probe ConnectivityProbe, logger logging.Logger) SyncService {
	return &syncService{
		client: c,
		repo:   repo,
		meta:   meta,
		photos: photos,
		probe:  probe,
		logger: logger.With("module", "sync"),
		now:    time.Now,
	}
}

func (s *syncService) TriggerSync(ctx context.Context) (*SyncResult, error) {
	if !s.inFlight.CompareAndSwap(false, true) {
		return nil, common.ErrSyncInProgress
	}
	defer s.inFlight.Store(false)

	result := &SyncResult{}

	// Fail fast with no state changes; lack of connectivity never marks
	// records failed.
	if !s.probe.Online(ctx) {
		return result, common.ErrOffline
	}

	records, err := s.repo.ListByStatuses(ctx, models.SyncStatusPending, models.SyncStatusFailed)
	if err != nil {
		return result, fmt.Errorf("failed to read queue: %w", err)
	}

	// One at a time, oldest first. Sequential draining bounds gateway load
	// and keeps the audit order deterministic.
	for i := range records {
		s.syncOne(ctx, &records[i], result)
	}

	if err := s.saveSummary(ctx, result); err != nil {
		s.logger.Warn(ctx, "failed to persist sync summary", "error", err)
	}

	s.logger.Info(ctx, "sync pass finished",
		"success", result.SuccessCount, "failed", result.FailedCount)

	return result, nil
}

func (s *syncService) Retry(ctx context.Context, localID string) error {
	rec, err := s.repo.GetByLocalID(ctx, localID)
	if err != nil {
		return err
	}
	if rec.SyncStatus == models.SyncStatusSynced {
		return nil
	}
	if !s.probe.Online(ctx) {
		return common.ErrOffline
	}

	result := &SyncResult{}
	s.syncOne(ctx, rec, result)

	if len(result.Errors) > 0 {
		return &client.RemoteError{Message: result.Errors[0].Error}
	}
	return nil
}

func (s *syncService) LastSummary(ctx context.Context) (*models.SyncSummary, error) {
	raw, err := s.meta.Get(ctx, models.LastSyncSummaryKey)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	var summary models.SyncSummary
	if err := json.Unmarshal(raw, &summary); err != nil {
		return nil, fmt.Errorf("failed to decode sync summary: %w", err)
	}
	return &summary, nil
}

// syncOne moves a record pending|failed → syncing → synced|failed and folds
// the outcome into result.
func (s *syncService) syncOne(ctx context.Context, rec *models.QueuedInfringement, result *SyncResult) {
	now := s.now().UTC()
	attempts := rec.SyncAttempts + 1
	syncing := models.SyncStatusSyncing
	noError := ""

	err := s.repo.Update(ctx, rec.LocalID, queue.UpdateFields{
		SyncStatus:      &syncing,
		SyncAttempts:    &attempts,
		LastSyncAttempt: &now,
		SyncError:       &noError,
	})
	if err != nil {
		// Record vanished mid-pass (concurrent clear); skip it.
		s.logger.Warn(ctx, "record disappeared before sync", "id", rec.LocalID, "error", err)
		return
	}
	rec.SyncAttempts = attempts

	remoteID, err := s.client.CreateInfringement(ctx, rec)
	if err != nil {
		failed := models.SyncStatusFailed
		msg := err.Error()
		if uerr := s.repo.Update(ctx, rec.LocalID, queue.UpdateFields{
			SyncStatus: &failed,
			SyncError:  &msg,
		}); uerr != nil {
			s.logger.Error(ctx, "failed to mark record failed", "id", rec.LocalID, "error", uerr)
		}
		result.FailedCount++
		result.Errors = append(result.Errors, ItemError{LocalID: rec.LocalID, Error: msg})
		s.logger.Warn(ctx, "infringement rejected by gateway", "id", rec.LocalID, "error", msg)
		return
	}

	synced := models.SyncStatusSynced
	if err := s.repo.Update(ctx, rec.LocalID, queue.UpdateFields{
		SyncStatus: &synced,
		RemoteID:   &remoteID,
	}); err != nil {
		s.logger.Error(ctx, "failed to mark record synced", "id", rec.LocalID, "error", err)
	}

	// Photos are best-effort: a failed upload surfaces as a warning and never
	// reverts the synced record.
	s.uploadPhotos(ctx, rec, remoteID)

	result.SuccessCount++
}

func (s *syncService) uploadPhotos(ctx context.Context, rec *models.QueuedInfringement, remoteID string) {
	if s.photos == nil || len(rec.Photos) == 0 {
		return
	}

	photos := make([]models.EvidencePhoto, len(rec.Photos))
	copy(photos, rec.Photos)

	changed := false
	for i, p := range photos {
		if p.RemoteURL != "" {
			continue
		}
		url, err := s.photos.Upload(ctx, remoteID, p)
		if err != nil {
			s.logger.Warn(ctx, "evidence photo upload failed",
				"id", rec.LocalID, "photo", p.LocalID, "error", err)
			continue
		}
		photos[i].RemoteURL = url
		changed = true
	}

	if changed {
		if err := s.repo.Update(ctx, rec.LocalID, queue.UpdateFields{Photos: photos}); err != nil {
			s.logger.Warn(ctx, "failed to persist photo urls", "id", rec.LocalID, "error", err)
		}
	}
}

func (s *syncService) saveSummary(ctx context.Context, result *SyncResult) error {
	summary := models.SyncSummary{
		LastSync: s.now().UTC(),
		Success:  result.SuccessCount,
		Failed:   result.FailedCount,
	}
	raw, err := json.Marshal(summary)
	if err != nil {
		return err
	}
	return s.meta.Set(ctx, models.LastSyncSummaryKey, raw)
}
