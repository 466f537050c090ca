package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mantisworks/mantis-field/internal/client/models"
	"github.com/mantisworks/mantis-field/internal/client/repositories/queue"
	"github.com/mantisworks/mantis-field/internal/common"
	"github.com/mantisworks/mantis-field/internal/logging"
)

// ErrValidation wraps a human-readable reason an infringement could not be
// captured. Capture is the one operation that must not fail silently.
var ErrValidation = errors.New("invalid infringement")

// EnqueueInput carries the officer-entered fields of a new infringement.
type EnqueueInput struct {
	VehicleRegNumber    string
	OffenceID           string
	DriverLicenceNumber string
	LocationDescription string
	Notes               string
	Photos              []models.EvidencePhoto
	Gps                 *models.GpsCoordinates
}

// QueueService owns the local capture queue: recording new infringements and
// the read/cleanup surface the status screen and REPL use.
type QueueService interface {
	// Enqueue validates the input and appends a new pending record. Works
	// fully offline; nothing here touches the network.
	Enqueue(ctx context.Context, in EnqueueInput) (*models.QueuedInfringement, error)

	// List returns every queued record oldest first. A storage error yields
	// an empty list so the status surface always renders.
	List(ctx context.Context) []models.QueuedInfringement

	// Get returns one record by local id, common.ErrNotFound when absent.
	Get(ctx context.Context, localID string) (*models.QueuedInfringement, error)

	// Counts returns per-status totals, zeros on storage error.
	Counts(ctx context.Context) models.StatusCounts

	// ClearSynced removes successfully synced records and reports how many
	// were dropped. Pending and failed records are never touched.
	ClearSynced(ctx context.Context) (int, error)

	// ClearAll wipes the whole queue, synced or not, together with the
	// derived sync summary.
	ClearAll(ctx context.Context) error
}

// Wiper atomically clears the queue together with derived sync state. The
// repositories bundle in the client package implements it.
type Wiper interface {
	ResetLocalState(ctx context.Context) error
}

type queueService struct {
	repo   queue.Repository
	wiper  Wiper
	logger logging.Logger
}

// NewQueueService builds the queue service. wiper may be nil; ClearAll then
// falls back to clearing just the queue table.
func NewQueueService(repo queue.Repository, wiper Wiper, logger logging.Logger) QueueService {
	return &queueService{repo: repo, wiper: wiper, logger: logger.With("module", "queue")}
}

func (s *queueService) Enqueue(ctx context.Context, in EnqueueInput) (*models.QueuedInfringement, error) {
	if strings.TrimSpace(in.VehicleRegNumber) == "" {
		return nil, fmt.Errorf("%w: vehicle registration number is required", ErrValidation)
	}
	if strings.TrimSpace(in.OffenceID) == "" {
		return nil, fmt.Errorf("%w: offence is required", ErrValidation)
	}
	if len(in.Photos) > common.MaxEvidencePhotos {
		return nil, fmt.Errorf("%w: at most %d evidence photos", ErrValidation, common.MaxEvidencePhotos)
	}

	rec := models.NewQueuedInfringement()
	rec.VehicleRegNumber = strings.ToUpper(strings.TrimSpace(in.VehicleRegNumber))
	rec.OffenceID = strings.TrimSpace(in.OffenceID)
	rec.DriverLicenceNumber = strings.TrimSpace(in.DriverLicenceNumber)
	rec.LocationDescription = strings.TrimSpace(in.LocationDescription)
	rec.Notes = in.Notes
	rec.Photos = in.Photos
	rec.Gps = in.Gps

	if err := s.repo.Append(ctx, rec); err != nil {
		return nil, fmt.Errorf("failed to queue infringement: %w", err)
	}

	s.logger.Info(ctx, "infringement queued", "id", rec.LocalID, "vehicle", rec.VehicleRegNumber)
	return rec, nil
}

func (s *queueService) List(ctx context.Context) []models.QueuedInfringement {
	records, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error(ctx, "failed to list queue", "error", err)
		return []models.QueuedInfringement{}
	}
	return records
}

func (s *queueService) Get(ctx context.Context, localID string) (*models.QueuedInfringement, error) {
	return s.repo.GetByLocalID(ctx, localID)
}

func (s *queueService) Counts(ctx context.Context) models.StatusCounts {
	counts, err := s.repo.CountByStatus(ctx)
	if err != nil {
		s.logger.Error(ctx, "failed to count queue", "error", err)
		return models.StatusCounts{}
	}
	return counts
}

func (s *queueService) ClearSynced(ctx context.Context) (int, error) {
	n, err := s.repo.RemoveByStatus(ctx, models.SyncStatusSynced)
	if err != nil {
		return 0, fmt.Errorf("failed to clear synced records: %w", err)
	}
	s.logger.Info(ctx, "synced records cleared", "count", n)
	return n, nil
}

func (s *queueService) ClearAll(ctx context.Context) error {
	var err error
	if s.wiper != nil {
		err = s.wiper.ResetLocalState(ctx)
	} else {
		err = s.repo.Clear(ctx)
	}
	if err != nil {
		return fmt.Errorf("failed to clear queue: %w", err)
	}
	s.logger.Info(ctx, "queue cleared")
	return nil
}
