// Package models defines client-side data models for the MANTIS field app.
package models

import (
	"time"

	"github.com/google/uuid"
)

// SyncStatus is the queue state of a locally recorded infringement.
//
// Transitions: pending → syncing → {synced | failed}; failed → syncing on
// retry. synced is terminal.
type SyncStatus string

const (
	SyncStatusPending SyncStatus = "pending"
	SyncStatusSyncing SyncStatus = "syncing"
	SyncStatusSynced  SyncStatus = "synced"
	SyncStatusFailed  SyncStatus = "failed"
)

// GpsCoordinates is the device fix captured at record time.
type GpsCoordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Accuracy  float64 `json:"accuracy"`
}

// EvidencePhoto references a locally captured image awaiting upload.
type EvidencePhoto struct {
	// LocalID identifies the photo within the record before a remote URL exists.
	LocalID string `json:"local_id"`
	// Path is the on-device file path of the (already watermarked) image.
	Path string `json:"path"`
	// RemoteURL is set after a successful upload.
	RemoteURL string `json:"remote_url,omitempty"`
}

// QueuedInfringement is one offline-recorded infringement awaiting submission
// to the sync gateway. JSON tags reproduce the persisted field names used by
// the mobile apps so exported records stay compatible.
type QueuedInfringement struct {
	// LocalID is assigned exactly once at enqueue time and never changes.
	LocalID string `json:"id"`

	VehicleRegNumber    string `json:"vehicle_reg_number"`
	OffenceID           string `json:"offence_id"`
	DriverLicenceNumber string `json:"driver_licence_number,omitempty"`
	LocationDescription string `json:"location_description,omitempty"`
	Notes               string `json:"notes,omitempty"`

	// Photos holds at most five items; the capture layer enforces the cap.
	Photos []EvidencePhoto `json:"photos,omitempty"`

	Gps *GpsCoordinates `json:"gps_coordinates,omitempty"`

	// CreatedAt is the client timestamp, set once at enqueue time.
	CreatedAt time.Time `json:"created_at"`

	SyncStatus   SyncStatus `json:"sync_status"`
	SyncAttempts int        `json:"sync_attempts"`
	// LastSyncAttempt is overwritten on every attempt, never cleared.
	LastSyncAttempt *time.Time `json:"last_sync_attempt,omitempty"`
	// SyncError holds the last remote failure; cleared when a retry starts.
	SyncError string `json:"sync_error,omitempty"`
	// RemoteID is set only after a successful remote create. A record with a
	// RemoteID must be in SyncStatusSynced.
	RemoteID string `json:"synced_infringement_id,omitempty"`
}

// NewQueuedInfringement builds a pending record with a fresh local id and the
// current UTC time. Payload fields are left to the caller.
func NewQueuedInfringement() *QueuedInfringement {
	return &QueuedInfringement{
		LocalID:    uuid.NewString(),
		CreatedAt:  time.Now().UTC(),
		SyncStatus: SyncStatusPending,
	}
}
