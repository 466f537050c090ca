// Package common contains shared constants and sentinel errors used across
// the MANTIS field client. Callers should match these values with errors.Is.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Connectivity: the device has no route to the sync gateway. A full sync
	// pass aborts with this error before touching any queued record.
	ErrOffline = errors.New("no network connection")

	// A second TriggerSync while a pass is running is rejected, not queued.
	ErrSyncInProgress = errors.New("sync pass already running")

	// Auth errors.
	ErrUnauthorized    = errors.New("unauthorized")
	ErrTokenExpired    = errors.New("token expired")
	ErrNoCachedSession = errors.New("no cached session")
	ErrIncorrectPin    = errors.New("incorrect device pin")
)
