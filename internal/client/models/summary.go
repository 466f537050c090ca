package models

import "time"

// LastSyncSummaryKey is the metadata key the serialized SyncSummary lives under.
const LastSyncSummaryKey = "last_sync_summary"

// SyncSummary is the persisted last-run summary shown in the status screen.
// It is stored as JSON under the metadata key "last_sync_summary".
type SyncSummary struct {
	LastSync time.Time `json:"last_sync"`
	Success  int       `json:"success"`
	Failed   int       `json:"failed"`
}

// StatusCounts is the read-only status surface: queue counts by state,
// always recomputed from the store.
type StatusCounts struct {
	Total   int `json:"total"`
	Pending int `json:"pending"`
	Syncing int `json:"syncing"`
	Synced  int `json:"synced"`
	Failed  int `json:"failed"`
}
