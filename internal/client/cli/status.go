package cli

import (
	"context"
	"fmt"
	"time"
)

// status prints the queue counts and the last sync summary.
func (a *App) status(ctx context.Context) {
	counts := a.queue.Counts(ctx)

	fmt.Fprintf(a.out, "Queue: %d total (%d pending, %d syncing, %d synced, %d failed)\n",
		counts.Total, counts.Pending, counts.Syncing, counts.Synced, counts.Failed)

	if a.watcher.Online() {
		fmt.Fprintln(a.out, "Connectivity: online")
	} else {
		fmt.Fprintln(a.out, "Connectivity: offline")
	}

	summary, err := a.sync.LastSummary(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Last sync: unavailable:", err)
		return
	}
	if summary == nil {
		fmt.Fprintln(a.out, "Last sync: never")
		return
	}
	fmt.Fprintf(a.out, "Last sync: %s (%d synced, %d failed)\n",
		summary.LastSync.Local().Format(time.RFC822), summary.Success, summary.Failed)
}

// list prints every queued record, oldest first.
func (a *App) list(ctx context.Context) {
	records := a.queue.List(ctx)
	if len(records) == 0 {
		fmt.Fprintln(a.out, "Queue is empty.")
		return
	}

	for _, r := range records {
		line := fmt.Sprintf("%s  %-10s %-12s %s", r.LocalID, r.VehicleRegNumber, r.OffenceID, r.SyncStatus)
		if r.SyncError != "" {
			line += "  (" + r.SyncError + ")"
		}
		fmt.Fprintln(a.out, line)
	}
}
