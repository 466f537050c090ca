package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/mantisworks/mantis-field/internal/common"
)

// syncNow runs a manual sync pass.
func (a *App) syncNow(ctx context.Context) {
	result, err := a.sync.TriggerSync(ctx)
	switch {
	case errors.Is(err, common.ErrOffline):
		fmt.Fprintln(a.out, "Gateway unreachable; records stay queued.")
		return
	case errors.Is(err, common.ErrSyncInProgress):
		fmt.Fprintln(a.out, "A sync pass is already running.")
		return
	case err != nil:
		fmt.Fprintln(a.out, "Sync failed:", err)
		return
	}

	fmt.Fprintf(a.out, "Sync finished: %d synced, %d failed.\n", result.SuccessCount, result.FailedCount)
	for _, e := range result.Errors {
		fmt.Fprintf(a.out, "  %s: %s\n", e.LocalID, e.Error)
	}
}

// retry re-attempts a single record by local id.
func (a *App) retry(ctx context.Context, localID string) {
	switch err := a.sync.Retry(ctx, localID); {
	case err == nil:
		fmt.Fprintln(a.out, "Record synced.")
	case errors.Is(err, common.ErrNotFound):
		fmt.Fprintln(a.out, "No such record:", localID)
	case errors.Is(err, common.ErrOffline):
		fmt.Fprintln(a.out, "Gateway unreachable; try again in coverage.")
	default:
		fmt.Fprintln(a.out, "Retry failed:", err)
	}
}

// clearSynced drops records that already reached the gateway.
func (a *App) clearSynced(ctx context.Context) {
	n, err := a.queue.ClearSynced(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Clear failed:", err)
		return
	}
	fmt.Fprintf(a.out, "Removed %d synced record(s).\n", n)
}

// clearQueue wipes everything, including records that never synced. Asks for
// an explicit confirmation first.
func (a *App) clearQueue(ctx context.Context) {
	counts := a.queue.Counts(ctx)
	unsynced := counts.Total - counts.Synced
	if unsynced > 0 {
		fmt.Fprintf(a.out, "Warning: %d record(s) have not reached the gateway and will be lost.\n", unsynced)
	}
	if !Confirm(a.reader, "Clear the entire queue?", a.out) {
		fmt.Fprintln(a.out, "Cancelled.")
		return
	}

	if err := a.queue.ClearAll(ctx); err != nil {
		fmt.Fprintln(a.out, "Clear failed:", err)
		return
	}
	fmt.Fprintln(a.out, "Queue cleared.")
}
