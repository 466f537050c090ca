package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/mantisworks/mantis-field/internal/common"
	"github.com/mantisworks/mantis-field/internal/logging"
)

// ConnectivityWatcher polls the gateway and keeps an online/offline flag the
// rest of the app reads. On an offline→online transition it kicks off one
// sync pass so queued records drain without officer action.
type ConnectivityWatcher struct {
	probe    ConnectivityProbe
	sync     SyncService
	logger   logging.Logger
	interval time.Duration

	mu       sync.RWMutex
	online   bool
	onChange []func(online bool)
}

// NewConnectivityWatcher builds a stopped watcher; call Run to start polling.
// The initial state is offline until the first probe succeeds.
func NewConnectivityWatcher(probe ConnectivityProbe, syncSvc SyncService,
	interval time.Duration, logger logging.Logger) *ConnectivityWatcher {
	return &ConnectivityWatcher{
		probe:    probe,
		sync:     syncSvc,
		logger:   logger.With("module", "connectivity"),
		interval: interval,
	}
}

// Online reports the last observed reachability state.
func (w *ConnectivityWatcher) Online() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.online
}

// OnChange registers a callback invoked on every state transition. Must be
// called before Run.
func (w *ConnectivityWatcher) OnChange(fn func(online bool)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onChange = append(w.onChange, fn)
}

// Run polls until ctx is cancelled. Blocking; callers run it in a goroutine.
func (w *ConnectivityWatcher) Run(ctx context.Context) {
	// Probe immediately so the app does not sit offline for a full interval
	// after startup.
	w.SetState(ctx, w.probe.Online(ctx))

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.SetState(ctx, w.probe.Online(ctx))
		}
	}
}

// SetState records an observation and reacts to transitions. Exposed so call
// sites that learn about connectivity out of band (an RPC failing with
// Unavailable) can feed the watcher without waiting for the next tick.
func (w *ConnectivityWatcher) SetState(ctx context.Context, online bool) {
	w.mu.Lock()
	changed := online != w.online
	w.online = online
	callbacks := w.onChange
	w.mu.Unlock()

	if !changed {
		return
	}

	if online {
		w.logger.Info(ctx, "gateway reachable, draining queue")
		if _, err := w.sync.TriggerSync(ctx); err != nil &&
			!errors.Is(err, common.ErrSyncInProgress) && !errors.Is(err, common.ErrOffline) {
			w.logger.Error(ctx, "automatic sync failed", "error", err)
		}
	} else {
		w.logger.Info(ctx, "gateway unreachable, queueing locally")
	}

	for _, fn := range callbacks {
		fn(online)
	}
}
