package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dbinit "github.com/mantisworks/mantis-field/internal/client/client"
	"github.com/mantisworks/mantis-field/internal/client/models"
	"github.com/mantisworks/mantis-field/internal/common"
	"github.com/mantisworks/mantis-field/internal/logging"

	_ "modernc.org/sqlite"
)

// fakeClient is a test double for the gateway client. Embedding the interface
// lets each test override only the calls it cares about.
type fakeClient struct {
	dbinit.Client

	mu       sync.Mutex
	created  []string // local ids in submission order
	createFn func(rec *models.QueuedInfringement) (string, error)

	access, refresh string
	// loginAccess, when set, is the access token issued by Login.
	loginAccess string
}

func (f *fakeClient) CreateInfringement(_ context.Context, rec *models.QueuedInfringement) (string, error) {
	f.mu.Lock()
	f.created = append(f.created, rec.LocalID)
	fn := f.createFn
	f.mu.Unlock()
	if fn != nil {
		return fn(rec)
	}
	return "remote-" + rec.LocalID, nil
}

func (f *fakeClient) createdOrder() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.created))
	copy(out, f.created)
	return out
}

func (f *fakeClient) Login(_ context.Context, _ string, _ []byte) error {
	f.access, f.refresh = "access-token", "refresh-token"
	if f.loginAccess != "" {
		f.access = f.loginAccess
	}
	return nil
}

func (f *fakeClient) SetTokens(access, refresh string) { f.access, f.refresh = access, refresh }
func (f *fakeClient) Tokens() (string, string)         { return f.access, f.refresh }

// stubProbe reports a fixed reachability state.
type stubProbe struct {
	mu     sync.Mutex
	online bool
}

func (p *stubProbe) Online(context.Context) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.online
}

func (p *stubProbe) set(online bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.online = online
}

type testEnv struct {
	repos  *dbinit.Repositories
	client *fakeClient
	probe  *stubProbe
	sync   SyncService
	queue  QueueService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	repos, err := dbinit.InitDatabase(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = repos.DB.Close() })

	logger := logging.NewNop()
	fc := &fakeClient{}
	probe := &stubProbe{online: true}

	return &testEnv{
		repos:  repos,
		client: fc,
		probe:  probe,
		sync:   NewSyncService(fc, repos.Queue, repos.Metadata, nil, probe, logger),
		queue:  NewQueueService(repos.Queue, repos, logger),
	}
}

func (e *testEnv) enqueue(t *testing.T, reg string) *models.QueuedInfringement {
	t.Helper()
	rec, err := e.queue.Enqueue(context.Background(), EnqueueInput{
		VehicleRegNumber: reg,
		OffenceID:        "SPD-60-80",
	})
	require.NoError(t, err)
	return rec
}

func TestTriggerSync_OfflineLeavesQueueUntouched(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.probe.set(false)

	rec := env.enqueue(t, "CA123456")

	result, err := env.sync.TriggerSync(ctx)
	require.ErrorIs(t, err, common.ErrOffline)
	assert.Equal(t, 0, result.SuccessCount)
	assert.Empty(t, env.client.createdOrder())

	// no attempt was counted, no status moved
	got, err := env.repos.Queue.GetByLocalID(ctx, rec.LocalID)
	require.NoError(t, err)
	assert.Equal(t, models.SyncStatusPending, got.SyncStatus)
	assert.Equal(t, 0, got.SyncAttempts)
	assert.Nil(t, got.LastSyncAttempt)
}

func TestTriggerSync_SuccessfulRecordBecomesSynced(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	rec := env.enqueue(t, "CA123456")

	result, err := env.sync.TriggerSync(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.SuccessCount)
	assert.Equal(t, 0, result.FailedCount)

	got, err := env.repos.Queue.GetByLocalID(ctx, rec.LocalID)
	require.NoError(t, err)
	assert.Equal(t, models.SyncStatusSynced, got.SyncStatus)
	assert.Equal(t, "remote-"+rec.LocalID, got.RemoteID)
	assert.Equal(t, 1, got.SyncAttempts)
	require.NotNil(t, got.LastSyncAttempt)
	assert.Empty(t, got.SyncError)
}

func TestTriggerSync_LocalIDSurvivesSync(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	rec := env.enqueue(t, "CA123456")
	_, err := env.sync.TriggerSync(ctx)
	require.NoError(t, err)

	got, err := env.repos.Queue.GetByLocalID(ctx, rec.LocalID)
	require.NoError(t, err)
	assert.Equal(t, rec.LocalID, got.LocalID)
	assert.NotEqual(t, got.LocalID, got.RemoteID)
}

func TestTriggerSync_RemoteErrorMarksFailedAndStoresMessage(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.client.createFn = func(*models.QueuedInfringement) (string, error) {
		return "", &dbinit.RemoteError{Code: "Internal", Message: "500 server error"}
	}

	rec := env.enqueue(t, "CA123456")

	result, err := env.sync.TriggerSync(ctx)
	require.NoError(t, err) // per-item failures are not a pass failure
	assert.Equal(t, 1, result.FailedCount)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, rec.LocalID, result.Errors[0].LocalID)

	got, err := env.repos.Queue.GetByLocalID(ctx, rec.LocalID)
	require.NoError(t, err)
	assert.Equal(t, models.SyncStatusFailed, got.SyncStatus)
	assert.Equal(t, "500 server error", got.SyncError)
	assert.Equal(t, 1, got.SyncAttempts)
	assert.Empty(t, got.RemoteID)
}

func TestTriggerSync_OneFailureDoesNotStopThePass(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	bad := env.enqueue(t, "BAD00001")
	good1 := env.enqueue(t, "GOOD0001")
	good2 := env.enqueue(t, "GOOD0002")

	env.client.createFn = func(rec *models.QueuedInfringement) (string, error) {
		if rec.LocalID == bad.LocalID {
			return "", &dbinit.RemoteError{Code: "InvalidArgument", Message: "unknown offence"}
		}
		return "remote-" + rec.LocalID, nil
	}

	result, err := env.sync.TriggerSync(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, result.SuccessCount)
	assert.Equal(t, 1, result.FailedCount)

	for _, id := range []string{good1.LocalID, good2.LocalID} {
		got, err := env.repos.Queue.GetByLocalID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, models.SyncStatusSynced, got.SyncStatus)
	}
}

func TestTriggerSync_DrainsOldestFirst(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	first := env.enqueue(t, "AAA11111")
	second := env.enqueue(t, "BBB22222")
	third := env.enqueue(t, "CCC33333")

	_, err := env.sync.TriggerSync(ctx)
	require.NoError(t, err)

	assert.Equal(t, []string{first.LocalID, second.LocalID, third.LocalID}, env.client.createdOrder())
}

func TestTriggerSync_RetriesFailedRecordsOnNextPass(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	rec := env.enqueue(t, "CA123456")

	env.client.createFn = func(*models.QueuedInfringement) (string, error) {
		return "", &dbinit.RemoteError{Code: "Internal", Message: "500 server error"}
	}
	_, err := env.sync.TriggerSync(ctx)
	require.NoError(t, err)

	// gateway recovers
	env.client.createFn = nil
	result, err := env.sync.TriggerSync(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.SuccessCount)

	got, err := env.repos.Queue.GetByLocalID(ctx, rec.LocalID)
	require.NoError(t, err)
	assert.Equal(t, models.SyncStatusSynced, got.SyncStatus)
	assert.Equal(t, 2, got.SyncAttempts)
	assert.Empty(t, got.SyncError, "a successful retry clears the stored error")
}

func TestTriggerSync_SkipsAlreadySyncedRecords(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.enqueue(t, "CA123456")
	_, err := env.sync.TriggerSync(ctx)
	require.NoError(t, err)

	result, err := env.sync.TriggerSync(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, result.SuccessCount)
	assert.Len(t, env.client.createdOrder(), 1, "synced record must not be resubmitted")
}

func TestTriggerSync_SecondConcurrentPassIsRejected(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.enqueue(t, "CA123456")

	entered := make(chan struct{})
	release := make(chan struct{})
	env.client.createFn = func(rec *models.QueuedInfringement) (string, error) {
		close(entered)
		<-release
		return "remote-" + rec.LocalID, nil
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, err := env.sync.TriggerSync(ctx)
		assert.NoError(t, err)
	}()

	<-entered
	_, err := env.sync.TriggerSync(ctx)
	assert.ErrorIs(t, err, common.ErrSyncInProgress)

	close(release)
	<-done
}

func TestTriggerSync_PersistsSummary(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.enqueue(t, "GOOD0001")
	bad := env.enqueue(t, "BAD00001")
	env.client.createFn = func(rec *models.QueuedInfringement) (string, error) {
		if rec.LocalID == bad.LocalID {
			return "", &dbinit.RemoteError{Code: "InvalidArgument", Message: "unknown offence"}
		}
		return "remote-" + rec.LocalID, nil
	}

	before, err := env.sync.LastSummary(ctx)
	require.NoError(t, err)
	assert.Nil(t, before)

	_, err = env.sync.TriggerSync(ctx)
	require.NoError(t, err)

	summary, err := env.sync.LastSummary(ctx)
	require.NoError(t, err)
	require.NotNil(t, summary)
	assert.Equal(t, 1, summary.Success)
	assert.Equal(t, 1, summary.Failed)
	assert.WithinDuration(t, time.Now().UTC(), summary.LastSync, 5*time.Second)
}

func TestRetry_FailedRecordSyncsAgain(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	rec := env.enqueue(t, "CA123456")
	env.client.createFn = func(*models.QueuedInfringement) (string, error) {
		return "", &dbinit.RemoteError{Code: "Internal", Message: "500 server error"}
	}
	_, err := env.sync.TriggerSync(ctx)
	require.NoError(t, err)

	env.client.createFn = nil
	require.NoError(t, env.sync.Retry(ctx, rec.LocalID))

	got, err := env.repos.Queue.GetByLocalID(ctx, rec.LocalID)
	require.NoError(t, err)
	assert.Equal(t, models.SyncStatusSynced, got.SyncStatus)
}

func TestRetry_PropagatesRemoteError(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	rec := env.enqueue(t, "CA123456")
	env.client.createFn = func(*models.QueuedInfringement) (string, error) {
		return "", &dbinit.RemoteError{Code: "Internal", Message: "500 server error"}
	}

	err := env.sync.Retry(ctx, rec.LocalID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500 server error")
}

func TestRetry_UnknownRecord(t *testing.T) {
	env := newTestEnv(t)
	err := env.sync.Retry(context.Background(), "no-such-id")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestRetry_SyncedRecordIsNoOp(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	rec := env.enqueue(t, "CA123456")
	_, err := env.sync.TriggerSync(ctx)
	require.NoError(t, err)

	require.NoError(t, env.sync.Retry(ctx, rec.LocalID))
	assert.Len(t, env.client.createdOrder(), 1)
}

func TestRetry_Offline(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	rec := env.enqueue(t, "CA123456")
	env.probe.set(false)

	err := env.sync.Retry(ctx, rec.LocalID)
	assert.ErrorIs(t, err, common.ErrOffline)
}

// fakeUploader records upload calls and can fail selectively.
type fakeUploader struct {
	mu     sync.Mutex
	calls  int
	failOn string // photo LocalID to fail, "" for none
}

func (f *fakeUploader) Upload(_ context.Context, infringementID string, photo models.EvidencePhoto) (string, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if photo.LocalID == f.failOn {
		return "", errors.New("upload failed")
	}
	return "https://evidence.example/" + infringementID + "/" + photo.LocalID, nil
}

func TestTriggerSync_UploadsPhotosAfterRecordSyncs(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	uploader := &fakeUploader{}
	svc := NewSyncService(env.client, env.repos.Queue, env.repos.Metadata, uploader, env.probe, logging.NewNop())

	rec, err := env.queue.Enqueue(ctx, EnqueueInput{
		VehicleRegNumber: "CA123456",
		OffenceID:        "SPD-60-80",
		Photos: []models.EvidencePhoto{
			{LocalID: "p1", Path: "/tmp/p1.jpg"},
			{LocalID: "p2", Path: "/tmp/p2.jpg"},
		},
	})
	require.NoError(t, err)

	result, err := svc.TriggerSync(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.SuccessCount)
	assert.Equal(t, 2, uploader.calls)

	got, err := env.repos.Queue.GetByLocalID(ctx, rec.LocalID)
	require.NoError(t, err)
	for _, p := range got.Photos {
		assert.NotEmpty(t, p.RemoteURL)
	}
}

func TestTriggerSync_PhotoFailureDoesNotRevertSyncedRecord(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	uploader := &fakeUploader{failOn: "p1"}
	svc := NewSyncService(env.client, env.repos.Queue, env.repos.Metadata, uploader, env.probe, logging.NewNop())

	rec, err := env.queue.Enqueue(ctx, EnqueueInput{
		VehicleRegNumber: "CA123456",
		OffenceID:        "SPD-60-80",
		Photos: []models.EvidencePhoto{
			{LocalID: "p1", Path: "/tmp/p1.jpg"},
			{LocalID: "p2", Path: "/tmp/p2.jpg"},
		},
	})
	require.NoError(t, err)

	result, err := svc.TriggerSync(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.SuccessCount)

	got, err := env.repos.Queue.GetByLocalID(ctx, rec.LocalID)
	require.NoError(t, err)
	assert.Equal(t, models.SyncStatusSynced, got.SyncStatus)
	assert.Empty(t, got.Photos[0].RemoteURL)
	assert.NotEmpty(t, got.Photos[1].RemoteURL)
}
