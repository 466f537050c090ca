package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mantisworks/mantis-field/internal/client/client"
	"github.com/mantisworks/mantis-field/internal/client/config"
	"github.com/mantisworks/mantis-field/internal/client/evidence"
	"github.com/mantisworks/mantis-field/internal/client/services"
	"github.com/mantisworks/mantis-field/internal/logging"

	_ "modernc.org/sqlite"
)

// App wires the field client together: local queue, gateway client, sync
// executor, connectivity watcher, and the interactive REPL on top.
type App struct {
	config  *config.Config
	client  client.Client
	repos   *client.Repositories
	auth    services.AuthService
	queue   services.QueueService
	sync    services.SyncService
	watcher *services.ConnectivityWatcher
	logger  logging.Logger

	reader *bufio.Reader
	out    io.Writer

	unlocked bool
}

func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	repos, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open local database: %w", err)
	}

	apiClient, err := client.NewGRPCClient(c.GatewayAddr, c.CallTimeout)
	if err != nil {
		_ = repos.DB.Close()
		return nil, err
	}

	photos, err := photoStore(ctx, c, apiClient)
	if err != nil {
		_ = repos.DB.Close()
		return nil, err
	}

	probe := &services.PingProbe{Client: apiClient}
	syncSvc := services.NewSyncService(apiClient, repos.Queue, repos.Metadata, photos, probe, logger)

	return &App{
		config:  c,
		client:  apiClient,
		repos:   repos,
		auth:    services.NewAuthService(apiClient, repos.Metadata, logger),
		queue:   services.NewQueueService(repos.Queue, repos, logger),
		sync:    syncSvc,
		watcher: services.NewConnectivityWatcher(probe, syncSvc, c.OnlineCheckInterval, logger),
		logger:  logger,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}, nil
}

func photoStore(ctx context.Context, c *config.Config, apiClient client.Client) (evidence.PhotoStore, error) {
	switch c.PhotoBackend {
	case config.PhotoBackendS3:
		return evidence.NewS3Store(ctx, evidence.S3Config{
			Endpoint:        c.S3.Endpoint,
			Region:          c.S3.Region,
			Bucket:          c.S3.Bucket,
			Prefix:          c.S3.Prefix,
			AccessKeyID:     c.S3.AccessKeyID,
			SecretAccessKey: c.S3.SecretAccessKey,
		})
	case config.PhotoBackendNone:
		return nil, nil
	default:
		return evidence.NewGatewayStore(apiClient), nil
	}
}

// Run starts the connectivity watcher and the REPL, blocking until the user
// exits or ctx is cancelled.
func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go a.watcher.Run(ctx)

	a.Root(ctx)
}

// Close releases the gateway connection and the local database.
func (a *App) Close() error {
	if err := a.client.Close(); err != nil {
		return err
	}
	return a.repos.DB.Close()
}

func (a *App) isUnlocked() bool {
	return a.unlocked
}
