package client

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mantisworks/mantis-field/internal/client/migrations"
	"github.com/mantisworks/mantis-field/internal/client/models"
	"github.com/mantisworks/mantis-field/internal/client/repositories/metadata"
	"github.com/mantisworks/mantis-field/internal/client/repositories/queue"
	"github.com/mantisworks/mantis-field/internal/dbx"
	"github.com/pressly/goose/v3"
)

// Repositories bundles the local persistence layer handed to services.
type Repositories struct {
	Queue    queue.Repository
	Metadata metadata.Repository
	DB       *sql.DB
}

func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens the local SQLite database, applies migrations, and
// performs crash recovery: any record left in "syncing" by an abrupt
// termination is reset to "pending" so the next pass retries it.
func InitDatabase(ctx context.Context, dsn string) (*Repositories, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	queueRepo := queue.NewSQLiteRepository(db)
	if _, err := queueRepo.ResetStuckSyncing(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Repositories{
		Queue:    queueRepo,
		Metadata: metadata.NewSQLiteRepository(db),
		DB:       db,
	}, nil
}

// ResetLocalState wipes the queue and the derived sync summary in a single
// transaction, so a partially applied wipe can never leave a stale summary
// pointing at records that no longer exist.
func (r *Repositories) ResetLocalState(ctx context.Context) error {
	return dbx.WithTx(ctx, r.DB, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := queue.NewSQLiteRepository(tx).Clear(ctx); err != nil {
			return err
		}
		return metadata.NewSQLiteRepository(tx).Delete(ctx, models.LastSyncSummaryKey)
	})
}
