package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-agreement-keeper/internal/config"
	"github.com/MKhiriev/go-agreement-keeper/internal/logger"
)

// Storages groups the server-side persistence components.
type Storages struct {
	LedgerRepository LedgerRepository
	BlobStorage      BlobStorage
	// UploadSweeper is nil when the blob storage keeps no temporary files.
	UploadSweeper UploadSweeper

	db *DB
}

// NewStorages connects to PostgreSQL (retrying while the database starts),
// applies migrations and opens the blob directory.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	blobs, err := NewFileBlobStorage(cfg.Files.BlobDir, logger)
	if err != nil {
		db.Close()
		return nil, err
	}

	sweeper, _ := blobs.(UploadSweeper)

	return &Storages{
		LedgerRepository: NewLedgerRepository(db, logger),
		BlobStorage:      blobs,
		UploadSweeper:    sweeper,
		db:               db,
	}, nil
}

// Close releases the database connection pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
