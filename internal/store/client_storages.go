package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-agreement-keeper/internal/config"
	"github.com/MKhiriev/go-agreement-keeper/internal/logger"
)

// ClientStorages groups all client-side storage components into a single
// value that can be passed around the service layer.
type ClientStorages struct {
	// AgreementRepository is the SQLite cache of ledger records seen by this
	// client.
	AgreementRepository LocalAgreementRepository

	// BlobCache caches fetched and pinned blobs.
	BlobCache *BadgerBlobCache

	db *DB
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Opens the badger blob cache in cfg.Cache.Dir.
//
// Returns an error if any of the steps fail.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	cache, err := NewBadgerBlobCache(cfg.Cache.Dir, logger)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &ClientStorages{
		AgreementRepository: NewLocalAgreementRepository(db, logger),
		BlobCache:           cache,
		db:                  db,
	}, nil
}

// Close closes the blob cache and the database.
func (s *ClientStorages) Close() error {
	var errs []error
	if s.BlobCache != nil {
		errs = append(errs, s.BlobCache.Close())
	}
	if s.db != nil {
		errs = append(errs, s.db.Close())
	}
	return errors.Join(errs...)
}
