// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-agreement-keeper/internal/logger"
	"github.com/dgraph-io/badger/v4"
	"github.com/klauspost/compress/zstd"
)

// BadgerBlobCache is a local blob cache backed by BadgerDB. Values are
// stored zstd-compressed. It satisfies the adapter's BlobCache interface.
type BadgerBlobCache struct {
	db *badger.DB

	encoder *zstd.Encoder
	decoder *zstd.Decoder

	logger *logger.Logger
}

// NewBadgerBlobCache opens (or creates) a badger database in dir. An empty
// dir opens an in-memory database.
func NewBadgerBlobCache(dir string, logger *logger.Logger) (*BadgerBlobCache, error) {
	opts := badger.DefaultOptions(dir)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("error opening blob cache: %w", err)
	}

	encoder, err := zstd.NewWriter(nil)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("error creating zstd encoder: %w", err)
	}
	decoder, err := zstd.NewReader(nil)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("error creating zstd decoder: %w", err)
	}

	return &BadgerBlobCache{db: db, encoder: encoder, decoder: decoder, logger: logger}, nil
}

// Get returns the cached blob and whether it was present.
func (c *BadgerBlobCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var compressed []byte

	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		compressed, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("error reading blob cache: %w", err)
	}

	data, err := c.decoder.DecodeAll(compressed, nil)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "BadgerBlobCache.Get").Str("key", key).Msg("dropping undecodable cache entry")
		_ = c.delete(key)
		return nil, false, nil
	}

	return data, true, nil
}

// Put stores data under key.
func (c *BadgerBlobCache) Put(_ context.Context, key string, data []byte) error {
	compressed := c.encoder.EncodeAll(data, make([]byte, 0, len(data)/2))

	err := c.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), compressed)
	})
	if err != nil {
		return fmt.Errorf("error writing blob cache: %w", err)
	}
	return nil
}

func (c *BadgerBlobCache) delete(key string) error {
	return c.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
}

// Close flushes and closes the underlying database.
func (c *BadgerBlobCache) Close() error {
	c.decoder.Close()
	if err := c.encoder.Close(); err != nil {
		c.logger.Warn().Err(err).Msg("error closing zstd encoder")
	}
	return c.db.Close()
}
