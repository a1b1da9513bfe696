package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-agreement-keeper/internal/crypto"
	"github.com/MKhiriev/go-agreement-keeper/internal/logger"
	"github.com/MKhiriev/go-agreement-keeper/models"
)

type cachedBlobStore struct {
	next  BlobStore
	cache BlobCache

	logger *logger.Logger
}

// NewCachedBlobStore wraps next with a read-through, write-through cache.
// Entries are keyed by the canonical CIDv1 string, so a v0 and a v1 spelling
// of the same identifier share one entry. Cache failures are logged and never
// fail the underlying operation.
func NewCachedBlobStore(next BlobStore, cache BlobCache, logger *logger.Logger) BlobStore {
	return &cachedBlobStore{next: next, cache: cache, logger: logger}
}

func (s *cachedBlobStore) Pin(ctx context.Context, data []byte, name string) (models.PinResult, error) {
	result, err := s.next.Pin(ctx, data, name)
	if err != nil {
		return models.PinResult{}, err
	}

	if key, err := cacheKey(result.IpfsHash); err == nil {
		if err = s.cache.Put(ctx, key, data); err != nil {
			s.logger.Warn().Err(err).Str("func", "cachedBlobStore.Pin").Str("cid", key).Msg("cache put failed")
		}
	}

	return result, nil
}

func (s *cachedBlobStore) Fetch(ctx context.Context, contentIdentifier string) ([]byte, error) {
	key, err := cacheKey(contentIdentifier)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadRequest, err)
	}

	data, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warn().Err(err).Str("func", "cachedBlobStore.Fetch").Str("cid", key).Msg("cache get failed")
	}
	if ok {
		return data, nil
	}

	data, err = s.next.Fetch(ctx, key)
	if err != nil {
		return nil, err
	}

	if err = s.cache.Put(ctx, key, data); err != nil {
		s.logger.Warn().Err(err).Str("func", "cachedBlobStore.Fetch").Str("cid", key).Msg("cache put failed")
	}

	return data, nil
}

func cacheKey(contentIdentifier string) (string, error) {
	c, err := crypto.ParseContentIdentifier(contentIdentifier)
	if err != nil {
		return "", err
	}
	return c.String(), nil
}
