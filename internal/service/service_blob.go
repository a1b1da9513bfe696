package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-agreement-keeper/internal/crypto"
	"github.com/MKhiriev/go-agreement-keeper/internal/logger"
	"github.com/MKhiriev/go-agreement-keeper/internal/store"
	"github.com/MKhiriev/go-agreement-keeper/models"
)

type blobService struct {
	storage   store.BlobStorage
	addresser crypto.ContentAddresser

	now func() time.Time

	logger *logger.Logger
}

func NewBlobService(storage store.BlobStorage, logger *logger.Logger) BlobService {
	return &blobService{
		storage:   storage,
		addresser: crypto.NewContentAddresser(),
		now:       time.Now,
		logger:    logger,
	}
}

// Pin stores data under its content identifier. The name is only logged;
// pinning the same bytes twice yields the same identifier.
func (b *blobService) Pin(ctx context.Context, data []byte, name string) (models.PinResult, error) {
	c, err := b.addresser.Identify(data)
	if err != nil {
		return models.PinResult{}, fmt.Errorf("error identifying blob: %w", err)
	}

	if err = b.storage.Put(ctx, c.String(), data); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "blobService.Pin").Str("name", name).Msg("error storing blob")
		return models.PinResult{}, fmt.Errorf("error storing blob: %w", err)
	}

	logger.FromContext(ctx).Debug().Str("cid", c.String()).Str("name", name).Int("size", len(data)).Msg("blob pinned")

	return models.PinResult{
		IpfsHash:  c.String(),
		PinSize:   int64(len(data)),
		Timestamp: b.now().UTC(),
	}, nil
}

func (b *blobService) Fetch(ctx context.Context, contentIdentifier string) ([]byte, error) {
	return b.storage.Get(ctx, contentIdentifier)
}
