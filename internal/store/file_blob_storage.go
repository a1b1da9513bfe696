package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/MKhiriev/go-agreement-keeper/internal/crypto"
	"github.com/MKhiriev/go-agreement-keeper/internal/logger"
)

// tempUploadPattern names in-flight uploads inside the blob directory.
const tempUploadPattern = ".pin-*"

// fileBlobStorage keeps one file per blob under dir, named by the canonical
// CIDv1 string. Writes go through a temporary file and a rename so readers
// never observe a partial blob.
type fileBlobStorage struct {
	dir    string
	logger *logger.Logger
}

// NewFileBlobStorage constructs a [BlobStorage] rooted at dir, creating the
// directory if needed.
func NewFileBlobStorage(dir string, logger *logger.Logger) (BlobStorage, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("error creating blob dir: %w", err)
	}

	logger.Debug().Str("dir", dir).Msg("creating file blob storage")
	return &fileBlobStorage{dir: dir, logger: logger}, nil
}

func (f *fileBlobStorage) Put(ctx context.Context, contentIdentifier string, data []byte) error {
	path, err := f.path(contentIdentifier)
	if err != nil {
		return err
	}

	if _, err = os.Stat(path); err == nil {
		return nil
	}

	tmp, err := os.CreateTemp(f.dir, tempUploadPattern)
	if err != nil {
		return fmt.Errorf("error creating temp blob: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("error writing blob: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("error closing blob: %w", err)
	}

	if err = os.Rename(tmp.Name(), path); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "fileBlobStorage.Put").
			Str("cid", contentIdentifier).
			Msg("failed to move blob into place")
		return fmt.Errorf("error storing blob: %w", err)
	}

	return nil
}

func (f *fileBlobStorage) Get(ctx context.Context, contentIdentifier string) ([]byte, error) {
	path, err := f.path(contentIdentifier)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrBlobNotFound
		}
		logger.FromContext(ctx).Err(err).
			Str("func", "fileBlobStorage.Get").
			Str("cid", contentIdentifier).
			Msg("failed to read blob")
		return nil, fmt.Errorf("error reading blob: %w", err)
	}

	return data, nil
}

// path maps an identifier to its file. Parsing the identifier first keeps
// arbitrary strings out of the filesystem.
func (f *fileBlobStorage) path(contentIdentifier string) (string, error) {
	c, err := crypto.ParseContentIdentifier(contentIdentifier)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidBlobKey, err)
	}
	return filepath.Join(f.dir, c.String()), nil
}

// RemoveStaleUploads implements [UploadSweeper]. Temporary files are left
// behind only when the process dies between create and rename.
func (f *fileBlobStorage) RemoveStaleUploads(ctx context.Context, olderThan time.Duration) (int, error) {
	matches, err := filepath.Glob(filepath.Join(f.dir, tempUploadPattern))
	if err != nil {
		return 0, fmt.Errorf("error listing temporary uploads: %w", err)
	}

	cutoff := time.Now().Add(-olderThan)
	removed := 0
	for _, path := range matches {
		if err = ctx.Err(); err != nil {
			return removed, err
		}

		info, statErr := os.Stat(path)
		if statErr != nil || info.ModTime().After(cutoff) {
			continue
		}
		if err = os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			logger.FromContext(ctx).Err(err).
				Str("func", "fileBlobStorage.RemoveStaleUploads").
				Str("path", path).
				Msg("failed to remove stale upload")
			continue
		}
		removed++
	}

	return removed, nil
}
