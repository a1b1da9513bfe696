package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-agreement-keeper/internal/crypto"
	"github.com/MKhiriev/go-agreement-keeper/internal/logger"
	"github.com/ipfs/go-cid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testIdentifier(t *testing.T, data []byte) cid.Cid {
	t.Helper()
	c, err := crypto.NewContentAddresser().Identify(data)
	require.NoError(t, err)
	return c
}

func TestFileBlobStorage_PutGet(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileBlobStorage(dir, logger.Nop())
	require.NoError(t, err)

	data := []byte("encrypted pdf")
	c := testIdentifier(t, data)

	require.NoError(t, s.Put(context.Background(), c.String(), data))

	// v0 spelling resolves to the same file
	got, err := s.Get(context.Background(), cid.NewCidV0(c.Hash()).String())
	require.NoError(t, err)
	assert.Equal(t, data, got)

	_, err = os.Stat(filepath.Join(dir, c.String()))
	assert.NoError(t, err)
}

func TestFileBlobStorage_PutIsIdempotent(t *testing.T) {
	s, err := NewFileBlobStorage(t.TempDir(), logger.Nop())
	require.NoError(t, err)

	data := []byte("same")
	c := testIdentifier(t, data).String()

	require.NoError(t, s.Put(context.Background(), c, data))
	require.NoError(t, s.Put(context.Background(), c, data))

	got, err := s.Get(context.Background(), c)
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestFileBlobStorage_Missing(t *testing.T) {
	s, err := NewFileBlobStorage(t.TempDir(), logger.Nop())
	require.NoError(t, err)

	_, err = s.Get(context.Background(), testIdentifier(t, []byte("absent")).String())
	assert.ErrorIs(t, err, ErrBlobNotFound)
}

func TestFileBlobStorage_RejectsNonIdentifiers(t *testing.T) {
	s, err := NewFileBlobStorage(t.TempDir(), logger.Nop())
	require.NoError(t, err)

	err = s.Put(context.Background(), "../../etc/passwd", []byte("x"))
	assert.ErrorIs(t, err, ErrInvalidBlobKey)

	_, err = s.Get(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidBlobKey)
}

func TestFileBlobStorage_RemoveStaleUploads(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileBlobStorage(dir, logger.Nop())
	require.NoError(t, err)

	stale := filepath.Join(dir, ".pin-stale")
	fresh := filepath.Join(dir, ".pin-fresh")
	require.NoError(t, os.WriteFile(stale, []byte("partial"), 0o600))
	require.NoError(t, os.WriteFile(fresh, []byte("partial"), 0o600))
	old := time.Now().Add(-2 * time.Hour)
	require.NoError(t, os.Chtimes(stale, old, old))

	data := []byte("complete blob")
	c := testIdentifier(t, data)
	require.NoError(t, s.Put(context.Background(), c.String(), data))

	removed, err := s.(UploadSweeper).RemoveStaleUploads(context.Background(), time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	_, err = os.Stat(stale)
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(fresh)
	assert.NoError(t, err)

	got, err := s.Get(context.Background(), c.String())
	require.NoError(t, err)
	assert.Equal(t, data, got)
}
