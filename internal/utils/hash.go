package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"io"
	"sync"
)

// Hasher computes HMAC-SHA256 upload digests under one key. It is safe for
// concurrent use; hmac states are pooled per Hasher.
type Hasher struct {
	pool sync.Pool
}

// NewHasher returns a Hasher keyed with key.
func NewHasher(key string) *Hasher {
	k := []byte(key)
	return &Hasher{pool: sync.Pool{New: func() any { return hmac.New(sha256.New, k) }}}
}

func (h *Hasher) with(fn func(hash.Hash) error) ([]byte, error) {
	mac := h.pool.Get().(hash.Hash)
	defer h.pool.Put(mac)
	mac.Reset()
	if err := fn(mac); err != nil {
		return nil, err
	}
	return mac.Sum(nil), nil
}

// Sum returns the raw digest of data.
func (h *Hasher) Sum(data []byte) []byte {
	sum, _ := h.with(func(mac hash.Hash) error {
		_, err := mac.Write(data)
		return err
	})
	return sum
}

// SumReader digests r to EOF without buffering it.
func (h *Hasher) SumReader(r io.Reader) ([]byte, error) {
	return h.with(func(mac hash.Hash) error {
		_, err := io.Copy(mac, r)
		return err
	})
}

// Equal reports whether hexSum is the digest of data in constant time.
// A malformed hexSum is simply unequal.
func (h *Hasher) Equal(sum []byte, hexSum string) bool {
	want, err := hex.DecodeString(hexSum)
	if err != nil {
		return false
	}
	return hmac.Equal(sum, want)
}

// HashBytes is the hex digest of data under hashKey. Clients put it in the
// X-Hash header of uploads.
func HashBytes(data []byte, hashKey string) string {
	return hex.EncodeToString(NewHasher(hashKey).Sum(data))
}
