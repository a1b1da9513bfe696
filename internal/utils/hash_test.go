// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"sync"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testHashKey = "test-secret-key"

func referenceHMAC(key string, data []byte) []byte {
	mac := hmac.New(sha256.New, []byte(key))
	mac.Write(data)
	return mac.Sum(nil)
}

func TestHasher_Sum(t *testing.T) {
	h := NewHasher(testHashKey)
	data := []byte("encrypted-pdf-bytes")

	assert.Equal(t, referenceHMAC(testHashKey, data), h.Sum(data))
	assert.Equal(t, h.Sum(data), h.Sum(data), "pooled state must be reset")
	assert.NotEqual(t, h.Sum(data), NewHasher("other-key").Sum(data))
}

func TestHasher_SumReader(t *testing.T) {
	h := NewHasher(testHashKey)
	data := strings.Repeat("block", 10_000)

	sum, err := h.SumReader(strings.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, h.Sum([]byte(data)), sum)

	_, err = h.SumReader(iotest.ErrReader(errors.New("disk gone")))
	assert.Error(t, err)
}

func TestHasher_Equal(t *testing.T) {
	h := NewHasher(testHashKey)
	sum := h.Sum([]byte("upload"))

	assert.True(t, h.Equal(sum, hex.EncodeToString(sum)))
	assert.True(t, h.Equal(sum, strings.ToUpper(hex.EncodeToString(sum))))
	assert.False(t, h.Equal(sum, hex.EncodeToString(h.Sum([]byte("other")))))
	assert.False(t, h.Equal(sum, "not-hex"))
	assert.False(t, h.Equal(sum, ""))
}

func TestHasher_Concurrent(t *testing.T) {
	h := NewHasher(testHashKey)
	want := referenceHMAC(testHashKey, []byte("same"))

	var wg sync.WaitGroup
	for range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, want, h.Sum([]byte("same")))
		}()
	}
	wg.Wait()
}

func TestHashBytes(t *testing.T) {
	data := []byte("upload")
	assert.Equal(t, hex.EncodeToString(referenceHMAC(testHashKey, data)), HashBytes(data, testHashKey))
}
