// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "fmt"

// KeySize is the length of a derived encryption key in bytes.
const KeySize = 32

// Key is a symmetric document key. It lives only for the duration of a
// single create, sign or retrieve operation and is never stored.
type Key [KeySize]byte

type keyDeriver struct{}

// NewKeyDeriver constructs a [KeyDeriver].
func NewKeyDeriver() KeyDeriver {
	return keyDeriver{}
}

// DeriveKey implements [KeyDeriver]. The key is the signature prefix taken
// verbatim; for secp256k1 signatures that is the r value. Deterministic
// signers make the key reproducible from the key message alone.
func (keyDeriver) DeriveKey(signature []byte) (Key, error) {
	var key Key
	if len(signature) < KeySize {
		return key, fmt.Errorf("%w: got %d bytes, need at least %d", ErrInvalidSignature, len(signature), KeySize)
	}

	copy(key[:], signature[:KeySize])
	return key, nil
}
