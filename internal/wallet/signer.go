// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package wallet

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"os"
	"strings"

	"github.com/MKhiriev/go-agreement-keeper/internal/config"
	"github.com/MKhiriev/go-agreement-keeper/models"
	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// keySigner is a [Signer] backed by an in-memory private key.
type keySigner struct {
	key     *ecdsa.PrivateKey
	address common.Address
}

// NewSigner builds a [Signer] from the wallet configuration. A hex private
// key takes precedence over a keystore file.
func NewSigner(cfg config.Wallet) (Signer, error) {
	switch {
	case cfg.PrivateKey != "":
		return NewSignerFromHex(cfg.PrivateKey)
	case cfg.KeystorePath != "":
		keyJSON, err := os.ReadFile(cfg.KeystorePath)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidKeystore, err)
		}
		return NewSignerFromKeystore(keyJSON, cfg.KeystorePassword)
	default:
		return nil, ErrNoKey
	}
}

// NewSignerFromHex builds a [Signer] from a hex-encoded secp256k1 key, with
// or without the 0x prefix.
func NewSignerFromHex(hexKey string) (Signer, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(hexKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPrivateKey, err)
	}
	return NewSignerFromKey(key), nil
}

// NewSignerFromKeystore decrypts a V3 keystore document.
func NewSignerFromKeystore(keyJSON []byte, password string) (Signer, error) {
	key, err := keystore.DecryptKey(keyJSON, password)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKeystore, err)
	}
	return NewSignerFromKey(key.PrivateKey), nil
}

// NewSignerFromKey wraps an existing key.
func NewSignerFromKey(key *ecdsa.PrivateKey) Signer {
	return &keySigner{
		key:     key,
		address: crypto.PubkeyToAddress(key.PublicKey),
	}
}

func (s *keySigner) Sign(ctx context.Context, message []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.signHash(accounts.TextHash(message))
}

func (s *keySigner) SignTypedData(ctx context.Context, data models.TypedData) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	hash, err := TypedDataHash(data)
	if err != nil {
		return nil, err
	}
	return s.signHash(hash)
}

func (s *keySigner) Address() string {
	return s.address.Hex()
}

func (s *keySigner) signHash(hash []byte) ([]byte, error) {
	sig, err := crypto.Sign(hash, s.key)
	if err != nil {
		return nil, fmt.Errorf("error signing hash: %w", err)
	}

	sig[crypto.RecoveryIDOffset] += 27
	return sig, nil
}
