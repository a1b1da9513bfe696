// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements persistence for both sides of the agreement
// keeper.
//
// The ledger server keeps agreements and signature packets in PostgreSQL
// ([LedgerRepository]) and pinned blobs on the filesystem ([BlobStorage]).
// The client keeps a SQLite cache of the agreements and packets it has seen
// ([LocalAgreementRepository]) and a badger cache of fetched blobs
// ([NewBadgerBlobCache]).
//
// Addresses are stored lower-cased; all lookups normalise their input the
// same way.
package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-agreement-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// LedgerRepository is the authoritative record of agreements and signature
// packets.
type LedgerRepository interface {
	// CreateAgreement assigns the next owner-scoped index and a block number
	// and stores the agreement. Returns [ErrAgreementExists] when the owner
	// already used record.Identifier.
	CreateAgreement(ctx context.Context, owner string, record models.AgreementRecord) (models.Agreement, models.Receipt, error)

	// CreateSignature runs the constraint transition for signer atomically
	// and stores the packet. Denials are the validator sentinels
	// (validators.ErrNoSuchSlot, ErrWrongSigner, ErrExhaustedSlot) or
	// [ErrAgreementNotFound].
	CreateSignature(ctx context.Context, signer string, record models.SignatureRecord) (models.SignaturePacket, models.Receipt, error)

	GetAgreement(ctx context.Context, owner string, index uint64) (models.Agreement, error)
	ListAgreements(ctx context.Context, owner string, page models.Page) ([]models.Agreement, error)
	ListSignatures(ctx context.Context, signer string, page models.Page) ([]models.SignaturePacket, error)
	GetProfile(ctx context.Context, address string) (models.Profile, error)
}

// BlobStorage keeps pinned blobs keyed by canonical content identifier.
type BlobStorage interface {
	// Put stores data under contentIdentifier. Putting the same key twice
	// is a no-op.
	Put(ctx context.Context, contentIdentifier string, data []byte) error

	// Get returns the blob or [ErrBlobNotFound].
	Get(ctx context.Context, contentIdentifier string) ([]byte, error)
}

// UploadSweeper removes leftovers of uploads that never completed.
type UploadSweeper interface {
	// RemoveStaleUploads deletes temporary upload files older than
	// olderThan and reports how many were removed.
	RemoveStaleUploads(ctx context.Context, olderThan time.Duration) (int, error)
}
