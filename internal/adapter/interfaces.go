// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for the two remote
// collaborators of the agreement protocol: the ledger that records
// agreements and signature packets, and the content-addressed blob store
// that keeps encrypted documents.
//
// Both collaborators are reached over HTTP ([NewHTTPLedger],
// [NewHTTPBlobStore]). [NewCachedBlobStore] decorates any [BlobStore] with a
// local cache keyed by canonical content identifier.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrNotFound] for 404). Failures to
// reach the remote side at all are reported as [ErrUpstreamUnavailable].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-agreement-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// Ledger records agreements and signature packets and answers queries about
// them. The ledger performs the authoritative constraint transition; any
// check done on the client is a pre-flight.
type Ledger interface {
	// Login exchanges a signed login message for a bearer token. The token is
	// stored in the shared [Session] and attached to later requests.
	Login(ctx context.Context, req models.LoginRequest) (models.Token, error)

	// SubmitAgreement records a new agreement owned by the session address.
	// Returns [ErrConflict] (wrapped) if the identifier is already taken.
	SubmitAgreement(ctx context.Context, record models.AgreementRecord) (models.Receipt, error)

	// SubmitSignature records a signature packet for the session address.
	// Denials come back as [ErrForbidden] (wrong signer), [ErrNotFound]
	// (no such slot or agreement) and [ErrConflict] (slot exhausted).
	SubmitSignature(ctx context.Context, record models.SignatureRecord) (models.Receipt, error)

	ListAgreements(ctx context.Context, address string, page models.Page) ([]models.Agreement, error)
	GetAgreement(ctx context.Context, owner string, index uint64) (models.Agreement, error)
	ListSignatures(ctx context.Context, address string, page models.Page) ([]models.SignaturePacket, error)
	GetProfile(ctx context.Context, address string) (models.Profile, error)
}

// BlobStore pins and fetches opaque byte blobs by content identifier.
type BlobStore interface {
	// Pin uploads data under a human-readable name and returns the storage
	// identifier assigned to it.
	Pin(ctx context.Context, data []byte, name string) (models.PinResult, error)

	// Fetch returns the bytes stored under contentIdentifier. A miss is
	// reported as [ErrNotFound].
	Fetch(ctx context.Context, contentIdentifier string) ([]byte, error)
}

// BlobCache is a local key-value cache of blobs used by [NewCachedBlobStore].
type BlobCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, data []byte) error
}
