// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SignaturePacket is an accepted signature event. It is immutable once the
// ledger has stored it.
type SignaturePacket struct {
	AgreementOwner string `json:"agreementOwner"`
	AgreementIndex uint64 `json:"agreementIndex"`

	// Index is the signer-scoped sequence number assigned by the ledger.
	Index uint64 `json:"index"`

	// Identifier is the slot name the packet was signed under.
	Identifier string `json:"identifier"`

	// EncryptedContentIdentifier is the storage identifier of the encrypted
	// document attached to this signature.
	EncryptedContentIdentifier string `json:"encryptedContentIdentifier"`

	// ContentIdentifier identifies the plaintext of the attached document.
	// The encryption key of the packet is bound to it.
	ContentIdentifier string `json:"contentIdentifier"`

	Signer      string    `json:"signer"`
	Timestamp   time.Time `json:"timestamp"`
	BlockNumber uint64    `json:"blockNumber"`
}

// SignatureRecord is what a client submits to sign an agreement. The signer
// is the authenticated caller.
type SignatureRecord struct {
	AgreementOwner             string `json:"agreementOwner"`
	AgreementIndex             uint64 `json:"agreementIndex"`
	Identifier                 string `json:"identifier"`
	EncryptedContentIdentifier string `json:"encryptedContentIdentifier"`
	ContentIdentifier          string `json:"contentIdentifier"`
}

// Receipt acknowledges a ledger write.
type Receipt struct {
	// Index is the agreement index for agreement submissions and the packet
	// index for signature submissions.
	Index       uint64    `json:"index"`
	BlockNumber uint64    `json:"blockNumber"`
	Timestamp   time.Time `json:"timestamp"`
}

// Profile aggregates per-address counters kept by the ledger.
type Profile struct {
	Address        string `json:"address"`
	AgreementCount uint64 `json:"agreementCount"`
	SignatureCount uint64 `json:"signatureCount"`
}
