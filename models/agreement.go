// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"time"
)

// WildcardSigner is the signer value that lets any address use a slot.
const WildcardSigner = "*"

// AgreementStatus is the lifecycle state of an agreement as reported by the ledger.
type AgreementStatus string

const (
	// AgreementStatusActive means the agreement still accepts signature packets.
	AgreementStatusActive AgreementStatus = "active"

	// AgreementStatusCompleted means every bounded slot has been used up.
	AgreementStatusCompleted AgreementStatus = "completed"
)

// SignatureConstraint is a named slot of an agreement. It bounds who may sign
// under that name and how many times.
type SignatureConstraint struct {
	// Identifier is the slot name, unique within an agreement.
	Identifier string `json:"identifier"`

	// Signer is a 0x-prefixed address or [WildcardSigner].
	Signer string `json:"signer"`

	// TotalUsed counts accepted packets for this slot.
	TotalUsed uint64 `json:"totalUsed"`

	// AllowedToUse caps TotalUsed. Zero means unlimited.
	AllowedToUse uint64 `json:"allowedToUse"`
}

// IsWildcard reports whether any address may sign this slot.
func (c SignatureConstraint) IsWildcard() bool {
	return c.Signer == "" || c.Signer == WildcardSigner
}

// IsUnlimited reports whether the slot has no usage cap.
func (c SignatureConstraint) IsUnlimited() bool {
	return c.AllowedToUse == 0
}

// Authorization is the result of a successful constraint check: the position
// of the slot inside the agreement and the slot as it would look after the
// packet is accepted.
type Authorization struct {
	Index      int                 `json:"index"`
	Constraint SignatureConstraint `json:"constraint"`
}

// Agreement is the ledger-side header of a document that parties sign.
//
// Identifying fields (owner, identifier and the three content identifiers)
// are immutable once submitted. Counters and status belong to the ledger.
type Agreement struct {
	// Owner is the address that created the agreement.
	Owner string `json:"owner"`

	// Index is the owner-scoped sequence number assigned by the ledger.
	Index uint64 `json:"index"`

	// Identifier is a caller-chosen name, unique per owner.
	Identifier string `json:"identifier"`

	// ContentIdentifier identifies the plaintext document.
	ContentIdentifier string `json:"contentIdentifier"`

	// EncryptedContentIdentifier is the storage identifier of the ciphertext.
	EncryptedContentIdentifier string `json:"encryptedContentIdentifier"`

	// DescriptionContentIdentifier is the storage identifier of the pinned
	// [AgreementDescription].
	DescriptionContentIdentifier string `json:"descriptionContentIdentifier"`

	SignedPacketCount uint64 `json:"signedPacketCount"`

	// TotalPacketCount is zero when at least one slot is unlimited.
	TotalPacketCount uint64 `json:"totalPacketCount"`

	Constraints []SignatureConstraint `json:"constraints"`
	Status      AgreementStatus       `json:"status"`
	CreatedAt   time.Time             `json:"createdAt"`
}

// TotalPacketCount returns the number of packets needed to complete an
// agreement with the given slots, or zero if any slot is unlimited.
func TotalPacketCount(constraints []SignatureConstraint) uint64 {
	var total uint64
	for _, c := range constraints {
		if c.IsUnlimited() {
			return 0
		}
		total += c.AllowedToUse
	}
	return total
}

// StatusFor derives the agreement status from its counters.
func StatusFor(signed, total uint64) AgreementStatus {
	if total > 0 && signed >= total {
		return AgreementStatusCompleted
	}
	return AgreementStatusActive
}

// SameAddress compares two hex addresses ignoring case.
func SameAddress(a, b string) bool {
	return strings.EqualFold(a, b)
}

// AgreementRecord is what a client submits to create an agreement.
// The ledger fills in owner, index, counters and status.
type AgreementRecord struct {
	Identifier                   string                `json:"identifier"`
	ContentIdentifier            string                `json:"contentIdentifier"`
	EncryptedContentIdentifier   string                `json:"encryptedContentIdentifier"`
	DescriptionContentIdentifier string                `json:"descriptionContentIdentifier"`
	Constraints                  []SignatureConstraint `json:"constraints"`
}
