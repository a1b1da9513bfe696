// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CreateAgreementRequest is the input of an agreement creation.
type CreateAgreementRequest struct {
	// Identifier names the agreement. It must be unique for the owner.
	Identifier string

	// Document is the plaintext PDF.
	Document []byte

	Slots []SlotDescription

	// KeyScheme selects the key message. Empty means [DefaultKeyScheme].
	KeyScheme KeyScheme
}

// SignAgreementRequest is the input of a signature over an existing
// agreement.
type SignAgreementRequest struct {
	Owner string
	Index uint64

	// Slot is the identifier of the constraint to sign under.
	Slot string

	// Document is the plaintext the signer attaches to the packet. Under
	// [KeySchemePersonalSign] it must be the agreement's own document.
	Document []byte
}
