// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "github.com/MKhiriev/go-agreement-keeper/models"

// Key messages are part of the stored-artifact format: every client that
// wants to decrypt a document must rebuild the exact same message.
const (
	PlainKeyMessagePrefix = "Encrypt PDF for "

	TypedDataDomainName    = "AgreementKeeper"
	TypedDataDomainVersion = "1"
	EncryptionKeyType      = "EncryptionKey"
)

// PlainKeyMessage returns the personal-sign key message for an agreement.
// It depends on the identifier only, so one signer gets one key per
// agreement regardless of the document.
func PlainKeyMessage(identifier string) []byte {
	return []byte(PlainKeyMessagePrefix + identifier)
}

// TypedKeyMessage returns the EIP-712 key message binding the agreement
// owner, the agreement identifier and the plaintext content identifier.
func TypedKeyMessage(chainID int64, owner, identifier, contentIdentifier string) models.TypedData {
	return models.TypedData{
		Domain: models.TypedDataDomain{
			Name:    TypedDataDomainName,
			Version: TypedDataDomainVersion,
			ChainID: chainID,
		},
		Types: map[string][]models.TypedDataField{
			EncryptionKeyType: {
				{Name: "owner", Type: "address"},
				{Name: "identifier", Type: "string"},
				{Name: "contentIdentifier", Type: "string"},
			},
		},
		PrimaryType: EncryptionKeyType,
		Message: map[string]any{
			"owner":             owner,
			"identifier":        identifier,
			"contentIdentifier": contentIdentifier,
		},
	}
}
