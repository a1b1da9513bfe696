// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-agreement-keeper/models"
	"github.com/ethereum/go-ethereum/common"
)

// DefaultAllowedToUse is applied to slot descriptions that omit a usage cap.
const DefaultAllowedToUse uint64 = 1

// Authorize decides whether signer may sign under slot given a snapshot of an
// agreement's constraints.
//
// On success it returns the slot position and the slot with TotalUsed
// incremented; constraints itself is left untouched. The result is a
// pre-check: the ledger repeats it under a lock and only its decision counts.
//
// Denials are [ErrNoSuchSlot], [ErrWrongSigner] and [ErrExhaustedSlot].
func Authorize(constraints []models.SignatureConstraint, slot, signer string) (models.Authorization, error) {
	for i, c := range constraints {
		if c.Identifier != slot {
			continue
		}

		if !c.IsWildcard() && !models.SameAddress(c.Signer, signer) {
			return models.Authorization{}, fmt.Errorf("%w: slot %q is reserved for %s", ErrWrongSigner, slot, c.Signer)
		}
		if !c.IsUnlimited() && c.TotalUsed >= c.AllowedToUse {
			return models.Authorization{}, fmt.Errorf("%w: slot %q used %d of %d", ErrExhaustedSlot, slot, c.TotalUsed, c.AllowedToUse)
		}

		c.TotalUsed++
		return models.Authorization{Index: i, Constraint: c}, nil
	}

	return models.Authorization{}, fmt.Errorf("%w: %q", ErrNoSuchSlot, slot)
}

// BuildConstraints turns slot descriptions into the initial constraint list
// of a new agreement. Omitted signers become [models.WildcardSigner] and
// omitted caps become [DefaultAllowedToUse].
func BuildConstraints(slots []models.SlotDescription) ([]models.SignatureConstraint, error) {
	if len(slots) == 0 {
		return nil, ErrEmptySlots
	}

	seen := make(map[string]struct{}, len(slots))
	constraints := make([]models.SignatureConstraint, 0, len(slots))
	for i, s := range slots {
		if strings.TrimSpace(s.Identifier) == "" {
			return nil, fmt.Errorf("slot %d: %w", i, ErrInvalidIdentifier)
		}
		if _, ok := seen[s.Identifier]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateSlot, s.Identifier)
		}
		seen[s.Identifier] = struct{}{}

		signer := models.WildcardSigner
		if s.Signer != nil && *s.Signer != "" {
			signer = *s.Signer
		}
		if signer != models.WildcardSigner && !IsAddress(signer) {
			return nil, fmt.Errorf("slot %q: %w: %s", s.Identifier, ErrInvalidAddress, signer)
		}

		allowed := DefaultAllowedToUse
		if s.AllowedToUse != nil {
			allowed = *s.AllowedToUse
		}

		constraints = append(constraints, models.SignatureConstraint{
			Identifier:   s.Identifier,
			Signer:       signer,
			AllowedToUse: allowed,
		})
	}

	return constraints, nil
}

// IsAddress reports whether s is a 0x-prefixed 20-byte hex address.
func IsAddress(s string) bool {
	return strings.HasPrefix(s, "0x") && common.IsHexAddress(s)
}
