// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"strings"
	"testing"

	"github.com/MKhiriev/go-agreement-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

const (
	alice = "0x1111111111111111111111111111111111111111"
	bob   = "0x2222222222222222222222222222222222222222"
)

func ptrString(s string) *string { return &s }
func ptrUint(v uint64) *uint64   { return &v }

// ---------------------------------------------------------------------------
// Authorize
// ---------------------------------------------------------------------------

func TestAuthorize(t *testing.T) {
	tests := []struct {
		name        string
		constraints []models.SignatureConstraint
		slot        string
		signer      string
		wantErr     error
		wantIndex   int
		wantUsed    uint64
	}{
		{
			name:        "first use of single slot",
			constraints: []models.SignatureConstraint{{Identifier: "employee", Signer: "*", AllowedToUse: 1}},
			slot:        "employee",
			signer:      alice,
			wantUsed:    1,
		},
		{
			name:        "exhausted slot",
			constraints: []models.SignatureConstraint{{Identifier: "employee", Signer: "*", TotalUsed: 1, AllowedToUse: 1}},
			slot:        "employee",
			signer:      alice,
			wantErr:     ErrExhaustedSlot,
		},
		{
			name:        "unlimited slot",
			constraints: []models.SignatureConstraint{{Identifier: "witness", Signer: "*", TotalUsed: 1000}},
			slot:        "witness",
			signer:      bob,
			wantUsed:    1001,
		},
		{
			name:        "reserved slot other signer",
			constraints: []models.SignatureConstraint{{Identifier: "employer", Signer: alice, AllowedToUse: 1}},
			slot:        "employer",
			signer:      bob,
			wantErr:     ErrWrongSigner,
		},
		{
			name:        "reserved slot address case differs",
			constraints: []models.SignatureConstraint{{Identifier: "employer", Signer: "0xABCDEF0000000000000000000000000000000001", AllowedToUse: 2}},
			slot:        "employer",
			signer:      "0xabcdef0000000000000000000000000000000001",
			wantUsed:    1,
		},
		{
			name:        "empty signer acts as wildcard",
			constraints: []models.SignatureConstraint{{Identifier: "any", AllowedToUse: 1}},
			slot:        "any",
			signer:      bob,
			wantUsed:    1,
		},
		{
			name: "second slot",
			constraints: []models.SignatureConstraint{
				{Identifier: "employer", Signer: alice, AllowedToUse: 1},
				{Identifier: "employee", Signer: "*", AllowedToUse: 1},
			},
			slot:      "employee",
			signer:    bob,
			wantIndex: 1,
			wantUsed:  1,
		},
		{
			name:        "missing slot",
			constraints: []models.SignatureConstraint{{Identifier: "employee", Signer: "*", AllowedToUse: 1}},
			slot:        "Employee",
			signer:      alice,
			wantErr:     ErrNoSuchSlot,
		},
		{
			name:    "no constraints",
			slot:    "employee",
			signer:  alice,
			wantErr: ErrNoSuchSlot,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Authorize(tt.constraints, tt.slot, tt.signer)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantIndex, got.Index)
			assert.Equal(t, tt.slot, got.Constraint.Identifier)
			assert.Equal(t, tt.wantUsed, got.Constraint.TotalUsed)
		})
	}
}

func TestAuthorize_DoesNotMutateInput(t *testing.T) {
	constraints := []models.SignatureConstraint{{Identifier: "employee", Signer: "*", AllowedToUse: 1}}

	_, err := Authorize(constraints, "employee", alice)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), constraints[0].TotalUsed)
}

func TestAuthorize_EmployeeScenario(t *testing.T) {
	constraints, err := BuildConstraints([]models.SlotDescription{{Identifier: "employee", AllowedToUse: ptrUint(1)}})
	require.NoError(t, err)

	first, err := Authorize(constraints, "employee", alice)
	require.NoError(t, err)
	constraints[first.Index] = first.Constraint

	_, err = Authorize(constraints, "employee", alice)
	require.ErrorIs(t, err, ErrExhaustedSlot)
}

func TestAuthorize_UnlimitedProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		calls := rapid.IntRange(1, 200).Draw(t, "calls")
		constraints := []models.SignatureConstraint{{Identifier: "witness", Signer: "*"}}

		for i := 0; i < calls; i++ {
			auth, err := Authorize(constraints, "witness", bob)
			if err != nil {
				t.Fatalf("call %d: %v", i, err)
			}
			constraints[auth.Index] = auth.Constraint
		}
		if constraints[0].TotalUsed != uint64(calls) {
			t.Fatalf("TotalUsed = %d, want %d", constraints[0].TotalUsed, calls)
		}
	})
}

func TestAuthorize_BoundedProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		allowed := rapid.Uint64Range(1, 20).Draw(t, "allowed")
		constraints := []models.SignatureConstraint{{Identifier: "slot", Signer: "*", AllowedToUse: allowed}}

		var accepted uint64
		for i := uint64(0); i < allowed+5; i++ {
			auth, err := Authorize(constraints, "slot", alice)
			if err != nil {
				if i < allowed {
					t.Fatalf("call %d denied early: %v", i, err)
				}
				continue
			}
			accepted++
			constraints[auth.Index] = auth.Constraint
		}
		if accepted != allowed {
			t.Fatalf("accepted %d, want %d", accepted, allowed)
		}
	})
}

// ---------------------------------------------------------------------------
// BuildConstraints
// ---------------------------------------------------------------------------

func TestBuildConstraints_Defaults(t *testing.T) {
	got, err := BuildConstraints([]models.SlotDescription{
		{Identifier: "employee"},
		{Identifier: "employer", Signer: ptrString(alice), AllowedToUse: ptrUint(2)},
		{Identifier: "witness", Signer: ptrString(""), AllowedToUse: ptrUint(0)},
	})
	require.NoError(t, err)

	assert.Equal(t, []models.SignatureConstraint{
		{Identifier: "employee", Signer: "*", AllowedToUse: 1},
		{Identifier: "employer", Signer: alice, AllowedToUse: 2},
		{Identifier: "witness", Signer: "*", AllowedToUse: 0},
	}, got)
}

func TestBuildConstraints_Errors(t *testing.T) {
	tests := []struct {
		name    string
		slots   []models.SlotDescription
		wantErr error
	}{
		{name: "no slots", wantErr: ErrEmptySlots},
		{name: "blank identifier", slots: []models.SlotDescription{{Identifier: "  "}}, wantErr: ErrInvalidIdentifier},
		{name: "duplicate", slots: []models.SlotDescription{{Identifier: "a"}, {Identifier: "a"}}, wantErr: ErrDuplicateSlot},
		{name: "bad signer", slots: []models.SlotDescription{{Identifier: "a", Signer: ptrString("alice")}}, wantErr: ErrInvalidAddress},
		{name: "signer without prefix", slots: []models.SlotDescription{{Identifier: "a", Signer: ptrString(strings.TrimPrefix(alice, "0x"))}}, wantErr: ErrInvalidAddress},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildConstraints(tt.slots)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestTotalPacketCount(t *testing.T) {
	bounded, err := BuildConstraints([]models.SlotDescription{{Identifier: "a"}, {Identifier: "b", AllowedToUse: ptrUint(3)}})
	require.NoError(t, err)
	assert.Equal(t, uint64(4), models.TotalPacketCount(bounded))

	open, err := BuildConstraints([]models.SlotDescription{{Identifier: "a"}, {Identifier: "b", AllowedToUse: ptrUint(0)}})
	require.NoError(t, err)
	assert.Equal(t, uint64(0), models.TotalPacketCount(open))

	assert.Equal(t, models.AgreementStatusCompleted, models.StatusFor(4, 4))
	assert.Equal(t, models.AgreementStatusActive, models.StatusFor(3, 4))
	assert.Equal(t, models.AgreementStatusActive, models.StatusFor(10, 0))
}
