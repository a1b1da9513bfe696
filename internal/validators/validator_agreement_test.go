package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-agreement-keeper/internal/crypto"
	"github.com/MKhiriev/go-agreement-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCID(t *testing.T, data string) string {
	t.Helper()
	c, err := crypto.NewContentAddresser().Identify([]byte(data))
	require.NoError(t, err)
	return c.String()
}

func validAgreementRecord(t *testing.T) models.AgreementRecord {
	return models.AgreementRecord{
		Identifier:                   "lease-2026",
		ContentIdentifier:            testCID(t, "plain"),
		EncryptedContentIdentifier:   testCID(t, "cipher"),
		DescriptionContentIdentifier: testCID(t, "description"),
		Constraints: []models.SignatureConstraint{
			{Identifier: "tenant", Signer: "*", AllowedToUse: 1},
		},
	}
}

func TestNewAgreementValidator(t *testing.T) {
	v := NewAgreementValidator()
	require.NotNil(t, v)
}

func TestValidate_Dispatch(t *testing.T) {
	v := NewAgreementValidator()
	ctx := context.Background()

	record := validAgreementRecord(t)
	assert.NoError(t, v.Validate(ctx, record))
	assert.NoError(t, v.Validate(ctx, &record))
	assert.ErrorIs(t, v.Validate(ctx, 42), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(ctx, record, "nope"), ErrUnknownField)
}

func TestValidate_AgreementRecord(t *testing.T) {
	v := NewAgreementValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(r *models.AgreementRecord)
		wantErr error
	}{
		{name: "blank identifier", mutate: func(r *models.AgreementRecord) { r.Identifier = " " }, wantErr: ErrInvalidIdentifier},
		{name: "bad content identifier", mutate: func(r *models.AgreementRecord) { r.ContentIdentifier = "x" }, wantErr: ErrInvalidContentIdentifier},
		{name: "bad description identifier", mutate: func(r *models.AgreementRecord) { r.DescriptionContentIdentifier = "" }, wantErr: ErrInvalidContentIdentifier},
		{name: "used constraint", mutate: func(r *models.AgreementRecord) { r.Constraints[0].TotalUsed = 1 }, wantErr: ErrInvalidConstraint},
		{name: "no constraints", mutate: func(r *models.AgreementRecord) { r.Constraints = nil }, wantErr: ErrEmptySlots},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := validAgreementRecord(t)
			tt.mutate(&record)
			require.ErrorIs(t, v.Validate(ctx, record), tt.wantErr)
		})
	}
}

func TestValidate_SignatureRecord(t *testing.T) {
	v := NewAgreementValidator()
	ctx := context.Background()

	record := models.SignatureRecord{
		AgreementOwner:             alice,
		Identifier:                 "tenant",
		EncryptedContentIdentifier: testCID(t, "cipher"),
		ContentIdentifier:          testCID(t, "plain"),
	}
	require.NoError(t, v.Validate(ctx, record))

	record.AgreementOwner = "alice"
	assert.ErrorIs(t, v.Validate(ctx, record), ErrInvalidAddress)
	assert.NoError(t, v.Validate(ctx, record, FieldIdentifier))
}

func TestValidate_LoginAndPage(t *testing.T) {
	v := NewAgreementValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.LoginRequest{Address: bob, Message: "m", Signature: "0x01"}))
	assert.ErrorIs(t, v.Validate(ctx, models.LoginRequest{Address: bob, Message: "m"}), ErrEmptySignature)
	assert.ErrorIs(t, v.Validate(ctx, models.LoginRequest{Address: bob, Signature: "0x01"}), ErrEmptyMessage)

	assert.NoError(t, v.Validate(ctx, models.Page{Offset: 10, Limit: 10}))
	assert.ErrorIs(t, v.Validate(ctx, models.Page{Limit: 0}), ErrInvalidLimit)
	assert.ErrorIs(t, v.Validate(ctx, &models.Page{Limit: MaxPageLimit + 1}), ErrInvalidLimit)
}
