package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-agreement-keeper/internal/crypto"
	"github.com/MKhiriev/go-agreement-keeper/models"
)

// Field name constants used to scope validation to a subset of fields.
const (
	FieldIdentifier                   = "identifier"
	FieldContentIdentifier            = "content_identifier"
	FieldEncryptedContentIdentifier   = "encrypted_content_identifier"
	FieldDescriptionContentIdentifier = "description_content_identifier"
	FieldConstraints                  = "constraints"
	FieldAgreementOwner               = "agreement_owner"
	FieldAddress                      = "address"
	FieldMessage                      = "message"
	FieldSignature                    = "signature"
	FieldLimit                        = "limit"
)

// MaxPageLimit bounds a single listing request.
const MaxPageLimit uint64 = 100

// AgreementValidator implements [Validator] for the records and requests
// that reach the ledger: AgreementRecord, SignatureRecord, LoginRequest and
// Page. Value and pointer forms are both accepted.
type AgreementValidator struct{}

// NewAgreementValidator returns an [AgreementValidator] as a [Validator].
func NewAgreementValidator() Validator {
	return &AgreementValidator{}
}

func (v *AgreementValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.AgreementRecord:
		return v.validateAgreementRecord(value, fields...)
	case *models.AgreementRecord:
		return v.validateAgreementRecord(*value, fields...)

	case models.SignatureRecord:
		return v.validateSignatureRecord(value, fields...)
	case *models.SignatureRecord:
		return v.validateSignatureRecord(*value, fields...)

	case models.LoginRequest:
		return v.validateLoginRequest(value, fields...)
	case *models.LoginRequest:
		return v.validateLoginRequest(*value, fields...)

	case models.Page:
		return v.validatePage(value, fields...)
	case *models.Page:
		return v.validatePage(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *AgreementValidator) validateAgreementRecord(record models.AgreementRecord, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldIdentifier, FieldContentIdentifier, FieldEncryptedContentIdentifier, FieldDescriptionContentIdentifier, FieldConstraints}
	}

	for _, f := range fields {
		switch f {
		case FieldIdentifier:
			if strings.TrimSpace(record.Identifier) == "" {
				return ErrInvalidIdentifier
			}
		case FieldContentIdentifier:
			if err := validateContentIdentifier(record.ContentIdentifier); err != nil {
				return err
			}
		case FieldEncryptedContentIdentifier:
			if err := validateContentIdentifier(record.EncryptedContentIdentifier); err != nil {
				return err
			}
		case FieldDescriptionContentIdentifier:
			if err := validateContentIdentifier(record.DescriptionContentIdentifier); err != nil {
				return err
			}
		case FieldConstraints:
			if err := validateConstraints(record.Constraints); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *AgreementValidator) validateSignatureRecord(record models.SignatureRecord, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAgreementOwner, FieldIdentifier, FieldEncryptedContentIdentifier, FieldContentIdentifier}
	}

	for _, f := range fields {
		switch f {
		case FieldAgreementOwner:
			if !IsAddress(record.AgreementOwner) {
				return ErrInvalidAddress
			}
		case FieldIdentifier:
			if strings.TrimSpace(record.Identifier) == "" {
				return ErrInvalidIdentifier
			}
		case FieldEncryptedContentIdentifier:
			if err := validateContentIdentifier(record.EncryptedContentIdentifier); err != nil {
				return err
			}
		case FieldContentIdentifier:
			if err := validateContentIdentifier(record.ContentIdentifier); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *AgreementValidator) validateLoginRequest(request models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAddress, FieldMessage, FieldSignature}
	}

	for _, f := range fields {
		switch f {
		case FieldAddress:
			if !IsAddress(request.Address) {
				return ErrInvalidAddress
			}
		case FieldMessage:
			if request.Message == "" {
				return ErrEmptyMessage
			}
		case FieldSignature:
			if request.Signature == "" {
				return ErrEmptySignature
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *AgreementValidator) validatePage(page models.Page, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLimit}
	}

	for _, f := range fields {
		switch f {
		case FieldLimit:
			if page.Limit == 0 || page.Limit > MaxPageLimit {
				return ErrInvalidLimit
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateContentIdentifier(s string) error {
	if _, err := crypto.ParseContentIdentifier(s); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidContentIdentifier, s)
	}
	return nil
}

// validateConstraints checks a submitted constraint list the same way
// BuildConstraints checks descriptions; new agreements start unused.
func validateConstraints(constraints []models.SignatureConstraint) error {
	slots := make([]models.SlotDescription, 0, len(constraints))
	for _, c := range constraints {
		if c.TotalUsed != 0 {
			return fmt.Errorf("%w: slot %q already used", ErrInvalidConstraint, c.Identifier)
		}
		signer, allowed := c.Signer, c.AllowedToUse
		slots = append(slots, models.SlotDescription{Identifier: c.Identifier, Signer: &signer, AllowedToUse: &allowed})
	}

	_, err := BuildConstraints(slots)
	return err
}
