package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-agreement-keeper/internal/validators"
	"github.com/MKhiriev/go-agreement-keeper/models"
)

// LedgerValidationService rejects malformed records, addresses and pages
// before they reach the wrapped LedgerService.
type LedgerValidationService struct {
	inner     LedgerService
	validator validators.Validator
}

func NewLedgerValidationService() LedgerServiceWrapper {
	return &LedgerValidationService{
		validator: validators.NewAgreementValidator(),
	}
}

func (v *LedgerValidationService) CreateAgreement(ctx context.Context, owner string, record models.AgreementRecord) (models.Agreement, models.Receipt, error) {
	if !validators.IsAddress(owner) {
		return models.Agreement{}, models.Receipt{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidAddress)
	}
	if err := v.validator.Validate(ctx, record); err != nil {
		return models.Agreement{}, models.Receipt{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.CreateAgreement(ctx, owner, record)
}

func (v *LedgerValidationService) CreateSignature(ctx context.Context, signer string, record models.SignatureRecord) (models.SignaturePacket, models.Receipt, error) {
	if !validators.IsAddress(signer) {
		return models.SignaturePacket{}, models.Receipt{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidAddress)
	}
	if err := v.validator.Validate(ctx, record); err != nil {
		return models.SignaturePacket{}, models.Receipt{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.CreateSignature(ctx, signer, record)
}

func (v *LedgerValidationService) GetAgreement(ctx context.Context, owner string, index uint64) (models.Agreement, error) {
	if !validators.IsAddress(owner) {
		return models.Agreement{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidAddress)
	}

	return v.inner.GetAgreement(ctx, owner, index)
}

func (v *LedgerValidationService) ListAgreements(ctx context.Context, owner string, page models.Page) ([]models.Agreement, error) {
	if err := v.validateListing(ctx, owner, page); err != nil {
		return nil, err
	}

	return v.inner.ListAgreements(ctx, owner, page)
}

func (v *LedgerValidationService) ListSignatures(ctx context.Context, signer string, page models.Page) ([]models.SignaturePacket, error) {
	if err := v.validateListing(ctx, signer, page); err != nil {
		return nil, err
	}

	return v.inner.ListSignatures(ctx, signer, page)
}

func (v *LedgerValidationService) GetProfile(ctx context.Context, address string) (models.Profile, error) {
	if !validators.IsAddress(address) {
		return models.Profile{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidAddress)
	}

	return v.inner.GetProfile(ctx, address)
}

func (v *LedgerValidationService) Wrap(wrapped LedgerService) LedgerService {
	v.inner = wrapped
	return v
}

func (v *LedgerValidationService) validateListing(ctx context.Context, address string, page models.Page) error {
	if !validators.IsAddress(address) {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidAddress)
	}
	if err := v.validator.Validate(ctx, page); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return nil
}
