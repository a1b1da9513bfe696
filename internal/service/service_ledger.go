// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-agreement-keeper/internal/crypto"
	"github.com/MKhiriev/go-agreement-keeper/internal/logger"
	"github.com/MKhiriev/go-agreement-keeper/internal/store"
	"github.com/MKhiriev/go-agreement-keeper/internal/validators"
	"github.com/MKhiriev/go-agreement-keeper/models"
)

type ledgerService struct {
	repository store.LedgerRepository
	addresser  crypto.ContentAddresser

	logger *logger.Logger
}

// NewLedgerService returns the ledger service over repository. Records are
// expected to be validated already; see [NewLedgerValidationService].
func NewLedgerService(repository store.LedgerRepository, logger *logger.Logger) LedgerService {
	return &ledgerService{
		repository: repository,
		addresser:  crypto.NewContentAddresser(),
		logger:     logger,
	}
}

// CreateAgreement stores record for owner with canonical identifiers and
// constraints rebuilt from their slot form.
func (s *ledgerService) CreateAgreement(ctx context.Context, owner string, record models.AgreementRecord) (models.Agreement, models.Receipt, error) {
	normalized, err := s.normalizeAgreementRecord(record)
	if err != nil {
		return models.Agreement{}, models.Receipt{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	agreement, receipt, err := s.repository.CreateAgreement(ctx, owner, normalized)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "ledgerService.CreateAgreement").
			Str("owner", owner).
			Str("identifier", record.Identifier).
			Msg("error creating agreement")
		return models.Agreement{}, models.Receipt{}, fmt.Errorf("error creating agreement: %w", err)
	}

	return agreement, receipt, nil
}

// CreateSignature records a packet for signer. The constraint check happens
// inside the repository transaction so concurrent signers cannot overrun a
// slot.
func (s *ledgerService) CreateSignature(ctx context.Context, signer string, record models.SignatureRecord) (models.SignaturePacket, models.Receipt, error) {
	var err error
	if record.ContentIdentifier, err = s.addresser.Canonicalize(record.ContentIdentifier); err != nil {
		return models.SignaturePacket{}, models.Receipt{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if record.EncryptedContentIdentifier, err = s.addresser.Canonicalize(record.EncryptedContentIdentifier); err != nil {
		return models.SignaturePacket{}, models.Receipt{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	packet, receipt, err := s.repository.CreateSignature(ctx, signer, record)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "ledgerService.CreateSignature").
			Str("signer", signer).
			Str("owner", record.AgreementOwner).
			Uint64("index", record.AgreementIndex).
			Str("slot", record.Identifier).
			Msg("error creating signature")
		return models.SignaturePacket{}, models.Receipt{}, fmt.Errorf("error creating signature: %w", err)
	}

	return packet, receipt, nil
}

func (s *ledgerService) GetAgreement(ctx context.Context, owner string, index uint64) (models.Agreement, error) {
	return s.repository.GetAgreement(ctx, owner, index)
}

func (s *ledgerService) ListAgreements(ctx context.Context, owner string, page models.Page) ([]models.Agreement, error) {
	return s.repository.ListAgreements(ctx, owner, page)
}

func (s *ledgerService) ListSignatures(ctx context.Context, signer string, page models.Page) ([]models.SignaturePacket, error) {
	return s.repository.ListSignatures(ctx, signer, page)
}

func (s *ledgerService) GetProfile(ctx context.Context, address string) (models.Profile, error) {
	return s.repository.GetProfile(ctx, address)
}

func (s *ledgerService) normalizeAgreementRecord(record models.AgreementRecord) (models.AgreementRecord, error) {
	var err error
	for _, id := range []*string{&record.ContentIdentifier, &record.EncryptedContentIdentifier, &record.DescriptionContentIdentifier} {
		if *id, err = s.addresser.Canonicalize(*id); err != nil {
			return models.AgreementRecord{}, err
		}
	}

	slots := make([]models.SlotDescription, 0, len(record.Constraints))
	for _, c := range record.Constraints {
		signer, allowed := c.Signer, c.AllowedToUse
		slots = append(slots, models.SlotDescription{Identifier: c.Identifier, Signer: &signer, AllowedToUse: &allowed})
	}
	if record.Constraints, err = validators.BuildConstraints(slots); err != nil {
		return models.AgreementRecord{}, err
	}

	return record, nil
}
