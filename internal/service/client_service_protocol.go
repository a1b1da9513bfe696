// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-agreement-keeper/internal/adapter"
	"github.com/MKhiriev/go-agreement-keeper/internal/config"
	"github.com/MKhiriev/go-agreement-keeper/internal/crypto"
	"github.com/MKhiriev/go-agreement-keeper/internal/logger"
	"github.com/MKhiriev/go-agreement-keeper/internal/validators"
	"github.com/MKhiriev/go-agreement-keeper/internal/wallet"
	"github.com/MKhiriev/go-agreement-keeper/models"
	"golang.org/x/sync/errgroup"
)

const (
	descriptionSuffix = ".description.json"
	documentSuffix    = ".pdf.enc"
)

type agreementProtocol struct {
	ledger adapter.Ledger
	blobs  adapter.BlobStore
	signer wallet.Signer

	addresser crypto.ContentAddresser
	deriver   crypto.KeyDeriver
	cipher    crypto.DocumentCipher

	chainID       int64
	defaultScheme models.KeyScheme

	logger *logger.Logger
}

// NewAgreementProtocol wires the protocol to its collaborators. The crypto
// primitives are the package defaults; tests replace them through the
// struct fields.
func NewAgreementProtocol(ledger adapter.Ledger, blobs adapter.BlobStore, signer wallet.Signer, cfg config.ClientProtocol, logger *logger.Logger) AgreementProtocol {
	scheme := cfg.KeyScheme
	if scheme == "" {
		scheme = models.DefaultKeyScheme
	}

	return &agreementProtocol{
		ledger:        ledger,
		blobs:         blobs,
		signer:        signer,
		addresser:     crypto.NewContentAddresser(),
		deriver:       crypto.NewKeyDeriver(),
		cipher:        crypto.NewDocumentCipher(),
		chainID:       cfg.ChainID,
		defaultScheme: scheme,
		logger:        logger,
	}
}

func (p *agreementProtocol) Create(ctx context.Context, request models.CreateAgreementRequest) (models.Agreement, models.Receipt, error) {
	log := logger.FromContext(ctx)

	identifier := strings.TrimSpace(request.Identifier)
	if identifier == "" {
		return models.Agreement{}, models.Receipt{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidIdentifier)
	}

	scheme := request.KeyScheme
	if scheme == "" {
		scheme = p.defaultScheme
	}
	if !scheme.Valid() {
		return models.Agreement{}, models.Receipt{}, fmt.Errorf("%w: %q", ErrUnsupportedKeyScheme, scheme)
	}

	constraints, err := validators.BuildConstraints(request.Slots)
	if err != nil {
		return models.Agreement{}, models.Receipt{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	description := models.AgreementDescription{
		Version:    models.DescriptionVersion,
		Identifier: identifier,
		KeyScheme:  scheme,
		Slots:      request.Slots,
	}
	if scheme == models.KeySchemeTypedDataV1 {
		description.ChainID = p.chainID
	}
	rawDescription, err := json.Marshal(description)
	if err != nil {
		return models.Agreement{}, models.Receipt{}, fmt.Errorf("error encoding agreement description: %w", err)
	}

	var (
		contentIdentifier     string
		descriptionIdentifier string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		c, identifyErr := p.addresser.Identify(request.Document)
		if identifyErr != nil {
			return fmt.Errorf("error identifying document: %w", identifyErr)
		}
		contentIdentifier = c.String()
		return nil
	})
	g.Go(func() error {
		pinned, pinErr := p.pin(gctx, rawDescription, identifier+descriptionSuffix)
		if pinErr != nil {
			return fmt.Errorf("error pinning agreement description: %w", pinErr)
		}
		descriptionIdentifier = pinned
		return nil
	})
	if err = g.Wait(); err != nil {
		log.Err(err).Str("func", "agreementProtocol.Create").Str("identifier", identifier).Msg("preparing agreement failed")
		return models.Agreement{}, models.Receipt{}, err
	}

	owner := p.signer.Address()
	key, err := p.documentKey(ctx, scheme, description.ChainID, owner, identifier, contentIdentifier)
	if err != nil {
		return models.Agreement{}, models.Receipt{}, err
	}

	encryptedIdentifier, err := p.pin(ctx, p.cipher.Encrypt(request.Document, key), identifier+documentSuffix)
	if err != nil {
		log.Err(err).Str("func", "agreementProtocol.Create").Str("identifier", identifier).Msg("pinning encrypted document failed")
		return models.Agreement{}, models.Receipt{}, fmt.Errorf("error pinning encrypted document: %w", err)
	}

	record := models.AgreementRecord{
		Identifier:                   identifier,
		ContentIdentifier:            contentIdentifier,
		EncryptedContentIdentifier:   encryptedIdentifier,
		DescriptionContentIdentifier: descriptionIdentifier,
		Constraints:                  constraints,
	}
	receipt, err := p.ledger.SubmitAgreement(ctx, record)
	if err != nil {
		log.Err(err).Str("func", "agreementProtocol.Create").Str("identifier", identifier).Msg("submitting agreement failed")
		return models.Agreement{}, models.Receipt{}, mapAdapterError(err)
	}

	total := models.TotalPacketCount(constraints)
	return models.Agreement{
		Owner:                        owner,
		Index:                        receipt.Index,
		Identifier:                   identifier,
		ContentIdentifier:            contentIdentifier,
		EncryptedContentIdentifier:   encryptedIdentifier,
		DescriptionContentIdentifier: descriptionIdentifier,
		TotalPacketCount:             total,
		Constraints:                  constraints,
		Status:                       models.StatusFor(0, total),
		CreatedAt:                    receipt.Timestamp,
	}, receipt, nil
}

func (p *agreementProtocol) Sign(ctx context.Context, request models.SignAgreementRequest) (models.SignaturePacket, models.Receipt, error) {
	log := logger.FromContext(ctx)

	if !validators.IsAddress(request.Owner) {
		return models.SignaturePacket{}, models.Receipt{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidAddress)
	}
	if strings.TrimSpace(request.Slot) == "" {
		return models.SignaturePacket{}, models.Receipt{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidIdentifier)
	}

	agreement, err := p.ledger.GetAgreement(ctx, request.Owner, request.Index)
	if err != nil {
		return models.SignaturePacket{}, models.Receipt{}, mapAdapterError(err)
	}

	c, err := p.addresser.Identify(request.Document)
	if err != nil {
		return models.SignaturePacket{}, models.Receipt{}, fmt.Errorf("error identifying document: %w", err)
	}
	contentIdentifier := c.String()

	description, err := p.description(ctx, agreement)
	if err != nil {
		return models.SignaturePacket{}, models.Receipt{}, err
	}
	scheme := description.Scheme()

	signer := p.signer.Address()
	if _, err = validators.Authorize(agreement.Constraints, request.Slot, signer); err != nil {
		log.Info().Err(err).
			Str("func", "agreementProtocol.Sign").
			Str("owner", agreement.Owner).
			Uint64("index", agreement.Index).
			Str("slot", request.Slot).
			Msg("signature refused by slot constraints")
		return models.SignaturePacket{}, models.Receipt{}, err
	}

	if scheme == models.KeySchemePersonalSign && !crypto.SameContent(contentIdentifier, agreement.ContentIdentifier) {
		return models.SignaturePacket{}, models.Receipt{}, ErrKeyReuse
	}

	key, err := p.documentKey(ctx, scheme, p.descriptionChainID(description), agreement.Owner, agreement.Identifier, contentIdentifier)
	if err != nil {
		return models.SignaturePacket{}, models.Receipt{}, err
	}

	name := fmt.Sprintf("%s.%s%s", agreement.Identifier, request.Slot, documentSuffix)
	encryptedIdentifier, err := p.pin(ctx, p.cipher.Encrypt(request.Document, key), name)
	if err != nil {
		log.Err(err).Str("func", "agreementProtocol.Sign").Str("slot", request.Slot).Msg("pinning encrypted document failed")
		return models.SignaturePacket{}, models.Receipt{}, fmt.Errorf("error pinning encrypted document: %w", err)
	}

	record := models.SignatureRecord{
		AgreementOwner:             agreement.Owner,
		AgreementIndex:             agreement.Index,
		Identifier:                 request.Slot,
		EncryptedContentIdentifier: encryptedIdentifier,
		ContentIdentifier:          contentIdentifier,
	}
	receipt, err := p.ledger.SubmitSignature(ctx, record)
	if err != nil {
		log.Err(err).Str("func", "agreementProtocol.Sign").Str("slot", request.Slot).Msg("submitting signature failed")
		return models.SignaturePacket{}, models.Receipt{}, mapAdapterError(err)
	}

	return models.SignaturePacket{
		AgreementOwner:             agreement.Owner,
		AgreementIndex:             agreement.Index,
		Index:                      receipt.Index,
		Identifier:                 request.Slot,
		EncryptedContentIdentifier: encryptedIdentifier,
		ContentIdentifier:          contentIdentifier,
		Signer:                     signer,
		Timestamp:                  receipt.Timestamp,
		BlockNumber:                receipt.BlockNumber,
	}, receipt, nil
}

func (p *agreementProtocol) RetrieveAgreementDocument(ctx context.Context, owner string, index uint64) ([]byte, error) {
	agreement, err := p.ledger.GetAgreement(ctx, owner, index)
	if err != nil {
		return nil, mapAdapterError(err)
	}

	description, err := p.description(ctx, agreement)
	if err != nil {
		return nil, err
	}

	key, err := p.documentKey(ctx, description.Scheme(), p.descriptionChainID(description), agreement.Owner, agreement.Identifier, agreement.ContentIdentifier)
	if err != nil {
		return nil, err
	}

	return p.open(ctx, agreement.EncryptedContentIdentifier, agreement.ContentIdentifier, key)
}

func (p *agreementProtocol) RetrievePacketDocument(ctx context.Context, packet models.SignaturePacket) ([]byte, error) {
	agreement, err := p.ledger.GetAgreement(ctx, packet.AgreementOwner, packet.AgreementIndex)
	if err != nil {
		return nil, mapAdapterError(err)
	}

	description, err := p.description(ctx, agreement)
	if err != nil {
		return nil, err
	}

	key, err := p.documentKey(ctx, description.Scheme(), p.descriptionChainID(description), agreement.Owner, agreement.Identifier, packet.ContentIdentifier)
	if err != nil {
		return nil, err
	}

	return p.open(ctx, packet.EncryptedContentIdentifier, packet.ContentIdentifier, key)
}

func (p *agreementProtocol) ListAgreements(ctx context.Context, address string, page, pageSize int) ([]models.Agreement, error) {
	bounds, err := toPage(page, pageSize)
	if err != nil {
		return nil, err
	}

	agreements, err := p.ledger.ListAgreements(ctx, p.addressOrSelf(address), bounds)
	if err != nil {
		return nil, mapAdapterError(err)
	}
	return agreements, nil
}

func (p *agreementProtocol) ListSignatures(ctx context.Context, address string, page, pageSize int) ([]models.SignaturePacket, error) {
	bounds, err := toPage(page, pageSize)
	if err != nil {
		return nil, err
	}

	packets, err := p.ledger.ListSignatures(ctx, p.addressOrSelf(address), bounds)
	if err != nil {
		return nil, mapAdapterError(err)
	}
	return packets, nil
}

func (p *agreementProtocol) Profile(ctx context.Context, address string) (models.Profile, error) {
	profile, err := p.ledger.GetProfile(ctx, p.addressOrSelf(address))
	if err != nil {
		return models.Profile{}, mapAdapterError(err)
	}
	return profile, nil
}

func (p *agreementProtocol) Authorize(ctx context.Context, owner string, index uint64, slot string) (models.Authorization, error) {
	agreement, err := p.ledger.GetAgreement(ctx, owner, index)
	if err != nil {
		return models.Authorization{}, mapAdapterError(err)
	}

	return validators.Authorize(agreement.Constraints, slot, p.signer.Address())
}

// documentKey signs the key message of scheme and derives the document key
// from the signature.
func (p *agreementProtocol) documentKey(ctx context.Context, scheme models.KeyScheme, chainID int64, owner, identifier, contentIdentifier string) (crypto.Key, error) {
	var (
		signature []byte
		err       error
	)

	switch scheme {
	case models.KeySchemePersonalSign:
		signature, err = p.signer.Sign(ctx, crypto.PlainKeyMessage(identifier))
	case models.KeySchemeTypedDataV1:
		signature, err = p.signer.SignTypedData(ctx, crypto.TypedKeyMessage(chainID, owner, identifier, contentIdentifier))
	default:
		return crypto.Key{}, fmt.Errorf("%w: %q", ErrUnsupportedKeyScheme, scheme)
	}
	if err != nil {
		return crypto.Key{}, fmt.Errorf("error signing key message: %w", err)
	}

	return p.deriver.DeriveKey(signature)
}

// description fetches and decodes the pinned description of agreement.
func (p *agreementProtocol) description(ctx context.Context, agreement models.Agreement) (models.AgreementDescription, error) {
	raw, err := p.blobs.Fetch(ctx, agreement.DescriptionContentIdentifier)
	if err != nil {
		return models.AgreementDescription{}, fmt.Errorf("error fetching agreement description: %w", mapAdapterError(err))
	}

	var description models.AgreementDescription
	if err = json.Unmarshal(raw, &description); err != nil {
		return models.AgreementDescription{}, fmt.Errorf("%w: %w", ErrInvalidDescription, err)
	}
	if !description.Scheme().Valid() {
		return models.AgreementDescription{}, fmt.Errorf("%w: %q", ErrUnsupportedKeyScheme, description.KeyScheme)
	}

	return description, nil
}

func (p *agreementProtocol) descriptionChainID(description models.AgreementDescription) int64 {
	if description.ChainID != 0 {
		return description.ChainID
	}
	return p.chainID
}

// pin stores data and returns its canonical storage identifier.
func (p *agreementProtocol) pin(ctx context.Context, data []byte, name string) (string, error) {
	result, err := p.blobs.Pin(ctx, data, name)
	if err != nil {
		return "", mapAdapterError(err)
	}

	canonical, err := p.addresser.Canonicalize(result.IpfsHash)
	if err != nil {
		return "", fmt.Errorf("pinning service returned %q: %w", result.IpfsHash, err)
	}
	return canonical, nil
}

// open fetches and decrypts a stored document and checks it against the
// identifier recorded on the ledger.
func (p *agreementProtocol) open(ctx context.Context, encryptedIdentifier, contentIdentifier string, key crypto.Key) ([]byte, error) {
	ciphertext, err := p.blobs.Fetch(ctx, encryptedIdentifier)
	if err != nil {
		return nil, mapAdapterError(err)
	}

	plaintext, err := p.cipher.Decrypt(ciphertext, key)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "agreementProtocol.open").
			Str("encrypted_content_identifier", encryptedIdentifier).
			Msg("document could not be decrypted with the derived key")
		return nil, err
	}

	c, err := p.addresser.Identify(plaintext)
	if err != nil {
		return nil, fmt.Errorf("error identifying decrypted document: %w", err)
	}
	if !crypto.SameContent(c.String(), contentIdentifier) {
		return nil, ErrContentMismatch
	}

	return plaintext, nil
}

func (p *agreementProtocol) addressOrSelf(address string) string {
	if address = strings.TrimSpace(address); address != "" {
		return address
	}
	return p.signer.Address()
}

// toPage maps a 1-based page number to ledger offset and limit.
func toPage(page, pageSize int) (models.Page, error) {
	if page < 1 || pageSize < 1 {
		return models.Page{}, errors.Join(ErrInvalidDataProvided, ErrInvalidPage)
	}

	return models.Page{
		Offset: uint64(page-1) * uint64(pageSize),
		Limit:  uint64(pageSize),
	}, nil
}
