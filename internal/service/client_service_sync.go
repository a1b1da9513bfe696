package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-agreement-keeper/internal/adapter"
	"github.com/MKhiriev/go-agreement-keeper/internal/logger"
	"github.com/MKhiriev/go-agreement-keeper/internal/store"
	"github.com/MKhiriev/go-agreement-keeper/internal/validators"
	"github.com/MKhiriev/go-agreement-keeper/internal/wallet"
	"github.com/MKhiriev/go-agreement-keeper/models"
)

type clientSyncService struct {
	localStore store.LocalAgreementRepository
	ledger     adapter.Ledger
	signer     wallet.Signer

	pageSize uint64

	logger *logger.Logger
}

func NewClientSyncService(localStore store.LocalAgreementRepository, ledger adapter.Ledger, signer wallet.Signer, logger *logger.Logger) ClientSyncService {
	return &clientSyncService{
		localStore: localStore,
		ledger:     ledger,
		signer:     signer,
		pageSize:   validators.MaxPageLimit,
		logger:     logger,
	}
}

func (s *clientSyncService) FullSync(ctx context.Context) error {
	address := s.signer.Address()

	owned, err := s.pullAgreements(ctx, address)
	if err != nil {
		return fmt.Errorf("pull agreements: %w", err)
	}
	if len(owned) > 0 {
		if err = s.localStore.SaveAgreements(ctx, owned...); err != nil {
			return fmt.Errorf("save agreements locally: %w", err)
		}
	}

	packets, err := s.pullSignatures(ctx, address)
	if err != nil {
		return fmt.Errorf("pull signatures: %w", err)
	}

	// agreements signed by the caller but owned by someone else
	known := make(map[agreementKey]struct{}, len(owned))
	for _, a := range owned {
		known[agreementKey{owner: normalize(a.Owner), index: a.Index}] = struct{}{}
	}
	for _, packet := range packets {
		key := agreementKey{owner: normalize(packet.AgreementOwner), index: packet.AgreementIndex}
		if _, ok := known[key]; ok {
			continue
		}
		known[key] = struct{}{}

		agreement, getErr := s.ledger.GetAgreement(ctx, packet.AgreementOwner, packet.AgreementIndex)
		if getErr != nil {
			return fmt.Errorf("get signed agreement: %w", mapAdapterError(getErr))
		}
		if err = s.localStore.SaveAgreements(ctx, agreement); err != nil {
			return fmt.Errorf("save signed agreement locally: %w", err)
		}
	}

	if len(packets) > 0 {
		if err = s.localStore.SaveSignatures(ctx, packets...); err != nil {
			return fmt.Errorf("save signatures locally: %w", err)
		}
	}

	logger.FromContext(ctx).Debug().
		Str("func", "clientSyncService.FullSync").
		Int("agreements", len(owned)).
		Int("signatures", len(packets)).
		Msg("local cache refreshed")

	return nil
}

func (s *clientSyncService) LocalAgreements(ctx context.Context) ([]models.Agreement, error) {
	return s.localStore.ListAgreements(ctx, s.signer.Address())
}

func (s *clientSyncService) LocalAgreement(ctx context.Context, owner string, index uint64) (models.Agreement, error) {
	return s.localStore.GetAgreement(ctx, owner, index)
}

func (s *clientSyncService) LocalSignatures(ctx context.Context) ([]models.SignaturePacket, error) {
	return s.localStore.ListSignatures(ctx, s.signer.Address())
}

func (s *clientSyncService) LocalAgreementSignatures(ctx context.Context, owner string, index uint64) ([]models.SignaturePacket, error) {
	return s.localStore.ListAgreementSignatures(ctx, owner, index)
}

func (s *clientSyncService) pullAgreements(ctx context.Context, address string) ([]models.Agreement, error) {
	var all []models.Agreement
	for offset := uint64(0); ; offset += s.pageSize {
		batch, err := s.ledger.ListAgreements(ctx, address, models.Page{Offset: offset, Limit: s.pageSize})
		if err != nil {
			return nil, mapAdapterError(err)
		}
		all = append(all, batch...)
		if uint64(len(batch)) < s.pageSize {
			return all, nil
		}
	}
}

func (s *clientSyncService) pullSignatures(ctx context.Context, address string) ([]models.SignaturePacket, error) {
	var all []models.SignaturePacket
	for offset := uint64(0); ; offset += s.pageSize {
		batch, err := s.ledger.ListSignatures(ctx, address, models.Page{Offset: offset, Limit: s.pageSize})
		if err != nil {
			return nil, mapAdapterError(err)
		}
		all = append(all, batch...)
		if uint64(len(batch)) < s.pageSize {
			return all, nil
		}
	}
}

type agreementKey struct {
	owner string
	index uint64
}

func normalize(address string) string {
	return strings.ToLower(address)
}
