package store

import (
	"context"

	"github.com/MKhiriev/go-agreement-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalAgreementRepository is the client-side cache of ledger records.
type LocalAgreementRepository interface {
	// SaveAgreements inserts or refreshes agreements keyed by owner and index.
	SaveAgreements(ctx context.Context, agreements ...models.Agreement) error
	GetAgreement(ctx context.Context, owner string, index uint64) (models.Agreement, error)
	ListAgreements(ctx context.Context, owner string) ([]models.Agreement, error)

	// SaveSignatures inserts packets keyed by signer and index. Packets are
	// immutable, so an existing packet is left untouched.
	SaveSignatures(ctx context.Context, packets ...models.SignaturePacket) error
	ListSignatures(ctx context.Context, signer string) ([]models.SignaturePacket, error)
	ListAgreementSignatures(ctx context.Context, owner string, index uint64) ([]models.SignaturePacket, error)
}
