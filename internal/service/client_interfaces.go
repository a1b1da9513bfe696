package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-agreement-keeper/models"
)

// AgreementProtocol drives the client side of the agreement lifecycle: it
// computes content identifiers, derives document keys from wallet
// signatures, encrypts documents, pins them and records them on the ledger.
//
// Every method acts as the address of the configured wallet signer.
type AgreementProtocol interface {
	// Create identifies the document and pins the description concurrently,
	// then signs the key message, encrypts the document, pins the ciphertext
	// and submits the agreement. Nothing is submitted if any step fails.
	Create(ctx context.Context, request models.CreateAgreementRequest) (models.Agreement, models.Receipt, error)

	// Sign attaches a signature packet to an existing agreement. Slot
	// constraints are checked against the ledger's current state before the
	// wallet is asked to sign or anything is uploaded.
	Sign(ctx context.Context, request models.SignAgreementRequest) (models.SignaturePacket, models.Receipt, error)

	// RetrieveAgreementDocument re-derives the owner's key and returns the
	// decrypted agreement document.
	RetrieveAgreementDocument(ctx context.Context, owner string, index uint64) ([]byte, error)

	// RetrievePacketDocument re-derives the signer's key and returns the
	// decrypted document attached to packet.
	RetrievePacketDocument(ctx context.Context, packet models.SignaturePacket) ([]byte, error)

	// ListAgreements and ListSignatures take a 1-based page. An empty
	// address means the signer's own address.
	ListAgreements(ctx context.Context, address string, page, pageSize int) ([]models.Agreement, error)
	ListSignatures(ctx context.Context, address string, page, pageSize int) ([]models.SignaturePacket, error)

	Profile(ctx context.Context, address string) (models.Profile, error)

	// Authorize checks whether the signer could sign slot right now.
	Authorize(ctx context.Context, owner string, index uint64, slot string) (models.Authorization, error)
}

// ClientAuthService opens a ledger session for the wallet address.
type ClientAuthService interface {
	// Login signs a fresh login message and exchanges it for a session
	// token, which the adapters then attach to every authenticated request.
	Login(ctx context.Context) (models.Token, error)
}

// ClientSyncService mirrors the signer's ledger records into the local
// cache and serves them back for offline browsing.
type ClientSyncService interface {
	// FullSync pulls every agreement owned by the signer, every packet
	// signed by it and the agreements those packets belong to.
	FullSync(ctx context.Context) error

	LocalAgreements(ctx context.Context) ([]models.Agreement, error)
	LocalAgreement(ctx context.Context, owner string, index uint64) (models.Agreement, error)
	LocalSignatures(ctx context.Context) ([]models.SignaturePacket, error)
	LocalAgreementSignatures(ctx context.Context, owner string, index uint64) ([]models.SignaturePacket, error)
}

// ClientSyncJob defines the contract for a background worker that
// periodically calls FullSync.
type ClientSyncJob interface {
	// Start launches the background sync goroutine. It syncs every interval,
	// defaulting to 5 minutes if interval is zero or negative. Any previously
	// running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
