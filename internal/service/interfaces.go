package service

import (
	"context"

	"github.com/MKhiriev/go-agreement-keeper/models"
)

// LedgerService is the server-side ledger. Owner and signer addresses always
// come from the authenticated session, never from the request body.
type LedgerService interface {
	CreateAgreement(ctx context.Context, owner string, record models.AgreementRecord) (models.Agreement, models.Receipt, error)
	CreateSignature(ctx context.Context, signer string, record models.SignatureRecord) (models.SignaturePacket, models.Receipt, error)

	GetAgreement(ctx context.Context, owner string, index uint64) (models.Agreement, error)
	ListAgreements(ctx context.Context, owner string, page models.Page) ([]models.Agreement, error)
	ListSignatures(ctx context.Context, signer string, page models.Page) ([]models.SignaturePacket, error)
	GetProfile(ctx context.Context, address string) (models.Profile, error)
}

type AuthService interface {
	// Login verifies a signed login message and issues a session token for
	// the recovered address.
	Login(ctx context.Context, request models.LoginRequest) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// BlobService backs the pinning API and the gateway.
type BlobService interface {
	Pin(ctx context.Context, data []byte, name string) (models.PinResult, error)
	Fetch(ctx context.Context, contentIdentifier string) ([]byte, error)
}

// AppInfoService reports what the ledger runs and which protocol parameters
// it expects from clients.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetServerInfo(ctx context.Context) models.ServerInfo
}

// LedgerServiceWrapper defines middleware composition for LedgerService.
// Implementations wrap an existing LedgerService to add behavior such as
// validation.
type LedgerServiceWrapper interface {
	Wrap(LedgerService) LedgerService
}
