package service

import (
	"github.com/MKhiriev/go-agreement-keeper/internal/adapter"
	"github.com/MKhiriev/go-agreement-keeper/internal/config"
	"github.com/MKhiriev/go-agreement-keeper/internal/logger"
	"github.com/MKhiriev/go-agreement-keeper/internal/store"
	"github.com/MKhiriev/go-agreement-keeper/internal/wallet"
)

type ClientServices struct {
	Protocol    AgreementProtocol
	AuthService ClientAuthService
	SyncService ClientSyncService
	SyncJob     ClientSyncJob
}

func NewClientServices(localStore *store.ClientStorages, ledger adapter.Ledger, blobs adapter.BlobStore, signer wallet.Signer, cfg config.ClientConfig, logger *logger.Logger) *ClientServices {
	syncSvc := NewClientSyncService(localStore.AgreementRepository, ledger, signer, logger)

	return &ClientServices{
		Protocol:    NewAgreementProtocol(ledger, blobs, signer, cfg.Protocol, logger),
		AuthService: NewClientAuthService(ledger, signer, logger),
		SyncService: syncSvc,
		SyncJob:     NewClientSyncJob(syncSvc),
	}
}
