package service

import (
	"github.com/MKhiriev/go-agreement-keeper/internal/config"
	"github.com/MKhiriev/go-agreement-keeper/internal/logger"
	"github.com/MKhiriev/go-agreement-keeper/internal/store"
)

type Services struct {
	AuthService    AuthService
	LedgerService  LedgerService
	BlobService    BlobService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	ledger := NewLedgerValidationService().Wrap(NewLedgerService(storages.LedgerRepository, logger))

	return &Services{
		AuthService:    NewAuthService(cfg.App, logger),
		LedgerService:  ledger,
		BlobService:    NewBlobService(storages.BlobStorage, logger),
		AppInfoService: appInfo,
	}, nil
}
