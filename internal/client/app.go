package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-agreement-keeper/internal/adapter"
	"github.com/MKhiriev/go-agreement-keeper/internal/config"
	"github.com/MKhiriev/go-agreement-keeper/internal/logger"
	"github.com/MKhiriev/go-agreement-keeper/internal/service"
	"github.com/MKhiriev/go-agreement-keeper/internal/store"
	"github.com/MKhiriev/go-agreement-keeper/internal/tui"
	"github.com/MKhiriev/go-agreement-keeper/internal/wallet"
	"github.com/MKhiriev/go-agreement-keeper/models"
)

// Browser is the interactive front end started by [App.Run].
type Browser interface {
	Browse(ctx context.Context) error
}

type App struct {
	services *service.ClientServices
	storages *store.ClientStorages
	signer   wallet.Signer
	browser  Browser
	workers  config.ClientWorkers

	logger *logger.Logger
}

// NewApp opens the wallet, the local cache and the remote adapters. The
// ledger session starts unauthenticated; see [App.Login].
func NewApp(cfg config.ClientConfig, info models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	signer, err := wallet.NewSigner(cfg.Wallet)
	if err != nil {
		return nil, fmt.Errorf("open wallet: %w", err)
	}

	session := adapter.NewSession()
	ledger, err := adapter.NewHTTPLedger(cfg.Adapter, session, logger)
	if err != nil {
		return nil, fmt.Errorf("create ledger adapter: %w", err)
	}
	remoteBlobs, err := adapter.NewHTTPBlobStore(cfg.Adapter, session, logger)
	if err != nil {
		return nil, fmt.Errorf("create blob adapter: %w", err)
	}

	storages, err := store.NewClientStorages(cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	blobs := adapter.NewCachedBlobStore(remoteBlobs, storages.BlobCache, logger)
	services := service.NewClientServices(storages, ledger, blobs, signer, cfg, logger)

	browser, err := tui.New(services, signer.Address(), info, logger)
	if err != nil {
		storages.Close()
		return nil, fmt.Errorf("create ui: %w", err)
	}

	return newApp(services, storages, signer, browser, cfg.Workers, logger), nil
}

func newApp(services *service.ClientServices, storages *store.ClientStorages, signer wallet.Signer, browser Browser, workers config.ClientWorkers, logger *logger.Logger) *App {
	return &App{
		services: services,
		storages: storages,
		signer:   signer,
		browser:  browser,
		workers:  workers,
		logger:   logger,
	}
}

// Services exposes the client services to the CLI commands.
func (a *App) Services() *service.ClientServices {
	return a.services
}

// Address is the wallet address every operation acts as.
func (a *App) Address() string {
	return a.signer.Address()
}

// Context attaches the application logger to ctx.
func (a *App) Context(ctx context.Context) context.Context {
	return a.logger.WithContext(ctx)
}

// Login opens an authenticated ledger session for the wallet address.
func (a *App) Login(ctx context.Context) error {
	if _, err := a.services.AuthService.Login(a.Context(ctx)); err != nil {
		return fmt.Errorf("login: %w", err)
	}
	a.logger.Info().Str("address", a.Address()).Msg("ledger session opened")
	return nil
}

// Run logs in, refreshes the local cache, keeps it fresh in the background
// and blocks in the browser until the user leaves.
func (a *App) Run(ctx context.Context) error {
	ctx = a.Context(ctx)

	if err := a.Login(ctx); err != nil {
		return err
	}

	if err := a.services.SyncService.FullSync(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("initial sync failed, showing cached records")
	}

	a.services.SyncJob.Start(ctx, a.workers.RefreshInterval)
	defer a.services.SyncJob.Stop()

	err := a.browser.Browse(ctx)
	if errors.Is(err, tui.ErrUserQuit) {
		return nil
	}
	return err
}

func (a *App) Close() error {
	if a.storages == nil {
		return nil
	}
	return a.storages.Close()
}
