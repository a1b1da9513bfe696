package config

import (
	"time"

	"github.com/MKhiriev/go-agreement-keeper/models"
)

const (
	defaultHTTPAddress     = "localhost:8080"
	defaultRequestTimeout  = 30 * time.Second
	defaultTokenDuration   = time.Hour
	defaultTokenIssuer     = "agreement-keeper"
	defaultLoginSkew       = 5 * time.Minute
	defaultChainID         = 1
	defaultRefreshInterval = time.Minute
	defaultClientDSN       = "agreements.db"
)

func (cfg *StructuredConfig) applyServerDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = defaultTokenDuration
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = defaultTokenIssuer
	}
	if cfg.App.LoginSkew == 0 {
		cfg.App.LoginSkew = defaultLoginSkew
	}
}

func (cfg *StructuredConfig) applyClientDefaults() {
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Adapter.PinAddress == "" {
		cfg.Adapter.PinAddress = cfg.Adapter.LedgerAddress
	}
	if cfg.Adapter.GatewayAddress == "" {
		cfg.Adapter.GatewayAddress = cfg.Adapter.PinAddress
	}
	if cfg.App.ChainID == 0 {
		cfg.App.ChainID = defaultChainID
	}
	if cfg.App.KeyScheme == "" {
		cfg.App.KeyScheme = string(models.DefaultKeyScheme)
	}
	if cfg.Workers.RefreshInterval == 0 {
		cfg.Workers.RefreshInterval = defaultRefreshInterval
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = defaultClientDSN
	}
}
