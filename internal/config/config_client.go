package config

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-agreement-keeper/models"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	LedgerAddress  string
	PinAddress     string
	GatewayAddress string
	PinToken       string
	RequestTimeout time.Duration
	// HashKey signs pinned uploads when the server checks X-Hash.
	HashKey string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds the SQLite file of the local agreement cache.
	DB DB
	// Cache holds the badger blob cache directory.
	Cache Cache
}

// ClientProtocol holds the parameters of key messages.
type ClientProtocol struct {
	ChainID   int64
	KeyScheme models.KeyScheme
}

// ClientWorkers contains client background job settings.
type ClientWorkers struct {
	RefreshInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	Adapter  ClientAdapter
	Storage  ClientStorage
	Protocol ClientProtocol
	Wallet   Wallet
	Workers  ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from
// environment variables and an optional JSON file. The client owns its own
// command line, so flags are not parsed here.
func GetClientConfig(jsonPath string) (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withJSONPath(jsonPath).
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return cfg.ClientView()
}

// ClientView maps the fields relevant to the client runtime, fills defaults
// and validates the result.
func (cfg *StructuredConfig) ClientView() (*ClientConfig, error) {
	cfg.applyClientDefaults()

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			LedgerAddress:  cfg.Adapter.LedgerAddress,
			PinAddress:     cfg.Adapter.PinAddress,
			GatewayAddress: cfg.Adapter.GatewayAddress,
			PinToken:       cfg.Adapter.PinToken,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			HashKey:        cfg.App.HashKey,
		},
		Storage: ClientStorage{
			DB:    cfg.Storage.DB,
			Cache: cfg.Storage.Cache,
		},
		Protocol: ClientProtocol{
			ChainID:   cfg.App.ChainID,
			KeyScheme: models.KeyScheme(cfg.App.KeyScheme),
		},
		Wallet:  cfg.Wallet,
		Workers: ClientWorkers{RefreshInterval: cfg.Workers.RefreshInterval},
	}

	return clientCfg, clientCfg.validate()
}
