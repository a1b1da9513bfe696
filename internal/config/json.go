package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON field names.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		LoginSkew     Duration `json:"login_skew"`
		HashKey       string   `json:"hash_key"`
		Version       string   `json:"version"`
		ChainID       int64    `json:"chain_id"`
		KeyScheme     string   `json:"key_scheme"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Files struct {
			BlobDir string `json:"blob_dir"`
		} `json:"files,omitempty"`

		Cache struct {
			Dir string `json:"dir"`
		} `json:"cache,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		LedgerAddress  string   `json:"ledger_address"`
		PinAddress     string   `json:"pin_address"`
		GatewayAddress string   `json:"gateway_address"`
		PinToken       string   `json:"pin_token"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Wallet struct {
		PrivateKey       string `json:"private_key"`
		KeystorePath     string `json:"keystore_path"`
		KeystorePassword string `json:"keystore_password"`
	} `json:"wallet,omitempty"`

	Workers struct {
		RefreshInterval Duration `json:"refresh_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:  jsonCfg.App.TokenSignKey,
			TokenIssuer:   jsonCfg.App.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.App.TokenDuration),
			LoginSkew:     time.Duration(jsonCfg.App.LoginSkew),
			HashKey:       jsonCfg.App.HashKey,
			Version:       jsonCfg.App.Version,
			ChainID:       jsonCfg.App.ChainID,
			KeyScheme:     jsonCfg.App.KeyScheme,
		},
		Storage: Storage{
			DB:    DB{DSN: jsonCfg.Storage.DB.DSN},
			Files: Files{BlobDir: jsonCfg.Storage.Files.BlobDir},
			Cache: Cache{Dir: jsonCfg.Storage.Cache.Dir},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			GRPCAddress:    jsonCfg.Server.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Adapter: Adapter{
			LedgerAddress:  jsonCfg.Adapter.LedgerAddress,
			PinAddress:     jsonCfg.Adapter.PinAddress,
			GatewayAddress: jsonCfg.Adapter.GatewayAddress,
			PinToken:       jsonCfg.Adapter.PinToken,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Wallet: Wallet{
			PrivateKey:       jsonCfg.Wallet.PrivateKey,
			KeystorePath:     jsonCfg.Wallet.KeystorePath,
			KeystorePassword: jsonCfg.Wallet.KeystorePassword,
		},
		Workers: Workers{
			RefreshInterval: time.Duration(jsonCfg.Workers.RefreshInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
