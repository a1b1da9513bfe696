// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// ledger server and the client. It is populated by merging values from
// environment variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
//   - envDefault: value used when the variable is unset.
type StructuredConfig struct {
	// App holds token parameters, integrity keys and protocol settings.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the relational database, the blob
	// directory of the server and the blob cache of the client.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds listen addresses and timeouts of the ledger server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the endpoints the client talks to.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Wallet holds the signing key of the client.
	Wallet Wallet `envPrefix:"WALLET_"`

	// Workers holds configuration for background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`

	// Files holds the blob directory served by the pinning API.
	Files Files `envPrefix:"FILES_"`

	// Cache holds the local blob cache of the client.
	Cache Cache `envPrefix:"CACHE_"`
}

// App holds application-level configuration values.
type App struct {
	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a JWT token remains valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// LoginSkew bounds the age of a signed login message.
	// Env: APP_LOGIN_SKEW
	LoginSkew time.Duration `env:"LOGIN_SKEW"`

	// HashKey is the HMAC key used for upload integrity checking
	// (the X-Hash header).
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// Version is exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// ChainID is the EIP-712 domain chain id used in typed key messages.
	// Env: APP_CHAIN_ID
	ChainID int64 `env:"CHAIN_ID"`

	// KeyScheme is the key scheme for new agreements
	// ("typed-data-v1" or "personal-sign").
	// Env: APP_KEY_SCHEME
	KeyScheme string `env:"KEY_SCHEME"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address of the HTTP server ("host:port").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address of the gRPC health server ("host:port").
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout is the maximum duration of a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is a PostgreSQL connection string on the server and a SQLite file
	// path on the client.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Files holds the blob directory of the pinning API.
type Files struct {
	// BlobDir is where pinned blobs are stored, one file per identifier.
	// Env: STORAGE_FILES_BLOB_DIR
	BlobDir string `env:"BLOB_DIR"`
}

// Cache holds the client blob cache settings.
type Cache struct {
	// Dir is the badger directory. Empty disables the cache.
	// Env: STORAGE_CACHE_DIR
	Dir string `env:"DIR"`
}

// Adapter holds the remote endpoints used by the client.
type Adapter struct {
	// LedgerAddress is the base URL of the ledger API.
	// Env: ADAPTER_LEDGER_ADDRESS
	LedgerAddress string `env:"LEDGER_ADDRESS"`

	// PinAddress is the base URL of the pinning API.
	// Env: ADAPTER_PIN_ADDRESS
	PinAddress string `env:"PIN_ADDRESS"`

	// GatewayAddress is the base URL of the content gateway.
	// Env: ADAPTER_GATEWAY_ADDRESS
	GatewayAddress string `env:"GATEWAY_ADDRESS"`

	// PinToken is a static bearer token for the pinning API. When empty the
	// ledger session token is used.
	// Env: ADAPTER_PIN_TOKEN
	PinToken string `env:"PIN_TOKEN"`

	// RequestTimeout is the default timeout for outbound requests.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Wallet holds the signing key of the client. PrivateKey wins over the
// keystore when both are set.
type Wallet struct {
	// Env: WALLET_PRIVATE_KEY
	PrivateKey string `env:"PRIVATE_KEY"`

	// Env: WALLET_KEYSTORE_PATH
	KeystorePath string `env:"KEYSTORE_PATH"`

	// Env: WALLET_KEYSTORE_PASSWORD
	KeystorePassword string `env:"KEYSTORE_PASSWORD"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// RefreshInterval is how often the client pulls its agreements and
	// signature packets into the local cache.
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// GetStructuredConfig loads and merges the configuration from all available
// sources in the following priority order (last source wins for non-zero
// fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}

// GetServerConfig loads the configuration of the ledger server and checks
// the settings it cannot start without.
func GetServerConfig(args []string) (*StructuredConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, err
	}

	cfg.applyServerDefaults()
	return cfg, cfg.validateServer()
}
