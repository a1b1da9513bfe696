// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-agreement-keeper/models"
)

// validate checks source-independent invariants of the merged
// [StructuredConfig]: values that are set must make sense.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenDuration < 0 || cfg.App.LoginSkew < 0 ||
		cfg.Server.RequestTimeout < 0 || cfg.Adapter.RequestTimeout < 0 ||
		cfg.Workers.RefreshInterval < 0 {
		return fmt.Errorf("%w: negative duration", ErrInvalidAppConfigs)
	}

	if cfg.App.KeyScheme != "" && !models.KeyScheme(cfg.App.KeyScheme).Valid() {
		return fmt.Errorf("%w: unknown key scheme %q", ErrInvalidAppConfigs, cfg.App.KeyScheme)
	}

	return nil
}

// validateServer checks the settings the ledger server cannot start without.
func (cfg *StructuredConfig) validateServer() error {
	if cfg.Storage.DB.DSN == "" || cfg.Storage.Files.BlobDir == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.TokenSignKey == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.LedgerAddress == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.RefreshInterval == 0 {
		return ErrInvalidWorkerConfigs
	}

	if !cfg.Protocol.KeyScheme.Valid() {
		return ErrInvalidAppConfigs
	}

	if cfg.Wallet.PrivateKey == "" && cfg.Wallet.KeystorePath == "" {
		return ErrInvalidWalletConfigs
	}

	return nil
}
