package config

import "errors"

// Validation failures, one per configuration group.
var (
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	ErrInvalidAppConfigs     = errors.New("invalid app configuration")
	ErrInvalidWorkerConfigs  = errors.New("invalid worker configuration")
	// ErrInvalidWalletConfigs means neither a private key nor a keystore is set.
	ErrInvalidWalletConfigs = errors.New("invalid wallet configuration")
)
