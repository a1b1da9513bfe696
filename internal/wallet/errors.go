package wallet

import "errors"

var (
	ErrInvalidPrivateKey = errors.New("invalid private key")
	ErrInvalidKeystore   = errors.New("invalid keystore")
	ErrInvalidTypedData  = errors.New("invalid typed data")
	ErrInvalidSignature  = errors.New("invalid signature")
	ErrSignerMismatch    = errors.New("signature does not match address")
	ErrNoKey             = errors.New("no private key or keystore configured")
)
