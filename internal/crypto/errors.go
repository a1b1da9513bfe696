package crypto

import "errors"

var (
	ErrInvalidContentIdentifier = errors.New("invalid content identifier")
	ErrInvalidSignature         = errors.New("invalid signature")
	ErrDecryptionFailed         = errors.New("decryption failed")
)
