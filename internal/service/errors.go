package service

import "errors"

var (
	// ErrInvalidDataProvided marks input rejected before any signing prompt
	// or network call.
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidPage         = errors.New("page and page size must be positive")

	ErrUnsupportedKeyScheme = errors.New("unsupported key scheme")
	ErrInvalidDescription   = errors.New("invalid agreement description")

	// ErrKeyReuse is returned when a personal-sign key would encrypt a
	// document other than the one the agreement was created with.
	ErrKeyReuse = errors.New("document differs from agreement under personal-sign scheme")

	// ErrContentMismatch is returned when decrypted bytes do not identify to
	// the recorded content identifier.
	ErrContentMismatch = errors.New("decrypted document does not match its content identifier")

	ErrNotFound            = errors.New("not found")
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	ErrUnauthorized        = errors.New("unauthorized")

	ErrInvalidLoginSignature   = errors.New("invalid login signature")
	ErrLoginMessageExpired     = errors.New("login message expired")
	ErrLoginOnServer           = errors.New("error during login on server")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
