package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-agreement-keeper/internal/config"
	"github.com/MKhiriev/go-agreement-keeper/internal/logger"
	"github.com/MKhiriev/go-agreement-keeper/internal/utils"
	"github.com/MKhiriev/go-agreement-keeper/internal/validators"
	"github.com/MKhiriev/go-agreement-keeper/internal/wallet"
	"github.com/MKhiriev/go-agreement-keeper/models"
)

// defaultLoginSkew applies when no skew is configured.
const defaultLoginSkew = 5 * time.Minute

// authService is the concrete implementation of AuthService.
// It verifies wallet-signed login messages and manages the JWT token
// lifecycle.
type authService struct {
	validator validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// loginSkew bounds how far the issued time of a login message may be
	// from the server clock in either direction.
	loginSkew time.Duration

	now func() time.Time

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService populated with security
// parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(cfg config.App, logger *logger.Logger) AuthService {
	skew := cfg.LoginSkew
	if skew <= 0 {
		skew = defaultLoginSkew
	}

	return &authService{
		validator:     validators.NewAgreementValidator(),
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		loginSkew:     skew,
		now:           time.Now,
		logger:        logger,
	}
}

// Login authenticates the holder of an address.
//
// The message must be a login message naming request.Address, issued within
// the configured skew, and signed by that address.
//
// Returns the session token or:
//   - ErrInvalidDataProvided if the request is incomplete or malformed.
//   - ErrLoginMessageExpired if the issued time is outside the skew.
//   - ErrInvalidLoginSignature if the signature does not recover to the address.
//   - ErrTokenCreationFailed if JWT generation fails.
func (a *authService) Login(ctx context.Context, request models.LoginRequest) (models.Token, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, request); err != nil {
		log.Err(err).Str("address", request.Address).Msg("invalid login request")
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	address, issued, err := wallet.ParseLoginMessage(request.Message)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if !models.SameAddress(address, request.Address) {
		log.Warn().Str("address", request.Address).Str("message_address", address).Msg("login message names another address")
		return models.Token{}, ErrInvalidLoginSignature
	}

	if drift := a.now().Sub(issued); drift > a.loginSkew || drift < -a.loginSkew {
		log.Warn().Str("address", request.Address).Dur("drift", drift).Msg("login message outside accepted skew")
		return models.Token{}, ErrLoginMessageExpired
	}

	if err = wallet.VerifyPersonal(request.Address, request.Message, request.Signature); err != nil {
		log.Warn().Err(err).Str("address", request.Address).Msg("login signature rejected")
		return models.Token{}, errors.Join(ErrInvalidLoginSignature, err)
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, request.Address, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect low-level
// JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
