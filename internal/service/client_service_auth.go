package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-agreement-keeper/internal/adapter"
	"github.com/MKhiriev/go-agreement-keeper/internal/logger"
	"github.com/MKhiriev/go-agreement-keeper/internal/wallet"
	"github.com/MKhiriev/go-agreement-keeper/models"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

type clientAuthService struct {
	ledger adapter.Ledger
	signer wallet.Signer

	now func() time.Time

	logger *logger.Logger
}

func NewClientAuthService(ledger adapter.Ledger, signer wallet.Signer, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{ledger: ledger, signer: signer, now: time.Now, logger: logger}
}

func (a *clientAuthService) Login(ctx context.Context) (models.Token, error) {
	address := a.signer.Address()
	message := wallet.LoginMessage(address, a.now())

	signature, err := a.signer.Sign(ctx, []byte(message))
	if err != nil {
		return models.Token{}, fmt.Errorf("error signing login message: %w", err)
	}

	token, err := a.ledger.Login(ctx, models.LoginRequest{
		Address:   address,
		Message:   message,
		Signature: hexutil.Encode(signature),
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "clientAuthService.Login").Str("address", address).Msg("ledger login failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrLoginOnServer, mapAdapterError(err))
	}

	return token, nil
}
