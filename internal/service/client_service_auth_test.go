package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/MKhiriev/go-agreement-keeper/internal/adapter"
	"github.com/MKhiriev/go-agreement-keeper/internal/app"
	"github.com/MKhiriev/go-agreement-keeper/internal/logger"
	"github.com/MKhiriev/go-agreement-keeper/internal/mock"
	"github.com/MKhiriev/go-agreement-keeper/internal/wallet"
	"github.com/MKhiriev/go-agreement-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestClientAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	ledger := mock.NewMockLedger(ctrl)
	signer := testSigner(t)

	issued := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	svc := NewClientAuthService(ledger, signer, logger.Nop()).(*clientAuthService)
	svc.now = func() time.Time { return issued }

	ledger.EXPECT().Login(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req models.LoginRequest) (models.Token, error) {
			assert.Equal(t, signer.Address(), req.Address)
			assert.Equal(t, wallet.LoginMessage(signer.Address(), issued), req.Message)
			require.NoError(t, wallet.VerifyPersonal(req.Address, req.Message, req.Signature))
			return models.Token{SignedString: "jwt", Address: req.Address}, nil
		},
	)

	token, err := svc.Login(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "jwt", token.String())
}

func TestClientAuthService_Login_Rejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	ledger := mock.NewMockLedger(ctrl)
	svc := NewClientAuthService(ledger, testSigner(t), logger.Nop())

	ledger.EXPECT().Login(gomock.Any(), gomock.Any()).
		Return(models.Token{}, fmt.Errorf("%w: %s", adapter.ErrUnauthorized, app.MsgLoginMessageExpired))

	_, err := svc.Login(context.Background())
	assert.ErrorIs(t, err, ErrLoginOnServer)
	assert.ErrorIs(t, err, ErrLoginMessageExpired)
}

func TestClientAuthService_Login_SignerError(t *testing.T) {
	ctrl := gomock.NewController(t)
	ledger := mock.NewMockLedger(ctrl)
	signer := mock.NewMockSigner(ctrl)

	locked := errors.New("wallet locked")
	signer.EXPECT().Address().Return(otherSigner)
	signer.EXPECT().Sign(gomock.Any(), gomock.Any()).Return(nil, locked)

	svc := NewClientAuthService(ledger, signer, logger.Nop())
	_, err := svc.Login(context.Background())
	assert.ErrorIs(t, err, locked)
}
