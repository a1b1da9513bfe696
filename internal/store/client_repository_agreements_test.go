package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-agreement-keeper/internal/logger"
	"github.com/MKhiriev/go-agreement-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLocalRepo(t *testing.T) (*localAgreementRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	l := logger.Nop()
	return &localAgreementRepository{DB: &DB{DB: db, logger: l}, logger: l}, mock
}

func TestLocalSaveAgreements_Upserts(t *testing.T) {
	repo, mock := newTestLocalRepo(t)

	agreements := []models.Agreement{
		{Owner: "0xABCDEF0000000000000000000000000000000000", Index: 0, Status: models.AgreementStatusActive},
		{Owner: ownerAddr, Index: 1, Status: models.AgreementStatusCompleted},
	}

	mock.ExpectExec("INSERT INTO agreements .* ON CONFLICT \\(owner, idx\\) DO UPDATE").
		WithArgs("0xabcdef0000000000000000000000000000000000", sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
			sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), "null", "active", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO agreements").WillReturnResult(sqlmock.NewResult(2, 1))

	require.NoError(t, repo.SaveAgreements(context.Background(), agreements...))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLocalSaveAgreements_NothingSaved(t *testing.T) {
	repo, mock := newTestLocalRepo(t)

	mock.ExpectExec("INSERT INTO agreements").WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SaveAgreements(context.Background(), models.Agreement{Owner: ownerAddr})
	assert.ErrorIs(t, err, ErrAgreementNotSaved)
}

func TestLocalSaveAgreements_ExecError(t *testing.T) {
	repo, mock := newTestLocalRepo(t)

	mock.ExpectExec("INSERT INTO agreements").WillReturnError(errors.New("disk full"))

	err := repo.SaveAgreements(context.Background(), models.Agreement{Owner: ownerAddr})
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestLocalGetAgreement(t *testing.T) {
	repo, mock := newTestLocalRepo(t)

	mock.ExpectQuery("SELECT owner, idx").WithArgs(ownerAddr, uint64(2)).
		WillReturnRows(sqlmock.NewRows(agreementColumns).
			AddRow(ownerAddr, 2, "lease", "c", "e", "d", 0, 1, `[{"identifier":"tenant","signer":"*","totalUsed":0,"allowedToUse":1}]`, "active", time.Now()))

	got, err := repo.GetAgreement(context.Background(), ownerAddr, 2)
	require.NoError(t, err)
	assert.Equal(t, "lease", got.Identifier)
	require.Len(t, got.Constraints, 1)
}

func TestLocalGetAgreement_NotFound(t *testing.T) {
	repo, mock := newTestLocalRepo(t)

	mock.ExpectQuery("SELECT owner, idx").WillReturnRows(sqlmock.NewRows(agreementColumns))

	_, err := repo.GetAgreement(context.Background(), ownerAddr, 2)
	assert.ErrorIs(t, err, ErrAgreementNotFound)
}

func TestLocalListAgreements(t *testing.T) {
	repo, mock := newTestLocalRepo(t)
	now := time.Now()

	mock.ExpectQuery("SELECT owner, idx .* WHERE owner = \\? ORDER BY idx").WithArgs(ownerAddr).
		WillReturnRows(sqlmock.NewRows(agreementColumns).
			AddRow(ownerAddr, 0, "a", "c", "e", "d", 0, 0, `[]`, "active", now).
			AddRow(ownerAddr, 1, "b", "c", "e", "d", 0, 0, `[]`, "active", now))

	got, err := repo.ListAgreements(context.Background(), ownerAddr)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestLocalSaveSignatures_IgnoresExisting(t *testing.T) {
	repo, mock := newTestLocalRepo(t)

	mock.ExpectExec("INSERT INTO signature_packets .* ON CONFLICT \\(signer, idx\\) DO NOTHING").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SaveSignatures(context.Background(), models.SignaturePacket{Signer: signerAddr, AgreementOwner: ownerAddr})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLocalListSignatures(t *testing.T) {
	repo, mock := newTestLocalRepo(t)

	mock.ExpectQuery("FROM signature_packets WHERE signer = \\?").WithArgs(signerAddr).
		WillReturnRows(sqlmock.NewRows(packetColumns).
			AddRow(ownerAddr, 0, 0, "employee", "e", "c", signerAddr, time.Now(), 5))

	got, err := repo.ListSignatures(context.Background(), signerAddr)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "employee", got[0].Identifier)
}

func TestLocalListAgreementSignatures(t *testing.T) {
	repo, mock := newTestLocalRepo(t)

	mock.ExpectQuery("WHERE \\(agreement_owner = \\? AND agreement_index = \\?\\)").WithArgs(ownerAddr, uint64(4)).
		WillReturnRows(sqlmock.NewRows(packetColumns))

	got, err := repo.ListAgreementSignatures(context.Background(), ownerAddr, 4)
	require.NoError(t, err)
	assert.Empty(t, got)
}
