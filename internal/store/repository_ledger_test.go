package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-agreement-keeper/internal/logger"
	"github.com/MKhiriev/go-agreement-keeper/internal/validators"
	"github.com/MKhiriev/go-agreement-keeper/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLedgerRepo(t *testing.T) (*ledgerRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	l := logger.Nop()
	repo := &ledgerRepository{
		DB:     &DB{DB: db, logger: l, errorClassificator: NewPostgresErrorClassifier()},
		logger: l,
	}
	return repo, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

var (
	lockSQL        = regexp.QuoteMeta("SELECT pg_advisory_xact_lock(hashtext($1));")
	lockRowSQL     = regexp.QuoteMeta("SELECT constraints, signed_packet_count, total_packet_count FROM agreements WHERE (owner = $1 AND idx = $2) FOR UPDATE")
	insertAgreeSQL = "INSERT INTO agreements"
	insertPackSQL  = "INSERT INTO signature_packets"
	updateAgreeSQL = "UPDATE agreements SET"
)

func employeeRecord() models.AgreementRecord {
	return models.AgreementRecord{
		Identifier:                   "contract",
		ContentIdentifier:            "bafy-doc",
		EncryptedContentIdentifier:   "bafy-enc",
		DescriptionContentIdentifier: "bafy-desc",
		Constraints: []models.SignatureConstraint{
			{Identifier: "employee", Signer: models.WildcardSigner, AllowedToUse: 1},
		},
	}
}

// ── CreateAgreement ─────────────────────────────────────────────────────────

func TestCreateAgreement_Success(t *testing.T) {
	repo, mock := newTestLedgerRepo(t)
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectExec(lockSQL).WithArgs(ownerAddr).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(insertAgreeSQL).
		WillReturnRows(sqlmock.NewRows([]string{"idx", "block_number", "created_at"}).AddRow(0, 17, now))
	mock.ExpectCommit()

	// mixed-case owner is stored lower-cased
	agreement, receipt, err := repo.CreateAgreement(context.Background(), "0x1111111111111111111111111111111111111111", employeeRecord())
	require.NoError(t, err)

	assert.Equal(t, uint64(0), receipt.Index)
	assert.Equal(t, uint64(17), receipt.BlockNumber)
	assert.Equal(t, ownerAddr, agreement.Owner)
	assert.Equal(t, uint64(1), agreement.TotalPacketCount)
	assert.Equal(t, models.AgreementStatusActive, agreement.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAgreement_DuplicateIdentifier(t *testing.T) {
	repo, mock := newTestLedgerRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(lockSQL).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(insertAgreeSQL).WillReturnError(pgError(pgerrcode.UniqueViolation))
	mock.ExpectRollback()

	_, _, err := repo.CreateAgreement(context.Background(), ownerAddr, employeeRecord())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAgreementExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAgreement_RetriesSerializationFailure(t *testing.T) {
	repo, mock := newTestLedgerRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(lockSQL).WillReturnError(pgError(pgerrcode.SerializationFailure))
	mock.ExpectRollback()

	mock.ExpectBegin()
	mock.ExpectExec(lockSQL).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(insertAgreeSQL).
		WillReturnRows(sqlmock.NewRows([]string{"idx", "block_number", "created_at"}).AddRow(1, 2, time.Now()))
	mock.ExpectCommit()

	_, receipt, err := repo.CreateAgreement(context.Background(), ownerAddr, employeeRecord())
	require.NoError(t, err)
	assert.Equal(t, uint64(1), receipt.Index)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAgreement_BeginFails(t *testing.T) {
	repo, mock := newTestLedgerRepo(t)

	mock.ExpectBegin().WillReturnError(errors.New("conn refused"))

	_, _, err := repo.CreateAgreement(context.Background(), ownerAddr, employeeRecord())
	assert.ErrorIs(t, err, ErrBeginningTransaction)
}

// ── CreateSignature ─────────────────────────────────────────────────────────

func signatureRecord() models.SignatureRecord {
	return models.SignatureRecord{
		AgreementOwner:             ownerAddr,
		AgreementIndex:             0,
		Identifier:                 "employee",
		EncryptedContentIdentifier: "bafy-enc-2",
		ContentIdentifier:          "bafy-doc-2",
	}
}

func TestCreateSignature_Success(t *testing.T) {
	repo, mock := newTestLedgerRepo(t)
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(lockRowSQL).WithArgs(ownerAddr, uint64(0)).
		WillReturnRows(sqlmock.NewRows([]string{"constraints", "signed_packet_count", "total_packet_count"}).
			AddRow([]byte(`[{"identifier":"employee","signer":"*","totalUsed":0,"allowedToUse":1}]`), 0, 1))
	mock.ExpectExec(updateAgreeSQL).
		WithArgs(`[{"identifier":"employee","signer":"*","totalUsed":1,"allowedToUse":1}]`, sqlmock.AnyArg(), "completed", ownerAddr, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(lockSQL).WithArgs(signerAddr).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(insertPackSQL).
		WillReturnRows(sqlmock.NewRows([]string{"idx", "block_number", "created_at"}).AddRow(0, 18, now))
	mock.ExpectCommit()

	packet, receipt, err := repo.CreateSignature(context.Background(), signerAddr, signatureRecord())
	require.NoError(t, err)

	assert.Equal(t, uint64(18), receipt.BlockNumber)
	assert.Equal(t, signerAddr, packet.Signer)
	assert.Equal(t, "employee", packet.Identifier)
	assert.Equal(t, "bafy-doc-2", packet.ContentIdentifier)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateSignature_Denials(t *testing.T) {
	tests := []struct {
		name        string
		constraints string
		slot        string
		want        error
	}{
		{
			name:        "exhausted slot",
			constraints: `[{"identifier":"employee","signer":"*","totalUsed":1,"allowedToUse":1}]`,
			slot:        "employee",
			want:        validators.ErrExhaustedSlot,
		},
		{
			name:        "wrong signer",
			constraints: `[{"identifier":"employee","signer":"0x3333333333333333333333333333333333333333","totalUsed":0,"allowedToUse":1}]`,
			slot:        "employee",
			want:        validators.ErrWrongSigner,
		},
		{
			name:        "no such slot",
			constraints: `[{"identifier":"employee","signer":"*","totalUsed":0,"allowedToUse":1}]`,
			slot:        "manager",
			want:        validators.ErrNoSuchSlot,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestLedgerRepo(t)

			mock.ExpectBegin()
			mock.ExpectQuery(lockRowSQL).
				WillReturnRows(sqlmock.NewRows([]string{"constraints", "signed_packet_count", "total_packet_count"}).
					AddRow([]byte(tt.constraints), 0, 1))
			mock.ExpectRollback()

			record := signatureRecord()
			record.Identifier = tt.slot

			_, _, err := repo.CreateSignature(context.Background(), signerAddr, record)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCreateSignature_AgreementNotFound(t *testing.T) {
	repo, mock := newTestLedgerRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(lockRowSQL).WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	_, _, err := repo.CreateSignature(context.Background(), signerAddr, signatureRecord())
	assert.ErrorIs(t, err, ErrAgreementNotFound)
}

func TestCreateSignature_CorruptedConstraints(t *testing.T) {
	repo, mock := newTestLedgerRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(lockRowSQL).
		WillReturnRows(sqlmock.NewRows([]string{"constraints", "signed_packet_count", "total_packet_count"}).
			AddRow([]byte(`{not json`), 0, 1))
	mock.ExpectRollback()

	_, _, err := repo.CreateSignature(context.Background(), signerAddr, signatureRecord())
	assert.ErrorIs(t, err, ErrCorruptedConstraints)
}

// ── Queries ─────────────────────────────────────────────────────────────────

func agreementRows() *sqlmock.Rows {
	return sqlmock.NewRows(agreementColumns)
}

func TestGetAgreement(t *testing.T) {
	repo, mock := newTestLedgerRepo(t)
	now := time.Now()

	mock.ExpectQuery("SELECT owner, idx").WithArgs(ownerAddr, uint64(3)).
		WillReturnRows(agreementRows().AddRow(
			ownerAddr, 3, "lease", "bafy-doc", "bafy-enc", "bafy-desc", 1, 2,
			[]byte(`[{"identifier":"tenant","signer":"*","totalUsed":1,"allowedToUse":2}]`), "active", now,
		))

	got, err := repo.GetAgreement(context.Background(), ownerAddr, 3)
	require.NoError(t, err)
	assert.Equal(t, "lease", got.Identifier)
	require.Len(t, got.Constraints, 1)
	assert.Equal(t, uint64(1), got.Constraints[0].TotalUsed)
	assert.Equal(t, models.AgreementStatusActive, got.Status)
}

func TestGetAgreement_NotFound(t *testing.T) {
	repo, mock := newTestLedgerRepo(t)

	mock.ExpectQuery("SELECT owner, idx").WillReturnRows(agreementRows())

	_, err := repo.GetAgreement(context.Background(), ownerAddr, 9)
	assert.ErrorIs(t, err, ErrAgreementNotFound)
}

func TestListAgreements(t *testing.T) {
	repo, mock := newTestLedgerRepo(t)
	now := time.Now()

	mock.ExpectQuery("SELECT owner, idx .* LIMIT 2 OFFSET 0").WithArgs(ownerAddr).
		WillReturnRows(agreementRows().
			AddRow(ownerAddr, 0, "a", "c0", "e0", "d0", 0, 1, []byte(`[]`), "active", now).
			AddRow(ownerAddr, 1, "b", "c1", "e1", "d1", 1, 1, []byte(`[]`), "completed", now))

	got, err := repo.ListAgreements(context.Background(), ownerAddr, models.Page{Offset: 0, Limit: 2})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, models.AgreementStatusCompleted, got[1].Status)
}

func TestListAgreements_QueryError(t *testing.T) {
	repo, mock := newTestLedgerRepo(t)

	mock.ExpectQuery("SELECT owner, idx").WillReturnError(errors.New("boom"))

	_, err := repo.ListAgreements(context.Background(), ownerAddr, models.Page{Limit: 10})
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestListSignatures(t *testing.T) {
	repo, mock := newTestLedgerRepo(t)
	now := time.Now()

	mock.ExpectQuery("SELECT agreement_owner").WithArgs(signerAddr).
		WillReturnRows(sqlmock.NewRows(packetColumns).
			AddRow(ownerAddr, 0, 0, "employee", "bafy-enc", "bafy-doc", signerAddr, now, 18))

	got, err := repo.ListSignatures(context.Background(), signerAddr, models.Page{Limit: 10})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, uint64(18), got[0].BlockNumber)
}

func TestGetProfile(t *testing.T) {
	repo, mock := newTestLedgerRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT (SELECT COUNT(*) FROM agreements")).WithArgs(ownerAddr, ownerAddr).
		WillReturnRows(sqlmock.NewRows([]string{"a", "s"}).AddRow(2, 7))

	got, err := repo.GetProfile(context.Background(), ownerAddr)
	require.NoError(t, err)
	assert.Equal(t, models.Profile{Address: ownerAddr, AgreementCount: 2, SignatureCount: 7}, got)
}

func TestPostgresErrorClassifier(t *testing.T) {
	c := NewPostgresErrorClassifier()

	assert.Equal(t, Retryable, c.Classify(pgError(pgerrcode.DeadlockDetected)))
	assert.Equal(t, Retryable, c.Classify(pgError(pgerrcode.ConnectionFailure)))
	assert.Equal(t, Retryable, c.Classify(pgError(pgerrcode.LockNotAvailable)))
	assert.Equal(t, Retryable, c.Classify(fmt.Errorf("wrapped: %w", pgError(pgerrcode.SQLClientUnableToEstablishSQLConnection))))
	assert.Equal(t, Conflict, c.Classify(pgError(pgerrcode.UniqueViolation)))
	assert.Equal(t, NonRetryable, c.Classify(pgError(pgerrcode.CheckViolation)))
	assert.Equal(t, NonRetryable, c.Classify(errors.New("plain")))
	assert.Equal(t, NonRetryable, c.Classify(nil))
}
