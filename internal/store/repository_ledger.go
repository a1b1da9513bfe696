// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-agreement-keeper/internal/logger"
	"github.com/MKhiriev/go-agreement-keeper/internal/validators"
	"github.com/MKhiriev/go-agreement-keeper/models"
	"github.com/cenkalti/backoff/v4"
)

// maxTxAttempts bounds retries of transactions that fail with a retryable
// PostgreSQL error (serialization failure, deadlock).
const maxTxAttempts = 3

// ledgerRepository is the PostgreSQL-backed implementation of
// [LedgerRepository]. Agreements live in the "agreements" table, packets in
// "signature_packets"; both draw block numbers from the ledger_blocks
// sequence.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced with
// structured fields.
type ledgerRepository struct {
	*DB
	logger *logger.Logger
}

// NewLedgerRepository constructs a [LedgerRepository] backed by db.
func NewLedgerRepository(db *DB, logger *logger.Logger) LedgerRepository {
	logger.Debug().Msg("creating ledger repository")
	return &ledgerRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateAgreement implements [LedgerRepository].
//
// The owner's advisory lock is taken first so that concurrent submissions
// from one owner receive consecutive indices. A unique violation on
// (owner, identifier) is reported as [ErrAgreementExists].
func (r *ledgerRepository) CreateAgreement(ctx context.Context, owner string, record models.AgreementRecord) (models.Agreement, models.Receipt, error) {
	log := logger.FromContext(ctx)
	owner = normalizeAddress(owner)

	constraints, err := json.Marshal(record.Constraints)
	if err != nil {
		return models.Agreement{}, models.Receipt{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	total := models.TotalPacketCount(record.Constraints)

	query, args, err := buildInsertAgreementQuery(owner, record, constraints, total)
	if err != nil {
		log.Err(err).Str("func", "ledgerRepository.CreateAgreement").Msg("failed to create query")
		return models.Agreement{}, models.Receipt{}, err
	}

	var receipt models.Receipt
	err = r.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, lockAddress, owner); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		row := tx.QueryRowContext(ctx, query, args...)
		if err := row.Scan(&receipt.Index, &receipt.BlockNumber, &receipt.Timestamp); err != nil {
			if classifyPostgres(err) == Conflict {
				return ErrAgreementExists
			}
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "ledgerRepository.CreateAgreement").
			Str("owner", owner).
			Str("identifier", record.Identifier).
			Msg("failed to create agreement")
		return models.Agreement{}, models.Receipt{}, err
	}

	agreement := models.Agreement{
		Owner:                        owner,
		Index:                        receipt.Index,
		Identifier:                   record.Identifier,
		ContentIdentifier:            record.ContentIdentifier,
		EncryptedContentIdentifier:   record.EncryptedContentIdentifier,
		DescriptionContentIdentifier: record.DescriptionContentIdentifier,
		TotalPacketCount:             total,
		Constraints:                  record.Constraints,
		Status:                       models.StatusFor(0, total),
		CreatedAt:                    receipt.Timestamp,
	}

	return agreement, receipt, nil
}

// CreateSignature implements [LedgerRepository].
//
// Inside one transaction the agreement row is locked with SELECT … FOR
// UPDATE, the slot is authorised against the locked constraints, the slot
// and the agreement counters are written back, and the packet is inserted
// under the signer's next index. Nothing is written when authorisation
// fails.
func (r *ledgerRepository) CreateSignature(ctx context.Context, signer string, record models.SignatureRecord) (models.SignaturePacket, models.Receipt, error) {
	log := logger.FromContext(ctx)
	signer = normalizeAddress(signer)
	owner := normalizeAddress(record.AgreementOwner)

	var receipt models.Receipt
	err := r.inTx(ctx, func(tx *sql.Tx) error {
		query, args, err := buildLockAgreementQuery(owner, record.AgreementIndex)
		if err != nil {
			return err
		}

		var (
			rawConstraints []byte
			signed, total  uint64
		)
		if err = tx.QueryRowContext(ctx, query, args...).Scan(&rawConstraints, &signed, &total); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrAgreementNotFound
			}
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

		var constraints []models.SignatureConstraint
		if err = json.Unmarshal(rawConstraints, &constraints); err != nil {
			return fmt.Errorf("%w: %w", ErrCorruptedConstraints, err)
		}

		authorization, err := validators.Authorize(constraints, record.Identifier, signer)
		if err != nil {
			return err
		}
		constraints[authorization.Index] = authorization.Constraint
		signed++

		updated, err := json.Marshal(constraints)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		query, args, err = buildUpdateAgreementProgressQuery(owner, record.AgreementIndex, updated, signed, models.StatusFor(signed, total))
		if err != nil {
			return err
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		if _, err = tx.ExecContext(ctx, lockAddress, signer); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		query, args, err = buildInsertPacketQuery(signer, record)
		if err != nil {
			return err
		}
		if err = tx.QueryRowContext(ctx, query, args...).Scan(&receipt.Index, &receipt.BlockNumber, &receipt.Timestamp); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "ledgerRepository.CreateSignature").
			Str("signer", signer).
			Str("owner", owner).
			Uint64("agreement_index", record.AgreementIndex).
			Str("slot", record.Identifier).
			Msg("failed to create signature packet")
		return models.SignaturePacket{}, models.Receipt{}, err
	}

	packet := models.SignaturePacket{
		AgreementOwner:             owner,
		AgreementIndex:             record.AgreementIndex,
		Index:                      receipt.Index,
		Identifier:                 record.Identifier,
		EncryptedContentIdentifier: record.EncryptedContentIdentifier,
		ContentIdentifier:          record.ContentIdentifier,
		Signer:                     signer,
		Timestamp:                  receipt.Timestamp,
		BlockNumber:                receipt.BlockNumber,
	}

	return packet, receipt, nil
}

// GetAgreement implements [LedgerRepository].
func (r *ledgerRepository) GetAgreement(ctx context.Context, owner string, index uint64) (models.Agreement, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAgreementQuery(normalizeAddress(owner), index)
	if err != nil {
		log.Err(err).Str("func", "ledgerRepository.GetAgreement").Msg("failed to create query")
		return models.Agreement{}, err
	}

	agreement, err := scanAgreement(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Agreement{}, ErrAgreementNotFound
		}
		log.Err(err).
			Str("func", "ledgerRepository.GetAgreement").
			Str("owner", owner).
			Uint64("index", index).
			Msg("failed to scan agreement row")
		return models.Agreement{}, err
	}

	return agreement, nil
}

// ListAgreements implements [LedgerRepository]. Agreements are ordered by
// index.
func (r *ledgerRepository) ListAgreements(ctx context.Context, owner string, page models.Page) ([]models.Agreement, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListAgreementsQuery(normalizeAddress(owner), page)
	if err != nil {
		log.Err(err).Str("func", "ledgerRepository.ListAgreements").Msg("failed to create query")
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "ledgerRepository.ListAgreements").
			Str("owner", owner).
			Msg("failed to execute query for listing agreements")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	agreements := make([]models.Agreement, 0, page.Limit)
	for rows.Next() {
		agreement, scanErr := scanAgreement(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "ledgerRepository.ListAgreements").
				Str("owner", owner).
				Msg("failed to scan agreement row")
			return nil, scanErr
		}
		agreements = append(agreements, agreement)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "ledgerRepository.ListAgreements").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return agreements, nil
}

// ListSignatures implements [LedgerRepository]. Packets are ordered by the
// signer-scoped index.
func (r *ledgerRepository) ListSignatures(ctx context.Context, signer string, page models.Page) ([]models.SignaturePacket, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListSignaturesQuery(normalizeAddress(signer), page)
	if err != nil {
		log.Err(err).Str("func", "ledgerRepository.ListSignatures").Msg("failed to create query")
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "ledgerRepository.ListSignatures").
			Str("signer", signer).
			Msg("failed to execute query for listing signature packets")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	packets := make([]models.SignaturePacket, 0, page.Limit)
	for rows.Next() {
		packet, scanErr := scanPacket(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "ledgerRepository.ListSignatures").
				Str("signer", signer).
				Msg("failed to scan signature packet row")
			return nil, scanErr
		}
		packets = append(packets, packet)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "ledgerRepository.ListSignatures").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return packets, nil
}

// GetProfile implements [LedgerRepository].
func (r *ledgerRepository) GetProfile(ctx context.Context, address string) (models.Profile, error) {
	log := logger.FromContext(ctx)
	address = normalizeAddress(address)

	query, args, err := buildProfileQuery(address)
	if err != nil {
		log.Err(err).Str("func", "ledgerRepository.GetProfile").Msg("failed to create query")
		return models.Profile{}, err
	}

	profile := models.Profile{Address: address}
	if err = r.DB.QueryRowContext(ctx, query, args...).Scan(&profile.AgreementCount, &profile.SignatureCount); err != nil {
		log.Err(err).
			Str("func", "ledgerRepository.GetProfile").
			Str("address", address).
			Msg("failed to scan profile row")
		return models.Profile{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return profile, nil
}

// inTx runs fn in a transaction and commits it. Transactions aborted by a
// retryable error are attempted again; fn must therefore be idempotent up
// to its own writes.
func (r *ledgerRepository) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	attempt := func() error {
		tx, err := r.DB.BeginTx(ctx, nil)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("%w: %w", ErrBeginningTransaction, err))
		}
		defer tx.Rollback()

		if err = fn(tx); err != nil {
			return r.retryable(err)
		}

		if err = tx.Commit(); err != nil {
			return r.retryable(fmt.Errorf("%w: %w", ErrCommitingTransaction, err))
		}
		return nil
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = 20 * time.Millisecond

	err := backoff.Retry(attempt, backoff.WithContext(backoff.WithMaxRetries(policy, maxTxAttempts-1), ctx))

	var permanent *backoff.PermanentError
	if errors.As(err, &permanent) {
		return permanent.Err
	}
	return err
}

func (r *ledgerRepository) retryable(err error) error {
	if r.errorClassificator != nil && r.errorClassificator.Classify(err) == Retryable {
		return err
	}
	return backoff.Permanent(err)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAgreement(row rowScanner) (models.Agreement, error) {
	var (
		agreement      models.Agreement
		rawConstraints []byte
		status         string
	)

	err := row.Scan(
		&agreement.Owner,
		&agreement.Index,
		&agreement.Identifier,
		&agreement.ContentIdentifier,
		&agreement.EncryptedContentIdentifier,
		&agreement.DescriptionContentIdentifier,
		&agreement.SignedPacketCount,
		&agreement.TotalPacketCount,
		&rawConstraints,
		&status,
		&agreement.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Agreement{}, err
		}
		return models.Agreement{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if err = json.Unmarshal(rawConstraints, &agreement.Constraints); err != nil {
		return models.Agreement{}, fmt.Errorf("%w: %w", ErrCorruptedConstraints, err)
	}
	agreement.Status = models.AgreementStatus(status)

	return agreement, nil
}

func scanPacket(row rowScanner) (models.SignaturePacket, error) {
	var packet models.SignaturePacket

	err := row.Scan(
		&packet.AgreementOwner,
		&packet.AgreementIndex,
		&packet.Index,
		&packet.Identifier,
		&packet.EncryptedContentIdentifier,
		&packet.ContentIdentifier,
		&packet.Signer,
		&packet.Timestamp,
		&packet.BlockNumber,
	)
	if err != nil {
		return models.SignaturePacket{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return packet, nil
}
