package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-agreement-keeper/internal/logger"
	"github.com/MKhiriev/go-agreement-keeper/models"
	sq "github.com/Masterminds/squirrel"
)

type localAgreementRepository struct {
	*DB
	logger *logger.Logger
}

func NewLocalAgreementRepository(db *DB, logger *logger.Logger) LocalAgreementRepository {
	return &localAgreementRepository{
		DB:     db,
		logger: logger,
	}
}

func (l *localAgreementRepository) SaveAgreements(ctx context.Context, agreements ...models.Agreement) error {
	log := logger.FromContext(ctx)

	for _, agreement := range agreements {
		constraints, err := json.Marshal(agreement.Constraints)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		query, args, err := buildUpsertLocalAgreementQuery(agreement, constraints)
		if err != nil {
			return err
		}

		result, err := l.DB.ExecContext(ctx, query, args...)
		if err != nil {
			log.Err(err).
				Str("func", "localAgreementRepository.SaveAgreements").
				Str("owner", agreement.Owner).
				Uint64("index", agreement.Index).
				Msg("failed to execute upsert for agreement")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if affected, _ := result.RowsAffected(); affected == 0 {
			return ErrAgreementNotSaved
		}
	}

	return nil
}

func (l *localAgreementRepository) GetAgreement(ctx context.Context, owner string, index uint64) (models.Agreement, error) {
	query, args, err := buildSelectLocalAgreementsQuery(sq.And{
		sq.Eq{"owner": normalizeAddress(owner)},
		sq.Eq{"idx": index},
	})
	if err != nil {
		return models.Agreement{}, err
	}

	agreement, err := scanAgreement(l.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Agreement{}, ErrAgreementNotFound
		}
		logger.FromContext(ctx).Err(err).
			Str("func", "localAgreementRepository.GetAgreement").
			Str("owner", owner).
			Uint64("index", index).
			Msg("failed to scan agreement row")
		return models.Agreement{}, err
	}

	return agreement, nil
}

func (l *localAgreementRepository) ListAgreements(ctx context.Context, owner string) ([]models.Agreement, error) {
	query, args, err := buildSelectLocalAgreementsQuery(sq.Eq{"owner": normalizeAddress(owner)})
	if err != nil {
		return nil, err
	}

	rows, err := l.DB.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "localAgreementRepository.ListAgreements").
			Str("owner", owner).
			Msg("failed to query local agreements")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var agreements []models.Agreement
	for rows.Next() {
		agreement, scanErr := scanAgreement(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		agreements = append(agreements, agreement)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return agreements, nil
}

func (l *localAgreementRepository) SaveSignatures(ctx context.Context, packets ...models.SignaturePacket) error {
	log := logger.FromContext(ctx)

	for _, packet := range packets {
		query, args, err := buildInsertLocalPacketQuery(packet)
		if err != nil {
			return err
		}

		if _, err = l.DB.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "localAgreementRepository.SaveSignatures").
				Str("signer", packet.Signer).
				Uint64("index", packet.Index).
				Msg("failed to insert signature packet")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	return nil
}

func (l *localAgreementRepository) ListSignatures(ctx context.Context, signer string) ([]models.SignaturePacket, error) {
	return l.listPackets(ctx, sq.Eq{"signer": normalizeAddress(signer)})
}

func (l *localAgreementRepository) ListAgreementSignatures(ctx context.Context, owner string, index uint64) ([]models.SignaturePacket, error) {
	return l.listPackets(ctx, sq.And{
		sq.Eq{"agreement_owner": normalizeAddress(owner)},
		sq.Eq{"agreement_index": index},
	})
}

func (l *localAgreementRepository) listPackets(ctx context.Context, where sq.Sqlizer) ([]models.SignaturePacket, error) {
	query, args, err := buildSelectLocalPacketsQuery(where)
	if err != nil {
		return nil, err
	}

	rows, err := l.DB.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "localAgreementRepository.listPackets").
			Msg("failed to query local signature packets")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var packets []models.SignaturePacket
	for rows.Next() {
		packet, scanErr := scanPacket(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		packets = append(packets, packet)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return packets, nil
}
