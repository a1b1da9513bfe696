// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	"github.com/MKhiriev/go-agreement-keeper/models"
	sq "github.com/Masterminds/squirrel"
)

var sqlite = sq.StatementBuilder.PlaceholderFormat(sq.Question)

const (
	upsertAgreementSuffix = `ON CONFLICT (owner, idx) DO UPDATE SET
			signed_packet_count = excluded.signed_packet_count,
			total_packet_count  = excluded.total_packet_count,
			constraints         = excluded.constraints,
			status              = excluded.status`

	insertPacketSuffix = `ON CONFLICT (signer, idx) DO NOTHING`
)

func buildUpsertLocalAgreementQuery(agreement models.Agreement, constraints []byte) (string, []any, error) {
	query, args, err := sqlite.
		Insert("agreements").
		Columns(agreementColumns...).
		Values(
			normalizeAddress(agreement.Owner),
			agreement.Index,
			agreement.Identifier,
			agreement.ContentIdentifier,
			agreement.EncryptedContentIdentifier,
			agreement.DescriptionContentIdentifier,
			agreement.SignedPacketCount,
			agreement.TotalPacketCount,
			string(constraints),
			string(agreement.Status),
			agreement.CreatedAt,
		).
		Suffix(upsertAgreementSuffix).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildInsertLocalPacketQuery(packet models.SignaturePacket) (string, []any, error) {
	query, args, err := sqlite.
		Insert("signature_packets").
		Columns(packetColumns...).
		Values(
			normalizeAddress(packet.AgreementOwner),
			packet.AgreementIndex,
			packet.Index,
			packet.Identifier,
			packet.EncryptedContentIdentifier,
			packet.ContentIdentifier,
			normalizeAddress(packet.Signer),
			packet.Timestamp,
			packet.BlockNumber,
		).
		Suffix(insertPacketSuffix).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectLocalAgreementsQuery(where sq.Sqlizer) (string, []any, error) {
	query, args, err := sqlite.
		Select(agreementColumns...).
		From("agreements").
		Where(where).
		OrderBy("idx").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectLocalPacketsQuery(where sq.Sqlizer) (string, []any, error) {
	query, args, err := sqlite.
		Select(packetColumns...).
		From("signature_packets").
		Where(where).
		OrderBy("block_number").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
