package store

import (
	"fmt"

	"github.com/MKhiriev/go-agreement-keeper/models"
	sq "github.com/Masterminds/squirrel"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const (
	// lockAddress serialises index assignment per address inside a
	// transaction.
	lockAddress = `SELECT pg_advisory_xact_lock(hashtext($1));`

	nextOwnerIndex  = "(SELECT COALESCE(MAX(idx) + 1, 0) FROM agreements WHERE owner = ?)"
	nextSignerIndex = "(SELECT COALESCE(MAX(idx) + 1, 0) FROM signature_packets WHERE signer = ?)"
	nextBlockNumber = "nextval('ledger_blocks')"
)

var agreementColumns = []string{
	"owner",
	"idx",
	"identifier",
	"content_identifier",
	"encrypted_content_identifier",
	"description_content_identifier",
	"signed_packet_count",
	"total_packet_count",
	"constraints",
	"status",
	"created_at",
}

var packetColumns = []string{
	"agreement_owner",
	"agreement_index",
	"idx",
	"identifier",
	"encrypted_content_identifier",
	"content_identifier",
	"signer",
	"created_at",
	"block_number",
}

func buildInsertAgreementQuery(owner string, record models.AgreementRecord, constraints []byte, total uint64) (string, []any, error) {
	query, args, err := psql.
		Insert("agreements").
		Columns(
			"owner",
			"idx",
			"identifier",
			"content_identifier",
			"encrypted_content_identifier",
			"description_content_identifier",
			"signed_packet_count",
			"total_packet_count",
			"constraints",
			"status",
			"block_number",
		).
		Values(
			owner,
			sq.Expr(nextOwnerIndex, owner),
			record.Identifier,
			record.ContentIdentifier,
			record.EncryptedContentIdentifier,
			record.DescriptionContentIdentifier,
			0,
			total,
			string(constraints),
			string(models.StatusFor(0, total)),
			sq.Expr(nextBlockNumber),
		).
		Suffix("RETURNING idx, block_number, created_at").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildLockAgreementQuery(owner string, index uint64) (string, []any, error) {
	query, args, err := psql.
		Select("constraints", "signed_packet_count", "total_packet_count").
		From("agreements").
		Where(sq.And{sq.Eq{"owner": owner}, sq.Eq{"idx": index}}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildUpdateAgreementProgressQuery(owner string, index uint64, constraints []byte, signed uint64, status models.AgreementStatus) (string, []any, error) {
	query, args, err := psql.
		Update("agreements").
		Set("constraints", string(constraints)).
		Set("signed_packet_count", signed).
		Set("status", string(status)).
		Where(sq.And{sq.Eq{"owner": owner}, sq.Eq{"idx": index}}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildInsertPacketQuery(signer string, record models.SignatureRecord) (string, []any, error) {
	query, args, err := psql.
		Insert("signature_packets").
		Columns(
			"signer",
			"idx",
			"agreement_owner",
			"agreement_index",
			"identifier",
			"encrypted_content_identifier",
			"content_identifier",
			"block_number",
		).
		Values(
			signer,
			sq.Expr(nextSignerIndex, signer),
			normalizeAddress(record.AgreementOwner),
			record.AgreementIndex,
			record.Identifier,
			record.EncryptedContentIdentifier,
			record.ContentIdentifier,
			sq.Expr(nextBlockNumber),
		).
		Suffix("RETURNING idx, block_number, created_at").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectAgreementQuery(owner string, index uint64) (string, []any, error) {
	query, args, err := psql.
		Select(agreementColumns...).
		From("agreements").
		Where(sq.And{sq.Eq{"owner": owner}, sq.Eq{"idx": index}}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildListAgreementsQuery(owner string, page models.Page) (string, []any, error) {
	query, args, err := psql.
		Select(agreementColumns...).
		From("agreements").
		Where(sq.Eq{"owner": owner}).
		OrderBy("idx").
		Limit(page.Limit).
		Offset(page.Offset).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildListSignaturesQuery(signer string, page models.Page) (string, []any, error) {
	query, args, err := psql.
		Select(packetColumns...).
		From("signature_packets").
		Where(sq.Eq{"signer": signer}).
		OrderBy("idx").
		Limit(page.Limit).
		Offset(page.Offset).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildProfileQuery(address string) (string, []any, error) {
	query, args, err := psql.
		Select().
		Column(sq.Expr("(SELECT COUNT(*) FROM agreements WHERE owner = ?)", address)).
		Column(sq.Expr("(SELECT COUNT(*) FROM signature_packets WHERE signer = ?)", address)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
