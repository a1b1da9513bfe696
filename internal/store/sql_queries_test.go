// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	"github.com/MKhiriev/go-agreement-keeper/models"
	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	ownerAddr  = "0x1111111111111111111111111111111111111111"
	signerAddr = "0x2222222222222222222222222222222222222222"
)

func Test_buildInsertAgreementQuery(t *testing.T) {
	record := models.AgreementRecord{
		Identifier:                   "lease",
		ContentIdentifier:            "bafy-doc",
		EncryptedContentIdentifier:   "bafy-enc",
		DescriptionContentIdentifier: "bafy-desc",
	}

	query, args, err := buildInsertAgreementQuery(ownerAddr, record, []byte(`[]`), 3)
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.Contains(t, q, "insert into agreements")
	assert.Contains(t, q, "coalesce(max(idx) + 1, 0)")
	assert.Contains(t, q, "nextval('ledger_blocks')")
	assert.Contains(t, q, "returning idx, block_number, created_at")

	// placeholder format should be $n (Postgres)
	assert.Contains(t, query, "$1")
	assert.NotContains(t, query, "?")

	require.Len(t, args, 10)
	assert.Equal(t, ownerAddr, args[0])
	assert.Equal(t, ownerAddr, args[1])
	assert.Equal(t, "lease", args[2])
	assert.Equal(t, "[]", args[8])
	assert.Equal(t, string(models.AgreementStatusActive), args[9])
}

func Test_buildLockAgreementQuery(t *testing.T) {
	query, args, err := buildLockAgreementQuery(ownerAddr, 4)
	require.NoError(t, err)

	assert.Equal(t, "SELECT constraints, signed_packet_count, total_packet_count FROM agreements WHERE (owner = $1 AND idx = $2) FOR UPDATE", query)
	assert.Equal(t, []any{ownerAddr, uint64(4)}, args)
}

func Test_buildUpdateAgreementProgressQuery(t *testing.T) {
	query, args, err := buildUpdateAgreementProgressQuery(ownerAddr, 2, []byte(`[{"identifier":"a"}]`), 5, models.AgreementStatusCompleted)
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.True(t, strings.HasPrefix(q, "update agreements set constraints = $1"))
	assert.Contains(t, q, "signed_packet_count = $2")
	assert.Contains(t, q, "status = $3")
	assert.Contains(t, q, "where (owner = $4 and idx = $5)")
	assert.Equal(t, []any{`[{"identifier":"a"}]`, uint64(5), "completed", ownerAddr, uint64(2)}, args)
}

func Test_buildInsertPacketQuery(t *testing.T) {
	record := models.SignatureRecord{
		AgreementOwner:             strings.ToUpper(ownerAddr[:2]) + ownerAddr[2:],
		AgreementIndex:             1,
		Identifier:                 "employee",
		EncryptedContentIdentifier: "bafy-enc",
		ContentIdentifier:          "bafy-doc",
	}

	query, args, err := buildInsertPacketQuery(signerAddr, record)
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.Contains(t, q, "insert into signature_packets")
	assert.Contains(t, q, "from signature_packets where signer = $2")
	require.Len(t, args, 7)
	assert.Equal(t, signerAddr, args[0])
	assert.Equal(t, strings.ToLower(record.AgreementOwner), args[2])
}

func Test_buildListQueries_Paging(t *testing.T) {
	tests := []struct {
		name  string
		build func() (string, []any, error)
		table string
	}{
		{
			name:  "agreements",
			build: func() (string, []any, error) { return buildListAgreementsQuery(ownerAddr, models.Page{Offset: 20, Limit: 10}) },
			table: "from agreements where owner = $1",
		},
		{
			name:  "signatures",
			build: func() (string, []any, error) { return buildListSignaturesQuery(signerAddr, models.Page{Offset: 20, Limit: 10}) },
			table: "from signature_packets where signer = $1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := tt.build()
			require.NoError(t, err)

			q := strings.ToLower(query)
			assert.Contains(t, q, tt.table)
			assert.Contains(t, q, "order by idx limit 10 offset 20")
			assert.Len(t, args, 1)
		})
	}
}

func Test_buildProfileQuery(t *testing.T) {
	query, args, err := buildProfileQuery(ownerAddr)
	require.NoError(t, err)

	assert.Equal(t, "SELECT (SELECT COUNT(*) FROM agreements WHERE owner = $1), (SELECT COUNT(*) FROM signature_packets WHERE signer = $2)", query)
	assert.Equal(t, []any{ownerAddr, ownerAddr}, args)
}

func Test_buildUpsertLocalAgreementQuery(t *testing.T) {
	query, args, err := buildUpsertLocalAgreementQuery(models.Agreement{Owner: ownerAddr, Index: 1, Status: models.AgreementStatusActive}, []byte(`[]`))
	require.NoError(t, err)

	assert.Contains(t, query, "INSERT INTO agreements")
	assert.Contains(t, query, "ON CONFLICT (owner, idx) DO UPDATE SET")
	assert.Contains(t, query, "?")
	assert.NotContains(t, query, "$1")
	assert.Len(t, args, len(agreementColumns))
}

func Test_buildSelectLocalPacketsQuery(t *testing.T) {
	query, args, err := buildSelectLocalPacketsQuery(sq.Eq{"signer": signerAddr})
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(query, "FROM signature_packets WHERE signer = ? ORDER BY block_number"))
	assert.Equal(t, []any{signerAddr}, args)
}
