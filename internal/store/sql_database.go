package store

import (
	"database/sql"
	"strings"

	"github.com/MKhiriev/go-agreement-keeper/internal/logger"
	"github.com/MKhiriev/go-agreement-keeper/migrations"
)

type DB struct {
	*sql.DB
	dialect            migrations.Dialect
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

func normalizeAddress(address string) string {
	return strings.ToLower(strings.TrimSpace(address))
}
