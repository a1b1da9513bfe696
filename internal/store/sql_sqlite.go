package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-agreement-keeper/internal/config"
	"github.com/MKhiriev/go-agreement-keeper/internal/logger"
	"github.com/MKhiriev/go-agreement-keeper/migrations"
)

// sqlitePragmas are go-sqlite3 connection parameters: wait on a locked
// database instead of failing, enforce foreign keys, and journal in WAL mode
// so the sync job can write while the TUI reads.
var sqlitePragmas = []string{"_busy_timeout=5000", "_foreign_keys=on", "_journal_mode=WAL"}

// NewConnectSQLite opens the client's local agreement cache at cfg.DSN,
// creating the parent directory on first run.
func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	path := strings.TrimSpace(cfg.DSN)
	if path == "" {
		return nil, fmt.Errorf("%w: empty sqlite path", ErrConnectingDatabase)
	}
	if err := ensureParentDir(path); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Str("path", path).Msg("cannot prepare database directory")
		return nil, err
	}

	conn, err := sql.Open("sqlite3", sqliteDSN(path))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConnectingDatabase, err)
	}
	// one writer; go-sqlite3 serialises anyway and this avoids SQLITE_BUSY storms
	conn.SetMaxOpenConns(1)

	if err = conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		log.Err(err).Str("func", "NewConnectSQLite").Str("path", path).Msg("sqlite ping failed")
		return nil, fmt.Errorf("%w: %w", ErrConnectingDatabase, err)
	}
	log.Debug().Str("func", "NewConnectSQLite").Str("path", path).Msg("local database ready")

	return &DB{DB: conn, dialect: migrations.SQLite, logger: log}, nil
}

// sqliteDSN appends sqlitePragmas to a plain path or file: URI, keeping any
// parameters the user already set.
func sqliteDSN(path string) string {
	if path == ":memory:" {
		return path
	}
	base, query, _ := strings.Cut(path, "?")
	params := make([]string, 0, len(sqlitePragmas)+1)
	if query != "" {
		params = append(params, query)
	}
	for _, p := range sqlitePragmas {
		key, _, _ := strings.Cut(p, "=")
		if !strings.Contains(query, key+"=") {
			params = append(params, p)
		}
	}
	if !strings.HasPrefix(base, "file:") {
		base = "file:" + base
	}
	return base + "?" + strings.Join(params, "&")
}

func ensureParentDir(path string) error {
	if path == ":memory:" {
		return nil
	}
	file, _, _ := strings.Cut(strings.TrimPrefix(path, "file:"), "?")
	dir := filepath.Dir(file)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("error creating DB dir: %w", err)
	}
	return nil
}
