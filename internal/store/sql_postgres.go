package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-agreement-keeper/internal/config"
	"github.com/MKhiriev/go-agreement-keeper/internal/logger"
	"github.com/MKhiriev/go-agreement-keeper/migrations"
	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// maxConnectAttempts bounds the startup ping loop.
const maxConnectAttempts = 8

func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	// establish connection
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	// setup connections
	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	classifier := NewPostgresErrorClassifier()

	// ping database until it accepts connections
	ping := func() error {
		pingErr := conn.PingContext(ctx)
		if pingErr == nil {
			return nil
		}
		var pgErr *pgconn.PgError
		if errors.As(pingErr, &pgErr) && classifier.Classify(pingErr) == NonRetryable {
			return backoff.Permanent(pingErr)
		}
		return pingErr
	}
	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxConnectAttempts), ctx)
	notify := func(err error, wait time.Duration) {
		log.Warn().Err(err).Str("func", "NewConnectPostgres").Dur("retry_in", wait).Msg("database is not ready")
	}

	if err = backoff.RetryNotify(ping, policy, notify); err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, fmt.Errorf("%w: %w", ErrConnectingDatabase, err)
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	// construct a DB struct
	db := &DB{
		DB:                 conn,
		dialect:            migrations.Postgres,
		logger:             log,
		errorClassificator: classifier,
	}

	return db, nil
}
