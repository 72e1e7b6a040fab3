package postgres

import (
	"context"
	"errors"
	"fmt"
	"moviecatalog/pkg/kvstore"
	"moviecatalog/pkg/logging"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

const tracerID = "kvstore-postgres"

// pool is the subset of *pgxpool.Pool the store uses.
type pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Close()
}

// Store defines a PostgreSQL-backed key-value store.
type Store struct {
	pool   pool
	logger *zap.Logger
}

// New connects a pool to dsn and returns the store.
func New(ctx context.Context, dsn string, logger *zap.Logger) (*Store, error) {
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("invalid database DSN: %w", err)
	}
	config.MaxConns = 10
	config.MaxConnIdleTime = 30 * time.Minute
	config.HealthCheckPeriod = time.Minute

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	p, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return NewWithPool(p, logger), nil
}

// NewWithPool creates a store over an existing pool.
func NewWithPool(p pool, logger *zap.Logger) *Store {
	logger = logger.With(
		zap.String(logging.FieldComponent, "kvstore"),
		zap.String(logging.FieldType, "postgres"),
	)
	return &Store{pool: p, logger: logger}
}

// Migrate creates the kv table if it does not exist yet.
func (s *Store) Migrate(ctx context.Context) error {
	s.logger.Info("Ensuring key-value table", zap.String("table", "kv"))
	_, err := s.pool.Exec(ctx, `CREATE TABLE IF NOT EXISTS kv (k TEXT PRIMARY KEY, v BYTEA NOT NULL)`)
	return err
}

// Close releases the pool.
func (s *Store) Close() error {
	s.pool.Close()
	return nil
}

// Get retrieves the value stored under key.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	ctx, span := otel.Tracer(tracerID).Start(ctx, "Store/Get")
	defer span.End()
	var v []byte
	if err := s.pool.QueryRow(ctx, `SELECT v FROM kv WHERE k = $1`, key).Scan(&v); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, kvstore.ErrNotFound
		}
		s.logger.Warn("Failed to get value", zap.String(logging.FieldKey, key), zap.Error(err))
		return nil, err
	}
	return v, nil
}

// Set upserts value under key.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	ctx, span := otel.Tracer(tracerID).Start(ctx, "Store/Set")
	defer span.End()
	_, err := s.pool.Exec(ctx, `INSERT INTO kv (k, v) VALUES ($1, $2) ON CONFLICT (k) DO UPDATE SET v = EXCLUDED.v`, key, value)
	return err
}

// Del removes key.
func (s *Store) Del(ctx context.Context, key string) error {
	ctx, span := otel.Tracer(tracerID).Start(ctx, "Store/Del")
	defer span.End()
	_, err := s.pool.Exec(ctx, `DELETE FROM kv WHERE k = $1`, key)
	return err
}

// GetByPrefix returns all values whose key starts with prefix.
func (s *Store) GetByPrefix(ctx context.Context, prefix string) ([][]byte, error) {
	ctx, span := otel.Tracer(tracerID).Start(ctx, "Store/GetByPrefix")
	defer span.End()
	rows, err := s.pool.Query(ctx, `SELECT v FROM kv WHERE k LIKE $1`, kvstore.EscapeLike(prefix)+"%")
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[[]byte])
}

// Scan returns all pairs whose key starts with prefix.
func (s *Store) Scan(ctx context.Context, prefix string) ([]kvstore.Pair, error) {
	ctx, span := otel.Tracer(tracerID).Start(ctx, "Store/Scan")
	defer span.End()
	rows, err := s.pool.Query(ctx, `SELECT k, v FROM kv WHERE k LIKE $1`, kvstore.EscapeLike(prefix)+"%")
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (kvstore.Pair, error) {
		var p kvstore.Pair
		err := row.Scan(&p.Key, &p.Value)
		return p, err
	})
}
