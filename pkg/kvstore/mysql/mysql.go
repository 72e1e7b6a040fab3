package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"moviecatalog/pkg/kvstore"
	"moviecatalog/pkg/logging"

	mysqldriver "github.com/go-sql-driver/mysql"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

const tracerID = "kvstore-mysql"

// Config defines MySQL connection settings.
type Config struct {
	Host  string `yaml:"host"`
	Port  int    `yaml:"port"`
	User  string `yaml:"user"`
	Pass  string `yaml:"password"`
	Name  string `yaml:"db_name"`
	Table string `yaml:"table"`
}

// Store defines a MySQL-backed key-value store keeping every entry in one two-column table.
type Store struct {
	db     *sql.DB
	table  string
	logger *zap.Logger
}

// New creates a new MySQL-backed store.
func New(config Config, logger *zap.Logger) (*Store, error) {
	c := mysqldriver.NewConfig()
	c.Net = "tcp"
	c.Addr = fmt.Sprintf("%s:%d", config.Host, config.Port)
	c.User = config.User
	c.Passwd = config.Pass
	c.DBName = config.Name
	db, err := sql.Open("mysql", c.FormatDSN())
	if err != nil {
		return nil, err
	}
	return NewWithDB(db, config.Table, logger), nil
}

// NewWithDB creates a store over an existing connection pool.
func NewWithDB(db *sql.DB, table string, logger *zap.Logger) *Store {
	if table == "" {
		table = "kv"
	}
	logger = logger.With(
		zap.String(logging.FieldComponent, "kvstore"),
		zap.String(logging.FieldType, "mysql"),
	)
	return &Store{db: db, table: table, logger: logger}
}

// Migrate creates the backing table if it does not exist yet.
func (s *Store) Migrate(ctx context.Context) error {
	s.logger.Info("Ensuring key-value table", zap.String("table", s.table))
	_, err := s.db.ExecContext(ctx, "CREATE TABLE IF NOT EXISTS "+s.table+
		" (k VARCHAR(255) NOT NULL PRIMARY KEY, v LONGBLOB NOT NULL)")
	return err
}

// Close closes the connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}

// Get retrieves the value stored under key.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	ctx, span := otel.Tracer(tracerID).Start(ctx, "Store/Get")
	defer span.End()
	var v []byte
	row := s.db.QueryRowContext(ctx, "SELECT v FROM "+s.table+" WHERE k = ?", key)
	if err := row.Scan(&v); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
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
	_, err := s.db.ExecContext(ctx, "INSERT INTO "+s.table+" (k, v) VALUES (?, ?) ON DUPLICATE KEY UPDATE v = VALUES(v)", key, value)
	if err != nil {
		s.logger.Warn("Failed to set value", zap.String(logging.FieldKey, key), zap.Error(err))
	}
	return err
}

// Del removes key.
func (s *Store) Del(ctx context.Context, key string) error {
	ctx, span := otel.Tracer(tracerID).Start(ctx, "Store/Del")
	defer span.End()
	_, err := s.db.ExecContext(ctx, "DELETE FROM "+s.table+" WHERE k = ?", key)
	return err
}

// GetByPrefix returns all values whose key starts with prefix.
func (s *Store) GetByPrefix(ctx context.Context, prefix string) ([][]byte, error) {
	ctx, span := otel.Tracer(tracerID).Start(ctx, "Store/GetByPrefix")
	defer span.End()
	rows, err := s.db.QueryContext(ctx, "SELECT v FROM "+s.table+" WHERE k LIKE ?", kvstore.EscapeLike(prefix)+"%")
	if err != nil {
		s.logger.Warn("Failed to scan prefix", zap.String(logging.FieldKey, prefix), zap.Error(err))
		return nil, err
	}
	defer rows.Close()
	var res [][]byte
	for rows.Next() {
		var v []byte
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		res = append(res, v)
	}
	return res, rows.Err()
}

// Scan returns all pairs whose key starts with prefix.
func (s *Store) Scan(ctx context.Context, prefix string) ([]kvstore.Pair, error) {
	ctx, span := otel.Tracer(tracerID).Start(ctx, "Store/Scan")
	defer span.End()
	rows, err := s.db.QueryContext(ctx, "SELECT k, v FROM "+s.table+" WHERE k LIKE ?", kvstore.EscapeLike(prefix)+"%")
	if err != nil {
		s.logger.Warn("Failed to scan prefix", zap.String(logging.FieldKey, prefix), zap.Error(err))
		return nil, err
	}
	defer rows.Close()
	var res []kvstore.Pair
	for rows.Next() {
		var p kvstore.Pair
		if err := rows.Scan(&p.Key, &p.Value); err != nil {
			return nil, err
		}
		res = append(res, p)
	}
	return res, rows.Err()
}
