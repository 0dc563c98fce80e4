package drivers

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"litestore/lib/store/interfaces"
)

// ErrNotConnected is returned when a statement is executed against a
// handle that has not been opened.
var ErrNotConnected = errors.New("drivers: database is not connected")

// SQLiteDB implements the Database interface for SQLite
type SQLiteDB struct {
	config interfaces.Config
	db     *sql.DB
}

// NewSQLiteDB creates a new SQLite handle in the closed state.
func NewSQLiteDB(config interfaces.Config) (interfaces.Database, error) {
	if config.FilePath == "" {
		return nil, fmt.Errorf("sqlite: file path is required")
	}
	return &SQLiteDB{
		config: config,
	}, nil
}

// Connect opens the database file. Calling Connect on an already open
// handle is a no-op.
func (s *SQLiteDB) Connect(ctx context.Context) error {
	if s.db != nil {
		return nil
	}

	db, err := sql.Open(driverName, s.GetConnectionString())
	if err != nil {
		return fmt.Errorf("failed to open SQLite connection: %w", err)
	}

	s.db = db
	return nil
}

// Close closes the database connection
func (s *SQLiteDB) Close() error {
	if s.db != nil {
		err := s.db.Close()
		s.db = nil
		return err
	}
	return nil
}

// Ping tests the database connection
func (s *SQLiteDB) Ping(ctx context.Context) error {
	if s.db == nil {
		return ErrNotConnected
	}
	return s.db.PingContext(ctx)
}

// Query executes a query that returns rows
func (s *SQLiteDB) Query(ctx context.Context, query string, args ...any) (interfaces.Rows, error) {
	if s.db == nil {
		return nil, ErrNotConnected
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Exec executes a statement without returning any rows
func (s *SQLiteDB) Exec(ctx context.Context, query string, args ...any) (interfaces.Result, error) {
	if s.db == nil {
		return nil, ErrNotConnected
	}
	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// GetConnectionString builds the SQLite data source name. The string is
// derived from the immutable config, so it is the same for the lifetime
// of the handle.
func (s *SQLiteDB) GetConnectionString() string {
	return connString(s.config)
}
