// Package interfaces defines the driver boundary used by the store and its drivers
package interfaces

import "context"

// Config holds the settings a driver needs to build its connection string.
type Config struct {
	// FilePath is the resolved path of the database file.
	FilePath string
	// ForeignKeys enables foreign key enforcement on every connection.
	ForeignKeys bool
	// BusyTimeoutMs is how long the driver waits on a locked database
	// before reporting SQLITE_BUSY. Zero means the driver default.
	BusyTimeoutMs int
}

// Database is a connection handle. A handle starts closed; Connect opens
// it and Close releases it. The connection string is fixed at creation.
type Database interface {
	Connect(ctx context.Context) error
	Close() error
	Ping(ctx context.Context) error
	Query(ctx context.Context, query string, args ...any) (Rows, error)
	Exec(ctx context.Context, query string, args ...any) (Result, error)
	GetConnectionString() string
}

// Rows wraps sql.Rows
type Rows interface {
	Close() error
	Columns() ([]string, error)
	Err() error
	Next() bool
	Scan(dest ...any) error
}

// Result wraps sql.Result
type Result interface {
	LastInsertId() (int64, error)
	RowsAffected() (int64, error)
}
