package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"litestore/lib/store/drivers"
	"litestore/lib/store/interfaces"
)

// Config holds the settings for a connection factory.
type Config struct {
	// DataRoot is the directory all database files are resolved under.
	DataRoot string
	// ForeignKeys enables foreign key enforcement on every connection.
	ForeignKeys bool
	// BusyTimeoutMs is the lock wait in milliseconds, 0 for the driver default.
	BusyTimeoutMs int
}

// Factory creates connection handles for database files under a data root.
// The root is injected here rather than read from process-wide state so
// the factory stays testable.
type Factory struct {
	config Config
}

// NewFactory creates a new connection factory
func NewFactory(config Config) (*Factory, error) {
	if config.DataRoot == "" {
		return nil, fmt.Errorf("store: data root is required")
	}
	return &Factory{config: config}, nil
}

// Connect resolves databaseFileName under the data root and returns a
// handle in the closed state. No connection is established here; opening
// is deferred to the executor that uses the handle.
//
// With createIfMissing, an empty database file is created at the resolved
// path. Creation never truncates: calling it against an existing file
// leaves the file's data intact.
func (f *Factory) Connect(databaseFileName string, createIfMissing bool) (interfaces.Database, error) {
	if err := validateFileName(databaseFileName); err != nil {
		return nil, err
	}

	filePath := filepath.Join(f.config.DataRoot, databaseFileName)

	if createIfMissing {
		if err := createDatabaseFile(filePath); err != nil {
			return nil, fmt.Errorf("failed to create database file: %w", err)
		}
	}

	return drivers.NewSQLiteDB(interfaces.Config{
		FilePath:      filePath,
		ForeignKeys:   f.config.ForeignKeys,
		BusyTimeoutMs: f.config.BusyTimeoutMs,
	})
}

// GetConfig returns the factory configuration
func (f *Factory) GetConfig() Config {
	return f.config
}

// validateFileName rejects anything that would resolve outside the data
// root. Only bare file names are accepted.
func validateFileName(name string) error {
	if name == "" {
		return fmt.Errorf("store: database file name is required")
	}
	if strings.ContainsAny(name, `/\`) || name != filepath.Base(name) || name == "." || name == ".." {
		return fmt.Errorf("store: invalid database file name %q", name)
	}
	return nil
}

// createDatabaseFile creates an empty file at path. A zero-length file is
// a valid empty SQLite database, so there is nothing to initialize.
func createDatabaseFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return err
	}
	return file.Close()
}
