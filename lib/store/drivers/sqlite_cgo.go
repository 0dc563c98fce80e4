//go:build !purego

package drivers

import (
	"fmt"

	_ "github.com/mattn/go-sqlite3" // SQLite driver (cgo)

	"litestore/lib/store/interfaces"
)

const driverName = "sqlite3"

// connString builds a mattn/go-sqlite3 DSN. Feature flags ride on the
// query string and are applied to every connection the pool opens.
func connString(config interfaces.Config) string {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=%s", config.FilePath, onOff(config.ForeignKeys))
	if config.BusyTimeoutMs > 0 {
		dsn += fmt.Sprintf("&_busy_timeout=%d", config.BusyTimeoutMs)
	}
	return dsn
}

func onOff(enabled bool) string {
	if enabled {
		return "on"
	}
	return "off"
}
