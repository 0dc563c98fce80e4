//go:build purego

package drivers

import (
	"fmt"

	_ "modernc.org/sqlite" // SQLite driver (pure Go)

	"litestore/lib/store/interfaces"
)

const driverName = "sqlite"

// connString builds a modernc.org/sqlite DSN. The driver takes pragmas
// through repeated _pragma options instead of mattn-style flags.
func connString(config interfaces.Config) string {
	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(%d)", config.FilePath, boolBit(config.ForeignKeys))
	if config.BusyTimeoutMs > 0 {
		dsn += fmt.Sprintf("&_pragma=busy_timeout(%d)", config.BusyTimeoutMs)
	}
	return dsn
}

func boolBit(enabled bool) int {
	if enabled {
		return 1
	}
	return 0
}
