package store

import (
	"litestore/lib/config"
)

// FromFileConfig converts loaded application settings to a factory Config.
func FromFileConfig(fileConfig config.Config) Config {
	return Config{
		DataRoot:      fileConfig.DataRoot,
		ForeignKeys:   fileConfig.ForeignKeys,
		BusyTimeoutMs: fileConfig.BusyTimeoutMs,
	}
}
