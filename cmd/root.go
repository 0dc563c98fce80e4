package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"litestore/lib/config"
	"litestore/lib/store"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "litestore",
	Short: "Run parameterized SQL against SQLite files under a data root",
	Long: `litestore manages SQLite database files under a configured data root
and runs parameterized statements against them.

Available commands:
  create  - Create an empty database file
  exec    - Run a non-query statement (INSERT/UPDATE/DELETE/DDL)
  query   - Run a query and print the result rows`,
}

var (
	configPath string
	dataRoot   string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a litestore.yml config file")
	rootCmd.PersistentFlags().StringVar(&dataRoot, "data-root", "", "Directory database files live under (overrides config)")
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig resolves settings from --config, a litestore.yml in the
// working directory, or the built-in defaults, in that order. The
// --data-root flag wins over all of them.
func loadConfig() (config.Config, error) {
	cfg := config.Default()

	switch {
	case configPath != "":
		loaded, err := config.Load(configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	default:
		if _, err := os.Stat(config.DefaultConfigFileName); err == nil {
			loaded, err := config.Load(config.DefaultConfigFileName)
			if err != nil {
				return config.Config{}, err
			}
			cfg = loaded
		}
	}

	if dataRoot != "" {
		cfg.DataRoot = dataRoot
	}

	return cfg, nil
}

// newFactory builds a connection factory from the resolved settings.
func newFactory() (*store.Factory, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	factory, err := store.NewFactory(store.FromFileConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to create connection factory: %w", err)
	}

	return factory, nil
}
