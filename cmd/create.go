package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
)

// createCmd creates an empty database file under the data root
var createCmd = &cobra.Command{
	Use:   "create [file]",
	Short: "Create an empty database file",
	Long: `Create an empty SQLite database file under the data root.

Creating a file that already exists is safe: the existing data is left
untouched.

Usage:
  litestore create app.db
  litestore create app.db --data-root /var/lib/myapp`,
	Args: cobra.ExactArgs(1),
	Run:  runCreate,
}

func init() {
	rootCmd.AddCommand(createCmd)
}

func runCreate(cmd *cobra.Command, args []string) {
	fileName := args[0]

	factory, err := newFactory()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if _, err := factory.Connect(fileName, true); err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}

	fmt.Printf("Created database %s under %s\n", fileName, factory.GetConfig().DataRoot)
}
