package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"litestore/lib/store"
)

// execCmd runs a non-query statement against a database file
var execCmd = &cobra.Command{
	Use:   "exec [file] [sql]",
	Short: "Run a non-query statement",
	Long: `Run a mutating statement (INSERT/UPDATE/DELETE/DDL) against a database
file and print the affected-row count.

Named parameters are bound with repeatable --param flags:
  litestore exec app.db "INSERT INTO t (id, name) VALUES (@id, @name)" \
    --param id=1 --param name=george`,
	Args: cobra.ExactArgs(2),
	Run:  runExec,
}

var execParamFlags []string

func init() {
	rootCmd.AddCommand(execCmd)
	execCmd.Flags().StringArrayVar(&execParamFlags, "param", nil, "Named parameter as name=value (repeatable)")
}

func runExec(cmd *cobra.Command, args []string) {
	fileName, sqlText := args[0], args[1]

	params, err := parseParams(execParamFlags)
	if err != nil {
		log.Fatalf("Failed to parse parameters: %v", err)
	}

	factory, err := newFactory()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	conn, err := factory.Connect(fileName, false)
	if err != nil {
		log.Fatalf("Failed to resolve database: %v", err)
	}

	affected, err := store.ExecuteNonQuery(context.Background(), conn, sqlText, params)
	if err != nil {
		log.Fatalf("Failed to execute statement: %v", err)
	}

	fmt.Printf("%d row(s) affected\n", affected)
}
