package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"litestore/lib/render"
	"litestore/lib/store"
)

// queryCmd runs a query and prints the result rows
var queryCmd = &cobra.Command{
	Use:   "query [file] [sql]",
	Short: "Run a query and print the result rows",
	Long: `Run a row-producing statement against a database file. Results are
printed as JSON, or rendered through a Handlebars template with
--template.

The template context exposes "rows" and "count":
  litestore query app.db "SELECT * FROM t WHERE id=@id" --param id=1
  litestore query app.db "SELECT * FROM t" --template report.hbs`,
	Args: cobra.ExactArgs(2),
	Run:  runQuery,
}

var (
	queryParamFlags  []string
	queryTemplateArg string
)

func init() {
	rootCmd.AddCommand(queryCmd)
	queryCmd.Flags().StringArrayVar(&queryParamFlags, "param", nil, "Named parameter as name=value (repeatable)")
	queryCmd.Flags().StringVar(&queryTemplateArg, "template", "", "Handlebars template file to render results with")
}

func runQuery(cmd *cobra.Command, args []string) {
	fileName, sqlText := args[0], args[1]

	params, err := parseParams(queryParamFlags)
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

	rows, err := store.ExecuteQuery(context.Background(), conn, sqlText, params)
	if err != nil {
		log.Fatalf("Failed to execute query: %v", err)
	}

	output, err := formatRows(rows, queryTemplateArg)
	if err != nil {
		log.Fatalf("Failed to format results: %v", err)
	}

	fmt.Println(output)
}

// formatRows renders rows through the template when one is given, JSON
// otherwise.
func formatRows(rows []store.Row, templatePath string) (string, error) {
	if templatePath == "" {
		encoded, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			return "", err
		}
		return string(encoded), nil
	}

	renderer := render.NewResultRenderer()
	if err := renderer.LoadTemplate("query", templatePath); err != nil {
		return "", err
	}
	return renderer.RenderRows("query", rows)
}
