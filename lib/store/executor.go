// Package store is a parameterized-query layer over SQLite files living
// under a configured data root. A Factory hands out closed connection
// handles; ExecuteNonQuery and ExecuteQuery each open the handle they are
// given, run one statement, and close the handle again before returning.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"litestore/lib/store/interfaces"
)

// Params maps named placeholders to their values. Names keep their SQL
// prefix ("@id", ":id" or "$id"); values are the SQLite scalar kinds:
// integer, real, text, boolean or nil. Booleans are stored as INTEGER 0/1
// and read back as int64. Entries without a matching placeholder are
// handed to the driver as-is; this layer does no validation.
type Params map[string]any

// Row is one materialized result row, keyed by column name as reported by
// the result set. SQL NULL is carried as nil, never as a sentinel string.
type Row map[string]any

// ExecuteNonQuery runs a mutating statement (INSERT/UPDATE/DELETE/DDL)
// and returns the driver-reported affected-row count. The handle is
// opened if closed and closed again on every exit path.
func ExecuteNonQuery(ctx context.Context, db interfaces.Database, sqlText string, params Params) (int64, error) {
	if err := db.Connect(ctx); err != nil {
		return 0, fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	result, err := db.Exec(ctx, sqlText, bindParams(params)...)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}

// ExecuteQuery runs a row-producing statement and materializes the full
// result set in memory. An empty result is an empty slice, not nil. The
// handle is opened if closed and closed again on every exit path. Callers
// needing partial results express that with LIMIT/OFFSET in sqlText.
func ExecuteQuery(ctx context.Context, db interfaces.Database, sqlText string, params Params) ([]Row, error) {
	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	rows, err := db.Query(ctx, sqlText, bindParams(params)...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectRows(rows)
}

// bindParams converts a Params map into driver arguments bound by name.
// Binding order is irrelevant since the driver matches on names.
func bindParams(params Params) []any {
	if len(params) == 0 {
		return nil
	}

	args := make([]any, 0, len(params))
	for name, value := range params {
		args = append(args, sql.Named(strings.TrimLeft(name, "@:$"), value))
	}
	return args
}

// collectRows materializes every row of the result set into generic records.
func collectRows(rows interfaces.Rows) ([]Row, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	results := make([]Row, 0)
	for rows.Next() {
		values := make([]any, len(columns))
		valuePointers := make([]any, len(columns))
		for i := range values {
			valuePointers[i] = &values[i]
		}

		if err := rows.Scan(valuePointers...); err != nil {
			return nil, err
		}

		row := make(Row, len(columns))
		for i, column := range columns {
			row[column] = normalizeValue(values[i])
		}
		results = append(results, row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

// normalizeValue copies driver values into caller-owned representations.
// Byte slices are copied into strings because the driver may reuse the
// backing array on the next scan.
func normalizeValue(value any) any {
	switch v := value.(type) {
	case nil:
		return nil
	case []byte:
		return string(v)
	default:
		return value
	}
}
