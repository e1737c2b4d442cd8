package dataset

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/duckdb/duckdb-go/v2"
	"github.com/google/uuid"
)

// ReadParquet loads every row of the parquet file at path.
func ReadParquet(ctx context.Context, path string) (*Table, error) {
	db, err := sql.Open("duckdb", "")
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}
	defer db.Close()

	query := "SELECT * FROM read_parquet(" + quoteLiteral(path) + ")"
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("read parquet %s: %w", path, err)
	}
	defer rows.Close()

	return scanTable(ctx, rows)
}

func scanTable(ctx context.Context, rows *sql.Rows) (*Table, error) {
	cols, err := rows.ColumnTypes()
	if err != nil {
		return nil, fmt.Errorf("identify columns: %w", err)
	}

	table := &Table{
		Columns: make([]Column, len(cols)),
		Rows:    make([][]any, 0, 1024),
	}
	for i, col := range cols {
		table.Columns[i] = Column{
			Ordinal: i,
			Name:    col.Name(),
			Type:    col.DatabaseTypeName(),
		}
	}

	values := make([]any, len(cols))
	pointers := make([]any, len(cols))
	for i := range values {
		pointers[i] = &values[i]
	}

	for rows.Next() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if err := rows.Scan(pointers...); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}

		row := make([]any, len(cols))
		for i, v := range values {
			row[i] = normalize(table.Columns[i].Type, v)
		}
		table.Rows = append(table.Rows, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}

	return table, nil
}

// normalize converts driver byte slices by column type. UUIDs become
// uuid.UUID, BLOBs stay []byte, and anything else is text.
func normalize(typ string, v any) any {
	b, ok := v.([]byte)
	if !ok {
		return v
	}
	switch typ {
	case "UUID":
		if id, err := uuid.FromBytes(b); err == nil {
			return id
		}
		return append([]byte(nil), b...)
	case "BLOB", "BYTEA", "VARBINARY", "BINARY":
		return append([]byte(nil), b...)
	default:
		return string(b)
	}
}

// quoteLiteral renders s as a SQL string literal.
func quoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
