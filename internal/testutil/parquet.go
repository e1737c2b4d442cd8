// Package testutil provides shared fixtures for tests across the codebase.
package testutil

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"testing"

	_ "github.com/duckdb/duckdb-go/v2"
)

// BillingColumns lists the columns written by WriteBillingParquet.
var BillingColumns = []string{
	"customer_id",
	"state",
	"billing_date",
	"amount_naira",
	"paid",
	"units_kwh",
}

// WriteBillingParquet writes a parquet file with n synthetic billing rows
// into a temp dir and returns its path. Every fourth units_kwh is NULL.
func WriteBillingParquet(t testing.TB, n int) string {
	t.Helper()

	return WriteParquet(t, fmt.Sprintf(`SELECT
			'CUST-' || lpad(CAST(i AS VARCHAR), 4, '0') AS customer_id,
			CASE WHEN i %% 2 = 0 THEN 'Lagos' ELSE 'Kano' END AS state,
			DATE '2024-01-01' + CAST(i AS INTEGER) AS billing_date,
			CAST(i * 1250.5 AS DOUBLE) AS amount_naira,
			i %% 3 = 0 AS paid,
			CASE WHEN i %% 4 = 0 THEN NULL ELSE i END AS units_kwh
		FROM range(%d) t(i)`, n))
}

// WriteParquet writes the result of a DuckDB SELECT to a parquet file in a
// temp dir and returns its path.
func WriteParquet(t testing.TB, selectSQL string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "fixture.parquet")

	db, err := sql.Open("duckdb", "")
	if err != nil {
		t.Fatalf("open duckdb: %v", err)
	}
	defer db.Close()

	query := fmt.Sprintf("COPY (%s) TO '%s' (FORMAT PARQUET)", selectSQL, path)
	if _, err := db.Exec(query); err != nil {
		t.Fatalf("write parquet fixture: %v", err)
	}
	return path
}

// MixedTypesSQL selects one row covering UUID, BLOB, INTERVAL, STRUCT, LIST
// and DECIMAL columns, plus a VARCHAR holding a vertical tab.
const MixedTypesSQL = `SELECT
	'6f1c2a4e-8b3d-4c5e-9f0a-1b2c3d4e5f60'::UUID AS meter_id,
	'\xAA\xBB\x0B\x0C'::BLOB AS payload,
	INTERVAL 3 DAY AS billing_lag,
	{'a': 1, 'b': 'x'} AS meta,
	[1, 2, 3] AS readings,
	1234.56::DECIMAL(10,2) AS amount,
	'line1' || chr(11) || 'line2' AS note`

// MixedTypesMeterID is the meter_id written by MixedTypesSQL.
const MixedTypesMeterID = "6f1c2a4e-8b3d-4c5e-9f0a-1b2c3d4e5f60"
