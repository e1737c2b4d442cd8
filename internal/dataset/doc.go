// Package dataset holds tabular data loaded wholesale into memory.
//
// Parquet files are decoded through an embedded DuckDB instance; the result is
// an immutable Table of ordered columns and rows.
package dataset
