// Package database opens PostgreSQL connections from environment-sourced settings.
//
// Connections are single pgx sessions, not pools. Callers own the returned
// handle and must release it; Probe shows the expected shape.
package database
