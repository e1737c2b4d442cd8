package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/rickgao/energy-billing/internal/config"
)

// Open parses cfg and opens a single connection.
func Open(ctx context.Context, cfg config.DBConfig) (*pgx.Conn, error) {
	connCfg, err := pgx.ParseConfig(BuildConnString(cfg))
	if err != nil {
		return nil, fmt.Errorf("parse connection string: %w", err)
	}

	conn, err := pgx.ConnectConfig(ctx, connCfg)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	return conn, nil
}

// Probe opens a connection and releases it without issuing any query.
func Probe(ctx context.Context, cfg config.DBConfig) (err error) {
	conn, err := Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := conn.Close(context.WithoutCancel(ctx)); cerr != nil && err == nil {
			err = fmt.Errorf("close connection: %w", cerr)
		}
	}()

	return nil
}
