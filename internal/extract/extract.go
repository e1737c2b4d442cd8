// Package extract downloads a remote parquet dataset and prints a preview of it.
package extract

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/rickgao/energy-billing/internal/dataset"
	"github.com/rickgao/energy-billing/internal/preview"
	"github.com/rickgao/energy-billing/internal/source"
)

// Options configures a single extraction run.
type Options struct {
	URL         string
	PreviewRows int
	Client      *source.Client
	Logger      *slog.Logger

	// TempDir holds the downloaded file while it is parsed. Empty uses os.TempDir.
	TempDir string
}

// Run downloads opts.URL, loads it, and writes the preview to w.
// Nothing is written to w unless every step succeeds.
func Run(ctx context.Context, opts Options, w io.Writer) error {
	if opts.URL == "" {
		return errors.New("url is required")
	}
	if opts.PreviewRows < 1 {
		return fmt.Errorf("preview rows must be >= 1, got %d", opts.PreviewRows)
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	client := opts.Client
	if client == nil {
		client = source.NewClient(source.WithLogger(logger))
	}

	table, err := Fetch(ctx, client, opts.URL, opts.TempDir, logger)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := preview.Render(&buf, table, opts.PreviewRows); err != nil {
		return fmt.Errorf("render preview: %w", err)
	}
	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("write preview: %w", err)
	}
	return nil
}

// Fetch downloads url into a temp file under dir and loads it as a table.
// The temp file is removed before Fetch returns.
func Fetch(ctx context.Context, client *source.Client, url, dir string, logger *slog.Logger) (*dataset.Table, error) {
	f, err := os.CreateTemp(dir, "dataset-*.parquet")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(f.Name())
	defer f.Close()

	logger.Info("downloading dataset", "url", url)
	start := time.Now()

	n, err := client.Download(ctx, url, f)
	if err != nil {
		return nil, fmt.Errorf("download dataset: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("close temp file: %w", err)
	}

	logger.Info("dataset downloaded",
		"bytes", n,
		"duration", time.Since(start),
	)

	table, err := dataset.ReadParquet(ctx, f.Name())
	if err != nil {
		return nil, fmt.Errorf("parse dataset: %w", err)
	}

	logger.Info("dataset loaded",
		"rows", table.NumRows(),
		"columns", len(table.Columns),
	)

	return table, nil
}
