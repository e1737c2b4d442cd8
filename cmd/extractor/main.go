package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rickgao/energy-billing/internal/config"
	"github.com/rickgao/energy-billing/internal/extract"
	"github.com/rickgao/energy-billing/internal/logging"
	"github.com/rickgao/energy-billing/internal/source"
	"github.com/rickgao/energy-billing/internal/version"
)

func main() {
	configPath := flag.String("config", "", "path to optional YAML config file")
	url := flag.String("url", "", "override source.url")
	rows := flag.Int("rows", 0, "override preview.rows")
	retries := flag.Int("retries", -1, "override source.max_retries")
	logLevel := flag.String("log-level", "", "override logging.level (debug, info, warn, error)")
	flag.Parse()

	cfg, err := config.LoadAndValidate(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Flags win over the file
	if *url != "" {
		cfg.Source.URL = *url
	}
	if *rows > 0 {
		cfg.Preview.Rows = *rows
	}
	if *retries >= 0 {
		cfg.Source.MaxRetries = *retries
	}
	if *logLevel != "" {
		cfg.Logging.Level = *logLevel
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid flags: %v\n", err)
		os.Exit(1)
	}

	level, _ := config.ParseLevel(cfg.Logging.Level)
	logger := logging.New(os.Stderr, level, "extractor")

	logger.Info("starting extractor",
		version.LogAttrs(),
		"config", *configPath,
		"url", cfg.Source.URL,
	)

	// Create context with cancellation
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	userAgent := cfg.Source.UserAgent
	if userAgent == config.DefaultUserAgent {
		userAgent = version.UserAgent(userAgent)
	}

	client := source.NewClient(
		source.WithLogger(logger),
		source.WithTimeout(cfg.Source.Timeout),
		source.WithRetries(cfg.Source.MaxRetries, time.Second),
		source.WithUserAgent(userAgent),
	)

	err = extract.Run(ctx, extract.Options{
		URL:         cfg.Source.URL,
		PreviewRows: cfg.Preview.Rows,
		Client:      client,
		Logger:      logger,
	}, os.Stdout)
	if err != nil {
		logger.Error("extraction failed", "error", err)
		stop()
		os.Exit(1)
	}

	logger.Info("extractor finished")
}
