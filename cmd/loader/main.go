package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rickgao/energy-billing/internal/config"
	"github.com/rickgao/energy-billing/internal/database"
	"github.com/rickgao/energy-billing/internal/logging"
	"github.com/rickgao/energy-billing/internal/version"
)

func main() {
	envFile := flag.String("env-file", config.DefaultEnvFile, "path to optional KEY=VALUE environment file")
	timeout := flag.Duration("timeout", 0, "connect deadline, 0 for none")
	logLevel := flag.String("log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	flag.Parse()

	level, err := config.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid -log-level: %v\n", err)
		os.Exit(1)
	}
	logger := logging.New(os.Stderr, level, "loader")

	logger.Info("starting loader", version.LogAttrs())

	loaded, err := config.LoadEnvFile(*envFile)
	if err != nil {
		logger.Error("failed to load env file", "path", *envFile, "error", err)
		os.Exit(1)
	}
	logger.Debug("env file", "path", *envFile, "loaded", loaded)

	cfg := config.DBFromEnv()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if *timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeout)
		defer cancel()
	}

	// Connect to database
	logger.Info("connecting to database",
		"host", cfg.Host,
		"port", cfg.Port,
		"database", cfg.Name,
		"user", cfg.User,
	)

	if err := database.Probe(ctx, cfg); err != nil {
		logger.Error("failed to connect to database", "error", err)
		stop()
		os.Exit(1)
	}

	logger.Info("database connection opened and closed")
}
