// Package main is the entry point of gradecalc, a TGPA/CGPA calculator.
//
// The layers follow Clean Architecture:
// - Domain: grading scales, grade resolution and aggregation
// - Application: the CalculateGPA query
// - Infrastructure: transcript and scale documents
// - Interface: cobra commands and report presenters
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/cgpa-hub/cgpa-calculator/config"
	"github.com/cgpa-hub/cgpa-calculator/internal/interface/cli"
	"github.com/cgpa-hub/cgpa-calculator/pkg/logger"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = ""

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	// ─────────────────────────────────────────────────────────────────────────
	// 1. CONFIGURATION
	// ─────────────────────────────────────────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if version != "" {
		cfg.App.Version = version
	}

	// ─────────────────────────────────────────────────────────────────────────
	// 2. LOGGING
	// ─────────────────────────────────────────────────────────────────────────
	log := setupLogger(cfg)
	log.Debug("starting gradecalc",
		logger.String("env", string(cfg.App.Environment)),
		logger.String("version", cfg.App.Version),
		logger.String("input_mode", cfg.Grading.InputMode),
	)

	// ─────────────────────────────────────────────────────────────────────────
	// 3. COMMANDS
	// ─────────────────────────────────────────────────────────────────────────
	root := cli.NewRootCommand(cli.NewApp(cfg, log))
	root.SetArgs(args)

	if err := root.ExecuteContext(logger.WithContext(ctx, log)); err != nil {
		log.Debug("command failed", logger.Err(err))
		return err
	}
	return nil
}

// setupLogger builds the logger from observability settings. Logs go to
// stderr so stdout carries only the report.
func setupLogger(cfg *config.Config) *logger.Logger {
	opts := logger.DefaultOptions()
	opts.Level = logger.ParseLevel(cfg.Observability.LogLevel)
	opts.Format = logger.ParseFormat(cfg.Observability.LogFormat)
	if cfg.App.Debug {
		opts.Level = logger.LevelDebug
	}
	return logger.New(opts)
}
