package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/remiges-tech/logharbour/logharbour"

	"github.com/jung/hannum/internal/api"
	"github.com/jung/hannum/internal/batch"
	"github.com/jung/hannum/internal/config"
	"github.com/jung/hannum/internal/health"
	"github.com/jung/hannum/internal/logging"
	"github.com/jung/hannum/internal/scheduler"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Parse command line flags
	inputFile := flag.String("input", "", "Batch input file, one entry per line (overrides BATCH_INPUT env)")
	outputDir := flag.String("output", "", "Output directory for batch reports (overrides OUTPUT_DIR env)")
	oneShot := flag.Bool("once", false, "Run the batch once and exit without starting the server")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if *inputFile != "" {
		cfg.BatchInput = *inputFile
	}
	if *outputDir != "" {
		cfg.OutputDir = *outputDir
	}
	if *oneShot {
		cfg.SyncInterval = 0
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		printUsage()
		os.Exit(1)
	}
	if *oneShot && !cfg.BatchEnabled() {
		fmt.Fprintln(os.Stderr, "Configuration error: -once needs BATCH_INPUT or -input")
		printUsage()
		os.Exit(1)
	}

	logger := logging.New("hannumd", cfg.LogLevel, os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if *oneShot {
		if _, err := runBatch(ctx, cfg, logger); err != nil {
			logger.Error(err).LogActivity("Batch failed", nil)
			os.Exit(1)
		}
		return
	}

	checker := health.NewChecker(cfg.SyncInterval)
	router := api.NewRouter(api.Options{
		MaxInputLength: cfg.MaxInputLength,
		RequestTimeout: cfg.RequestTimeout,
		Logger:         logger,
		Checker:        checker,
	})
	server := api.NewServer(cfg.HTTPPort, router, logger)
	server.Start()

	schedDone := make(chan struct{})
	if cfg.BatchEnabled() {
		logger.Info().LogActivity("Batch conversion enabled", map[string]any{
			"input":    cfg.BatchInput,
			"output":   cfg.OutputDir,
			"interval": cfg.SyncInterval.String(),
		})
		sched := scheduler.New(cfg.SyncInterval, func(ctx context.Context) error {
			checker.SetRunning(true)
			defer checker.SetRunning(false)

			_, err := runBatch(ctx, cfg, logger)
			checker.UpdateRunStatus(err)
			return err
		}, logger)
		go func() {
			defer close(schedDone)
			sched.Run(ctx)
		}()
	} else {
		close(schedDone)
	}

	<-ctx.Done()
	logger.Info().LogActivity("Shutting down", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Stop(shutdownCtx); err != nil {
		logger.Error(err).LogActivity("HTTP server shutdown failed", nil)
	}

	// Let an in-flight batch release its lock and finish its report
	if err := waitDone(shutdownCtx, schedDone); err != nil {
		logger.Warn().LogActivity("Batch still running at shutdown deadline", map[string]any{"timeout": shutdownTimeout.String()})
	}
	logger.Info().LogActivity("Shutdown complete", nil)
}

// waitDone blocks until done is closed or ctx ends
func waitDone(ctx context.Context, done <-chan struct{}) error {
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// runBatch performs a single batch conversion
func runBatch(ctx context.Context, cfg *config.Config, logger *logharbour.Logger) (batch.Summary, error) {
	return batch.Run(ctx, batch.Options{
		Input:     cfg.BatchInput,
		Encoding:  cfg.BatchEncoding,
		Format:    cfg.BatchFormat,
		OutputDir: cfg.OutputDir,
		LockFile:  cfg.LockFile,
		Logger:    logger,
	})
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "\nOptional environment variables:")
	fmt.Fprintln(os.Stderr, "  HTTP_PORT         - HTTP server address (default: :8080)")
	fmt.Fprintln(os.Stderr, "  LOG_LEVEL         - debug, info, warn or error (default: info)")
	fmt.Fprintln(os.Stderr, "  REQUEST_TIMEOUT   - Per request timeout (default: 5s)")
	fmt.Fprintln(os.Stderr, "  MAX_INPUT_LENGTH  - Longest accepted input in characters (default: 256)")
	fmt.Fprintln(os.Stderr, "  BATCH_INPUT       - File to convert, one entry per line")
	fmt.Fprintln(os.Stderr, "  BATCH_ENCODING    - utf-8 or euc-kr (default: utf-8)")
	fmt.Fprintln(os.Stderr, "  BATCH_FORMAT      - json or yaml (default: json)")
	fmt.Fprintln(os.Stderr, "  OUTPUT_DIR        - Batch report directory (default: ./output)")
	fmt.Fprintln(os.Stderr, "  SYNC_INTERVAL     - Batch interval (default: run once, e.g., 30m, 2h)")
	fmt.Fprintln(os.Stderr, "  LOCK_FILE         - Batch lock file (default: /tmp/hannumd.lock)")
}
