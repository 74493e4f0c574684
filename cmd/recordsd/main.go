package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/jdelacruz-io/campus-records/constants"
	"github.com/jdelacruz-io/campus-records/internal/async"
	"github.com/jdelacruz-io/campus-records/internal/common"
	"github.com/jdelacruz-io/campus-records/internal/ingest"
	"github.com/jdelacruz-io/campus-records/internal/pdftext"
	"github.com/jdelacruz-io/campus-records/internal/pipeline"
	repo "github.com/jdelacruz-io/campus-records/internal/repository"
)

func main() {
	var (
		dirs        = flag.String("dirs", "", "comma-separated directories to watch (required)")
		initialScan = flag.Bool("initial-scan", true, "process existing files on startup")
		debounce    = flag.Duration("debounce", 500*time.Millisecond, "coalesce window for rapid file events")
	)
	flag.Parse()

	if *dirs == "" {
		fmt.Fprintln(os.Stderr, "Error: --dirs is required")
		os.Exit(1)
	}
	var roots []string
	for _, d := range strings.Split(*dirs, ",") {
		if d = strings.TrimSpace(d); d != "" {
			roots = append(roots, d)
		}
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	client, db, err := repo.Open(ctx, repo.Config{
		URI:            cfg.Database.URI,
		Database:       cfg.Database.Database,
		ConnectTimeout: cfg.Database.ConnectTimeout,
		PingTimeout:    cfg.Database.PingTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(context.Background(), client, logger)

	if err := repo.HealthCheck(ctx, client, cfg.Database.PingTimeout, logger); err != nil {
		logger.Error("database health check failed", "error", err)
		os.Exit(1)
	}
	repo.EnsureIndexes(ctx, db, constants.Collections(), logger)

	records := repo.NewMongoRecordRepository(db, logger)
	pdf := pdftext.NewExtractor(pdftext.Config{
		Pdftotext: cfg.PDF.Pdftotext,
		Pdfimages: cfg.PDF.Pdfimages,
	}, logger)
	proc := pipeline.NewProcessor(records, pdf, logger)

	queue := async.NewProcessorQueue(proc, logger,
		async.WithWorkers(cfg.Batch.Workers),
		async.WithQueueSize(cfg.Batch.QueueSize),
		async.WithProcessTimeout(cfg.Batch.ProcessTimeout),
	)

	events, errs, err := ingest.StartWatcher(ctx, ingest.WatchConfig{
		Roots:       roots,
		InitialScan: *initialScan,
		Debounce:    *debounce,
	})
	if err != nil {
		logger.Error("failed to start watcher", "error", err)
		os.Exit(1)
	}
	logger.Info("watching for documents", "roots", roots)

	scanner := ingest.NewFSScanner()
	for {
		select {
		case <-ctx.Done():
			logger.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			queue.Shutdown(shutdownCtx)
			cancel()
			return
		case err, ok := <-errs:
			if !ok {
				continue
			}
			logger.Warn("watcher error", "error", err)
		case path, ok := <-events:
			if !ok {
				continue
			}
			res, err := scanner.ScanPath(path)
			if err != nil {
				logger.Warn("scan failed", "path", path, "error", err)
				continue
			}
			if res.Deduplicated {
				logger.Info("duplicate content, skipping", "path", path)
				continue
			}
			_ = queue.Enqueue(ctx, async.Job{
				File:        res.File,
				SubmittedAt: time.Now().UTC(),
			})
		}
	}
}
