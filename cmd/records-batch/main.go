package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jdelacruz-io/campus-records/constants"
	"github.com/jdelacruz-io/campus-records/internal/common"
	"github.com/jdelacruz-io/campus-records/internal/export"
	"github.com/jdelacruz-io/campus-records/internal/ingest"
	"github.com/jdelacruz-io/campus-records/internal/pdftext"
	"github.com/jdelacruz-io/campus-records/internal/pipeline"
	repo "github.com/jdelacruz-io/campus-records/internal/repository"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		inmem      = flag.Bool("inmem", false, "use the in-memory record store instead of Mongo")
		dir        = flag.String("dir", "", "directory to process documents from (required)")
		out        = flag.String("out", "", "output XLSX summary path (optional, defaults to parent directory)")
		skipHidden = flag.Bool("skip-hidden", true, "skip hidden files and directories")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}
	if *out == "" {
		parentDir := filepath.Dir(*dir)
		*out = filepath.Join(parentDir, "records-summary.xlsx")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()
	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	var records repo.RecordRepository
	if *inmem {
		records = repo.NewMemoryRecordRepository()
	} else {
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
		defer repo.Close(ctx, client, logger)

		if err := repo.HealthCheck(ctx, client, cfg.Database.PingTimeout, logger); err != nil {
			logger.Error("database health check failed", "error", err)
			os.Exit(1)
		}
		repo.EnsureIndexes(ctx, db, constants.Collections(), logger)
		records = repo.NewMongoRecordRepository(db, logger)
	}

	pdf := pdftext.NewExtractor(pdftext.Config{
		Pdftotext: cfg.PDF.Pdftotext,
		Pdfimages: cfg.PDF.Pdfimages,
	}, logger)
	proc := pipeline.NewProcessor(records, pdf, logger)

	scanner := ingest.NewFSScanner()
	results, stats, err := scanner.ScanDirectory(*dir, *skipHidden)
	if err != nil {
		logger.Error("directory scan failed", "dir", *dir, "error", err)
		os.Exit(1)
	}
	logger.Info("scan complete",
		"dir", *dir,
		"scanned", stats.Scanned,
		"matched", stats.Matched,
		"deduplicated", stats.Deduplicated,
		"failed", stats.Failed,
	)

	var outcomes []pipeline.Outcome
	for _, r := range results {
		switch {
		case r.Err != "":
			outcomes = append(outcomes, pipeline.Outcome{
				SourcePath: r.File.Path,
				Status:     constants.OutcomeFailed,
				Reason:     r.Err,
			})
		case r.Deduplicated:
			outcomes = append(outcomes, pipeline.Outcome{
				SourcePath: r.File.Path,
				Status:     constants.OutcomeSkipped,
				Reason:     "duplicate content",
			})
		default:
			docCtx, cancel := context.WithTimeout(ctx, cfg.Batch.ProcessTimeout)
			outcomes = append(outcomes, proc.ProcessFile(docCtx, r.File))
			cancel()
		}
	}

	stored, skipped, failed := 0, 0, 0
	for _, o := range outcomes {
		switch o.Status {
		case constants.OutcomeStored:
			stored++
		case constants.OutcomeSkipped:
			skipped++
		case constants.OutcomeFailed:
			failed++
		}
	}
	logger.Info("batch complete", "stored", stored, "skipped", skipped, "failed", failed)

	svc := export.NewService(records, logger)
	data, err := svc.BatchSummaryXLSX(ctx, outcomes)
	if err != nil {
		logger.Error("failed to build summary workbook", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		logger.Error("failed to write summary workbook", "path", *out, "error", err)
		os.Exit(1)
	}
	logger.Info("summary written", "path", *out)

	if failed > 0 {
		os.Exit(1)
	}
}
