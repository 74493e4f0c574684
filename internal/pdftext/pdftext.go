// Package pdftext extracts plain text from PDFs through the external
// poppler tools. The extraction algorithms never touch PDF internals
// themselves; this is the system boundary the extractors sit behind.
package pdftext

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

type Config struct {
	Pdftotext string // binary name or absolute path; if empty -> "pdftotext"
	Pdfimages string // binary name or absolute path; if empty -> "pdfimages"
}

type Result struct {
	Text     string
	Pages    int
	Images   int // embedded images counted, not extracted
	Duration time.Duration
	Warnings []string
}

type Extractor struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdftotext == "" {
		cfg.Pdftotext = "pdftotext"
	}
	if cfg.Pdfimages == "" {
		cfg.Pdfimages = "pdfimages"
	}
	return &Extractor{cfg: cfg, runner: execRunner{}, logger: logger}
}

// Extract runs pdftotext over path and returns UTF-8 text with unix EOLs.
// Embedded image counting is best effort and only ever adds warnings.
func (e *Extractor) Extract(ctx context.Context, path string) (Result, error) {
	start := time.Now()
	e.logger.Debug("starting pdf text extraction", "path", path)

	// pdftotext -layout -enc UTF-8 -eol unix <path> -
	out, errb, err := e.runner.Run(ctx, e.cfg.Pdftotext, "-layout", "-enc", "UTF-8", "-eol", "unix", path, "-")
	if err != nil {
		return Result{Warnings: []string{string(errb)}}, fmt.Errorf("pdftotext: %w", err)
	}

	res := Result{Text: string(out)}
	// A form-feed \f is used as page separator by default
	res.Pages = 1 + strings.Count(res.Text, "\f")

	if n, warns := e.countImages(ctx, path); n >= 0 {
		res.Images = n
		res.Warnings = append(res.Warnings, warns...)
	} else {
		res.Warnings = append(res.Warnings, warns...)
	}

	res.Duration = time.Since(start)
	return res, nil
}

// countImages lists embedded images via pdfimages -list. ID photos on
// records are extracted by operators separately; the count is metadata only.
func (e *Extractor) countImages(ctx context.Context, path string) (int, []string) {
	out, errb, err := e.runner.Run(ctx, e.cfg.Pdfimages, "-list", path)
	if err != nil {
		return -1, []string{string(errb)}
	}
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	// two header lines precede the listing
	if len(lines) <= 2 {
		return 0, nil
	}
	return len(lines) - 2, nil
}

// ExtractImages renders embedded images to outDir with pdfimages -png,
// returning the produced file paths. Failures surface as an error; callers
// treat them as warnings.
func (e *Extractor) ExtractImages(ctx context.Context, path, outDir string) ([]string, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, err
	}
	prefix := filepath.Join(outDir, "img")
	if _, errb, err := e.runner.Run(ctx, e.cfg.Pdfimages, "-png", path, prefix); err != nil {
		return nil, fmt.Errorf("pdfimages: %w (%s)", err, truncate(string(errb), 512))
	}
	matches, _ := filepath.Glob(prefix + "-*.png")
	return matches, nil
}
