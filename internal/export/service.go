// Package export renders batch results as an XLSX workbook: one sheet of
// per-document outcomes and one sheet of per-collection record counts.
package export

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/jdelacruz-io/campus-records/internal/pipeline"
	"github.com/jdelacruz-io/campus-records/internal/repository"
)

// Service is a tiny façade over the record store that produces XLSX bytes
// for batch summaries.
type Service struct {
	records repository.RecordRepository
	logger  *slog.Logger
}

func NewService(records repository.RecordRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{records: records, logger: logger}
}

// BatchSummaryXLSX returns an XLSX workbook (as bytes) summarizing one
// batch run: every document outcome plus the resulting collection counts.
func (s *Service) BatchSummaryXLSX(ctx context.Context, outcomes []pipeline.Outcome) ([]byte, error) {
	start := time.Now()

	f := excelize.NewFile()
	const sheet = "Documents"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Source Path",
		"Status",
		"Kind",
		"Collection",
		"Records",
		"Reason",
		"Elapsed (ms)",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, o := range outcomes {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		write(1, o.SourcePath)
		write(2, string(o.Status))
		write(3, string(o.Kind))
		write(4, o.Collection)
		write(5, o.Records)
		write(6, truncate(o.Reason, 140))
		write(7, o.Duration.Milliseconds())
		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 60) // path
	_ = f.SetColWidth(sheet, "B", "C", 16)
	_ = f.SetColWidth(sheet, "D", "D", 22)
	_ = f.SetColWidth(sheet, "F", "F", 48) // reason

	if err := s.writeCounts(ctx, f); err != nil {
		s.logger.Warn("export.counts.skipped", "error", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(outcomes),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func (s *Service) writeCounts(ctx context.Context, f *excelize.File) error {
	counts, err := s.records.CountByCollection(ctx)
	if err != nil {
		return fmt.Errorf("count records: %w", err)
	}

	const sheet = "Collections"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	_ = f.SetCellValue(sheet, "A1", "Collection")
	_ = f.SetCellValue(sheet, "B1", "Records")

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	for i, name := range names {
		cellA, _ := excelize.CoordinatesToCellName(1, i+2)
		cellB, _ := excelize.CoordinatesToCellName(2, i+2)
		_ = f.SetCellValue(sheet, cellA, name)
		_ = f.SetCellValue(sheet, cellB, counts[name])
	}
	_ = f.SetColWidth(sheet, "A", "A", 24)
	return nil
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
