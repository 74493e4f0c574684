// Package pipeline routes ingested files through kind detection, the
// matching extractor, payload validation and the record sink. One bad
// document never aborts a batch: every failure is folded into the
// per-document Outcome.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jdelacruz-io/campus-records/constants"
	"github.com/jdelacruz-io/campus-records/internal/entity"
	"github.com/jdelacruz-io/campus-records/internal/extract"
	"github.com/jdelacruz-io/campus-records/internal/grid"
	"github.com/jdelacruz-io/campus-records/internal/ingest"
	"github.com/jdelacruz-io/campus-records/internal/pdftext"
	"github.com/jdelacruz-io/campus-records/internal/report"
	"github.com/jdelacruz-io/campus-records/internal/repository"
)

// Outcome summarizes one document run for logging and the batch report.
type Outcome struct {
	SourcePath string
	Status     constants.OutcomeStatus
	Kind       constants.DocKind
	Collection string
	Records    int
	Reason     string
	Duration   time.Duration
}

// Processor is the per-document pipeline. Safe for concurrent use.
type Processor struct {
	records repository.RecordRepository
	pdf     *pdftext.Extractor
	logger  *slog.Logger
}

func NewProcessor(records repository.RecordRepository, pdf *pdftext.Extractor, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{records: records, pdf: pdf, logger: logger}
}

// ProcessFile runs one ingested file end to end and reports the outcome.
func (p *Processor) ProcessFile(ctx context.Context, src ingest.SourceFile) Outcome {
	start := time.Now()
	var out Outcome
	switch src.Format {
	case constants.Spreadsheet:
		out = p.processWorkbook(ctx, src)
	case constants.PDF:
		out = p.processPDF(ctx, src)
	case constants.Text:
		out = p.processText(ctx, src)
	default:
		out = Outcome{Status: constants.OutcomeSkipped, Reason: fmt.Sprintf("unsupported format %q", src.Format)}
	}
	out.SourcePath = src.Path
	out.Duration = time.Since(start)

	p.logger.Info("pipeline.document processed",
		"path", src.Path,
		"status", string(out.Status),
		"kind", string(out.Kind),
		"records", out.Records,
		"duration_ms", out.Duration.Milliseconds(),
	)
	return out
}

func (p *Processor) processWorkbook(ctx context.Context, src ingest.SourceFile) Outcome {
	sheets, err := ingest.LoadWorkbook(src.Path)
	if err != nil {
		return Outcome{Status: constants.OutcomeFailed, Reason: err.Error()}
	}

	out := Outcome{Status: constants.OutcomeSkipped, Reason: "no extractable sheet"}
	for _, sheet := range sheets {
		kind := DetectSheetKind(src.Path, sheet.Name, sheet.Grid)
		rec, ok := p.extractSheet(kind, sheet, src)
		if !ok {
			continue
		}
		if err := p.store(ctx, rec); err != nil {
			out.Status = constants.OutcomeFailed
			out.Reason = err.Error()
			continue
		}
		out.Records++
		if out.Records == 1 {
			out.Kind = rec.Kind
			out.Collection = rec.Collection
		}
	}
	if out.Records > 0 {
		// a stored sheet makes the document Stored, but a failed sibling
		// sheet must stay visible in the batch summary
		if out.Status == constants.OutcomeFailed {
			out.Reason = "partial: " + out.Reason
		} else {
			out.Reason = ""
		}
		out.Status = constants.OutcomeStored
	}
	return out
}

// extractSheet routes one sheet to its extractor and wraps the payload in a
// record. A false return is a structural miss: the sheet had no usable shape
// for its detected kind. Unknown sheets are preserved verbatim so nothing
// ingested is lost.
func (p *Processor) extractSheet(kind constants.DocKind, sheet ingest.Sheet, src ingest.SourceFile) (*entity.Record, bool) {
	rec := entity.NewRecord(kind, src.Path, nil)
	rec.ContentHash = sheetHash(src.HashHex, sheet.Name)
	rec.Metadata["source_format"] = src.Format
	rec.Metadata["sheet"] = sheet.Name

	switch kind {
	case constants.KindCurriculum:
		c := extract.ExtractCurriculum(sheet.Grid)
		if c.Program == "" && len(c.Subjects) == 0 {
			return nil, false
		}
		rec.Payload = c
		rec.FormattedText = report.Curriculum(c)
		rec.Metadata["program"] = c.Program
		rec.Metadata["program_code"] = c.ProgramCode
		rec.Metadata["department"] = c.Department
		rec.Metadata["subjects"] = strconv.Itoa(len(c.Subjects))

	case constants.KindCOR:
		c := extract.ExtractCOR(sheet.Grid)
		if c.StudentName == "" && len(c.Classes) == 0 {
			return nil, false
		}
		rec.Payload = c
		rec.FormattedText = report.COR(c)
		rec.Metadata["student_name"] = c.StudentName
		rec.Metadata["course"] = c.Course
		rec.Metadata["classes"] = strconv.Itoa(len(c.Classes))

	case constants.KindDutySchedule:
		d := extract.ExtractDutySchedule(sheet.Grid)
		if d.Name == "" && len(d.Entries) == 0 {
			return nil, false
		}
		rec.Payload = d
		rec.FormattedText = report.DutySchedule(d)
		rec.Metadata["name"] = d.Name
		rec.Metadata["department"] = d.Department

	case constants.KindStudent:
		s, ok := extract.ExtractStudent(sheet.Grid)
		if !ok {
			return nil, false
		}
		rec.Payload = s
		rec.FormattedText = report.Student(s)
		rec.Metadata["full_name"] = s.FullName()
		rec.Metadata["course"] = s.Course
		rec.Metadata["department"] = s.Department

	case constants.KindFaculty:
		f, ok := extract.ExtractFaculty(sheet.Grid)
		if !ok {
			return nil, false
		}
		rec.Payload = f
		rec.FormattedText = report.Faculty(f)
		rec.Metadata["full_name"] = f.FullName()
		rec.Metadata["department"] = f.Department

	case constants.KindAdmin:
		a, ok := extract.ExtractAdmin(sheet.Grid)
		if !ok {
			return nil, false
		}
		rec.Payload = a
		rec.FormattedText = report.Admin(a)
		rec.Metadata["full_name"] = a.FullName()
		rec.Metadata["admin_type"] = a.AdminType
		rec.Metadata["department"] = a.Department

	case constants.KindNonTeaching:
		n, ok := extract.ExtractNonTeaching(sheet.Grid)
		if !ok {
			return nil, false
		}
		rec.Payload = n
		rec.FormattedText = report.NonTeaching(n)
		rec.Metadata["full_name"] = n.FullName()
		rec.Metadata["department"] = n.Department

	case constants.KindGeneralInfo:
		g := extract.ExtractGeneralInfo(flattenGrid(sheet.Grid), src.Path)
		rec.Payload = g
		rec.FormattedText = report.GeneralInfo(g)
		rec.Metadata["info_type"] = g.Type

	case constants.KindResume:
		r, ok := extract.ExtractResume(flattenGrid(sheet.Grid), src.Path)
		if !ok {
			return nil, false
		}
		rec.Payload = r
		rec.FormattedText = report.Resume(r)
		rec.Metadata["full_name"] = r.FullName()
		rec.Metadata["department"] = r.Department

	default:
		// Unclassified sheets keep their flattened text so they stay
		// searchable in the unclassified collection.
		text := flattenGrid(sheet.Grid)
		if strings.TrimSpace(text) == "" {
			return nil, false
		}
		rec.Kind = constants.KindUnknown
		rec.Collection = constants.KindUnknown.Collection()
		rec.Payload = map[string]string{"sheet": sheet.Name}
		rec.FormattedText = text
	}
	return rec, true
}

func (p *Processor) processPDF(ctx context.Context, src ingest.SourceFile) Outcome {
	res, err := p.pdf.Extract(ctx, src.Path)
	if err != nil {
		return Outcome{Status: constants.OutcomeFailed, Reason: err.Error()}
	}
	out := p.storeTextDocument(ctx, src, res.Text, map[string]string{
		"pages":  strconv.Itoa(res.Pages),
		"images": strconv.Itoa(res.Images),
	})
	return out
}

func (p *Processor) processText(ctx context.Context, src ingest.SourceFile) Outcome {
	data, err := os.ReadFile(src.Path)
	if err != nil {
		return Outcome{Status: constants.OutcomeFailed, Reason: err.Error()}
	}
	return p.storeTextDocument(ctx, src, string(data), nil)
}

// storeTextDocument routes text-borne content to the resume or the
// general-info extractor. A resume whose name cannot be established
// degrades to a general document rather than being dropped.
func (p *Processor) storeTextDocument(ctx context.Context, src ingest.SourceFile, text string, extra map[string]string) Outcome {
	if strings.TrimSpace(text) == "" {
		return Outcome{Status: constants.OutcomeSkipped, Reason: "empty document"}
	}

	kind := DetectTextKind(src.Path, text)
	rec := entity.NewRecord(kind, src.Path, nil)
	rec.ContentHash = src.HashHex
	rec.Metadata["source_format"] = src.Format
	for k, v := range extra {
		rec.Metadata[k] = v
	}

	if kind == constants.KindResume {
		r, ok := extract.ExtractResume(text, src.Path)
		if ok {
			rec.Payload = r
			rec.FormattedText = report.Resume(r)
			rec.Metadata["full_name"] = r.FullName()
			rec.Metadata["department"] = r.Department
		} else {
			kind = constants.KindGeneralInfo
		}
	}
	if kind == constants.KindGeneralInfo {
		g := extract.ExtractGeneralInfo(text, src.Path)
		rec.Kind = constants.KindGeneralInfo
		rec.Collection = constants.KindGeneralInfo.Collection()
		rec.Payload = g
		rec.FormattedText = report.GeneralInfo(g)
		rec.Metadata["info_type"] = g.Type
	}

	if err := p.store(ctx, rec); err != nil {
		return Outcome{Status: constants.OutcomeFailed, Kind: rec.Kind, Reason: err.Error()}
	}
	return Outcome{Status: constants.OutcomeStored, Kind: rec.Kind, Collection: rec.Collection, Records: 1}
}

func (p *Processor) store(ctx context.Context, rec *entity.Record) error {
	if err := ValidatePayload(rec.Kind, rec.Payload); err != nil {
		return fmt.Errorf("validate %s record: %w", rec.Kind, err)
	}
	if err := p.records.Store(ctx, rec); err != nil {
		return fmt.Errorf("store %s record: %w", rec.Kind, err)
	}
	return nil
}

// sheetHash derives a per-sheet dedup key so sheets of one workbook do
// not overwrite each other on upsert.
func sheetHash(fileHash, sheetName string) string {
	if sheetName == "" {
		return fileHash
	}
	return fileHash + "#" + sheetName
}

func flattenGrid(g grid.Grid) string {
	var b strings.Builder
	for r := 0; r < g.NumRows(); r++ {
		var cells []string
		for c := 0; c < g.RowLen(r); c++ {
			if v := g.Cell(r, c); v != "" {
				cells = append(cells, v)
			}
		}
		if len(cells) > 0 {
			b.WriteString(strings.Join(cells, " | "))
			b.WriteByte('\n')
		}
	}
	return b.String()
}
