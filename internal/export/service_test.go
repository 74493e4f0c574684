package export

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jdelacruz-io/campus-records/constants"
	"github.com/jdelacruz-io/campus-records/internal/entity"
	"github.com/jdelacruz-io/campus-records/internal/pipeline"
	"github.com/jdelacruz-io/campus-records/internal/repository"
)

func TestBatchSummaryXLSX(t *testing.T) {
	records := repository.NewMemoryRecordRepository()
	ctx := context.Background()
	rec := entity.NewRecord(constants.KindStudent, "/data/student.xlsx", nil)
	rec.ContentHash = "abc"
	require.NoError(t, records.Store(ctx, rec))

	svc := NewService(records, slog.New(slog.NewTextHandler(io.Discard, nil)))
	outcomes := []pipeline.Outcome{
		{
			SourcePath: "/data/student.xlsx",
			Status:     constants.OutcomeStored,
			Kind:       constants.KindStudent,
			Collection: "students",
			Records:    1,
			Duration:   150 * time.Millisecond,
		},
		{
			SourcePath: "/data/broken.xlsx",
			Status:     constants.OutcomeFailed,
			Reason:     "open workbook: zip: not a valid zip file",
		},
	}

	data, err := svc.BatchSummaryXLSX(ctx, outcomes)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	get := func(sheet, cell string) string {
		v, err := f.GetCellValue(sheet, cell)
		require.NoError(t, err)
		return v
	}

	assert.Equal(t, "Source Path", get("Documents", "A1"))
	assert.Equal(t, "/data/student.xlsx", get("Documents", "A2"))
	assert.Equal(t, "STORED", get("Documents", "B2"))
	assert.Equal(t, "STUDENT", get("Documents", "C2"))
	assert.Equal(t, "students", get("Documents", "D2"))
	assert.Equal(t, "1", get("Documents", "E2"))
	assert.Equal(t, "150", get("Documents", "G2"))
	assert.Equal(t, "FAILED", get("Documents", "B3"))
	assert.Equal(t, "open workbook: zip: not a valid zip file", get("Documents", "F3"))

	assert.Equal(t, "Collection", get("Collections", "A1"))
	assert.Equal(t, "students", get("Collections", "A2"))
	assert.Equal(t, "1", get("Collections", "B2"))
}

func TestBatchSummaryXLSXEmptyBatch(t *testing.T) {
	svc := NewService(repository.NewMemoryRecordRepository(), slog.New(slog.NewTextHandler(io.Discard, nil)))

	data, err := svc.BatchSummaryXLSX(context.Background(), nil)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcd…", truncate("abcdefgh", 5))
	assert.Equal(t, "abc", truncate("abc", 0))
}
