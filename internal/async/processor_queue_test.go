package async

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdelacruz-io/campus-records/internal/ingest"
	"github.com/jdelacruz-io/campus-records/internal/pipeline"
	"github.com/jdelacruz-io/campus-records/internal/repository"
)

func newTestQueue(t *testing.T, opts ...Option) (*ProcessorQueue, *repository.MemoryRecordRepository) {
	t.Helper()
	records := repository.NewMemoryRecordRepository()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	proc := pipeline.NewProcessor(records, nil, logger)
	return NewProcessorQueue(proc, logger, opts...), records
}

func textJob(t *testing.T, dir, name, content string) Job {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	res, err := ingest.NewFSScanner().ScanPath(path)
	require.NoError(t, err)
	return Job{File: res.File, SubmittedAt: time.Now(), TraceID: name}
}

func TestQueueProcessesJobs(t *testing.T) {
	q, records := newTestQueue(t, WithWorkers(2), WithQueueSize(8))
	dir := t.TempDir()

	require.NoError(t, q.Enqueue(context.Background(), textJob(t, dir, "history.txt", "Founded in 1946 as a provincial school.")))
	require.NoError(t, q.Enqueue(context.Background(), textJob(t, dir, "hymn.txt", "Hail to thee our alma mater dear.")))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	assert.Len(t, records.All("general_info"), 2)
}

func TestQueueEnqueueAfterShutdownIsNoop(t *testing.T) {
	q, records := newTestQueue(t)
	dir := t.TempDir()
	job := textJob(t, dir, "mission.txt", "Quality education for all learners.")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	require.NoError(t, q.Enqueue(context.Background(), job))
	assert.Empty(t, records.All("general_info"))
}

func TestQueueShutdownIsIdempotent(t *testing.T) {
	q, _ := newTestQueue(t)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	q.Shutdown(ctx)
	q.Shutdown(ctx)
}
