package async

import (
	"context"
	"time"

	"github.com/jdelacruz-io/campus-records/internal/ingest"
)

// Job is one ingested file awaiting extraction.
type Job struct {
	File        ingest.SourceFile
	SubmittedAt time.Time
	TraceID     string
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}
