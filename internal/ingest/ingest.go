package ingest

import "time"

// SourceFile is one discovered document, hashed and format-tagged.
type SourceFile struct {
	Path      string
	Ext       string
	Format    string // constants.Spreadsheet | constants.PDF | constants.Text
	HashHex   string
	Size      int64
	ScannedAt time.Time
}

// DirStats summarizes a directory scan.
type DirStats struct {
	Scanned      uint32
	Matched      uint32
	Succeeded    uint32
	Deduplicated uint32
	Failed       uint32
}

// FileResult is the per-file scan outcome.
type FileResult struct {
	File         SourceFile
	Deduplicated bool
	Err          string
}
