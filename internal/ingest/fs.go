package ingest

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jdelacruz-io/campus-records/constants"
)

// FSScanner reads from the local filesystem and hashes what it finds.
// It remembers content hashes for the lifetime of the scanner, so a batch
// over a directory with duplicated files reports duplicates instead of
// processing them twice.
type FSScanner struct {
	AllowedExts map[string]struct{} // lowercased sans '.'; nil -> default set
	seen        map[string]struct{}
}

func NewFSScanner() *FSScanner {
	return &FSScanner{seen: make(map[string]struct{})}
}

// ScanPath hashes a single file and tags its format. The error return is
// named so the deferred close can surface its failure.
func (s *FSScanner) ScanPath(path string) (out FileResult, err error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return out, err
	}

	ext := constants.NormalizeExt(filepath.Ext(abs))
	format := constants.MapExtToFormat(ext)
	if format == "" || !s.allowed(ext) {
		return out, fmt.Errorf("unsupported or missing extension: %q", ext)
	}

	f, err := os.Open(abs)
	if err != nil {
		return out, err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			err = cerr
		}
	}()

	h := sha256.New()
	size, err := io.Copy(h, f)
	if err != nil {
		return out, err
	}
	hashHex := hex.EncodeToString(h.Sum(nil))

	if s.seen != nil {
		if _, dup := s.seen[hashHex]; dup {
			out.Deduplicated = true
		} else {
			s.seen[hashHex] = struct{}{}
		}
	}

	out.File = SourceFile{
		Path:      abs,
		Ext:       ext,
		Format:    format,
		HashHex:   hashHex,
		Size:      size,
		ScannedAt: time.Now().UTC(),
	}
	return out, nil
}

// ScanDirectory walks root, skips hidden entries if requested, and calls
// ScanPath for each matching file. One bad file never aborts the walk.
func (s *FSScanner) ScanDirectory(root string, skipHidden bool) ([]FileResult, DirStats, error) {
	if strings.TrimSpace(root) == "" {
		return nil, DirStats{}, errors.New("root path is required")
	}

	var results []FileResult
	var stats DirStats

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		stats.Scanned++
		if walkErr != nil {
			results = append(results, FileResult{File: SourceFile{Path: path}, Err: walkErr.Error()})
			stats.Failed++
			return nil
		}
		if skipHidden && IsHidden(path) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		ext := constants.NormalizeExt(filepath.Ext(path))
		if !s.allowed(ext) {
			return nil
		}
		stats.Matched++

		r, err := s.ScanPath(path)
		if err != nil {
			results = append(results, FileResult{File: SourceFile{Path: path}, Err: err.Error()})
			stats.Failed++
			return nil
		}

		results = append(results, r)
		stats.Succeeded++
		if r.Deduplicated {
			stats.Deduplicated++
		}
		return nil
	})

	if err != nil {
		return results, stats, fmt.Errorf("walk: %w", err)
	}
	return results, stats, nil
}

func (s *FSScanner) allowed(ext string) bool {
	allow := s.AllowedExts
	if allow == nil {
		allow = constants.AllowedExtensions
	}
	_, ok := allow[constants.NormalizeExt(ext)]
	return ok
}

// IsHidden checks if a file or directory is hidden (starts with '.').
func IsHidden(path string) bool {
	base := filepath.Base(path)
	return strings.HasPrefix(base, ".")
}
