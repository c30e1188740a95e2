package journal

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/hearthwood/haven/internal/output"
)

// csvHeader is the first row of every store file.
var csvHeader = []string{"timestamp", "mood", "note", "tags"}

// fieldCount is the number of cells in a well-formed row.
const fieldCount = 4

// LoadStats contains statistics about loading the store file.
type LoadStats struct {
	Rows          int // Data rows seen (header excluded)
	Loaded        int // Rows that yielded an entry
	SkippedRows   int // Rows dropped entirely (wrong shape or unreadable)
	BadTimestamps int // Loaded entries whose timestamp cell was unusable
	BadMoods      int // Loaded entries whose mood cell was missing or off the scale
}

// EnsureFile creates the store file with its header row if it does not
// exist or is empty, creating parent directories as needed. Idempotent.
func EnsureFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return output.NewSystemErrorWithCause("failed to create store directory", err)
	}

	info, err := os.Stat(path)
	if err == nil && info.Size() > 0 {
		return nil
	}
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return output.NewSystemErrorWithCause("failed to stat store file: "+path, err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return output.NewSystemErrorWithCause("failed to create store file: "+path, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		_ = f.Close()
		return output.NewSystemErrorWithCause("failed to write store header", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		_ = f.Close()
		return output.NewSystemErrorWithCause("failed to write store header", err)
	}
	if err := f.Close(); err != nil {
		return output.NewSystemErrorWithCause("failed to close store file", err)
	}
	return nil
}

// readFile reads all entries from the store file plus load statistics.
// Rows that cannot be read or have the wrong shape are skipped and
// counted; within a surviving row, an unreadable timestamp or mood cell
// degrades that field only. Returns empty results if the file is missing.
func readFile(path string) ([]*Entry, *LoadStats, error) {
	stats := &LoadStats{}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, stats, nil
		}
		return nil, nil, output.NewSystemErrorWithCause("failed to open store file: "+path, err)
	}
	defer func() { _ = f.Close() }()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var entries []*Entry
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				stats.Rows++
				stats.SkippedRows++
				continue
			}
			return nil, nil, output.NewSystemErrorWithCause("failed to read store file: "+path, err)
		}

		// Skip the header row wherever it appears; concatenated files
		// can carry more than one.
		if len(record) > 0 && strings.TrimSpace(record[0]) == csvHeader[0] {
			continue
		}

		stats.Rows++
		if len(record) != fieldCount {
			stats.SkippedRows++
			continue
		}

		entries = append(entries, parseRecord(record, stats))
		stats.Loaded++
	}

	return entries, stats, nil
}

// parseRecord converts a well-shaped row into an Entry, degrading the
// timestamp and mood fields independently.
func parseRecord(record []string, stats *LoadStats) *Entry {
	entry := &Entry{
		Note: record[2],
		Tags: DecodeTags(record[3]),
	}

	if ts, err := ParseTimestamp(record[0]); err == nil {
		entry.Timestamp = ts
	} else {
		stats.BadTimestamps++
	}

	if mood, err := strconv.Atoi(strings.TrimSpace(record[1])); err == nil {
		entry.Mood = mood
		if !entry.HasMood() {
			stats.BadMoods++
		}
	} else {
		stats.BadMoods++
	}

	return entry
}

// appendEntry appends one entry row to the store file.
func appendEntry(path string, entry *Entry) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return output.NewSystemErrorWithCause("failed to open store file for append: "+path, err)
	}

	record := []string{
		FormatTimestamp(entry.Timestamp),
		strconv.Itoa(entry.Mood),
		entry.Note,
		EncodeTags(entry.Tags),
	}

	w := csv.NewWriter(f)
	if err := w.Write(record); err != nil {
		_ = f.Close()
		return output.NewSystemErrorWithCause("failed to append entry", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		_ = f.Close()
		return output.NewSystemErrorWithCause("failed to append entry", err)
	}
	if err := f.Close(); err != nil {
		return output.NewSystemErrorWithCause("failed to close store file", err)
	}
	return nil
}
