// Package csvfile persists rows to a comma-delimited file, syncing every row.
package csvfile

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sync"

	"go.uber.org/multierr"

	"github.com/and161185/cpufreq-monitor/internal/errs"
	"github.com/and161185/cpufreq-monitor/model"
	"github.com/and161185/cpufreq-monitor/storage"
)

// file is the part of *os.File the writer relies on.
type file interface {
	io.WriteSeeker
	Sync() error
	Truncate(size int64) error
	Close() error
}

// Writer owns one output file for the duration of a run.
type Writer struct {
	mu      sync.Mutex
	path    string
	file    file
	columns int
	rows    int
	closed  bool
}

var _ storage.RowWriter = (*Writer)(nil)

// Open adapts Create to storage.OpenFunc.
func Open(path string, header []string) (storage.RowWriter, error) {
	return Create(path, header)
}

// Create makes a new file at path, failing if it already exists, and writes
// the header row.
func Create(path string, header []string) (*Writer, error) {
	if len(header) == 0 {
		return nil, fmt.Errorf("create %s: empty header", path)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", path, err)
	}
	w := &Writer{path: path, file: f, columns: len(header)}
	if err := w.writeRecord(header); err != nil {
		err = multierr.Append(err, f.Close())
		err = multierr.Append(err, os.Remove(path))
		return nil, fmt.Errorf("write header to %s: %w", path, err)
	}
	return w, nil
}

// Write appends one row and forces it to durable storage before returning.
func (w *Writer) Write(row model.Row) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return errs.ErrWriterClosed
	}
	fields := storage.Fields(row)
	if len(fields) != w.columns {
		return fmt.Errorf("%w: %d fields, header has %d", errs.ErrColumnMismatch, len(fields), w.columns)
	}
	if err := w.writeRecord(fields); err != nil {
		return fmt.Errorf("write row to %s: %w", w.path, err)
	}
	w.rows++
	return nil
}

// writeRecord encodes a whole line first so the file only ever sees complete
// rows. A failed write is cut back to the previous row boundary.
func (w *Writer) writeRecord(fields []string) error {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)
	if err := cw.Write(fields); err != nil {
		return err
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}
	off, err := w.file.Seek(0, io.SeekCurrent)
	if err != nil {
		return err
	}
	if _, err := w.file.Write(buf.Bytes()); err != nil {
		return multierr.Append(err, w.rewind(off))
	}
	return w.file.Sync()
}

func (w *Writer) rewind(off int64) error {
	if err := w.file.Truncate(off); err != nil {
		return fmt.Errorf("truncate to %d: %w", off, err)
	}
	if _, err := w.file.Seek(off, io.SeekStart); err != nil {
		return fmt.Errorf("seek to %d: %w", off, err)
	}
	return nil
}

// Path returns the file location.
func (w *Writer) Path() string { return w.path }

// Rows returns the number of data rows written so far.
func (w *Writer) Rows() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.rows
}

// Close syncs and releases the file. Calling it again is a no-op.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil
	}
	w.closed = true
	return multierr.Combine(w.file.Sync(), w.file.Close())
}
