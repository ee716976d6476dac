// Package storage defines where sampled rows are persisted.
package storage

import "github.com/and161185/cpufreq-monitor/model"

// RowWriter appends rows after a header fixed at creation time.
type RowWriter interface {
	Write(row model.Row) error
	Path() string
	Close() error
}

// OpenFunc creates a writer for path and writes header to it.
type OpenFunc func(path string, header []string) (RowWriter, error)

// Fields renders a row as header-ordered text fields: the timestamp, one value
// per reading (0 when unreadable), then the average when present.
func Fields(row model.Row) []string {
	out := make([]string, 0, len(row.Readings)+2)
	out = append(out, row.Timestamp())
	for _, r := range row.Readings {
		out = append(out, FormatMHz(r.Value()))
	}
	if row.Average != nil {
		out = append(out, FormatMHz(*row.Average))
	}
	return out
}
