// Package model contains core data types for the project.
package model

import (
	"strconv"
	"time"
)

// Column labels and formats shared by the sampler, the writers and the console.
const (
	TimestampLabel  = "Timestamp"
	AverageLabel    = "Average"
	TimestampLayout = "2006-01-02 15:04:05"
)

// CoreLabel returns the column label of a core, e.g. "CPU3".
func CoreLabel(core int) string {
	return "CPU" + strconv.Itoa(core)
}

// Reading is one core's frequency at a tick.
type Reading struct {
	Core int      `json:"core"`          // Core identifier.
	MHz  *float64 `json:"mhz,omitempty"` // Frequency in MHz, nil when the sensor was unreadable.
}

// Readable reports whether the sensor returned a value.
func (r Reading) Readable() bool { return r.MHz != nil }

// Value returns the frequency, or 0 for an unreadable sensor.
func (r Reading) Value() float64 {
	if r.MHz == nil {
		return 0
	}
	return *r.MHz
}

// Row represents all readings taken during a single tick.
type Row struct {
	Time     time.Time `json:"time"`              // Captured once before the first read.
	Readings []Reading `json:"readings"`          // Ordered by core identifier.
	Average  *float64  `json:"average,omitempty"` // Set in all-core mode with at least one core.
}

// Timestamp formats the row time with second resolution.
func (r Row) Timestamp() string {
	return r.Time.Format(TimestampLayout)
}
