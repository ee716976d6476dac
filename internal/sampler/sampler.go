// Package sampler turns per-core readings into time-coherent rows.
package sampler

import (
	"time"

	"github.com/and161185/cpufreq-monitor/internal/utils"
	"github.com/and161185/cpufreq-monitor/model"
)

//go:generate mockgen -destination=mocks/reader_mock.go -package=mocks . Reader

// Reader returns the current frequency of a core. It must not fail: an
// unreadable sensor is reported through the reading itself.
type Reader interface {
	Read(core int) model.Reading
}

// Sampler reads a fixed set of cores each tick.
type Sampler struct {
	reader Reader
	cores  []int
	single bool
}

// NewAllCores samples cores 0..count-1 and appends their mean to every row.
func NewAllCores(r Reader, count int) *Sampler {
	if count < 0 {
		count = 0
	}
	cores := make([]int, count)
	for i := range cores {
		cores[i] = i
	}
	return &Sampler{reader: r, cores: cores}
}

// NewSingleCore samples only the given core; rows carry no mean.
func NewSingleCore(r Reader, core int) *Sampler {
	return &Sampler{reader: r, cores: []int{core}, single: true}
}

// Cores returns the monitored core identifiers in read order.
func (s *Sampler) Cores() []int {
	return append([]int(nil), s.cores...)
}

// SingleCore reports whether the sampler monitors exactly one selected core.
func (s *Sampler) SingleCore() bool { return s.single }

// Header returns the column labels matching every row produced by Sample.
func (s *Sampler) Header() []string {
	h := make([]string, 0, len(s.cores)+2)
	h = append(h, model.TimestampLabel)
	for _, c := range s.cores {
		h = append(h, model.CoreLabel(c))
	}
	if s.hasAverage() {
		h = append(h, model.AverageLabel)
	}
	return h
}

// Sample reads every monitored core once, in order, stamping the row with ts.
func (s *Sampler) Sample(ts time.Time) model.Row {
	row := model.Row{Time: ts, Readings: make([]model.Reading, 0, len(s.cores))}
	for _, c := range s.cores {
		row.Readings = append(row.Readings, s.reader.Read(c))
	}
	if s.hasAverage() {
		row.Average = utils.F64Ptr(Mean(row.Readings))
	}
	return row
}

func (s *Sampler) hasAverage() bool {
	return !s.single && len(s.cores) > 0
}

// Mean is the arithmetic mean of the readings, unreadable ones counting as 0.
// The mean of no readings is 0.
func Mean(readings []model.Reading) float64 {
	if len(readings) == 0 {
		return 0
	}
	var sum float64
	for _, r := range readings {
		sum += r.Value()
	}
	return sum / float64(len(readings))
}
