// Package monitor drives the sampling loop: it validates the run, opens the
// output, writes one row per tick and shuts down cleanly when ctx ends.
package monitor

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/multierr"

	"github.com/and161185/cpufreq-monitor/internal/config"
	"github.com/and161185/cpufreq-monitor/internal/sampler"
	"github.com/and161185/cpufreq-monitor/storage"
)

// State is the lifecycle phase of a Monitor.
type State int32

const (
	StateStartup State = iota
	StateRunning
	StateShuttingDown
)

func (s State) String() string {
	switch s {
	case StateStartup:
		return "startup"
	case StateRunning:
		return "running"
	case StateShuttingDown:
		return "shutting down"
	default:
		return fmt.Sprintf("State(%d)", int32(s))
	}
}

// Topology reports how many cores can be sampled.
type Topology interface {
	CountCores() (int, error)
}

// Monitor owns the output writer for the whole run.
type Monitor struct {
	cfg      *config.MonitorConfig
	topology Topology
	reader   sampler.Reader
	open     storage.OpenFunc
	console  *Console
	now      func() time.Time
	state    atomic.Int32
}

// New wires a monitor. console may be nil to run silently.
func New(cfg *config.MonitorConfig, topology Topology, reader sampler.Reader, open storage.OpenFunc, console *Console) *Monitor {
	return &Monitor{
		cfg:      cfg,
		topology: topology,
		reader:   reader,
		open:     open,
		console:  console,
		now:      time.Now,
	}
}

// State returns the current lifecycle phase.
func (m *Monitor) State() State {
	return State(m.state.Load())
}

func (m *Monitor) setState(s State) {
	m.state.Store(int32(s))
}

// Run samples until ctx is done and returns the output file path. Startup
// failures return before any file is created.
func (m *Monitor) Run(ctx context.Context) (string, error) {
	m.setState(StateStartup)
	log := m.cfg.Logger

	count, err := m.topology.CountCores()
	if err != nil {
		return "", err
	}
	if err := m.cfg.ValidateCore(count); err != nil {
		return "", err
	}

	var s *sampler.Sampler
	if m.cfg.Core != nil {
		s = sampler.NewSingleCore(m.reader, *m.cfg.Core)
	} else {
		s = sampler.NewAllCores(m.reader, count)
	}

	path := m.cfg.OutputPath(m.now())
	w, err := m.open(path, s.Header())
	if err != nil {
		return "", fmt.Errorf("open output: %w", err)
	}

	log.Infow("monitor started",
		"cores", count,
		"single_core", m.cfg.Core != nil,
		"columns", len(s.Header()),
		"interval", m.cfg.Interval,
		"output", path,
	)
	if m.console != nil {
		m.console.Started(count, m.cfg.Core, path)
	}

	m.setState(StateRunning)
	rows, err := m.loop(ctx, s, w)

	m.setState(StateShuttingDown)
	if cerr := w.Close(); cerr != nil {
		err = multierr.Append(err, fmt.Errorf("close %s: %w", path, cerr))
	}
	if m.console != nil {
		m.console.Stopped(path)
	}
	log.Infow("monitor stopped", "rows", rows, "output", path)

	return path, err
}

func (m *Monitor) loop(ctx context.Context, s *sampler.Sampler, w storage.RowWriter) (int, error) {
	rows := 0
	for {
		if ctx.Err() != nil {
			return rows, nil
		}

		row := s.Sample(m.now())
		if ctx.Err() != nil {
			// stop requested during the reads; nothing more is written
			return rows, nil
		}
		if err := w.Write(row); err != nil {
			return rows, fmt.Errorf("write row: %w", err)
		}
		rows++
		if m.console != nil {
			m.console.Status(row, s.SingleCore())
		}

		t := time.NewTimer(m.cfg.Interval)
		select {
		case <-ctx.Done():
			t.Stop()
			return rows, nil
		case <-t.C:
		}
	}
}
