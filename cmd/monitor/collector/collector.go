// Package collector reads CPU topology and per-core clock frequency from sysfs.
package collector

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/and161185/cpufreq-monitor/internal/utils"
	"github.com/and161185/cpufreq-monitor/model"
)

const freqFile = "cpufreq/scaling_cur_freq"

// Sysfs enumerates cores and reads their scaling frequency under Root.
type Sysfs struct {
	Root   string
	Logger *zap.SugaredLogger
}

// NewSysfs returns a collector rooted at root. A nil logger disables logging.
func NewSysfs(root string, logger *zap.SugaredLogger) *Sysfs {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Sysfs{Root: root, Logger: logger}
}

// CountCores counts the cpuN entries of the root directory.
func (s *Sysfs) CountCores() (int, error) {
	entries, err := os.ReadDir(s.Root)
	if err != nil {
		return 0, fmt.Errorf("enumerate cores in %s: %w", s.Root, err)
	}
	count := 0
	for _, e := range entries {
		if isCoreDir(e.Name()) {
			count++
		}
	}
	return count, nil
}

// Read returns the current frequency of core in MHz. Any failure yields an
// unreadable reading; it never aborts the caller.
func (s *Sysfs) Read(core int) model.Reading {
	path := filepath.Join(s.Root, "cpu"+strconv.Itoa(core), freqFile)
	b, err := os.ReadFile(path)
	if err != nil {
		s.Logger.Debugw("failed to read scaling_cur_freq", "core", core, "error", err)
		return model.Reading{Core: core}
	}
	khz, err := strconv.ParseInt(strings.TrimSpace(string(b)), 10, 64)
	if err != nil {
		s.Logger.Debugw("failed to parse cpu frequency", "core", core, "error", err)
		return model.Reading{Core: core}
	}
	return model.Reading{Core: core, MHz: utils.F64Ptr(float64(khz) / 1000)}
}

func isCoreDir(name string) bool {
	digits, ok := strings.CutPrefix(name, "cpu")
	if !ok || digits == "" {
		return false
	}
	for _, c := range digits {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
