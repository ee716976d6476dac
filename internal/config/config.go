// Package config provides application configuration structures and helpers.
package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/and161185/cpufreq-monitor/internal/errs"
	"github.com/and161185/cpufreq-monitor/internal/utils"
)

const (
	// DefaultInterval is the fixed delay between ticks.
	DefaultInterval = time.Second
	// DefaultSysfsRoot is the sysfs directory exposing one cpuN entry per core.
	DefaultSysfsRoot = "/sys/devices/system/cpu"

	filePrefix     = "cpu_frequencies_"
	fileTimeLayout = "20060102_150405"
	fileExt        = ".csv"
)

// MonitorConfig holds the configuration settings for a monitoring run.
type MonitorConfig struct {
	Core      *int               // Selected core; nil monitors all cores
	SysfsRoot string             // Directory holding the cpuN entries
	OutputDir string             // Directory for the output file
	Interval  time.Duration      // Delay between ticks
	Logger    *zap.SugaredLogger // Diagnostics, never the console status line

	core coreFlag
}

// NewMonitorConfig returns defaults and, when fs is not nil, registers the
// -c/--core flag on it.
func NewMonitorConfig(fs *pflag.FlagSet) *MonitorConfig {
	cfg := &MonitorConfig{
		SysfsRoot: DefaultSysfsRoot,
		OutputDir: ".",
		Interval:  DefaultInterval,
		Logger:    zap.NewNop().Sugar(),
	}
	if fs != nil {
		fs.VarP(&cfg.core, "core", "c", "monitor only this CPU core (default: all cores)")
	}
	return cfg
}

// ApplyFlags copies parsed flag values into the config. Flags the operator did
// not set leave the current values untouched.
func (cfg *MonitorConfig) ApplyFlags() {
	if cfg.core.set {
		cfg.Core = utils.IntPtr(cfg.core.v)
	}
}

// ValidateCore checks the selected core against the number of detected cores.
func (cfg *MonitorConfig) ValidateCore(count int) error {
	if cfg.Core == nil {
		return nil
	}
	k := *cfg.Core
	if count <= 0 {
		return fmt.Errorf("%w: core %d requested but no cores were detected", errs.ErrCoreOutOfRange, k)
	}
	if k < 0 || k >= count {
		return fmt.Errorf("%w: core %d, valid cores are 0..%d", errs.ErrCoreOutOfRange, k, count-1)
	}
	return nil
}

// OutputPath names the file of a run started at start.
func (cfg *MonitorConfig) OutputPath(start time.Time) string {
	prefix := filePrefix
	if cfg.Core != nil {
		prefix = fmt.Sprintf("cpu%d_frequencies_", *cfg.Core)
	}
	return filepath.Join(cfg.OutputDir, prefix+start.Format(fileTimeLayout)+fileExt)
}

// NewLogger builds the production logger. Logs go to stderr so the status line
// on stdout stays intact.
func NewLogger() (*zap.SugaredLogger, error) {
	logCfg := zap.NewProductionConfig()
	logCfg.OutputPaths = []string{"stderr"}
	logCfg.ErrorOutputPaths = []string{"stderr"}

	logger, err := logCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger.Sugar(), nil
}
