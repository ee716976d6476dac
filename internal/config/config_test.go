package config

import (
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/and161185/cpufreq-monitor/internal/errs"
	"github.com/and161185/cpufreq-monitor/internal/utils"
)

func withFreshFlagSet(t *testing.T, args []string, fn func(cfg *MonitorConfig, parseErr error)) {
	t.Helper()
	fs := pflag.NewFlagSet("cpufreq-monitor", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg := NewMonitorConfig(fs)
	err := fs.Parse(args)
	if err == nil {
		cfg.ApplyFlags()
	}
	fn(cfg, err)
}

func TestNewMonitorConfig_Defaults(t *testing.T) {
	withFreshFlagSet(t, nil, func(cfg *MonitorConfig, err error) {
		require.NoError(t, err)
		require.Nil(t, cfg.Core)
		require.Equal(t, DefaultSysfsRoot, cfg.SysfsRoot)
		require.Equal(t, ".", cfg.OutputDir)
		require.Equal(t, time.Second, cfg.Interval)
		require.NotNil(t, cfg.Logger)
	})
}

func TestNewMonitorConfig_CoreFlag(t *testing.T) {
	for _, args := range [][]string{{"-c", "2"}, {"--core", "2"}, {"--core=2"}, {"-c2"}} {
		withFreshFlagSet(t, args, func(cfg *MonitorConfig, err error) {
			require.NoError(t, err, "args %v", args)
			require.NotNil(t, cfg.Core)
			require.Equal(t, 2, *cfg.Core)
		})
	}
}

func TestNewMonitorConfig_CoreZeroIsSelection(t *testing.T) {
	withFreshFlagSet(t, []string{"--core", "0"}, func(cfg *MonitorConfig, err error) {
		require.NoError(t, err)
		require.NotNil(t, cfg.Core)
		require.Equal(t, 0, *cfg.Core)
	})
}

func TestNewMonitorConfig_InvalidCoreFlag(t *testing.T) {
	for _, args := range [][]string{{"-c", "abc"}, {"--core", "1.5"}, {"--core="}} {
		withFreshFlagSet(t, args, func(cfg *MonitorConfig, err error) {
			require.Error(t, err, "args %v", args)
			require.Nil(t, cfg.Core)
		})
	}
}

func TestNewMonitorConfig_NegativeCoreReportsRange(t *testing.T) {
	for _, args := range [][]string{{"--core=-1"}, {"-c", "-1"}} {
		withFreshFlagSet(t, args, func(cfg *MonitorConfig, err error) {
			require.NoError(t, err, "args %v", args)
			require.NotNil(t, cfg.Core)

			err = cfg.ValidateCore(4)
			require.ErrorIs(t, err, errs.ErrCoreOutOfRange)
			require.Contains(t, err.Error(), "core -1")
			require.Contains(t, err.Error(), "0..3")
		})
	}
}

func TestNewMonitorConfig_NilFlagSet(t *testing.T) {
	cfg := NewMonitorConfig(nil)
	cfg.ApplyFlags()
	require.Nil(t, cfg.Core)
}

func TestValidateCore(t *testing.T) {
	cfg := NewMonitorConfig(nil)
	require.NoError(t, cfg.ValidateCore(0), "all-core mode accepts zero cores")

	cfg.Core = utils.IntPtr(3)
	require.NoError(t, cfg.ValidateCore(4))

	err := cfg.ValidateCore(3)
	require.ErrorIs(t, err, errs.ErrCoreOutOfRange)
	require.Contains(t, err.Error(), "core 3")
	require.Contains(t, err.Error(), "0..2")

	err = cfg.ValidateCore(0)
	require.ErrorIs(t, err, errs.ErrCoreOutOfRange)
	require.Contains(t, err.Error(), "no cores")

	cfg.Core = utils.IntPtr(-1)
	require.ErrorIs(t, cfg.ValidateCore(4), errs.ErrCoreOutOfRange)
}

func TestOutputPath(t *testing.T) {
	start := time.Date(2024, 2, 29, 23, 59, 7, 0, time.Local)

	cfg := NewMonitorConfig(nil)
	cfg.OutputDir = "/tmp/runs"
	require.Equal(t, filepath.Join("/tmp/runs", "cpu_frequencies_20240229_235907.csv"), cfg.OutputPath(start))

	cfg.Core = utils.IntPtr(5)
	require.Equal(t, filepath.Join("/tmp/runs", "cpu5_frequencies_20240229_235907.csv"), cfg.OutputPath(start))
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger()
	require.NoError(t, err)
	require.NotNil(t, logger)
	_ = logger.Sync()
}
