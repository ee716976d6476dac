// Command cpufreq-monitor records per-core CPU frequency to a CSV file.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/and161185/cpufreq-monitor/cmd/monitor/collector"
	"github.com/and161185/cpufreq-monitor/internal/buildinfo"
	"github.com/and161185/cpufreq-monitor/internal/config"
	"github.com/and161185/cpufreq-monitor/internal/monitor"
	"github.com/and161185/cpufreq-monitor/storage/csvfile"
)

func main() {
	if err := run(); err != nil {
		exit(err)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return newRootCmd(monitor.StdoutConsole()).ExecuteContext(ctx)
}

func exit(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func newRootCmd(console *monitor.Console) *cobra.Command {
	var cfg *config.MonitorConfig

	cmd := &cobra.Command{
		Use:   "cpufreq-monitor",
		Short: "Record CPU core frequencies to a CSV file once per second",
		Long: `Samples scaling_cur_freq of every CPU core (or of the core given with --core)
once per second and appends one row per sample to a new CSV file in the
current directory. Stop with Ctrl+C.`,
		Example: `  cpufreq-monitor
  cpufreq-monitor --core 3`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg.ApplyFlags()

			logger, err := config.NewLogger()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()
			cfg.Logger = logger

			return runMonitor(cmd.Context(), cfg, console)
		},
	}
	cfg = config.NewMonitorConfig(cmd.Flags())

	return cmd
}

func runMonitor(ctx context.Context, cfg *config.MonitorConfig, console *monitor.Console) error {
	log := cfg.Logger
	buildinfo.LogBuildInfo(log)

	if info, err := collector.DescribeCPU(ctx); err != nil {
		log.Warnw("cpu description unavailable", "error", err)
	} else {
		f := info.Features
		log.Infow("cpu",
			"model", info.ModelName,
			"logical_cores", info.LogicalCores,
			"sse", f.SSE,
			"sse2", f.SSE2,
			"avx", f.AVX,
			"avx2", f.AVX2,
			"avx512f", f.AVX512F,
			"amx", f.AMX,
		)
	}

	sysfs := collector.NewSysfs(cfg.SysfsRoot, log)
	core0 := sysfs.Read(0)
	log.Infow("cpu frequency", "core0_mhz", core0.Value(), "core0_readable", core0.Readable())

	_, err := monitor.New(cfg, sysfs, sysfs, csvfile.Open, console).Run(ctx)
	return err
}
