// Package buildinfo exposes values injected at link time, e.g.
//
//	go build -ldflags "-X github.com/and161185/cpufreq-monitor/internal/buildinfo.BuildVersion=v1.0.0" ./cmd/monitor
package buildinfo

import "go.uber.org/zap"

var (
	BuildVersion string
	BuildDate    string
	BuildCommit  string
)

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

// LogBuildInfo writes version, date and commit as one info entry.
func LogBuildInfo(logger *zap.SugaredLogger) {
	logger.Infow("build info",
		"version", orNA(BuildVersion),
		"date", orNA(BuildDate),
		"commit", orNA(BuildCommit),
	)
}
