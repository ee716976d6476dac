package buildinfo

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogBuildInfo_DefaultsAndSet(t *testing.T) {
	ov, od, oc := BuildVersion, BuildDate, BuildCommit
	t.Cleanup(func() { BuildVersion, BuildDate, BuildCommit = ov, od, oc })

	core, obs := observer.New(zap.InfoLevel)
	logger := zap.New(core).Sugar()

	BuildVersion, BuildDate, BuildCommit = "", "", ""
	LogBuildInfo(logger)

	BuildVersion, BuildDate, BuildCommit = "v1", "2025-09-06", "deadbeef"
	LogBuildInfo(logger)

	entries := obs.FilterMessage("build info").All()
	require.Len(t, entries, 2)
	require.Equal(t, "N/A", entries[0].ContextMap()["version"])
	require.Equal(t, "v1", entries[1].ContextMap()["version"])
	require.Equal(t, "deadbeef", entries[1].ContextMap()["commit"])
}
