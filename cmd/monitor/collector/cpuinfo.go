package collector

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v4/cpu"
)

// Features lists the instruction-set extensions worth reporting at startup.
type Features struct {
	SSE     bool
	SSE2    bool
	AVX     bool
	AVX2    bool
	AVX512F bool
	AMX     bool
}

// FeaturesFromFlags matches /proc/cpuinfo style flag tokens exactly. AMX is
// reported when either amx_bf16 or amx_tile is present.
func FeaturesFromFlags(flags []string) Features {
	var f Features
	for _, flag := range flags {
		switch flag {
		case "sse":
			f.SSE = true
		case "sse2":
			f.SSE2 = true
		case "avx":
			f.AVX = true
		case "avx2":
			f.AVX2 = true
		case "avx512f":
			f.AVX512F = true
		case "amx_bf16", "amx_tile":
			f.AMX = true
		}
	}
	return f
}

// CPUInfo describes the processor as reported by the platform.
type CPUInfo struct {
	ModelName    string
	LogicalCores int
	Features     Features
}

// DescribeCPU queries gopsutil for the model name, instruction-set features
// and logical core count. It is informational only; sampling never depends on it.
func DescribeCPU(ctx context.Context) (CPUInfo, error) {
	info := CPUInfo{ModelName: "Unknown"}

	stats, err := cpu.InfoWithContext(ctx)
	if err != nil {
		return info, fmt.Errorf("cpu info: %w", err)
	}
	for _, st := range stats {
		if st.ModelName != "" {
			info.ModelName = st.ModelName
			info.Features = FeaturesFromFlags(st.Flags)
			break
		}
	}

	n, err := cpu.CountsWithContext(ctx, true)
	if err != nil {
		return info, fmt.Errorf("cpu counts: %w", err)
	}
	info.LogicalCores = n
	return info, nil
}
