package pathcover

import "gonum.org/v1/gonum/stat"

// CoverageStats summarizes the distribution of node coverage counters
// after a path cover.
type CoverageStats struct {
	Mean   float64
	StdDev float64
	Min    uint64
	Max    uint64
}

// Summarize computes coverage statistics over raw counters.
func Summarize(coverage []uint64) CoverageStats {
	if len(coverage) == 0 {
		return CoverageStats{}
	}
	values := make([]float64, len(coverage))
	stats := CoverageStats{Min: coverage[0], Max: coverage[0]}
	for i, c := range coverage {
		values[i] = float64(c)
		if c < stats.Min {
			stats.Min = c
		}
		if c > stats.Max {
			stats.Max = c
		}
	}
	stats.Mean = stat.Mean(values, nil)
	if len(values) > 1 {
		stats.StdDev = stat.StdDev(values, nil)
	}
	return stats
}

func summarizeNodeCoverage(nodeCoverage []NodeCoverage) CoverageStats {
	coverage := make([]uint64, len(nodeCoverage))
	for i, nc := range nodeCoverage {
		coverage[i] = nc.Coverage
	}
	return Summarize(coverage)
}
