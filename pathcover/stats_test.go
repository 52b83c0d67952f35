package pathcover

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	stats := Summarize([]uint64{2, 4, 4, 2})
	require.Equal(t, 3.0, stats.Mean)
	require.Equal(t, uint64(2), stats.Min)
	require.Equal(t, uint64(4), stats.Max)
	require.InDelta(t, 1.1547, stats.StdDev, 1e-4)
}

func TestSummarizeSingleValue(t *testing.T) {
	stats := Summarize([]uint64{5})
	require.Equal(t, 5.0, stats.Mean)
	require.Equal(t, uint64(5), stats.Min)
	require.Equal(t, uint64(5), stats.Max)
	require.Equal(t, 0.0, stats.StdDev)
}

func TestSummarizeEmpty(t *testing.T) {
	require.Equal(t, CoverageStats{}, Summarize(nil))
}
