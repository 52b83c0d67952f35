package pathcover

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pangraph/graphindex/common"
)

func TestSimpleCoveragePolicy(t *testing.T) {
	cov := SimpleCoverage{}
	require.Equal(t, uint64(0), cov.No())
	require.Equal(t, ^uint64(0), cov.Worst())
	require.True(t, cov.GivePriority(1, 2))
	require.False(t, cov.GivePriority(2, 2))
	require.False(t, cov.GivePriority(3, 2))
	require.Equal(t, uint64(1), cov.Increase(cov.No()))

	// Any real coverage takes priority over the worst one.
	require.True(t, cov.GivePriority(cov.No(), cov.Worst()))
}

func TestFindFirst(t *testing.T) {
	array := []NodeCoverage{
		{ID: 2, Coverage: 7},
		{ID: 5, Coverage: 1},
		{ID: 9, Coverage: 4},
	}
	for want, id := range map[int]common.NodeID{0: 2, 1: 5, 2: 9} {
		require.Equal(t, want, FindFirst(array, id), "wrong entry for node %d", id)
	}
}
