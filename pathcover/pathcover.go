// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package pathcover

import (
	"encoding/binary"
	"os"
	"sort"

	"github.com/rs/zerolog"

	"github.com/pangraph/graphindex/common"
	"github.com/pangraph/graphindex/graph"
)

// MinK is the smallest admissible window length of a path cover.
const MinK = 2

const (
	// ErrWindowLength is reported for a window length below MinK.
	ErrWindowLength = common.ConstError("path cover window length too small")

	// ErrNodeID is reported for graphs with non-positive node ids.
	ErrNodeID = common.ConstError("path cover requires positive node ids")
)

var logger = zerolog.New(os.Stderr).With().Timestamp().Str("module", "pathcover").Logger()

// ProgressFunc is called before each component is processed, with the
// zero-based component index and the total component count. Returning false
// stops the construction at this component boundary.
type ProgressFunc func(component, total int) bool

// PathCover populates the builder with n paths per weakly-connected
// component, chosen so that every node and every canonical window of k
// consecutive nodes is covered as uniformly as possible.
func PathCover(g graph.HandleGraph, builder PathBuilder, n, k int) error {
	return GenericPathCover(g, builder, n, k, SimpleCoverage{}, nil)
}

// GenericPathCover is PathCover with an explicit coverage policy and an
// optional progress callback.
func GenericPathCover(g graph.HandleGraph, builder PathBuilder, n, k int, cov Coverage, progress ProgressFunc) error {
	if g.NodeCount() == 0 || n == 0 {
		return nil
	}
	if k < MinK {
		logger.Error().Int("k", k).Int("min", MinK).Msg("window length too small")
		return ErrWindowLength
	}
	if minID := g.MinNodeID(); minID < 1 {
		logger.Error().Uint64("min_id", uint64(minID)).Msg("minimum node id must be positive")
		return ErrNodeID
	}

	components := graph.WeaklyConnectedComponents(g)
	builder.AddMetadata()

	contigs := 0
	for contig, component := range components {
		if progress != nil && !progress(contig, len(components)) {
			break
		}
		if err := coverComponent(g, builder, component, uint32(contig), n, k, cov); err != nil {
			return err
		}
		contigs++
	}

	if err := builder.Finish(); err != nil {
		return err
	}
	builder.SetSamples(n)
	builder.SetContigs(contigs)
	builder.SetHaplotypes(n)
	return nil
}

// coverComponent generates n paths in one component and feeds them into
// the builder.
func coverComponent(g graph.HandleGraph, builder PathBuilder, component []common.NodeID, contig uint32, n, k int, cov Coverage) error {
	nodeCoverage := make([]NodeCoverage, 0, len(component))
	for _, id := range component {
		nodeCoverage = append(nodeCoverage, NodeCoverage{ID: id, Coverage: cov.No()})
	}
	// A window and its reverse complement are equivalent.
	windowCoverage := make(map[string]uint64)

	for i := 0; i < n; i++ {
		// Choose a starting node with minimum coverage, then restore id
		// order for the binary searches during extension.
		sort.Slice(nodeCoverage, func(a, b int) bool {
			if nodeCoverage[a].Coverage != nodeCoverage[b].Coverage {
				return cov.GivePriority(nodeCoverage[a].Coverage, nodeCoverage[b].Coverage)
			}
			return nodeCoverage[a].ID < nodeCoverage[b].ID
		})
		path := []graph.Handle{g.GetHandle(nodeCoverage[0].ID, false)}
		nodeCoverage[0].Coverage = cov.Increase(nodeCoverage[0].Coverage)
		sort.Slice(nodeCoverage, func(a, b int) bool {
			return nodeCoverage[a].ID < nodeCoverage[b].ID
		})

		// Extend the path in both directions.
		forwardOK, backwardOK := true, true
		for (forwardOK || backwardOK) && len(path) < len(nodeCoverage) {
			var best graph.Handle
			bestCoverage := cov.Worst()
			update := func(coverage uint64, candidate graph.Handle) {
				if cov.GivePriority(coverage, bestCoverage) {
					bestCoverage = coverage
					best = candidate
				}
			}

			forwardOK = false
			g.FollowEdges(path[len(path)-1], false, func(next graph.Handle) bool {
				forwardOK = true
				if len(path)+1 < k {
					update(nodeCoverage[FindFirst(nodeCoverage, next.ID())].Coverage, next)
				} else {
					update(windowCoverage[windowKey(graph.ForwardWindow(path, next, k))], next)
				}
				return true
			})
			if forwardOK {
				if len(path)+1 >= k {
					key := windowKey(graph.ForwardWindow(path, best, k))
					windowCoverage[key] = cov.Increase(windowCoverage[key])
				}
				at := FindFirst(nodeCoverage, best.ID())
				nodeCoverage[at].Coverage = cov.Increase(nodeCoverage[at].Coverage)
				path = append(path, best)
				if len(path) >= len(nodeCoverage) {
					break
				}
			}

			backwardOK = false
			bestCoverage = cov.Worst()
			g.FollowEdges(path[0], true, func(prev graph.Handle) bool {
				backwardOK = true
				if len(path)+1 < k {
					update(nodeCoverage[FindFirst(nodeCoverage, prev.ID())].Coverage, prev)
				} else {
					update(windowCoverage[windowKey(graph.BackwardWindow(path, prev, k))], prev)
				}
				return true
			})
			if backwardOK {
				if len(path)+1 >= k {
					key := windowKey(graph.BackwardWindow(path, best, k))
					windowCoverage[key] = cov.Increase(windowCoverage[key])
				}
				at := FindFirst(nodeCoverage, best.ID())
				nodeCoverage[at].Coverage = cov.Increase(nodeCoverage[at].Coverage)
				path = append([]graph.Handle{best}, path...)
			}
		}

		if err := builder.Insert(path, true); err != nil {
			return err
		}
		builder.AddPath(PathName{Sample: uint32(i), Contig: contig})
	}

	stats := summarizeNodeCoverage(nodeCoverage)
	logger.Debug().
		Uint32("contig", contig).
		Int("nodes", len(nodeCoverage)).
		Float64("mean", stats.Mean).
		Float64("stddev", stats.StdDev).
		Uint64("min", stats.Min).
		Uint64("max", stats.Max).
		Msg("component covered")
	return nil
}

// windowKey maps a canonical window to a map key. Big-endian packing makes
// the byte-wise order of the keys match the element-wise order of the
// windows.
func windowKey(window []graph.Handle) string {
	buf := make([]byte, 8*len(window))
	for i, h := range window {
		binary.BigEndian.PutUint64(buf[8*i:], uint64(h))
	}
	return string(buf)
}
