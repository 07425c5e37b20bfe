package investigate

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/transitlab/reseau/core"
	"github.com/transitlab/reseau/shortest"
)

// defaultSeed is the fixed seed substituted when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultSeed int64 = 1

// pair is one sampled (origin, dest) query.
type pair struct {
	origin int64
	dest   int64
}

// runFunc is the shared signature of the three shortest-path entry points.
type runFunc func(*core.Network, int64, int64) (int64, []int64, error)

// Run times the configured shortest-path implementations over a single
// batch of randomly sampled (origin, dest) pairs and returns one Report
// per algorithm, in option order.
//
// Every algorithm answers the same pairs, so the reports compare like
// with like. Pairs always have origin != dest; unreachable pairs are
// legal and counted via Report.Reachable.
//
// Returns:
//   - ErrNilNetwork if n is nil;
//   - ErrBadSampleCount / ErrUnknownAlgorithm for invalid options;
//   - ErrNetworkTooSmall if fewer than two vertices exist;
//   - any error surfaced by an algorithm (e.g. a negative edge cost
//     rejected by a Dijkstra variant), wrapped with query context.
//
// Complexity: O(samples · algorithms · cost of one query).
func Run(n *core.Network, opts ...Option) ([]Report, error) {
	if n == nil {
		return nil, ErrNilNetwork
	}
	// Build options and catch any invalid ones immediately.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	vertices := n.Vertices()
	if len(vertices) < 2 {
		return nil, fmt.Errorf("%w: have %d", ErrNetworkTooSmall, len(vertices))
	}

	// 1) Draw the query batch once; all algorithms replay it.
	pairs := samplePairs(vertices, o.Samples, o.Seed)

	// 2) Measure each algorithm against the shared batch.
	reports := make([]Report, 0, len(o.Algorithms))
	for _, algo := range o.Algorithms {
		run, err := runner(algo)
		if err != nil {
			return nil, err
		}

		rep := Report{Algorithm: algo, Samples: len(pairs)}
		for _, p := range pairs {
			started := time.Now()
			cost, _, err := run(n, p.origin, p.dest)
			rep.Total += time.Since(started)
			if err != nil {
				return nil, fmt.Errorf("investigate: %s %d→%d: %w", algo, p.origin, p.dest, err)
			}
			if cost != shortest.Infinity {
				rep.Reachable++
			}
		}
		rep.Average = rep.Total / time.Duration(rep.Samples)
		reports = append(reports, rep)
	}

	return reports, nil
}

// runner maps an Algorithm onto its implementation in package shortest.
func runner(a Algorithm) (runFunc, error) {
	switch a {
	case AlgorithmDijkstra:
		return shortest.Dijkstra, nil
	case AlgorithmDijkstraHeap:
		return shortest.DijkstraHeap, nil
	case AlgorithmBellmanFord:
		return shortest.BellmanFord, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(a))
	}
}

// samplePairs draws count (origin, dest) pairs with origin != dest,
// uniformly over the vertex set. The same seed over the same vertex
// set always yields the same batch.
//
// Complexity: O(count) expected.
func samplePairs(vertices []int64, count int, seed int64) []pair {
	rng := rngFromSeed(seed)

	pairs := make([]pair, count)
	for i := range pairs {
		origin := vertices[rng.Intn(len(vertices))]
		dest := vertices[rng.Intn(len(vertices))]
		for dest == origin {
			dest = vertices[rng.Intn(len(vertices))]
		}
		pairs[i] = pair{origin: origin, dest: dest}
	}

	return pairs
}

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultSeed; otherwise use the seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultSeed
	}

	return rand.New(rand.NewSource(s))
}
