// Package investigate - option and result types for the timing harness.
package investigate

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Sentinel errors for harness execution.
var (
	// ErrNilNetwork is returned if a nil network pointer is passed to Run.
	ErrNilNetwork = errors.New("investigate: network is nil")

	// ErrNetworkTooSmall is returned when the network holds fewer than
	// two vertices, leaving no (origin, dest) pair to sample.
	ErrNetworkTooSmall = errors.New("investigate: need at least two vertices")

	// ErrUnknownAlgorithm is returned for names or values outside the
	// Algorithm enum.
	ErrUnknownAlgorithm = errors.New("investigate: unknown algorithm")

	// ErrBadSampleCount is returned when WithSamples receives a value
	// below one.
	ErrBadSampleCount = errors.New("investigate: sample count must be positive")
)

// defaultSamples is the number of (origin, dest) pairs timed per run
// when callers do not override it.
const defaultSamples = 10

// Algorithm selects one of the shortest-path implementations under
// measurement.
type Algorithm int

const (
	// AlgorithmDijkstra is the linear-scan Dijkstra (no heap).
	AlgorithmDijkstra Algorithm = iota

	// AlgorithmDijkstraHeap is Dijkstra backed by the pairing heap.
	AlgorithmDijkstraHeap

	// AlgorithmBellmanFord is edge-relaxation Bellman-Ford.
	AlgorithmBellmanFord
)

// String returns the canonical name understood by ParseAlgorithm.
func (a Algorithm) String() string {
	switch a {
	case AlgorithmDijkstra:
		return "dijkstra"
	case AlgorithmDijkstraHeap:
		return "dijkstra-heap"
	case AlgorithmBellmanFord:
		return "bellman-ford"
	default:
		return fmt.Sprintf("algorithm(%d)", int(a))
	}
}

// ParseAlgorithm maps a case-insensitive name to its Algorithm.
// Recognized names: "dijkstra", "dijkstra-heap", "bellman-ford".
// Unrecognized input yields ErrUnknownAlgorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "dijkstra":
		return AlgorithmDijkstra, nil
	case "dijkstra-heap":
		return AlgorithmDijkstraHeap, nil
	case "bellman-ford":
		return AlgorithmBellmanFord, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}

// Option configures a Run via functional arguments.
// If an Option is invalid (e.g. a non-positive sample count), it is
// recorded internally and surfaced as an error when Run is invoked.
type Option func(*Options)

// Options holds the parameters of one measurement run.
type Options struct {
	// Samples is the number of random (origin, dest) pairs to time.
	Samples int

	// Seed feeds the pair sampler. Zero selects a fixed default seed,
	// so unseeded runs remain reproducible.
	Seed int64

	// Algorithms lists the implementations to measure, in report order.
	Algorithms []Algorithm

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - Samples == 10
//   - Seed == 0 (fixed default stream)
//   - all three algorithms, naive Dijkstra first
//   - error channel clear.
func DefaultOptions() Options {
	return Options{
		Samples:    defaultSamples,
		Seed:       0,
		Algorithms: []Algorithm{AlgorithmDijkstra, AlgorithmDijkstraHeap, AlgorithmBellmanFord},
		err:        nil,
	}
}

// WithSamples sets how many (origin, dest) pairs are timed.
//
//	n > 0: time n pairs
//	n <= 0: invalid option → ErrBadSampleCount
func WithSamples(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: got %d", ErrBadSampleCount, n)
			return
		}
		o.Samples = n
	}
}

// WithSeed fixes the pair sampler's seed so runs can be replayed.
// Zero keeps the default deterministic stream.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithAlgorithms restricts the run to the given implementations, in
// the given order. An empty call leaves the default set in place; a
// value outside the enum is recorded as ErrUnknownAlgorithm.
func WithAlgorithms(algos ...Algorithm) Option {
	return func(o *Options) {
		if len(algos) == 0 {
			return
		}
		for _, a := range algos {
			if a < AlgorithmDijkstra || a > AlgorithmBellmanFord {
				o.err = fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(a))
				return
			}
		}
		o.Algorithms = append([]Algorithm(nil), algos...)
	}
}

// Report aggregates the timing of one algorithm over the sampled pairs.
type Report struct {
	// Algorithm identifies the implementation measured.
	Algorithm Algorithm

	// Samples is the number of (origin, dest) pairs queried.
	Samples int

	// Reachable counts the pairs for which a path exists.
	Reachable int

	// Total is the summed wall-clock time of all queries.
	Total time.Duration

	// Average is Total divided by Samples.
	Average time.Duration
}
