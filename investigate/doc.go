// Package investigate benchmarks the shortest-path implementations
// against each other on a live network.
//
// A run samples random (origin, dest) stop pairs once, replays the
// same batch through every requested algorithm, and reports per
// algorithm how long the batch took and how many pairs were reachable.
// Sampling is seeded, so a run can be replayed exactly.
//
// # Usage
//
//	reports, err := investigate.Run(net,
//	    investigate.WithSamples(100),
//	    investigate.WithSeed(42),
//	    investigate.WithAlgorithms(
//	        investigate.AlgorithmDijkstraHeap,
//	        investigate.AlgorithmBellmanFord,
//	    ),
//	)
//
// Reports come back in option order. Timing covers only the query
// calls, not sampling or validation.
package investigate
