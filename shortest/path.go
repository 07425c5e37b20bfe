// Package shortest: per-query bookkeeping and path reconstruction
// shared by all three algorithms. Each algorithm keeps its own
// extraction strategy; only the distance/predecessor plumbing and the
// backward walk live here.
package shortest

// search holds the tentative distances and predecessors of one query.
type search struct {
	dist map[int64]int64
	prev map[int64]int64
}

// newSearch initializes every vertex to (Infinity, noVertex) and the
// origin to distance 0.
func newSearch(vertices []int64, origin int64) *search {
	s := &search{
		dist: make(map[int64]int64, len(vertices)),
		prev: make(map[int64]int64, len(vertices)),
	}
	for _, v := range vertices {
		s.dist[v] = Infinity
		s.prev[v] = noVertex
	}
	s.dist[origin] = 0

	return s
}

// pathTo reconstructs the origin→dest path by walking predecessors
// backward from dest and reversing in place.
//
// Unreachable destinations report (Infinity, nil). A finite distance
// whose predecessor chain fails to reach the origin within V steps
// (possible only under a reachable negative cycle, whose behavior is
// unspecified) also reports (Infinity, nil) rather than looping.
func (s *search) pathTo(origin, dest int64) (int64, []int64) {
	if s.dist[dest] == Infinity {
		return Infinity, nil
	}

	path := []int64{dest}
	for v, steps := dest, len(s.prev); v != origin; steps-- {
		if steps == 0 {
			return Infinity, nil
		}
		v = s.prev[v]
		path = append(path, v)
	}

	// Reverse: the walk collected dest→origin.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return s.dist[dest], path
}
