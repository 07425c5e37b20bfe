// Package core_test provides benchmarks for core.Network operations.
package core_test

import (
	"testing"

	"github.com/transitlab/reseau/core"
)

// BenchmarkAddEdge measures edge insertion into a growing star: one hub
// with b.N spokes.
func BenchmarkAddEdge(b *testing.B) {
	n := core.NewNetwork()
	_ = n.AddVertex(0)
	for i := 0; i < b.N; i++ {
		_ = n.AddVertex(int64(i + 1))
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = n.AddEdge(0, int64(i+1), int64(i), 0)
	}
}

// BenchmarkHasEdge measures the hot lookup path on a 1000-spoke star.
func BenchmarkHasEdge(b *testing.B) {
	n := core.NewNetwork()
	_ = n.AddVertex(0)
	for i := int64(1); i <= 1000; i++ {
		_ = n.AddVertex(i)
		_ = n.AddEdge(0, i, i, 0)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = n.HasEdge(0, int64(i%1000)+1)
	}
}

// BenchmarkOutEdges measures sorted out-edge enumeration on a
// 1000-spoke star (O(d log d) per call).
func BenchmarkOutEdges(b *testing.B) {
	n := core.NewNetwork()
	_ = n.AddVertex(0)
	for i := int64(1); i <= 1000; i++ {
		_ = n.AddVertex(i)
		_ = n.AddEdge(0, i, i, 0)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = n.OutEdges(0)
	}
}

// BenchmarkRemoveVertex measures incident-edge cleanup: the removed
// vertex sits in the middle of a 1000-vertex line, so each removal
// scans all remaining origins.
func BenchmarkRemoveVertex(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		n := core.NewNetwork()
		for v := int64(0); v < 1000; v++ {
			_ = n.AddVertex(v)
		}
		for v := int64(1); v < 1000; v++ {
			_ = n.AddEdge(v-1, v, 1, 0)
		}
		b.StartTimer()
		_ = n.RemoveVertex(500)
	}
}
