package arena

import (
	"runtime"
	"testing"
)

type heapNode struct {
	value      int
	prev, next *heapNode
}

// BenchmarkArenaReuse allocates and releases a working set repeatedly; after the
// first round every allocation is served from the free pool.
func BenchmarkArenaReuse(b *testing.B) {
	a := New[heapNode](1000)
	idxs := make([]int, 1000)

	runtime.GC()
	var m1 runtime.MemStats
	runtime.ReadMemStats(&m1)

	b.ResetTimer()
	b.ReportAllocs()
	for b.Loop() {
		for j := range idxs {
			idxs[j], _ = a.Alloc(heapNode{value: j})
		}
		for _, idx := range idxs {
			_, _ = a.Release(idx)
		}
	}

	b.StopTimer()
	runtime.GC()
	var m2 runtime.MemStats
	runtime.ReadMemStats(&m2)
	b.ReportMetric(float64(m2.NumGC-m1.NumGC), "gcs")
}

// BenchmarkStandardHeap allocates the same working set as individual heap nodes.
func BenchmarkStandardHeap(b *testing.B) {
	nodes := make([]*heapNode, 1000)

	runtime.GC()
	var m1 runtime.MemStats
	runtime.ReadMemStats(&m1)

	b.ResetTimer()
	b.ReportAllocs()
	for b.Loop() {
		for j := range nodes {
			nodes[j] = &heapNode{value: j}
		}
		runtime.KeepAlive(nodes)
		clear(nodes)
	}

	b.StopTimer()
	runtime.GC()
	var m2 runtime.MemStats
	runtime.ReadMemStats(&m2)
	b.ReportMetric(float64(m2.NumGC-m1.NumGC), "gcs")
}
