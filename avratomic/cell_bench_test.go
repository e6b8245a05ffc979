package avratomic

import "testing"

// Benchmarks measure the host fallback path. On the AVR target each
// operation is a single instruction and cannot meaningfully be benchmarked
// with the testing package.

func BenchmarkLoad(b *testing.B) {
	var c Cell[Uint8]
	c.Store(0x42)
	b.ResetTimer()
	var sink Uint8
	for i := 0; i < b.N; i++ {
		sink = c.Load()
	}
	_ = sink
}

func BenchmarkStore(b *testing.B) {
	var c Cell[Uint8]
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Store(Uint8(i))
	}
}

func BenchmarkLoadParallel(b *testing.B) {
	var c Cell[Bool]
	c.Store(true)
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_ = c.Load()
		}
	})
}
