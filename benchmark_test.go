// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rbq_test

import (
	"fmt"
	"runtime"
	"sync"
	"testing"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/rbq"
	"code.hybscloud.com/rbq/memorder"
	"code.hybscloud.com/spin"
)

// =============================================================================
// Single goroutine
// =============================================================================

func BenchmarkRing_AddPop(b *testing.B) {
	r := rbq.NewRing[int](1024)
	var v int

	b.ReportAllocs()
	b.ResetTimer()
	for i := range b.N {
		r.Add(i)
		r.Pop(&v)
	}
}

func BenchmarkRing_AddStartCommit(b *testing.B) {
	r := rbq.NewRing[[64]byte](1024)
	var v [64]byte

	b.ReportAllocs()
	b.ResetTimer()
	for i := range b.N {
		seq, slot := r.AddStart()
		slot[0] = byte(i)
		r.AddCommit(seq)
		r.Pop(&v)
	}
}

func BenchmarkRing_TryAddPop(b *testing.B) {
	r := rbq.NewRing[int](1024)
	var v int

	b.ReportAllocs()
	b.ResetTimer()
	for i := range b.N {
		r.TryAdd(i)
		r.Pop(&v)
	}
}

// =============================================================================
// Orderings and backends
// =============================================================================

func BenchmarkRing_Orderings(b *testing.B) {
	for _, o := range []memorder.Ordering{memorder.Relaxed, memorder.AcqRel, memorder.SeqCst} {
		for _, backend := range []memorder.Backend{memorder.Native, memorder.Intrinsic, memorder.Emulated} {
			b.Run(fmt.Sprintf("%s/%s", backend, o), func(b *testing.B) {
				r := rbq.Build[int](rbq.New(1024).Ordering(o).Backend(backend))
				var v int

				b.ReportAllocs()
				b.ResetTimer()
				for i := range b.N {
					r.Add(i)
					r.Pop(&v)
				}
			})
		}
	}
}

// =============================================================================
// Contended producers
// =============================================================================

// BenchmarkRing_ParallelProducers measures producer throughput with one
// consumer draining concurrently.
func BenchmarkRing_ParallelProducers(b *testing.B) {
	modes := map[string]func(*rbq.Builder) *rbq.Builder{
		"Sleep":    func(bb *rbq.Builder) *rbq.Builder { return bb },
		"Spin":     (*rbq.Builder).Spin,
		"Adaptive": (*rbq.Builder).Adaptive,
		"Blocking": (*rbq.Builder).Blocking,
	}
	for name, mode := range modes {
		b.Run(name, func(b *testing.B) {
			r := rbq.Build[int](mode(rbq.New(4096)))

			var stop atomix.Bool
			var wg sync.WaitGroup
			wg.Add(1)
			go func() {
				defer wg.Done()
				var v int
				sw := spin.Wait{}
				for !stop.Load() {
					if !r.Pop(&v) {
						sw.Once()
					}
				}
				for r.Pop(&v) {
				}
			}()

			b.ReportAllocs()
			b.ResetTimer()
			b.RunParallel(func(pb *testing.PB) {
				i := 0
				for pb.Next() {
					r.Add(i)
					i++
				}
			})
			b.StopTimer()
			stop.Store(true)
			wg.Wait()
		})
	}
}

func BenchmarkRing_ContentionLevels(b *testing.B) {
	for _, producers := range []int{1, 2, 4, runtime.GOMAXPROCS(0)} {
		b.Run(fmt.Sprintf("Producers%d", producers), func(b *testing.B) {
			r := rbq.Build[int](rbq.New(1024).Spin())
			per := b.N/producers + 1

			b.ResetTimer()
			var wg sync.WaitGroup
			for p := range producers {
				wg.Add(1)
				go func() {
					defer wg.Done()
					for i := range per {
						r.Add(p + i)
					}
				}()
			}

			var v int
			sw := spin.Wait{}
			for got := 0; got < per*producers; {
				if r.Pop(&v) {
					got++
					continue
				}
				sw.Once()
			}
			wg.Wait()
		})
	}
}

// =============================================================================
// Consumer
// =============================================================================

func BenchmarkRing_PopBatch(b *testing.B) {
	for _, batch := range []int{1, 8, 64} {
		b.Run(fmt.Sprintf("Batch%d", batch), func(b *testing.B) {
			r := rbq.NewRing[int](1024)
			dst := make([]int, batch)

			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i += batch {
				for j := range batch {
					r.Add(i + j)
				}
				r.PopBatch(dst)
			}
		})
	}
}
