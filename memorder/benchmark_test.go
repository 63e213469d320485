// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package memorder_test

import (
	"testing"

	"code.hybscloud.com/rbq/memorder"
)

// BenchmarkFenceParallel issues fences from every P. Fences share no state,
// so throughput should scale with GOMAXPROCS.
func BenchmarkFenceParallel(b *testing.B) {
	for _, be := range allBackends {
		for _, o := range []memorder.Ordering{memorder.Acquire, memorder.Release, memorder.SeqCst} {
			b.Run(be.String()+"/"+o.String(), func(b *testing.B) {
				b.RunParallel(func(pb *testing.PB) {
					for pb.Next() {
						memorder.FenceWith(be, o)
					}
				})
			})
		}
	}
}

func BenchmarkFetchAdd(b *testing.B) {
	for _, be := range allBackends {
		for _, o := range []memorder.Ordering{memorder.Relaxed, memorder.AcqRel, memorder.SeqCst} {
			b.Run(be.String()+"/"+o.String(), func(b *testing.B) {
				v := memorder.NewWith[uint64](be, 0)
				for b.Loop() {
					v.FetchAdd(1, o)
				}
			})
		}
	}
}
