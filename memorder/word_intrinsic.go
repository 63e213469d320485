// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package memorder

import (
	"sync/atomic"

	"code.hybscloud.com/atomix"
)

// intrinsicWord ignores the requested level: sync/atomic is SeqCst throughout.
type intrinsicWord struct {
	v atomic.Uint64
	_ [atomix.CacheLineSize - 8]byte
}

func (w *intrinsicWord) Load(Ordering) uint64 { return w.v.Load() }

func (w *intrinsicWord) Store(v uint64, _ Ordering) { w.v.Store(v) }

func (w *intrinsicWord) Swap(v uint64, _ Ordering) uint64 { return w.v.Swap(v) }

func (w *intrinsicWord) CompareAndSet(old, new uint64, _, _ Ordering) bool {
	return w.v.CompareAndSwap(old, new)
}

func (w *intrinsicWord) FetchAdd(delta uint64, _ Ordering) uint64 {
	return w.v.Add(delta) - delta
}

func (w *intrinsicWord) FetchAnd(mask uint64, _ Ordering) uint64 { return w.v.And(mask) }

func (w *intrinsicWord) FetchOr(mask uint64, _ Ordering) uint64 { return w.v.Or(mask) }

// FetchXor has no sync/atomic counterpart.
func (w *intrinsicWord) FetchXor(mask uint64, _ Ordering) uint64 {
	for {
		old := w.v.Load()
		if w.v.CompareAndSwap(old, old^mask) {
			return old
		}
	}
}
