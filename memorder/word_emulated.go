// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package memorder

import (
	"sync"

	"code.hybscloud.com/atomix"
)

// emulatedWord serializes every operation through its own mutex.
// Lock and Unlock synchronize, so each operation is SeqCst with respect to
// every other operation on any emulated word.
type emulatedWord struct {
	mu sync.Mutex
	v  uint64
	_  [atomix.CacheLineSize - 16]byte
}

func (w *emulatedWord) Load(Ordering) uint64 {
	w.mu.Lock()
	v := w.v
	w.mu.Unlock()
	return v
}

func (w *emulatedWord) Store(v uint64, _ Ordering) {
	w.mu.Lock()
	w.v = v
	w.mu.Unlock()
}

func (w *emulatedWord) Swap(v uint64, _ Ordering) uint64 {
	return w.update(func(uint64) uint64 { return v })
}

func (w *emulatedWord) CompareAndSet(old, new uint64, _, _ Ordering) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.v != old {
		return false
	}
	w.v = new
	return true
}

func (w *emulatedWord) FetchAdd(delta uint64, _ Ordering) uint64 {
	return w.update(func(old uint64) uint64 { return old + delta })
}

func (w *emulatedWord) FetchAnd(mask uint64, _ Ordering) uint64 {
	return w.update(func(old uint64) uint64 { return old & mask })
}

func (w *emulatedWord) FetchOr(mask uint64, _ Ordering) uint64 {
	return w.update(func(old uint64) uint64 { return old | mask })
}

func (w *emulatedWord) FetchXor(mask uint64, _ Ordering) uint64 {
	return w.update(func(old uint64) uint64 { return old ^ mask })
}

// update replaces the value with op(old) and returns old.
func (w *emulatedWord) update(op func(uint64) uint64) uint64 {
	w.mu.Lock()
	old := w.v
	w.v = op(old)
	w.mu.Unlock()
	return old
}
