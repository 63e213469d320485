// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package memorder

import "code.hybscloud.com/atomix"

// nativeWord maps each ordering onto the matching atomix operation.
//
// atomix has no SeqCst variants. SeqCst loads use LoadAcquire and SeqCst
// stores use SwapAcqRel, the usual mapping that keeps SeqCst loads and
// stores in one total order with the AcqRel read-modify-writes. Levels
// that do not apply to an operation (an acquiring store, a releasing
// load) are strengthened, never weakened.
type nativeWord struct {
	v atomix.Uint64Padded
}

func (w *nativeWord) Load(o Ordering) uint64 {
	if o == Relaxed {
		return w.v.LoadRelaxed()
	}
	return w.v.LoadAcquire()
}

func (w *nativeWord) Store(v uint64, o Ordering) {
	switch o {
	case Relaxed:
		w.v.StoreRelaxed(v)
	case SeqCst:
		w.v.SwapAcqRel(v)
	default:
		w.v.StoreRelease(v)
	}
}

func (w *nativeWord) Swap(v uint64, o Ordering) uint64 {
	switch o {
	case Relaxed:
		return w.v.SwapRelaxed(v)
	case Consume, Acquire:
		return w.v.SwapAcquire(v)
	case Release:
		return w.v.SwapRelease(v)
	case AcqRel:
		return w.v.SwapAcqRel(v)
	}
	return w.v.Swap(v)
}

func (w *nativeWord) CompareAndSet(old, new uint64, success, failure Ordering) bool {
	switch success.Join(failure) {
	case Relaxed:
		return w.v.CompareAndSwapRelaxed(old, new)
	case Consume, Acquire:
		return w.v.CompareAndSwapAcquire(old, new)
	case Release:
		return w.v.CompareAndSwapRelease(old, new)
	case AcqRel:
		return w.v.CompareAndSwapAcqRel(old, new)
	}
	return w.v.CompareAndSwap(old, new)
}

// FetchAdd returns the previous value; atomix's Add family returns the new one.
func (w *nativeWord) FetchAdd(delta uint64, o Ordering) uint64 {
	switch o {
	case Relaxed:
		return w.v.AddRelaxed(delta) - delta
	case Consume, Acquire:
		return w.v.AddAcquire(delta) - delta
	case Release:
		return w.v.AddRelease(delta) - delta
	case AcqRel:
		return w.v.AddAcqRel(delta) - delta
	}
	return w.v.Add(delta) - delta
}

func (w *nativeWord) FetchAnd(mask uint64, o Ordering) uint64 {
	switch o {
	case Relaxed:
		return w.v.AndRelaxed(mask)
	case Consume, Acquire:
		return w.v.AndAcquire(mask)
	case Release:
		return w.v.AndRelease(mask)
	case AcqRel:
		return w.v.AndAcqRel(mask)
	}
	return w.v.And(mask)
}

func (w *nativeWord) FetchOr(mask uint64, o Ordering) uint64 {
	switch o {
	case Relaxed:
		return w.v.OrRelaxed(mask)
	case Consume, Acquire:
		return w.v.OrAcquire(mask)
	case Release:
		return w.v.OrRelease(mask)
	case AcqRel:
		return w.v.OrAcqRel(mask)
	}
	return w.v.Or(mask)
}

func (w *nativeWord) FetchXor(mask uint64, o Ordering) uint64 {
	switch o {
	case Relaxed:
		return w.v.XorRelaxed(mask)
	case Consume, Acquire:
		return w.v.XorAcquire(mask)
	case Release:
		return w.v.XorRelease(mask)
	case AcqRel:
		return w.v.XorAcqRel(mask)
	}
	return w.v.Xor(mask)
}
