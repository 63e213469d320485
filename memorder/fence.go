// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package memorder

import "code.hybscloud.com/atomix"

// Fence issues a memory fence of level o on the [Default] backend.
// A Relaxed fence does nothing.
func Fence(o Ordering) {
	FenceWith(Default, o)
}

// FenceWith issues a memory fence of level o for atomics on backend b.
//
// Native fences are atomix barriers: Acquire and Consume issue
// BarrierAcquire, Release issues BarrierRelease, AcqRel and SeqCst issue
// the full BarrierAcqRel. Every Intrinsic and Emulated operation already
// synchronizes as SeqCst, so fences on those backends issue nothing.
func FenceWith(b Backend, o Ordering) {
	switch b {
	case Native:
		switch o {
		case Relaxed:
		case Consume, Acquire:
			atomix.BarrierAcquire()
		case Release:
			atomix.BarrierRelease()
		default:
			atomix.BarrierAcqRel()
		}
	case Intrinsic, Emulated:
	default:
		panic("memorder: unknown backend")
	}
}
