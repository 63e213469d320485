// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package memorder provides atomic integers whose every operation takes an
// explicit memory-ordering level.
//
// The ordering levels follow the usual acquire/release model:
//
//	Relaxed  atomicity only
//	Consume  dependency-ordered load (treated as Acquire)
//	Acquire  later accesses are not reordered before the operation
//	Release  earlier accesses are not reordered after the operation
//	AcqRel   both of the above
//	SeqCst   AcqRel plus a single total order over all SeqCst operations
//
// # Backends
//
// Operations are carried out by one of three interchangeable backends that
// implement [Word]:
//
//	Native     code.hybscloud.com/atomix, ordering-specific instructions
//	Intrinsic  sync/atomic compiler intrinsics, SeqCst for every level
//	Emulated   a mutex around a plain word; atomic but not lock-free
//
// [Default] is selected at build time. It is [Native] unless the module is
// built with the memorder_mutex tag, which selects [Emulated] for targets
// that cannot use native atomics. Callers may rely on atomicity and the
// requested ordering, never on lock-freedom; check [Backend.LockFree] when
// it matters.
//
// Example:
//
//	seq := memorder.New[uint64](1)
//	claimed := seq.FetchAdd(1, memorder.AcqRel)
//	if seq.CompareAndSet(claimed+1, claimed+2, memorder.Release, memorder.Relaxed) {
//	    // advanced
//	}
//
// None of the operations fail. CompareAndSet is a single attempt and
// reports whether the replacement happened; callers needing a retry loop
// write it themselves.
package memorder
