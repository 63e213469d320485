// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rbq

import (
	"reflect"

	"code.hybscloud.com/rbq/memorder"
)

// Counters returns nextPos, cursorPos and readPos.
func (r *Ring[T]) Counters() (next, cursor, read uint64) {
	return r.nextPos.Load(memorder.SeqCst), r.cursorPos.Load(memorder.SeqCst), r.readPos.Load(memorder.SeqCst)
}

// Slots returns the backing array.
func (r *Ring[T]) Slots() []T {
	return r.buffer
}

// CheckInvariants runs the rbq_debug assertion regardless of build tags.
func (r *Ring[T]) CheckInvariants() {
	r.checkInvariants()
}

// Mode returns the configured wait mode.
func (r *Ring[T]) Mode() WaitMode {
	return r.mode
}

// CounterBackend returns the memorder backend of the counters.
func (r *Ring[T]) CounterBackend() memorder.Backend {
	return r.nextPos.Backend()
}

// CounterWords returns the addresses of the words backing nextPos,
// cursorPos and readPos.
func (r *Ring[T]) CounterWords() [3]uintptr {
	word := func(v *memorder.Value[uint64]) uintptr {
		return reflect.ValueOf(v).Elem().FieldByName("w").Elem().Pointer()
	}
	return [3]uintptr{word(&r.nextPos), word(&r.cursorPos), word(&r.readPos)}
}

// FullAt runs the non-blocking full check for a possibly stale nextPos.
func (r *Ring[T]) FullAt(next uint64) bool {
	return r.fullAt(next)
}

// RoundToPow2 exposes the capacity rounding.
func RoundToPow2(n int) uint64 {
	return roundToPow2(n)
}
