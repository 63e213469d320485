// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rbq

// Reservation is a claimed, unpublished slot returned by [Ring.Reserve].
// Commit must be called exactly once; deferring it right after Reserve
// guarantees that on every exit path.
//
// Example:
//
//	res := r.Reserve()
//	defer res.Commit()
//	decodeInto(res.Slot(), frame)
type Reservation[T any] struct {
	ring *Ring[T]
	seq  uint64
	slot *T
}

// Reserve claims a slot as AddStart does and wraps it in a Reservation.
func (r *Ring[T]) Reserve() Reservation[T] {
	seq, slot := r.AddStart()
	return Reservation[T]{ring: r, seq: seq, slot: slot}
}

// Seq returns the claimed sequence.
func (res Reservation[T]) Seq() uint64 {
	return res.seq
}

// Slot returns the claimed slot. Its contents are stale until filled.
func (res Reservation[T]) Slot() *T {
	return res.slot
}

// Commit publishes the slot.
func (res Reservation[T]) Commit() {
	res.ring.AddCommit(res.seq)
}

// AddFunc claims a slot, lets fill write it in place, and publishes it.
//
// If fill panics, the slot is reset to T's zero value and published anyway
// so later producers are not stalled; the panic then continues.
func (r *Ring[T]) AddFunc(fill func(slot *T)) {
	seq, slot := r.AddStart()
	filled := false
	defer func() {
		if !filled {
			var zero T
			*slot = zero
		}
		r.AddCommit(seq)
	}()
	fill(slot)
	filled = true
}
