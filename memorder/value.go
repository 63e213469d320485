// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package memorder

import "unsafe"

// Integer is the set of types a [Value] can hold: any integer type of
// pointer size or smaller.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Value is an atomic integer whose operations take an explicit ordering.
//
// The word always holds the 64-bit extension of a T. Bitwise operations
// preserve that form; types narrower than 64 bits take a compare-and-set
// loop for arithmetic to keep the upper bits in step with the wrapped
// result.
//
// A Value must be initialized with [New], [NewWith] or [Value.Init] before
// use and must not be copied after first use.
type Value[T Integer] struct {
	_ noCopy
	w Word
	b Backend
}

// New returns a Value on the [Default] backend holding initial.
func New[T Integer](initial T) *Value[T] {
	return NewWith(Default, initial)
}

// NewWith returns a Value on backend b holding initial.
func NewWith[T Integer](b Backend, initial T) *Value[T] {
	v := &Value[T]{}
	v.Init(b, initial)
	return v
}

// Init sets up v in place on backend b, for Values embedded in other
// structs. Init is not safe to call concurrently with other operations.
func (v *Value[T]) Init(b Backend, initial T) {
	v.w = NewWord(b)
	v.b = b
	v.w.Store(uint64(initial), Relaxed)
}

// Backend returns the backend carrying out v's operations.
func (v *Value[T]) Backend() Backend {
	return v.b
}

// Load returns the current value.
func (v *Value[T]) Load(o Ordering) T {
	return T(v.w.Load(o))
}

// Store sets the value to x.
func (v *Value[T]) Store(x T, o Ordering) {
	v.w.Store(uint64(x), o)
}

// Exchange sets the value to x and returns the previous value.
func (v *Value[T]) Exchange(x T, o Ordering) T {
	return T(v.w.Swap(uint64(x), o))
}

// CompareAndSet sets the value to new iff it currently equals expected,
// and reports whether it did. success applies when the replacement
// happens, failure to the load when it does not.
func (v *Value[T]) CompareAndSet(expected, new T, success, failure Ordering) bool {
	return v.w.CompareAndSet(uint64(expected), uint64(new), success, failure)
}

// FetchAdd adds delta, wrapping on overflow, and returns the previous value.
func (v *Value[T]) FetchAdd(delta T, o Ordering) T {
	if !wide[T]() {
		return v.fetchOp(o, func(old T) T { return old + delta })
	}
	return T(v.w.FetchAdd(uint64(delta), o))
}

// FetchSub subtracts delta, wrapping on overflow, and returns the previous
// value.
func (v *Value[T]) FetchSub(delta T, o Ordering) T {
	if !wide[T]() {
		return v.fetchOp(o, func(old T) T { return old - delta })
	}
	return T(v.w.FetchAdd(-uint64(delta), o))
}

// FetchAnd stores the bitwise AND of the value and mask and returns the
// previous value.
func (v *Value[T]) FetchAnd(mask T, o Ordering) T {
	return T(v.w.FetchAnd(uint64(mask), o))
}

// FetchOr stores the bitwise OR of the value and mask and returns the
// previous value.
func (v *Value[T]) FetchOr(mask T, o Ordering) T {
	return T(v.w.FetchOr(uint64(mask), o))
}

// FetchXor stores the bitwise XOR of the value and mask and returns the
// previous value.
func (v *Value[T]) FetchXor(mask T, o Ordering) T {
	return T(v.w.FetchXor(uint64(mask), o))
}

// fetchOp applies op in a compare-and-set loop. Only narrow arithmetic
// needs it.
func (v *Value[T]) fetchOp(o Ordering, op func(T) T) T {
	for {
		raw := v.w.Load(Relaxed)
		if v.w.CompareAndSet(raw, uint64(op(T(raw))), o, Relaxed) {
			return T(raw)
		}
	}
}

// wide reports whether T fills the whole 64-bit word.
func wide[T Integer]() bool {
	var zero T
	return unsafe.Sizeof(zero) == 8
}
