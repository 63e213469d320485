// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package memorder

// Backend selects the implementation strategy behind a [Word].
type Backend uint8

const (
	// Native uses code.hybscloud.com/atomix with ordering-specific operations.
	Native Backend = iota
	// Intrinsic uses sync/atomic. Every level is carried out as SeqCst.
	Intrinsic
	// Emulated guards a plain word with a mutex.
	Emulated
)

// Default is the backend chosen for this build target.
const Default = defaultBackend

// String returns the backend name.
func (b Backend) String() string {
	switch b {
	case Native:
		return "Native"
	case Intrinsic:
		return "Intrinsic"
	case Emulated:
		return "Emulated"
	}
	return "Backend(invalid)"
}

// LockFree reports whether operations on the backend never take a lock.
func (b Backend) LockFree() bool {
	return b != Emulated
}

// Word is a 64-bit atomic cell. Each backend provides one implementation,
// padded to a cache line so that separately allocated words never share one.
//
// Narrower integer types are stored as their 64-bit two's-complement
// extension by [Value], so a Word only ever deals in uint64.
type Word interface {
	// Load returns the current value.
	Load(o Ordering) uint64
	// Store replaces the current value.
	Store(v uint64, o Ordering)
	// Swap replaces the current value and returns the previous one.
	Swap(v uint64, o Ordering) uint64
	// CompareAndSet replaces the value with new iff it equals old.
	// It makes exactly one attempt.
	CompareAndSet(old, new uint64, success, failure Ordering) bool
	// FetchAdd adds delta (wrapping) and returns the previous value.
	FetchAdd(delta uint64, o Ordering) uint64
	// FetchAnd stores the bitwise AND with mask and returns the previous value.
	FetchAnd(mask uint64, o Ordering) uint64
	// FetchOr stores the bitwise OR with mask and returns the previous value.
	FetchOr(mask uint64, o Ordering) uint64
	// FetchXor stores the bitwise XOR with mask and returns the previous value.
	FetchXor(mask uint64, o Ordering) uint64
}

// NewWord returns a zeroed word backed by b.
// Panics if b is not a defined backend.
func NewWord(b Backend) Word {
	switch b {
	case Native:
		return &nativeWord{}
	case Intrinsic:
		return &intrinsicWord{}
	case Emulated:
		return &emulatedWord{}
	}
	panic("memorder: unknown backend")
}
