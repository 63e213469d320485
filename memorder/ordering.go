// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package memorder

// Ordering is the memory-ordering level of an atomic operation or fence.
type Ordering uint8

const (
	// Relaxed guarantees atomicity only.
	Relaxed Ordering = iota
	// Consume is a dependency-ordered acquire. Every backend treats it as Acquire.
	Consume
	// Acquire prevents later accesses from moving before the operation.
	Acquire
	// Release prevents earlier accesses from moving after the operation.
	Release
	// AcqRel combines Acquire and Release.
	AcqRel
	// SeqCst is AcqRel with a single total order across SeqCst operations.
	SeqCst
)

var orderingNames = [...]string{
	Relaxed: "Relaxed",
	Consume: "Consume",
	Acquire: "Acquire",
	Release: "Release",
	AcqRel:  "AcqRel",
	SeqCst:  "SeqCst",
}

// String returns the name of the ordering level.
func (o Ordering) String() string {
	if o.Valid() {
		return orderingNames[o]
	}
	return "Ordering(invalid)"
}

// Valid reports whether o is one of the defined levels.
func (o Ordering) Valid() bool {
	return o <= SeqCst
}

// Acquires reports whether o orders later accesses after the operation.
func (o Ordering) Acquires() bool {
	switch o {
	case Consume, Acquire, AcqRel, SeqCst:
		return true
	}
	return false
}

// Releases reports whether o orders earlier accesses before the operation.
func (o Ordering) Releases() bool {
	switch o {
	case Release, AcqRel, SeqCst:
		return true
	}
	return false
}

// Join returns the weakest ordering at least as strong as both o and p.
//
//	Relaxed.Join(Acquire) == Acquire
//	Acquire.Join(Release) == AcqRel
//	Consume.Join(Acquire) == Acquire
//	x.Join(SeqCst)        == SeqCst
func (o Ordering) Join(p Ordering) Ordering {
	if o == SeqCst || p == SeqCst {
		return SeqCst
	}
	acq := o.Acquires() || p.Acquires()
	rel := o.Releases() || p.Releases()
	switch {
	case acq && rel:
		return AcqRel
	case rel:
		return Release
	case o == Acquire || p == Acquire:
		return Acquire
	case acq:
		return Consume
	}
	return Relaxed
}
