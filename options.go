// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rbq

import (
	"math/bits"
	"time"

	"code.hybscloud.com/rbq/memorder"
)

// DefaultCapacity is the suggested capacity when nothing better is known.
const DefaultCapacity = 128

// Options configures ring creation.
type Options struct {
	// Capacity (rounds up to next power of 2)
	capacity int

	// Producer wait strategy
	mode WaitMode
	nap  time.Duration

	// Atomics
	floor   memorder.Ordering
	backend memorder.Backend

	// Consumer
	zeroOnPop bool
}

// Builder creates rings with fluent configuration.
//
// Example:
//
//	// Defaults: 1µs sleep between checks, SeqCst atomics
//	r := rbq.Build[Event](rbq.New(1024))
//
//	// Low-latency: spin, protocol-minimal orderings
//	r := rbq.Build[Event](rbq.New(1024).Spin().Ordering(memorder.Relaxed))
//
//	// Low CPU: park producers on a condition variable
//	r := rbq.Build[*Request](rbq.New(4096).Blocking())
type Builder struct {
	opts Options
}

// New creates a ring builder with the given capacity.
//
// Capacity rounds up to the next power of 2: 5 results in 8, 128 stays 128.
//
// Panics if capacity < 1.
func New(capacity int) *Builder {
	if capacity < 1 {
		panic("rbq: capacity must be >= 1")
	}
	return &Builder{opts: Options{
		capacity: capacity,
		mode:     WaitSleep,
		nap:      DefaultSleep,
		floor:    memorder.SeqCst,
		backend:  memorder.Default,
	}}
}

// Sleep makes producers sleep d between checks while they wait.
// A zero d re-checks immediately. Panics if d < 0.
func (b *Builder) Sleep(d time.Duration) *Builder {
	if d < 0 {
		panic("rbq: sleep duration must be >= 0")
	}
	b.opts.mode = WaitSleep
	b.opts.nap = d
	return b
}

// Spin makes producers execute a CPU pause between checks.
func (b *Builder) Spin() *Builder {
	b.opts.mode = WaitSpin
	return b
}

// Adaptive makes producers wait with iox.Backoff between checks.
func (b *Builder) Adaptive() *Builder {
	b.opts.mode = WaitAdaptive
	return b
}

// Blocking makes producers park on a condition variable instead of
// busy-waiting. Pop and every commit then signal parked producers.
//
// Trade-off: lower CPU use while full, higher per-operation cost.
func (b *Builder) Blocking() *Builder {
	b.opts.mode = WaitBlocking
	return b
}

// Ordering sets the weakest ordering the ring uses for its atomics.
// Each protocol step uses the stronger of o and the step's own minimum.
//
// The default, memorder.SeqCst, makes every step SeqCst.
// memorder.Relaxed leaves each step at its minimum.
func (b *Builder) Ordering(o memorder.Ordering) *Builder {
	if !o.Valid() {
		panic("rbq: invalid ordering")
	}
	b.opts.floor = o
	return b
}

// Backend selects the memorder backend for the ring's counters and fences.
func (b *Builder) Backend(backend memorder.Backend) *Builder {
	if backend > memorder.Emulated {
		panic("rbq: invalid backend")
	}
	b.opts.backend = backend
	return b
}

// ZeroOnPop clears each slot after Pop copies it out, so the queue does
// not keep popped values reachable.
func (b *Builder) ZeroOnPop() *Builder {
	b.opts.zeroOnPop = true
	return b
}

// Build creates a Ring[T] from the builder's configuration.
func Build[T any](b *Builder) *Ring[T] {
	return newRing[T](&b.opts)
}

// roundToPow2 rounds n (1 <= n <= math.MaxInt) up to the next power of 2.
// n-1 is below 1<<63, so the shift is at most 63 and never wraps to zero.
func roundToPow2(n int) uint64 {
	return 1 << bits.Len64(uint64(n-1))
}
