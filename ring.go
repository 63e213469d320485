// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rbq

import (
	"context"
	"time"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/rbq/memorder"
	"code.hybscloud.com/spin"
)

// Ring is a bounded multi-producer single-consumer queue using a
// claim/commit protocol over three monotonic sequence counters.
//
// Producers claim a sequence with fetch-add on nextPos, wait until the
// consumer has freed the slot, write it, then advance cursorPos from seq-1
// to seq. The last step serializes publication into claim order: writes may
// finish in any order, but the consumer only ever sees a gap-free prefix.
//
// A producer that has claimed but not yet committed holds back every
// producer with a higher sequence. There is no way to abandon a claim.
//
// Invariant: readPos-1 <= cursorPos <= nextPos-1.
//
// Memory: capacity slots of T, no per-item allocation. Each counter word
// is allocated on its own cache line by memorder; the Value headers held
// here are read-only after construction.
type Ring[T any] struct {
	nextPos   memorder.Value[uint64] // Next sequence handed to a producer
	cursorPos memorder.Value[uint64] // Highest published sequence, gap-free
	readPos   memorder.Value[uint64] // Next sequence the consumer reads
	buffer    []T
	mask      uint64
	capacity  uint64
	ord       orders
	mode      WaitMode
	nap       time.Duration
	parker    *parker // non-nil only in WaitBlocking mode
	zeroOnPop bool
}

// orders holds the ordering used for each protocol step: the protocol's
// minimum joined with the configured floor.
type orders struct {
	backend  memorder.Backend
	claim    memorder.Ordering
	load     memorder.Ordering
	publish  memorder.Ordering
	advance  memorder.Ordering
	fenceIn  memorder.Ordering
	fenceOut memorder.Ordering
}

func newOrders(floor memorder.Ordering, b memorder.Backend) orders {
	return orders{
		backend:  b,
		claim:    floor.Join(memorder.AcqRel),
		load:     floor.Join(memorder.Acquire),
		publish:  floor.Join(memorder.AcqRel),
		advance:  floor.Join(memorder.Release),
		fenceIn:  floor.Join(memorder.Acquire),
		fenceOut: floor.Join(memorder.Release),
	}
}

// NewRing creates a Ring with default options: sleep-based busy-waiting,
// SeqCst ordering and the default memorder backend.
// Capacity rounds up to the next power of 2. Panics if capacity < 1.
func NewRing[T any](capacity int) *Ring[T] {
	return Build[T](New(capacity))
}

func newRing[T any](o *Options) *Ring[T] {
	n := roundToPow2(o.capacity)
	r := &Ring[T]{
		buffer:    make([]T, n),
		mask:      n - 1,
		capacity:  n,
		ord:       newOrders(o.floor, o.backend),
		mode:      o.mode,
		nap:       o.nap,
		zeroOnPop: o.zeroOnPop,
	}
	r.nextPos.Init(o.backend, 1)
	r.cursorPos.Init(o.backend, 0)
	r.readPos.Init(o.backend, 1)
	if o.mode == WaitBlocking {
		r.parker = newParker()
	}
	return r
}

// Add copies item into the queue, waiting while the queue is full.
// Safe for concurrent producers. Add never fails.
func (r *Ring[T]) Add(item T) {
	seq, slot := r.AddStart()
	*slot = item
	r.AddCommit(seq)
}

// AddStart claims the next sequence and waits until its slot is free.
// It returns the sequence and the slot, whose contents are stale.
//
// The caller fills the slot and must call AddCommit(seq) exactly once.
// Until then, no producer with a later sequence can publish. Prefer
// [Ring.AddFunc] or [Ring.Reserve] with defer when the fill can fail.
func (r *Ring[T]) AddStart() (uint64, *T) {
	seq := r.nextPos.FetchAdd(1, r.ord.claim)
	if seq-r.readPos.Load(r.ord.load) >= r.capacity {
		r.awaitSlot(seq)
	}
	memorder.FenceWith(r.ord.backend, r.ord.fenceIn)
	return seq, &r.buffer[seq&r.mask]
}

// AddCommit publishes seq once every earlier sequence has been published.
// seq must come from AddStart on this Ring.
//
// Panics if seq was never claimed or has already been committed.
func (r *Ring[T]) AddCommit(seq uint64) {
	memorder.FenceWith(r.ord.backend, r.ord.fenceOut)
	if !r.cursorPos.CompareAndSet(seq-1, seq, r.ord.publish, r.ord.load) {
		r.checkCommit(seq)
		r.awaitPublish(seq)
	}
	if debugChecks {
		r.checkInvariants()
	}
	r.wake()
}

// TryAdd copies item into the queue if a slot is free right now.
// Returns false without claiming anything if the queue is full.
//
// Once a slot is claimed, TryAdd still waits for earlier producers to
// publish before it returns.
func (r *Ring[T]) TryAdd(item T) bool {
	seq, ok := r.tryClaim()
	if !ok {
		return false
	}
	memorder.FenceWith(r.ord.backend, r.ord.fenceIn)
	r.buffer[seq&r.mask] = item
	r.AddCommit(seq)
	return true
}

// AddContext copies item into the queue, waiting with adaptive backoff
// while the queue is full. It returns ctx.Err() if ctx is done before a
// slot is claimed. After the claim it always completes.
func (r *Ring[T]) AddContext(ctx context.Context, item T) error {
	backoff := iox.Backoff{}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if r.TryAdd(item) {
			return nil
		}
		backoff.Wait()
	}
}

// Enqueue adds *elem if the queue has room (non-blocking claim).
// Returns ErrWouldBlock if the queue is full.
func (r *Ring[T]) Enqueue(elem *T) error {
	if !r.TryAdd(*elem) {
		return ErrWouldBlock
	}
	return nil
}

// Pop copies the oldest published item into *out and reports true.
// If nothing is published it returns false and leaves *out unmodified.
//
// Pop never waits. It must only be called from a single consumer goroutine.
func (r *Ring[T]) Pop(out *T) bool {
	read := r.readPos.Load(r.ord.load)
	if read > r.cursorPos.Load(r.ord.load) {
		return false
	}
	slot := &r.buffer[read&r.mask]
	*out = *slot
	if r.zeroOnPop {
		var zero T
		*slot = zero
	}
	r.readPos.FetchAdd(1, r.ord.advance)
	if debugChecks {
		r.checkInvariants()
	}
	r.wake()
	return true
}

// Dequeue removes and returns the oldest item (single consumer only).
// Returns (zero-value, ErrWouldBlock) if the queue is empty.
func (r *Ring[T]) Dequeue() (T, error) {
	var elem T
	if !r.Pop(&elem) {
		return elem, ErrWouldBlock
	}
	return elem, nil
}

// PopBatch pops up to len(dst) items into dst in order and returns how
// many were popped (single consumer only).
func (r *Ring[T]) PopBatch(dst []T) int {
	n := 0
	for n < len(dst) && r.Pop(&dst[n]) {
		n++
	}
	return n
}

// Used returns the number of published, unread items.
// The value is a snapshot and may be stale under concurrent use.
func (r *Ring[T]) Used() int {
	cursor := r.cursorPos.Load(r.ord.load)
	read := r.readPos.Load(r.ord.load)
	if cursor < read {
		return 0
	}
	return int(cursor + 1 - read)
}

// Empty reports whether Used() == 0.
func (r *Ring[T]) Empty() bool {
	return r.Used() == 0
}

// Full reports whether Used() == Size().
func (r *Ring[T]) Full() bool {
	return r.Used() == int(r.capacity)
}

// Clear resets the queue to empty. Slot contents are left in place.
//
// Clear must not run concurrently with any other operation.
func (r *Ring[T]) Clear() {
	r.nextPos.Store(1, r.ord.advance)
	r.cursorPos.Store(0, r.ord.advance)
	r.readPos.Store(1, r.ord.advance)
}

// Size returns the queue capacity, always a power of 2.
func (r *Ring[T]) Size() int {
	return int(r.capacity)
}

// Cap returns the queue capacity. Same as Size.
func (r *Ring[T]) Cap() int {
	return int(r.capacity)
}

// tryClaim claims nextPos only if its slot is already free.
func (r *Ring[T]) tryClaim() (uint64, bool) {
	sw := spin.Wait{}
	for {
		next := r.nextPos.Load(r.ord.load)
		if r.fullAt(next) {
			return 0, false
		}
		if r.nextPos.CompareAndSet(next, next+1, r.ord.claim, r.ord.load) {
			return next, true
		}
		sw.Once()
	}
}

// fullAt reports whether claiming next would overrun the consumer.
// next may be stale and behind readPos, so the check must not subtract.
func (r *Ring[T]) fullAt(next uint64) bool {
	return next >= r.readPos.Load(r.ord.load)+r.capacity
}

// awaitSlot waits until the consumer has read past seq's previous lap.
func (r *Ring[T]) awaitSlot(seq uint64) {
	w := r.waiter()
	for {
		w.prepare()
		if seq-r.readPos.Load(r.ord.load) < r.capacity {
			return
		}
		w.wait()
	}
}

// awaitPublish waits for seq-1 to be published, then publishes seq.
func (r *Ring[T]) awaitPublish(seq uint64) {
	w := r.waiter()
	for {
		w.prepare()
		if r.cursorPos.CompareAndSet(seq-1, seq, r.ord.publish, r.ord.load) {
			return
		}
		w.wait()
	}
}

// checkCommit panics on commits that would stall the cursor forever.
func (r *Ring[T]) checkCommit(seq uint64) {
	if seq == 0 || seq >= r.nextPos.Load(r.ord.load) {
		panic("rbq: commit of unclaimed sequence")
	}
	if r.cursorPos.Load(r.ord.load) >= seq {
		panic("rbq: sequence already committed")
	}
}

// checkInvariants panics unless readPos-1 <= cursorPos <= nextPos-1.
// The loads run read, cursor, next so that monotonic growth keeps the check
// sound under concurrent producers and consumer.
func (r *Ring[T]) checkInvariants() {
	read := r.readPos.Load(memorder.SeqCst)
	cursor := r.cursorPos.Load(memorder.SeqCst)
	next := r.nextPos.Load(memorder.SeqCst)
	if read-1 > cursor || cursor > next-1 {
		panic("rbq: sequence invariant violated")
	}
}

func (r *Ring[T]) wake() {
	if r.parker != nil {
		r.parker.unpark()
	}
}
