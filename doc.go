// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package rbq provides a bounded multi-producer single-consumer ring-buffer
// queue with a Disruptor-style claim/commit protocol.
//
// # Quick Start
//
//	r := rbq.NewRing[Event](rbq.DefaultCapacity)
//
//	// Any number of producers
//	r.Add(ev) // waits while the ring is full
//
//	// Exactly one consumer
//	var ev Event
//	for r.Pop(&ev) {
//	    handle(ev)
//	}
//
// # Protocol
//
// The ring keeps three monotonic 64-bit counters:
//
//	nextPos    next sequence to claim    (starts at 1)
//	cursorPos  last published sequence   (starts at 0)
//	readPos    next sequence to read     (starts at 1)
//
// and always satisfies readPos-1 <= cursorPos <= nextPos-1. Sequence s lives
// in slot s & (capacity-1).
//
// A producer:
//
//  1. claims seq = nextPos++ (fetch-add, never blocks another producer)
//  2. waits while seq - readPos >= capacity (the slot is still unread)
//  3. writes the slot
//  4. waits until it can move cursorPos from seq-1 to seq
//
// Step 4 publishes in claim order regardless of the order in which writes
// complete. The consumer reads slot readPos while readPos <= cursorPos.
//
// Consequences:
//   - Items come out in claim order; each producer's own items stay in order.
//   - Under overload, producers slow down to the consumer's rate. Nothing is
//     dropped and the ring never grows.
//   - A producer stalled between claim and commit (for example, descheduled)
//     delays every producer with a later sequence. There is no timeout.
//
// # Zero-Copy Producers
//
// AddStart returns the claimed slot for in-place filling; AddCommit
// publishes it:
//
//	seq, slot := r.AddStart()
//	slot.ID = id
//	slot.Payload = append(slot.Payload[:0], data...)
//	r.AddCommit(seq)
//
// Every AddStart needs exactly one AddCommit with the same sequence. A
// missing commit stalls the ring forever. AddFunc and Reserve tie the commit
// to scope instead:
//
//	r.AddFunc(func(slot *Frame) {
//	    slot.Decode(buf) // a panic here publishes a zero Frame
//	})
//
//	res := r.Reserve()
//	defer res.Commit()
//
// AddCommit panics on a sequence that was never claimed or is already
// committed.
//
// # Waiting
//
// Producers wait at two points: for a free slot and for their predecessor's
// publish. The Builder selects how:
//
//	rbq.New(n)                   // sleep 1µs between checks (default)
//	rbq.New(n).Sleep(10*time.Microsecond)
//	rbq.New(n).Spin()            // CPU pause
//	rbq.New(n).Adaptive()        // iox.Backoff
//	rbq.New(n).Blocking()        // condition variable, lowest CPU use
//
// The consumer never waits: Pop returns false on an empty ring.
//
// For producers that must give up, TryAdd and Enqueue claim only when a
// slot is free, and AddContext waits for a slot until its context is done.
// A claimed slot is always published.
//
// # Memory Ordering
//
// Counters are [memorder.Value] atomics. By default every step is SeqCst.
// Builder.Ordering lowers the floor; at memorder.Relaxed each step uses its
// minimum: AcqRel claim, Acquire loads, AcqRel publish, Release read
// advance, and Acquire/Release fences around the slot write.
// Builder.Backend selects the memorder backend.
//
// # Thread Safety
//
//   - Add, AddStart, AddCommit, AddFunc, Reserve, TryAdd, AddContext,
//     Enqueue: any number of goroutines
//   - Pop, PopBatch, Dequeue: one goroutine at a time
//   - Used, Empty, Full, Size: any goroutine; results are snapshots
//   - Clear: no concurrent operations at all
//
// Concurrent consumers are undefined behavior: the read advance has no
// compare-and-set guard.
//
// # Debugging
//
// Building with the rbq_debug tag asserts the counter invariant after every
// commit and pop.
//
// # Race Detection
//
// Slot contents are plain memory ordered through the counters. The race
// detector does not see that ordering, so concurrent tests are excluded
// with //go:build !race or skipped via [RaceEnabled].
//
// # Dependencies
//
// This package uses [code.hybscloud.com/iox] for semantic errors and
// adaptive backoff, [code.hybscloud.com/atomix] (through memorder) for
// atomic primitives with explicit memory ordering, and
// [code.hybscloud.com/spin] for CPU pause instructions.
package rbq
