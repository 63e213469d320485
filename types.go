// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rbq

// Queue is the non-blocking producer-consumer interface implemented by
// [Ring]. Both operations return ErrWouldBlock when they cannot proceed.
type Queue[T any] interface {
	Producer[T]
	Consumer[T]
	Cap() int
}

// Producer is the interface for non-blocking enqueueing.
type Producer[T any] interface {
	// Enqueue copies *elem into the queue.
	// Returns nil on success, ErrWouldBlock if the queue is full.
	// Safe for multiple producers.
	Enqueue(elem *T) error
}

// Consumer is the interface for non-blocking dequeueing.
type Consumer[T any] interface {
	// Dequeue removes and returns the oldest element.
	// Returns (zero-value, ErrWouldBlock) if the queue is empty.
	// Single consumer only.
	Dequeue() (T, error)
}

// Adder is the blocking producer interface: Add waits for room instead of
// failing.
type Adder[T any] interface {
	Add(item T)
}

var (
	_ Queue[int] = (*Ring[int])(nil)
	_ Adder[int] = (*Ring[int])(nil)
)
