// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rbq

import (
	"sync"
	"time"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/rbq/internal/sleep"
	"code.hybscloud.com/spin"
)

// WaitMode selects how producers wait for a free slot and for their
// predecessor's publish.
type WaitMode uint8

const (
	// WaitSleep re-checks after sleeping a fixed duration (1µs by default).
	WaitSleep WaitMode = iota
	// WaitSpin re-checks after a CPU pause.
	WaitSpin
	// WaitAdaptive re-checks with iox.Backoff, escalating from pauses to sleeps.
	WaitAdaptive
	// WaitBlocking parks on a condition variable until the consumer or a
	// producer makes progress. Every Pop and commit then takes a mutex.
	WaitBlocking
)

// DefaultSleep is the WaitSleep interval.
const DefaultSleep = time.Microsecond

// String returns the mode name.
func (m WaitMode) String() string {
	switch m {
	case WaitSleep:
		return "Sleep"
	case WaitSpin:
		return "Spin"
	case WaitAdaptive:
		return "Adaptive"
	case WaitBlocking:
		return "Blocking"
	}
	return "WaitMode(invalid)"
}

// waiter is the per-call state of one wait loop. Callers run
//
//	for { w.prepare(); if ready() { break }; w.wait() }
//
// so that a blocking waiter cannot miss a wake-up issued after its check.
type waiter struct {
	mode WaitMode
	nap  time.Duration
	p    *parker
	gen  uint64
	sw   spin.Wait
	bo   iox.Backoff
}

func (r *Ring[T]) waiter() waiter {
	return waiter{mode: r.mode, nap: r.nap, p: r.parker}
}

func (w *waiter) prepare() {
	if w.p != nil {
		w.gen = w.p.generation()
	}
}

func (w *waiter) wait() {
	switch w.mode {
	case WaitSpin:
		w.sw.Once()
	case WaitAdaptive:
		w.bo.Wait()
	case WaitBlocking:
		w.p.park(w.gen)
	default:
		sleep.For(w.nap)
	}
}

// parker is a generation-counted condition variable. park returns once the
// generation has moved past the one observed before the caller's check.
type parker struct {
	mu   sync.Mutex
	cond sync.Cond
	gen  uint64
}

func newParker() *parker {
	p := &parker{}
	p.cond.L = &p.mu
	return p
}

func (p *parker) generation() uint64 {
	p.mu.Lock()
	gen := p.gen
	p.mu.Unlock()
	return gen
}

func (p *parker) park(gen uint64) {
	p.mu.Lock()
	for p.gen == gen {
		p.cond.Wait()
	}
	p.mu.Unlock()
}

func (p *parker) unpark() {
	p.mu.Lock()
	p.gen++
	p.mu.Unlock()
	p.cond.Broadcast()
}
