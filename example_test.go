// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rbq_test

import (
	"errors"
	"fmt"

	"code.hybscloud.com/rbq"
	"code.hybscloud.com/rbq/memorder"
)

// ExampleNewRing shows the basic add and pop loop.
func ExampleNewRing() {
	r := rbq.NewRing[string](4)

	r.Add("alpha")
	r.Add("beta")
	r.Add("gamma")
	fmt.Println("used:", r.Used())

	var s string
	for r.Pop(&s) {
		fmt.Println(s)
	}
	fmt.Println("empty:", r.Empty())

	// Output:
	// used: 3
	// alpha
	// beta
	// gamma
	// empty: true
}

// ExampleBuild shows capacity rounding and builder options.
func ExampleBuild() {
	small := rbq.Build[int](rbq.New(5))
	tuned := rbq.Build[int](rbq.New(100).Spin().Ordering(memorder.Relaxed))
	parked := rbq.Build[int](rbq.New(1024).Blocking().Backend(memorder.Emulated))

	fmt.Println(small.Size(), tuned.Size(), parked.Size())

	// Output:
	// 8 128 1024
}

// ExampleRing_AddStart fills a claimed slot in place before publishing it.
func ExampleRing_AddStart() {
	type packet struct {
		Seq  uint64
		Data []byte
	}
	r := rbq.NewRing[packet](8)

	for _, payload := range []string{"syn", "ack"} {
		seq, slot := r.AddStart()
		slot.Seq = seq
		slot.Data = append(slot.Data[:0], payload...)
		r.AddCommit(seq)
	}

	var p packet
	for r.Pop(&p) {
		fmt.Printf("%d %s\n", p.Seq, p.Data)
	}

	// Output:
	// 1 syn
	// 2 ack
}

// ExampleRing_AddFunc shows that a panicking fill still publishes its
// sequence, as a zero value.
func ExampleRing_AddFunc() {
	r := rbq.NewRing[int](4)

	r.AddFunc(func(slot *int) { *slot = 7 })
	func() {
		defer func() { fmt.Println("recovered:", recover()) }()
		r.AddFunc(func(slot *int) {
			*slot = 99
			panic("decode failed")
		})
	}()
	r.AddFunc(func(slot *int) { *slot = 8 })

	var v int
	for r.Pop(&v) {
		fmt.Println(v)
	}

	// Output:
	// recovered: decode failed
	// 7
	// 0
	// 8
}

// ExampleRing_Enqueue shows the non-blocking producer and consumer calls.
func ExampleRing_Enqueue() {
	r := rbq.NewRing[int](2)

	for i := range 3 {
		v := i
		if err := r.Enqueue(&v); err != nil {
			fmt.Println("enqueue", i, "->", rbq.IsWouldBlock(err))
		}
	}
	for {
		v, err := r.Dequeue()
		if errors.Is(err, rbq.ErrWouldBlock) {
			break
		}
		fmt.Println("dequeued", v)
	}

	// Output:
	// enqueue 2 -> true
	// dequeued 0
	// dequeued 1
}

// Example_orderingJoin combines orderings.
func Example_orderingJoin() {
	fmt.Println(memorder.Acquire.Join(memorder.Release))
	fmt.Println(memorder.Consume.Join(memorder.Relaxed))
	fmt.Println(memorder.Release.Join(memorder.SeqCst))

	// Output:
	// AcqRel
	// Consume
	// SeqCst
}
