// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build linux

package sleep

import (
	"time"

	"golang.org/x/sys/unix"
)

// For suspends the calling goroutine for at least d.
// Non-positive durations return immediately.
func For(d time.Duration) {
	if d <= 0 {
		return
	}
	ts := unix.NsecToTimespec(d.Nanoseconds())
	for {
		var left unix.Timespec
		err := unix.Nanosleep(&ts, &left)
		if err != unix.EINTR {
			return
		}
		ts = left
	}
}
