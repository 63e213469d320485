// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package sleep provides the short sleeps used between busy-wait checks.
//
// On Linux, For calls nanosleep(2) directly so that microsecond sleeps are not
// rounded up to the runtime timer's resolution. Other targets use time.Sleep.
package sleep
