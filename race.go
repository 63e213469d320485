// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package rbq

// RaceEnabled is true when the race detector is active.
// Used by tests to skip concurrent tests: slot writes are ordered through
// the sequence counters, which the detector does not track.
const RaceEnabled = true
