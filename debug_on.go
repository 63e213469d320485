// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build rbq_debug

package rbq

// debugChecks enables sequence invariant assertions after every commit and pop.
const debugChecks = true
