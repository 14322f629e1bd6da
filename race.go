//go:build race

// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring

// RaceEnabled is true when the race detector is active. Used by tests
// to skip concurrent Transaction tests, which trigger false positives
// because the race detector cannot observe happens-before established
// by acquire/release atomics on the reservation/commit indices.
const RaceEnabled = true
