//go:build !race

// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring

// RaceEnabled is false when the race detector is not active.
const RaceEnabled = false
