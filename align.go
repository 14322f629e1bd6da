// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring

// pad is cache line padding used to keep independently-mutated atomic
// fields off each other's cache line.
type pad [64]byte

// padShort pads out the remainder of a cache line after an 8-byte field.
type padShort [64 - 8]byte
