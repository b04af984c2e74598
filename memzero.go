// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bignum

// zeroWide wipes a 540-bit multiplication scratch buffer.  The scratch
// holds unreduced products of potentially secret operands, so it is
// cleared before the owning frame is released rather than waiting for the
// memory to be reused.
func zeroWide(w *[18]uint32) {
	*w = [18]uint32{}
}
