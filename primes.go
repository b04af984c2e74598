// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bignum

// hexToVal converts the passed hex string into a Val and will panic if
// there is an error.  This is only provided for the hard-coded constants
// so errors in the source code can be detected.  It will only (and must
// only) be called with hard-coded values.
func hexToVal(s string) *Val {
	if len(s) != 64 {
		panic("invalid hex in source file: " + s)
	}
	return new(Val).SetHex(s)
}

// Moduli of the supported curves.  All four lie in the prime band
// (2^256 - 2^224, 2^256) required by the reduction routines and have a
// lowest word above 1 as required by Inverse.  These are package-level
// variables for caller convenience; they must be treated as read-only.
var (
	// Secp256k1P is the field prime of the secp256k1 curve,
	// 2^256 - 2^32 - 977.
	Secp256k1P = hexToVal("fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f")

	// Secp256k1N is the group order of the secp256k1 curve.
	Secp256k1N = hexToVal("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141")

	// Nist256p1P is the field prime of the nist256p1 (P-256) curve.
	Nist256p1P = hexToVal("ffffffff00000001000000000000000000000000ffffffffffffffffffffffff")

	// Nist256p1N is the group order of the nist256p1 (P-256) curve.
	Nist256p1N = hexToVal("ffffffff00000000ffffffffffffffffbce6faada7179e84f3b9cac2fc632551")
)
