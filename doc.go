// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package bignum implements fixed-precision unsigned 256-bit integer
arithmetic for use as the substrate of elliptic curve operations.

Unlike math/big, the width is fixed: every value is nine 30-bit limbs in
base 2^30 backed by a flat uint32 array, so no heap allocation or
resizing ever occurs and the worst-case magnitude is 2^270 - 1.  All
modular routines take the modulus as an explicit parameter and are only
correct for primes strictly between 2^256 - 2^224 and 2^256, which is
the band the secp256k1 and nist256p1 field primes and group orders fall
into.  The fast reduction exploits that band to estimate quotients from
the topmost limbs instead of performing full division.

The package distinguishes three documented states of a value:

  - normalized: every limb is below 2^30
  - partly reduced: normalized and below twice the modulus
  - fully reduced: normalized and below the modulus

Functions document which states they require and produce.  In keeping
with the performance-sensitive nature of the code, these preconditions
are not checked at runtime; violating them yields an incorrect numeric
result rather than an error.  The operations used directly on secret
scalars (IsZero, Equals, Less, Cmov, Half) execute in constant time with
no data-dependent branching.
*/
package bignum
