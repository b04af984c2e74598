// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bignum

// The reduction strategy in this file relies on the modulus being a prime
// between 2^256 - 2^224 and 2^256.  Within that band the quotient of any
// in-range value divided by the prime can be estimated from the topmost
// limbs alone, so a multiple of the prime can be subtracted in a single
// carry-propagating pass instead of performing full division.  The 64-bit
// accumulators in FastMod and reduceWideStep are seeded with a bias
// (0x2000000000000000 for the first word, 0x1FFFFFFF80000000 for the
// rest) so the subtraction of coef*prime can never underflow the unsigned
// accumulator; the bias telescopes away across the carry chain.

const (
	// reduceBiasFirst is added to the first 64-bit accumulator word
	// before subtracting coef*prime.  It is a multiple of every prime in
	// the supported band plus slack, so it cannot change the residue.
	reduceBiasFirst = 0x2000000000000000

	// reduceBias is the per-word bias for the remaining accumulator
	// words.  It is reduceBiasFirst minus the maximum possible carry
	// borrowed by the previous word (2^31 * 2^30).
	reduceBias = 0x1FFFFFFF80000000
)

// Add adds the passed value to the existing one, i.e. f = f + b.  Both
// values must be normalized and the result is normalized, though it is
// not reduced in any way.
//
// The value is returned to support chaining.
func (f *Val) Add(b *Val) *Val {
	var tmp uint32
	for i := 0; i < 9; i++ {
		tmp += f.n[i] + b.n[i]
		f.n[i] = tmp & valBaseMask
		tmp >>= valBase
	}
	return f
}

// AddInt adds the passed unsigned integer to the existing value, i.e.
// f = f + ui.  The value must be normalized and the result is normalized.
//
// The value is returned to support chaining.
func (f *Val) AddInt(ui uint32) *Val {
	tmp := ui
	for i := 0; i < 9; i++ {
		tmp += f.n[i]
		f.n[i] = tmp & valBaseMask
		tmp >>= valBase
	}
	return f
}

// SubInt subtracts the passed unsigned integer modulo the prime, i.e.
// f = f - ui + prime.  The integer must not exceed the lowest word of the
// prime so the wraparound of the lowest word is fully compensated when
// the prime is added back.  The value must be normalized; the result is
// normalized but not reduced.
//
// The value is returned to support chaining.
func (f *Val) SubInt(ui uint32, prime *Val) *Val {
	// The possible underflow of the word is taken care of when adding
	// the prime.
	f.n[0] -= ui
	return f.Add(prime)
}

// Sub sets f = a - b.  The caller must ensure a >= b; the routine is a
// plain borrow-propagating subtraction with no compensation.  Both inputs
// must be normalized and the result is normalized.
//
// The value is returned to support chaining.
func (f *Val) Sub(a, b *Val) *Val {
	// Borrows are handled by offsetting every word with 2^30 - 1 and
	// seeding the chain with 1, which nets out to zero across the whole
	// subtraction.
	tmp := uint32(1)
	for i := 0; i < 9; i++ {
		tmp += valBaseMask + a.n[i] - b.n[i]
		f.n[i] = tmp & valBaseMask
		tmp >>= valBase
	}
	return f
}

// SubMod sets f = a - b mod prime.  More exactly it computes
// f = a + (2*prime - b), which avoids needing to know whether a >= b: as
// long as b is partly reduced (below 2*prime) the offset guarantees no
// borrow.  The result is normalized but not reduced.
//
// The value is returned to support chaining.
func (f *Val) SubMod(a, b, prime *Val) *Val {
	tmp := uint32(1)
	for i := 0; i < 9; i++ {
		tmp += valBaseMask + a.n[i] + 2*prime.n[i] - b.n[i]
		f.n[i] = tmp & valBaseMask
		tmp >>= valBase
	}
	return f
}

// AddMod adds the passed value and partly reduces the sum modulo the
// prime, i.e. f = f + b mod prime.  Both inputs must be normalized; the
// result is partly reduced.
//
// The value is returned to support chaining.
func (f *Val) AddMod(b, prime *Val) *Val {
	// The word-wise sums stay below 2^31, which FastMod accepts without
	// prior carry propagation.
	for i := 0; i < 9; i++ {
		f.n[i] += b.n[i]
	}
	return f.FastMod(prime)
}

// FastMod partly reduces the value modulo the prime.  The input does not
// have to be normalized; it can be any value that fits the words.  The
// result is normalized and partly reduced, i.e. below 2*prime.
//
// The prime must be in the supported band between 2^256 - 2^224 and
// 2^256; the quotient estimate taken from the top word is only valid
// there.
func (f *Val) FastMod(prime *Val) *Val {
	// coef approximates f / prime.  Subtracting coef*prime leaves a
	// remainder below 2*prime because the prime band caps the estimate
	// error at one.
	coef := uint64(f.n[8] >> 16)
	temp := reduceBiasFirst + uint64(f.n[0]) - uint64(prime.n[0])*coef
	f.n[0] = uint32(temp) & valBaseMask
	for j := 1; j < 9; j++ {
		temp >>= valBase
		temp += reduceBias + uint64(f.n[j]) - uint64(prime.n[j])*coef
		f.n[j] = uint32(temp) & valBaseMask
	}
	return f
}

// ModReduce fully reduces the value modulo the prime by computing
// f = f >= prime ? f - prime : f with a single constant-time conditional
// subtraction.  The input must be partly reduced; the result is fully
// reduced.
//
// The value is returned to support chaining.
func (f *Val) ModReduce(prime *Val) *Val {
	flag := f.lessMask(prime) // 1 when f < prime
	var temp Val
	temp.Sub(f, prime)
	f.Cmov(int(flag), f, &temp)
	temp.Zero()
	return f
}

// Half multiplies the value by 1/2 modulo the prime in constant time.  It
// computes f = f odd ? (f + prime) >> 1 : f >> 1, with the conditional
// addition of the prime folded into the same carry loop as the shift so
// the parity of f is never observable as a branch.  The value must be
// normalized; a partly reduced input stays partly reduced.
//
// The value is returned to support chaining.
func (f *Val) Half(prime *Val) *Val {
	xodd := -(f.n[0] & 1)
	tmp1 := (f.n[0] + prime.n[0]&xodd) >> 1
	for j := 0; j < 8; j++ {
		tmp2 := f.n[j+1] + prime.n[j+1]&xodd
		tmp1 += (tmp2 & 1) << 29
		f.n[j] = tmp1 & valBaseMask
		tmp1 >>= valBase
		tmp1 += tmp2 >> 1
	}
	f.n[8] = tmp1
	return f
}

// MulInt multiplies the value by the small constant k modulo the prime,
// i.e. f = k * f mod prime.  The value must be normalized and k must not
// exceed 4; larger factors would overflow the words before the reduction
// runs.  The result is partly reduced.
//
// The value is returned to support chaining.
func (f *Val) MulInt(k uint32, prime *Val) *Val {
	for j := 0; j < 9; j++ {
		f.n[j] = k * f.n[j]
	}
	return f.FastMod(prime)
}

// mulWide computes k * x as a 540-bit number in base 2^30 using plain
// schoolbook multiplication.  Both inputs must be normalized and the
// result is normalized.  The 64-bit accumulator cannot overflow since
// 9 * (2^30-1)^2 < 2^64.
func mulWide(k, x *Val, w *[18]uint32) {
	var temp uint64

	// Lower half of the long multiplication.
	i := 0
	for ; i < 9; i++ {
		for j := 0; j <= i; j++ {
			temp += uint64(k.n[j]) * uint64(x.n[i-j])
		}
		w[i] = uint32(temp) & valBaseMask
		temp >>= valBase
	}
	// Upper half.
	for ; i < 17; i++ {
		for j := i - 8; j < 9; j++ {
			temp += uint64(k.n[j]) * uint64(x.n[i-j])
		}
		w[i] = uint32(temp) & valBaseMask
		temp >>= valBase
	}
	w[17] = uint32(temp)
}

// reduceWideStep performs one window of the wide reduction.  With
// k = i-8, it assumes w < 2^(30k+31) * prime on entry and guarantees
// w < 2^(30(k-1)+31) * prime on exit by estimating the per-window
// quotient from the two-word window at i and subtracting coef*prime
// scaled to the window.
func reduceWideStep(w *[18]uint32, prime *Val, i int) {
	// coef = w / 2^(30k+256) rounded down, provably below 2^31.
	coef := uint64(w[i]>>16 + w[i+1]<<14)
	temp := reduceBiasFirst + uint64(w[i-8]) - uint64(prime.n[0])*coef
	w[i-8] = uint32(temp) & valBaseMask
	j := 1
	for ; j < 9; j++ {
		temp >>= valBase
		// coef*prime.n[j] <= (2^31-1)*(2^30-1), so the biased addition
		// cannot underflow.
		temp += reduceBias + uint64(w[i-8+j]) - uint64(prime.n[j])*coef
		w[i-8+j] = uint32(temp) & valBaseMask
	}
	temp >>= valBase
	temp += reduceBias + uint64(w[i-8+j])
	w[i-8+j] = uint32(temp) & valBaseMask
}

// reduceWide reduces the passed 540-bit product modulo the prime and
// stores the result in f.  The product must be normalized; the result is
// partly reduced.
func (f *Val) reduceWide(w *[18]uint32, prime *Val) *Val {
	// Walk the windows from the most significant word down.  After the
	// step for window i the word above it is exhausted.
	for i := 16; i >= 8; i-- {
		reduceWideStep(w, prime, i)
	}
	for i := 0; i < 9; i++ {
		f.n[i] = w[i]
	}
	return f
}

// Mul multiplies the value by the passed value modulo the prime, i.e.
// f = k * f mod prime.  Both inputs must be below 180*prime.  The result
// is partly reduced.  The 540-bit scratch product transiently holds
// unreduced products of potentially secret inputs and is therefore wiped
// before returning.
//
// The value is returned to support chaining.
func (f *Val) Mul(k *Val, prime *Val) *Val {
	var w [18]uint32
	mulWide(k, f, &w)
	f.reduceWide(&w, prime)
	zeroWide(&w)
	return f
}

// Inverse computes the modular inverse of the value via Fermat's little
// theorem, i.e. f = f^(prime-2) mod prime, using square-and-multiply over
// the words of the exponent from least to most significant bit.  The
// exponent is derived from the public prime, so branching on its bits
// leaks nothing about f.
//
// The word-0 adjustment below only subtracts 2 from the lowest exponent
// word, which is correct for the supported curve primes because their
// lowest word exceeds 1; it does not generalize to arbitrary primes.  The
// result is fully reduced.
//
// The value is returned to support chaining.
func (f *Val) Inverse(prime *Val) *Val {
	var res Val
	res.SetInt(1)
	for i := 0; i < 9; i++ {
		// Invariants:
		//   f   = old(f)^(2^(i*30))
		//   res = old(f)^((prime-2) % 2^(i*30))
		limb := prime.n[i]
		if i == 0 {
			limb -= 2
		}
		for j := 0; j < 30; j++ {
			// Early abort when only zero bits follow.
			if i == 8 && limb == 0 {
				break
			}
			if limb&1 != 0 {
				res.Mul(f, prime)
			}
			limb >>= 1
			f.Mul(f, prime)
		}
	}
	res.ModReduce(prime)
	f.Set(&res)
	res.Zero()
	return f
}

// Sqrt computes a modular square root of the value, i.e.
// f = f^((prime+1)/4) mod prime.  The formula only recovers a root for
// primes congruent to 3 mod 4, which holds for the supported curve
// primes.  When the value is not a quadratic residue the result is
// garbage; callers that cannot guarantee residuosity must square the
// result and compare.  The value must be partly reduced; the result is
// fully reduced.
//
// The value is returned to support chaining.
func (f *Val) Sqrt(prime *Val) *Val {
	var res, p Val
	res.SetInt(1)

	// p = (prime+1)/4
	p.Set(prime).AddInt(1).Rsh1().Rsh1()

	for i := 0; i < 9; i++ {
		// Invariants:
		//   f   = old(f)^(2^(i*30))
		//   res = old(f)^(p % 2^(i*30))
		limb := p.n[i]
		for j := 0; j < 30; j++ {
			if i == 8 && limb == 0 {
				break
			}
			if limb&1 != 0 {
				res.Mul(f, prime)
			}
			limb >>= 1
			f.Mul(f, prime)
		}
	}
	res.ModReduce(prime)
	f.Set(&res)
	res.Zero()
	p.Zero()
	return f
}
