// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bignum

// maxDecimalDigits is the number of decimal digits needed for the largest
// 256-bit value, i.e. ceil(log10(2^256)).
const maxDecimalDigits = 78

// DivMod58 divides the value by 58 in place and returns the remainder.
// The division is performed with a per-word reciprocal multiply instead
// of hardware division, propagating the remainder from the most
// significant word down.  The value must be normalized and the result is
// normalized.
func (f *Val) DivMod58() uint32 {
	rem := f.n[8] % 58
	f.n[8] /= 58
	for i := 7; i >= 0; i-- {
		// Invariants:
		//   rem = old(f) >> 30(i+1) % 58
		//   f.n[i+1..8] = old(f.n[i+1..8]) / 58
		//   f.n[0..i]   = old(f.n[0..i])
		// 2^30 == 18512790*58 + 4, so
		//   (rem*2^30 + w) / 58 == rem*18512790 + (rem*4 + w)/58
		//   (rem*2^30 + w) % 58 == (rem*4 + w) % 58
		tmp := rem*4 + f.n[i]
		f.n[i] = rem*18512790 + tmp/58
		rem = tmp % 58
	}
	return rem
}

// DivMod1000 divides the value by 1000 in place and returns the
// remainder.  See DivMod58 for the reciprocal-multiply structure.  The
// value must be normalized and the result is normalized.
func (f *Val) DivMod1000() uint32 {
	rem := f.n[8] % 1000
	f.n[8] /= 1000
	for i := 7; i >= 0; i-- {
		// 2^30 == 1073741*1000 + 824
		tmp := rem*824 + f.n[i]
		f.n[i] = rem*1073741 + tmp/1000
		rem = tmp % 1000
	}
	return rem
}

// DigitCount returns the number of base-10 digits of the value, which is
// also the length of its canonical decimal string.  Zero counts as one
// digit.  The value is not modified.
//
// The value must be normalized.
func (f *Val) DigitCount() int {
	var val Val
	val.Set(f)

	// Consume three digits per division and remember the highest
	// position that still produced a nonzero remainder.  The loop always
	// runs the full digit range rather than exiting once the value hits
	// zero.
	digits := 1
	for i := 0; i < maxDecimalDigits; i += 3 {
		limb := val.DivMod1000()
		switch {
		case limb >= 100:
			digits = i + 3
		case limb >= 10:
			digits = i + 2
		case limb >= 1:
			digits = i + 1
		}
	}
	val.Zero()
	return digits
}

// Format renders the value as a decimal string into the caller-provided
// buffer and returns the number of bytes written, or 0 when the buffer is
// too small to hold the result (in which case the buffer contents are
// unspecified and no output was produced).
//
// The numeric portion receives a decimal point exactly decimals digits
// from its right end.  A positive exponent left-pads the digits with that
// many zeros before the point is placed, effectively multiplying the
// value by 10^exponent; a negative exponent drops that many low-order
// digits entirely.  When trailing is false, insignificant trailing zero
// digits after the point are suppressed, keeping at least one digit on
// each side of the point.  The prefix and suffix are copied verbatim
// around the numeric portion.
//
// Callers should size the buffer conservatively: prefix plus suffix plus
// the worst-case digit count plus one byte for the decimal point.
//
// The value must be normalized.
func (f *Val) Format(buf []byte, prefix, suffix string, decimals uint, exponent int, trailing bool) int {
	start := len(prefix)
	end := len(buf) - len(suffix)
	if end < start {
		return 0
	}
	copy(buf, prefix)
	copy(buf[end:], suffix)

	// Digits are generated least significant first and written backward
	// from end toward start; str is the index of the leftmost byte
	// written so far.
	str := end

	pushChecked := func(c byte) bool {
		if str == start {
			return false
		}
		str--
		buf[str] = c
		return true
	}
	push := func(n uint32) bool {
		// A negative exponent swallows low-order digits instead of
		// printing them.
		if exponent < 0 {
			exponent++
			return true
		}
		// Suppress an insignificant trailing zero unless it is the
		// digit immediately right of the decimal point, which always
		// prints so the point is never the last character.
		if n > 0 || trailing || str != end || decimals <= 1 {
			if !pushChecked('0' + byte(n)) {
				return false
			}
		}
		if decimals > 0 {
			decimals--
			if decimals == 0 {
				return pushChecked('.')
			}
		}
		return true
	}

	var val Val
	val.Set(f)

	// Scaling zero is still zero; drop the padding so the output stays
	// the canonical "0".
	if val.IsZero() {
		exponent = 0
	}
	for ; exponent > 0; exponent-- {
		if !push(0) {
			return 0
		}
	}

	digits := val.DigitCount()
	for i := 0; i < digits/3; i++ {
		limb := val.DivMod1000()
		if !push(limb % 10) {
			return 0
		}
		limb /= 10
		if !push(limb % 10) {
			return 0
		}
		limb /= 10
		if !push(limb % 10) {
			return 0
		}
	}
	switch digits % 3 {
	case 2:
		limb := val.DivMod1000()
		if !push(limb%10) || !push(limb/10%10) {
			return 0
		}
	case 1:
		limb := val.DivMod1000()
		if !push(limb % 10) {
			return 0
		}
	}

	// Pad out any remaining decimal places and make sure at least one
	// digit precedes the decimal point.
	for decimals > 0 || str == end || buf[str] == '.' {
		if !push(0) {
			return 0
		}
	}

	// Close the gap between the prefix and the number by moving the
	// number (and the pre-copied suffix) left.
	copy(buf[start:], buf[str:])
	return start + len(buf) - str
}
