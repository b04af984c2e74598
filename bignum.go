// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bignum

import (
	"encoding/binary"
	"encoding/hex"
	"math/bits"
)

// Constants related to the internal representation.
const (
	// valWords is the number of words used to internally represent the
	// value.  Nine 30-bit words hold up to 270 bits, which leaves enough
	// headroom above 256 bits for partly reduced intermediate results.
	valWords = 9

	// valBase is the exponent used to form the numeric base of each word.
	// 2^(valBase*i) where i is the word position.
	valBase = 30

	// valBaseMask is the mask for the bits in each word needed to
	// represent the numeric base of each word.
	valBaseMask = (1 << valBase) - 1
)

// Val implements fixed-precision arithmetic on unsigned 256-bit integers.
// Each value is represented as 9 uint32 words in base 2^30, least
// significant word first, for a maximum magnitude of 2^270 - 1.  The 2-bit
// headroom per word lets the carry-propagating loops run in plain 32-bit
// arithmetic.
//
// The following depicts the internal representation:
//
//	 -----------------------------------------------------------------
//	|        n[8]       |        n[7]       | ... |        n[0]       |
//	| 30 bits for value | 30 bits for value | ... | 30 bits for value |
//	| Mult: 2^(30*8)    | Mult: 2^(30*7)    | ... | Mult: 2^(30*0)    |
//	 -----------------------------------------------------------------
//
// A value is normalized when every word is below 2^30, partly reduced when
// it is additionally below twice the modulus in play, and fully reduced
// when it is below the modulus.  Only a fully reduced value fits in 256
// bits and can be serialized without loss.  Each method documents which of
// these states it requires and produces; none of them are verified at
// runtime.
type Val struct {
	n [9]uint32
}

// String returns the value as a human-readable big-endian hex string.
//
// The value must be fully reduced for the result to be complete since
// bits beyond 256 are not representable in the output.
func (f Val) String() string {
	t := new(Val).Set(&f).Normalize()
	return hex.EncodeToString(t.Bytes()[:])
}

// Zero sets the value to zero.  A newly created Val is already set to
// zero.  This function can be useful to clear an existing value for reuse
// or to wipe a scratch value that held sensitive data.
func (f *Val) Zero() {
	f.n = [9]uint32{}
}

// Set sets the value equal to the passed value.
//
// The value is returned to support chaining.  This enables syntax like:
// f := new(Val).Set(f2).Add(f3) so that f = f2 + f3 where f2 is not
// modified.
func (f *Val) Set(val *Val) *Val {
	*f = *val
	return f
}

// SetInt sets the value to the passed unsigned integer.  This is a
// convenience function since it is fairly common to perform some
// arithmetic with small native integers.
//
// The value is returned to support chaining.  This enables syntax such as
// f := new(Val).SetInt(2).Mul(f2, p) so that f = 2 * f2 mod p.
func (f *Val) SetInt(ui uint32) *Val {
	f.Zero()
	f.n[0] = ui & valBaseMask
	f.n[1] = ui >> valBase
	return f
}

// SetUint64 sets the value to the passed 64-bit unsigned integer.
//
// The value is returned to support chaining.
func (f *Val) SetUint64(ui uint64) *Val {
	f.Zero()
	f.n[0] = uint32(ui & valBaseMask)
	f.n[1] = uint32((ui >> valBase) & valBaseMask)
	f.n[2] = uint32(ui >> (2 * valBase))
	return f
}

// SetBytes packs the passed 32-byte big-endian value into the internal
// representation.  The result is normalized and, since it fits in 256
// bits, partly reduced with respect to any supported modulus.
//
// The value is returned to support chaining.  This enables syntax like:
// f := new(Val).SetBytes(byteArray).Mul(f2, p) so that f = ba * f2 mod p.
func (f *Val) SetBytes(b *[32]byte) *Val {
	// Repack the eight big-endian 32-bit words into nine 30-bit words.
	// temp carries the bits of the current word that did not fit into
	// the previous 30-bit word.
	var temp uint32
	for i := 0; i < 8; i++ {
		limb := binary.BigEndian.Uint32(b[(7-i)*4:])
		temp |= limb << (2 * uint(i))
		f.n[i] = temp & valBaseMask
		temp = limb >> (30 - 2*uint(i))
	}
	f.n[8] = temp
	return f
}

// SetByteSlice packs the passed big-endian value into the internal
// representation.  Only the first 32 bytes are used.  As a result, it is
// up to the caller to ensure numbers of the appropriate size are used or
// the value will be truncated.
//
// The value is returned to support chaining.  This enables syntax like:
// f := new(Val).SetByteSlice(byteSlice)
func (f *Val) SetByteSlice(b []byte) *Val {
	var b32 [32]byte
	if len(b) > 32 {
		b = b[:32]
	}
	copy(b32[32-len(b):], b)
	return f.SetBytes(&b32)
}

// SetBytesLE packs the passed 32-byte little-endian value into the
// internal representation.  The result is normalized and partly reduced.
//
// The value is returned to support chaining.
func (f *Val) SetBytesLE(b *[32]byte) *Val {
	var temp uint32
	for i := 0; i < 8; i++ {
		limb := binary.LittleEndian.Uint32(b[i*4:])
		temp |= limb << (2 * uint(i))
		f.n[i] = temp & valBaseMask
		temp = limb >> (30 - 2*uint(i))
	}
	f.n[8] = temp
	return f
}

// SetHex decodes the passed big-endian hex string into the internal
// representation.  Only the first 32 bytes are used.
//
// The value is returned to support chaining.  This enables syntax like:
// f := new(Val).SetHex("0abc").AddInt(1) so that f = 0x0abc + 1.
func (f *Val) SetHex(hexString string) *Val {
	if len(hexString)%2 != 0 {
		hexString = "0" + hexString
	}
	bytes, _ := hex.DecodeString(hexString)
	return f.SetByteSlice(bytes)
}

// PutBytes unpacks the value to a 32-byte big-endian value using the
// passed byte array.  There is a similar function, Bytes, which unpacks
// the value into a new array and returns that.  This version is provided
// since it can be useful to cut down on the number of allocations by
// allowing the caller to reuse a buffer.
//
// The value must be fully reduced for this function to return the correct
// result since bits beyond 256 are silently dropped.
func (f *Val) PutBytes(b *[32]byte) {
	// The inverse of SetBytes: temp holds the bits of the value above
	// the words already written.
	temp := f.n[8]
	for i := 0; i < 8; i++ {
		limb := f.n[7-i]
		temp = temp<<(16+2*uint(i)) | limb>>(14-2*uint(i))
		binary.BigEndian.PutUint32(b[i*4:], temp)
		temp = limb
	}
}

// Bytes unpacks the value to a 32-byte big-endian value.  See PutBytes
// for a variant that allows a buffer to be passed, which can be useful to
// cut down on the number of allocations.
//
// The value must be fully reduced for this function to return the correct
// result.
func (f *Val) Bytes() *[32]byte {
	b := new([32]byte)
	f.PutBytes(b)
	return b
}

// PutBytesLE unpacks the value to a 32-byte little-endian value using the
// passed byte array.
//
// The value must be fully reduced for this function to return the correct
// result.
func (f *Val) PutBytesLE(b *[32]byte) {
	temp := f.n[8]
	for i := 0; i < 8; i++ {
		limb := f.n[7-i]
		temp = temp<<(16+2*uint(i)) | limb>>(14-2*uint(i))
		binary.LittleEndian.PutUint32(b[(7-i)*4:], temp)
		temp = limb
	}
}

// BytesLE unpacks the value to a 32-byte little-endian value.
//
// The value must be fully reduced for this function to return the correct
// result.
func (f *Val) BytesLE() *[32]byte {
	b := new([32]byte)
	f.PutBytesLE(b)
	return b
}

// Normalize propagates the carries between words so that every word is
// below 2^30 again.  Bits above 2^270 are discarded.  Unlike the modular
// reduction functions, this does not change the represented value of an
// already in-range input.
//
// The value is returned to support chaining.
func (f *Val) Normalize() *Val {
	var tmp uint32
	for i := 0; i < 9; i++ {
		tmp += f.n[i]
		f.n[i] = tmp & valBaseMask
		tmp >>= valBase
	}
	return f
}

// BitLen returns the index of the highest set bit plus one, or zero when
// the value is zero.
//
// The value must be normalized for this function to return the correct
// result.  This function is NOT constant time.
func (f *Val) BitLen() int {
	for i := 8; i >= 0; i-- {
		if f.n[i] != 0 {
			return i*valBase + bits.Len32(f.n[i])
		}
	}
	return 0
}

// IsZero returns whether or not the value is equal to zero in constant
// time.
//
// The value must be normalized for this function to return the correct
// result.
func (f *Val) IsZero() bool {
	// The value can only be zero if no bits are set in any of the words.
	bits := f.n[0] | f.n[1] | f.n[2] | f.n[3] | f.n[4] | f.n[5] |
		f.n[6] | f.n[7] | f.n[8]

	return bits == 0
}

// IsOdd returns whether or not the value is an odd number.
//
// The value must be normalized for this function to return the correct
// result.
func (f *Val) IsOdd() bool {
	// Only odd numbers have the bottom bit set.
	return f.n[0]&1 == 1
}

// Equals returns whether or not the two values are the same in constant
// time.  Both values being compared must be normalized for this function
// to return the correct result.
func (f *Val) Equals(val *Val) bool {
	// Xor only sets bits when they are different, so the two values can
	// only be the same if no bits are set after xoring each word.
	bits := (f.n[0] ^ val.n[0]) | (f.n[1] ^ val.n[1]) | (f.n[2] ^ val.n[2]) |
		(f.n[3] ^ val.n[3]) | (f.n[4] ^ val.n[4]) | (f.n[5] ^ val.n[5]) |
		(f.n[6] ^ val.n[6]) | (f.n[7] ^ val.n[7]) | (f.n[8] ^ val.n[8])

	return bits == 0
}

// lessMask returns 1 when f < val and 0 otherwise without any
// data-dependent branching.  Every word is visited exactly once: the two
// accumulators collect a strictly-less and a strictly-greater bit per word
// from the most significant word down, and the most significant bit that
// differs between them decides the comparison.
//
// Both values must be normalized.
func (f *Val) lessMask(val *Val) uint32 {
	var lt, gt uint32
	for i := 8; i >= 0; i-- {
		// The words are below 2^30, so the subtraction wraps into the
		// top bit exactly when the minuend is smaller.
		lt = lt<<1 | (f.n[i]-val.n[i])>>31
		gt = gt<<1 | (val.n[i]-f.n[i])>>31
	}
	return (gt - lt) >> 31
}

// Less returns whether f < val in constant time.  Both values must be
// normalized for this function to return the correct result.
func (f *Val) Less(val *Val) bool {
	return f.lessMask(val) != 0
}

// Cmov sets the value to truecase when cond is 1 and to falsecase when
// cond is 0, in constant time.  The receiver may alias either case.
//
// The caller MUST ensure cond is exactly 0 or 1; any other value breaks
// the mask construction and produces garbage.
func (f *Val) Cmov(cond int, truecase, falsecase *Val) *Val {
	tmask := -uint32(cond)
	fmask := ^tmask
	for i := 0; i < 9; i++ {
		f.n[i] = truecase.n[i]&tmask | falsecase.n[i]&fmask
	}
	return f
}

// Lsh1 shifts the value left by one bit, i.e. multiplies it by 2.  The
// value must be normalized.  The result is normalized but not reduced, so
// it is the caller's responsibility to reduce when the extra bit matters.
//
// The value is returned to support chaining.
func (f *Val) Lsh1() *Val {
	for i := 8; i > 0; i-- {
		f.n[i] = f.n[i]<<1&valBaseMask | f.n[i-1]>>29
	}
	f.n[0] = f.n[0] << 1 & valBaseMask
	return f
}

// Rsh1 shifts the value right by one bit, i.e. divides it by 2 rounding
// down.  The value must be normalized and the result is normalized.
//
// The value is returned to support chaining.
func (f *Val) Rsh1() *Val {
	for i := 0; i < 8; i++ {
		f.n[i] = f.n[i]>>1 | (f.n[i+1]&1)<<29
	}
	f.n[8] >>= 1
	return f
}

// SetBit sets the given bit of the value.
func (f *Val) SetBit(bit uint) {
	f.n[bit/valBase] |= 1 << (bit % valBase)
}

// ClearBit clears the given bit of the value.
func (f *Val) ClearBit(bit uint) {
	f.n[bit/valBase] &^= 1 << (bit % valBase)
}

// Bit returns the given bit of the value, either 0 or 1.
func (f *Val) Bit(bit uint) uint32 {
	return f.n[bit/valBase] >> (bit % valBase) & 1
}

// Xor sets f = a ^ b word-wise.  This is not a modular operation; it is
// used for masking and blinding.
//
// The value is returned to support chaining.
func (f *Val) Xor(a, b *Val) *Val {
	for i := 0; i < 9; i++ {
		f.n[i] = a.n[i] ^ b.n[i]
	}
	return f
}
