// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package base58

import (
	"github.com/btcsuite/bignum"
)

// alphabet is the modified base58 alphabet used by Bitcoin.
const alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

const alphabetIdx0 = '1'

// maxPayload is the largest byte payload the fixed-width conversion can
// represent.
const maxPayload = 32

// maxEncodedLen is the longest encoding a 32-byte payload can produce
// (ceil(256 / log2(58)) = 44) and therefore the longest non-zero digit
// run Decode accepts.
const maxEncodedLen = 44

// b58 maps an ASCII character to its base58 digit, or 255 for characters
// outside the alphabet.
var b58 [256]byte

func init() {
	for i := range b58 {
		b58[i] = 255
	}
	for i := 0; i < len(alphabet); i++ {
		b58[alphabet[i]] = byte(i)
	}
}

// mul58 multiplies the value by 58 using shift-and-add, since the
// arithmetic engine only provides modular multiplication.  58 = 32 + 16 +
// 8 + 2, so four doublings and three additions suffice.
func mul58(x *bignum.Val) {
	var t bignum.Val
	t.Set(x).Lsh1() // 2x
	x.Set(&t)
	t.Lsh1().Lsh1() // 8x
	x.Add(&t)       // 10x
	t.Lsh1()        // 16x
	x.Add(&t)       // 26x
	t.Lsh1()        // 32x
	x.Add(&t)       // 58x
}

// Encode encodes the passed bytes into a modified base58 string.  The
// payload must not exceed 32 bytes; longer inputs return an empty string.
func Encode(b []byte) string {
	if len(b) > maxPayload {
		return ""
	}

	var x bignum.Val
	x.SetByteSlice(b)

	// Generate the digits least significant first by repeated division,
	// then account for leading zero bytes, which base conversion alone
	// cannot see.
	answer := make([]byte, 0, len(b)*136/100+1)
	for !x.IsZero() {
		answer = append(answer, alphabet[x.DivMod58()])
	}
	for _, i := range b {
		if i != 0 {
			break
		}
		answer = append(answer, alphabetIdx0)
	}

	// Reverse into most significant first order.
	for i, j := 0, len(answer)-1; i < j; i, j = i+1, j-1 {
		answer[i], answer[j] = answer[j], answer[i]
	}

	return string(answer)
}

// Decode decodes a modified base58 string to bytes.  Invalid characters
// and encodings of values beyond 32 bytes return an empty slice.
func Decode(s string) []byte {
	// Leading '1' characters encode leading zero bytes one for one.
	var zcount int
	for zcount < len(s) && s[zcount] == alphabetIdx0 {
		zcount++
	}
	if len(s)-zcount > maxEncodedLen {
		return nil
	}

	var x bignum.Val
	for i := zcount; i < len(s); i++ {
		digit := b58[s[i]]
		if digit == 255 {
			return nil
		}
		mul58(&x)
		x.AddInt(uint32(digit))
	}
	if x.BitLen() > 256 {
		return nil
	}

	// Strip the zero padding of the fixed-width encoding back off and
	// re-apply the counted leading zeros.
	buf := x.Bytes()
	used := 0
	for used < len(buf) && buf[used] == 0 {
		used++
	}

	val := make([]byte, zcount+len(buf)-used)
	copy(val[zcount:], buf[used:])
	return val
}
