// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bignum

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestDivMod ensures the reciprocal-multiply divisions agree with the
// big integer reference across random values.
func TestDivMod(t *testing.T) {
	rng := rand.New(rand.NewSource(511))

	divisors := []struct {
		div    int64
		divmod func(*Val) uint32
	}{
		{58, (*Val).DivMod58},
		{1000, (*Val).DivMod1000},
	}
	for _, d := range divisors {
		for i := 0; i < 512; i++ {
			f, fBig := randVal(t, rng)

			rem := d.divmod(f)

			wantQuo, wantRem := new(big.Int).DivMod(fBig,
				big.NewInt(d.div), new(big.Int))
			require.Equal(t, wantRem.Uint64(), uint64(rem),
				"divmod %d remainder for %x", d.div, fBig)
			require.Zero(t, bigFromVal(f).Cmp(wantQuo),
				"divmod %d quotient for %x", d.div, fBig)
		}
	}
}

// TestDigitCount ensures the decimal digit count matches the length of
// the canonical decimal string for boundary and random values.
func TestDigitCount(t *testing.T) {
	tests := []struct {
		in       uint64
		expected int
	}{
		{0, 1},
		{1, 1},
		{9, 1},
		{10, 2},
		{99, 2},
		{100, 3},
		{999, 3},
		{1000, 4},
		{1000000000000000000, 19},
	}
	for i, test := range tests {
		f := new(Val).SetUint64(test.in)
		if got := f.DigitCount(); got != test.expected {
			t.Errorf("DigitCount #%d (%d): got %d want %d", i, test.in,
				got, test.expected)
		}
	}

	// The largest 256-bit value has 78 digits.
	f := setHex("ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff")
	if got := f.DigitCount(); got != 78 {
		t.Errorf("DigitCount 2^256-1: got %d want 78", got)
	}

	rng := rand.New(rand.NewSource(511))
	for i := 0; i < 256; i++ {
		f, fBig := randVal(t, rng)
		if got, want := f.DigitCount(), len(fBig.String()); got != want {
			t.Errorf("DigitCount #%d (%s): got %d want %d", i, fBig, got, want)
		}
	}
}

// TestFormat ensures decimal rendering handles decimal point placement,
// exponent scaling, trailing zero suppression and the prefix/suffix
// copies.
func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		value    string // big-endian hex
		prefix   string
		suffix   string
		decimals uint
		exponent int
		trailing bool
		expected string
	}{
		{
			name:     "zero",
			value:    "0",
			expected: "0",
		},
		{
			name:     "zero with decimals suppressed",
			value:    "0",
			decimals: 2,
			expected: "0.0",
		},
		{
			name:     "zero with decimals forced",
			value:    "0",
			decimals: 2,
			trailing: true,
			expected: "0.00",
		},
		{
			name:     "one",
			value:    "1",
			expected: "1",
		},
		{
			name:     "plain integer",
			value:    "4d2", // 1234
			expected: "1234",
		},
		{
			name:     "decimal point placement",
			value:    "4d2", // 1234
			decimals: 2,
			expected: "12.34",
		},
		{
			name:     "more decimals than digits",
			value:    "5",
			decimals: 3,
			expected: "0.005",
		},
		{
			name:     "trailing zeros suppressed keeps one",
			value:    "5f5e100", // 100000000
			decimals: 8,
			expected: "1.0",
		},
		{
			name:     "trailing zeros forced",
			value:    "5f5e100", // 100000000
			decimals: 8,
			trailing: true,
			expected: "1.00000000",
		},
		{
			name:     "all decimals significant",
			value:    "75bcd15", // 123456789
			decimals: 8,
			expected: "1.23456789",
		},
		{
			name:     "inner zeros suppressed",
			value:    "7270e00", // 120000000
			decimals: 8,
			expected: "1.2",
		},
		{
			name:     "integer keeps trailing zeros",
			value:    "64", // 100
			expected: "100",
		},
		{
			name:     "positive exponent pads",
			value:    "7",
			exponent: 3,
			expected: "7000",
		},
		{
			name:     "negative exponent drops digits",
			value:    "1e240", // 123456
			exponent: -2,
			expected: "1234",
		},
		{
			name:     "negative exponent with decimals",
			value:    "1e240", // 123456
			decimals: 2,
			exponent: -2,
			expected: "12.34",
		},
		{
			name:     "zero ignores exponent",
			value:    "0",
			exponent: 5,
			expected: "0",
		},
		{
			name:     "prefix and suffix",
			value:    "1",
			prefix:   "$",
			suffix:   " BTC",
			expected: "$1 BTC",
		},
		{
			name:     "everything at once",
			value:    "4d2", // 1234
			prefix:   "$",
			suffix:   " USD",
			decimals: 2,
			expected: "$12.34 USD",
		},
		{
			name:     "largest value",
			value:    "ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff",
			expected: "115792089237316195423570985008687907853269984665640564039457584007913129639935",
		},
	}

	for _, test := range tests {
		var buf [128]byte
		f := setHex(test.value)
		n := f.Format(buf[:], test.prefix, test.suffix, test.decimals,
			test.exponent, test.trailing)
		if n != len(test.expected) {
			t.Errorf("%s: wrong length: got %d want %d (%q)", test.name,
				n, len(test.expected), buf[:n])
			continue
		}
		if got := string(buf[:n]); got != test.expected {
			t.Errorf("%s: wrong result: got %q want %q", test.name,
				got, test.expected)
		}
	}
}

// TestFormatBufferSizing ensures the exact-fit buffer succeeds and a
// buffer one byte short reports failure by returning zero.
func TestFormatBufferSizing(t *testing.T) {
	f := setHex("4d2") // 1234

	// "$12.34 USD" needs exactly 10 bytes.
	exact := make([]byte, 10)
	n := f.Format(exact, "$", " USD", 2, 0, false)
	if n != 10 || string(exact[:n]) != "$12.34 USD" {
		t.Fatalf("exact fit failed: got %d %q", n, exact[:n])
	}

	short := make([]byte, 9)
	if n := f.Format(short, "$", " USD", 2, 0, false); n != 0 {
		t.Fatalf("one byte short: got %d, want 0", n)
	}

	// Degenerate buffers smaller than the prefix and suffix alone.
	if n := f.Format(make([]byte, 3), "$", " USD", 2, 0, false); n != 0 {
		t.Fatalf("degenerate buffer: got %d, want 0", n)
	}
	if n := f.Format(nil, "", "", 0, 0, false); n != 0 {
		t.Fatalf("nil buffer: got %d, want 0", n)
	}
}
