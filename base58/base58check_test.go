// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package base58_test

import (
	"bytes"
	"testing"

	"github.com/btcsuite/bignum/base58"
)

var checkEncodingStringTests = []struct {
	version byte
	in      string
	out     string
}{
	{20, "", "3MNQE1X"},
	{20, " ", "B2Kr6dBE"},
	{20, "-", "B3jv1Aft"},
	{20, "0", "B482yuaX"},
	{20, "1", "B4CmeGAC"},
	{20, "-1", "mM7eUf6kB"},
	{20, "11", "mP7BMTDVH"},
	{20, "abc", "4QiVtDjUdeq"},
	{20, "1234598760", "ZmNb8uQn5zvnUohNCEPP"},
	{20, "abcdefghijklmnopqrstuvwxyz", "K2RYDcKfupxwXdWhSAxQPCeiULntKm63UXyx5MvEH2"},
}

func TestBase58Check(t *testing.T) {
	for x, test := range checkEncodingStringTests {
		// test encoding
		if res := base58.CheckEncode([]byte(test.in), test.version); res != test.out {
			t.Errorf("CheckEncode test #%d failed: got %s, want: %s", x, res, test.out)
		}

		// test decoding
		res, version, err := base58.CheckDecode(test.out)
		switch {
		case err != nil:
			t.Errorf("CheckDecode test #%d failed with err: %v", x, err)

		case version != test.version:
			t.Errorf("CheckDecode test #%d failed: got version: %d want: %d", x, version, test.version)

		case string(res) != test.in:
			t.Errorf("CheckDecode test #%d failed: got: %s want: %s", x, res, test.in)
		}
	}

	// test the two decoding failure cases
	// case 1: checksum error
	_, _, err := base58.CheckDecode("3MNQE1Y")
	if err != base58.ErrChecksum {
		t.Error("Checkdecode test failed, expected ErrChecksum")
	}
	// case 2: invalid formats (string lengths below 5 mean the version byte
	// and/or the checksum bytes are missing).
	testString := ""
	for len := 0; len < 4; len++ {
		testString += "x"
		_, _, err = base58.CheckDecode(testString)
		if err != base58.ErrInvalidFormat {
			t.Error("Checkdecode test failed, expected ErrInvalidFormat")
		}
	}
}

// TestBase58CheckAddress verifies the canonical all-zeros pay-to-pubkey-hash
// address against the well known vector.
func TestBase58CheckAddress(t *testing.T) {
	hash := make([]byte, 20)
	const want = "1111111111111111111114oLvT2"

	if res := base58.CheckEncode(hash, 0); res != want {
		t.Fatalf("CheckEncode zero hash: got %s, want %s", res, want)
	}

	res, version, err := base58.CheckDecode(want)
	if err != nil {
		t.Fatalf("CheckDecode zero hash failed: %v", err)
	}
	if version != 0 {
		t.Fatalf("CheckDecode zero hash: got version %d, want 0", version)
	}
	if !bytes.Equal(res, hash) {
		t.Fatalf("CheckDecode zero hash: got payload %x, want %x", res, hash)
	}
}
