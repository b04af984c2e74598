// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package base58 provides an API for working with modified base58 and
Base58Check encodings.

# Modified Base58 Encoding

Standard base64 encoding would require padding and uses characters that
are visually ambiguous or problematic in URLs.  The modified base58
alphabet used by Bitcoin addresses omits 0, O, I and l for that reason.

Unlike general-purpose implementations, this package performs the base
conversion on the fixed-width arithmetic engine from the parent bignum
package, so encoded payloads are limited to 32 bytes.  That covers every
use the encoding was designed for (key hashes, compact identifiers) while
keeping the conversion allocation-free at the arithmetic level.

# Base58Check Encoding

The Base58Check encoding scheme is used by Bitcoin addresses.  It wraps
the payload with a leading version byte and a trailing four-byte
double-SHA256 checksum so typos are detected on decode.
*/
package base58
