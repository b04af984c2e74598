// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/btcsuite/bignum"
	"github.com/btcsuite/bignum/base58"
	"github.com/btcsuite/btclog"
	flags "github.com/jessevdk/go-flags"
)

// formatBufSize comfortably holds the 78 digits of a full 256-bit value
// plus a decimal point and reasonable affixes.
const formatBufSize = 256

var log btclog.Logger

// config defines the configuration options for bnfmt.
type config struct {
	Decimals uint   `short:"d" long:"decimals" description:"Number of decimal places to shift the value by"`
	Exponent int    `short:"e" long:"exponent" description:"Power of ten multiplier applied to the value before formatting"`
	Prefix   string `short:"p" long:"prefix" description:"String prepended to the formatted value"`
	Suffix   string `short:"s" long:"suffix" description:"String appended to the formatted value"`
	Trailing bool   `short:"t" long:"trailing" description:"Keep trailing zeros in the fractional part"`
	Base58   bool   `long:"base58" description:"Print the modified base58 encoding of the value bytes instead of a decimal string"`
	Check    bool   `long:"check" description:"With --base58, wrap the value bytes in a Base58Check envelope"`
	Version  byte   `long:"version" description:"Version byte for the Base58Check envelope" default:"0"`
	Args     struct {
		Value string `positional-arg-name:"hex-value"`
	} `positional-args:"true" required:"true"`
}

// parseValue decodes the big-endian hex argument, tolerating an odd number
// of digits by left padding with a zero.
func parseValue(s string) ([]byte, error) {
	s = strings.TrimPrefix(strings.ToLower(s), "0x")
	if len(s)%2 != 0 {
		s = "0" + s
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid hex value %q: %v", s, err)
	}
	if len(b) > 32 {
		return nil, fmt.Errorf("value exceeds 32 bytes (got %d)", len(b))
	}
	return b, nil
}

// realMain is the real main function for the utility.  It is necessary to
// work around the fact that deferred functions do not run when os.Exit()
// is called.
func realMain() error {
	// Setup logging.
	backendLogger := btclog.NewBackend(os.Stderr)
	defer os.Stderr.Sync()
	log = backendLogger.Logger("MAIN")

	// Setup the parser and parse the command line.
	cfg := config{}
	appName := filepath.Base(os.Args[0])
	appName = strings.TrimSuffix(appName, filepath.Ext(appName))
	parserFlags := flags.Options(flags.HelpFlag | flags.PassDoubleDash)
	parser := flags.NewNamedParser(appName, parserFlags)
	parser.AddGroup("Options", "", &cfg)
	if _, err := parser.Parse(); err != nil {
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
			parser.WriteHelp(os.Stderr)
		} else {
			log.Error(err)
		}

		return err
	}

	valueBytes, err := parseValue(cfg.Args.Value)
	if err != nil {
		log.Error(err)
		return err
	}

	if cfg.Base58 {
		var encoded string
		if cfg.Check {
			if len(valueBytes) > 27 {
				err := fmt.Errorf("base58check payload exceeds "+
					"27 bytes (got %d)", len(valueBytes))
				log.Error(err)
				return err
			}
			encoded = base58.CheckEncode(valueBytes, cfg.Version)
		} else {
			encoded = base58.Encode(valueBytes)
		}
		fmt.Println(encoded)
		return nil
	}

	var val bignum.Val
	val.SetByteSlice(valueBytes)

	var buf [formatBufSize]byte
	n := val.Format(buf[:], cfg.Prefix, cfg.Suffix, cfg.Decimals,
		cfg.Exponent, cfg.Trailing)
	if n == 0 {
		err := fmt.Errorf("formatted value does not fit in %d bytes",
			formatBufSize)
		log.Error(err)
		return err
	}
	fmt.Println(string(buf[:n]))
	return nil
}

func main() {
	// Work around defer not working after os.Exit()
	if err := realMain(); err != nil {
		os.Exit(1)
	}
}
