// Copyright 2014 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

// Package common defines the fixed-size identifiers shared across the
// mempool: transaction hashes and account addresses.
package common

import (
	"database/sql/driver"
	"encoding/hex"
	"errors"
	"fmt"
)

// Lengths of hashes and addresses in bytes.
const (
	HashLength    = 32
	AddressLength = 20
)

// Hash is the identifier of a transaction: the output of its content digest.
type Hash [HashLength]byte

// BytesToHash sets the last HashLength bytes of b to a Hash value, truncating
// from the left if b is longer.
func BytesToHash(b []byte) Hash {
	var h Hash
	h.SetBytes(b)
	return h
}

// HexToHash sets the last HashLength bytes of the decoded hex string to a Hash.
func HexToHash(s string) Hash { return BytesToHash(FromHex(s)) }

// Bytes returns the raw bytes of the hash.
func (h Hash) Bytes() []byte { return h[:] }

// Hex returns a 0x-prefixed hex string representation.
func (h Hash) Hex() string { return "0x" + hex.EncodeToString(h[:]) }

// String implements fmt.Stringer.
func (h Hash) String() string { return h.Hex() }

// TerminalString implements log.TerminalStringer, shortening the hash to a
// head/tail fragment suitable for terminal logging.
func (h Hash) TerminalString() string {
	return fmt.Sprintf("%x…%x", h[:3], h[29:])
}

// IsZero reports whether h is the zero hash.
func (h Hash) IsZero() bool { return h == (Hash{}) }

// SetBytes sets the hash to the value of b, truncating from the left if b is
// larger than the hash length.
func (h *Hash) SetBytes(b []byte) {
	if len(b) > len(h) {
		b = b[len(b)-HashLength:]
	}
	copy(h[HashLength-len(b):], b)
}

func (h Hash) MarshalText() ([]byte, error) {
	return []byte(h.Hex()), nil
}

func (h *Hash) UnmarshalText(input []byte) error {
	return unmarshalFixedText("Hash", input, h[:])
}

// Value implements database/sql/driver.Valuer.
func (h Hash) Value() (driver.Value, error) { return h[:], nil }

// Scan implements database/sql.Scanner.
func (h *Hash) Scan(src interface{}) error {
	srcB, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("common: cannot scan %T into Hash", src)
	}
	if len(srcB) != HashLength {
		return fmt.Errorf("common: expected %d bytes, got %d", HashLength, len(srcB))
	}
	copy(h[:], srcB)
	return nil
}

// Address is the account identifier of a transaction sender.
type Address [AddressLength]byte

// BytesToAddress sets the last AddressLength bytes of b to an Address,
// truncating from the left if b is longer.
func BytesToAddress(b []byte) Address {
	var a Address
	a.SetBytes(b)
	return a
}

// HexToAddress sets the last AddressLength bytes of the decoded hex string.
func HexToAddress(s string) Address { return BytesToAddress(FromHex(s)) }

func (a Address) Bytes() []byte { return a[:] }

func (a Address) Hex() string { return "0x" + hex.EncodeToString(a[:]) }

func (a Address) String() string { return a.Hex() }

func (a Address) IsZero() bool { return a == (Address{}) }

func (a *Address) SetBytes(b []byte) {
	if len(b) > len(a) {
		b = b[len(b)-AddressLength:]
	}
	copy(a[AddressLength-len(b):], b)
}

func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.Hex()), nil
}

func (a *Address) UnmarshalText(input []byte) error {
	return unmarshalFixedText("Address", input, a[:])
}

func (a Address) Value() (driver.Value, error) { return a[:], nil }

func (a *Address) Scan(src interface{}) error {
	srcB, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("common: cannot scan %T into Address", src)
	}
	if len(srcB) != AddressLength {
		return fmt.Errorf("common: expected %d bytes, got %d", AddressLength, len(srcB))
	}
	copy(a[:], srcB)
	return nil
}

// UnprefixedAddress allows marshaling an Address without 0x prefix.
type UnprefixedAddress Address

// UnmarshalText decodes the address from hex. The 0x prefix is optional.
func (a *UnprefixedAddress) UnmarshalText(input []byte) error {
	return unmarshalFixedUnprefixedText("UnprefixedAddress", input, a[:])
}

func (a UnprefixedAddress) MarshalText() ([]byte, error) {
	return []byte(hex.EncodeToString(a[:])), nil
}

// FromHex decodes s as a hex string, accepting an optional 0x prefix. It
// returns nil on malformed input rather than an error; callers that need to
// distinguish invalid input should use hex.DecodeString directly.
func FromHex(s string) []byte {
	if has0xPrefix(s) {
		s = s[2:]
	}
	if len(s)%2 == 1 {
		s = "0" + s
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil
	}
	return b
}

func has0xPrefix(s string) bool {
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}

var errHashInvalidLength = errors.New("common: hex string has wrong length for hash")

func unmarshalFixedText(typename string, input, out []byte) error {
	raw, err := hexBytes(input)
	if err != nil {
		return fmt.Errorf("%s %w", typename, err)
	}
	if len(raw) != len(out) {
		return errHashInvalidLength
	}
	copy(out, raw)
	return nil
}

func unmarshalFixedUnprefixedText(typename string, input, out []byte) error {
	raw := input
	if has0xPrefix(string(input)) {
		raw = input[2:]
	}
	dst := make([]byte, hex.DecodedLen(len(raw)))
	if _, err := hex.Decode(dst, raw); err != nil {
		return fmt.Errorf("%s: %w", typename, err)
	}
	if len(dst) != len(out) {
		return errHashInvalidLength
	}
	copy(out, dst)
	return nil
}

func hexBytes(input []byte) ([]byte, error) {
	s := string(input)
	if !has0xPrefix(s) {
		return nil, errors.New("missing 0x prefix")
	}
	return hex.DecodeString(s[2:])
}
