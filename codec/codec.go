// Package codec converts hexadecimal header text into the fixed width and
// variable width binary values that are hashed, and back.
//
// Every conversion is pure and reports malformed input as an error; nothing
// is silently truncated.
package codec

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"
)

const (
	HashLength    = common.HashLength
	AddressLength = common.AddressLength
	BloomLength   = 256
	NonceLength   = 8
	// QuantityMaxLength bounds quantities to 256 bits.
	QuantityMaxLength = 32
)

var (
	ErrInvalidHex = errors.New("invalid hex")
	ErrTooLong    = errors.New("value exceeds field width")
)

func trimPrefix(s string) string {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:]
	}
	return s
}

// decodeHex accepts an optional 0x prefix and odd digit counts, which upstream
// JSON-RPC producers emit for quantities.
func decodeHex(s string) ([]byte, error) {
	s = trimPrefix(s)
	if len(s)%2 == 1 {
		s = "0" + s
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidHex, err)
	}
	return b, nil
}

// FixedBytes decodes s into exactly n bytes, left-padding shorter values with
// zeros. Values longer than n bytes are rejected.
func FixedBytes(s string, n int) ([]byte, error) {
	b, err := decodeHex(s)
	if err != nil {
		return nil, err
	}
	if len(b) > n {
		return nil, fmt.Errorf("%w: %d bytes, max %d", ErrTooLong, len(b), n)
	}
	out := make([]byte, n)
	copy(out[n-len(b):], b)
	return out, nil
}

// Hash decodes a 32 byte hash.
func Hash(s string) (common.Hash, error) {
	b, err := FixedBytes(s, HashLength)
	if err != nil {
		return common.Hash{}, err
	}
	return common.BytesToHash(b), nil
}

// Address decodes a 20 byte account address.
func Address(s string) (common.Address, error) {
	b, err := FixedBytes(s, AddressLength)
	if err != nil {
		return common.Address{}, err
	}
	return common.BytesToAddress(b), nil
}

// Quantity decodes an unsigned integer of at most 256 bits. Empty text is zero.
func Quantity(s string) (*uint256.Int, error) {
	b, err := decodeHex(s)
	if err != nil {
		return nil, err
	}
	if len(b) > QuantityMaxLength {
		// leading zero bytes do not count against the width
		for len(b) > QuantityMaxLength && b[0] == 0 {
			b = b[1:]
		}
		if len(b) > QuantityMaxLength {
			return nil, fmt.Errorf("%w: %d bytes, max %d", ErrTooLong, len(b), QuantityMaxLength)
		}
	}
	return new(uint256.Int).SetBytes(b), nil
}

// QuantityBytes decodes s and returns its minimal big-endian form. Zero is the
// empty slice, matching the RLP integer encoding.
func QuantityBytes(s string) ([]byte, error) {
	q, err := Quantity(s)
	if err != nil {
		return nil, err
	}
	if q.IsZero() {
		return []byte{}, nil
	}
	return q.Bytes(), nil
}

// Bytes decodes a variable length byte string. Empty text is an empty slice.
func Bytes(s string) ([]byte, error) {
	return decodeHex(s)
}

// EncodeFixed renders a fixed width value as 0x-prefixed hex, keeping every byte.
func EncodeFixed(b []byte) string {
	return hexutil.Encode(b)
}

// EncodeBytes renders a byte string as 0x-prefixed hex; empty input gives "0x".
func EncodeBytes(b []byte) string {
	return hexutil.Encode(b)
}

// EncodeQuantity renders big-endian integer bytes as a 0x-prefixed quantity
// without leading zeros. Zero is "0x0".
func EncodeQuantity(b []byte) string {
	return new(uint256.Int).SetBytes(b).Hex()
}

// EncodeUint64 renders v as a quantity.
func EncodeUint64(v uint64) string {
	return hexutil.EncodeUint64(v)
}
