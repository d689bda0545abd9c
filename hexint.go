package calldata

import (
	"errors"

	"github.com/holiman/uint256"
)

var (
	errUint64Range  = errors.New("value exceeds 64 bits")
	errUint128Range = errors.New("value exceeds 128 bits")
)

// parseHexUint parses a hex digit string of up to 256 bits.
// Leading zeros are accepted; an empty string is not a number.
func parseHexUint(digits string) (*uint256.Int, error) {
	if digits == "" {
		return nil, &ParseError{Input: digits}
	}
	trimmed := trimZeros(digits)
	if trimmed == "" {
		return new(uint256.Int), nil
	}
	v, err := uint256.FromHex("0x" + trimmed)
	if err != nil {
		return nil, &ParseError{Input: digits, Err: err}
	}
	return v, nil
}

// parseHexUint64 parses a hex digit string that must fit in 64 bits.
func parseHexUint64(digits string) (uint64, error) {
	v, err := parseHexUint(digits)
	if err != nil {
		return 0, err
	}
	if !v.IsUint64() {
		return 0, &ParseError{Input: digits, Err: errUint64Range}
	}
	return v.Uint64(), nil
}

// parseHexUint128 parses a hex digit string that must fit in 128 bits.
func parseHexUint128(digits string) (*uint256.Int, error) {
	v, err := parseHexUint(digits)
	if err != nil {
		return nil, err
	}
	if v.BitLen() > 128 {
		return nil, &ParseError{Input: digits, Err: errUint128Range}
	}
	return v, nil
}
