package util

import (
	"fmt"
	"strconv"
	"strings"
)

// Number formats accepted by FormatBinary.
const (
	Dec = "dec"
	Hex = "hex"
)

// FormatBinary converts num from numformat (Dec or Hex) to its binary
// representation, left-padded with zeros to at least bits characters.
// Values wider than bits are kept as-is, the caller owns that precondition.
// Any other numformat is a programming mistake and reported as an error.
func FormatBinary(num string, numformat string, bits int) (string, error) {
	var value int64
	var err error
	switch numformat {
	case Dec:
		value, err = strconv.ParseInt(num, 10, 64)
	case Hex:
		value, err = strconv.ParseInt(num, 16, 64)
	default:
		return "", fmt.Errorf("unsupported number format: %s, only %s and %s are supported", numformat, Dec, Hex)
	}
	if err != nil {
		return "", fmt.Errorf("cannot parse %s as a %s number: %v", num, numformat, err)
	}
	return IntToBinary(int(value), bits), nil
}

// IntToBinary renders value as a zero-padded binary string of bits characters.
// Negative values are encoded as two's complement within bits.
func IntToBinary(value int, bits int) string {
	if value < 0 {
		masked := uint64(value) & (1<<uint(bits) - 1)
		return padBinary(strconv.FormatUint(masked, 2), bits)
	}
	return padBinary(strconv.FormatInt(int64(value), 2), bits)
}

func padBinary(code string, bits int) string {
	if len(code) >= bits {
		return code
	}
	return strings.Repeat("0", bits-len(code)) + code
}
