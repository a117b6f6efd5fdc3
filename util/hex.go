package util

import (
	"errors"
	"fmt"
)

const upperHex = "0123456789ABCDEF"

// ErrInvalidHex is returned by HexToBytes for odd-length input or a pair that is
// not two uppercase hex digits.
var ErrInvalidHex = errors.New("invalid hexadecimal string")

// hexValues maps an uppercase hex digit to its value, 0xFF for anything else.
var hexValues = func() (t [256]byte) {
	for i := range t {
		t[i] = 0xFF
	}
	for i := 0; i < len(upperHex); i++ {
		t[upperHex[i]] = byte(i)
	}
	return t
}()

// AppendHexByte appends b as two uppercase hex digits.
func AppendHexByte(dst []byte, b byte) []byte {
	return append(dst, upperHex[b>>4], upperHex[b&0x0F])
}

// IsHexDigit reports whether c is one of 0-9 or A-F.
func IsHexDigit(c byte) bool {
	return hexValues[c] != 0xFF
}

// HexToBytes converts uppercase hex text into bytes, two digits per byte.
// Lowercase digits are rejected: the packer only ever emits uppercase.
func HexToBytes(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("%w: odd length %d", ErrInvalidHex, len(s))
	}

	out := make([]byte, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		hi, lo := hexValues[s[i]], hexValues[s[i+1]]
		if hi == 0xFF || lo == 0xFF {
			return nil, fmt.Errorf("%w: %q at offset %d", ErrInvalidHex, s[i:i+2], i)
		}
		out[i/2] = hi<<4 | lo
	}
	return out, nil
}
