package zpl

import (
	"fmt"
	"strings"

	"github.com/AlexStarov/zpl-GoLang-lib/util"
)

// DecompressHex expands a ^GF ASCII payload, compressed or plain, back into
// newline terminated hex rows of bytesPerRow*2 characters. It is the inverse
// of CompressHex and reads Hexadecimal payloads unchanged.
func DecompressHex(payload string, bytesPerRow, rows int) (string, error) {
	if bytesPerRow < 0 || rows < 0 {
		return "", fmt.Errorf("%w: %d bytes per row, %d rows", ErrInvalidInput, bytesPerRow, rows)
	}

	rowLen := bytesPerRow * 2
	if rowLen == 0 {
		if strings.TrimSpace(payload) != "" {
			return "", fmt.Errorf("%w: data for a zero width image", ErrInvalidEncoding)
		}
		return strings.Repeat("\n", rows), nil
	}

	out := make([]byte, 0, rows*(rowLen+1))
	row := make([]byte, 0, rowLen)
	prev := make([]byte, 0, rowLen)
	hasPrev := false
	count, done := 0, 0

	flush := func() {
		out = append(out, row...)
		out = append(out, '\n')
		prev = append(prev[:0], row...)
		hasPrev = true
		row = row[:0]
		done++
	}

	for i := 0; i < len(payload); i++ {
		c := payload[i]
		switch {
		case c == '\n' || c == '\r':
		case c >= 'G' && c <= 'Y':
			count += int(c-'G') + 1
		case c >= 'g' && c <= 'z':
			count += (int(c-'g') + 1) * 20
		case c == ',' || c == '!':
			if count != 0 {
				return "", fmt.Errorf("%w: count before %q at offset %d", ErrInvalidEncoding, c, i)
			}
			fill := byte('0')
			if c == '!' {
				fill = 'F'
			}
			for len(row) < rowLen {
				row = append(row, fill)
			}
			flush()
		case c == ':':
			if count != 0 || len(row) != 0 || !hasPrev {
				return "", fmt.Errorf("%w: unexpected repeat at offset %d", ErrInvalidEncoding, i)
			}
			row = append(row, prev...)
			flush()
		case util.IsHexDigit(c):
			n := count
			if n == 0 {
				n = 1
			}
			count = 0
			if len(row)+n > rowLen {
				return "", fmt.Errorf("%w: run of %d overflows row at offset %d", ErrInvalidEncoding, n, i)
			}
			for ; n > 0; n-- {
				row = append(row, c)
			}
			if len(row) == rowLen {
				flush()
			}
		default:
			return "", fmt.Errorf("%w: unexpected %q at offset %d", ErrInvalidEncoding, c, i)
		}
	}

	if count != 0 || len(row) != 0 {
		return "", fmt.Errorf("%w: truncated payload", ErrInvalidEncoding)
	}
	if done != rows {
		return "", fmt.Errorf("%w: decoded %d rows, want %d", ErrInvalidEncoding, done, rows)
	}
	return string(out), nil
}
