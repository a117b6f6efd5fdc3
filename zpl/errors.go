package zpl

import "errors"

var (
	// ErrInvalidInput is returned when the pixel buffer or options are missing
	// or out of range.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidEncoding is returned for malformed hex text or a payload that
	// does not decode with the ZPL compression alphabet.
	ErrInvalidEncoding = errors.New("invalid encoding")

	// ErrUnsupportedEncodingKind is returned for an encoding kind outside the
	// four defined variants.
	ErrUnsupportedEncodingKind = errors.New("unsupported encoding kind")

	// ErrChecksum is returned when a B64/Z64 field's CRC does not match its data.
	ErrChecksum = errors.New("checksum mismatch")
)
