package zpl

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/klauspost/compress/zlib"

	"github.com/AlexStarov/zpl-GoLang-lib/util"
)

const (
	tagB64 = "B64"
	tagZ64 = "Z64"
)

var zlibWriterPool = sync.Pool{
	New: func() any {
		w, _ := zlib.NewWriterLevel(nil, zlib.BestCompression)
		return w
	},
}

func deflate(data []byte) ([]byte, error) {
	var buf bytes.Buffer

	w := zlibWriterPool.Get().(*zlib.Writer)
	defer zlibWriterPool.Put(w)
	w.Reset(&buf)

	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func inflate(data []byte) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}

// FrameBinary turns the packer's hex rows into a :B64: field, or a :Z64:
// field when compress is set, followed by the CRC of the Base64 text.
func FrameBinary(hexText string, compress bool) (string, error) {
	data, err := util.HexToBytes(strings.ReplaceAll(hexText, "\n", ""))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}

	tag := tagB64
	if compress {
		tag = tagZ64
		if data, err = deflate(data); err != nil {
			return "", fmt.Errorf("deflate bitmap: %w", err)
		}
	}

	encoded := base64.StdEncoding.EncodeToString(data)
	return fmt.Sprintf(":%s:%s:%04X", tag, encoded, Checksum([]byte(encoded))), nil
}

// IsFramed reports whether payload is a :B64: or :Z64: field.
func IsFramed(payload string) bool {
	return strings.HasPrefix(payload, ":"+tagB64+":") || strings.HasPrefix(payload, ":"+tagZ64+":")
}

// ParseFrame checks the CRC of a :B64: / :Z64: field and returns the raw
// bitmap bytes, inflated for Z64.
func ParseFrame(payload string) ([]byte, error) {
	if !IsFramed(payload) {
		return nil, fmt.Errorf("%w: not a B64/Z64 field", ErrInvalidEncoding)
	}
	tag := payload[1:4]

	body := payload[5:]
	sep := strings.LastIndexByte(body, ':')
	if sep < 0 {
		return nil, fmt.Errorf("%w: missing checksum", ErrInvalidEncoding)
	}
	encoded, crcText := body[:sep], body[sep+1:]

	want, err := strconv.ParseUint(crcText, 16, 16)
	if err != nil {
		return nil, fmt.Errorf("%w: checksum %q", ErrInvalidEncoding, crcText)
	}
	if got := Checksum([]byte(encoded)); got != uint16(want) {
		return nil, fmt.Errorf("%w: got %04X, field says %04X", ErrChecksum, got, want)
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	if tag == tagZ64 {
		if data, err = inflate(data); err != nil {
			return nil, fmt.Errorf("%w: inflate: %v", ErrInvalidEncoding, err)
		}
	}
	return data, nil
}
