package zpl

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/AlexStarov/zpl-GoLang-lib/util"
)

const (
	labelStart  = "^XA"
	fieldEnd    = "^FS"
	graphicATag = "^GFA,"
)

// GraphicField formats an ASCII ^GF command. Binary and graphic byte counts
// are both totalBytes, as they are for every payload this package emits.
func GraphicField(totalBytes, bytesPerRow int, payload string) string {
	return fmt.Sprintf("^GFA,%d,%d,%d,%s", totalBytes, totalBytes, bytesPerRow, payload)
}

// Wrap opens a label around field and closes the field. The label itself is
// left open (no ^XZ) so callers can append further commands.
func Wrap(field string) string {
	return labelStart + field + fieldEnd
}

// Field is a parsed ^GFA command.
type Field struct {
	BinaryBytes  int
	GraphicBytes int
	BytesPerRow  int
	Data         string
}

// ParseGraphicField finds the first ^GFA command in zpl and splits it into
// its parameters. The data runs up to the next ^ or the end of input.
func ParseGraphicField(zpl string) (*Field, error) {
	start := strings.Index(zpl, graphicATag)
	if start < 0 {
		return nil, fmt.Errorf("%w: no ^GFA command", ErrInvalidEncoding)
	}
	rest := zpl[start+len(graphicATag):]
	if end := strings.IndexByte(rest, '^'); end >= 0 {
		rest = rest[:end]
	}

	parts := strings.SplitN(rest, ",", 4)
	if len(parts) != 4 {
		return nil, fmt.Errorf("%w: ^GFA needs 4 parameters, got %d", ErrInvalidEncoding, len(parts))
	}

	var nums [3]int
	for i := range nums {
		n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%w: ^GFA parameter %d is %q", ErrInvalidEncoding, i+2, parts[i])
		}
		nums[i] = n
	}

	return &Field{
		BinaryBytes:  nums[0],
		GraphicBytes: nums[1],
		BytesPerRow:  nums[2],
		Data:         parts[3],
	}, nil
}

// Rows is the number of bitmap rows the field describes.
func (f *Field) Rows() int {
	if f.BytesPerRow == 0 {
		return 0
	}
	return f.GraphicBytes / f.BytesPerRow
}

// Bitmap decodes the field data, whatever its encoding, into packed bytes.
func (f *Field) Bitmap() ([]byte, error) {
	if IsFramed(f.Data) {
		data, err := ParseFrame(f.Data)
		if err != nil {
			return nil, err
		}
		if len(data) != f.GraphicBytes {
			return nil, fmt.Errorf("%w: %d bytes decoded, field says %d", ErrInvalidEncoding, len(data), f.GraphicBytes)
		}
		return data, nil
	}

	hexText, err := DecompressHex(f.Data, f.BytesPerRow, f.Rows())
	if err != nil {
		return nil, err
	}
	data, err := util.HexToBytes(strings.ReplaceAll(hexText, "\n", ""))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	return data, nil
}
