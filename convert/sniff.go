package convert

import (
	"bytes"
	"path/filepath"
	"strings"
)

// Format is an input container the facade knows how to turn into pixels.
type Format string

const (
	FormatUnknown Format = ""
	FormatPDF     Format = "pdf"
	FormatPNG     Format = "png"
	FormatJPEG    Format = "jpeg"
	FormatGIF     Format = "gif"
	FormatBMP     Format = "bmp"
	FormatTIFF    Format = "tiff"
)

var extensions = map[string]Format{
	"pdf":  FormatPDF,
	"png":  FormatPNG,
	"jpg":  FormatJPEG,
	"jpeg": FormatJPEG,
	"gif":  FormatGIF,
	"bmp":  FormatBMP,
	"tif":  FormatTIFF,
	"tiff": FormatTIFF,
}

var signatures = []struct {
	magic  []byte
	format Format
}{
	{[]byte("%PDF"), FormatPDF},
	{[]byte{0xFF, 0xD8, 0xFF}, FormatJPEG},
	{[]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1A, '\n'}, FormatPNG},
	{[]byte("GIF8"), FormatGIF},
	{[]byte("BM"), FormatBMP},
	{[]byte{'I', 'I', '*', 0}, FormatTIFF},
	{[]byte{'M', 'M', 0, '*'}, FormatTIFF},
}

// FormatFromExtension maps the file extension of path, in any case, to a Format.
func FormatFromExtension(path string) Format {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	return extensions[ext]
}

// DetectFormat looks at the leading magic bytes of data.
func DetectFormat(data []byte) Format {
	for _, s := range signatures {
		if bytes.HasPrefix(data, s.magic) {
			return s.format
		}
	}
	return FormatUnknown
}
