// Package convert turns files, streams and Base64 strings into ZPL. It picks
// a decoder from the extension or the leading magic bytes and hands the
// decoded picture to the zpl encoder.
package convert

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"strings"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	logInternal "github.com/AlexStarov/zpl-GoLang-lib/log"
	"github.com/AlexStarov/zpl-GoLang-lib/zpl"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported input format")
	ErrNoPDFRenderer     = errors.New("no PDF renderer configured")
)

// PageRenderer rasterises one page of a PDF document at the given resolution.
type PageRenderer interface {
	RenderPage(r io.Reader, page int, dpi int64) (image.Image, error)
}

// Converter holds the collaborators the facade cannot provide itself.
// The zero value converts raster formats and rejects PDFs.
type Converter struct {
	PDF PageRenderer
}

var std = &Converter{}

// ConvertFile converts the file at path with the package converter.
func ConvertFile(path string, opts *zpl.Options) (string, error) {
	return std.ConvertFile(path, opts)
}

// ConvertBytes converts an in-memory file with the package converter.
func ConvertBytes(data []byte, opts *zpl.Options) (string, error) {
	return std.ConvertBytes(data, opts)
}

// ConvertBase64 converts a Base64 encoded file with the package converter.
func ConvertBase64(b64 string, opts *zpl.Options) (string, error) {
	return std.ConvertBase64(b64, opts)
}

// ConvertFile opens path and converts it according to its extension.
func (c *Converter) ConvertFile(path string, opts *zpl.Options) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	format := FormatFromExtension(path)
	if format == FormatUnknown {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	out, err := c.ConvertReader(f, format, opts)
	if err != nil {
		return "", fmt.Errorf("convert %s: %w", path, err)
	}
	return out, nil
}

// ConvertBase64 decodes b64 and converts the result, sniffing its format.
func (c *Converter) ConvertBase64(b64 string, opts *zpl.Options) (string, error) {
	b64 = strings.TrimSpace(b64)
	if b64 == "" {
		return "", fmt.Errorf("%w: empty base64 input", zpl.ErrInvalidInput)
	}
	data, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return "", fmt.Errorf("%w: %v", zpl.ErrInvalidInput, err)
	}
	return c.ConvertBytes(data, opts)
}

// ConvertBytes converts data, sniffing its format from the magic bytes.
func (c *Converter) ConvertBytes(data []byte, opts *zpl.Options) (string, error) {
	format := DetectFormat(data)
	if format == FormatUnknown {
		return "", ErrUnsupportedFormat
	}
	return c.ConvertReader(bytes.NewReader(data), format, opts)
}

// ConvertReader converts r, which holds a file in the given format.
// nil opts means zpl.DefaultOptions().
func (c *Converter) ConvertReader(r io.Reader, format Format, opts *zpl.Options) (string, error) {
	if opts == nil {
		def := zpl.DefaultOptions()
		opts = &def
	}
	if opts.Dithering != zpl.None {
		logInternal.LogMessage(logInternal.WARN,
			fmt.Sprintf("dithering %s is not implemented, using plain threshold", opts.Dithering))
	}

	var (
		img image.Image
		err error
	)
	switch format {
	case FormatPDF:
		img, err = c.renderPDF(r, opts.TargetDPI)
	case FormatPNG, FormatJPEG, FormatGIF, FormatBMP, FormatTIFF:
		img, err = DecodeImage(r)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, string(format))
	}
	if err != nil {
		return "", err
	}

	b := img.Bounds()
	logInternal.GetLogger().
		WithField("format", string(format)).
		WithField("width", b.Dx()).
		WithField("height", b.Dy()).
		Debug("Loaded image")

	return zpl.EncodeImage(img, opts)
}

func (c *Converter) renderPDF(r io.Reader, dpi int64) (image.Image, error) {
	if c.PDF == nil {
		return nil, ErrNoPDFRenderer
	}
	img, err := c.PDF.RenderPage(r, 0, dpi)
	if err != nil {
		return nil, fmt.Errorf("render pdf page: %w", err)
	}
	if img == nil {
		return nil, fmt.Errorf("%w: renderer returned no image", zpl.ErrInvalidInput)
	}
	return img, nil
}

// DecodeImage decodes any registered raster format and applies the EXIF
// orientation tag, if present.
func DecodeImage(r io.Reader) (image.Image, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}
