// Package zpl encodes packed black and white bitmaps as ZPL ^GF graphic
// fields: plain or run-length compressed hex, or Base64 (B64/Z64) frames.
package zpl

import (
	"fmt"
	"image"

	imgInternal "github.com/AlexStarov/zpl-GoLang-lib/image"
)

// Encode thresholds pixels, packs them and returns the ^GFA command in the
// encoding opts asks for, wrapped in ^XA ... ^FS unless GraphicFieldOnly is set.
func Encode(pixels imgInternal.PixelBuffer, opts *Options) (string, error) {
	if pixels == nil {
		return "", fmt.Errorf("%w: nil pixel buffer", ErrInvalidInput)
	}
	if opts == nil {
		return "", fmt.Errorf("%w: nil options", ErrInvalidInput)
	}
	if err := opts.Validate(); err != nil {
		return "", err
	}

	conv := &imgInternal.Converter{Threshold: opts.Threshold}
	raster, err := conv.ToRaster(pixels)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	payload, err := encodePayload(raster, opts.EncodingKind)
	if err != nil {
		return "", err
	}

	field := GraphicField(raster.TotalBytes(), raster.BytesPerRow, payload)
	if opts.GraphicFieldOnly {
		return field, nil
	}
	return Wrap(field), nil
}

func encodePayload(raster *imgInternal.Raster, kind EncodingKind) (string, error) {
	hexText := raster.Hex()

	switch kind {
	case Hexadecimal:
		return hexText, nil
	case HexadecimalCompressed:
		return CompressHex(hexText, raster.Width/8), nil
	case Base64, Base64Compressed:
		return FrameBinary(hexText, kind == Base64Compressed)
	default:
		return "", fmt.Errorf("%w: %d", ErrUnsupportedEncodingKind, int(kind))
	}
}

// EncodeImage is Encode for an image.Image, applying the monochrome pre-pass
// first when opts asks for it.
func EncodeImage(img image.Image, opts *Options) (string, error) {
	if img == nil {
		return "", fmt.Errorf("%w: nil image", ErrInvalidInput)
	}
	if opts != nil && opts.MonochromePrepass {
		img = imgInternal.Monochrome(img)
	}
	return Encode(imgInternal.FromImage(img), opts)
}
