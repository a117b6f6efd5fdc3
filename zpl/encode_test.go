package zpl

import (
	"errors"
	"image"
	"image/color"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	imgInternal "github.com/AlexStarov/zpl-GoLang-lib/image"
)

func whiteBuffer(w, h int) *imgInternal.RGBBuffer {
	buf := imgInternal.NewRGBBuffer(w, h)
	buf.Fill(255, 255, 255)
	return buf
}

func optionsWith(kind EncodingKind) *Options {
	opts := DefaultOptions()
	opts.EncodingKind = kind
	return &opts
}

func TestEncodeGolden(t *testing.T) {
	cases := []struct {
		name   string
		pixels imgInternal.PixelBuffer
		kind   EncodingKind
		want   string
	}{
		{"white compressed", whiteBuffer(16, 2), HexadecimalCompressed, "^XA^GFA,4,4,2,,:^FS"},
		{"black compressed", imgInternal.NewRGBBuffer(8, 1), HexadecimalCompressed, "^XA^GFA,1,1,1,!^FS"},
		{"white hex", whiteBuffer(16, 2), Hexadecimal, "^XA^GFA,4,4,2,0000\n0000\n^FS"},
		{"white b64", whiteBuffer(16, 2), Base64, "^XA^GFA,4,4,2,:B64:AAAAAA==:E685^FS"},
		{"black b64", imgInternal.NewRGBBuffer(8, 1), Base64, "^XA^GFA,1,1,1,:B64:/w==:2A0F^FS"},
		{"empty image", whiteBuffer(0, 0), HexadecimalCompressed, "^XA^GFA,0,0,0,^FS"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Encode(tc.pixels, optionsWith(tc.kind))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestEncodeNarrowImageUsesWholeByteWidth(t *testing.T) {
	// 4 black dots: one byte F0, the whole-byte width is 0
	got, err := Encode(imgInternal.NewRGBBuffer(4, 1), optionsWith(HexadecimalCompressed))
	require.NoError(t, err)
	assert.Equal(t, "^XA^GFA,1,1,1,GF,^FS", got)
}

func TestEncodeGraphicFieldOnly(t *testing.T) {
	opts := DefaultOptions()
	opts.GraphicFieldOnly = true

	got, err := Encode(imgInternal.NewRGBBuffer(8, 1), &opts)
	require.NoError(t, err)
	assert.Equal(t, "^GFA,1,1,1,!", got)
}

func TestEncodeThreshold(t *testing.T) {
	buf := imgInternal.NewRGBBuffer(8, 1)
	buf.Fill(100, 100, 100)

	opts := DefaultOptions()
	opts.EncodingKind = Hexadecimal

	opts.Threshold = 100
	got, err := Encode(buf, &opts)
	require.NoError(t, err)
	assert.Equal(t, "^XA^GFA,1,1,1,00\n^FS", got)

	opts.Threshold = 101
	got, err = Encode(buf, &opts)
	require.NoError(t, err)
	assert.Equal(t, "^XA^GFA,1,1,1,FF\n^FS", got)
}

func TestEncodeErrors(t *testing.T) {
	_, err := Encode(nil, optionsWith(Hexadecimal))
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = Encode(whiteBuffer(1, 1), nil)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = Encode(whiteBuffer(1, 1), optionsWith(EncodingKind(9)))
	assert.ErrorIs(t, err, ErrUnsupportedEncodingKind)

	opts := DefaultOptions()
	opts.Threshold = 256
	_, err = Encode(whiteBuffer(1, 1), &opts)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = EncodeImage(nil, optionsWith(Hexadecimal))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestEncodeFraming(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 40; i++ {
		w, h := rng.Intn(70), 1+rng.Intn(30)
		buf := imgInternal.NewRGBBuffer(w, h)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				v := uint8(rng.Intn(256))
				buf.Set(x, y, v, v, v)
			}
		}
		for kind := Hexadecimal; kind <= Base64Compressed; kind++ {
			got, err := Encode(buf, optionsWith(kind))
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(got, "^XA^GFA,"), got)
			assert.True(t, strings.HasSuffix(got, "^FS"), got)
		}
	}
}

// Every encoding must decode back to the same packed bytes.
func TestEncodeDecodeRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 40; i++ {
		w, h := 1+rng.Intn(90), 1+rng.Intn(20)
		buf := whiteBuffer(w, h)
		for y := 0; y < h; y++ {
			if rng.Intn(3) == 0 {
				continue
			}
			for x := rng.Intn(w); x < w; x += 1 + rng.Intn(5) {
				buf.Set(x, y, 0, 0, 0)
			}
		}
		raster, err := (&imgInternal.Converter{Threshold: 128}).ToRaster(buf)
		require.NoError(t, err)

		for kind := Hexadecimal; kind <= Base64Compressed; kind++ {
			out, err := Encode(buf, optionsWith(kind))
			require.NoError(t, err)

			field, err := ParseGraphicField(out)
			require.NoError(t, err)
			assert.Equal(t, raster.BytesPerRow, field.BytesPerRow)

			data, err := field.Bitmap()
			require.NoError(t, err, "kind %s size %dx%d", kind, w, h)
			assert.Equal(t, raster.Data, data, "kind %s size %dx%d", kind, w, h)
		}
	}
}

func TestEncodeImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 1))
	for x := 0; x < 8; x++ {
		img.Set(x, 0, color.RGBA{R: 90, G: 90, B: 90, A: 255})
	}

	opts := DefaultOptions()
	opts.Threshold = 50
	opts.MonochromePrepass = false

	got, err := EncodeImage(img, &opts)
	require.NoError(t, err)
	assert.Equal(t, "^XA^GFA,1,1,1,,^FS", got)

	// the pre-pass snaps grey 90 to black, which is below any positive threshold
	opts.MonochromePrepass = true
	got, err = EncodeImage(img, &opts)
	require.NoError(t, err)
	assert.Equal(t, "^XA^GFA,1,1,1,!^FS", got)
}

func TestEncodeImageDefaultsSnapToMonochrome(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 1))
	for x := 0; x < 8; x++ {
		img.Set(x, 0, color.NRGBA{R: 100, G: 100, B: 100, A: 255})
	}

	opts := DefaultOptions()
	opts.Threshold = 100
	got, err := EncodeImage(img, &opts)
	require.NoError(t, err)
	assert.Equal(t, "^XA^GFA,1,1,1,!^FS", got)

	// the PixelBuffer core thresholds the raw grey: 100 is not below 100
	got, err = Encode(imgInternal.FromImage(img), &opts)
	require.NoError(t, err)
	assert.Equal(t, "^XA^GFA,1,1,1,,^FS", got)
}

func TestEncodeIsConcurrencySafe(t *testing.T) {
	buf := whiteBuffer(64, 64)
	want, err := Encode(buf, optionsWith(Base64Compressed))
	require.NoError(t, err)

	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		go func() {
			got, err := Encode(buf, optionsWith(Base64Compressed))
			if err == nil && got != want {
				err = errors.New("output differs between goroutines")
			}
			errs <- err
		}()
	}
	for i := 0; i < 8; i++ {
		assert.NoError(t, <-errs)
	}
}
