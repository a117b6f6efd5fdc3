package image

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsBlack(t *testing.T) {
	c := &Converter{Threshold: 128}

	assert.True(t, c.IsBlack(0, 0, 0))
	assert.False(t, c.IsBlack(255, 255, 255))
	// (127+128+128)/3 = 127
	assert.True(t, c.IsBlack(127, 128, 128))
	// (128+128+129)/3 = 128, integer division
	assert.False(t, c.IsBlack(128, 128, 129))

	zero := &Converter{Threshold: 0}
	assert.False(t, zero.IsBlack(0, 0, 0))
}

func TestToRasterSizes(t *testing.T) {
	c := &Converter{Threshold: DefaultThreshold}
	for _, tc := range []struct{ w, h, bpr int }{
		{0, 3, 0}, {1, 1, 1}, {7, 2, 1}, {8, 2, 1}, {9, 4, 2}, {16, 1, 2}, {100, 5, 13},
	} {
		r, err := c.ToRaster(NewRGBBuffer(tc.w, tc.h))
		require.NoError(t, err)
		assert.Equalf(t, tc.bpr, r.BytesPerRow, "%dx%d", tc.w, tc.h)
		assert.Equalf(t, tc.bpr*tc.h, r.TotalBytes(), "%dx%d", tc.w, tc.h)
		assert.Len(t, r.Data, r.TotalBytes())
	}
}

func TestToRasterAllWhite(t *testing.T) {
	buf := NewRGBBuffer(16, 2)
	buf.Fill(255, 255, 255)

	r, err := (&Converter{Threshold: 128}).ToRaster(buf)
	require.NoError(t, err)
	assert.Equal(t, "0000\n0000\n", r.Hex())
}

func TestToRasterAllBlack(t *testing.T) {
	r, err := (&Converter{Threshold: 128}).ToRaster(NewRGBBuffer(8, 1))
	require.NoError(t, err)
	assert.Equal(t, "FF\n", r.Hex())
}

func TestToRasterPartialByte(t *testing.T) {
	// 11 dots: B W B B W W W W | B W B, trailing bits zero
	buf := NewRGBBuffer(11, 1)
	buf.Fill(255, 255, 255)
	for _, x := range []int{0, 2, 3, 8, 10} {
		buf.Set(x, 0, 0, 0, 0)
	}

	r, err := (&Converter{Threshold: 128}).ToRaster(buf)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xB0, 0xA0}, r.Data)
	assert.Equal(t, "B0A0\n", r.Hex())
}

func TestToRasterZeroWidth(t *testing.T) {
	r, err := (&Converter{Threshold: 128}).ToRaster(NewRGBBuffer(0, 2))
	require.NoError(t, err)
	assert.Equal(t, "\n\n", r.Hex())
	assert.Equal(t, 0, r.TotalBytes())
}

type badBuffer struct{}

func (badBuffer) Width() int                         { return -1 }
func (badBuffer) Height() int                        { return 1 }
func (badBuffer) RGB(int, int) (uint8, uint8, uint8) { return 0, 0, 0 }

func TestToRasterNegativeSize(t *testing.T) {
	_, err := (&Converter{Threshold: 128}).ToRaster(badBuffer{})
	assert.Error(t, err)
}

func TestReduceRowOrder(t *testing.T) {
	buf := NewRGBBuffer(3, 2)
	buf.Fill(255, 255, 255)
	buf.Set(2, 1, 10, 10, 10)

	c := &Converter{Threshold: 128}
	assert.Equal(t, []bool{false, false, false}, c.ReduceRow(buf, 0, nil))
	assert.Equal(t, []bool{false, false, true}, c.ReduceRow(buf, 1, make([]bool, 0, 8)))
}

func TestFromImage(t *testing.T) {
	img := image.NewNRGBA(image.Rect(10, 20, 12, 21))
	img.Set(10, 20, color.NRGBA{R: 200, G: 100, B: 50, A: 255})
	img.Set(11, 20, color.NRGBA{R: 255, G: 255, B: 255, A: 0})

	buf := FromImage(img)
	assert.Equal(t, 2, buf.Width())
	assert.Equal(t, 1, buf.Height())

	r, g, b := buf.RGB(0, 0)
	assert.Equal(t, [3]uint8{200, 100, 50}, [3]uint8{r, g, b})

	// fully transparent reads as black
	r, g, b = buf.RGB(1, 0)
	assert.Equal(t, [3]uint8{0, 0, 0}, [3]uint8{r, g, b})
}

func TestFromImageGray(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 1, 1))
	img.SetGray(0, 0, color.Gray{Y: 77})

	r, g, b := FromImage(img).RGB(0, 0)
	assert.Equal(t, [3]uint8{77, 77, 77}, [3]uint8{r, g, b})
}

func TestRasterImage(t *testing.T) {
	r := &Raster{Width: 10, Height: 1, BytesPerRow: 2, Data: []byte{0x81, 0x40}}
	img := r.Image()

	assert.Equal(t, image.Rect(0, 0, 10, 1), img.Bounds())
	for x := 0; x < 10; x++ {
		want := uint8(0)
		if x == 0 || x == 7 || x == 9 {
			want = 1
		}
		assert.Equalf(t, want, img.ColorIndexAt(x, 0), "x=%d", x)
	}
}

func TestNewRaster(t *testing.T) {
	r := NewRaster([]byte{1, 2, 3, 4, 5}, 2)
	assert.Equal(t, 2, r.Height)
	assert.Equal(t, 16, r.Width)
	assert.Equal(t, []byte{3, 4}, r.Row(1))

	empty := NewRaster(nil, 0)
	assert.Equal(t, 0, empty.Height)
}

func TestMonochrome(t *testing.T) {
	img := image.NewRGBA(image.Rect(5, 5, 8, 6))
	img.Set(5, 5, color.RGBA{R: 250, G: 250, B: 250, A: 255})
	img.Set(6, 5, color.RGBA{R: 20, G: 20, B: 20, A: 255})
	// (7,5) left transparent

	m := Monochrome(img)
	require.Equal(t, image.Rect(0, 0, 3, 1), m.Bounds())
	assert.Equal(t, uint8(1), m.ColorIndexAt(0, 0))
	assert.Equal(t, uint8(0), m.ColorIndexAt(1, 0))
	assert.Equal(t, uint8(0), m.ColorIndexAt(2, 0))
}
