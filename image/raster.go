package image

import (
	"image"
	"image/color"

	"github.com/AlexStarov/zpl-GoLang-lib/util"
)

// Raster is a packed black and white bitmap: one bit per dot, black = 1,
// rows padded to whole bytes.
type Raster struct {
	Width       int
	Height      int
	BytesPerRow int
	Data        []byte
}

// NewRaster wraps already packed data. Width is taken as the full byte width.
func NewRaster(data []byte, bytesPerRow int) *Raster {
	height := 0
	if bytesPerRow > 0 {
		height = len(data) / bytesPerRow
	}
	return &Raster{
		Width:       bytesPerRow * 8,
		Height:      height,
		BytesPerRow: bytesPerRow,
		Data:        data[:bytesPerRow*height],
	}
}

func (r *Raster) TotalBytes() int {
	return r.BytesPerRow * r.Height
}

func (r *Raster) Row(y int) []byte {
	return r.Data[y*r.BytesPerRow : (y+1)*r.BytesPerRow]
}

// Hex renders the raster as uppercase hex, two digits per byte and one
// newline-terminated line per row.
func (r *Raster) Hex() string {
	buf := make([]byte, 0, r.Height*(r.BytesPerRow*2+1))
	for y := 0; y < r.Height; y++ {
		for _, b := range r.Row(y) {
			buf = util.AppendHexByte(buf, b)
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}

// Image renders the raster back to a two colour image, used for previews.
func (r *Raster) Image() *image.Paletted {
	img := image.NewPaletted(image.Rect(0, 0, r.Width, r.Height), color.Palette{color.White, color.Black})
	for y := 0; y < r.Height; y++ {
		row := r.Row(y)
		for x := 0; x < r.Width; x++ {
			if row[x/8]&(0x80>>uint(x%8)) != 0 {
				img.SetColorIndex(x, y, 1)
			}
		}
	}
	return img
}
