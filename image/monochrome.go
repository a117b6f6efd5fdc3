package image

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Monochrome draws img over a black background into a black and white
// paletted image, each pixel taking the nearest of the two colours.
// The result is re-based at the origin.
func Monochrome(img image.Image) *image.Paletted {
	b := img.Bounds()
	dst := image.NewPaletted(image.Rect(0, 0, b.Dx(), b.Dy()), color.Palette{color.Black, color.White})
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Over)
	return dst
}
