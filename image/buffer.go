package image

import (
	"image"
)

// ImageBuffer adapts an image.Image to PixelBuffer.
//
// Components are taken from the premultiplied RGBA value, so a transparent
// pixel reads as black, the same as drawing the image over a black background.
type ImageBuffer struct {
	img  image.Image
	min  image.Point
	w, h int
}

// FromImage wraps img; pixel (0, 0) is the top-left corner of its bounds.
func FromImage(img image.Image) *ImageBuffer {
	b := img.Bounds()
	return &ImageBuffer{
		img: img,
		min: b.Min,
		w:   b.Dx(),
		h:   b.Dy(),
	}
}

// Width and Height are the dimensions of the wrapped bounds.
func (b *ImageBuffer) Width() int  { return b.w }
func (b *ImageBuffer) Height() int { return b.h }

// RGB returns the premultiplied 8-bit components at (x, y).
func (b *ImageBuffer) RGB(x, y int) (uint8, uint8, uint8) {
	if g, ok := b.img.(*image.Gray); ok {
		v := g.GrayAt(b.min.X+x, b.min.Y+y).Y
		return v, v, v
	}
	r, g, bl, _ := b.img.At(b.min.X+x, b.min.Y+y).RGBA()
	return uint8(r >> 8), uint8(g >> 8), uint8(bl >> 8)
}

// RGBBuffer is a slice-backed PixelBuffer, three bytes per pixel.
type RGBBuffer struct {
	w, h int
	pix  []uint8
}

// NewRGBBuffer returns a width x height buffer with every pixel black.
func NewRGBBuffer(width, height int) *RGBBuffer {
	return &RGBBuffer{
		w:   width,
		h:   height,
		pix: make([]uint8, width*height*3),
	}
}

// Width and Height are the sizes passed to NewRGBBuffer.
func (b *RGBBuffer) Width() int  { return b.w }
func (b *RGBBuffer) Height() int { return b.h }

// RGB returns the stored components at (x, y).
func (b *RGBBuffer) RGB(x, y int) (uint8, uint8, uint8) {
	i := (y*b.w + x) * 3
	return b.pix[i], b.pix[i+1], b.pix[i+2]
}

// Set stores the components of the pixel at (x, y).
func (b *RGBBuffer) Set(x, y int, r, g, bl uint8) {
	i := (y*b.w + x) * 3
	b.pix[i], b.pix[i+1], b.pix[i+2] = r, g, bl
}

// Fill paints every pixel with the same colour.
func (b *RGBBuffer) Fill(r, g, bl uint8) {
	for i := 0; i < len(b.pix); i += 3 {
		b.pix[i], b.pix[i+1], b.pix[i+2] = r, g, bl
	}
}
