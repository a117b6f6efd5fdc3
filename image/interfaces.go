package image

// PixelBuffer is the read-only pixel source the converter walks row by row,
// top to bottom and left to right.
type PixelBuffer interface {
	Width() int
	Height() int
	// RGB returns the 8-bit colour components of the pixel at (x, y),
	// with (0, 0) being the top-left corner.
	RGB(x, y int) (r, g, b uint8)
}
