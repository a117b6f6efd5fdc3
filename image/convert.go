package image

import (
	"fmt"
)

// DefaultThreshold splits the 0-255 channel average in half.
const DefaultThreshold = 128

type Converter struct {
	// The threshold between white and black dots. A pixel is black when the
	// integer average of its R, G and B components is below it.
	Threshold int
}

func (c *Converter) IsBlack(r, g, b uint8) bool {
	return (int(r)+int(g)+int(b))/3 < c.Threshold
}

// ReduceRow thresholds row y of buf into dst, reusing its storage.
func (c *Converter) ReduceRow(buf PixelBuffer, y int, dst []bool) []bool {
	dst = dst[:0]
	for x := 0; x < buf.Width(); x++ {
		dst = append(dst, c.IsBlack(buf.RGB(x, y)))
	}
	return dst
}

// ToRaster thresholds buf and packs it eight dots per byte, most significant
// bit first. A byte is flushed when it holds eight dots or the row ends, so
// the unused low bits of a row's last byte stay zero.
func (c *Converter) ToRaster(buf PixelBuffer) (*Raster, error) {
	width, height := buf.Width(), buf.Height()
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("negative image size %dx%d", width, height)
	}

	// lines are packed in bits
	bytesWidth := width / 8
	if width%8 != 0 {
		bytesWidth += 1
	}

	data := make([]byte, bytesWidth*height)
	row := make([]bool, 0, width)

	for y := 0; y < height; y++ {
		row = c.ReduceRow(buf, y, row)
		line := data[y*bytesWidth : (y+1)*bytesWidth]

		var bits byte
		n, off := 0, 0
		for x, black := range row {
			if black {
				bits |= 0x80 >> uint(n)
			}
			n++
			if n == 8 || x == width-1 {
				line[off] = bits
				off++
				bits, n = 0, 0
			}
		}
	}

	return &Raster{
		Width:       width,
		Height:      height,
		BytesPerRow: bytesWidth,
		Data:        data,
	}, nil
}
