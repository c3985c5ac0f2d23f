package imaging

import (
	"fmt"
	"image"
	"image/color"
)

// Matrix is a grayscale intensity matrix: one byte per pixel, row-major,
// (0,0) at the top-left. It is the numeric form of a preprocessed strip
// image and the input to all trace analysis.
//
// A Matrix is written only during construction. Treat it as read-only
// afterwards; shared read access from multiple goroutines is safe.
type Matrix struct {
	width  int
	height int
	pix    []uint8
}

// NewMatrix allocates a zeroed width x height matrix.
func NewMatrix(width, height int) (*Matrix, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid matrix dimensions %dx%d", width, height)
	}
	return &Matrix{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height),
	}, nil
}

// Width returns the number of pixel columns.
func (m *Matrix) Width() int { return m.width }

// Height returns the number of pixel rows.
func (m *Matrix) Height() int { return m.height }

// At returns the intensity at column x, row y.
func (m *Matrix) At(x, y int) uint8 {
	return m.pix[y*m.width+x]
}

// Set stores an intensity at column x, row y.
func (m *Matrix) Set(x, y int, v uint8) {
	m.pix[y*m.width+x] = v
}

// MatrixFromImage converts an image to an intensity matrix using the
// standard luminance weights. Pixels dimmer than floor are forced to
// zero, suppressing sensor noise and compression artifacts in the dark
// background before analysis.
func MatrixFromImage(img image.Image, floor uint8) *Matrix {
	bounds := img.Bounds()
	m := &Matrix{
		width:  bounds.Dx(),
		height: bounds.Dy(),
		pix:    make([]uint8, bounds.Dx()*bounds.Dy()),
	}

	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			g := color.GrayModel.Convert(img.At(x, y)).(color.Gray).Y
			if g < floor {
				g = 0
			}
			m.pix[i] = g
			i++
		}
	}
	return m
}
