package signal

import "fmt"

// Grid is the read-only view of a grayscale intensity matrix that the
// analysis functions operate on. (0,0) is the top-left pixel.
type Grid interface {
	// Width returns the number of pixel columns.
	Width() int

	// Height returns the number of pixel rows.
	Height() int

	// At returns the intensity (0-255) at column x, row y.
	At(x, y int) uint8
}

// ColumnProfile reduces a grid to its brightness profile: one value per
// column, equal to the mean intensity over all rows of that column.
//
// The returned slice always has length g.Width(). An empty grid (zero
// width or height) has no defined profile and yields an error.
func ColumnProfile(g Grid) ([]float64, error) {
	w, h := g.Width(), g.Height()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("column profile undefined for %dx%d grid", w, h)
	}

	profile := make([]float64, w)
	for x := 0; x < w; x++ {
		sum := 0
		for y := 0; y < h; y++ {
			sum += int(g.At(x, y))
		}
		profile[x] = float64(sum) / float64(h)
	}
	return profile, nil
}
