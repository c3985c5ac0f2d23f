// Package calibrate converts pixel rows into physical values using a
// linear two-point scale.
package calibrate

import (
	"gonum.org/v1/gonum/stat"
)

// Scale maps the vertical axis of a strip image onto physical units. Top
// is the value represented by row 0 and Bottom the value at the bottom
// edge. The two endpoints come from operator input, never from the image.
type Scale struct {
	Bottom float64 `json:"bottom"`
	Top    float64 `json:"top"`
}

// Value converts a pixel row into a physical value by linear
// interpolation between the scale endpoints:
//
//	value = (1 - row/height)*(Top-Bottom) + Bottom
//
// Row 0 maps to Top and row height maps to Bottom. Rows outside
// [0,height] extrapolate on the same line.
func (s Scale) Value(row, height int) float64 {
	return (1-float64(row)/float64(height))*(s.Top-s.Bottom) + s.Bottom
}

// Degenerate reports whether the scale endpoints coincide, which maps
// every row to the same value. Output is still produced; the caller
// should warn.
func (s Scale) Degenerate() bool {
	return s.Top == s.Bottom
}

// Stats summarizes a series of calibrated values.
type Stats struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
}

// Summarize returns the mean and population standard deviation of the
// values. An empty series yields zero stats.
func Summarize(values []float64) Stats {
	if len(values) == 0 {
		return Stats{}
	}
	return Stats{
		Mean:   stat.Mean(values, nil),
		StdDev: stat.PopStdDev(values, nil),
	}
}
