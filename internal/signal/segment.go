package signal

import "fmt"

// Region is a half-open column interval [Start, End) holding one cycle of
// the trace.
type Region struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Columns returns the number of columns the region spans.
func (r Region) Columns() int {
	return r.End - r.Start
}

// SegmentRegions partitions the column range of a width-column grid into
// one region per detected peak.
//
// Interior boundaries fall at the midpoint between adjacent peaks. The
// outer boundaries extrapolate half of the first and last peak gap beyond
// the first and last peak, clamped to [0, width]. Regions are half-open
// and contiguous: each region's End is the next region's Start.
//
// At least two strictly increasing peaks are required; with a single peak
// there is no gap to extrapolate from.
func SegmentRegions(peaks []int, width int) ([]Region, error) {
	if width <= 0 {
		return nil, fmt.Errorf("segment regions: width %d out of range", width)
	}
	if len(peaks) < 2 {
		return nil, fmt.Errorf("segment regions: need at least 2 peaks, have %d", len(peaks))
	}
	for i := 1; i < len(peaks); i++ {
		if peaks[i] <= peaks[i-1] {
			return nil, fmt.Errorf("segment regions: peaks not strictly increasing at index %d", i)
		}
	}

	n := len(peaks)
	bounds := make([]int, 0, n+1)

	first := peaks[0] - (peaks[1]-peaks[0])/2
	if first < 0 {
		first = 0
	}
	bounds = append(bounds, first)

	for i := 0; i < n-1; i++ {
		bounds = append(bounds, (peaks[i]+peaks[i+1])/2)
	}

	last := peaks[n-1] + (peaks[n-1]-peaks[n-2])/2
	if last > width {
		last = width
	}
	bounds = append(bounds, last)

	regions := make([]Region, n)
	for i := 0; i < n; i++ {
		if bounds[i+1] < bounds[i] {
			return nil, fmt.Errorf("segment regions: boundary %d decreases (%d < %d)", i+1, bounds[i+1], bounds[i])
		}
		regions[i] = Region{Start: bounds[i], End: bounds[i+1]}
	}
	return regions, nil
}
