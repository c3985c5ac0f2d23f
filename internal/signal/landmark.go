package signal

// Landmark is the location of a cycle's trace extremum: the topmost
// bright pixel inside the cycle's region.
type Landmark struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

// LocateLandmark finds the topmost pixel strictly brighter than threshold
// inside the region's columns. Columns are scanned left to right, rows top
// to bottom, so among equally high candidates the leftmost column wins.
//
// ok is false when no pixel in the region clears the threshold; such a
// region has no visible trace and contributes no landmark.
func LocateLandmark(g Grid, r Region, threshold uint8) (lm Landmark, ok bool) {
	h := g.Height()

	start := r.Start
	if start < 0 {
		start = 0
	}
	end := r.End
	if end > g.Width() {
		end = g.Width()
	}

	best := h
	for x := start; x < end; x++ {
		for y := 0; y < best; y++ {
			if g.At(x, y) > threshold {
				best = y
				lm = Landmark{Col: x, Row: y}
				break
			}
		}
	}
	return lm, best < h
}
