package pipeline

import (
	"github.com/jinhanxun/doppler-psv-pipeline/internal/calibrate"
)

// CyclePoint is one cycle's landmark in matrix coordinates: the topmost
// bright pixel of the cycle's region. Cycle numbering starts at 1 and
// keeps its region index even when other regions yield no landmark.
type CyclePoint struct {
	Cycle int `json:"cycle"`
	Col   int `json:"col"`
	Row   int `json:"row"`
}

// Extraction is the uncalibrated result of analyzing one intensity grid.
// Everything in it is expressed in matrix pixel coordinates and plain
// values, so it can be serialized or rendered without the source image.
type Extraction struct {
	Width  int `json:"width"`
	Height int `json:"height"`

	Profile       []float64 `json:"profile,omitempty"`
	ProfileMean   float64   `json:"profile_mean"`
	ProfileStdDev float64   `json:"profile_std_dev"`

	// Peaks are the detected cycle peak columns, ascending.
	Peaks []int `json:"peaks"`

	// Boundaries are the region edges: len(Peaks)+1 ascending columns,
	// region i spanning [Boundaries[i], Boundaries[i+1]).
	Boundaries []int `json:"boundaries"`

	Points []CyclePoint `json:"points"`
}

// CycleValue is one calibrated cycle row. The csv tags define the column
// layout of the exported per-image table.
type CycleValue struct {
	Cycle int     `json:"cycle" csv:"Heartbeat #"`
	Row   int     `json:"row" csv:"Y Position (pixels)"`
	Value float64 `json:"value" csv:"Converted Y Position"`
}

// Report is the full calibrated result for one image.
type Report struct {
	Image      string          `json:"image,omitempty"`
	ScreenText string          `json:"screen_text,omitempty"`
	Scale      calibrate.Scale `json:"scale"`
	Cycles     []CycleValue    `json:"cycles"`
	Stats      calibrate.Stats `json:"stats"`
	Extraction *Extraction     `json:"extraction,omitempty"`
}
