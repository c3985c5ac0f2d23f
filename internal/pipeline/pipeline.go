// Package pipeline orchestrates trace extraction: brightness profile,
// peak detection, region segmentation, and per-cycle landmark location,
// followed by calibration of the located rows into physical values.
package pipeline

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/jinhanxun/doppler-psv-pipeline/internal/calibrate"
	"github.com/jinhanxun/doppler-psv-pipeline/internal/signal"
)

// ErrInsufficientPeaks marks an image whose profile shows fewer than two
// periodic peaks. Such an image cannot be segmented into cycles; the
// batch runner skips it rather than failing.
var ErrInsufficientPeaks = errors.New("insufficient peaks for cycle segmentation")

// Options tunes the extraction. Thresholds are expressed relative to the
// profile's own statistics, so the same settings work across exposure
// levels.
type Options struct {
	// Distance is the minimum column spacing between cycle peaks.
	Distance int

	// ProminenceFactor scales the profile's standard deviation into the
	// minimum peak prominence.
	ProminenceFactor float64

	// HeightFactor sets the minimum peak height to mean + HeightFactor
	// standard deviations.
	HeightFactor float64

	// IntensityThreshold is the brightness a pixel must exceed to count
	// as part of the trace when locating landmarks.
	IntensityThreshold uint8
}

// Process runs the full extraction chain on an intensity grid.
//
// Returns ErrInsufficientPeaks (wrapped) when fewer than two peaks
// survive filtering. Regions whose pixels never clear the intensity
// threshold contribute no point; they are dropped silently and the cycle
// numbering of the remaining points still reflects their region index.
func Process(g signal.Grid, opts Options) (*Extraction, error) {
	profile, err := signal.ColumnProfile(g)
	if err != nil {
		return nil, fmt.Errorf("process: %w", err)
	}

	mean := stat.Mean(profile, nil)
	stddev := stat.PopStdDev(profile, nil)

	peaks := signal.FindPeaks(profile, signal.PeakOptions{
		Distance:      opts.Distance,
		MinHeight:     mean + opts.HeightFactor*stddev,
		MinProminence: opts.ProminenceFactor * stddev,
	})
	if len(peaks) < 2 {
		return nil, fmt.Errorf("%w: found %d", ErrInsufficientPeaks, len(peaks))
	}

	regions, err := signal.SegmentRegions(peaks, g.Width())
	if err != nil {
		return nil, fmt.Errorf("process: %w", err)
	}

	ex := &Extraction{
		Width:         g.Width(),
		Height:        g.Height(),
		Profile:       profile,
		ProfileMean:   mean,
		ProfileStdDev: stddev,
		Peaks:         peaks,
	}

	ex.Boundaries = make([]int, 0, len(regions)+1)
	ex.Boundaries = append(ex.Boundaries, regions[0].Start)
	for _, r := range regions {
		ex.Boundaries = append(ex.Boundaries, r.End)
	}

	for i, r := range regions {
		lm, ok := signal.LocateLandmark(g, r, opts.IntensityThreshold)
		if !ok {
			continue
		}
		ex.Points = append(ex.Points, CyclePoint{
			Cycle: i + 1,
			Col:   lm.Col,
			Row:   lm.Row,
		})
	}
	return ex, nil
}

// Calibrated converts an extraction's landmark rows into physical values
// using the supplied scale and summarizes them. The scale's degeneracy is
// not checked here; callers decide whether to warn.
func Calibrated(ex *Extraction, sc calibrate.Scale) *Report {
	rep := &Report{
		Scale:      sc,
		Extraction: ex,
	}

	values := make([]float64, 0, len(ex.Points))
	for _, p := range ex.Points {
		v := sc.Value(p.Row, ex.Height)
		values = append(values, v)
		rep.Cycles = append(rep.Cycles, CycleValue{
			Cycle: p.Cycle,
			Row:   p.Row,
			Value: v,
		})
	}
	rep.Stats = calibrate.Summarize(values)
	return rep
}
