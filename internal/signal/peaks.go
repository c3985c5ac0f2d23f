package signal

import (
	"math"
	"sort"
)

// PeakOptions controls which local maxima of a profile are accepted as
// peaks. Zero values disable the corresponding filter.
type PeakOptions struct {
	// Distance is the minimum horizontal spacing, in columns, between two
	// accepted peaks. When candidates sit closer than this, the lower one
	// is discarded.
	Distance int

	// MinHeight is the minimum profile value a peak must reach.
	MinHeight float64

	// MinProminence is the minimum prominence a peak must have: its height
	// above the higher of the two valleys separating it from the nearest
	// higher-or-equal neighbor on each side.
	MinProminence float64
}

// FindPeaks returns the column indices of accepted local maxima in the
// profile, in strictly increasing order.
//
// # Algorithm
//
// The routine mirrors the behavior of the standard local-maxima peak
// finder used by scientific signal libraries, applying its filters in the
// same order so that fixtures tuned against that policy carry over:
//
//  1. Local maxima: a sample (or the midpoint of a flat plateau) whose
//     immediate neighbors on both sides are strictly lower. Plateaus
//     report their middle column, rounding left.
//
//  2. Height: maxima below MinHeight are dropped.
//
//  3. Distance: remaining maxima are visited from highest to lowest; each
//     survivor eliminates every lower maximum within Distance columns on
//     either side. This is the "keep the taller, discard the shorter"
//     policy for crowded candidates.
//
//  4. Prominence: for each survivor, walk outward in both directions until
//     a strictly higher sample or the signal border is reached, tracking
//     the lowest valley seen on each side. The prominence is the peak
//     height minus the higher of the two valley floors. Maxima below
//     MinProminence are dropped.
//
// The first and last samples of the profile can never be peaks.
func FindPeaks(profile []float64, opts PeakOptions) []int {
	peaks := localMaxima(profile)

	if opts.MinHeight > 0 {
		kept := peaks[:0]
		for _, p := range peaks {
			if profile[p] >= opts.MinHeight {
				kept = append(kept, p)
			}
		}
		peaks = kept
	}

	if opts.Distance > 1 {
		peaks = selectByDistance(profile, peaks, opts.Distance)
	}

	if opts.MinProminence > 0 {
		kept := peaks[:0]
		for _, p := range peaks {
			if prominence(profile, p) >= opts.MinProminence {
				kept = append(kept, p)
			}
		}
		peaks = kept
	}

	return peaks
}

// localMaxima scans left to right for samples that are strictly higher
// than both neighbors. A run of equal samples bordered by lower samples on
// both sides counts as a single maximum at the run's middle column.
func localMaxima(x []float64) []int {
	var peaks []int

	i := 1
	max := len(x) - 1
	for i < max {
		if x[i-1] < x[i] {
			ahead := i + 1
			for ahead < max && x[ahead] == x[i] {
				ahead++
			}
			if x[ahead] < x[i] {
				left := i
				right := ahead - 1
				peaks = append(peaks, (left+right)/2)
				i = ahead
			}
		}
		i++
	}

	return peaks
}

// selectByDistance enforces the minimum peak spacing. Peaks are processed
// in order of decreasing height; each peak that has not already been
// eliminated removes all remaining peaks closer than distance columns.
func selectByDistance(x []float64, peaks []int, distance int) []int {
	n := len(peaks)
	if n == 0 {
		return peaks
	}

	keep := make([]bool, n)
	for i := range keep {
		keep[i] = true
	}

	// Indices into peaks, sorted by ascending height; walked in reverse so
	// the tallest peak claims its window first.
	priority := make([]int, n)
	for i := range priority {
		priority[i] = i
	}
	sort.SliceStable(priority, func(a, b int) bool {
		return x[peaks[priority[a]]] < x[peaks[priority[b]]]
	})

	for j := n - 1; j >= 0; j-- {
		i := priority[j]
		if !keep[i] {
			continue
		}
		for k := i - 1; k >= 0 && peaks[i]-peaks[k] < distance; k-- {
			keep[k] = false
		}
		for k := i + 1; k < n && peaks[k]-peaks[i] < distance; k++ {
			keep[k] = false
		}
	}

	out := peaks[:0]
	for i, p := range peaks {
		if keep[i] {
			out = append(out, p)
		}
	}
	return out
}

// prominence measures how far a peak rises above its dominating valleys.
// On each side the walk continues through samples at or below the peak
// height and stops at a strictly higher sample or the border; the valley
// is the minimum seen along the walk.
func prominence(x []float64, peak int) float64 {
	h := x[peak]

	leftMin := h
	for i := peak - 1; i >= 0 && x[i] <= h; i-- {
		if x[i] < leftMin {
			leftMin = x[i]
		}
	}

	rightMin := h
	for i := peak + 1; i < len(x) && x[i] <= h; i++ {
		if x[i] < rightMin {
			rightMin = x[i]
		}
	}

	return h - math.Max(leftMin, rightMin)
}
