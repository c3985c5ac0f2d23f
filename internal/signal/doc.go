// Package signal extracts per-cycle trace landmarks from a grayscale
// intensity grid.
//
// The package implements the analysis chain of the digitizer: a
// two-dimensional intensity grid is reduced to a one-dimensional
// column-brightness profile, periodic peaks are located in that profile,
// the column range is partitioned into one region per detected cycle, and
// the topmost bright pixel inside each region is reported as that cycle's
// landmark.
//
// # Coordinate System
//
// Columns (X) run left to right and correspond to time; rows (Y) run top
// to bottom, so row 0 is the top of the image and smaller row indices mean
// higher trace values.
//
// # Statelessness
//
// Every function is pure with respect to its inputs. Nothing is retained
// between calls, so the package is safe for concurrent use on independent
// grids.
package signal
