// Package export renders pipeline results to files: the per-image CSV
// table, the structured JSON report, the annotated overlay image, and an
// optional brightness-profile chart for threshold tuning.
package export
