package export

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/jinhanxun/doppler-psv-pipeline/internal/pipeline"
)

// WriteCSV writes a report's per-cycle table followed by its summary
// rows. The layout is one header row, one row per surviving cycle, then
// a Mean and a Std row whose pixel column is left blank:
//
//	Heartbeat #,Y Position (pixels),Converted Y Position
//	1,30,85.00
//	...
//	Mean,,85.00
//	Std,,0.00
func WriteCSV(path string, rep *pipeline.Report) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create csv: %w", err)
	}
	defer f.Close()

	cycles := rep.Cycles
	if err := gocsv.Marshal(&cycles, f); err != nil {
		return fmt.Errorf("failed to write cycle rows: %w", err)
	}

	w := csv.NewWriter(f)
	rows := [][]string{
		{"Mean", "", fmt.Sprintf("%.2f", rep.Stats.Mean)},
		{"Std", "", fmt.Sprintf("%.2f", rep.Stats.StdDev)},
	}
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write summary rows: %w", err)
	}
	return nil
}
