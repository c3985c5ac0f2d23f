package export

import (
	"fmt"
	"os"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/jinhanxun/doppler-psv-pipeline/internal/pipeline"
)

// WriteProfileChart renders the column-brightness profile with the
// detected peaks overlaid as dots. The chart exists for threshold
// tuning: when an image is skipped for insufficient peaks, the profile
// shows whether the distance or prominence setting is at fault.
func WriteProfileChart(path string, ex *pipeline.Extraction) error {
	if len(ex.Profile) < 2 {
		return fmt.Errorf("profile too short to chart (%d samples)", len(ex.Profile))
	}

	xs := make([]float64, len(ex.Profile))
	for i := range xs {
		xs[i] = float64(i)
	}

	series := []chart.Series{
		chart.ContinuousSeries{
			Name:    "brightness",
			XValues: xs,
			YValues: ex.Profile,
		},
	}

	if len(ex.Peaks) >= 2 {
		px := make([]float64, len(ex.Peaks))
		py := make([]float64, len(ex.Peaks))
		for i, p := range ex.Peaks {
			px[i] = float64(p)
			py[i] = ex.Profile[p]
		}
		series = append(series, chart.ContinuousSeries{
			Name: "peaks",
			Style: chart.Style{
				StrokeWidth: chart.Disabled,
				DotWidth:    4,
			},
			XValues: px,
			YValues: py,
		})
	}

	graph := chart.Chart{
		Title:  "Column brightness profile",
		XAxis:  chart.XAxis{Name: "column"},
		YAxis:  chart.YAxis{Name: "mean brightness"},
		Series: series,
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create chart: %w", err)
	}
	defer f.Close()

	if err := graph.Render(chart.PNG, f); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}
