package export

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jinhanxun/doppler-psv-pipeline/internal/pipeline"
)

// WriteJSON writes the full structured report, including the raw
// extraction, for downstream tooling.
func WriteJSON(path string, rep *pipeline.Report) error {
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
