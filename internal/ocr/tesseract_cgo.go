//go:build cgo && linux

package ocr

import (
	"fmt"

	"github.com/otiai10/gosseract/v2"
)

// recognize runs Tesseract over the image at path and returns the raw
// recognized text.
func recognize(path string) (string, error) {
	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage("eng"); err != nil {
		return "", fmt.Errorf("failed to set language: %w", err)
	}
	if err := client.SetImage(path); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}
	return text, nil
}

// Available reports whether the OCR backend is compiled in.
func Available() bool { return true }
