package ocr

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"strings"
)

// ErrUnavailable is returned when the binary was built without the
// Tesseract backend.
var ErrUnavailable = errors.New("ocr backend not available in this build")

// ReadBanner recognizes the text burned into the top band of a frame.
// band is the fraction of the image height to read, in (0,1]; consoles
// typically keep their banner in the top 10-15%.
//
// The returned string has runs of whitespace collapsed and blank lines
// removed. An unreadable banner yields an empty string, not an error.
func ReadBanner(img image.Image, band float64) (string, error) {
	if band <= 0 || band > 1 {
		return "", fmt.Errorf("banner band %v out of range (0,1]", band)
	}

	bounds := img.Bounds()
	rows := int(float64(bounds.Dy()) * band)
	if rows < 1 {
		rows = 1
	}

	// Tesseract wants a file path, so the band goes through a temp PNG.
	strip := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), rows))
	for y := 0; y < rows; y++ {
		for x := 0; x < bounds.Dx(); x++ {
			strip.Set(x, y, img.At(bounds.Min.X+x, bounds.Min.Y+y))
		}
	}

	tmp, err := os.CreateTemp("", "banner-*.png")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if err := png.Encode(tmp, strip); err != nil {
		tmp.Close()
		return "", fmt.Errorf("failed to encode banner strip: %w", err)
	}
	tmp.Close()

	text, err := recognize(tmpPath)
	if err != nil {
		return "", err
	}
	return normalize(text), nil
}

// normalize collapses whitespace runs within lines and drops blank
// lines, joining the rest with single newlines.
func normalize(text string) string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		lines = append(lines, strings.Join(fields, " "))
	}
	return strings.Join(lines, "\n")
}
