package ocr

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"strings"
	"testing"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"whitespace only", "  \n\t \n ", ""},
		{"collapses spaces", "GE  VIVID   E95", "GE VIVID E95"},
		{"drops blank lines", "ID 1234\n\n\nPSV SCAN\n", "ID 1234\nPSV SCAN"},
		{"trims line edges", "  CAROTID L  \n  2.5 MHz ", "CAROTID L\n2.5 MHz"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalize(tt.in); got != tt.want {
				t.Errorf("normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestReadBannerBandValidation(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 100, 100))

	for _, band := range []float64{0, -0.1, 1.5} {
		if _, err := ReadBanner(img, band); err == nil {
			t.Errorf("ReadBanner(band=%v) should fail", band)
		}
	}
}

// createBannerImage renders text into the top band of a dark frame, the
// way a console burns its banner into an exported still.
func createBannerImage(t *testing.T, text string) *image.RGBA {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 400, 200))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: basicfont.Face7x13,
		Dot:  fixed.Point26_6{X: fixed.I(20), Y: fixed.I(15)},
	}
	d.DrawString(text)
	return img
}

func TestReadBanner(t *testing.T) {
	img := createBannerImage(t, "ID 1234 CAROTID")

	text, err := ReadBanner(img, 0.15)
	if err != nil {
		if errors.Is(err, ErrUnavailable) {
			t.Skip("OCR backend not compiled in")
		}
		if strings.Contains(err.Error(), "tesseract") ||
			strings.Contains(err.Error(), "library") {
			t.Skip("Tesseract not available")
		}
		t.Fatalf("ReadBanner failed: %v", err)
	}

	// Recognition quality varies by Tesseract version; just log it.
	t.Logf("banner text: %q", text)
}

func TestReadBannerAvailability(t *testing.T) {
	img := createBannerImage(t, "X")

	_, err := ReadBanner(img, 0.2)
	if !Available() && !errors.Is(err, ErrUnavailable) {
		t.Errorf("without a backend ReadBanner should return ErrUnavailable, got %v", err)
	}
}
