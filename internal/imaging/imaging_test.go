package imaging

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// createInMemoryImage builds a solid-color RGBA image for testing.
func createInMemoryImage(width, height int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// createTraceImage builds a black frame with a white envelope whose upper
// edge follows the given per-column rows.
func createTraceImage(width, height int, edge func(x int) int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	white := color.RGBA{255, 255, 255, 255}
	black := color.RGBA{0, 0, 0, 255}
	for x := 0; x < width; x++ {
		top := edge(x)
		for y := 0; y < height; y++ {
			if y >= top {
				img.Set(x, y, white)
			} else {
				img.Set(x, y, black)
			}
		}
	}
	return img
}

func TestLoadAndInfo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, createInMemoryImage(32, 16, color.RGBA{10, 20, 30, 255})); err != nil {
		t.Fatal(err)
	}
	f.Close()

	img, info, err := Info(path)
	if err != nil {
		t.Fatalf("Info failed: %v", err)
	}
	if img.Bounds().Dx() != 32 || img.Bounds().Dy() != 16 {
		t.Errorf("decoded %dx%d, want 32x16", img.Bounds().Dx(), img.Bounds().Dy())
	}
	if info.Width != 32 || info.Height != 16 || info.Format != "png" {
		t.Errorf("info = %+v", info)
	}
	if info.FileSizeBytes == 0 {
		t.Error("file size should be nonzero")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/image.png"); err == nil {
		t.Error("Load should fail for a missing file")
	}
}

func TestNewMatrix(t *testing.T) {
	m, err := NewMatrix(4, 3)
	if err != nil {
		t.Fatalf("NewMatrix failed: %v", err)
	}
	if m.Width() != 4 || m.Height() != 3 {
		t.Errorf("dimensions: got %dx%d, want 4x3", m.Width(), m.Height())
	}

	m.Set(2, 1, 77)
	if got := m.At(2, 1); got != 77 {
		t.Errorf("At(2,1) = %d, want 77", got)
	}
	if got := m.At(1, 2); got != 0 {
		t.Errorf("At(1,2) = %d, want 0", got)
	}
}

func TestNewMatrix_InvalidDimensions(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"zero width", 0, 10},
		{"zero height", 10, 0},
		{"negative", -1, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewMatrix(tt.w, tt.h); err == nil {
				t.Error("NewMatrix should fail for invalid dimensions")
			}
		})
	}
}

func TestMatrixFromImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.RGBA{200, 200, 200, 255})
	img.Set(1, 0, color.RGBA{3, 3, 3, 255})

	m := MatrixFromImage(img, 5)
	if got := m.At(0, 0); got < 190 || got > 210 {
		t.Errorf("bright pixel = %d, want near 200", got)
	}
	if got := m.At(1, 0); got != 0 {
		t.Errorf("pixel below floor = %d, want 0", got)
	}
}

func TestCropROI(t *testing.T) {
	img := createInMemoryImage(100, 80, color.RGBA{255, 0, 0, 255})

	cropped, err := CropROI(img, ROI{X1: 10, Y1: 20, X2: 60, Y2: 50})
	if err != nil {
		t.Fatalf("CropROI failed: %v", err)
	}

	b := cropped.Bounds()
	if b.Dx() != 50 || b.Dy() != 30 {
		t.Errorf("dimensions: got %dx%d, want 50x30", b.Dx(), b.Dy())
	}
}

func TestCropROI_Empty(t *testing.T) {
	img := createInMemoryImage(40, 40, color.RGBA{0, 255, 0, 255})

	cropped, err := CropROI(img, ROI{})
	if err != nil {
		t.Fatalf("CropROI failed: %v", err)
	}
	if cropped != image.Image(img) {
		t.Error("empty ROI should return the input image unchanged")
	}
}

func TestCropROI_Invalid(t *testing.T) {
	img := createInMemoryImage(100, 100, color.RGBA{255, 0, 0, 255})

	tests := []struct {
		name string
		roi  ROI
	}{
		{"x out of bounds", ROI{X1: 0, Y1: 0, X2: 101, Y2: 50}},
		{"y out of bounds", ROI{X1: 0, Y1: 0, X2: 50, Y2: 101}},
		{"negative origin", ROI{X1: -1, Y1: 0, X2: 50, Y2: 50}},
		{"inverted x", ROI{X1: 60, Y1: 0, X2: 50, Y2: 50}},
		{"zero area", ROI{X1: 50, Y1: 50, X2: 50, Y2: 50}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := CropROI(img, tt.roi); err == nil {
				t.Error("CropROI should fail for invalid region")
			}
		})
	}
}

func TestPrepare(t *testing.T) {
	img := createInMemoryImage(200, 100, color.RGBA{128, 128, 128, 255})

	p, err := Prepare(img, PrepOptions{TargetWidth: 100, UpscaleFactor: 2, BrightnessFloor: 5})
	if err != nil {
		t.Fatalf("Prepare failed: %v", err)
	}

	// 200x100 -> 100x50 -> 200x100 after the 2x upscale.
	if p.Matrix.Width() != 200 || p.Matrix.Height() != 100 {
		t.Errorf("matrix dimensions: got %dx%d, want 200x100", p.Matrix.Width(), p.Matrix.Height())
	}
	if b := p.Canvas.Bounds(); b.Dx() != p.Matrix.Width() || b.Dy() != p.Matrix.Height() {
		t.Errorf("canvas %dx%d does not match matrix %dx%d",
			b.Dx(), b.Dy(), p.Matrix.Width(), p.Matrix.Height())
	}
	if p.Scale != 1.0 {
		t.Errorf("scale = %v, want 1.0", p.Scale)
	}
}

func TestPrepare_FloorsDarkPixels(t *testing.T) {
	img := createInMemoryImage(50, 50, color.RGBA{2, 2, 2, 255})

	p, err := Prepare(img, PrepOptions{BrightnessFloor: 5})
	if err != nil {
		t.Fatalf("Prepare failed: %v", err)
	}
	for x := 0; x < p.Matrix.Width(); x++ {
		for y := 0; y < p.Matrix.Height(); y++ {
			if v := p.Matrix.At(x, y); v != 0 {
				t.Fatalf("pixel (%d,%d) = %d, want 0 after flooring", x, y, v)
			}
		}
	}
}

func TestPrepare_TraceSurvives(t *testing.T) {
	img := createTraceImage(120, 60, func(x int) int { return 30 })

	p, err := Prepare(img, PrepOptions{TargetWidth: 120, UpscaleFactor: 2, BrightnessFloor: 5})
	if err != nil {
		t.Fatalf("Prepare failed: %v", err)
	}

	m := p.Matrix
	if v := m.At(m.Width()/2, m.Height()-2); v < 200 {
		t.Errorf("envelope interior = %d, want bright", v)
	}
	if v := m.At(m.Width()/2, 2); v != 0 {
		t.Errorf("background = %d, want 0", v)
	}
}

func TestPrepare_EmptyImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 0, 0))
	if _, err := Prepare(img, PrepOptions{}); err == nil {
		t.Error("Prepare should fail for an empty image")
	}
}

func TestAnnotate_PreservesDimensions(t *testing.T) {
	img := createInMemoryImage(120, 80, color.RGBA{0, 0, 0, 255})

	out := Annotate(img, []int{10, 60, 110}, []Mark{
		{Label: "1", X: 30, Y: 20},
		{Label: "2", X: 85, Y: 40},
	})

	b := out.Bounds()
	if b.Dx() != 120 || b.Dy() != 80 {
		t.Errorf("dimensions: got %dx%d, want 120x80", b.Dx(), b.Dy())
	}
}

func TestAnnotate_DrawsBoundaries(t *testing.T) {
	img := createInMemoryImage(50, 50, color.RGBA{0, 0, 0, 255})

	out := Annotate(img, []int{25}, nil)

	r, g, b, _ := out.At(25, 25).RGBA()
	if r == 0 && g == 0 && b == 0 {
		t.Error("boundary column still black, expected a drawn line")
	}
}

func TestAnnotate_DoesNotModifyInput(t *testing.T) {
	img := createInMemoryImage(50, 50, color.RGBA{0, 0, 0, 255})

	Annotate(img, []int{25}, []Mark{{Label: "1", X: 10, Y: 10}})

	r, g, b, _ := img.At(25, 25).RGBA()
	if r != 0 || g != 0 || b != 0 {
		t.Error("input image was modified")
	}
}
