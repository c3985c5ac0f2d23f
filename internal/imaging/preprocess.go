package imaging

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/effect"
	"github.com/anthonynsimon/bild/transform"
)

// PrepOptions controls how a raw frame is normalized before analysis.
type PrepOptions struct {
	// TargetWidth is the width images are normalized to before upscaling,
	// preserving aspect ratio. Zero disables the resize.
	TargetWidth int

	// UpscaleFactor multiplies both dimensions after normalization, using
	// a cubic filter so the trace outline stays smooth at sub-pixel
	// landmark resolution. Values below 2 disable the upscale.
	UpscaleFactor int

	// BrightnessFloor zeroes matrix pixels dimmer than this value.
	BrightnessFloor uint8
}

// Prepared is the output of preprocessing: the upscaled color canvas used
// for annotation, the intensity matrix analysed by the detector, and the
// factor mapping source-image coordinates onto matrix coordinates.
type Prepared struct {
	Canvas *image.RGBA
	Matrix *Matrix

	// Scale converts a coordinate in the (cropped) source image to the
	// matrix coordinate space: matrixY = sourceY * Scale.
	Scale float64
}

// Prepare normalizes a frame for analysis. The image is resized to
// TargetWidth with a linear filter, upscaled by UpscaleFactor with
// Catmull-Rom, converted to grayscale, and floored into an intensity
// matrix. Hand-photographed strips arrive at wildly different
// resolutions; normalizing first keeps the peak-spacing and brightness
// thresholds meaningful across inputs.
func Prepare(img image.Image, opts PrepOptions) (*Prepared, error) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("cannot prepare empty %dx%d image", w, h)
	}

	canvas := transform.Resize(img, w, h, transform.Linear)
	if opts.TargetWidth > 0 && w != opts.TargetWidth {
		scaledH := h * opts.TargetWidth / w
		if scaledH < 1 {
			scaledH = 1
		}
		canvas = transform.Resize(canvas, opts.TargetWidth, scaledH, transform.Linear)
	}
	if opts.UpscaleFactor >= 2 {
		canvas = transform.Resize(canvas,
			canvas.Bounds().Dx()*opts.UpscaleFactor,
			canvas.Bounds().Dy()*opts.UpscaleFactor,
			transform.CatmullRom)
	}

	gray := effect.Grayscale(canvas)
	matrix := MatrixFromImage(gray, opts.BrightnessFloor)

	return &Prepared{
		Canvas: canvas,
		Matrix: matrix,
		Scale:  float64(canvas.Bounds().Dy()) / float64(h),
	}, nil
}
