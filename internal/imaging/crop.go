package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// ROI is a rectangular region of interest in source-image pixel
// coordinates, selecting the strip area of a frame and excluding console
// chrome. The rectangle is half-open: (X1,Y1) is inside, (X2,Y2) is not.
type ROI struct {
	X1 int `json:"x1" csv:"roi_x1"`
	Y1 int `json:"y1" csv:"roi_y1"`
	X2 int `json:"x2" csv:"roi_x2"`
	Y2 int `json:"y2" csv:"roi_y2"`
}

// Empty reports whether the ROI is the zero rectangle, meaning "use the
// whole frame".
func (r ROI) Empty() bool {
	return r.X1 == 0 && r.Y1 == 0 && r.X2 == 0 && r.Y2 == 0
}

// CropROI extracts the region of interest from an image. An empty ROI
// returns the image unchanged.
func CropROI(img image.Image, roi ROI) (image.Image, error) {
	if roi.Empty() {
		return img, nil
	}

	bounds := img.Bounds()
	if roi.X1 < bounds.Min.X || roi.Y1 < bounds.Min.Y || roi.X2 > bounds.Max.X || roi.Y2 > bounds.Max.Y {
		return nil, fmt.Errorf("crop region (%d,%d)-(%d,%d) outside image bounds (%d,%d)-(%d,%d)",
			roi.X1, roi.Y1, roi.X2, roi.Y2, bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Max.Y)
	}
	if roi.X1 >= roi.X2 || roi.Y1 >= roi.Y2 {
		return nil, fmt.Errorf("invalid crop region: x1 must be < x2, y1 must be < y2")
	}

	return imaging.Crop(img, image.Rect(roi.X1, roi.Y1, roi.X2, roi.Y2)), nil
}
